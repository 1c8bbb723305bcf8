package engine

import "testing"

func TestSeededRand_Deterministic(t *testing.T) {
	a := NewSeededRand("seed", 3)
	b := NewSeededRand("seed", 3)

	for i := 0; i < 200; i++ {
		if x, y := a.Intn(4), b.Intn(4); x != y {
			t.Fatalf("draw %d: streams diverged (%d vs %d)", i, x, y)
		}
	}
}

func TestSeededRand_NonceChangesStream(t *testing.T) {
	a := NewSeededRand("seed", 0)
	b := NewSeededRand("seed", 1)

	same := true
	for i := 0; i < 64; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected different nonces to produce different streams")
	}
}

func TestSeededRand_IntnRange(t *testing.T) {
	r := NewSeededRand("range", 0)
	counts := make([]int, 3)

	for i := 0; i < 3000; i++ {
		v := r.Intn(3)
		if v < 0 || v >= 3 {
			t.Fatalf("Intn(3) returned %d", v)
		}
		counts[v]++
	}
	for i, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("value %d drawn %d times out of 3000, expected roughly 1000", i, c)
		}
	}
}

func TestSeededRand_CrossesRoundBoundary(t *testing.T) {
	r := NewSeededRand("boundary", 0)
	first := make([]byte, 32)
	for i := range first {
		first[i] = r.Next()
	}
	second := make([]byte, 32)
	for i := range second {
		second[i] = r.Next()
	}
	if string(first) == string(second) {
		t.Error("Expected the second round to differ from the first")
	}
}

func TestSeededRand_IntnPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected Intn(0) to panic")
		}
	}()
	NewSeededRand("x", 0).Intn(0)
}

func TestNewSeed(t *testing.T) {
	a, b := NewSeed(), NewSeed()
	if len(a) != 32 {
		t.Errorf("Expected 32 hex characters, got %d", len(a))
	}
	if a == b {
		t.Error("Expected two seeds to differ")
	}
}

func TestShuffledBoard_Replays(t *testing.T) {
	a := ShuffledBoard("replay", 2, 500)
	b := ShuffledBoard("replay", 2, 500)
	if a != b {
		t.Error("Expected identical boards for identical seed and round")
	}

	c := ShuffledBoard("replay", 3, 500)
	if a == c {
		t.Error("Expected a different round to give a different board")
	}

	if !ShuffledBoard("replay", 0, 0).IsSolved() {
		t.Error("Expected zero steps to give the solved board")
	}
}
