package engine

import "testing"

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		from, to Position
		expected int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{3, 3}, 6},
		{Position{2, 1}, Position{1, 2}, 2},
		{Position{3, 0}, Position{0, 0}, 3},
	}

	for _, tt := range tests {
		if got := ManhattanDistance(tt.from, tt.to); got != tt.expected {
			t.Errorf("ManhattanDistance(%s, %s): expected %d, got %d", tt.from, tt.to, tt.expected, got)
		}
	}
}

func TestIsAdjacent(t *testing.T) {
	blank := Position{Row: 1, Col: 1}
	tests := []struct {
		target   Position
		expected bool
	}{
		{Position{0, 1}, true},
		{Position{2, 1}, true},
		{Position{1, 0}, true},
		{Position{1, 2}, true},
		{Position{1, 1}, false},
		{Position{0, 0}, false},
		{Position{2, 2}, false},
		{Position{0, 2}, false},
		{Position{3, 1}, false},
	}

	for _, tt := range tests {
		if got := IsAdjacent(tt.target, blank); got != tt.expected {
			t.Errorf("IsAdjacent(%s, %s): expected %v, got %v", tt.target, blank, tt.expected, got)
		}
	}
}

func TestDisplacementAndMisplaced(t *testing.T) {
	b := NewBoard()
	if Displacement(b) != 0 || MisplacedTiles(b) != 0 {
		t.Fatal("Expected zero displacement on the solved board")
	}

	b.Move(Position{Row: 3, Col: 2})
	b.Move(Position{Row: 2, Col: 2})

	// tile 14 moved right one cell, tile 10 moved down one cell
	if got := Displacement(b); got != 2 {
		t.Errorf("Expected displacement 2, got %d", got)
	}
	if got := MisplacedTiles(b); got != 2 {
		t.Errorf("Expected 2 misplaced tiles, got %d", got)
	}
}

func TestParity(t *testing.T) {
	if Parity(NewBoard()) != 0 {
		t.Error("Expected solved board to have even parity")
	}

	// swapping two tiles without the blank is unreachable
	tiles := NewBoard().Tiles()
	tiles[0][0], tiles[0][1] = tiles[0][1], tiles[0][0]
	b, err := BoardFromTiles(tiles)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if Parity(b) != 1 {
		t.Error("Expected a single tile swap to have odd parity")
	}
}

func TestDirectionTarget(t *testing.T) {
	blank := Position{Row: 1, Col: 1}
	tests := []struct {
		direction string
		expected  Position
	}{
		{DirectionUp, Position{2, 1}},
		{DirectionDown, Position{0, 1}},
		{DirectionLeft, Position{1, 2}},
		{DirectionRight, Position{1, 0}},
	}

	for _, tt := range tests {
		got, ok := DirectionTarget(blank, tt.direction)
		if !ok {
			t.Errorf("%s: expected direction to be known", tt.direction)
			continue
		}
		if got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.direction, tt.expected, got)
		}
	}

	if _, ok := DirectionTarget(blank, "diagonal"); ok {
		t.Error("Expected unknown direction to be rejected")
	}
}

func TestHomeOf(t *testing.T) {
	if HomeOf(0) != (Position{0, 0}) {
		t.Errorf("Expected tile 0 home at (0,0), got %s", HomeOf(0))
	}
	if HomeOf(BlankTile) != (Position{3, 3}) {
		t.Errorf("Expected blank home at (3,3), got %s", HomeOf(BlankTile))
	}
	if HomeOf(6) != (Position{1, 2}) {
		t.Errorf("Expected tile 6 home at (1,2), got %s", HomeOf(6))
	}
}
