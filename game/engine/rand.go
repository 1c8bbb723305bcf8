package engine

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Rand is the randomness Shuffle needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SeededRand is a deterministic byte stream built from HMAC-SHA256(seed, "nonce:round").
// The same seed and nonce always produce the same shuffle.
type SeededRand struct {
	seed   string
	nonce  uint64
	round  uint64
	pos    int
	buffer [32]byte
}

// NewSeededRand creates a generator for seed and nonce
func NewSeededRand(seed string, nonce uint64) *SeededRand {
	r := &SeededRand{seed: seed, nonce: nonce}
	r.generateRound()
	return r
}

// Next returns the next byte of the stream
func (r *SeededRand) Next() byte {
	if r.pos >= len(r.buffer) {
		r.round++
		r.pos = 0
		r.generateRound()
	}
	b := r.buffer[r.pos]
	r.pos++
	return b
}

// Uint32 reads four bytes big-endian
func (r *SeededRand) Uint32() uint32 {
	var b [4]byte
	for i := range b {
		b[i] = r.Next()
	}
	return binary.BigEndian.Uint32(b[:])
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (r *SeededRand) Intn(n int) int {
	if n <= 0 {
		panic("engine: SeededRand.Intn called with n <= 0")
	}
	bound := uint32(n)
	// reject the tail so every residue is equally likely
	limit := ^uint32(0) - ^uint32(0)%bound
	for {
		v := r.Uint32()
		if v < limit {
			return int(v % bound)
		}
	}
}

func (r *SeededRand) generateRound() {
	h := hmac.New(sha256.New, []byte(r.seed))
	fmt.Fprintf(h, "%d:%d", r.nonce, r.round)
	copy(r.buffer[:], h.Sum(nil))
}

// NewSeed returns a random 16-byte hex seed
func NewSeed() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("engine: reading random seed: %v", err))
	}
	return hex.EncodeToString(b)
}
