package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// Word frequencies in natural text follow this distribution.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Normalization constant (harmonic number with exponent s).
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Inverse transform sampling.
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfCorpus generates a synthetic corpus of numLines lines, each with
// lineLen tokens drawn Zipfian from a vocabulary of vocabSize synthetic
// words ("w0" .. "w<vocabSize-1>", lower rank = more frequent).
// Tokens are separated by single spaces, lines by a trailing newline.
func (r *RNG) ZipfCorpus(numLines, lineLen, vocabSize int, s float64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	for i := 0; i < numLines; i++ {
		for t := 0; t < lineLen; t++ {
			if t > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "w%d", r.zipfLocked(vocabSize, s))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Sentences joins token slices into corpus text, one sentence per line.
// Useful for hand-written test corpora where exact co-occurrence counts
// matter.
func Sentences(lines ...[]string) string {
	var sb strings.Builder
	for _, tokens := range lines {
		sb.WriteString(strings.Join(tokens, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
