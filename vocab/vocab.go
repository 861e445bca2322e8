package vocab

import (
	"io"
	"sort"

	"github.com/hupe1980/glovego/corpus"
)

// DefaultMinCount is the minimum word frequency retained by default.
const DefaultMinCount = 5

// Vocabulary maps words to occurrence counts and, after finalization, to
// stable integer indices. It is not safe for concurrent use; the pipeline is
// single-threaded by design.
type Vocabulary struct {
	minCount  int
	counts    map[string]int
	words     []string       // finalized order: count desc, word asc
	index     map[string]int // word -> position in words
	finalized bool
}

// New creates an empty Vocabulary with the given minimum count.
// Values below 1 fall back to 1.
func New(minCount int) *Vocabulary {
	if minCount < 1 {
		minCount = 1
	}
	return &Vocabulary{
		minCount: minCount,
		counts:   make(map[string]int),
	}
}

// Restore reconstructs a finalized Vocabulary from previously persisted
// words and counts, preserving the given order as the index order.
// words and counts must have equal length.
func Restore(words []string, counts []int, minCount int) *Vocabulary {
	v := New(minCount)
	v.words = make([]string, len(words))
	copy(v.words, words)
	v.index = make(map[string]int, len(words))
	for i, w := range words {
		v.counts[w] = counts[i]
		v.index[w] = i
	}
	v.finalized = true
	return v
}

// Observe increments the count for word, inserting it with count 1 if new.
// Must not be called after Finalize.
func (v *Vocabulary) Observe(word string) {
	v.counts[word]++
}

// Finalize drops words below the minimum count and freezes the index order.
// Calling it again is a no-op, so the size and order never change once set.
func (v *Vocabulary) Finalize() {
	if v.finalized {
		return
	}

	v.words = make([]string, 0, len(v.counts))
	for w, c := range v.counts {
		if c >= v.minCount {
			v.words = append(v.words, w)
		} else {
			delete(v.counts, w)
		}
	}

	sort.Slice(v.words, func(i, j int) bool {
		ci, cj := v.counts[v.words[i]], v.counts[v.words[j]]
		if ci != cj {
			return ci > cj
		}
		return v.words[i] < v.words[j]
	})

	v.index = make(map[string]int, len(v.words))
	for i, w := range v.words {
		v.index[w] = i
	}
	v.finalized = true
}

// Finalized reports whether Finalize has run.
func (v *Vocabulary) Finalized() bool {
	return v.finalized
}

// MinCount returns the configured minimum count.
func (v *Vocabulary) MinCount() int {
	return v.minCount
}

// CountOf returns the occurrence count for word. After finalization, words
// that were filtered out report false.
func (v *Vocabulary) CountOf(word string) (int, bool) {
	c, ok := v.counts[word]
	return c, ok
}

// IndexOf returns the finalized index of word. The lookup is map-backed;
// behavior is identical to a linear scan over the sorted word list.
func (v *Vocabulary) IndexOf(word string) (int, bool) {
	if !v.finalized {
		return 0, false
	}
	i, ok := v.index[word]
	return i, ok
}

// WordAt returns the word at the given finalized index.
func (v *Vocabulary) WordAt(i int) (string, bool) {
	if !v.finalized || i < 0 || i >= len(v.words) {
		return "", false
	}
	return v.words[i], true
}

// Len returns the number of retained words. Zero before finalization.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Words returns the finalized word order. The slice is shared; callers must
// not mutate it.
func (v *Vocabulary) Words() []string {
	return v.words
}

// Build streams a corpus from r, observes every token and finalizes.
func Build(r io.Reader, minCount int) (*Vocabulary, error) {
	return BuildSize(r, minCount, corpus.DefaultChunkSize)
}

// BuildSize is Build with an explicit read chunk size.
func BuildSize(r io.Reader, minCount, chunkSize int) (*Vocabulary, error) {
	v := New(minCount)
	s := corpus.NewScannerSize(r, chunkSize)
	for s.Scan() {
		for _, word := range corpus.Fields(s.Text()) {
			v.Observe(word)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	v.Finalize()
	return v, nil
}
