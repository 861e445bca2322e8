package cooccur

import (
	"io"

	"github.com/hupe1980/glovego/corpus"
	"github.com/hupe1980/glovego/vocab"
)

// DefaultWindowSize is the default context window radius.
const DefaultWindowSize = 15

// Record is a single weighted co-occurrence observation between the words at
// vocabulary indices I and J. Weight is 1/d where d is the token distance.
type Record struct {
	I      int
	J      int
	Weight float64
}

// Accumulator collects co-occurrence records from index sequences.
// It owns its record slice exclusively.
type Accumulator struct {
	window    int
	symmetric bool
	records   []Record
}

// NewAccumulator creates an Accumulator with the given window radius.
// Window values below 1 fall back to DefaultWindowSize.
func NewAccumulator(window int, symmetric bool) *Accumulator {
	if window < 1 {
		window = DefaultWindowSize
	}
	return &Accumulator{
		window:    window,
		symmetric: symmetric,
	}
}

// Add appends a record unconditionally. Indices are not validated against
// any vocabulary here; out-of-range indices are rejected later by the
// trainer, which skips them.
func (a *Accumulator) Add(i, j int, weight float64) {
	a.records = append(a.records, Record{I: i, J: j, Weight: weight})
}

// IngestLine walks the sliding window over a sequence of vocabulary indices.
// For every position i, every other position j within the window contributes
// a record (indices[i], indices[j], 1/|i-j|); in symmetric mode the mirrored
// record is appended as well.
func (a *Accumulator) IngestLine(indices []int) {
	for i := range indices {
		lo := i - a.window
		if lo < 0 {
			lo = 0
		}
		hi := i + a.window + 1
		if hi > len(indices) {
			hi = len(indices)
		}
		for j := lo; j < hi; j++ {
			if j == i {
				continue
			}
			dist := i - j
			if dist < 0 {
				dist = -dist
			}
			weight := 1.0 / float64(dist)
			a.Add(indices[i], indices[j], weight)
			if a.symmetric {
				a.Add(indices[j], indices[i], weight)
			}
		}
	}
}

// Ingest streams a corpus from r, converts each line into vocabulary indices
// and accumulates windowed records. Tokens missing from the vocabulary are
// dropped before windowing, closing the positional gap they leave.
func (a *Accumulator) Ingest(r io.Reader, voc *vocab.Vocabulary) error {
	return a.IngestSize(r, voc, corpus.DefaultChunkSize)
}

// IngestSize is Ingest with an explicit read chunk size.
func (a *Accumulator) IngestSize(r io.Reader, voc *vocab.Vocabulary, chunkSize int) error {
	s := corpus.NewScannerSize(r, chunkSize)
	var indices []int
	for s.Scan() {
		indices = indices[:0]
		for _, word := range corpus.Fields(s.Text()) {
			if idx, ok := voc.IndexOf(word); ok {
				indices = append(indices, idx)
			}
		}
		a.IngestLine(indices)
	}
	return s.Err()
}

// Size returns the number of accumulated records.
func (a *Accumulator) Size() int {
	return len(a.records)
}

// Records returns the accumulated records. The trainer shuffles this slice
// in place; callers must not rely on its order.
func (a *Accumulator) Records() []Record {
	return a.records
}

// SetRecords replaces the accumulated records, used when restoring from a
// persisted co-occurrence file.
func (a *Accumulator) SetRecords(records []Record) {
	a.records = records
}

// Window returns the configured window radius.
func (a *Accumulator) Window() int {
	return a.window
}

// Symmetric reports whether mirrored records are appended.
func (a *Accumulator) Symmetric() bool {
	return a.symmetric
}
