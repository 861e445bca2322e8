package artifact

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/glovego/cooccur"
	"github.com/hupe1980/glovego/corpus"
)

// WriteRecords writes one "<i> <j> <weight>" line per record, weights with
// fixed 6-decimal precision, in accumulation order.
func WriteRecords(w io.Writer, records []cooccur.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, "%d %d %.6f\n", rec.I, rec.J, rec.Weight); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RecordSet is the result of loading a persisted co-occurrence file. Besides
// the records themselves it tracks the set of referenced vocabulary indices,
// from which a standalone training run infers its parameter count.
type RecordSet struct {
	Records []cooccur.Record

	indices *roaring.Bitmap
}

// ReadRecords parses a co-occurrence file. Malformed numeric fields are
// fatal; there is no partial recovery.
func ReadRecords(r io.Reader) (*RecordSet, error) {
	set := &RecordSet{indices: roaring.New()}

	s := corpus.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		fields := corpus.Fields(s.Text())
		if fields == nil {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("co-occurrence line %d: expected 3 fields, got %d", lineNo, len(fields))
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("co-occurrence line %d: malformed index %q: %w", lineNo, fields[0], err)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("co-occurrence line %d: malformed index %q: %w", lineNo, fields[1], err)
		}
		weight, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("co-occurrence line %d: malformed weight %q: %w", lineNo, fields[2], err)
		}

		set.Records = append(set.Records, cooccur.Record{I: i, J: j, Weight: weight})
		if i >= 0 {
			set.indices.Add(uint32(i))
		}
		if j >= 0 {
			set.indices.Add(uint32(j))
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// InferredVocabSize returns one plus the maximum index observed, the
// parameter count a standalone training run allocates.
func (s *RecordSet) InferredVocabSize() int {
	if s.indices.IsEmpty() {
		return 0
	}
	return int(s.indices.Maximum()) + 1
}

// DistinctIndices returns the number of distinct indices referenced.
func (s *RecordSet) DistinctIndices() uint64 {
	return s.indices.GetCardinality()
}
