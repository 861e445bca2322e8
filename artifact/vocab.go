package artifact

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/glovego/corpus"
	"github.com/hupe1980/glovego/vocab"
)

// WriteVocab writes one "<word> <count>" line per retained word, in the
// finalized index order.
func WriteVocab(w io.Writer, voc *vocab.Vocabulary) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < voc.Len(); i++ {
		word, _ := voc.WordAt(i)
		count, _ := voc.CountOf(word)
		if _, err := fmt.Fprintf(bw, "%s %d\n", word, count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadVocab parses a vocabulary file back into a finalized Vocabulary,
// preserving the file's line order as the index order.
func ReadVocab(r io.Reader, minCount int) (*vocab.Vocabulary, error) {
	var (
		words  []string
		counts []int
	)

	s := corpus.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		fields := corpus.Fields(s.Text())
		if fields == nil {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("vocabulary line %d: expected 2 fields, got %d", lineNo, len(fields))
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("vocabulary line %d: malformed count %q: %w", lineNo, fields[1], err)
		}
		words = append(words, fields[0])
		counts = append(counts, count)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return vocab.Restore(words, counts, minCount), nil
}

// Placeholders builds a finalized vocabulary of synthetic surface forms
// word0..word<n-1>, used when training from an external co-occurrence file
// without a real vocabulary.
func Placeholders(n int) *vocab.Vocabulary {
	words := make([]string, n)
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		words[i] = fmt.Sprintf("word%d", i)
		counts[i] = 1
	}
	return vocab.Restore(words, counts, 1)
}
