package artifact

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/glovego/corpus"
	"github.com/hupe1980/glovego/distance"
	"github.com/hupe1980/glovego/train"
	"github.com/hupe1980/glovego/vocab"
)

// WriteVectors writes the header "<vocab_size> <dim>" followed by one line
// per word: the surface form and its embedding components with 6-decimal
// precision. Parameter indices with no vocabulary word are skipped silently;
// this happens when the trainer's parameter count was inferred from a
// co-occurrence file larger than the vocabulary.
func WriteVectors(w io.Writer, tr *train.Trainer, voc *vocab.Vocabulary) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", voc.Len(), tr.Dim()); err != nil {
		return err
	}

	for i := 0; i < tr.VocabSize(); i++ {
		word, ok := voc.WordAt(i)
		if !ok {
			continue
		}
		emb, err := tr.EmbeddingOf(i)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		for _, v := range emb {
			if _, err := fmt.Fprintf(bw, " %.6f", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadVectors parses a vectors file into an embedding table for similarity
// queries. The header is validated against the body.
func ReadVectors(r io.Reader) (*distance.Embeddings, error) {
	s := corpus.NewScanner(r)

	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("vectors file: missing header")
	}
	header := corpus.Fields(s.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("vectors file: malformed header %q", s.Text())
	}
	size, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("vectors file: malformed vocabulary size %q: %w", header[0], err)
	}
	dim, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("vectors file: malformed dimension %q: %w", header[1], err)
	}

	words := make([]string, 0, size)
	vecs := make([][]float64, 0, size)

	lineNo := 1
	for s.Scan() {
		lineNo++
		fields := corpus.Fields(s.Text())
		if fields == nil {
			continue
		}
		if len(fields) != dim+1 {
			return nil, fmt.Errorf("vectors line %d: expected %d components, got %d", lineNo, dim, len(fields)-1)
		}
		vec := make([]float64, dim)
		for k, f := range fields[1:] {
			vec[k], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("vectors line %d: malformed component %q: %w", lineNo, f, err)
			}
		}
		words = append(words, fields[0])
		vecs = append(vecs, vec)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return distance.NewEmbeddings(words, vecs)
}

// ReadVectorsReader is a convenience wrapper reading from an io.Reader that
// may be compressed, keyed by name.
func ReadVectorsReader(r io.Reader, name string) (*distance.Embeddings, error) {
	dr, err := corpus.Decompress(r, name)
	if err != nil {
		return nil, err
	}
	defer dr.Close()
	return ReadVectors(dr)
}
