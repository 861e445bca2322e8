package distance

import (
	"errors"
	"fmt"
	"sort"
)

// ErrWordNotFound is returned when a queried word has no embedding.
var ErrWordNotFound = errors.New("word not found")

// Match is a scored similarity result.
type Match struct {
	Word       string
	Similarity float64
}

// Embeddings is an immutable word-to-vector table supporting exact
// similarity and analogy queries by full scan.
type Embeddings struct {
	words []string
	index map[string]int
	vecs  [][]float64
	dim   int
}

// NewEmbeddings builds a table from parallel word and vector slices.
// All vectors must share one dimension.
func NewEmbeddings(words []string, vecs [][]float64) (*Embeddings, error) {
	if len(words) != len(vecs) {
		return nil, fmt.Errorf("words/vectors length mismatch: %d vs %d", len(words), len(vecs))
	}

	dim := 0
	if len(vecs) > 0 {
		dim = len(vecs[0])
	}

	index := make(map[string]int, len(words))
	for i, w := range words {
		if len(vecs[i]) != dim {
			return nil, fmt.Errorf("vector for %q has dimension %d, expected %d", w, len(vecs[i]), dim)
		}
		index[w] = i
	}

	return &Embeddings{words: words, index: index, vecs: vecs, dim: dim}, nil
}

// Len returns the number of words in the table.
func (e *Embeddings) Len() int {
	return len(e.words)
}

// Dim returns the vector dimension.
func (e *Embeddings) Dim() int {
	return e.dim
}

// Vector returns the embedding for word.
func (e *Embeddings) Vector(word string) ([]float64, error) {
	i, ok := e.index[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}
	return e.vecs[i], nil
}

// MostSimilar returns the k words closest to word by cosine similarity,
// excluding the word itself, sorted by descending similarity.
func (e *Embeddings) MostSimilar(word string, k int) ([]Match, error) {
	query, err := e.Vector(word)
	if err != nil {
		return nil, err
	}
	return e.rank(query, k, map[string]bool{word: true}), nil
}

// Analogy solves a:b :: c:? and returns the k best candidates, excluding the
// three query words. The target vector is b - a + c.
func (e *Embeddings) Analogy(a, b, c string, k int) ([]Match, error) {
	va, err := e.Vector(a)
	if err != nil {
		return nil, err
	}
	vb, err := e.Vector(b)
	if err != nil {
		return nil, err
	}
	vc, err := e.Vector(c)
	if err != nil {
		return nil, err
	}

	target := make([]float64, e.dim)
	for i := range target {
		target[i] = vb[i] - va[i] + vc[i]
	}
	return e.rank(target, k, map[string]bool{a: true, b: true, c: true}), nil
}

func (e *Embeddings) rank(query []float64, k int, exclude map[string]bool) []Match {
	matches := make([]Match, 0, len(e.words))
	for i, w := range e.words {
		if exclude[w] {
			continue
		}
		matches = append(matches, Match{Word: w, Similarity: Cosine(query, e.vecs[i])})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Word < matches[j].Word
	})

	if k >= 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
