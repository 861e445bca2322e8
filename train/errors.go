package train

import "fmt"

// ErrIndexOutOfRange indicates a vocabulary index outside the parameter
// arrays. Only returned by lookups such as EmbeddingOf; TrainRecord treats
// out-of-range indices as a silent no-op instead.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (vocabulary size %d)", e.Index, e.Size)
}

// ErrInvalidDimension indicates an invalid configured vector dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid vector dimension: %d", e.Dimension)
}
