package glovego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/glovego/train"
)

var (
	// ErrNotFound is returned when a word is not part of the vocabulary
	// or embedding table.
	ErrNotFound = errors.New("not found")

	// ErrVocabNotBuilt is returned when an operation needs a vocabulary
	// and none has been built or loaded yet.
	ErrVocabNotBuilt = errors.New("vocabulary not built")

	// ErrNoRecords is returned when training is requested before any
	// co-occurrence records have been accumulated or loaded.
	ErrNoRecords = errors.New("no co-occurrence records")

	// ErrNotTrained is returned when embeddings are requested before a
	// training run has produced parameters.
	ErrNotTrained = errors.New("model not trained")
)

// ErrIndexOutOfRange indicates a word index outside the parameter table.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
	cause error
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (size %d)", e.Index, e.Size)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates an invalid configured vector size.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var oor *train.ErrIndexOutOfRange
	if errors.As(err, &oor) {
		return &ErrIndexOutOfRange{Index: oor.Index, Size: oor.Size, cause: err}
	}
	var id *train.ErrInvalidDimension
	if errors.As(err, &id) {
		return &ErrInvalidDimension{Dimension: id.Dimension, cause: err}
	}

	return err
}
