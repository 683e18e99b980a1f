package w2vtext

import (
	"errors"
	"fmt"
)

// ErrEmptyVocabulary is returned when a matrix is filled for a
// vocabulary without entries, for which no hit rate exists.
var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// FormatError reports a line of an embedding file that does not have
// the expected shape.
type FormatError struct {
	// Line is the 1-based line number, 0 if the error is not tied to a
	// line.
	Line int

	// Expected and Got are field counts. Both are zero when Msg
	// describes the problem instead.
	Expected int
	Got      int

	Msg string
}

func (e *FormatError) Error() string {
	var msg string
	if e.Msg != "" {
		msg = e.Msg
	} else {
		msg = fmt.Sprintf("expected %d fields (token + %d dimensions), got %d",
			e.Expected, e.Expected-1, e.Got)
	}

	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// DimensionMismatchError is returned when a dimensionality differs from
// the one that was expected, either by the caller of Open or Read, or
// by the matrix passed to FillMatrix.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("expected embedding dimension %d, got %d", e.Expected, e.Actual)
}

// CountMismatchError is returned when the vocabulary size in the header
// does not match the number of vectors in the file.
type CountMismatchError struct {
	Declared int
	Actual   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("header declares %d vectors, file contains %d", e.Declared, e.Actual)
}

// IndexError is returned when a vocabulary index does not address a
// row of the embedding matrix.
type IndexError struct {
	Token string
	Index int
	Rows  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d of token '%s' is outside the embedding matrix (%d rows)",
		e.Index, e.Token, e.Rows)
}

// NumberError is returned when a stored vector component cannot be
// parsed as a floating point number.
type NumberError struct {
	Token string

	// Field is the 0-based vector component.
	Field int

	Err error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("component %d of vector '%s': %s", e.Field, e.Token, e.Err)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}

// UnknownWordError is returned by queries on words without a vector.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("Unknown word: %s", e.Word)
}
