package filter

import (
	"errors"
	"fmt"
)

// ErrNotArray is returned when a filter is applied to a document that is not an array
var ErrNotArray = errors.New("document is not an array")

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Err        error
	}

	// EvaluationError indicates a filter could not be evaluated against a record
	EvaluationError struct {
		Expression string
		Index      int
		Err        error
	}
)

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in '%s': %v", e.Expression, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for filter '%s' on record %d: %v", e.Expression, e.Index, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
