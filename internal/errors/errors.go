// Package errors defines the failure modes of a conversion.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected failure modes
var (
	ErrSourceRead    = errors.New("cannot read preset")
	ErrEmptyChain    = errors.New("preset has no plugins")
	ErrDuplicateNode = errors.New("duplicate node name")
	ErrUnknownPlugin = errors.New("unknown plugin type")
	ErrWrite         = errors.New("cannot write output")
)

// StageError records which step of a conversion failed and on what.
type StageError struct {
	Stage string // "load", "build", "encode", "write"
	Path  string // file or node the stage was working on, if any
	Cause error
}

func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

// NewStageError creates a StageError
func NewStageError(stage, path string, cause error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Cause: cause,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
