package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError is a user correctable input problem. Its message is safe to
// show to the end user.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, a ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, a...)}
}

func MinimumLength(str string, minLength int) *ValidationError {
	return NewValidationError("the name provided: '%v' is too short. It must be at least %v characters", str, minLength)
}

func (e *ValidationError) Error() string {
	return "Validation Error: " + e.Message
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNonDestructive = errors.New("non-destructive function")
	ErrInvalidIndex   = errors.New("invalid index")
	ErrNotImplemented = errors.New("not implemented")
	ErrInconsistent   = errors.New("inconsistent layout")
)

// StructuralError means the caller broke an invariant of the layout, like
// referencing an unknown spot. Kind is one of the Err* sentinels above.
type StructuralError struct {
	Kind    error
	Message string
}

func newStructuralError(kind error, format string, a ...any) *StructuralError {
	return &StructuralError{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind.Error(), e.Message)
}

func (e *StructuralError) Unwrap() error {
	return e.Kind
}

func IsStructuralError(err error) bool {
	var s *StructuralError
	return errors.As(err, &s)
}
