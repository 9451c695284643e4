package tag

import (
	"errors"
	"fmt"
	"reflect"
)

// Error types for tag processing
var (
	ErrTargetMustBePointer = errors.New("tag: target must be a pointer")
	ErrTargetIsNil         = errors.New("tag: target is nil")
	ErrUnsupportedType     = errors.New("tag: unsupported type")
	ErrMaxDepthExceeded    = errors.New("tag: max recursion depth exceeded")
)

// FieldError wraps an error with field path context
type FieldError struct {
	Path  string
	Kind  reflect.Kind
	Value string
	Err   error
}

// Error implements error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("tag: field %q (type: %s, default: %q): %v", e.Path, e.Kind, e.Value, e.Err)
}

// Unwrap returns the wrapped error
func (e *FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(path string, kind reflect.Kind, value string, err error) error {
	return &FieldError{
		Path:  path,
		Kind:  kind,
		Value: value,
		Err:   err,
	}
}
