package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFieldType matches InvalidFieldTypeError via errors.Is.
	ErrInvalidFieldType = errors.New("model: invalid field type")
	// ErrInvalidFieldID matches InvalidFieldIDError via errors.Is.
	ErrInvalidFieldID = errors.New("model: invalid field id")
)

// InvalidFieldTypeError reports a type token outside the closed variant set.
type InvalidFieldTypeError struct {
	Type string
}

func (e *InvalidFieldTypeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("model: invalid field type %q", e.Type)
}

func (e *InvalidFieldTypeError) Is(target error) bool {
	return target == ErrInvalidFieldType
}

// InvalidFieldIDError reports an identifier that does not follow the
// field_<n> shape.
type InvalidFieldIDError struct {
	ID  string
	Err error
}

func (e *InvalidFieldIDError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("model: invalid field id %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("model: invalid field id %q", e.ID)
}

func (e *InvalidFieldIDError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *InvalidFieldIDError) Is(target error) bool {
	return target == ErrInvalidFieldID
}
