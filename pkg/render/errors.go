package render

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection is returned when an operation needs at least one
	// field (preview, export, clear all).
	ErrEmptyCollection = errors.New("render: collection has no fields")
	// ErrRendererNotFound reports a registry lookup miss.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrUnknownView reports a view the renderer cannot produce.
	ErrUnknownView = errors.New("render: unknown view")
)

// UnknownViewError names the rejected view.
type UnknownViewError struct {
	View string
}

func (e *UnknownViewError) Error() string {
	return fmt.Sprintf("render: unknown view %q", e.View)
}

func (e *UnknownViewError) Is(target error) bool {
	return target == ErrUnknownView
}
