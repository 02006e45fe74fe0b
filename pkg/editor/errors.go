package editor

import (
	"errors"

	"github.com/goliatone/go-formbuilder/pkg/render"
)

var (
	// ErrEmptyCollection is returned by operations that need at least one
	// field (ClearAll, Preview, Export).
	ErrEmptyCollection = render.ErrEmptyCollection
	// ErrDuplicateFieldID is returned when Append receives an id already in the
	// collection.
	ErrDuplicateFieldID = errors.New("editor: duplicate field id")
	// ErrUnknownFieldID is returned by operations that cannot treat a missing
	// field as already satisfied (Move, AttachFiles).
	ErrUnknownFieldID = errors.New("editor: unknown field id")
	// ErrNotFileField is returned when uploads target a non-file field.
	ErrNotFileField = errors.New("editor: field does not accept uploads")
)
