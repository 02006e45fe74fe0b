package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// Factory mints fields with type-appropriate defaults.
type Factory = internalmodel.Factory

// NewFactory returns a Factory whose next identifier is field_<next>.
func NewFactory(next int) *Factory {
	return internalmodel.NewFactory(next)
}

// DefaultLabel exposes the per-type label table.
func DefaultLabel(t FieldType) string {
	return internalmodel.DefaultLabel(t)
}

// DefaultPlaceholder exposes the per-type placeholder table.
func DefaultPlaceholder(t FieldType) string {
	return internalmodel.DefaultPlaceholder(t)
}
