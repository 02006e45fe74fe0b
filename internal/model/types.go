package model

import "strings"

// FieldType is the closed set of form control variants the builder offers.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTel      FieldType = "tel"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeSelect   FieldType = "select"
	FieldTypeDate     FieldType = "date"
	FieldTypeFile     FieldType = "file"
)

var paletteOrder = []FieldType{
	FieldTypeText,
	FieldTypeEmail,
	FieldTypeNumber,
	FieldTypeTel,
	FieldTypeTextarea,
	FieldTypeCheckbox,
	FieldTypeRadio,
	FieldTypeSelect,
	FieldTypeDate,
	FieldTypeFile,
}

// FieldTypes returns every variant in palette order.
func FieldTypes() []FieldType {
	out := make([]FieldType, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}

// ParseFieldType resolves a palette token into a FieldType. Tokens are matched
// case-insensitively after trimming; anything outside the closed set is
// rejected.
func ParseFieldType(raw string) (FieldType, error) {
	candidate := FieldType(strings.ToLower(strings.TrimSpace(raw)))
	if !candidate.Valid() {
		return "", &InvalidFieldTypeError{Type: raw}
	}
	return candidate, nil
}

// Valid reports whether the type is part of the closed set.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeNumber, FieldTypeTel, FieldTypeTextarea,
		FieldTypeCheckbox, FieldTypeRadio, FieldTypeSelect, FieldTypeDate, FieldTypeFile:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the variant carries a choice list.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio
}

// SupportsPlaceholder reports whether the placeholder property is editable for
// the variant. File fields keep their default placeholder but never expose it.
func (t FieldType) SupportsPlaceholder() bool {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeNumber, FieldTypeTel,
		FieldTypeTextarea, FieldTypeDate:
		return true
	default:
		return false
	}
}

// InputKind returns the HTML input type for single-line variants and an empty
// string for variants rendered with other controls.
func (t FieldType) InputKind() string {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypeNumber, FieldTypeTel, FieldTypeDate:
		return string(t)
	default:
		return ""
	}
}

func (t FieldType) String() string {
	return string(t)
}

// Field is one form element definition. Struct tags mirror the persisted
// record shape {id, type, label, placeholder, required, options}.
type Field struct {
	ID          string    `json:"id" yaml:"id"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder" yaml:"placeholder"`
	Required    bool      `json:"required" yaml:"required"`
	Options     []string  `json:"options" yaml:"options"`
}

// Clone returns a copy that shares no option storage with the receiver.
func (f Field) Clone() Field {
	out := f
	out.Options = make([]string, len(f.Options))
	copy(out.Options, f.Options)
	return out
}

// Patch carries the editable properties submitted from the properties panel.
// Options holds the raw multi-line text, one choice per line.
type Patch struct {
	Label       string
	Placeholder string
	Required    bool
	Options     string
}

// Apply copies the patch onto field following the variant rules: label and
// required always apply, placeholder only when the variant supports one and
// options only for choice variants.
func (p Patch) Apply(field *Field) {
	if field == nil {
		return
	}
	field.Label = p.Label
	field.Required = p.Required
	if field.Type.SupportsPlaceholder() {
		field.Placeholder = p.Placeholder
	}
	if field.Type.HasOptions() {
		field.Options = ParseOptions(p.Options)
	}
}

// OptionsText joins the option list back into the editable multi-line form.
func OptionsText(options []string) string {
	return strings.Join(options, "\n")
}

// ParseOptions splits multi-line text into choices, discarding blank lines.
func ParseOptions(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
