package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeEmail    = internalmodel.FieldTypeEmail
	FieldTypeNumber   = internalmodel.FieldTypeNumber
	FieldTypeTel      = internalmodel.FieldTypeTel
	FieldTypeTextarea = internalmodel.FieldTypeTextarea
	FieldTypeCheckbox = internalmodel.FieldTypeCheckbox
	FieldTypeRadio    = internalmodel.FieldTypeRadio
	FieldTypeSelect   = internalmodel.FieldTypeSelect
	FieldTypeDate     = internalmodel.FieldTypeDate
	FieldTypeFile     = internalmodel.FieldTypeFile
)

const (
	FileKindImage       = internalmodel.FileKindImage
	FileKindVideo       = internalmodel.FileKindVideo
	FileKindAudio       = internalmodel.FileKindAudio
	FileKindPDF         = internalmodel.FileKindPDF
	FileKindDocument    = internalmodel.FileKindDocument
	FileKindSpreadsheet = internalmodel.FileKindSpreadsheet
	FileKindArchive     = internalmodel.FileKindArchive
	FileKindOther       = internalmodel.FileKindOther
)

type Field = internalmodel.Field
type Patch = internalmodel.Patch
type UploadedFile = internalmodel.UploadedFile
type FileKind = internalmodel.FileKind

type InvalidFieldTypeError = internalmodel.InvalidFieldTypeError
type InvalidFieldIDError = internalmodel.InvalidFieldIDError

var (
	ErrInvalidFieldType = internalmodel.ErrInvalidFieldType
	ErrInvalidFieldID   = internalmodel.ErrInvalidFieldID
)

// FieldTypes lists every variant in palette order.
func FieldTypes() []FieldType {
	return internalmodel.FieldTypes()
}

// ParseFieldType validates a palette token.
func ParseFieldType(raw string) (FieldType, error) {
	return internalmodel.ParseFieldType(raw)
}

// ParseOptions splits multi-line option text, dropping blank lines.
func ParseOptions(text string) []string {
	return internalmodel.ParseOptions(text)
}

// OptionsText joins options into the editable multi-line form.
func OptionsText(options []string) string {
	return internalmodel.OptionsText(options)
}

// FieldID formats the identifier for counter value n.
func FieldID(n int) string {
	return internalmodel.FieldID(n)
}

// ParseFieldID extracts the counter value from a field identifier.
func ParseFieldID(id string) (int, error) {
	return internalmodel.ParseFieldID(id)
}

// FormatSize renders an upload size for display.
func FormatSize(bytes int64) string {
	return internalmodel.FormatSize(bytes)
}

// CloneFields deep-copies a field collection.
func CloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}
