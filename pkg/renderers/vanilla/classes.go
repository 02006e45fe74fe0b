package vanilla

// Class is a typed identifier for the CSS classes the views emit. Host
// stylesheets and scripts target these names.
type Class string

const (
	ClassFormField     Class = "form-field"
	ClassSelected      Class = "selected"
	ClassFieldHeader   Class = "field-header"
	ClassTypeBadge     Class = "field-type-badge"
	ClassFieldActions  Class = "field-actions"
	ClassActionButton  Class = "field-action-btn"
	ClassEditAction    Class = "edit"
	ClassDeleteAction  Class = "delete"
	ClassFieldContent  Class = "field-content"
	ClassEmptyState    Class = "empty-state"
	ClassEmptyIcon     Class = "empty-icon"
	ClassCheckboxGroup Class = "checkbox-group"
	ClassCheckboxItem  Class = "checkbox-item"
	ClassRadioGroup    Class = "radio-group"
	ClassRadioItem     Class = "radio-item"
	ClassInlineChoice  Class = "inline-choice"
	ClassUploadWrapper Class = "file-upload-wrapper"
	ClassUploadZone    Class = "file-upload-zone"
	ClassUploadIcon    Class = "upload-icon"
	ClassUploadText    Class = "upload-text"
	ClassUploadHint    Class = "upload-hint"
	ClassFilePreviews  Class = "file-preview-container"
	ClassFilePreview   Class = "file-preview-item"
	ClassFileIcon      Class = "file-preview-icon"
	ClassFileInfo      Class = "file-preview-info"
	ClassFileName      Class = "file-preview-name"
	ClassFileSize      Class = "file-preview-size"
	ClassFileRemove    Class = "file-remove-btn"
	ClassFormGroup     Class = "form-group"
	ClassButton        Class = "btn"
	ClassButtonPrimary Class = "btn-primary"
	ClassNoSelection   Class = "no-selection"
	ClassPropertyGroup Class = "property-group"
	ClassCheckboxProp  Class = "checkbox-property"
)

// String returns the class name.
func (c Class) String() string { return string(c) }

func classes(cs ...Class) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}
