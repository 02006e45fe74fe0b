package model

const (
	fallbackLabel       = "Field Label"
	fallbackPlaceholder = ""
)

var defaultLabels = map[FieldType]string{
	FieldTypeText:     "Text Input",
	FieldTypeEmail:    "Email Address",
	FieldTypeNumber:   "Number",
	FieldTypeTel:      "Phone Number",
	FieldTypeTextarea: "Message",
	FieldTypeCheckbox: "Checkbox Option",
	FieldTypeRadio:    "Radio Option",
	FieldTypeSelect:   "Select Option",
	FieldTypeDate:     "Date",
	FieldTypeFile:     "File Upload",
}

// Checkbox, radio and select have no placeholder entry and fall back to "".
var defaultPlaceholders = map[FieldType]string{
	FieldTypeText:     "Enter text...",
	FieldTypeEmail:    "Enter email address...",
	FieldTypeNumber:   "Enter number...",
	FieldTypeTel:      "Enter phone number...",
	FieldTypeTextarea: "Enter your message...",
	FieldTypeDate:     "Select date...",
	FieldTypeFile:     "Choose file...",
}

var defaultOptions = []string{"Option 1", "Option 2", "Option 3"}

// DefaultLabel returns the label a freshly created field of the given type
// starts with.
func DefaultLabel(t FieldType) string {
	if label, ok := defaultLabels[t]; ok {
		return label
	}
	return fallbackLabel
}

// DefaultPlaceholder returns the placeholder a freshly created field of the
// given type starts with.
func DefaultPlaceholder(t FieldType) string {
	if placeholder, ok := defaultPlaceholders[t]; ok {
		return placeholder
	}
	return fallbackPlaceholder
}

// DefaultOptions returns the starter choices for select and radio fields and
// an empty list for every other variant.
func DefaultOptions(t FieldType) []string {
	if !t.HasOptions() {
		return []string{}
	}
	out := make([]string, len(defaultOptions))
	copy(out, defaultOptions)
	return out
}
