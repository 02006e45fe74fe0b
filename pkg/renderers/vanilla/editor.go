package vanilla

import (
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	emptyStateMessage = "Drag and drop fields here to build your form"
	selectPrompt      = "Select an option"
	uploadText        = "Click to browse or drag files here"
	uploadHint        = "Supports all file types"
)

// EditorOption customises the editor view.
type EditorOption func(*editorConfig)

type editorConfig struct {
	uploads map[string][]model.UploadedFile
}

// WithUploads renders preview items for files attached to file fields, keyed
// by field id.
func WithUploads(uploads map[string][]model.UploadedFile) EditorOption {
	return func(cfg *editorConfig) {
		cfg.uploads = uploads
	}
}

// EditorView renders the authoring canvas: one draggable card per field in
// collection order, or the empty state when there are no fields. selectedID
// marks one card as selected.
func EditorView(fields []model.Field, selectedID string, opts ...EditorOption) *markup.Node {
	cfg := editorConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(fields) == 0 {
		return markup.El("div",
			markup.El("div", markup.Text("📋")).Class(ClassEmptyIcon.String()),
			markup.El("p", markup.Text(emptyStateMessage)),
		).Class(ClassEmptyState.String())
	}

	root := markup.Fragment()
	for _, field := range fields {
		root.Append(editorField(field, field.ID == selectedID, cfg.uploads[field.ID]))
	}
	return root
}

func editorField(field model.Field, selected bool, uploads []model.UploadedFile) *markup.Node {
	header := markup.El("div",
		markup.El("span", markup.Text(field.Type.String())).Class(ClassTypeBadge.String()),
		markup.El("div",
			markup.El("button", markup.Text("⚙️")).
				Class(classes(ClassActionButton, ClassEditAction)...).
				Set("title", "Edit"),
			markup.El("button", markup.Text("🗑️")).
				Class(classes(ClassActionButton, ClassDeleteAction)...).
				Set("title", "Delete"),
		).Class(ClassFieldActions.String()),
	).Class(ClassFieldHeader.String())

	content := markup.El("div").Class(ClassFieldContent.String())
	if field.Type != model.FieldTypeCheckbox {
		content.Append(markup.El("label", markup.Text(labelText(field))))
	}
	content.Append(editorControl(field, uploads))

	card := markup.El("div", header, content).
		Class(ClassFormField.String()).
		Set("data-field-id", field.ID).
		Set("draggable", "true")
	if selected {
		card.Class(ClassSelected.String())
	}
	return card
}

func editorControl(field model.Field, uploads []model.UploadedFile) *markup.Node {
	switch field.Type {
	case model.FieldTypeText, model.FieldTypeEmail, model.FieldTypeNumber, model.FieldTypeTel, model.FieldTypeDate:
		return textInput(field)
	case model.FieldTypeTextarea:
		return textArea(field)
	case model.FieldTypeCheckbox:
		id := field.ID + "_cb"
		return markup.El("div",
			markup.El("div",
				checkboxInput(field, id),
				markup.El("label", markup.Text(field.Label)).Set("for", id),
			).Class(ClassCheckboxItem.String()),
		).Class(ClassCheckboxGroup.String())
	case model.FieldTypeRadio:
		group := markup.El("div").Class(ClassRadioGroup.String())
		for i, option := range field.Options {
			group.Append(radioItem(field, field.ID, option, i).Class(ClassRadioItem.String()))
		}
		return group
	case model.FieldTypeSelect:
		return selectControl(field)
	case model.FieldTypeFile:
		return fileDropzone(field, uploads)
	default:
		return nil
	}
}

func textInput(field model.Field) *markup.Node {
	return markup.El("input").
		Set("type", field.Type.InputKind()).
		Set("placeholder", field.Placeholder).
		FlagIf(field.Required, "required")
}

func textArea(field model.Field) *markup.Node {
	return markup.El("textarea").
		Set("placeholder", field.Placeholder).
		FlagIf(field.Required, "required")
}

func checkboxInput(field model.Field, id string) *markup.Node {
	return markup.El("input").
		Set("type", "checkbox").
		Set("id", id).
		FlagIf(field.Required, "required")
}

// radioItem renders one option of a radio group. Every entry shares the group
// name and repeats the required flag.
func radioItem(field model.Field, group, option string, index int) *markup.Node {
	id := group + "_" + strconv.Itoa(index)
	return markup.El("div",
		markup.El("input").
			Set("type", "radio").
			Set("name", group).
			Set("id", id).
			FlagIf(field.Required, "required"),
		markup.El("label", markup.Text(option)).Set("for", id),
	)
}

func selectControl(field model.Field) *markup.Node {
	sel := markup.El("select").FlagIf(field.Required, "required")
	sel.Append(markup.El("option", markup.Text(selectPrompt)).Set("value", ""))
	for _, option := range field.Options {
		sel.Append(markup.El("option", markup.Text(option)).Set("value", option))
	}
	return sel
}

func fileDropzone(field model.Field, uploads []model.UploadedFile) *markup.Node {
	zone := markup.El("div",
		markup.El("input").
			Set("type", "file").
			Set("id", "file_"+field.ID).
			FlagIf(field.Required, "required").
			Flag("multiple"),
		markup.El("div", markup.Text("📁")).Class(ClassUploadIcon.String()),
		markup.El("div", markup.Text(uploadText)).Class(ClassUploadText.String()),
		markup.El("div", markup.Text(uploadHint)).Class(ClassUploadHint.String()),
	).Class(ClassUploadZone.String()).Set("id", "upload_"+field.ID)

	previews := markup.El("div").Class(ClassFilePreviews.String()).Set("id", "preview_"+field.ID)
	for _, file := range uploads {
		previews.Append(FilePreviewItem(file))
	}

	return markup.El("div", zone, previews).
		Class(ClassUploadWrapper.String()).
		Set("data-field-id", field.ID)
}

func labelText(field model.Field) string {
	if field.Required {
		return field.Label + " *"
	}
	return field.Label
}
