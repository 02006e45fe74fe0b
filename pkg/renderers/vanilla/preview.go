package vanilla

import (
	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	previewPrefix = "preview_"
	submitLabel   = "Submit Form"
)

// PreviewView renders the end-user form: one form group per field with its
// label always shown, followed by the submit group. Control ids and radio
// group names are prefixed with "preview_" so they never collide with the
// editor canvas.
func PreviewView(fields []model.Field) *markup.Node {
	root := markup.Fragment()
	for _, field := range fields {
		root.Append(previewField(field))
	}
	root.Append(markup.El("div",
		markup.El("button", markup.Text(submitLabel)).
			Set("type", "submit").
			Class(classes(ClassButton, ClassButtonPrimary)...),
	).Class(ClassFormGroup.String()))
	return root
}

func previewField(field model.Field) *markup.Node {
	group := markup.El("div").Class(ClassFormGroup.String())
	label := markup.El("label", markup.Text(labelText(field)))

	switch field.Type {
	case model.FieldTypeText, model.FieldTypeEmail, model.FieldTypeNumber, model.FieldTypeTel, model.FieldTypeDate:
		group.Append(label, textInput(field))
	case model.FieldTypeTextarea:
		group.Append(label, textArea(field))
	case model.FieldTypeCheckbox:
		id := previewPrefix + field.ID
		group.Append(markup.El("div",
			checkboxInput(field, id),
			label.Set("for", id),
		).Class(ClassInlineChoice.String()))
	case model.FieldTypeRadio:
		group.Append(label)
		for i, option := range field.Options {
			group.Append(radioItem(field, previewPrefix+field.ID, option, i).Class(ClassInlineChoice.String()))
		}
	case model.FieldTypeSelect:
		group.Append(label, selectControl(field))
	case model.FieldTypeFile:
		group.Append(label, markup.El("input").
			Set("type", "file").
			FlagIf(field.Required, "required"))
	default:
		return nil
	}
	return group
}
