package vanilla

import (
	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

const noSelectionMessage = "Select a field to edit its properties"

// PropertiesView renders the property panel for the selected field, or the
// no-selection hint when field is nil. The placeholder input only appears for
// variants with an editable placeholder and the options textarea only for
// choice variants.
func PropertiesView(field *model.Field) *markup.Node {
	if field == nil {
		return markup.El("div", markup.El("p", markup.Text(noSelectionMessage))).
			Class(ClassNoSelection.String())
	}

	panel := markup.Fragment(
		propertyGroup("Field Label", markup.El("input").
			Set("type", "text").
			Set("id", "fieldLabel").
			Set("value", field.Label)),
	)
	if field.Type.SupportsPlaceholder() {
		panel.Append(propertyGroup("Placeholder", markup.El("input").
			Set("type", "text").
			Set("id", "fieldPlaceholder").
			Set("value", field.Placeholder)))
	}
	if field.Type.HasOptions() {
		panel.Append(propertyGroup("Options (one per line)", markup.El("textarea",
			markup.Text(model.OptionsText(field.Options)),
		).Set("id", "fieldOptions").Set("rows", "5")))
	}
	panel.Append(
		markup.El("div",
			markup.El("input").
				Set("type", "checkbox").
				Set("id", "fieldRequired").
				FlagIf(field.Required, "checked"),
			markup.El("label", markup.Text("Required Field")).Set("for", "fieldRequired"),
		).Class(ClassCheckboxProp.String()),
		markup.El("button", markup.Text("✅ Update Field")).
			Set("id", "updateFieldBtn").
			Class(classes(ClassButton, ClassButtonPrimary)...),
	)
	return panel
}

func propertyGroup(label string, control *markup.Node) *markup.Node {
	return markup.El("div", markup.El("label", markup.Text(label)), control).
		Class(ClassPropertyGroup.String())
}
