package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	// ExtensionFieldType records the builder variant on each property.
	ExtensionFieldType = "x-field-type"
	// ExtensionFieldOrder records the collection order on the object schema,
	// since schema properties are unordered.
	ExtensionFieldOrder = "x-field-order"
)

// SubmissionSchema returns the object schema of a submission keyed by field
// id. Required fields are listed in Required; labels become titles and
// placeholders descriptions.
func SubmissionSchema(fields []model.Field) (*openapi3.Schema, error) {
	schema := openapi3.NewObjectSchema()
	schema.Properties = make(openapi3.Schemas, len(fields))

	order := make([]any, 0, len(fields))
	var required []string
	for _, field := range fields {
		if _, exists := schema.Properties[field.ID]; exists {
			return nil, fmt.Errorf("openapi: duplicate field id %q", field.ID)
		}
		property, err := propertySchema(field)
		if err != nil {
			return nil, err
		}
		schema.Properties[field.ID] = openapi3.NewSchemaRef("", property)
		order = append(order, field.ID)
		if field.Required {
			required = append(required, field.ID)
		}
	}
	schema.Required = required
	schema.Extensions = map[string]any{ExtensionFieldOrder: order}
	return schema, nil
}

func propertySchema(field model.Field) (*openapi3.Schema, error) {
	var schema *openapi3.Schema
	switch field.Type {
	case model.FieldTypeText, model.FieldTypeTextarea, model.FieldTypeTel:
		schema = openapi3.NewStringSchema()
	case model.FieldTypeEmail:
		schema = openapi3.NewStringSchema().WithFormat("email")
	case model.FieldTypeNumber:
		schema = openapi3.NewFloat64Schema()
	case model.FieldTypeDate:
		schema = openapi3.NewStringSchema().WithFormat("date")
	case model.FieldTypeCheckbox:
		schema = openapi3.NewBoolSchema()
	case model.FieldTypeRadio, model.FieldTypeSelect:
		schema = openapi3.NewStringSchema()
		if len(field.Options) > 0 {
			values := make([]any, 0, len(field.Options))
			for _, option := range field.Options {
				values = append(values, option)
			}
			schema.Enum = values
		}
	case model.FieldTypeFile:
		schema = openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema().WithFormat("binary"))
	default:
		return nil, fmt.Errorf("openapi: field %q: %w", field.ID, &model.InvalidFieldTypeError{Type: string(field.Type)})
	}

	schema.Title = field.Label
	if field.Type.SupportsPlaceholder() {
		schema.Description = field.Placeholder
	}
	schema.Extensions = map[string]any{ExtensionFieldType: string(field.Type)}
	return schema, nil
}

// ContentType returns the request media type a browser uses to submit the
// fields: multipart when a file field is present, urlencoded otherwise.
func ContentType(fields []model.Field) string {
	for _, field := range fields {
		if field.Type == model.FieldTypeFile {
			return "multipart/form-data"
		}
	}
	return "application/x-www-form-urlencoded"
}
