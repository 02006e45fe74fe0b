package openapi

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ErrNotSubmissionDocument is returned by Import for documents that were not
// produced by Document.
var ErrNotSubmissionDocument = errors.New("openapi: not a submission document")

// Load parses and validates an OpenAPI document from JSON or YAML.
func Load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// Import rebuilds the field collection described by a submission document.
// Fields come back in the recorded order; placeholders of variants that do not
// expose them take the factory defaults.
func Import(doc *openapi3.T) ([]model.Field, error) {
	schema, err := submissionSchema(doc)
	if err != nil {
		return nil, err
	}

	order, err := stringList(schema.Extensions[ExtensionFieldOrder])
	if err != nil || len(order) != len(schema.Properties) {
		return nil, fmt.Errorf("%w: %s is missing or incomplete", ErrNotSubmissionDocument, ExtensionFieldOrder)
	}

	fields := make([]model.Field, 0, len(order))
	for _, id := range order {
		ref, ok := schema.Properties[id]
		if !ok || ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("%w: property %q not found", ErrNotSubmissionDocument, id)
		}
		field, err := importField(id, ref.Value, slices.Contains(schema.Required, id))
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func submissionSchema(doc *openapi3.T) (*openapi3.Schema, error) {
	if doc == nil || doc.Paths == nil {
		return nil, ErrNotSubmissionDocument
	}
	for _, item := range doc.Paths.Map() {
		if item == nil || item.Post == nil || item.Post.RequestBody == nil || item.Post.RequestBody.Value == nil {
			continue
		}
		for _, mediaType := range item.Post.RequestBody.Value.Content {
			if mediaType == nil || mediaType.Schema == nil || mediaType.Schema.Value == nil {
				continue
			}
			if _, ok := mediaType.Schema.Value.Extensions[ExtensionFieldOrder]; ok {
				return mediaType.Schema.Value, nil
			}
		}
	}
	return nil, ErrNotSubmissionDocument
}

func importField(id string, schema *openapi3.Schema, required bool) (model.Field, error) {
	raw, _ := schema.Extensions[ExtensionFieldType].(string)
	fieldType, err := model.ParseFieldType(raw)
	if err != nil {
		return model.Field{}, fmt.Errorf("openapi: property %q: %w", id, err)
	}
	if _, err := model.ParseFieldID(id); err != nil {
		return model.Field{}, fmt.Errorf("openapi: property %q: %w", id, err)
	}

	field := model.Field{
		ID:          id,
		Type:        fieldType,
		Label:       schema.Title,
		Placeholder: model.DefaultPlaceholder(fieldType),
		Required:    required,
		Options:     []string{},
	}
	if fieldType.SupportsPlaceholder() {
		field.Placeholder = schema.Description
	}
	if fieldType.HasOptions() {
		for _, value := range schema.Enum {
			option, ok := value.(string)
			if !ok {
				return model.Field{}, fmt.Errorf("openapi: property %q: option %v is not a string", id, value)
			}
			field.Options = append(field.Options, option)
		}
	}
	return field, nil
}

func stringList(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected entry %v", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected value %T", value)
	}
}
