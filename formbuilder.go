package formbuilder

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

// Field aliases model.Field for callers that only need the facade.
type Field = model.Field

// FieldType aliases model.FieldType.
type FieldType = model.FieldType

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Session aliases editor.Session.
type Session = editor.Session

// NewSession opens an editing session. Without options the collection lives
// in memory and destructive operations are approved automatically.
func NewSession(ctx context.Context, options ...editor.Option) (*Session, error) {
	return editor.New(ctx, options...)
}

// NewRegistry returns a registry holding the built-in renderers: "vanilla"
// for HTML views and "openapi" for the submission schema.
func NewRegistry(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, openapi.NewRenderer(openapi.DocumentOptions{})), nil
}

// ExportHTML renders fields as a standalone HTML document. It is the simplest
// entry point for callers that already hold a field collection.
func ExportHTML(ctx context.Context, fields []Field, options RenderOptions) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	options.View = render.ViewDocument
	return registry.Render(ctx, "vanilla", fields, options)
}

// ExportSchema renders fields as an OpenAPI document describing the form
// submission.
func ExportSchema(ctx context.Context, fields []Field, options openapi.DocumentOptions) ([]byte, error) {
	return openapi.NewRenderer(options).Render(ctx, fields, RenderOptions{})
}
