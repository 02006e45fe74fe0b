package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Renderer exposes Document through the render registry. Only the title of
// render.RenderOptions is used; views and themes do not apply.
type Renderer struct {
	options DocumentOptions
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer returns a renderer producing indented JSON documents.
func NewRenderer(options DocumentOptions) *Renderer {
	return &Renderer{options: options}
}

func (r *Renderer) Name() string {
	return "openapi"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, fields []model.Field, options render.RenderOptions) ([]byte, error) {
	if len(fields) == 0 {
		return nil, render.ErrEmptyCollection
	}
	docOptions := r.options
	if options.Title != "" {
		docOptions.Title = options.Title
	}
	doc, err := Document(ctx, fields, docOptions)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode document: %w", err)
	}
	return append(out, '\n'), nil
}
