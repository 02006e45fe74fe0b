package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Renderer converts an ordered field collection into a byte representation
// (HTML views, schema documents, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, fields []model.Field, options RenderOptions) ([]byte, error)
}
