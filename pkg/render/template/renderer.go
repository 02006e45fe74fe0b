package template

import (
	"io"
)

// TemplateRenderer is the engine seam renderers depend on. It mirrors the
// github.com/goliatone/go-template contract so engines can be swapped.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
