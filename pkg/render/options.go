package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// View selects which projection of the collection a renderer produces.
type View string

const (
	// ViewEditor is the authoring canvas with per-field edit/delete chrome.
	ViewEditor View = "editor"
	// ViewPreview is the end-user form fragment.
	ViewPreview View = "preview"
	// ViewDocument is the standalone exported HTML document.
	ViewDocument View = "document"
)

// Views lists the supported views in pipeline order.
func Views() []View {
	return []View{ViewEditor, ViewPreview, ViewDocument}
}

// ParseView normalises raw input, defaulting blank values to the preview.
func ParseView(raw string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return ViewPreview, nil
	case ViewEditor:
		return ViewEditor, nil
	case ViewPreview:
		return ViewPreview, nil
	case ViewDocument, "export":
		return ViewDocument, nil
	default:
		return "", &UnknownViewError{View: raw}
	}
}

// RenderOptions describe per-request data renderers use to customise their
// output without mutating the field collection.
type RenderOptions struct {
	// View picks the projection. Renderers without multiple views ignore it.
	View View
	// Selected highlights one field in the editor view. Empty means none.
	Selected string
	// Theme carries resolved go-theme tokens. The document view turns them
	// into CSS custom properties.
	Theme *theme.RendererConfig
	// Title overrides the exported document title.
	Title string
}
