package preview

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/persist"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

// View selects what a handler serves.
type View string

const (
	ViewEditor  View = "editor"
	ViewPreview View = "preview"
	ViewExport  View = "export"
	ViewSchema  View = "schema"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a handler for view with default options plus any overrides.
func Handler(view View, fns ...OptionFn) (http.Handler, error) {
	return HandlerWithOptions(view, NewOptions(fns...))
}

// HandlerWithOptions builds a handler for view from a pre-constructed Options
// value.
func HandlerWithOptions(view View, opts Options) (http.Handler, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	registry, err := newRegistry(opts)
	if err != nil {
		return nil, err
	}

	var name string
	var renderOpts render.RenderOptions
	switch view {
	case ViewEditor:
		name, renderOpts = "vanilla", render.RenderOptions{View: render.ViewEditor}
	case ViewPreview:
		name, renderOpts = "vanilla", render.RenderOptions{View: render.ViewPreview}
	case ViewExport:
		name, renderOpts = "vanilla", render.RenderOptions{View: render.ViewDocument, Theme: opts.Theme, Title: opts.Title}
	case ViewSchema:
		name, renderOpts = "openapi", render.RenderOptions{Title: opts.Title}
	default:
		return nil, fmt.Errorf("preview: unknown view %q", view)
	}
	renderer, err := registry.Get(name)
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeError(w, err, http.StatusForbidden)
				return
			}
		}

		fields, err := loadFields(r, opts)
		if err != nil {
			writeError(w, err, http.StatusInternalServerError)
			return
		}

		options := renderOpts
		if view == ViewEditor {
			options.Selected = r.URL.Query().Get(opts.SelectParam)
		}
		body, err := renderer.Render(r.Context(), fields, options)
		if errors.Is(err, render.ErrEmptyCollection) {
			writeError(w, StatusError{Code: http.StatusNotFound, Err: err}, http.StatusNotFound)
			return
		}
		if err != nil {
			writeError(w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType(renderer.ContentType()))
		if view == ViewExport {
			w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": opts.Filename}))
		}
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	}), nil
}

func newRegistry(opts Options) (*render.Registry, error) {
	documents := opts.Renderer
	if documents == nil {
		var err error
		if documents, err = vanilla.New(); err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
	}
	return render.NewRegistry(documents, openapi.NewRenderer(opts.Schema)), nil
}

// loadFields reads the slot. Corrupt state is served as an empty form, the
// same recovery an editing session applies.
func loadFields(r *http.Request, opts Options) ([]model.Field, error) {
	fields, err := persist.Load(r.Context(), opts.Store, opts.Slot, opts.Codec)
	if errors.Is(err, persist.ErrCorruptState) {
		return []model.Field{}, nil
	}
	return fields, err
}

func contentType(value string) string {
	if value == "application/json" {
		return "application/json; charset=utf-8"
	}
	return value
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	if w == nil {
		return
	}
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
	}
	http.Error(w, http.StatusText(code), code)
}
