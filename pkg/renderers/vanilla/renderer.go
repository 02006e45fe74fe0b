package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       *string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/document.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the baseline CSS embedded in exported documents.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// Renderer projects field collections into the editor canvas, the preview
// form or a standalone document depending on RenderOptions.View.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	stylesheet := DefaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}
	return &Renderer{templates: templates, stylesheet: stylesheet}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render serialises the requested view. The editor view renders the empty
// state for an empty collection; preview and document views reject it with
// render.ErrEmptyCollection.
func (r *Renderer) Render(ctx context.Context, fields []model.Field, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	view := options.View
	if view == "" {
		view = render.ViewPreview
	}
	switch view {
	case render.ViewEditor:
		return []byte(EditorView(fields, options.Selected).String()), nil
	case render.ViewPreview:
		if len(fields) == 0 {
			return nil, render.ErrEmptyCollection
		}
		return []byte(PreviewView(fields).String()), nil
	case render.ViewDocument:
		if len(fields) == 0 {
			return nil, render.ErrEmptyCollection
		}
		return r.Document(PreviewView(fields), options)
	default:
		return nil, &render.UnknownViewError{View: string(view)}
	}
}

func validateFields(fields []model.Field) error {
	for _, field := range fields {
		if !field.Type.Valid() {
			return fmt.Errorf("vanilla renderer: field %q: %w", field.ID, &model.InvalidFieldTypeError{Type: string(field.Type)})
		}
	}
	return nil
}
