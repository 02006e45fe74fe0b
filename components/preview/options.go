package preview

import (
	"net/http"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/persist"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

const (
	DefaultEditorPath  = "/"
	DefaultPreviewPath = "/preview"
	DefaultExportPath  = "/export"
	DefaultSchemaPath  = "/schema.json"
	DefaultFilename    = "generated-form.html"
	DefaultSelectParam = "selected"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	Store persist.Store
	Slot  string
	Codec persist.Codec

	EditorPath  string
	PreviewPath string
	ExportPath  string
	SchemaPath  string
	SelectParam string

	Filename string
	Title    string
	Theme    *theme.RendererConfig
	Schema   openapi.DocumentOptions
	Renderer *vanilla.Renderer
	Guard    GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Store:       persist.NewMemoryStore(),
		Slot:        persist.DefaultSlot,
		Codec:       persist.NewCodec(),
		EditorPath:  DefaultEditorPath,
		PreviewPath: DefaultPreviewPath,
		ExportPath:  DefaultExportPath,
		SchemaPath:  DefaultSchemaPath,
		SelectParam: DefaultSelectParam,
		Filename:    DefaultFilename,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	defaults := DefaultOptions()
	if opts.Store == nil {
		opts.Store = defaults.Store
	}
	if opts.Slot == "" {
		opts.Slot = defaults.Slot
	}
	if opts.EditorPath == "" {
		opts.EditorPath = defaults.EditorPath
	}
	if opts.PreviewPath == "" {
		opts.PreviewPath = defaults.PreviewPath
	}
	if opts.ExportPath == "" {
		opts.ExportPath = defaults.ExportPath
	}
	if opts.SchemaPath == "" {
		opts.SchemaPath = defaults.SchemaPath
	}
	if opts.SelectParam == "" {
		opts.SelectParam = defaults.SelectParam
	}
	if opts.Filename == "" {
		opts.Filename = defaults.Filename
	}
	return opts
}

func WithStore(store persist.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Store = store
	}
}

func WithSlot(slot string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Slot = slot
	}
}

func WithCodec(codec persist.Codec) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Codec = codec
	}
}

// WithPaths overrides the route paths. Blank entries keep their defaults.
func WithPaths(editor, preview, export, schema string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EditorPath, o.PreviewPath, o.ExportPath, o.SchemaPath = editor, preview, export, schema
	}
}

func WithFilename(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Filename = name
	}
}

func WithTitle(title string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Title = title
	}
}

func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = cfg
	}
}

func WithSchemaOptions(schema openapi.DocumentOptions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Schema = schema
	}
}

func WithRenderer(renderer *vanilla.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}
