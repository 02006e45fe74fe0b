package preview

import "net/http"

// Component bundles the preview configuration with its handlers and routing
// helpers.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns the handler for a single view.
func (c *Component) Handler(view View) (http.Handler, error) {
	return HandlerWithOptions(view, c.Options())
}

// RegisterRoutes registers every view under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]Route, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.Options())
}
