package preview

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux and chi.Router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Route is one registered view.
type Route struct {
	View    View
	Pattern string
}

// MountPath returns the full mount path for view under basePath.
func MountPath(basePath string, view View, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, routePath(view, opts))
}

// RegisterRoutes registers every view under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]Route, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers every view using a pre-built Options
// value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]Route, error) {
	if mux == nil {
		return nil, fmt.Errorf("preview: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	views := []View{ViewEditor, ViewPreview, ViewExport, ViewSchema}
	routes := make([]Route, 0, len(views))
	for _, view := range views {
		handler, err := HandlerWithOptions(view, opts)
		if err != nil {
			return nil, err
		}
		pattern := mountPath(basePath, routePath(view, opts))
		if strings.HasSuffix(pattern, "/") {
			handler = exactPath(pattern, handler)
		}
		mux.Handle(pattern, handler)
		routes = append(routes, Route{View: view, Pattern: pattern})
	}
	return routes, nil
}

func routePath(view View, opts Options) string {
	switch view {
	case ViewPreview:
		return opts.PreviewPath
	case ViewExport:
		return opts.ExportPath
	case ViewSchema:
		return opts.SchemaPath
	default:
		return opts.EditorPath
	}
}

// exactPath keeps trailing-slash patterns from answering for their subtree on
// http.ServeMux.
func exactPath(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pattern && r.URL.Path != strings.TrimSuffix(pattern, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
