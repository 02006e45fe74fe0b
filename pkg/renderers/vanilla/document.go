package vanilla

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// DefaultTitle names exported documents when no title is configured.
const DefaultTitle = "Generated Form"

const bodyIndent = "        "

var (
	formPolicyOnce sync.Once
	formPolicy     *bluemonday.Policy
)

// formSanitizer allows exactly the elements and attributes the preview view
// emits. Labels and options are user text, so the serialised preview passes
// through it before it is embedded in a document.
func formSanitizer() *bluemonday.Policy {
	formPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("div", "p", "span", "label", "input", "textarea", "select", "option", "button")
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowNoAttrs().OnElements("div", "p", "span", "label", "textarea", "select", "option", "button")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs("type", "name", "placeholder", "required", "multiple", "checked", "value").OnElements("input")
		policy.AllowAttrs("placeholder", "required", "name", "rows").OnElements("textarea")
		policy.AllowAttrs("required", "name", "multiple").OnElements("select")
		policy.AllowAttrs("value", "selected").OnElements("option")
		policy.AllowAttrs("type").OnElements("button")
		formPolicy = policy
	})
	return formPolicy
}

// SanitizeMarkup serialises node and filters it through the form policy.
func SanitizeMarkup(node *markup.Node) string {
	return formSanitizer().Sanitize(node.String())
}

var (
	defaultRendererOnce sync.Once
	defaultRenderer     *Renderer
	defaultRendererErr  error
)

// ExportDocument wraps preview markup in a standalone HTML document using the
// embedded template and stylesheet.
func ExportDocument(preview *markup.Node, options render.RenderOptions) ([]byte, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = New()
	})
	if defaultRendererErr != nil {
		return nil, defaultRendererErr
	}
	return defaultRenderer.Document(preview, options)
}

// Document renders the export document for preview markup. The title
// defaults to DefaultTitle; theme CSS variables are emitted in a :root block
// ahead of the form.
func (r *Renderer) Document(preview *markup.Node, options render.RenderOptions) ([]byte, error) {
	if preview == nil {
		return nil, errors.New("vanilla renderer: preview markup is required")
	}
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = DefaultTitle
	}
	var cssVars map[string]string
	if options.Theme != nil && len(options.Theme.CSSVars) > 0 {
		cssVars = options.Theme.CSSVars
	}

	result, err := r.templates.RenderTemplate(DocumentTemplate, map[string]any{
		"title":      title,
		"stylesheet": r.stylesheet,
		"css_vars":   cssVars,
		"body":       indentLines(SanitizeMarkup(preview), bodyIndent),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render document: %w", err)
	}
	return []byte(result), nil
}

func indentLines(text, prefix string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	out := b.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
