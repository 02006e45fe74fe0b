package vanilla

import (
	"errors"
	"fmt"
	"maps"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrUnknownTheme is returned when a selector has no manifest for a name.
	ErrUnknownTheme = errors.New("vanilla: unknown theme")
	// ErrUnknownVariant is returned for a variant the manifest does not declare.
	ErrUnknownVariant = errors.New("vanilla: unknown theme variant")
)

// ThemeSelector resolves manifests registered up front. The first manifest is
// the default when no name is requested.
type ThemeSelector struct {
	manifests   map[string]*theme.Manifest
	defaultName string
}

var _ theme.ThemeSelector = (*ThemeSelector)(nil)

// NewThemeSelector indexes manifests by name, skipping nil or unnamed entries.
// Later manifests replace earlier ones with the same name.
func NewThemeSelector(manifests ...*theme.Manifest) *ThemeSelector {
	s := &ThemeSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		if s.defaultName == "" {
			s.defaultName = manifest.Name
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

// Select implements theme.ThemeSelector.
func (s *ThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultName
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q (theme %q)", ErrUnknownVariant, variant, name)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// ResolveTheme selects name/variant and flattens the selection into renderer
// configuration: variant tokens and templates override the base ones, every
// token becomes a "--token" CSS custom property and AssetURL joins the asset
// prefix with the resolved file.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("vanilla: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	manifest := selection.Manifest

	tokens := maps.Clone(manifest.Tokens)
	partials := maps.Clone(manifest.Templates)
	files := maps.Clone(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix
	if v, ok := manifest.Variants[selection.Variant]; ok {
		tokens = merged(tokens, v.Tokens)
		partials = merged(partials, v.Templates)
		files = merged(files, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return path.Join(prefix, file)
		},
	}, nil
}

// Manifest builds a minimal manifest from token maps, typically loaded from
// configuration.
func Manifest(name string, tokens map[string]string, variants map[string]map[string]string) *theme.Manifest {
	manifest := &theme.Manifest{
		Name:    name,
		Version: "1.0.0",
		Tokens:  maps.Clone(tokens),
	}
	if len(variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(variants))
		for variantName, variantTokens := range variants {
			manifest.Variants[variantName] = theme.Variant{Tokens: maps.Clone(variantTokens)}
		}
	}
	return manifest
}

func merged(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(override))
	}
	maps.Copy(base, override)
	return base
}
