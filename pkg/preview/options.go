package preview

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogo adds a header image. An empty src renders no image.
func WithLogo(src, alt string) Option {
	return func(r *Renderer) {
		r.logoSrc = strings.TrimSpace(src)
		r.logoAlt = strings.TrimSpace(alt)
	}
}

// WithTheme exposes the theme's CSS variables on the root element.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithConstraints overrides the constraints applied by Render.
func WithConstraints(c Constraints) Option {
	return func(r *Renderer) {
		r.constraints = c
	}
}

// ThemeFromManifest resolves the renderer configuration of a theme variant:
// variant tokens override base tokens and every token is also exposed as a
// "--name" CSS variable.
func ThemeFromManifest(manifest *theme.Manifest, variant string) *theme.RendererConfig {
	if manifest == nil {
		return nil
	}
	tokens := make(map[string]string, len(manifest.Tokens))
	partials := make(map[string]string, len(manifest.Templates))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	for key, value := range manifest.Templates {
		partials[key] = value
	}
	if v, ok := manifest.Variants[variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
		for key, value := range v.Templates {
			partials[key] = value
		}
	} else {
		variant = ""
	}

	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+strings.TrimPrefix(key, "--")] = value
	}
	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  vars,
	}
}
