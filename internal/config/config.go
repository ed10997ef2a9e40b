// Package config loads the builder's YAML settings: export record, engine
// selection, local server address and preview presentation.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resume/pkg/export"
	"github.com/goliatone/go-resume/pkg/preview"
)

// Config is the complete settings file.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Export  ExportConfig  `yaml:"export"`
	Preview PreviewConfig `yaml:"preview"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// ServerConfig holds the local form server settings.
type ServerConfig struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"gte=1,lte=65535"`
	// TemplatesDir overrides embedded page templates file by file.
	TemplatesDir string `yaml:"templatesDir,omitempty"`
}

// ExportConfig wraps the export record with engine and output settings.
type ExportConfig struct {
	export.Config `yaml:",inline"`
	OutputDir     string         `yaml:"outputDir" validate:"required"`
	Engine        string         `yaml:"engine" validate:"oneof=chromium html"`
	Chromium      ChromiumConfig `yaml:"chromium"`
}

// ChromiumConfig configures the headless browser engine.
type ChromiumConfig struct {
	Path     string        `yaml:"path,omitempty"`
	Headless bool          `yaml:"headless"`
	Timeout  time.Duration `yaml:"timeout,omitempty" validate:"gte=0"`
	Args     []string      `yaml:"args,omitempty"`
}

// PreviewConfig controls the on-screen preview.
type PreviewConfig struct {
	Height   string `yaml:"height"`
	Overflow string `yaml:"overflow"`
	LogoSrc  string `yaml:"logoSrc,omitempty"`
	LogoAlt  string `yaml:"logoAlt,omitempty"`
}

// ThemeConfig describes the palette exposed as CSS variables.
type ThemeConfig struct {
	Name     string                       `yaml:"name" validate:"required"`
	Variant  string                       `yaml:"variant,omitempty"`
	Tokens   map[string]string            `yaml:"tokens,omitempty"`
	Variants map[string]map[string]string `yaml:"variants,omitempty"`
}

// Defaults returns the settings used when no file is given.
func Defaults() Config {
	constraints := preview.DefaultConstraints()
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Export: ExportConfig{
			Config:    export.DefaultConfig(),
			OutputDir: ".",
			Engine:    export.EngineChromium,
			Chromium: ChromiumConfig{
				Headless: true,
			},
		},
		Preview: PreviewConfig{
			Height:   constraints.Height,
			Overflow: constraints.Overflow,
		},
		Theme: ThemeConfig{
			Name: "default",
			Tokens: map[string]string{
				"text":   "#111827",
				"muted":  "#4b5563",
				"accent": "#1f2937",
				"border": "#e5e7eb",
			},
			Variants: map[string]map[string]string{
				"dark": {
					"text":   "#f9fafb",
					"muted":  "#d1d5db",
					"accent": "#f3f4f6",
					"border": "#374151",
				},
			},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Validate checks field rules, the export record and the theme variant.
func (c Config) Validate() error {
	if err := validate().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}
	if err := c.Export.Config.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if v := c.Theme.Variant; v != "" {
		if _, ok := c.Theme.Variants[v]; !ok {
			return fmt.Errorf("config: unknown theme variant %q", v)
		}
	}
	return nil
}

// Address is the server listen address.
func (c Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Constraints are the preview constraints with the configured viewport.
func (c Config) Constraints() preview.Constraints {
	constraints := preview.DefaultConstraints()
	if c.Preview.Height != "" {
		constraints.Height = c.Preview.Height
	}
	if c.Preview.Overflow != "" {
		constraints.Overflow = c.Preview.Overflow
	}
	return constraints
}

// Manifest builds the theme manifest from the palette settings.
func (c Config) Manifest() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:     c.Theme.Name,
		Version:  "1",
		Tokens:   copyTokens(c.Theme.Tokens),
		Variants: make(map[string]theme.Variant, len(c.Theme.Variants)),
	}
	for name, tokens := range c.Theme.Variants {
		manifest.Variants[name] = theme.Variant{Tokens: copyTokens(tokens)}
	}
	return manifest
}

// RendererOptions returns the preview renderer options for these settings.
func (c Config) RendererOptions() []preview.Option {
	return []preview.Option{
		preview.WithConstraints(c.Constraints()),
		preview.WithLogo(c.Preview.LogoSrc, c.Preview.LogoAlt),
		preview.WithTheme(preview.ThemeFromManifest(c.Manifest(), c.Theme.Variant)),
	}
}

// ChromiumEngine builds the browser engine. The browser starts on first use.
func (c Config) ChromiumEngine(logger export.Logger) *export.ChromiumEngine {
	engine := export.NewChromiumEngine()
	engine.BrowserPath = c.Export.Chromium.Path
	engine.Headless = c.Export.Chromium.Headless
	engine.Timeout = c.Export.Chromium.Timeout
	engine.Args = append([]string(nil), c.Export.Chromium.Args...)
	engine.Logger = logger
	return engine
}

func copyTokens(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
