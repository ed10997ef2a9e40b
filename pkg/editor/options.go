package editor

import (
	"context"

	"github.com/goliatone/go-resume/pkg/export"
	"github.com/goliatone/go-resume/pkg/model"
)

// Exporter runs an export of the live preview. *export.Bridge satisfies it.
type Exporter interface {
	ExportToFile(ctx context.Context) (export.Result, error)
}

// SaveFunc persists the document and returns where it went.
type SaveFunc func(ctx context.Context, doc model.Document) (string, error)

// Theme holds message prefixes used when printing feedback.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Logger receives editor diagnostics.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Option configures the Editor.
type Option func(*Editor)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithExporter enables the export action.
func WithExporter(exporter Exporter) Option {
	return func(e *Editor) {
		e.exporter = exporter
	}
}

// WithSave enables the save action.
func WithSave(fn SaveFunc) Option {
	return func(e *Editor) {
		e.save = fn
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(e *Editor) {
		e.theme = theme
	}
}

// WithLogger sets the editor logger.
func WithLogger(logger Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}
