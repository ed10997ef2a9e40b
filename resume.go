// Package resume wires the builder's parts together: a form controller, the
// live preview subscribed to it and an export bridge over that preview.
package resume

import (
	"context"

	"github.com/goliatone/go-resume/pkg/export"
	"github.com/goliatone/go-resume/pkg/form"
	"github.com/goliatone/go-resume/pkg/model"
	"github.com/goliatone/go-resume/pkg/preview"
	"github.com/goliatone/go-resume/pkg/schema"
	"github.com/goliatone/go-resume/pkg/validation"
)

// Document aliases model.Document for callers of the root package.
type Document = model.Document

// Errors aliases validation.Errors.
type Errors = validation.Errors

// Result aliases export.Result.
type Result = export.Result

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	formOptions     []form.Option
	rendererOptions []preview.Option
	bridgeOptions   []export.Option
}

// WithFormOptions passes options to the form controller.
func WithFormOptions(opts ...form.Option) Option {
	return func(cfg *sessionConfig) {
		cfg.formOptions = append(cfg.formOptions, opts...)
	}
}

// WithRendererOptions passes options to the preview renderer.
func WithRendererOptions(opts ...preview.Option) Option {
	return func(cfg *sessionConfig) {
		cfg.rendererOptions = append(cfg.rendererOptions, opts...)
	}
}

// WithBridgeOptions passes options to the export bridge.
func WithBridgeOptions(opts ...export.Option) Option {
	return func(cfg *sessionConfig) {
		cfg.bridgeOptions = append(cfg.bridgeOptions, opts...)
	}
}

// Session is one editing session: every controller change re-renders View,
// and Bridge exports what View shows.
type Session struct {
	Controller *form.Controller
	View       *preview.View
	Bridge     *export.Bridge

	unsubscribe func()
}

// NewSession starts a session on doc. engine renders exports; nil selects
// the HTML engine.
func NewSession(doc Document, engine export.Engine, options ...Option) *Session {
	cfg := &sessionConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if engine == nil {
		engine = export.HTMLEngine{}
	}

	ctrl := form.New(doc, cfg.formOptions...)
	view := preview.NewView(preview.NewRenderer(cfg.rendererOptions...), ctrl.Document())
	return &Session{
		Controller:  ctrl,
		View:        view,
		Bridge:      export.NewBridge(view, engine, cfg.bridgeOptions...),
		unsubscribe: ctrl.Subscribe(view.Update),
	}
}

// Export runs the bridge once.
func (s *Session) Export(ctx context.Context) (Result, error) {
	return s.Bridge.ExportToFile(ctx)
}

// Close detaches the view from the controller.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// LoadDocument reads a JSON or YAML document and checks its shape.
func LoadDocument(path string) (Document, error) {
	return schema.Load(path)
}

// SaveDocument writes doc as JSON or YAML depending on the extension.
func SaveDocument(path string, doc Document) error {
	return schema.Save(path, doc)
}

// Validate reports field rule failures of doc.
func Validate(doc Document) Errors {
	return validation.Validate(doc)
}

// RenderHTML renders doc as a complete preview page. printable selects the print
// shell with export constraints applied.
func RenderHTML(doc Document, printable bool, options ...preview.Option) ([]byte, error) {
	tree := preview.NewRenderer(options...).Render(doc)
	if printable {
		preview.ExportConstraints().Apply(tree)
	}
	return preview.Page(tree, preview.PageData{Title: preview.Title(tree), Print: printable})
}
