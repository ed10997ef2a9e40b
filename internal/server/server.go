// Package server is the local form surface: a fiber application that serves
// the form next to the live preview and routes every edit through the form
// controller.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-resume/internal/templates"
	"github.com/goliatone/go-resume/pkg/export"
	"github.com/goliatone/go-resume/pkg/form"
	"github.com/goliatone/go-resume/pkg/preview"
)

//go:embed templates/*.html
var embedded embed.FS

// Option configures a Server.
type Option func(*options)

type options struct {
	logger       export.Logger
	templatesDir string
}

// WithLogger sets the server logger.
func WithLogger(logger export.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTemplatesDir loads page templates from dir before the embedded ones.
func WithTemplatesDir(dir string) Option {
	return func(o *options) {
		o.templatesDir = strings.TrimSpace(dir)
	}
}

// Server owns the controller, the view subscribed to it and the export
// bridge. Mutations are serialised by mu. Exports run outside it.
type Server struct {
	mu     sync.Mutex
	ctrl   *form.Controller
	view   *preview.View
	bridge *export.Bridge
	pages  *templates.Engine
	logger export.Logger
	app    *fiber.App
}

// New wires the routes. view should already be subscribed to ctrl.
func New(ctrl *form.Controller, view *preview.View, bridge *export.Bridge, opts ...Option) (*Server, error) {
	if ctrl == nil || view == nil || bridge == nil {
		return nil, errors.New("server: controller, view and bridge are required")
	}
	cfg := options{logger: export.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("server: embedded templates: %w", err)
	}
	engineOpts := []templates.Option{templates.WithName("server"), templates.WithFS(sub)}
	if cfg.templatesDir != "" {
		engineOpts = append(engineOpts, templates.WithBaseDir(cfg.templatesDir))
	}
	pages, err := templates.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("server: templates: %w", err)
	}

	s := &Server{
		ctrl:   ctrl,
		view:   view,
		bridge: bridge,
		pages:  pages,
		logger: cfg.logger,
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "resume-builder",
		DisableStartupMessage: true,
		// Params and form values reach the controller, which keeps them.
		Immutable:    true,
		ErrorHandler: s.handleError,
	})
	s.routes()
	return s, nil
}

// App exposes the fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Infof("server: listening on http://%s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) routes() {
	s.app.Get("/", s.handleForm)
	s.app.Get("/preview", s.handlePreview)
	s.app.Get("/document", s.handleDocument)
	s.app.Get("/schema", s.handleSchema)

	s.app.Post("/fields", s.handleSetField)
	s.app.Post("/document", s.handleSubmitDocument)
	s.app.Post("/lists/:path/append", s.handleAppend)
	s.app.Post("/lists/:path/remove/:index", s.handleRemove)
	s.app.Post("/sections/:section/toggle", s.handleToggle)
	s.app.Post("/export", s.handleExport)
}

// locked runs fn while holding the mutation lock.
func (s *Server) locked(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
