package export

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-resume/pkg/preview"
)

// Result is the completion signal of a saved export.
type Result struct {
	ID       string        `json:"id"`
	Path     string        `json:"path"`
	Bytes    int           `json:"bytes"`
	Engine   string        `json:"engine"`
	Duration time.Duration `json:"duration"`
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithConfig replaces the default export record.
func WithConfig(cfg Config) Option {
	return func(b *Bridge) {
		b.cfg = cfg
	}
}

// WithSaver sets where rendered bytes go. Defaults to the working directory.
func WithSaver(saver Saver) Option {
	return func(b *Bridge) {
		if saver != nil {
			b.saver = saver
		}
	}
}

// WithLogger sets the bridge logger.
func WithLogger(logger Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithEngineName labels results with the engine's registry name.
func WithEngineName(name string) Option {
	return func(b *Bridge) {
		b.engineName = name
	}
}

// WithOverride replaces the constraints lifted during capture.
func WithOverride(c preview.Constraints) Option {
	return func(b *Bridge) {
		b.override = c
	}
}

// Bridge drives exports of a live preview.
type Bridge struct {
	view       *preview.View
	engine     Engine
	saver      Saver
	cfg        Config
	override   preview.Constraints
	logger     Logger
	engineName string
	newID      func() string
	now        func() time.Time

	inFlight atomic.Bool
}

// NewBridge wires a view to an engine.
func NewBridge(view *preview.View, engine Engine, opts ...Option) *Bridge {
	b := &Bridge{
		view:     view,
		engine:   engine,
		saver:    DirSaver{Dir: "."},
		cfg:      DefaultConfig(),
		override: preview.ExportConstraints(),
		logger:   NopLogger{},
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.engineName == "" {
		b.engineName = fmt.Sprintf("%T", engine)
	}
	return b
}

// Config returns the export record.
func (b *Bridge) Config() Config {
	return b.cfg
}

// InFlight reports whether an export is running.
func (b *Bridge) InFlight() bool {
	return b.inFlight.Load()
}

// ExportToFile captures the preview, renders it and saves the result. A call
// made while another export runs fails with ErrExportInProgress and touches
// nothing. The preview's constraints are lifted for the capture and restored
// before ExportToFile returns, on success and on failure.
func (b *Bridge) ExportToFile(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.view == nil || b.engine == nil {
		return Result{}, NewError(KindInternal, "export bridge is not configured", nil)
	}
	if err := b.cfg.Validate(); err != nil {
		return Result{}, err
	}
	if !b.inFlight.CompareAndSwap(false, true) {
		b.logger.Debugf("export: rejected, another export is in flight")
		return Result{}, ErrExportInProgress
	}
	defer b.inFlight.Store(false)

	id := b.newID()
	start := b.now()
	b.logger.Infof("export %s: started with %s", id, b.engineName)

	restore := b.view.Lift(b.override)
	defer restore()

	snapshot, err := b.capture()
	if err != nil {
		b.logger.Errorf("export %s: capture failed: %v", id, err)
		return Result{}, err
	}

	data, err := b.engine.Render(ctx, snapshot, b.cfg)
	if err != nil {
		b.logger.Errorf("export %s: render failed: %v", id, err)
		return Result{}, wrapFailure("export render failed", err)
	}

	path, err := b.saver.Save(ctx, b.cfg.Filename, data)
	if err != nil {
		b.logger.Errorf("export %s: save failed: %v", id, err)
		return Result{}, wrapFailure("export save failed", err)
	}

	result := Result{
		ID:       id,
		Path:     path,
		Bytes:    len(data),
		Engine:   b.engineName,
		Duration: b.now().Sub(start),
	}
	b.logger.Infof("export %s: saved %d bytes to %s", id, result.Bytes, path)
	return result, nil
}

// capture copies the lifted tree and builds the print page from the copy.
func (b *Bridge) capture() (Snapshot, error) {
	tree := b.view.Snapshot()
	if tree == nil {
		return Snapshot{}, NewError(KindInternal, "preview has no tree", nil)
	}
	title := preview.Title(tree)
	page, err := preview.Page(tree, preview.PageData{Title: title, Print: true})
	if err != nil {
		return Snapshot{}, NewError(KindInternal, "build print page", err)
	}
	return Snapshot{Tree: tree, HTML: page, Title: title}, nil
}

func wrapFailure(msg string, err error) error {
	if _, ok := err.(*Error); ok {
		return err
	}
	return NewError(KindFromError(err), msg, err)
}
