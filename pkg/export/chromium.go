package export

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromiumEngine prints snapshots to PDF with a shared headless Chromium.
// The browser starts on first use and stays up until Close.
type ChromiumEngine struct {
	BrowserPath string
	Headless    bool
	// Timeout bounds a single render. Zero means no limit.
	Timeout time.Duration
	Args    []string
	Logger  Logger

	initOnce      sync.Once
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewChromiumEngine returns a headless engine.
func NewChromiumEngine() *ChromiumEngine {
	return &ChromiumEngine{Headless: true}
}

// Render loads the snapshot page in a new tab and prints it.
func (e *ChromiumEngine) Render(ctx context.Context, snapshot Snapshot, cfg Config) ([]byte, error) {
	if e == nil {
		return nil, NewError(KindInternal, "chromium engine is nil", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if len(snapshot.HTML) == 0 {
		return nil, NewError(KindInternal, "snapshot has no page", nil)
	}
	params, err := printParams(cfg)
	if err != nil {
		return nil, err
	}
	if err := e.ensureBrowser(); err != nil {
		return nil, NewError(KindInternal, "chromium engine init failed", err)
	}

	tabCtx, cancel := chromedp.NewContext(e.browserCtx)
	defer cancel()

	execCtx, cancelReq := context.WithCancel(tabCtx)
	defer cancelReq()
	go func() {
		select {
		case <-ctx.Done():
			cancelReq()
		case <-execCtx.Done():
		}
	}()
	if e.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		execCtx, cancelTimeout = context.WithTimeout(execCtx, e.Timeout)
		defer cancelTimeout()
	}

	e.logger().Debugf("export: chromium ignores image options %s/%.2f for vector output", cfg.Image.Type, cfg.Image.Quality)

	width, _, _ := cfg.PageSize()
	var pdf []byte
	err = chromedp.Run(execCtx,
		emulation.SetDeviceMetricsOverride(int64(width*96), 0, cfg.Scale, false),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(snapshot.HTML)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, NewError(KindFromError(ctxErr), "chromium pdf render interrupted", err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, NewError(KindTimeout, "chromium pdf render timed out", err)
		}
		return nil, NewError(KindInternal, "chromium pdf render failed", err)
	}
	return pdf, nil
}

// Close shuts the browser down if it was started.
func (e *ChromiumEngine) Close() error {
	if e == nil {
		return nil
	}
	if e.browserCancel != nil {
		e.browserCancel()
	}
	if e.allocCancel != nil {
		e.allocCancel()
	}
	return nil
}

func (e *ChromiumEngine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

func (e *ChromiumEngine) ensureBrowser() error {
	e.initOnce.Do(func() {
		options := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
		if e.BrowserPath != "" {
			options = append(options, chromedp.ExecPath(e.BrowserPath))
		}
		options = append(options, chromedp.Flag("headless", e.Headless))
		options = append(options, allocatorOptionsFromArgs(e.Args)...)

		e.allocCtx, e.allocCancel = chromedp.NewExecAllocator(context.Background(), options...)
		e.browserCtx, e.browserCancel = chromedp.NewContext(e.allocCtx)
	})
	if e.allocCtx == nil || e.browserCtx == nil {
		return errors.New("chromium allocator unavailable")
	}
	return nil
}

// printParams maps the export record onto Page.printToPDF. The raster scale
// is applied as the device scale factor, so the content scale stays at 1.
func printParams(cfg Config) (*page.PrintToPDFParams, error) {
	width, height, err := cfg.PageSize()
	if err != nil {
		return nil, err
	}
	margin, err := cfg.MarginInches()
	if err != nil {
		return nil, err
	}
	return page.PrintToPDF().
		WithPaperWidth(width).
		WithPaperHeight(height).
		WithMarginTop(margin).
		WithMarginBottom(margin).
		WithMarginLeft(margin).
		WithMarginRight(margin).
		WithPrintBackground(true).
		WithScale(1), nil
}

func allocatorOptionsFromArgs(args []string) []chromedp.ExecAllocatorOption {
	options := make([]chromedp.ExecAllocatorOption, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimPrefix(strings.TrimSpace(arg), "--")
		if arg == "" {
			continue
		}
		if name, value, ok := strings.Cut(arg, "="); ok {
			options = append(options, chromedp.Flag(name, value))
			continue
		}
		options = append(options, chromedp.Flag(arg, true))
	}
	return options
}
