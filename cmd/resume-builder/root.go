package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume"
	"github.com/goliatone/go-resume/internal/config"
	"github.com/goliatone/go-resume/pkg/export"
	"github.com/goliatone/go-resume/pkg/form"
	"github.com/goliatone/go-resume/pkg/model"
)

var rootCmd = &cobra.Command{
	Use:           "resume-builder",
	Short:         "Build a resume with a live preview and export it to PDF",
	Long:          "resume-builder edits a resume document in the terminal or a local web form, renders a live preview and exports it as a single A4 PDF.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs")
}

// slogLogger adapts a slog.Logger to the package Logger interfaces.
type slogLogger struct {
	log *slog.Logger
}

func newLogger(w io.Writer) *slogLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return &slogLogger{log: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

func (l *slogLogger) Debugf(format string, args ...any) {
	l.logf(slog.LevelDebug, format, args...)
}

func (l *slogLogger) Infof(format string, args ...any) {
	l.logf(slog.LevelInfo, format, args...)
}

func (l *slogLogger) Errorf(format string, args ...any) {
	l.logf(slog.LevelError, format, args...)
}

func (l *slogLogger) logf(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}
	l.log.Log(ctx, level, fmt.Sprintf(format, args...))
}

func loadSettings() (config.Config, error) {
	return config.Load(configPath)
}

// loadDocument reads path, or returns the sample document when path is empty.
func loadDocument(path string) (model.Document, error) {
	if strings.TrimSpace(path) == "" {
		return model.DefaultDocument(), nil
	}
	doc, err := resume.LoadDocument(path)
	if err != nil {
		return model.Document{}, err
	}
	return doc, nil
}

// newSession builds the session and the engine registry behind it. The
// caller closes both.
func newSession(cfg config.Config, doc model.Document, logger *slogLogger) (*resume.Session, *export.Registry, error) {
	registry := export.DefaultRegistry(cfg.ChromiumEngine(logger))
	engine, err := registry.Get(cfg.Export.Engine)
	if err != nil {
		_ = registry.Close()
		return nil, nil, err
	}
	session := resume.NewSession(doc, engine,
		resume.WithFormOptions(form.WithLogger(logger)),
		resume.WithRendererOptions(cfg.RendererOptions()...),
		resume.WithBridgeOptions(
			export.WithConfig(cfg.Export.Config),
			export.WithSaver(export.DirSaver{Dir: cfg.Export.OutputDir}),
			export.WithLogger(logger),
			export.WithEngineName(cfg.Export.Engine),
		),
	)
	return session, registry, nil
}

func printErrors(w io.Writer, errs resume.Errors) {
	for _, path := range errs.Paths() {
		fmt.Fprintf(w, "  %s: %s\n", path, errs[path])
	}
}
