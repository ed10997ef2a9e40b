package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the form and live preview on a local address",
	RunE:  runServe,
}

var (
	serveInput string
	serveHost  string
	servePort  int
)

func init() {
	serveCmd.Flags().StringVarP(&serveInput, "in", "i", "", "Path to the document (sample document if empty)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides settings)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides settings)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := loadDocument(serveInput)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())
	session, registry, err := newSession(cfg, doc, logger)
	if err != nil {
		return err
	}
	defer func() { _ = registry.Close() }()
	defer session.Close()

	srv, err := server.New(session.Controller, session.View, session.Bridge,
		server.WithLogger(logger),
		server.WithTemplatesDir(cfg.Server.TemplatesDir),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.Address())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	logger.Infof("server stopped")
	return nil
}
