package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a document to PDF",
	RunE:  runExport,
}

var (
	exportInput    string
	exportOutDir   string
	exportFilename string
	exportEngine   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to the document (sample document if empty)")
	exportCmd.Flags().StringVar(&exportOutDir, "out-dir", "", "Directory for the exported file")
	exportCmd.Flags().StringVar(&exportFilename, "filename", "", "Name of the exported file")
	exportCmd.Flags().StringVar(&exportEngine, "engine", "", "Export engine: chromium or html")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if exportOutDir != "" {
		cfg.Export.OutputDir = exportOutDir
	}
	if exportFilename != "" {
		cfg.Export.Filename = exportFilename
	}
	if exportEngine != "" {
		cfg.Export.Engine = exportEngine
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := loadDocument(exportInput)
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

	result, err := session.Export(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s (%d bytes)\n", result.Path, result.Bytes)
	return nil
}
