package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the preview page as HTML",
	RunE:  runRender,
}

var (
	renderInput  string
	renderOutput string
	renderPrint  bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to the document (sample document if empty)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Write to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderPrint, "print", false, "Render the print layout")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	doc, err := loadDocument(renderInput)
	if err != nil {
		return err
	}
	page, err := resume.RenderHTML(doc, renderPrint, cfg.RendererOptions()...)
	if err != nil {
		return err
	}
	if renderOutput == "" {
		_, err = cmd.OutOrStdout().Write(page)
		return err
	}
	if err := os.WriteFile(renderOutput, page, 0o644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Page written to %s\n", renderOutput)
	return nil
}
