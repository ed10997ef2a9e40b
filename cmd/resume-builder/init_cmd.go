package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume"
	"github.com/goliatone/go-resume/internal/config"
	"github.com/goliatone/go-resume/pkg/model"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the sample document and optionally a settings file",
	RunE:  runInit,
}

var (
	initOutput    string
	initConfigOut string
	initForce     bool
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "out", "o", "resume.yaml", "Path of the document to create (.yaml or .json)")
	initCmd.Flags().StringVar(&initConfigOut, "config-out", "", "Also write default settings to this path")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if err := ensureWritable(initOutput); err != nil {
		return err
	}
	if err := resume.SaveDocument(initOutput, model.DefaultDocument()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Document written to %s\n", initOutput)

	if initConfigOut == "" {
		return nil
	}
	if err := ensureWritable(initConfigOut); err != nil {
		return err
	}
	data, err := config.Defaults().Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(initConfigOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", initConfigOut)
	return nil
}

func ensureWritable(path string) error {
	if initForce {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	return nil
}
