package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume"
	"github.com/goliatone/go-resume/pkg/editor"
	"github.com/goliatone/go-resume/pkg/model"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a document in the terminal",
	RunE:  runEdit,
}

var (
	editInput string
	editSave  string
)

func init() {
	editCmd.Flags().StringVarP(&editInput, "in", "i", "", "Path to the document (sample document if empty)")
	editCmd.Flags().StringVarP(&editSave, "out", "o", "", "Where the save action writes (defaults to --in, then resume.yaml)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	doc, err := loadDocument(editInput)
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

	target := editSave
	if target == "" {
		target = editInput
	}
	if target == "" {
		target = "resume.yaml"
	}
	save := func(_ context.Context, doc model.Document) (string, error) {
		if err := resume.SaveDocument(target, doc); err != nil {
			return "", err
		}
		return target, nil
	}

	ed, err := editor.New(session.Controller,
		editor.WithPromptDriver(editor.NewSurveyDriver(cmd.OutOrStdout())),
		editor.WithExporter(session.Bridge),
		editor.WithSave(save),
		editor.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if err := ed.Run(cmd.Context()); err != nil {
		if errors.Is(err, editor.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		return err
	}
	return nil
}
