package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a document against the field rules",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to the document (required)")
	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	doc, err := resume.LoadDocument(validateInput)
	if err != nil {
		return err
	}
	errs := resume.Validate(doc)
	if errs.Valid() {
		fmt.Fprintln(cmd.OutOrStdout(), "Document is valid.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d field(s) need attention:\n", len(errs))
	printErrors(cmd.OutOrStdout(), errs)
	return fmt.Errorf("document has %d invalid field(s)", len(errs))
}
