package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume/pkg/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the OpenAPI description of the document",
	RunE:  runSchema,
}

var (
	schemaFormat string
	schemaOutput string
)

func init() {
	schemaCmd.Flags().StringVarP(&schemaFormat, "format", "f", "json", "Output format: json or yaml")
	schemaCmd.Flags().StringVarP(&schemaOutput, "out", "o", "", "Write to a file instead of stdout")

	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	format, err := schema.ParseFormat(schemaFormat)
	if err != nil {
		return err
	}
	data, err := schema.MarshalOpenAPI(format)
	if err != nil {
		return err
	}
	if schemaOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(schemaOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema written to %s\n", schemaOutput)
	return nil
}
