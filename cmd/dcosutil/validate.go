package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/dcosutil"
	"github.com/reoring/dcosutil/jsonschema"
)

func newValidateCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate --schema FILE INSTANCE...",
		Short: "Validate documents against a draft-4 JSON Schema",
		Long: `Validate each INSTANCE (JSON, YAML or TOML by extension; "-" reads JSON
from stdin) against the schema and print every violation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, schemaPath, args)
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "schema file")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func runValidate(cmd *cobra.Command, schemaPath string, instances []string) error {
	ctx := cmd.Context()
	schema, err := dcosutil.LoadFile(ctx, schemaPath)
	if err != nil {
		return fmt.Errorf("%s: %w", schemaPath, err)
	}
	v, err := jsonschema.Compile(schema)
	if err != nil {
		return fmt.Errorf("%s: %w", schemaPath, err)
	}

	failed := false
	for _, name := range instances {
		doc, err := loadInstance(ctx, cmd.InOrStdin(), name)
		if err == nil {
			err = v.Validate(doc)
		}
		if err != nil {
			failed = true
			zerolog.Ctx(ctx).Debug().Str("instance", name).Msg("validation failed")
			color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%s:\n%v\n", name, err)
			continue
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: OK\n", name)
	}
	if failed {
		return errReported
	}
	return nil
}

func loadInstance(ctx context.Context, stdin io.Reader, name string) (any, error) {
	if name == "-" {
		return dcosutil.LoadJSON(ctx, stdin)
	}
	return dcosutil.LoadFile(ctx, name)
}
