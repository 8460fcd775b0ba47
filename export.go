package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-swapi-browser/internal/output"
)

var exportFormats = []string{"json", "yaml", "markdown"}

type exportFlags struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole collection",
		Long:  "Loads the enriched collection and writes all of it as JSON, YAML or markdown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, yaml, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(exportFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, exportFormats)
	}

	ctx := cmd.Context()

	return withDeps(cmd, cmd.ErrOrStderr(), func(d *Deps) error {
		entities, err := d.Aggregator.LoadEnrichedCollection(ctx)
		if err != nil {
			return err
		}

		write := func(w io.Writer) error {
			return output.NewManager().Format(ctx, flags.format, output.Records(entities), w)
		}
		if flags.output == "" {
			return write(cmd.OutOrStdout())
		}

		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		if err := writeAndClose(f, write); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d characters to %s\n", len(entities), flags.output)
		return nil
	})
}

// writeAndClose runs write against wc and closes it. A close failure is
// reported when write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing output file: %w", cerr)
	}
	return err
}
