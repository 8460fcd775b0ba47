package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-swapi-browser/internal/config"
	"github.com/ikari-pl/go-swapi-browser/internal/output"
	"github.com/ikari-pl/go-swapi-browser/internal/viewstate"
)

var errInvalidPage = errors.New("invalid page")

type listFlags struct {
	search string
	page   int
}

func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List characters",
		Long:  "Loads the enriched collection and prints one page of it, optionally filtered by name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "Case-insensitive name filter")
	cmd.Flags().IntVarP(&flags.page, "page", "p", 1, "Page to print")
	cmd.Flags().StringP(config.FlagFormat, "f", "table", "Output format (table, json, yaml, markdown)")

	return cmd
}

func runList(cmd *cobra.Command, flags listFlags) error {
	ctx := cmd.Context()

	return withDeps(cmd, cmd.ErrOrStderr(), func(d *Deps) error {
		entities, err := d.Aggregator.LoadEnrichedCollection(ctx)
		if err != nil {
			return err
		}

		c := viewstate.NewCollection(d.Config.PageSize, d.Config.IdentityMode())
		c.Apply(c.BeginLoad(), entities)
		c.SetSearch(flags.search)

		if flags.page < 1 || flags.page > c.PageCount() {
			return fmt.Errorf("%w: %d (1-%d)", errInvalidPage, flags.page, c.PageCount())
		}
		c.SetPage(flags.page)

		rows := c.Paged()
		records := make([]output.Record, len(rows))
		for i, row := range rows {
			records[i] = output.Record{Position: row.Position, Entity: row.Entity}
		}

		w := cmd.OutOrStdout()
		if err := output.NewManager().Format(ctx, d.Config.OutputFormat, records, w); err != nil {
			return err
		}

		if d.Config.OutputFormat == "table" {
			fmt.Fprintf(w, "\nPage %d of %d, %d of %d characters\n",
				c.Page(), c.PageCount(), len(c.Filtered()), c.Len())
		}
		return nil
	})
}
