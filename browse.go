package main

import (
	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-swapi-browser/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse characters interactively",
		Long:  "Starts the full-screen browser: a paged, searchable character list with a details view per character.",
		Args:  cobra.NoArgs,
		RunE:  runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal, so logs only go to --log-file.
	return withDeps(cmd, nil, func(d *Deps) error {
		ui := tui.NewTUI(d.Logger, d.Aggregator, tui.Options{
			PageSize: d.Config.PageSize,
			Identity: d.Config.IdentityMode(),
			Theme:    d.Config.ThemeMode(),
		})
		return ui.Run(cmd.Context())
	})
}
