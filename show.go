package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/config"
	"github.com/ikari-pl/go-swapi-browser/internal/output"
	"github.com/ikari-pl/go-swapi-browser/internal/viewstate"
)

var (
	errInvalidPosition = errors.New("invalid position")
	errInvalidID       = errors.New("invalid id")
)

func newShowCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "show [position]",
		Short: "Show one character",
		Long: `Shows one character with its species resolved.

A position is the zero-based index in the collection and is fetched directly.
--id takes the durable ID printed by list and looks it up in a fresh collection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseShowKey(args, id)
			if err != nil {
				return err
			}
			return runShow(cmd, key)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Durable character ID")
	cmd.Flags().StringP(config.FlagFormat, "f", "table", "Output format (table, json, yaml, markdown)")

	return cmd
}

// parseShowKey accepts exactly one of a position argument or an ID.
func parseShowKey(args []string, id string) (catalog.Key, error) {
	switch {
	case id != "" && len(args) > 0:
		return catalog.Key{}, errors.New("give either a position or --id, not both")
	case id != "":
		u, err := uuid.Parse(id)
		if err != nil {
			return catalog.Key{}, fmt.Errorf("%w: %q", errInvalidID, id)
		}
		return catalog.Key{ID: u}, nil
	case len(args) == 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return catalog.Key{}, fmt.Errorf("%w: %q", errInvalidPosition, args[0])
		}
		return catalog.Key{Position: n}, nil
	default:
		return catalog.Key{}, errors.New("a position or --id is required")
	}
}

func runShow(cmd *cobra.Command, key catalog.Key) error {
	ctx := cmd.Context()

	return withDeps(cmd, cmd.ErrOrStderr(), func(d *Deps) error {
		detail := viewstate.NewDetail()
		req := detail.Begin(key)
		position := key.Position

		if key.HasID() {
			entities, err := d.Aggregator.LoadEnrichedCollection(ctx)
			if err != nil {
				return err
			}
			c := viewstate.NewCollection(d.Config.PageSize, catalog.IdentityLocator)
			c.Apply(c.BeginLoad(), entities)
			detail.ResolveFrom(req, c)
			for _, row := range c.Filtered() {
				if row.Key.ID == key.ID {
					position = row.Position
					break
				}
			}
		} else {
			entity, err := d.Aggregator.LoadEnrichedEntity(ctx, key.Position)
			detail.Resolve(req, entity, err)
		}

		switch detail.Status() {
		case viewstate.StatusFailed:
			return detail.Err()
		case viewstate.StatusNotFound:
			return fmt.Errorf("character %s: %w", key, catalog.ErrNotFound)
		}

		record := output.Record{Position: position, Entity: *detail.Entity()}
		w := cmd.OutOrStdout()
		if d.Config.OutputFormat == "table" {
			return output.WriteCard(w, record)
		}
		return output.NewManager().Format(ctx, d.Config.OutputFormat, []output.Record{record}, w)
	})
}
