package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/config"
	"github.com/ikari-pl/go-swapi-browser/internal/swapi"
)

// Deps holds what every command needs.
type Deps struct {
	Config     *config.Config
	Logger     *slog.Logger
	Aggregator catalog.Aggregator
}

// withDeps loads the layered config for cmd, builds the logger, client and
// aggregator, then calls fn. Logs go to logTo unless a log file is configured;
// a nil logTo discards them.
func withDeps(cmd *cobra.Command, logTo io.Writer, fn func(*Deps) error) error {
	path, err := cmd.Flags().GetString(config.FlagConfig)
	if err != nil {
		return fmt.Errorf("reading --%s: %w", config.FlagConfig, err)
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := cfg.NewLogger(logTo)
	if err != nil {
		return err
	}
	defer closer.Close()

	client := swapi.NewClient(logger, cfg.ClientOptions())
	aggregator := catalog.NewAggregator(logger, client, cfg.AggregatorOptions()...)

	return fn(&Deps{
		Config:     cfg,
		Logger:     logger,
		Aggregator: aggregator,
	})
}
