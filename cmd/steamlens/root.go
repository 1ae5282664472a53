// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
)

// storeLoader loads the dataset; tests substitute an in-memory store.
type storeLoader func(ctx context.Context, cfg *config.DatasetConfig) (*dataset.Store, error)

type cli struct {
	configPath string
	logLevel   string
	load       storeLoader
	cfg        *config.Config
}

func newRootCmd(load storeLoader) *cobra.Command {
	c := &cli{load: load}

	root := &cobra.Command{
		Use:   "steamlens",
		Short: "Query game platform review analytics from the command line",
		Long: `Load the configured Parquet snapshots and answer one query.

The result is printed as indented JSON, identical in shape to the HTTP API
response for the same query. Configuration follows the server: defaults,
then the config file, then environment variables.

Examples:
  steamlens developer Valve
  steamlens userdata js41637
  steamlens genre Indie
  steamlens best-year 2015
  steamlens sentiment "Bethesda Game Studios"
  steamlens recommend 70 --k 10 --exclude-self
  steamlens stats`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a YAML config file (default: search config.yaml, $CONFIG_PATH)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "Log level written to stderr")

	root.AddCommand(
		c.developerCmd(),
		c.userDataCmd(),
		c.genreCmd(),
		c.bestYearCmd(),
		c.sentimentCmd(),
		c.recommendCmd(),
		c.statsCmd(),
	)
	return root
}

// setup loads configuration and routes logs to stderr so stdout stays JSON.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	logging.Init(logging.Config{
		Level:  c.logLevel,
		Format: "console",
		Output: cmd.ErrOrStderr(),
	})

	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFromPath(c.configPath)
	} else {
		c.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	return nil
}

// run loads the store, executes query and prints its result.
func (c *cli) run(cmd *cobra.Command, query func(ctx context.Context, store *dataset.Store) (interface{}, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := c.load(ctx, &c.cfg.Dataset)
	if err != nil {
		return err
	}

	result, err := query(ctx, store)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
