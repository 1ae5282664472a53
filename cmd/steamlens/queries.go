// Steamlens - Game Platform Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/steamlens/internal/analytics"
	"github.com/tomtom215/steamlens/internal/dataset"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/recommend"
)

func (c *cli) developerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "developer <developer_name>",
		Short: "Games released and percentage free per year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, store *dataset.Store) (interface{}, error) {
				return analytics.DeveloperStats(ctx, store, args[0]), nil
			})
		},
	}
}

func (c *cli) userDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "userdata <user_id>",
		Short: "Money spent, recommendation percentage and item count of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, store *dataset.Store) (interface{}, error) {
				return analytics.UserData(ctx, store, args[0])
			})
		},
	}
}

func (c *cli) genreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genre <genre>",
		Short: "User with the most playtime in a genre, hours per year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, store *dataset.Store) (interface{}, error) {
				return analytics.UserForGenre(ctx, store, args[0])
			})
		},
	}
}

func (c *cli) bestYearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best-year <year>",
		Short: "Top three most recommended developers of a release year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be an integer, got %q", args[0])
			}
			return c.run(cmd, func(ctx context.Context, store *dataset.Store) (interface{}, error) {
				return analytics.BestDeveloperYear(ctx, store, year), nil
			})
		},
	}
}

func (c *cli) sentimentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment <developer>",
		Short: "Negative and positive review counts of a developer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, store *dataset.Store) (interface{}, error) {
				return analytics.DeveloperReviews(ctx, store, args[0]), nil
			})
		},
	}
}

func (c *cli) recommendCmd() *cobra.Command {
	var (
		k           int
		excludeSelf bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <item_id>",
		Short: "Games with the most similar genres to a catalog item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("item_id must be an integer, got %q", args[0])
			}

			req := recommend.Request{ItemID: itemID, K: k}
			if cmd.Flags().Changed("exclude-self") {
				req.ExcludeSource = &excludeSelf
			}

			return c.run(cmd, func(ctx context.Context, store *dataset.Store) (interface{}, error) {
				engine, err := recommend.NewEngine(store, recommend.Config{
					TopK:          c.cfg.Recommend.TopK,
					ExcludeSource: c.cfg.Recommend.ExcludeSource,
				}, logging.WithComponent("recommend"))
				if err != nil {
					return nil, err
				}
				return engine.Recommend(ctx, req)
			})
		},
	}

	cmd.Flags().IntVar(&k, "k", 0, "Number of results (0 uses recommend.top_k)")
	cmd.Flags().BoolVar(&excludeSelf, "exclude-self", false, "Drop the item itself from the results")
	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Row counts of the loaded snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, store *dataset.Store) (interface{}, error) {
				return store.Stats(), nil
			})
		},
	}
}
