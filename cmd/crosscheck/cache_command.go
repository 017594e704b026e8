package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"crosscheck/internal/lookupcache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the lookup cache",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCachePruneCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func withCache(ctx *commandContext, fn func(*lookupcache.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	store, err := lookupcache.Open(cfg)
	if err != nil {
		return fmt.Errorf("open lookup cache: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached tracker lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, func(store *lookupcache.Store) error {
				entries, err := store.Entries(cmd.Context())
				if err != nil {
					return err
				}
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Lookup cache is empty.")
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					age := time.Since(entry.LastChecked).Round(time.Minute)
					rows = append(rows, []string{
						entry.IMDbID,
						entry.LastChecked.Local().Format("2006-01-02 15:04"),
						age.String(),
						strconv.Itoa(len(entry.Payload)),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"IMDb ID", "Last checked", "Age", "Bytes"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
				))
				fmt.Fprintf(out, "%d entries (%d fresh, %d expired)\n", stats.Total, stats.Fresh, stats.Expired)
				return nil
			})
		},
	}
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete cache entries older than the expiry window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, func(store *lookupcache.Store) error {
				removed, err := store.Prune(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d expired entr%s\n", removed, pluralY(removed))
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached lookup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, func(store *lookupcache.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Lookup cache cleared.")
				return nil
			})
		},
	}
}

func pluralY(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
