package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"crosscheck/internal/logging"
	"crosscheck/internal/lookup"
	"crosscheck/internal/lookupcache"
	"crosscheck/internal/quality"
	"crosscheck/internal/reconcile"
	"crosscheck/internal/services/radarr"
	"crosscheck/internal/services/tracker"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile the Radarr library against the tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

			lockPath := filepath.Join(cfg.Paths.LogDir, "crosscheck.lock")
			runLock := flock.New(lockPath)
			locked, err := runLock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another crosscheck run holds %s", lockPath)
			}
			defer func() {
				_ = runLock.Unlock()
			}()

			cache, err := lookupcache.Open(cfg)
			if err != nil {
				return fmt.Errorf("open lookup cache: %w", err)
			}
			defer cache.Close()

			target, err := quality.TierFor(cfg.Matching.TargetResolution)
			if err != nil {
				return err
			}
			allowed := quality.NewGroupAllowList(cfg.Matching.ReleaseGroups)

			inventory, err := radarr.New(cfg.Radarr.URL, cfg.Radarr.APIKey)
			if err != nil {
				return err
			}
			searcher, err := tracker.New(cfg.Tracker.URL, cfg.Tracker.APIToken)
			if err != nil {
				return err
			}
			gateway, err := lookup.NewGateway(cache, searcher, target, logger)
			if err != nil {
				return err
			}
			engine, err := reconcile.New(inventory, gateway, target, allowed, logger)
			if err != nil {
				return err
			}

			report, err := engine.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSummary(out, report)

			if !report.HasMissing() {
				fmt.Fprintln(out, "All qualifying releases are present on the tracker.")
				return nil
			}

			destination := reportPath
			if destination == "" {
				destination = cfg.Report.Path
			}
			if err := report.WriteMissing(destination); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %d missing release(s) to %s\n", len(report.Missing), destination)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reportPath, "output", "o", "", "Report file path (overrides report.path)")
	return cmd
}

func printSummary(out io.Writer, report *reconcile.Report) {
	rows := [][]string{
		{"Checked", strconv.Itoa(report.Checked)},
		{"Matched", strconv.Itoa(report.Matched)},
		{"Not found", strconv.Itoa(report.NotFound)},
		{"Skipped", strconv.Itoa(report.Skipped)},
		{"Errors", strconv.Itoa(report.Errors)},
		{"Cache hits", strconv.Itoa(report.CacheHits)},
		{"Cache misses", strconv.Itoa(report.CacheMisses)},
	}
	if stdoutIsTerminal() {
		fmt.Fprintln(out, renderTable([]string{"Result", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}
