package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/quake-watch/internal/config"
	"github.com/couchcryptid/quake-watch/internal/dashboard"
	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

func newListCmd() *cobra.Command {
	var minMag float64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print recent earthquakes once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := domain.ValidateThreshold(minMag); err != nil {
				return fmt.Errorf("--min-mag: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			// The listing goes to stdout, so logs go to LOG_FILE or nowhere.
			logger, logCloser, err := observability.NewFileLogger(cfg)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logCloser.Close() //nolint:errcheck // nothing left to log to

			a := newApp(cfg, logger, observability.NewMetrics())
			defer a.Close()

			ctx, stop := rootContext()
			defer stop()

			loadErr := a.loader.Load(ctx)
			f := dashboard.NewFormatter(nil, cfg.Locale)
			snap := a.state.Snapshot()
			printList(cmd.OutOrStdout(), dashboard.BuildList(snap.Phase, snap.Events, minMag, f))
			return loadErr
		},
	}

	cmd.Flags().Float64VarP(&minMag, "min-mag", "m", domain.MinThreshold, "Minimum magnitude, 0 to 8 in steps of 0.5")
	return cmd
}

func printList(w io.Writer, v dashboard.ListView) {
	if !v.HasItems() {
		fmt.Fprintln(w, v.Message)
		return
	}
	for _, it := range v.Items {
		fmt.Fprintf(w, "M %4s  %-28s  %s\n", it.Magnitude, it.Time, it.Place)
	}
}
