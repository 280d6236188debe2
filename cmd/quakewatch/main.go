package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/quake-watch/internal/config"
	"github.com/couchcryptid/quake-watch/internal/dashboard"
	"github.com/couchcryptid/quake-watch/internal/observability"
	"github.com/couchcryptid/quake-watch/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quakewatch",
		Short: "Recent earthquakes with weather at the epicentre",
		Long: `quakewatch fetches the 50 most recent earthquakes from the USGS feed,
filters them by minimum magnitude, and shows the current weather at a
selected event's coordinates. Without a subcommand it runs in the terminal.`,
		SilenceUsage: true,
		RunE:         runTerminal,
	}
	root.AddCommand(newServeCmd(), newListCmd())
	return root
}

func runTerminal(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := observability.NewFileLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logCloser.Close() //nolint:errcheck // nothing left to log to

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	a := newApp(cfg, logger, observability.NewMetrics())
	defer a.Close()

	dash := dashboard.New(a.state, a.weather, dashboard.NewFormatter(nil, cfg.Locale), logger, a.metrics)
	model := tui.New(ctx, dash, a.loader)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func rootContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
