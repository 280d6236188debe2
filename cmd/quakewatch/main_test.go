package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/quake-watch/internal/config"
	"github.com/couchcryptid/quake-watch/internal/dashboard"
	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	list, _, err := root.Find([]string{"list"})
	require.NoError(t, err)
	flag := list.Flags().Lookup("min-mag")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestListCmd_RejectsInvalidMinMag(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"list", "--min-mag", "2.3"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--min-mag")
}

func TestPrintList(t *testing.T) {
	f := dashboard.NewFormatter(time.UTC, "en-US")
	events := []domain.SeismicEvent{
		{ID: "us1", Magnitude: 5.6, Place: "84 km SE of Hualien City, Taiwan", OccurredAtMillis: 1714172400000},
		{ID: "us3", Magnitude: 3.4, OccurredAtMillis: 1714165200000},
	}

	var buf bytes.Buffer
	printList(&buf, dashboard.BuildList(dashboard.PhaseLoaded, events, 3, f))
	out := buf.String()
	assert.Contains(t, out, "M  5.6  4/26/2024, 11:00:00 PM")
	assert.Contains(t, out, "84 km SE of Hualien City, Taiwan")
	assert.Contains(t, out, "Unknown location")

	buf.Reset()
	printList(&buf, dashboard.BuildList(dashboard.PhaseLoaded, events, 6, f))
	assert.Equal(t, "No earthquakes found above magnitude 6.0\n", buf.String())

	buf.Reset()
	printList(&buf, dashboard.BuildList(dashboard.PhaseFailed, nil, 0, f))
	assert.Equal(t, "Failed to load earthquakes. Please try again later.\n", buf.String())
}

func TestNewApp_MirrorDisabledByDefault(t *testing.T) {
	cfg := &config.Config{
		QuakeFeedURL:   "http://127.0.0.1:0/quakes",
		WeatherFeedURL: "http://127.0.0.1:0/weather",
	}
	a := newApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())
	defer a.Close()

	assert.Nil(t, a.writer)
	assert.NotNil(t, a.loader)
	assert.Equal(t, dashboard.PhaseInit, a.state.Phase())
}

func TestNewApp_MirrorEnabled(t *testing.T) {
	cfg := &config.Config{
		QuakeFeedURL:   "http://127.0.0.1:0/quakes",
		WeatherFeedURL: "http://127.0.0.1:0/weather",
		KafkaBrokers:   []string{"localhost:9092"},
		KafkaTopic:     "seismic-events",
		KafkaEnabled:   true,
	}
	a := newApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())
	defer a.Close()

	assert.NotNil(t, a.writer)
}
