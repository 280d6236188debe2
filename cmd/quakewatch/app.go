package main

import (
	"log/slog"

	kafkaadapter "github.com/couchcryptid/quake-watch/internal/adapter/kafka"
	"github.com/couchcryptid/quake-watch/internal/adapter/openmeteo"
	"github.com/couchcryptid/quake-watch/internal/adapter/usgs"
	"github.com/couchcryptid/quake-watch/internal/config"
	"github.com/couchcryptid/quake-watch/internal/dashboard"
	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

// app wires the feeds, state, and optional event mirror shared by every
// front-end.
type app struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	state   *dashboard.State
	loader  *dashboard.Loader
	weather domain.WeatherFeed
	writer  *kafkaadapter.Writer
}

func newApp(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *app {
	quakes := usgs.NewClient(cfg.QuakeFeedURL, cfg.FeedTimeout, metrics, logger)
	weather := openmeteo.NewClient(cfg.WeatherFeedURL, cfg.FeedTimeout, metrics, logger)

	a := &app{
		logger:  logger,
		metrics: metrics,
		state:   dashboard.NewState(),
		weather: weather,
	}

	var sink domain.EventSink
	if cfg.KafkaEnabled {
		a.writer = kafkaadapter.NewWriter(cfg, logger)
		sink = a.writer
		logger.Info("kafka event mirror enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("kafka event mirror disabled")
	}

	a.loader = dashboard.NewLoader(quakes, sink, a.state, logger, metrics)
	return a
}

// Close releases the event mirror, if any.
func (a *app) Close() {
	if a.writer == nil {
		return
	}
	if err := a.writer.Close(); err != nil {
		a.logger.Error("kafka writer close error", "error", err)
	}
}
