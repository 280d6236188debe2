package dashboard

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

// Loader fetches the event list and moves State through its load phases.
// There is no retry: a failed load stays failed until the program restarts.
type Loader struct {
	feed    domain.QuakeFeed
	sink    domain.EventSink
	state   *State
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader. Pass a nil sink to disable the event mirror.
func NewLoader(feed domain.QuakeFeed, sink domain.EventSink, state *State, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{
		feed:    feed,
		sink:    sink,
		state:   state,
		logger:  logger,
		metrics: metrics,
	}
}

// Begin moves the state to PhaseLoading.
func (l *Loader) Begin() {
	l.state.BeginLoad()
}

// Fetch requests the event list and mirrors a successful batch to the sink.
// It does not touch State, so it can run off the UI loop.
func (l *Loader) Fetch(ctx context.Context) ([]domain.SeismicEvent, error) {
	events, err := l.feed.FetchQuakes(ctx)
	if err != nil {
		return nil, err
	}
	if l.sink != nil {
		if err := l.sink.PublishBatch(ctx, events); err != nil {
			l.metrics.PublishErrors.Inc()
			l.logger.Warn("event mirror publish failed", "error", err, "count", len(events))
		} else {
			l.metrics.EventsPublished.Add(float64(len(events)))
		}
	}
	return events, nil
}

// Apply records the outcome of Fetch in State.
func (l *Loader) Apply(events []domain.SeismicEvent, err error) {
	if err != nil {
		l.metrics.LoadFailures.Inc()
		l.logger.Error("failed to load earthquakes", "error", err)
		l.state.LoadFailed(err)
		return
	}
	l.metrics.EventsLoaded.Set(float64(len(events)))
	l.logger.Info("earthquakes loaded", "count", len(events))
	l.state.LoadSucceeded(events)
}

// Load runs Begin, Fetch and Apply in sequence and returns the fetch error.
func (l *Loader) Load(ctx context.Context) error {
	l.Begin()
	events, err := l.Fetch(ctx)
	l.Apply(events, err)
	return err
}
