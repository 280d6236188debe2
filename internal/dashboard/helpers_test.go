package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

// --- mocks ---

type mockQuakeFeed struct {
	events []domain.SeismicEvent
	err    error
	calls  int
}

func (m *mockQuakeFeed) FetchQuakes(_ context.Context) ([]domain.SeismicEvent, error) {
	m.calls++
	return m.events, m.err
}

type mockWeatherFeed struct {
	mu      sync.Mutex
	byCoord map[[2]float64]domain.CurrentWeather
	err     error
	calls   int
}

func (m *mockWeatherFeed) FetchWeather(_ context.Context, lat, lon float64) (domain.CurrentWeather, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return domain.CurrentWeather{}, m.err
	}
	return m.byCoord[[2]float64{lat, lon}], nil
}

type mockSink struct {
	published []domain.SeismicEvent
	err       error
}

func (m *mockSink) PublishBatch(_ context.Context, events []domain.SeismicEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, events...)
	return nil
}

var errUpstream = errors.New("upstream exploded")

// --- fixtures ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFormatter() Formatter {
	return NewFormatter(time.UTC, "en-US")
}


func fixtureEvents() []domain.SeismicEvent {
	return []domain.SeismicEvent{
		{ID: "us1", Magnitude: 5.62, Place: "84 km SE of Hualien City, Taiwan", OccurredAtMillis: 1714172400000, Longitude: 122.1234, Latitude: 23.4567, DepthKm: 18.3},
		{ID: "nc2", Magnitude: 1.12, Place: "6 km NW of The Geysers, CA", OccurredAtMillis: 1714168800000, Longitude: -122.8133, Latitude: 38.8215, DepthKm: 2.37},
		{ID: "us3", Magnitude: 3.4, OccurredAtMillis: 1714165200000, Longitude: -29.5012, Latitude: 0.9876, DepthKm: 10},
		{ID: "hv4", Magnitude: 2.05, Place: "12 km S of Volcano, Hawaii", OccurredAtMillis: 1714161600000, Longitude: -155.2345, Latitude: 19.3211, DepthKm: 31.9},
	}
}

func loadedState() *State {
	s := NewState()
	s.BeginLoad()
	s.LoadSucceeded(fixtureEvents())
	return s
}

func newTestDashboard(state *State, weather domain.WeatherFeed) *Dashboard {
	return New(state, weather, testFormatter(), discardLogger(), observability.NewMetricsForTesting())
}
