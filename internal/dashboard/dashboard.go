// Package dashboard holds the front-end independent core of the earthquake
// dashboard: the loaded state, the list and detail view models, and the
// selection tokens that keep late weather results from overwriting a newer
// selection.
package dashboard

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

// WeatherRequest asks for the weather at a selected event. Token identifies
// the selection it belongs to.
type WeatherRequest struct {
	Token   uint64
	EventID string
	Lat     float64
	Lon     float64
}

// WeatherResult is the outcome of a WeatherRequest, tagged with its token.
type WeatherResult struct {
	Token   uint64
	EventID string
	Weather domain.CurrentWeather
	Err     error
}

// Dashboard drives the list and detail views over a State. Apart from
// FetchWeather, its methods must be called from a single goroutine (the UI
// loop); weather results are handed back to that goroutine via ApplyWeather.
type Dashboard struct {
	state   *State
	weather domain.WeatherFeed
	format  Formatter
	logger  *slog.Logger
	metrics *observability.Metrics

	token  uint64
	detail *DetailView
}

// New creates a Dashboard over state using weather for lookups.
func New(state *State, weather domain.WeatherFeed, format Formatter, logger *slog.Logger, metrics *observability.Metrics) *Dashboard {
	return &Dashboard{
		state:   state,
		weather: weather,
		format:  format,
		logger:  logger,
		metrics: metrics,
	}
}

func (d *Dashboard) State() *State        { return d.state }
func (d *Dashboard) CurrentToken() uint64 { return d.token }

// List renders the list view for the current state.
func (d *Dashboard) List() ListView {
	return BuildListFromSnapshot(d.state.Snapshot(), d.format)
}

// StepThreshold moves the filter threshold by n steps and returns the new value.
func (d *Dashboard) StepThreshold(n int) float64 {
	next := domain.StepThreshold(d.state.Threshold(), n)
	// StepThreshold clamps to the valid range, so this cannot fail.
	_ = d.state.SetThreshold(next)
	return next
}

// Select opens the detail panel for id and returns the weather request to
// run for it. An id missing from the current list is a no-op: the open
// panel, if any, is left as it was and ok is false.
func (d *Dashboard) Select(id string) (req WeatherRequest, ok bool) {
	event, found := d.state.Lookup(id)
	if !found {
		d.logger.Debug("selected event not in current list", "event_id", id)
		return WeatherRequest{}, false
	}

	d.token++
	view := BuildDetail(event, d.format)
	d.detail = &view
	d.metrics.Selections.Inc()

	return WeatherRequest{
		Token:   d.token,
		EventID: event.ID,
		Lat:     event.Latitude,
		Lon:     event.Longitude,
	}, true
}

// Detail returns the open detail panel, if any.
func (d *Dashboard) Detail() (DetailView, bool) {
	if d.detail == nil {
		return DetailView{}, false
	}
	return *d.detail, true
}

// Close clears the detail panel. Pending weather results for it are
// discarded when they arrive.
func (d *Dashboard) Close() {
	d.token++
	d.detail = nil
}

// FetchWeather performs the lookup for req. It may run on any goroutine and
// never returns an error directly; failures travel in the result.
func (d *Dashboard) FetchWeather(ctx context.Context, req WeatherRequest) WeatherResult {
	w, err := d.weather.FetchWeather(ctx, req.Lat, req.Lon)
	if err != nil {
		d.logger.Warn("weather lookup failed", "event_id", req.EventID, "lat", req.Lat, "lon", req.Lon, "error", err)
	}
	return WeatherResult{Token: req.Token, EventID: req.EventID, Weather: w, Err: err}
}

// ApplyWeather patches the weather subsection with res if res belongs to the
// current selection. Results for superseded or closed selections are
// dropped and false is returned.
func (d *Dashboard) ApplyWeather(res WeatherResult) bool {
	if d.detail == nil || res.Token != d.token {
		d.metrics.StaleWeatherDiscarded.Inc()
		d.logger.Debug("discarding stale weather result", "event_id", res.EventID, "token", res.Token, "current", d.token)
		return false
	}
	d.detail.Weather = WeatherSectionFor(res.Weather, res.Err, d.format)
	return true
}
