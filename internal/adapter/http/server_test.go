package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/quake-watch/internal/adapter/http"
	"github.com/couchcryptid/quake-watch/internal/dashboard"
	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

var _ sharedobs.ReadinessChecker = (*dashboard.State)(nil)

type mockWeather struct {
	weather domain.CurrentWeather
	err     error
	calls   int
}

func (m *mockWeather) FetchWeather(_ context.Context, _, _ float64) (domain.CurrentWeather, error) {
	m.calls++
	return m.weather, m.err
}

func loadedState() *dashboard.State {
	s := dashboard.NewState()
	s.BeginLoad()
	s.LoadSucceeded([]domain.SeismicEvent{
		{ID: "us1", Magnitude: 5.6, Place: "84 km SE of Hualien City, Taiwan", Title: "M 5.6 - 84 km SE of Hualien City, Taiwan", DetailURL: "https://earthquake.usgs.gov/earthquakes/eventpage/us1", OccurredAtMillis: 1714172400000, Latitude: 23.4567, Longitude: 122.1234, DepthKm: 18},
		{ID: "nc2", Magnitude: 1.1, Place: "6 km NW of The Geysers, CA", OccurredAtMillis: 1714168800000, Latitude: 38.82, Longitude: -122.81, DepthKm: 2.4},
		{ID: "us3", Magnitude: 3.4, OccurredAtMillis: 1714165200000, Latitude: 0.98, Longitude: -29.5, DepthKm: 10},
	})
	return s
}

func newTestServer(state *dashboard.State, weather domain.WeatherFeed) (*httpadapter.Server, *observability.Metrics) {
	metrics := observability.NewMetricsForTesting()
	return httpadapter.NewServer(":0", state, weather, "en-US", slog.Default(), metrics), metrics
}

// aside returns the detail panel of a rendered page.
func aside(t *testing.T, body string) string {
	t.Helper()
	start := strings.Index(body, "<aside>")
	end := strings.Index(body, "</aside>")
	require.True(t, start >= 0 && end > start, "page has no detail panel")
	return body[start:end]
}

func get(srv http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	srv, _ := newTestServer(dashboard.NewState(), &mockWeather{})
	rec := get(srv, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenLoaded(t *testing.T) {
	srv, _ := newTestServer(loadedState(), &mockWeather{})
	rec := get(srv, "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503BeforeLoad(t *testing.T) {
	srv, _ := newTestServer(dashboard.NewState(), &mockWeather{})
	rec := get(srv, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "event list has not loaded yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(dashboard.NewState(), &mockWeather{})
	rec := get(srv, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestIndexListsEvents(t *testing.T) {
	srv, _ := newTestServer(loadedState(), &mockWeather{})
	rec := get(srv, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "84 km SE of Hualien City, Taiwan")
	assert.Contains(t, body, "6 km NW of The Geysers, CA")
	assert.Contains(t, body, "Unknown location")
	assert.Contains(t, body, "4/26/2024")
	assert.NotContains(t, body, `id="weather"`)
}

func TestIndexFiltersByMinMag(t *testing.T) {
	srv, _ := newTestServer(loadedState(), &mockWeather{})
	body := get(srv, "/?min_mag=2.5").Body.String()

	assert.Contains(t, body, "84 km SE of Hualien City, Taiwan")
	assert.NotContains(t, body, "6 km NW of The Geysers, CA")
	assert.Contains(t, body, `<option value="2.5" selected>`)
}

func TestIndexEmptyAboveThreshold(t *testing.T) {
	srv, _ := newTestServer(loadedState(), &mockWeather{})
	body := get(srv, "/?min_mag=7.5").Body.String()

	assert.Contains(t, body, "No earthquakes found above magnitude 7.5")
}

func TestIndexRejectsInvalidMinMag(t *testing.T) {
	srv, _ := newTestServer(loadedState(), &mockWeather{})

	for _, v := range []string{"abc", "9", "-1", "2.3"} {
		rec := get(srv, "/?min_mag="+v)
		assert.Equal(t, http.StatusBadRequest, rec.Code, v)
	}
}

func TestIndexShowsLoadingAndFailure(t *testing.T) {
	loading := dashboard.NewState()
	loading.BeginLoad()
	srv, _ := newTestServer(loading, &mockWeather{})
	assert.Contains(t, get(srv, "/").Body.String(), "Loading earthquakes…")

	failed := dashboard.NewState()
	failed.LoadFailed(errors.New("boom"))
	srv, _ = newTestServer(failed, &mockWeather{})
	body := get(srv, "/?min_mag=4.0").Body.String()
	assert.Contains(t, body, "Failed to load earthquakes. Please try again later.")
}

func TestIndexWithSelectionRendersDetail(t *testing.T) {
	weather := &mockWeather{}
	srv, metrics := newTestServer(loadedState(), weather)

	first := aside(t, get(srv, "/?id=us1").Body.String())
	assert.Contains(t, first, "<h2>84 km SE of Hualien City, Taiwan</h2>")
	assert.Contains(t, first, "M 5.6 - 84 km SE of Hualien City, Taiwan")
	assert.Contains(t, first, "18.0 km")
	assert.Contains(t, first, "23.46°, 122.12°")
	assert.Contains(t, first, "Loading weather data…")
	assert.Contains(t, first, `data-src="/quakes/us1/weather"`)
	assert.Contains(t, first, "https://earthquake.usgs.gov/earthquakes/eventpage/us1")

	second := aside(t, get(srv, "/?id=us3").Body.String())
	assert.Contains(t, second, "<h2>Unknown location</h2>")
	assert.Contains(t, second, `data-src="/quakes/us3/weather"`)

	assert.Equal(t, 0, weather.calls, "page render never waits on the weather feed")
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.Selections), 0)
}

func TestIndexDetailHeadingIgnoresTitleWithoutPlace(t *testing.T) {
	state := dashboard.NewState()
	state.BeginLoad()
	state.LoadSucceeded([]domain.SeismicEvent{
		{ID: "us9", Magnitude: 3.4, Title: "M 3.4 - ", OccurredAtMillis: 1714165200000, Latitude: 0.98, Longitude: -29.5, DepthKm: 10},
	})
	srv, _ := newTestServer(state, &mockWeather{})

	detail := aside(t, get(srv, "/?id=us9").Body.String())
	assert.Contains(t, detail, "<h2>Unknown location</h2>")
	assert.Contains(t, detail, `<p class="muted">M 3.4 - </p>`)
}

func TestIndexWithUnknownSelectionIsIgnored(t *testing.T) {
	srv, metrics := newTestServer(loadedState(), &mockWeather{})
	rec := get(srv, "/?id=missing")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `id="weather"`)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.Selections), 0)
}

func TestIndexUsesAcceptLanguage(t *testing.T) {
	srv, _ := newTestServer(loadedState(), &mockWeather{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	srv.ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), `<html lang="de">`)
}

func TestWeatherFragment(t *testing.T) {
	weather := &mockWeather{weather: domain.CurrentWeather{TemperatureCelsius: 24.1, WindSpeedKmh: 9.4, WeatherCode: 2}}
	srv, _ := newTestServer(loadedState(), weather)
	rec := get(srv, "/quakes/us1/weather")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Partly cloudy")
	assert.Contains(t, body, "24.1°C")
	assert.Contains(t, body, "9.4 km/h")
	assert.Equal(t, 1, weather.calls)
}

func TestWeatherFragmentFailure(t *testing.T) {
	srv, _ := newTestServer(loadedState(), &mockWeather{err: domain.ErrTransport})
	rec := get(srv, "/quakes/us1/weather")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load weather data.")
}

func TestWeatherFragmentUnknownEvent(t *testing.T) {
	weather := &mockWeather{}
	srv, _ := newTestServer(loadedState(), weather)

	assert.Equal(t, http.StatusNotFound, get(srv, "/quakes/missing/weather").Code)
	assert.Equal(t, 0, weather.calls)
}
