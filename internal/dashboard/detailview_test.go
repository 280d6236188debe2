package dashboard

import (
	"testing"

	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildDetail(t *testing.T) {
	e := fixtureEvents()[0]
	e.Title = "M 5.6 - 84 km SE of Hualien City, Taiwan"
	e.DetailURL = "https://earthquake.usgs.gov/earthquakes/eventpage/us1"

	want := DetailView{
		EventID:     "us1",
		Title:       "M 5.6 - 84 km SE of Hualien City, Taiwan",
		DetailURL:   "https://earthquake.usgs.gov/earthquakes/eventpage/us1",
		Place:       "84 km SE of Hualien City, Taiwan",
		Magnitude:   "5.6",
		Severity:    domain.SeverityHigh,
		Depth:       "18.3 km",
		Time:        "4/26/2024, 11:00:00 PM",
		Coordinates: "23.46°, 122.12°",
		Weather:     WeatherSection{Status: WeatherLoading, Message: "Loading weather data…"},
	}
	if diff := cmp.Diff(want, BuildDetail(e, testFormatter())); diff != "" {
		t.Errorf("BuildDetail mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDetail_UnknownPlace(t *testing.T) {
	v := BuildDetail(fixtureEvents()[2], testFormatter())
	assert.Equal(t, "Unknown location", v.Place)
	assert.Equal(t, "10.0 km", v.Depth)
}

func TestWeatherSectionFor(t *testing.T) {
	f := testFormatter()
	w := domain.CurrentWeather{TemperatureCelsius: 21.4, WindSpeedKmh: 12, WeatherCode: 3}

	got := WeatherSectionFor(w, nil, f)
	want := WeatherSection{Status: WeatherLoaded, Condition: "Overcast", Temperature: "21.4°C", WindSpeed: "12 km/h"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded section mismatch (-want +got):\n%s", diff)
	}

	got = WeatherSectionFor(w, errUpstream, f)
	assert.Equal(t, WeatherFailed, got.Status)
	assert.Equal(t, "Failed to load weather data.", got.Message)
	assert.Empty(t, got.Temperature)
}

func TestLoadedWeather_UnknownCode(t *testing.T) {
	s := LoadedWeather(domain.CurrentWeather{WeatherCode: 42}, testFormatter())
	assert.Equal(t, "Code 42", s.Condition)
}
