package dashboard

import (
	"github.com/couchcryptid/quake-watch/internal/domain"
)

// WeatherStatus says what the weather subsection shows.
type WeatherStatus int

const (
	WeatherLoading WeatherStatus = iota
	WeatherLoaded
	WeatherFailed
)

// Weather subsection messages.
const (
	MsgLoadingWeather = "Loading weather data…"
	MsgWeatherFailed  = "Failed to load weather data."
)

// WeatherSection is the view model of the weather subsection.
type WeatherSection struct {
	Status      WeatherStatus
	Message     string
	Condition   string
	Temperature string
	WindSpeed   string
}

func (s WeatherSection) Loaded() bool { return s.Status == WeatherLoaded }
func (s WeatherSection) Failed() bool { return s.Status == WeatherFailed }

// DetailView is the view model of the detail panel.
type DetailView struct {
	EventID     string
	Title       string
	DetailURL   string
	Place       string
	Magnitude   string
	Severity    domain.Severity
	Depth       string
	Time        string
	Coordinates string
	Weather     WeatherSection
}

// BuildDetail renders an event's attributes with the weather subsection in
// its loading state.
func BuildDetail(e domain.SeismicEvent, f Formatter) DetailView {
	return DetailView{
		EventID:     e.ID,
		Title:       e.Title,
		DetailURL:   e.DetailURL,
		Place:       e.DisplayPlace(),
		Magnitude:   f.Magnitude(e.Magnitude),
		Severity:    e.Severity(),
		Depth:       f.Depth(e.DepthKm),
		Time:        f.Time(e.OccurredAtMillis),
		Coordinates: f.Coordinates(e.Latitude, e.Longitude),
		Weather:     LoadingWeather(),
	}
}

// LoadingWeather is the initial weather subsection.
func LoadingWeather() WeatherSection {
	return WeatherSection{Status: WeatherLoading, Message: MsgLoadingWeather}
}

// LoadedWeather renders a weather snapshot.
func LoadedWeather(w domain.CurrentWeather, f Formatter) WeatherSection {
	return WeatherSection{
		Status:      WeatherLoaded,
		Condition:   w.Label(),
		Temperature: f.Temperature(w.TemperatureCelsius),
		WindSpeed:   f.WindSpeed(w.WindSpeedKmh),
	}
}

// FailedWeather is the weather subsection after a failed lookup.
func FailedWeather() WeatherSection {
	return WeatherSection{Status: WeatherFailed, Message: MsgWeatherFailed}
}

// WeatherSectionFor renders the outcome of a weather lookup.
func WeatherSectionFor(w domain.CurrentWeather, err error, f Formatter) WeatherSection {
	if err != nil {
		return FailedWeather()
	}
	return LoadedWeather(w, f)
}
