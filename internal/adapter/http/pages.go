package http

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/couchcryptid/quake-watch/internal/dashboard"
	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pages renders the browser dashboard. Each page load with an id is one
// selection; its weather fragment is fetched by that page's script, so a
// newer selection replaces the page and everything still loading for it.
type pages struct {
	state   *dashboard.State
	weather domain.WeatherFeed
	locale  string
	logger  *slog.Logger
	metrics *observability.Metrics
}

type thresholdOption struct {
	Value    string
	Selected bool
}

type pageData struct {
	Locale     string
	FetchedAt  string
	List       dashboard.ListView
	Thresholds []thresholdOption
	Lower      string
	Raise      string
	Detail     *dashboard.DetailView
}

func (p *pages) formatter(r *http.Request) dashboard.Formatter {
	return dashboard.NewFormatter(nil, r.Header.Get("Accept-Language"), p.locale)
}

func (p *pages) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := p.state.Snapshot()
	f := p.formatter(r)

	threshold := snap.Threshold
	if raw := r.URL.Query().Get("min_mag"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			err = domain.ValidateThreshold(v)
		}
		if err != nil {
			http.Error(w, "invalid min_mag: "+raw, http.StatusBadRequest)
			return
		}
		threshold = v
	}

	data := pageData{
		Locale: f.Locale().String(),
		List:   dashboard.BuildList(snap.Phase, snap.Events, threshold, f),
		Lower:  f.Magnitude(domain.StepThreshold(threshold, -1)),
		Raise:  f.Magnitude(domain.StepThreshold(threshold, 1)),
	}
	if snap.Phase == dashboard.PhaseLoaded {
		data.FetchedAt = f.Stamp(snap.FetchedAt)
	}
	for v := domain.MinThreshold; v <= domain.MaxThreshold; v += domain.ThresholdStep {
		data.Thresholds = append(data.Thresholds, thresholdOption{
			Value:    f.Magnitude(v),
			Selected: v == threshold,
		})
	}

	if id := r.URL.Query().Get("id"); id != "" {
		if event, ok := p.state.Lookup(id); ok {
			detail := dashboard.BuildDetail(event, f)
			data.Detail = &detail
			p.metrics.Selections.Inc()
		} else {
			p.logger.Debug("selected event not in current list", "event_id", id)
		}
	}

	p.render(w, "page.html", data)
}

func (p *pages) handleWeather(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	event, ok := p.state.Lookup(id)
	if !ok {
		http.Error(w, "unknown event: "+id, http.StatusNotFound)
		return
	}

	weather, err := p.weather.FetchWeather(r.Context(), event.Latitude, event.Longitude)
	if err != nil {
		p.logger.Warn("weather lookup failed", "event_id", id, "lat", event.Latitude, "lon", event.Longitude, "error", err)
	}

	p.render(w, "weather.html", dashboard.WeatherSectionFor(weather, err, p.formatter(r)))
}

func (p *pages) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		p.logger.Error("render template", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}
