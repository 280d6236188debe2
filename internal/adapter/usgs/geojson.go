package usgs

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/quake-watch/internal/domain"
)

// FeatureCollection is the subset of the USGS GeoJSON summary format the
// dashboard reads.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Features []Feature `json:"features"`
}

type Metadata struct {
	Generated int64  `json:"generated"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Count     int    `json:"count"`
}

type Feature struct {
	Type       string     `json:"type"`
	ID         string     `json:"id"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

type Properties struct {
	Mag   *float64 `json:"mag"`
	Place *string  `json:"place"`
	Time  int64    `json:"time"`
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Type  string   `json:"type"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
}

// Decode reads a GeoJSON feature collection and converts it to events.
func Decode(r io.Reader) ([]domain.SeismicEvent, error) {
	var fc FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("%w: decode quakes response: %w", domain.ErrMalformed, err)
	}
	return fc.Events()
}

// Events converts the features to domain events in upstream order.
func (fc FeatureCollection) Events() ([]domain.SeismicEvent, error) {
	if fc.Features == nil {
		return nil, fmt.Errorf("%w: quakes response has no features array", domain.ErrMalformed)
	}

	events := make([]domain.SeismicEvent, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f.ID == "" {
			return nil, fmt.Errorf("%w: feature %d has no id", domain.ErrMalformed, i)
		}
		if len(f.Geometry.Coordinates) < 3 {
			return nil, fmt.Errorf("%w: feature %s has %d coordinates, want 3",
				domain.ErrMalformed, f.ID, len(f.Geometry.Coordinates))
		}

		e := domain.SeismicEvent{
			ID:               f.ID,
			OccurredAtMillis: f.Properties.Time,
			Longitude:        f.Geometry.Coordinates[0],
			Latitude:         f.Geometry.Coordinates[1],
			DepthKm:          f.Geometry.Coordinates[2],
			DetailURL:        f.Properties.URL,
			Title:            f.Properties.Title,
			EventType:        f.Properties.Type,
		}
		// A null magnitude compares as zero.
		if f.Properties.Mag != nil {
			e.Magnitude = *f.Properties.Mag
		}
		if f.Properties.Place != nil {
			e.Place = *f.Properties.Place
		}
		events = append(events, e)
	}
	return events, nil
}

// NewFeatureCollection encodes events in the USGS GeoJSON shape. An empty
// Place is written as null.
func NewFeatureCollection(events []domain.SeismicEvent) FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, len(events)),
	}
	for i, e := range events {
		mag := e.Magnitude
		f := Feature{
			Type: "Feature",
			ID:   e.ID,
			Properties: Properties{
				Mag:   &mag,
				Time:  e.OccurredAtMillis,
				URL:   e.DetailURL,
				Title: e.Title,
				Type:  e.EventType,
			},
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{e.Longitude, e.Latitude, e.DepthKm},
			},
		}
		if e.Place != "" {
			place := e.Place
			f.Properties.Place = &place
		}
		fc.Features[i] = f
	}
	return fc
}
