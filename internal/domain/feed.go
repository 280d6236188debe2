package domain

import "context"

// QuakeFeed lists recent seismic events.
type QuakeFeed interface {
	FetchQuakes(ctx context.Context) ([]SeismicEvent, error)
}

// WeatherFeed returns current conditions for a coordinate pair.
type WeatherFeed interface {
	FetchWeather(ctx context.Context, lat, lon float64) (CurrentWeather, error)
}

// EventSink receives each successfully loaded batch of events.
type EventSink interface {
	PublishBatch(ctx context.Context, events []SeismicEvent) error
}
