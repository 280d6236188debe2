package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/quake-watch/internal/adapter/httpfeed"
	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

// Client implements domain.WeatherFeed using the Open-Meteo forecast API.
type Client struct {
	baseURL string
	fetcher *httpfeed.Fetcher
}

// NewClient creates an Open-Meteo client. A zero timeout keeps the transport default.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		fetcher: &httpfeed.Fetcher{
			Feed:       "weather",
			HTTPClient: httpfeed.NewHTTPClient(timeout),
			Metrics:    metrics,
			Logger:     logger,
		},
	}
}

// FetchWeather requests the current-conditions snapshot for a coordinate pair.
func (c *Client) FetchWeather(ctx context.Context, lat, lon float64) (domain.CurrentWeather, error) {
	params := url.Values{
		"latitude":        {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":       {strconv.FormatFloat(lon, 'f', -1, 64)},
		"current_weather": {"true"},
	}

	var resp response
	if err := c.fetcher.GetJSON(ctx, c.baseURL+"?"+params.Encode(), &resp); err != nil {
		return domain.CurrentWeather{}, err
	}
	if resp.CurrentWeather == nil {
		return domain.CurrentWeather{}, fmt.Errorf("%w: weather response has no current_weather", domain.ErrMalformed)
	}
	return *resp.CurrentWeather, nil
}

// Open-Meteo API response types.

type response struct {
	CurrentWeather *domain.CurrentWeather `json:"current_weather"`
}
