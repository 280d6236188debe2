package usgs

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/quake-watch/internal/adapter/httpfeed"
	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

// EventLimit is the fixed upper bound of events requested per fetch.
const EventLimit = 50

// Client implements domain.QuakeFeed using the USGS FDSN event service.
type Client struct {
	baseURL string
	fetcher *httpfeed.Fetcher
}

// NewClient creates a USGS feed client. A zero timeout keeps the transport default.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		fetcher: &httpfeed.Fetcher{
			Feed:       "quakes",
			HTTPClient: httpfeed.NewHTTPClient(timeout),
			Metrics:    metrics,
			Logger:     logger,
		},
	}
}

// FetchQuakes requests up to EventLimit recent events as GeoJSON and returns
// them in upstream order.
func (c *Client) FetchQuakes(ctx context.Context) ([]domain.SeismicEvent, error) {
	params := url.Values{
		"format": {"geojson"},
		"limit":  {strconv.Itoa(EventLimit)},
	}

	var fc FeatureCollection
	if err := c.fetcher.GetJSON(ctx, c.baseURL+"?"+params.Encode(), &fc); err != nil {
		return nil, err
	}
	return fc.Events()
}
