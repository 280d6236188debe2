// Package httpfeed performs the GET-and-decode round trip shared by the
// upstream feed clients and classifies failures as domain errors.
package httpfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/quake-watch/internal/domain"
	"github.com/couchcryptid/quake-watch/internal/observability"
)

// Outcome labels recorded on the feed_requests_total metric.
const (
	OutcomeSuccess   = "success"
	OutcomeTransport = "transport_error"
	OutcomeMalformed = "malformed"
)

// maxErrorBody caps how much of a failed response body is kept in the error.
const maxErrorBody = 512

// Fetcher issues GET requests for one named feed.
type Fetcher struct {
	Feed       string
	HTTPClient *http.Client
	Metrics    *observability.Metrics
	Logger     *slog.Logger
}

// NewHTTPClient returns a client with the given timeout; zero keeps the
// transport default of no overall timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// GetJSON fetches fullURL and decodes the JSON body into target. Transport
// failures and non-2xx statuses wrap domain.ErrTransport; undecodable bodies
// wrap domain.ErrMalformed.
func (f *Fetcher) GetJSON(ctx context.Context, fullURL string, target any) error {
	start := time.Now()
	err := f.getJSON(ctx, fullURL, target)
	f.Metrics.FeedDuration.WithLabelValues(f.Feed).Observe(time.Since(start).Seconds())
	f.Metrics.FeedRequests.WithLabelValues(f.Feed, Classify(err)).Inc()

	if err != nil {
		f.Logger.Warn("feed request failed", "feed", f.Feed, "error", err)
		return err
	}
	f.Logger.Debug("feed request succeeded", "feed", f.Feed, "duration", time.Since(start))
	return nil
}

func (f *Fetcher) getJSON(ctx context.Context, fullURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%w: create %s request: %w", domain.ErrTransport, f.Feed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s request: %w", domain.ErrTransport, f.Feed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s API error: status %d: %s", domain.ErrTransport, f.Feed, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", domain.ErrMalformed, f.Feed, err)
	}
	return nil
}

// Classify maps an error to its metric outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrMalformed):
		return OutcomeMalformed
	default:
		return OutcomeTransport
	}
}
