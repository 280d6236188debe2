package usgs

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/quake-watch/internal/domain"
)

func TestDecode_Fixture(t *testing.T) {
	f, err := os.Open("testdata/feed.json")
	require.NoError(t, err)
	defer f.Close()

	events, err := Decode(f)
	require.NoError(t, err)
	assert.Len(t, events, 5)
}

func TestDecode_NotJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("<html>"))
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

func TestNewFeatureCollection_DecodesBack(t *testing.T) {
	events := []domain.SeismicEvent{
		{ID: "us1", Magnitude: 4.2, Place: "10 km N of Somewhere", OccurredAtMillis: 1714172400000, Longitude: 10, Latitude: 20, DepthKm: 30, Title: "M 4.2", EventType: "earthquake"},
		{ID: "us2", Magnitude: 0, OccurredAtMillis: 1714168800000, Longitude: -1, Latitude: -2, DepthKm: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(NewFeatureCollection(events)))
	assert.Contains(t, buf.String(), `"place":null`)

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, events, decoded)
}
