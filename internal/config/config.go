package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Config holds all application settings, populated from environment variables.
type Config struct {
	QuakeFeedURL   string
	WeatherFeedURL string
	FeedTimeout    time.Duration // 0 leaves the transport default in place

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	LogFile         string
	ShutdownTimeout time.Duration
	Locale          string

	// Optional Kafka mirror of loaded event batches.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaEnabled bool
}

// Load reads configuration from environment variables (optionally .env),
// applying defaults where unset.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignore missing file

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	feedTimeout, err := parseFeedTimeout()
	if err != nil {
		return nil, err
	}

	brokers := sharedcfg.ParseBrokers(os.Getenv("KAFKA_BROKERS"))

	cfg := &Config{
		QuakeFeedURL:    sharedcfg.EnvOrDefault("QUAKE_FEED_URL", "https://earthquake.usgs.gov/fdsnws/event/1/query"),
		WeatherFeedURL:  sharedcfg.EnvOrDefault("WEATHER_FEED_URL", "https://api.open-meteo.com/v1/forecast"),
		FeedTimeout:     feedTimeout,
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		LogFile:         os.Getenv("LOG_FILE"),
		ShutdownTimeout: shutdownTimeout,
		Locale:          detectLocale(),
		KafkaBrokers:    brokers,
		KafkaTopic:      sharedcfg.EnvOrDefault("KAFKA_TOPIC", "seismic-events"),
		KafkaEnabled:    len(brokers) > 0,
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", cfg.LogFormat)
	}

	return cfg, nil
}

// parseFeedTimeout reads FEED_TIMEOUT. Default: 0, which leaves the
// transport default in place. Must not be negative.
func parseFeedTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault("FEED_TIMEOUT", "0s"))
	if err != nil || d < 0 {
		return 0, errors.New("invalid FEED_TIMEOUT: must be a non-negative duration")
	}
	return d, nil
}

// detectLocale picks the viewer's locale from LOCALE, then the POSIX
// variables, e.g. "de_DE.UTF-8" -> "de-DE".
func detectLocale() string {
	for _, key := range []string{"LOCALE", "LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return "en-US"
}
