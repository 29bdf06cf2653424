package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultShutdownTimeout = 10 * time.Second

	defaultCatalogTimeout    = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultSearchRate        = 5.0
	defaultSearchBurst       = 10
	defaultSessionTTL        = 30 * time.Minute
	defaultSessionSweep      = time.Minute
)

type Storefront struct {
	CatalogAPIURL     string
	RabbitMQURL       string
	HTTPAddr          string
	ShutdownTimeout   time.Duration
	CatalogTimeout    time.Duration
	ReadHeaderTimeout time.Duration
	SearchRate        float64
	SearchBurst       int
	SessionTTL        time.Duration
	SessionSweep      time.Duration
}

// LoadStorefront reads the storefront settings from the environment. An
// empty RABBITMQ_URL means catalog events are only logged.
func LoadStorefront() (Storefront, error) {
	cfg := Storefront{
		CatalogAPIURL:     getEnv("CATALOG_API_URL", ""),
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		HTTPAddr:          getEnv("HTTP_ADDR", defaultHTTPAddr),
		ShutdownTimeout:   defaultShutdownTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		SessionSweep:      defaultSessionSweep,
	}

	if cfg.CatalogAPIURL == "" {
		return Storefront{}, fmt.Errorf("CATALOG_API_URL is required")
	}

	var err error
	if cfg.CatalogTimeout, err = getDuration("CATALOG_TIMEOUT", defaultCatalogTimeout); err != nil {
		return Storefront{}, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", defaultSessionTTL); err != nil {
		return Storefront{}, err
	}
	if cfg.SearchRate, err = getFloat("SEARCH_RATE", defaultSearchRate); err != nil {
		return Storefront{}, err
	}
	if cfg.SearchBurst, err = getInt("SEARCH_BURST", defaultSearchBurst); err != nil {
		return Storefront{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration", key)
	}
	return d, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive number", key)
	}
	return v, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return v, nil
}
