// Package config loads and validates environment variables at startup.
// Fail-fast: without a JSearch API key the service cannot answer a single
// request, so a missing key stops the process before it starts listening.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort           = "8080"
	defaultBaseURL        = "https://jsearch.p.rapidapi.com"
	defaultTimeoutSeconds = 20
)

// Config holds all runtime configuration for the search service.
type Config struct {
	Port           string
	JSearchKey     string        // RapidAPI key for the JSearch API
	JSearchBaseURL string        // overridable for tests / proxies
	RequestTimeout time.Duration // per upstream request
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	key := os.Getenv("JSEARCH_KEY")
	if key == "" {
		return nil, fmt.Errorf("JSEARCH_KEY is required (RapidAPI key for jsearch)")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	baseURL := os.Getenv("JSEARCH_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := defaultTimeoutSeconds
	if s := os.Getenv("UPSTREAM_TIMEOUT_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be a positive integer, got %q", s)
		}
		timeout = v
	}

	return &Config{
		Port:           port,
		JSearchKey:     key,
		JSearchBaseURL: baseURL,
		RequestTimeout: time.Duration(timeout) * time.Second,
	}, nil
}
