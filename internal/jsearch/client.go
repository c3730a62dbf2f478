// Package jsearch is a minimal client for the JSearch API on RapidAPI.
package jsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://jsearch.p.rapidapi.com"
	rapidAPIHost   = "jsearch.p.rapidapi.com"

	// numPages asks JSearch to aggregate this many of its own result pages
	// into one response. Kept at 3 to balance coverage against API quota.
	numPages = 3
)

// ErrRateLimited is returned when JSearch answers 429. Callers treat it as a
// transient condition rather than a failure.
var ErrRateLimited = errors.New("jsearch: rate limited")

// JobItem mirrors a single entry of the JSearch `data` array. Salaries come
// back as JSON numbers that may carry decimals, hence float pointers.
type JobItem struct {
	Title           string   `json:"job_title"`
	EmployerName    string   `json:"employer_name"`
	City            string   `json:"job_city"`
	Location        string   `json:"job_location"`
	MinSalary       *float64 `json:"job_min_salary"`
	MaxSalary       *float64 `json:"job_max_salary"`
	SalaryCurrency  string   `json:"job_salary_currency"`
	PostedAt        string   `json:"job_posted_at"`
	OfferExpiration string   `json:"job_offer_expiration_datetime_utc"`
	ApplyLink       string   `json:"job_apply_link"`
	GoogleLink      string   `json:"job_google_link"`
}

// searchResponse mirrors the top-level JSearch JSON response.
type searchResponse struct {
	Data []JobItem `json:"data"`
}

// Client calls the JSearch search endpoint with a shared HTTP client.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient constructs a client. An empty baseURL selects the public
// RapidAPI endpoint; tests point it at a local server.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Search runs one JSearch query and returns the raw data array.
func (c *Client) Search(ctx context.Context, query string, page int) ([]JobItem, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", strconv.Itoa(numPages))

	reqURL := c.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch search: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("jsearch search: unexpected status %d: %s", resp.StatusCode, body)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("jsearch search: decode response: %w", err)
	}
	return sr.Data, nil
}
