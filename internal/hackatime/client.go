package hackatime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hridaya423/shiba-sub001/internal/config"
)

// Project is one entry of the per-user stats endpoint.
type Project struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
}

// APIError is a non-2xx response from Hackatime.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hackatime: status %d: %s", e.StatusCode, e.Body)
}

// Client reads per-user project stats from Hackatime.
type Client struct {
	baseURL    string
	apiKey     string
	startDate  string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.HackatimeTimeoutSecs
	if timeout <= 0 {
		timeout = 15
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.HackatimeAPIURL, "/"),
		apiKey:     cfg.HackatimeAPIKey,
		startDate:  cfg.HackatimeStartDate,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Projects returns the user's projects with time logged since the
// configured start date.
func (c *Client) Projects(ctx context.Context, slackID string) ([]Project, error) {
	q := url.Values{}
	q.Set("features", "projects")
	if c.startDate != "" {
		q.Set("start_date", c.startDate)
	}
	endpoint := fmt.Sprintf("%s/users/%s/stats?%s", c.baseURL, url.PathEscape(slackID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hackatime request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[HACKATIME] stats request failed: slack=%s status=%d", slackID, resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	var parsed struct {
		Data struct {
			Projects []Project `json:"projects"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Data.Projects == nil {
		return []Project{}, nil
	}
	return parsed.Data.Projects, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
