package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hridaya423/shiba-sub001/internal/config"
)

// DefaultPageSize is Airtable's maximum page size for list requests.
const DefaultPageSize = 100

// Store is the subset of the Airtable REST API the handlers rely on.
type Store interface {
	List(ctx context.Context, table string, opts ListOptions) ([]Record, error)
	ListPage(ctx context.Context, table string, opts ListOptions, offset string) (*Page, error)
	FindFirst(ctx context.Context, table, formula string) (*Record, error)
	Get(ctx context.Context, table, id string) (*Record, error)
	Update(ctx context.Context, table, id string, fields map[string]interface{}) (*Record, error)
}

// ListOptions narrows a list request.
type ListOptions struct {
	Filter     string
	Fields     []string
	PageSize   int
	MaxRecords int
}

// Page is one response of a list request. Offset is empty on the last page.
type Page struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// Client talks to a single Airtable base.
type Client struct {
	baseURL    string
	baseID     string
	apiKey     string
	pageSize   int
	httpClient *http.Client
}

// NewClient creates a client for the configured base.
func NewClient(cfg *config.Config) *Client {
	pageSize := cfg.AirtablePageSize
	if pageSize <= 0 || pageSize > DefaultPageSize {
		pageSize = DefaultPageSize
	}
	timeout := cfg.AirtableTimeoutSecs
	if timeout <= 0 {
		timeout = 20
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.AirtableAPIURL, "/"),
		baseID:     cfg.AirtableBaseID,
		apiKey:     cfg.AirtableAPIKey,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.baseID), url.PathEscape(table))
}

// do performs one authenticated request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body interface{}, out interface{}) error {
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error json.RawMessage `json:"error"`
		}
		if json.Unmarshal(respBody, &envelope) == nil && len(envelope.Error) > 0 {
			var detail struct {
				Type    string `json:"type"`
				Message string `json:"message"`
			}
			if json.Unmarshal(envelope.Error, &detail) == nil {
				apiErr.Type, apiErr.Message = detail.Type, detail.Message
			} else {
				// Some errors are a bare string: {"error": "NOT_FOUND"}
				json.Unmarshal(envelope.Error, &apiErr.Type)
			}
		}
		log.Printf("[AIRTABLE] %s %s failed: status=%d type=%s", method, req.URL.Path, resp.StatusCode, apiErr.Type)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListPage fetches a single page starting at offset.
func (c *Client) ListPage(ctx context.Context, table string, opts ListOptions, offset string) (*Page, error) {
	q := url.Values{}
	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > DefaultPageSize {
		pageSize = c.pageSize
	}
	q.Set("pageSize", strconv.Itoa(pageSize))
	if opts.Filter != "" {
		q.Set("filterByFormula", opts.Filter)
	}
	if opts.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}
	for _, f := range opts.Fields {
		q.Add("fields[]", f)
	}
	if offset != "" {
		q.Set("offset", offset)
	}

	var page Page
	if err := c.do(ctx, http.MethodGet, c.tableURL(table), q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// List fetches every page of a table (or filtered view of it).
func (c *Client) List(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	records, err := CollectPages(ctx, func(ctx context.Context, offset string) (*Page, error) {
		return c.ListPage(ctx, table, opts, offset)
	}, opts.MaxRecords)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return records, nil
}

// FindFirst returns the first record matching formula, or ErrNotFound.
func (c *Client) FindFirst(ctx context.Context, table, formula string) (*Record, error) {
	page, err := c.ListPage(ctx, table, ListOptions{Filter: formula, PageSize: 1, MaxRecords: 1}, "")
	if err != nil {
		return nil, err
	}
	if len(page.Records) == 0 {
		return nil, ErrNotFound
	}
	return &page.Records[0], nil
}

// Get fetches a record by id.
func (c *Client) Get(ctx context.Context, table, id string) (*Record, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var rec Record
	if err := c.do(ctx, http.MethodGet, c.tableURL(table)+"/"+url.PathEscape(id), nil, nil, &rec); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// Update applies a partial update (PATCH) to one record.
func (c *Client) Update(ctx context.Context, table, id string, fields map[string]interface{}) (*Record, error) {
	if id == "" {
		return nil, errors.New("airtable: update requires a record id")
	}
	var rec Record
	body := map[string]interface{}{"fields": fields}
	if err := c.do(ctx, http.MethodPatch, c.tableURL(table)+"/"+url.PathEscape(id), nil, body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
