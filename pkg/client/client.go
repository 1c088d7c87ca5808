// Package client provides a typed consumer for the advocates API: an
// HTTP client with classified errors, a response cache with freshness
// and eviction windows, and a debounced search controller that mirrors
// the directory UI's state transitions.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultAPIPrefix = "/api"

// Filter mirrors the list endpoint's query contract. Zero values are
// treated as absent and excluded from the query string.
type Filter struct {
	Search               string
	City                 string
	Degree               string
	Specialty            string
	MinYearsOfExperience int
	Limit                int
	Offset               int
}

func (f Filter) query() url.Values {
	values := url.Values{}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.City != "" {
		values.Set("city", f.City)
	}
	if f.Degree != "" {
		values.Set("degree", f.Degree)
	}
	if f.Specialty != "" {
		values.Set("specialty", f.Specialty)
	}
	if f.MinYearsOfExperience > 0 {
		values.Set("minYearsOfExperience", strconv.Itoa(f.MinYearsOfExperience))
	}
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		values.Set("offset", strconv.Itoa(f.Offset))
	}
	return values
}

// key canonicalizes the filter for cache lookups. Distinct filters
// yield distinct keys.
func (f Filter) key() string {
	return f.query().Encode()
}

// Advocate is the wire shape of a directory record.
type Advocate struct {
	ID                int64     `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	City              string    `json:"city"`
	Degree            string    `json:"degree"`
	Specialties       []string  `json:"specialties"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	PhoneNumber       int64     `json:"phoneNumber"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Pagination is the list endpoint's window metadata.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// ListResult bundles one page of advocates with its pagination metadata.
type ListResult struct {
	Advocates  []Advocate
	Pagination Pagination
}

// SeedResult reports the outcome of a seed call.
type SeedResult struct {
	Message   string     `json:"message"`
	Count     int        `json:"count"`
	Advocates []Advocate `json:"advocates"`
}

// APIError carries a non-2xx response's classified payload.
type APIError struct {
	Status    int
	ErrorText string
	Message   string
	Details   []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	text := e.ErrorText
	if text == "" {
		text = http.StatusText(e.Status)
	}
	if e.Message != "" {
		return fmt.Sprintf("advocates api: %d %s: %s", e.Status, text, e.Message)
	}
	if len(e.Details) > 0 {
		return fmt.Sprintf("advocates api: %d %s: %s", e.Status, text, strings.Join(e.Details, "; "))
	}
	return fmt.Sprintf("advocates api: %d %s", e.Status, text)
}

// Client talks to the advocates API.
type Client struct {
	baseURL string
	prefix  string
	httpc   *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithAPIPrefix overrides the API route prefix.
func WithAPIPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = "/" + strings.Trim(prefix, "/")
	}
}

// New constructs a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  defaultAPIPrefix,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listEnvelope struct {
	Data       []Advocate  `json:"data"`
	Pagination *Pagination `json:"pagination"`
}

type detailEnvelope struct {
	Data *Advocate `json:"data"`
}

type errorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// List fetches one page of advocates matching the filter.
func (c *Client) List(ctx context.Context, filter Filter) (*ListResult, error) {
	var envelope listEnvelope
	if err := c.do(ctx, http.MethodGet, "/advocates", filter.query(), &envelope); err != nil {
		return nil, err
	}
	result := &ListResult{Advocates: envelope.Data}
	if result.Advocates == nil {
		result.Advocates = []Advocate{}
	}
	if envelope.Pagination != nil {
		result.Pagination = *envelope.Pagination
	}
	return result, nil
}

// Get fetches a single advocate by id.
func (c *Client) Get(ctx context.Context, id int64) (*Advocate, error) {
	var envelope detailEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/advocates/%d", id), nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, &APIError{Status: http.StatusInternalServerError, ErrorText: "empty response"}
	}
	return envelope.Data, nil
}

// Seed loads the fixed dataset. A repeat call surfaces the server's 409.
func (c *Client) Seed(ctx context.Context) (*SeedResult, error) {
	var result SeedResult
	if err := c.do(ctx, http.MethodPost, "/seed", nil, &result); err != nil {
		return nil, err
	}
	if result.Advocates == nil {
		result.Advocates = []Advocate{}
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	target := c.baseURL + c.prefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode, ErrorText: http.StatusText(resp.StatusCode)}
		var body errorBody
		if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
			apiErr.ErrorText = body.Error
			apiErr.Message = body.Message
			apiErr.Details = body.Details
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
