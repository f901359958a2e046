package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Source yields the complete row set for one load cycle, or fails atomically.
type Source interface {
	Fetch(ctx context.Context) ([]Row, error)
}

// Client fetches report rows from the remote reporting endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint URL.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Fetch retrieves the full row set. The endpoint responds with either
// {"data": [...]} or a bare array; any other shape decodes to an empty set.
// All failure modes surface as *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{Class: FetchTransport, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Class: FetchTransport, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{Class: classifyStatus(res.StatusCode), Status: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &FetchError{Class: FetchTransport, Err: fmt.Errorf("read body: %w", err)}
	}
	rows, err := decodeRows(body)
	if err != nil {
		return nil, &FetchError{Class: FetchDecode, Err: err}
	}
	return rows, nil
}

func classifyStatus(code int) FetchClass {
	switch {
	case code >= 500:
		return FetchServerError
	case code == http.StatusNotFound:
		return FetchNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return FetchUnauthorized
	default:
		return FetchBadStatus
	}
}

// decodeRows unwraps the response envelope. A bare array and a {"data": [...]}
// object are both accepted; any other valid JSON yields an empty set.
func decodeRows(body []byte) ([]Row, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	switch trimmed[0] {
	case '[':
		var rows []Row
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	case '{':
		var env struct {
			Data []Row `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		return env.Data, nil
	default:
		// Valid JSON scalars are an unexpected but tolerated shape.
		if !json.Valid(trimmed) {
			return nil, fmt.Errorf("malformed response body")
		}
		return nil, nil
	}
}
