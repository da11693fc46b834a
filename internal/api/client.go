// Package api provides an HTTP client for the remote comments resource.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jdmorgan/comment-dash/internal/comment"
)

// DefaultBaseURL is the public comments resource used when no server
// is configured.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Client is an HTTP client for the comments resource. Each operation is
// a single request: no retries, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL. An empty URL selects
// DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// List fetches the full comments collection.
func (c *Client) List() ([]comment.Comment, error) {
	var comments []comment.Comment
	if err := c.get("/comments", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment by ID. The backing service may accept the
// delete without persisting it; the caller owns the local removal.
func (c *Client) Delete(id int64) error {
	return c.doDelete(fmt.Sprintf("/comments/%d", id))
}

// Create submits a new comment. The server-assigned ID is not returned;
// callers needing a display record must synthesize their own.
func (c *Client) Create(p comment.CreatePayload) error {
	return c.post("/comments", p, nil)
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(path string, body interface{}, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(path string) error {
	req, err := http.NewRequest("DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

// do executes an HTTP request and classifies failures.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return &RequestError{Status: resp.StatusCode}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &DecodeError{Err: err}
		}
	}

	return nil
}
