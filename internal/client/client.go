// Package client is a thin HTTP client for the agent service's
// agent-management API. One deployment is a single atomic request; the
// client performs no retry and no partial-failure recovery.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agentdeploy-dev/agentdeploy/pkg/models"
)

const defaultTimeout = 30 * time.Second

// Client talks to one project endpoint using an ambient bearer credential.
type Client struct {
	BaseURL    string
	apiVersion string
	token      string
	httpClient *http.Client
}

// New constructs a client against the given project endpoint.
func New(baseURL, token, apiVersion string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		apiVersion: apiVersion,
		token:      token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is a non-2xx response from the service, surfaced verbatim.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status: %s", e.Status)
	}
	return fmt.Sprintf("unexpected status: %s, %s", e.Status, e.Body)
}

// CreateOrUpdateAgent upserts the agent resource keyed by name. The body
// is the resolved agent document.
func (c *Client) CreateOrUpdateAgent(ctx context.Context, name string, body any) (*models.AgentResource, error) {
	var resource models.AgentResource
	path := "/agents/" + url.PathEscape(name)
	if err := c.doJSONRequest(ctx, http.MethodPut, path, body, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetAgent fetches the agent resource keyed by name.
func (c *Client) GetAgent(ctx context.Context, name string) (*models.AgentResource, error) {
	var resource models.AgentResource
	path := "/agents/" + url.PathEscape(name)
	if err := c.doJSONRequest(ctx, http.MethodGet, path, nil, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	fullURL := c.BaseURL + path + "?api-version=" + url.QueryEscape(c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) doJSONRequest(ctx context.Context, method, path string, in, out any) error {
	req, err := c.newRequest(ctx, method, path)
	if err != nil {
		return err
	}
	if in != nil {
		inBytes, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %T: %w", in, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Body = io.NopCloser(bytes.NewReader(inBytes))
		req.ContentLength = int64(len(inBytes))
	}
	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	if out != nil {
		req.Header.Set("Accept", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// read up to 4KB of body for the error message
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}
	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
