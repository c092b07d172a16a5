// Package rest implements ports.PortalAPI over the portal backend's HTTP
// surface. Every request runs through the transport pipeline configured at
// construction; nothing here talks to the network directly.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/transport"
)

const (
	basePath       = "/api"
	defaultTimeout = 30 * time.Second
)

// Client is the HTTP implementation of ports.PortalAPI.
type Client struct {
	baseURL string
	send    transport.Doer
}

var _ ports.PortalAPI = (*Client)(nil)

// NewClient builds a client for the backend at baseURL (scheme + host, no
// trailing slash) with the given pipeline stages applied in order around
// the real send. A nil httpClient gets a sane default timeout.
func NewClient(baseURL string, httpClient *http.Client, stages ...transport.Middleware) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		send:    transport.Chain(httpClient.Do, stages...),
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + basePath + path
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("rest: build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// doJSON sends the request and decodes a JSON response into out (skipped
// when out is nil). Failed responses never reach this far: the pipeline's
// error stage turns them into errors.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decode %s: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("rest: encode %s: %w", path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.doJSON(req, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

// filenameFromDisposition extracts the suggested filename from a
// Content-Disposition header, or returns fallback.
func filenameFromDisposition(header, fallback string) string {
	if header == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return fallback
	}
	if name, ok := params["filename"]; ok && name != "" {
		return name
	}
	return fallback
}
