/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package client is a thin transport shim over the item service API.
//
// The client never interprets status codes: every call that reaches the
// server returns a *Response and a nil error, whatever the status.  Errors
// are reserved for failures to build, send or read a request, so callers
// can assert on 4xx responses directly.
package client

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

const (
	contentTypeJSON = "application/json"

	defaultTimeout = 30 * time.Second
)

// Doer sends HTTP requests, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a single item service deployment.
type Client struct {
	baseURL      string
	client       Doer
	timeout      time.Duration
	logger       logr.Logger
	logRequests  bool
	logResponses bool
	endpoints    *Endpoints
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport.  Timeouts are then the
// transport's own concern.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.client = doer
	}
}

// WithTimeout sets the timeout of the default transport, it has no effect
// with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithRequestLogging(enabled bool) Option {
	return func(c *Client) {
		c.logRequests = enabled
	}
}

func WithResponseLogging(enabled bool) Option {
	return func(c *Client) {
		c.logResponses = enabled
	}
}

// New returns a client for the service at baseURL.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		timeout:   defaultTimeout,
		logger:    logr.Discard(),
		endpoints: NewEndpoints(),
	}

	for _, o := range options {
		o(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// BaseURL returns the service root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// logError logs a transport error with trace context.
func (c *Client) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.logger.Error(err, context, "method", method, "path", path, "duration", duration, "traceID", traceIDOf(traceParent))
}

func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) (*Response, error) {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent, err := newTraceParent()
	if err != nil {
		return nil, err
	}

	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", contentTypeJSON)

	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.logRequests {
		c.logger.Info("request complete", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", traceIDOf(traceParent))
	}

	if c.logResponses && len(respBody) > 0 {
		c.logger.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	return NewResponse(method, fullURL, resp.StatusCode, resp.Header, respBody, traceParent), nil
}

// encodePayload serializes a request body.  Raw JSON is sent verbatim so
// deliberately malformed payloads reach the server untouched.
func encodePayload(payload any) ([]byte, error) {
	switch t := payload.(type) {
	case json.RawMessage:
		return t, nil
	case []byte:
		return t, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

// CreateAd posts payload to the item collection.  payload is usually a
// models.Ad but may be any value, or raw JSON, for negative testing.
func (c *Client) CreateAd(ctx context.Context, payload any) (*Response, error) {
	body, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateAd(), body)
	if err != nil {
		return nil, fmt.Errorf("creating ad: %w", err)
	}

	return resp, nil
}

// GetAdByID fetches an ad.  The ID is forwarded as is.
func (c *Client) GetAdByID(ctx context.Context, id string) (*Response, error) {
	path, err := c.endpoints.GetAd(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ad: %w", err)
	}

	return resp, nil
}

// GetAdsBySeller lists a seller's ads.  The seller ID is a string so that
// non-numeric values can be sent.
func (c *Client) GetAdsBySeller(ctx context.Context, sellerID string) (*Response, error) {
	path, err := c.endpoints.ListSellerAds(sellerID)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing seller ads: %w", err)
	}

	return resp, nil
}

// GetStatsByID fetches an ad's statistics.
func (c *Client) GetStatsByID(ctx context.Context, id string) (*Response, error) {
	path, err := c.endpoints.GetStatistic(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting statistics: %w", err)
	}

	return resp, nil
}
