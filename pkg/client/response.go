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

package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

var (
	ErrNotJSON      = errors.New("response body is not JSON")
	ErrPathNotFound = errors.New("JSON path not found")
	ErrNotString    = errors.New("JSON value is not a string")
	ErrNotContainer = errors.New("JSON value is not an array or object")
)

// Response is an immutable snapshot of an HTTP response.  The body has been
// fully read and the connection released by the time a caller sees it.
type Response struct {
	method      string
	url         string
	statusCode  int
	header      http.Header
	body        []byte
	traceParent string
}

// NewResponse builds a response snapshot, header and body are copied.
func NewResponse(method, url string, statusCode int, header http.Header, body []byte, traceParent string) *Response {
	return &Response{
		method:      method,
		url:         url,
		statusCode:  statusCode,
		header:      header.Clone(),
		body:        bytes.Clone(body),
		traceParent: traceParent,
	}
}

func (r *Response) Method() string {
	return r.method
}

func (r *Response) URL() string {
	return r.url
}

func (r *Response) StatusCode() int {
	return r.statusCode
}

// Header returns a copy of the response headers.
func (r *Response) Header() http.Header {
	return r.header.Clone()
}

// Bytes returns a copy of the raw body.
func (r *Response) Bytes() []byte {
	return bytes.Clone(r.body)
}

// Text returns the raw body as a string.
func (r *Response) Text() string {
	return string(r.body)
}

// TraceID is the W3C trace ID sent with the request.
func (r *Response) TraceID() string {
	return traceIDOf(r.traceParent)
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrNotJSON, err)
	}

	return nil
}

func (r *Response) document() (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(r.body))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJSON, err)
	}

	// The body must hold exactly one value, "404 page not found" would
	// otherwise read as the number 404.
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrNotJSON)
	}

	return doc, nil
}

// Get resolves a dot separated path against the JSON body.  Object keys are
// matched by name, array elements by index e.g. "result.message" or "0.id".
// An empty path returns the whole document.  Numbers are json.Number.
func (r *Response) Get(path string) (any, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return doc, nil
	}

	current := doc

	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}

			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}

			current = node[index]
		default:
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	return current, nil
}

// String resolves path and returns its value as a string.  Numbers are
// rendered as they appear in the body.
func (r *Response) String(path string) (string, error) {
	value, err := r.Get(path)
	if err != nil {
		return "", err
	}

	switch t := value.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	}

	return "", fmt.Errorf("%w: %s is %T", ErrNotString, path, value)
}

// Len returns the number of elements of the array or object at path.
func (r *Response) Len(path string) (int, error) {
	value, err := r.Get(path)
	if err != nil {
		return 0, err
	}

	switch t := value.(type) {
	case []any:
		return len(t), nil
	case map[string]any:
		return len(t), nil
	}

	return 0, fmt.Errorf("%w: %s is %T", ErrNotContainer, path, value)
}
