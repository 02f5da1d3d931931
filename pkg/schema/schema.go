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

// Package schema checks item service responses against its OpenAPI
// description.
package schema

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"

	"github.com/qa-internship/item-api/pkg/client"
)

const (
	OperationCreateItem     = "createItem"
	OperationGetItem        = "getItem"
	OperationGetSellerItems = "getSellerItems"
	OperationGetStatistic   = "getStatistic"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrNonConformant    = errors.New("response does not conform to the OpenAPI document")
)

//go:embed openapi.yaml
var document []byte

// Validator validates responses by operation ID.  Routes are looked up by
// operation rather than by URL, the seller and item paths overlap.
type Validator struct {
	spec   *openapi3.T
	routes map[string]*routers.Route
}

// New loads and validates the embedded document.
func New(ctx context.Context) (*Validator, error) {
	spec, err := openapi3.NewLoader().LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading OpenAPI document: %w", err)
	}

	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating OpenAPI document: %w", err)
	}

	routes := map[string]*routers.Route{}

	for path, pathItem := range spec.Paths.Map() {
		for method, operation := range pathItem.Operations() {
			routes[operation.OperationID] = &routers.Route{
				Spec:      spec,
				Path:      path,
				PathItem:  pathItem,
				Method:    method,
				Operation: operation,
			}
		}
	}

	return &Validator{
		spec:   spec,
		routes: routes,
	}, nil
}

// Spec returns the parsed document.
func (v *Validator) Spec() *openapi3.T {
	return v.spec
}

// ValidateResponse checks the status code is documented for the operation
// and the body matches its schema.
func (v *Validator) ValidateResponse(ctx context.Context, operationID string, resp *client.Response) error {
	route, ok := v.routes[operationID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, operationID)
	}

	req, err := http.NewRequestWithContext(ctx, resp.Method(), resp.URL(), nil)
	if err != nil {
		return fmt.Errorf("rebuilding request: %w", err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: req,
			Route:   route,
		},
		Status: resp.StatusCode(),
		Header: resp.Header(),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(resp.Bytes())

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrNonConformant, resp.Method(), resp.URL(), err)
	}

	return nil
}
