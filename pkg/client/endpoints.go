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
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all item service endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// pathParam encodes a path segment the way generated OpenAPI clients do.
// Values are not validated, malformed IDs are the server's to reject.
func pathParam(name, value string) (string, error) {
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("encoding path parameter %s: %w", name, err)
	}

	return styled, nil
}

func (e *Endpoints) CreateAd() string {
	return "/api/1/item"
}

func (e *Endpoints) GetAd(id string) (string, error) {
	p, err := pathParam("id", id)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/api/1/item/%s", p), nil
}

func (e *Endpoints) ListSellerAds(sellerID string) (string, error) {
	p, err := pathParam("sellerID", sellerID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/api/1/%s/item", p), nil
}

func (e *Endpoints) GetStatistic(id string) (string, error) {
	p, err := pathParam("id", id)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/api/1/statistic/%s", p), nil
}
