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

// Package models contains the payload shapes exchanged with the item service.
package models

// Statistics are engagement counters owned by the item service.
type Statistics struct {
	Contacts  int `json:"contacts"`
	Likes     int `json:"likes"`
	ViewCount int `json:"viewCount"`
}

// Ad is a classified listing.  ID and CreatedAt are assigned by the service
// and are omitted from creation requests.
type Ad struct {
	CreatedAt string `json:"createdAt,omitempty"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	// Price is always sent, a zero price is a valid request to make.
	Price      int         `json:"price"`
	SellerID   int         `json:"sellerId"`
	Statistics *Statistics `json:"statistics,omitempty"`
}

// Stats returns the ad's statistics or the zero value when none were set.
func (a *Ad) Stats() Statistics {
	if a.Statistics == nil {
		return Statistics{}
	}

	return *a.Statistics
}
