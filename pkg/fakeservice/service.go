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

// Package fakeservice is an in-memory stand in for the item service.
// It answers with the same status codes and messages as the real service,
// known defects included, so the suites and tools can run without a
// network.
package fakeservice

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/qa-internship/item-api/pkg/models"
)

const (
	messageMalformedJSON     = "передан некорректный JSON"
	messageInvalidSellerID   = "передан некорректный идентификатор продавца"
	messageInvalidStatistics = "передан некорректный идентификатор объявления"
)

// Service is an http.Handler serving the item API.  It is safe for
// concurrent use.
type Service struct {
	lock   sync.Mutex
	items  []models.Ad
	byID   map[string]int
	router chi.Router
}

// New returns an empty service.
func New() *Service {
	s := &Service{
		byID: map[string]int{},
	}

	r := chi.NewRouter()
	r.Post("/api/1/item", s.createItem)
	r.Get("/api/1/item/{id}", s.getItem)
	r.Get("/api/1/statistic/{id}", s.getStatistic)
	r.Get("/api/1/{sellerID}/item", s.getSellerItems)

	s.router = r

	return s
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Len returns the number of stored ads.
func (s *Service) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.items)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.NewEnvelope(status, message))
}

func requiredField(name string) string {
	return fmt.Sprintf("поле %s обязательно", name)
}

// validate applies the service's creation rules.  Zero values count as
// missing, which is why a zero price is rejected.  Negative prices pass,
// matching the live service.
func validate(ad *models.Ad) string {
	stats := ad.Stats()

	switch {
	case ad.SellerID == 0:
		return requiredField("sellerID")
	case ad.Name == "":
		return requiredField("name")
	case ad.Price == 0:
		return requiredField("price")
	case stats.Likes == 0:
		return requiredField("likes")
	case stats.ViewCount == 0:
		return requiredField("viewCount")
	case stats.Contacts == 0:
		return requiredField("contacts")
	}

	return ""
}

func (s *Service) createItem(w http.ResponseWriter, r *http.Request) {
	var ad models.Ad

	if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
		writeError(w, http.StatusBadRequest, messageMalformedJSON)
		return
	}

	if message := validate(&ad); message != "" {
		writeError(w, http.StatusBadRequest, message)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	ad.ID = uuid.NewString()
	ad.CreatedAt = time.Now().Round(0).String()

	s.byID[ad.ID] = len(s.items)
	s.items = append(s.items, ad)

	writeJSON(w, http.StatusOK, models.CreatedStatus(ad.ID))
}

// lookup returns the ad with the given ID, callers must hold the lock.
func (s *Service) lookup(id string) (models.Ad, bool) {
	index, ok := s.byID[id]
	if !ok {
		return models.Ad{}, false
	}

	return s.items[index], true
}

func (s *Service) getItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "ID айтема не UUID: "+id)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	ad, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("item %s not found", id))
		return
	}

	writeJSON(w, http.StatusOK, []models.Ad{ad})
}

func (s *Service) getStatistic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, messageInvalidStatistics)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	ad, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("statistic %s not found", id))
		return
	}

	writeJSON(w, http.StatusOK, []models.Statistics{ad.Stats()})
}

func (s *Service) getSellerItems(w http.ResponseWriter, r *http.Request) {
	sellerID, err := strconv.Atoi(chi.URLParam(r, "sellerID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, messageInvalidSellerID)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	ads := []models.Ad{}

	for _, ad := range s.items {
		if ad.SellerID == sellerID {
			ads = append(ads, ad)
		}
	}

	writeJSON(w, http.StatusOK, ads)
}
