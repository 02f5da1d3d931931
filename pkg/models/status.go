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

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CreatedStatusPrefix precedes the new ad's ID in a successful create response.
const CreatedStatusPrefix = "Сохранили объявление - "

var (
	ErrUnexpectedStatusMessage = errors.New("status message does not report a saved ad")
	ErrMalformedAdID           = errors.New("ad ID is not a UUID")
)

// CreateStatus is the body returned by a successful create.
type CreateStatus struct {
	Status string `json:"status"`
}

// ErrorResult is the inner part of an error envelope.
type ErrorResult struct {
	Message  string         `json:"message"`
	Messages map[string]any `json:"messages"`
}

// Envelope is the error wrapper returned by the item service.
type Envelope struct {
	Result ErrorResult `json:"result"`
	Status string      `json:"status,omitempty"`
}

// NewEnvelope builds an error envelope for the given HTTP status code.
func NewEnvelope(code int, message string) Envelope {
	return Envelope{
		Result: ErrorResult{
			Message:  message,
			Messages: map[string]any{},
		},
		Status: fmt.Sprintf("%d", code),
	}
}

// CreatedStatus formats the status message the service returns for a new ad.
func CreatedStatus(id string) CreateStatus {
	return CreateStatus{
		Status: CreatedStatusPrefix + id,
	}
}

// ParseCreatedID extracts the ad ID from a create status message.
func ParseCreatedID(status string) (string, error) {
	id, ok := strings.CutPrefix(status, CreatedStatusPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnexpectedStatusMessage, status)
	}

	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedAdID, id)
	}

	return id, nil
}

// ID returns the ad ID reported by the status message.
func (s CreateStatus) ID() (string, error) {
	return ParseCreatedID(s.Status)
}
