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

// Package fixtures loads tables of invalid ad payloads and the error
// message the item service is expected to answer each one with.
package fixtures

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNoCases     = errors.New("fixture table contains no cases")
	ErrInvalidCase = errors.New("invalid fixture case")
)

//go:embed data/invalid-ad-data.json
var defaultInvalidAdCases []byte

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// InvalidAdCase is one row of the invalid payload table.  It cannot be
// modified once loaded.
type InvalidAdCase struct {
	description     string
	invalidBody     json.RawMessage
	expectedMessage string
}

// record is the on-disk form of a case.
type record struct {
	Description     string          `json:"description" validate:"required"`
	InvalidBody     json.RawMessage `json:"invalidBody" validate:"required"`
	ExpectedMessage string          `json:"expectedMessage" validate:"required"`
}

// NewInvalidAdCase builds a case in code.
func NewInvalidAdCase(description string, invalidBody json.RawMessage, expectedMessage string) InvalidAdCase {
	return InvalidAdCase{
		description:     description,
		invalidBody:     bytes.Clone(invalidBody),
		expectedMessage: expectedMessage,
	}
}

// Description is a human readable label for the case.
func (c InvalidAdCase) Description() string {
	return c.description
}

// InvalidBody is the payload to send, exactly as written in the table.
func (c InvalidAdCase) InvalidBody() json.RawMessage {
	return bytes.Clone(c.invalidBody)
}

// ExpectedMessage is the result.message the service must return.
func (c InvalidAdCase) ExpectedMessage() string {
	return c.expectedMessage
}

func (c InvalidAdCase) String() string {
	return c.description
}

// Decode reads a JSON array of cases.  Any defect fails the whole table.
func Decode(r io.Reader) ([]InvalidAdCase, error) {
	var records []record

	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding invalid ad cases: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrNoCases
	}

	cases := make([]InvalidAdCase, len(records))

	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("%w %d (%q): %w", ErrInvalidCase, i, records[i].Description, err)
		}

		cases[i] = NewInvalidAdCase(records[i].Description, records[i].InvalidBody, records[i].ExpectedMessage)
	}

	return cases, nil
}

// LoadFile reads cases from a file.
func LoadFile(path string) ([]InvalidAdCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening invalid ad cases: %w", err)
	}

	defer f.Close()

	return Decode(f)
}

// Default returns the table bundled with this package.
func Default() ([]InvalidAdCase, error) {
	return Decode(bytes.NewReader(defaultInvalidAdCases))
}

// Load reads cases from path, or the bundled table when path is empty.
func Load(path string) ([]InvalidAdCase, error) {
	if path == "" {
		return Default()
	}

	return LoadFile(path)
}

// MustLoad is Load that panics, for use while building test trees where
// a broken table must abort collection.
func MustLoad(path string) []InvalidAdCase {
	cases, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cases
}
