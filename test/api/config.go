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

package api

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

var (
	ErrMissingConfiguration = errors.New("missing required configuration")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

type TestConfig struct {
	BaseURL            string        `env:"API_BASE_URL" envDefault:"https://qa-internship.avito.com"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	UseFakeService     bool          `env:"USE_FAKE_SERVICE" envDefault:"false"`
	InvalidAdCasesFile string        `env:"INVALID_AD_CASES_FILE"`
	SellerIDMin        int           `env:"SELLER_ID_MIN" envDefault:"111111"`
	SellerIDMax        int           `env:"SELLER_ID_MAX" envDefault:"999999"`
	LogRequests        bool          `env:"LOG_REQUESTS" envDefault:"false"`
	LogResponses       bool          `env:"LOG_RESPONSES" envDefault:"false"`
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoadTestConfig is LoadTestConfig for test tree construction, where
// there is no way to recover from bad configuration.
func MustLoadTestConfig() *TestConfig {
	config, err := LoadTestConfig()
	if err != nil {
		panic(err)
	}

	return config
}

// envFiles are tried in order relative to the package under test, suites
// first, then test/api, then the repository root.
//
//nolint:gochecknoglobals
var envFiles = []string{
	"../../../test/.env",
	"../../test/.env",
	"test/.env",
}

// loadEnvFile loads the first .env file found.  Variables already set in the
// environment win over the file, and a missing file is fine in CI.
func loadEnvFile() {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
		}

		return
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	if !config.UseFakeService && config.BaseURL == "" {
		return fmt.Errorf("%w: API_BASE_URL. Please set it in the environment or a .env file, or set USE_FAKE_SERVICE=true", ErrMissingConfiguration)
	}

	var problems []string

	if config.SellerIDMin <= 0 {
		problems = append(problems, "SELLER_ID_MIN must be positive")
	}

	if config.SellerIDMin >= config.SellerIDMax {
		problems = append(problems, "SELLER_ID_MIN must be less than SELLER_ID_MAX")
	}

	if config.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(problems, ", "))
	}

	return nil
}
