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
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"

	"github.com/qa-internship/item-api/pkg/client"
	"github.com/qa-internship/item-api/pkg/fakeservice"
)

// NewAPIClientWithConfig returns a client for the configured service that
// logs to the Ginkgo writer.
func NewAPIClientWithConfig(config *TestConfig) *client.Client {
	return client.New(config.BaseURL,
		client.WithTimeout(config.RequestTimeout),
		client.WithLogger(ginkgo.GinkgoLogr.WithName("item-api")),
		client.WithRequestLogging(config.LogRequests),
		client.WithResponseLogging(config.LogResponses),
	)
}

// StartFakeService serves an in-memory item service when the configuration
// asks for one and points the configuration at it.  The server is stopped
// when the calling node's cleanup runs.
func StartFakeService(config *TestConfig) {
	if !config.UseFakeService {
		return
	}

	server := httptest.NewServer(fakeservice.New())

	ginkgo.DeferCleanup(server.Close)

	config.BaseURL = server.URL

	ginkgo.GinkgoWriter.Printf("Using fake item service at %s\n", server.URL)
}
