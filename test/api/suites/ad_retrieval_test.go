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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/qa-internship/item-api/pkg/schema"
	"github.com/qa-internship/item-api/test/api"
)

var _ = Describe("Ad Retrieval", func() {
	Context("When retrieving an ad by ID", func() {
		Describe("Given an ID that was never created", func() {
			It("should return 404 naming the requested ID", func() {
				nonExistentID := uuid.NewString()

				resp, err := apiClient.GetAdByID(ctx, nonExistentID)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(resp, http.StatusNotFound, "item "+nonExistentID+" not found")
				api.ExpectConformant(validator, ctx, schema.OperationGetItem, resp)
			})
		})

		Describe("Given a malformed ID", func() {
			It("should return 400 when the ID is not a UUID", func() {
				invalidID := "not-a-uuid"

				resp, err := apiClient.GetAdByID(ctx, invalidID)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(resp, http.StatusBadRequest, "ID айтема не UUID: "+invalidID)
				api.ExpectConformant(validator, ctx, schema.OperationGetItem, resp)
			})
		})
	})
})
