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

	"github.com/qa-internship/item-api/pkg/models"
	"github.com/qa-internship/item-api/pkg/schema"
	"github.com/qa-internship/item-api/test/api"
)

var _ = Describe("Ad Statistics", func() {
	Context("When retrieving statistics for an ad", func() {
		Describe("Given the ad exists", func() {
			It("should return the counters the ad was created with", func() {
				ad := api.NewAdPayload(config).
					WithName("Утюг для TC-4.1").
					WithPrice(10).
					WithStatistics(95, 87, 75).
					Build()

				id := api.CreateAd(apiClient, ctx, ad)

				resp, err := apiClient.GetStatsByID(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectConformant(validator, ctx, schema.OperationGetStatistic, resp)

				stats := api.DecodeStatistics(resp)
				Expect(stats).To(HaveLen(1))
				Expect(stats[0]).To(Equal(models.Statistics{
					Contacts:  87,
					Likes:     95,
					ViewCount: 75,
				}))
			})
		})

		Describe("Given an ID that was never created", func() {
			It("should return 404 naming the requested ID", func() {
				nonExistentID := uuid.NewString()

				resp, err := apiClient.GetStatsByID(ctx, nonExistentID)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(resp, http.StatusNotFound, "statistic "+nonExistentID+" not found")
				api.ExpectConformant(validator, ctx, schema.OperationGetStatistic, resp)
			})
		})

		Describe("Given a malformed ID", func() {
			It("should return 400 when the ID is not a UUID", func() {
				resp, err := apiClient.GetStatsByID(ctx, "not-a-uuid")
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(resp, http.StatusBadRequest, "передан некорректный идентификатор объявления")
				api.ExpectConformant(validator, ctx, schema.OperationGetStatistic, resp)
			})
		})
	})
})
