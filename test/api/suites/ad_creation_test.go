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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/qa-internship/item-api/pkg/fixtures"
	"github.com/qa-internship/item-api/pkg/models"
	"github.com/qa-internship/item-api/pkg/schema"
	"github.com/qa-internship/item-api/test/api"
)

// invalidAdEntries builds one table entry per fixture case.  A missing or
// broken table panics here, aborting tree construction.
func invalidAdEntries() []any {
	cases := fixtures.MustLoad(api.MustLoadTestConfig().InvalidAdCasesFile)

	entries := make([]any, 0, len(cases))

	for _, tc := range cases {
		entries = append(entries, Entry(tc.Description(), tc))
	}

	return entries
}

var _ = Describe("Ad Creation", func() {
	Context("When creating an ad with a valid payload", func() {
		Describe("Given all fields are set", func() {
			It("should save the ad and return it by ID", func() {
				// Given: A complete ad for a fresh seller
				ad := api.NewAdPayload(config).
					WithName("Тестовый ноутбук для TC-1.1").
					WithPrice(25000).
					WithStatistics(5, 10, 20).
					Build()

				// When: I create it
				resp, err := apiClient.CreateAd(ctx, ad)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK), "body: %s", resp.Text())
				api.ExpectConformant(validator, ctx, schema.OperationCreateItem, resp)

				status, err := resp.String("status")
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(HavePrefix(models.CreatedStatusPrefix))

				id, err := models.ParseCreatedID(status)
				Expect(err).NotTo(HaveOccurred(), "status should end with a UUID")

				// Then: Reading it back returns exactly what was sent plus server fields
				getResp, err := apiClient.GetAdByID(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectConformant(validator, ctx, schema.OperationGetItem, getResp)

				ads := api.DecodeAds(getResp)
				Expect(ads).To(HaveLen(1))
				api.VerifyAdMatches(ads[0], ad, id)
			})

			It("should return identical data on repeated reads", func() {
				id := api.CreateAd(apiClient, ctx, api.NewAdPayload(config).Build())

				first := api.GetAd(apiClient, ctx, id)
				second := api.GetAd(apiClient, ctx, id)

				Expect(second).To(Equal(first), "reads should not mutate the ad")
			})
		})
	})

	Context("When creating an ad with an invalid payload", func() {
		DescribeTable("should reject the payload with a validation message",
			append([]any{
				func(tc fixtures.InvalidAdCase) {
					resp, err := apiClient.CreateAd(ctx, tc.InvalidBody())
					Expect(err).NotTo(HaveOccurred())

					api.ExpectErrorMessage(resp, http.StatusBadRequest, tc.ExpectedMessage())
					api.ExpectConformant(validator, ctx, schema.OperationCreateItem, resp)
				},
			}, invalidAdEntries()...)...,
		)

		It("should reject a zero price", func() {
			// Given: An otherwise valid ad priced at zero
			ad := api.NewAdPayload(config).
				WithName("Товар с нулевой ценой").
				WithPrice(0).
				WithStatistics(1, 1, 1).
				Build()

			// When: I create it
			resp, err := apiClient.CreateAd(ctx, ad)
			Expect(err).NotTo(HaveOccurred())

			// Then: The price is reported as missing
			api.ExpectErrorMessage(resp, http.StatusBadRequest, "поле price обязательно")
		})
	})
})
