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
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/qa-internship/item-api/pkg/schema"
	"github.com/qa-internship/item-api/test/api"
)

var _ = Describe("Seller Ads", func() {
	Context("When listing a seller's ads", func() {
		Describe("Given the seller has ads", func() {
			var sellerID int

			BeforeEach(func() {
				sellerID = api.GenerateSellerID(config)

				api.CreateAd(apiClient, ctx, api.NewAdPayload(config).
					WithSellerID(sellerID).
					WithName("Первый товар").
					WithPrice(100).
					WithStatistics(1, 1, 1).
					Build())

				api.CreateAd(apiClient, ctx, api.NewAdPayload(config).
					WithSellerID(sellerID).
					WithName("Второй товар").
					WithPrice(130).
					WithStatistics(1, 1, 1).
					Build())

				GinkgoWriter.Printf("Using seller %d for listing tests\n", sellerID)
			})

			It("should return every ad created for the seller", func() {
				resp, err := apiClient.GetAdsBySeller(ctx, strconv.Itoa(sellerID))
				Expect(err).NotTo(HaveOccurred())
				api.ExpectConformant(validator, ctx, schema.OperationGetSellerItems, resp)

				ads := api.DecodeAds(resp)
				Expect(len(ads)).To(BeNumerically(">=", 2))

				api.VerifyAdNamesPresent(ads, "Первый товар", "Второй товар")

				for _, ad := range ads {
					Expect(ad.SellerID).To(Equal(sellerID), "listing should only contain the seller's ads")
				}
			})
		})

		Describe("Given the seller has no ads", func() {
			It("should return an empty list", func() {
				sellerIDWithNoAds := api.GenerateSellerID(config)

				resp, err := apiClient.GetAdsBySeller(ctx, strconv.Itoa(sellerIDWithNoAds))
				Expect(err).NotTo(HaveOccurred())
				api.ExpectConformant(validator, ctx, schema.OperationGetSellerItems, resp)

				Expect(api.DecodeAds(resp)).To(BeEmpty())
			})
		})

		Describe("Given a malformed seller ID", func() {
			It("should return 400 when the seller ID is not a number", func() {
				resp, err := apiClient.GetAdsBySeller(ctx, "not-a-number")
				Expect(err).NotTo(HaveOccurred())

				api.ExpectErrorMessage(resp, http.StatusBadRequest, "передан некорректный идентификатор продавца")
				api.ExpectConformant(validator, ctx, schema.OperationGetSellerItems, resp)
			})
		})
	})
})
