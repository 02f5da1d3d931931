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

	"github.com/qa-internship/item-api/test/api"
)

// Scenarios here pin the service's current, incorrect, behaviour.  When one
// fails the defect has been fixed and the assertion must be inverted.
var _ = Describe("Known Defects", Label("known-defect"), func() {
	Context("When creating an ad with a negative price", func() {
		It("is accepted although prices must be positive (TC-1.7)", func() {
			ad := api.NewAdPayload(config).
				WithName("Товар с отрицательной ценой").
				WithPrice(-143).
				WithStatistics(2, 3, 1).
				Build()

			resp, err := apiClient.CreateAd(ctx, ad)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode()).To(Equal(http.StatusOK),
				"the service now rejects negative prices (status %d, body %s): the defect is fixed, "+
					"update this scenario to expect 400", resp.StatusCode(), resp.Text())
		})
	})
})
