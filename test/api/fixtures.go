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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/qa-internship/item-api/pkg/client"
	"github.com/qa-internship/item-api/pkg/models"
	"github.com/qa-internship/item-api/pkg/schema"

	"k8s.io/utils/ptr"
)

// AdPayloadBuilder builds ad creation payloads for testing.
type AdPayloadBuilder struct {
	ad models.Ad
}

// NewAdPayload creates a valid ad for a fresh seller.
func NewAdPayload(config *TestConfig) *AdPayloadBuilder {
	return &AdPayloadBuilder{
		ad: models.Ad{
			Name:     GenerateAdName("testautomation"),
			Price:    25000,
			SellerID: GenerateSellerID(config),
			Statistics: ptr.To(models.Statistics{
				Contacts:  10,
				Likes:     5,
				ViewCount: 20,
			}),
		},
	}
}

// WithName sets the ad name.
func (b *AdPayloadBuilder) WithName(name string) *AdPayloadBuilder {
	b.ad.Name = name
	return b
}

// WithPrice sets the price, zero and negative values included.
func (b *AdPayloadBuilder) WithPrice(price int) *AdPayloadBuilder {
	b.ad.Price = price
	return b
}

// WithSellerID shares a seller between ads.
func (b *AdPayloadBuilder) WithSellerID(sellerID int) *AdPayloadBuilder {
	b.ad.SellerID = sellerID
	return b
}

// WithStatistics sets the engagement counters.
func (b *AdPayloadBuilder) WithStatistics(likes, contacts, viewCount int) *AdPayloadBuilder {
	b.ad.Statistics = ptr.To(models.Statistics{
		Contacts:  contacts,
		Likes:     likes,
		ViewCount: viewCount,
	})

	return b
}

// Build returns the completed payload.
func (b *AdPayloadBuilder) Build() models.Ad {
	ad := b.ad

	if ad.Statistics != nil {
		ad.Statistics = ptr.To(*ad.Statistics)
	}

	return ad
}

// CreateAd creates an ad, expects success and returns the ID parsed from the status message.
func CreateAd(client *client.Client, ctx context.Context, ad models.Ad) string {
	resp, err := client.CreateAd(ctx, ad)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode()).To(Equal(http.StatusOK), "creating ad failed: %s", resp.Text())

	status, err := resp.String("status")
	Expect(err).NotTo(HaveOccurred())

	id, err := models.ParseCreatedID(status)
	Expect(err).NotTo(HaveOccurred(), "status should report the saved ad ID")

	GinkgoWriter.Printf("Created ad with ID: %s (seller %d)\n", id, ad.SellerID)

	return id
}

// GetAd fetches an ad, expecting exactly one record.
func GetAd(client *client.Client, ctx context.Context, id string) models.Ad {
	resp, err := client.GetAdByID(ctx, id)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode()).To(Equal(http.StatusOK), "getting ad %s failed: %s", id, resp.Text())

	var ads []models.Ad
	Expect(resp.Decode(&ads)).To(Succeed())
	Expect(ads).To(HaveLen(1), "Expected exactly one ad for ID %s", id)

	return ads[0]
}

// DecodeAds decodes a successful list response.
func DecodeAds(resp *client.Response) []models.Ad {
	Expect(resp.StatusCode()).To(Equal(http.StatusOK), "listing ads failed: %s", resp.Text())

	var ads []models.Ad
	Expect(resp.Decode(&ads)).To(Succeed())

	return ads
}

// DecodeStatistics decodes a successful statistics response.
func DecodeStatistics(resp *client.Response) []models.Statistics {
	Expect(resp.StatusCode()).To(Equal(http.StatusOK), "getting statistics failed: %s", resp.Text())

	var stats []models.Statistics
	Expect(resp.Decode(&stats)).To(Succeed())

	return stats
}

// ExpectErrorMessage verifies the status code and the envelope's result.message.
func ExpectErrorMessage(resp *client.Response, statusCode int, message string) {
	Expect(resp.StatusCode()).To(Equal(statusCode), "unexpected status, body: %s (trace ID: %s)", resp.Text(), resp.TraceID())

	actual, err := resp.String("result.message")
	Expect(err).NotTo(HaveOccurred(), "body should be an error envelope: %s", resp.Text())
	Expect(actual).To(Equal(message))
}

// ExpectConformant verifies a response against the service's OpenAPI document.
func ExpectConformant(validator *schema.Validator, ctx context.Context, operationID string, resp *client.Response) {
	Expect(validator.ValidateResponse(ctx, operationID, resp)).To(Succeed())
}

// VerifyAdMatches verifies a retrieved ad equals what was submitted plus
// the server assigned ID and creation time.
func VerifyAdMatches(actual models.Ad, expected models.Ad, id string) {
	Expect(actual.ID).To(Equal(id))
	Expect(actual.CreatedAt).NotTo(BeEmpty(), "createdAt should be assigned by the service")

	diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(models.Ad{}, "ID", "CreatedAt"))
	Expect(diff).To(BeEmpty(), "retrieved ad differs from the submitted one (-want +got):\n%s", diff)
}

// VerifyAdNamesPresent verifies that ads with the given names are in the list.
func VerifyAdNamesPresent(ads []models.Ad, expectedNames ...string) {
	names := make([]string, len(ads))

	for i := range ads {
		names[i] = ads[i].Name
	}

	missing := set.New[string](expectedNames...).Difference(set.New[string](names...))
	Expect(slices.Sorted(missing.All())).To(BeEmpty(), "Expected ads to be present in the list, got %v", names)
}
