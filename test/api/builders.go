package api

import (
	"crypto/rand"
	"fmt"
	mathrand "math/rand/v2"
	"strings"
)

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToLower(rand.Text()[:8]))
}

// GenerateAdName returns a name unlikely to collide with other runs.
func GenerateAdName(prefix string) string {
	return generateRandomName(prefix)
}

// GenerateSellerID picks a seller from the configured range, inclusive.
// Uniqueness is best effort only.
func GenerateSellerID(config *TestConfig) int {
	return config.SellerIDMin + mathrand.IntN(config.SellerIDMax-config.SellerIDMin+1) //nolint:gosec
}
