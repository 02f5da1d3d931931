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

package client

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	traceIDSize = 16
	spanIDSize  = 8
)

// newTraceParent returns a sampled W3C traceparent with fresh trace and
// span IDs, one per request so a failing call can be found in service logs.
func newTraceParent() (string, error) {
	ids := make([]byte, traceIDSize+spanIDSize)
	if _, err := rand.Read(ids); err != nil {
		return "", fmt.Errorf("generating trace IDs: %w", err)
	}

	return fmt.Sprintf("00-%s-%s-01", hex.EncodeToString(ids[:traceIDSize]), hex.EncodeToString(ids[traceIDSize:])), nil
}

// traceIDOf returns the trace ID field of a traceparent, or the whole value
// when it is not in the version-trace-span-flags form.
func traceIDOf(traceParent string) string {
	if _, rest, ok := strings.Cut(traceParent, "-"); ok {
		if id, _, ok := strings.Cut(rest, "-"); ok {
			return id
		}
	}

	return traceParent
}
