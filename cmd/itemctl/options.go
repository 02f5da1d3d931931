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

package main

import (
	"flag"
	"time"

	"github.com/spf13/pflag"

	"github.com/qa-internship/item-api/pkg/client"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

const (
	defaultBaseURL = "https://qa-internship.avito.com"
	defaultTimeout = 30 * time.Second
)

// options are the global flags shared by every command.
type options struct {
	baseURL      string
	timeout      time.Duration
	logRequests  bool
	logResponses bool
	zapOptions   zap.Options
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", defaultBaseURL, "Item service base URL.")
	f.DurationVar(&o.timeout, "timeout", defaultTimeout, "Per request timeout.")
	f.BoolVar(&o.logRequests, "log-requests", false, "Log outgoing requests.")
	f.BoolVar(&o.logResponses, "log-responses", false, "Log responses and their bodies.")

	goflags := flag.NewFlagSet("zap", flag.ContinueOnError)
	o.zapOptions.BindFlags(goflags)

	f.AddGoFlagSet(goflags)
}

func (o *options) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&o.zapOptions)))
}

// Client returns an API client configured from the flags.
func (o *options) Client() *client.Client {
	return client.New(o.baseURL,
		client.WithTimeout(o.timeout),
		client.WithLogger(log.Log.WithName("client")),
		client.WithRequestLogging(o.logRequests),
		client.WithResponseLogging(o.logResponses),
	)
}
