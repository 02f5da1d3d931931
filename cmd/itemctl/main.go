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

// itemctl issues single item service calls and replays the invalid payload
// table against a deployment.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/qa-internship/item-api/pkg/client"
	"github.com/qa-internship/item-api/pkg/fixtures"
	"github.com/qa-internship/item-api/pkg/models"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"k8s.io/utils/ptr"
)

var (
	ErrUsage = errors.New("usage error")

	ErrMismatch = errors.New("fixture mismatch")
)

// command runs a single subcommand with its own arguments.
type command func(ctx context.Context, cli *client.Client, args []string) error

//nolint:gochecknoglobals
var commands = map[string]command{
	"create":   create,
	"get":      get,
	"seller":   seller,
	"stats":    stats,
	"fixtures": replay,
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <create|get|seller|stats|fixtures> [command flags]\n", os.Args[0])
	pflag.PrintDefaults()
}

func main() {
	var options options

	options.AddFlags(pflag.CommandLine)

	pflag.CommandLine.SetInterspersed(false)
	pflag.Usage = usage
	pflag.Parse()

	options.SetupLogging()

	if pflag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	name := pflag.Arg(0)

	if _, ok := commands[name]; !ok {
		usage()
		os.Exit(2)
	}

	ctx := cr.SetupSignalHandler()

	os.Exit(execute(ctx, log.Log.WithName(name), options.Client(), name, pflag.Args()[1:]))
}

// execute runs the named command and returns the process exit code.  Errors
// are reported through the logger only.
func execute(ctx context.Context, logger logr.Logger, cli *client.Client, name string, args []string) int {
	run, ok := commands[name]
	if !ok {
		logger.Error(ErrUsage, "unknown command", "command", name)

		return 2
	}

	if err := run(logr.NewContext(ctx, logger), cli, args); err != nil {
		logger.Error(err, "command failed")

		if errors.Is(err, ErrUsage) {
			return 2
		}

		return 1
	}

	return 0
}

// printResponse writes the status line followed by the raw body.
func printResponse(resp *client.Response) {
	fmt.Printf("%d %s\n", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	fmt.Println(resp.Text())
}

func newFlagSet(name string) *pflag.FlagSet {
	return pflag.NewFlagSet(name, pflag.ContinueOnError)
}

func requireString(f *pflag.FlagSet, name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s requires --%s", ErrUsage, f.Name(), name)
	}

	return nil
}

func create(ctx context.Context, cli *client.Client, args []string) error {
	var (
		sellerID  int
		name      string
		price     int
		likes     int
		contacts  int
		viewCount int
	)

	f := newFlagSet("create")
	f.IntVar(&sellerID, "seller-id", 0, "Seller owning the ad.")
	f.StringVar(&name, "name", "", "Ad name.")
	f.IntVar(&price, "price", 0, "Ad price.")
	f.IntVar(&likes, "likes", 0, "Initial like count.")
	f.IntVar(&contacts, "contacts", 0, "Initial contact count.")
	f.IntVar(&viewCount, "view-count", 0, "Initial view count.")

	if err := f.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	ad := models.Ad{
		Name:     name,
		Price:    price,
		SellerID: sellerID,
		Statistics: ptr.To(models.Statistics{
			Contacts:  contacts,
			Likes:     likes,
			ViewCount: viewCount,
		}),
	}

	resp, err := cli.CreateAd(ctx, ad)
	if err != nil {
		return err
	}

	printResponse(resp)

	return nil
}

func get(ctx context.Context, cli *client.Client, args []string) error {
	var id string

	f := newFlagSet("get")
	f.StringVar(&id, "id", "", "Ad ID.")

	if err := f.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if err := requireString(f, "id", id); err != nil {
		return err
	}

	resp, err := cli.GetAdByID(ctx, id)
	if err != nil {
		return err
	}

	printResponse(resp)

	return nil
}

func seller(ctx context.Context, cli *client.Client, args []string) error {
	var sellerID string

	f := newFlagSet("seller")
	f.StringVar(&sellerID, "seller-id", "", "Seller ID.")

	if err := f.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if err := requireString(f, "seller-id", sellerID); err != nil {
		return err
	}

	resp, err := cli.GetAdsBySeller(ctx, sellerID)
	if err != nil {
		return err
	}

	printResponse(resp)

	return nil
}

func stats(ctx context.Context, cli *client.Client, args []string) error {
	var id string

	f := newFlagSet("stats")
	f.StringVar(&id, "id", "", "Ad ID.")

	if err := f.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if err := requireString(f, "id", id); err != nil {
		return err
	}

	resp, err := cli.GetStatsByID(ctx, id)
	if err != nil {
		return err
	}

	printResponse(resp)

	return nil
}

// replay posts every invalid payload and checks the service rejects it
// with the expected message.
func replay(ctx context.Context, cli *client.Client, args []string) error {
	var path string

	f := newFlagSet("fixtures")
	f.StringVar(&path, "file", "", "Invalid payload table, the embedded table when empty.")

	if err := f.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	cases, err := fixtures.Load(path)
	if err != nil {
		return err
	}

	logger := logr.FromContextOrDiscard(ctx)

	var mismatches int

	for i := range cases {
		c := cases[i]

		resp, err := cli.CreateAd(ctx, c.InvalidBody())
		if err != nil {
			return err
		}

		message, _ := resp.String("result.message")

		if resp.StatusCode() != http.StatusBadRequest || message != c.ExpectedMessage() {
			mismatches++

			logger.Info("mismatch", "case", c.Description(), "status", resp.StatusCode(), "expected", c.ExpectedMessage(), "actual", message)
			fmt.Printf("FAIL %s: %d %q\n", c.Description(), resp.StatusCode(), message)

			continue
		}

		fmt.Printf("ok   %s\n", c.Description())
	}

	fmt.Printf("%d/%d cases matched\n", len(cases)-mismatches, len(cases))

	if mismatches > 0 {
		return fmt.Errorf("%w: %d cases", ErrMismatch, mismatches)
	}

	return nil
}
