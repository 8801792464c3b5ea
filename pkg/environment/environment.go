/*
Copyright 2026 the Platform Tests Authors.

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

// Package environment assembles the clients for one environment under test
// from its configuration.
package environment

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
	"github.com/trustedanalytics/platform-tests/pkg/cfv3"
	"github.com/trustedanalytics/platform-tests/pkg/config"
	"github.com/trustedanalytics/platform-tests/pkg/httpclient"
	"github.com/trustedanalytics/platform-tests/pkg/objects"
	"github.com/trustedanalytics/platform-tests/pkg/platform"
	"github.com/trustedanalytics/platform-tests/pkg/reference"
	"github.com/trustedanalytics/platform-tests/pkg/results"
	"github.com/trustedanalytics/platform-tests/pkg/results/gormstore"
	"github.com/trustedanalytics/platform-tests/pkg/viability"
)

type Environment struct {
	Config    *config.TestConfig
	Console   *platform.Client
	CF        *cf.Client
	Reference *reference.Context

	log logrus.FieldLogger
}

// New logs in and returns clients for the console and Cloud Foundry.
func New(ctx context.Context, cfg *config.TestConfig, log logrus.FieldLogger) (*Environment, error) {
	client, err := httpclient.NewAuthenticatedClient(ctx, cfg.AuthOptions())
	if err != nil {
		return nil, fmt.Errorf("authenticating against %s: %w", cfg.Domain, err)
	}

	return NewWithHTTPClient(cfg, client, log), nil
}

// NewWithHTTPClient uses client as is, it must already carry credentials.
func NewWithHTTPClient(cfg *config.TestConfig, client *http.Client, log logrus.FieldLogger) *Environment {
	options := cfg.HTTPOptions()

	console := platform.New(httpclient.New(cfg.ConsoleURL, client, log, options), log)
	cfClient := cf.New(httpclient.New(strings.TrimSuffix(cfg.APIURL, "/")+"/v2", client, log, options), log)

	return &Environment{
		Config:    cfg,
		Console:   console,
		CF:        cfClient,
		Reference: reference.New(cfClient, cfg.ReferenceOrg, cfg.ReferenceSpace),
		log:       log,
	}
}

// CheckViability fails if the console or Cloud Foundry does not answer.
func (e *Environment) CheckViability(ctx context.Context) error {
	return viability.Check(ctx, e.log, viability.Probes(e.Console, e.CF)...)
}

// TearDown deletes every organization left behind by test runs.
func (e *Environment) TearDown(ctx context.Context) error {
	sweeper, err := cfv3.New(e.Config.CFV3Options(), e.log)
	if err != nil {
		return err
	}

	return objects.TearDownTestOrganizations(ctx, sweeper, e.CF, e.log)
}

// RunOptions describes a run of suite against this environment, with the
// release and components read from the components file when one is set.
func RunOptions(cfg *config.TestConfig, suite string) (results.RunOptions, error) {
	options := results.RunOptions{
		Environment:        cfg.Domain,
		EnvironmentVersion: cfg.PlatformVersion,
		Suite:              suite,
	}

	if cfg.ComponentsFile == "" {
		return options, nil
	}

	release, components, err := results.LoadComponents(cfg.ComponentsFile)
	if err != nil {
		return options, err
	}

	options.Release = release
	options.Components = components

	return options, nil
}

// OpenResults opens the result store, the caller stops it.
func OpenResults(ctx context.Context, cfg *config.TestConfig, log logrus.FieldLogger) (*gormstore.Store, error) {
	store := gormstore.New(log, cfg.ResultsConfig())

	if err := store.Start(ctx); err != nil {
		return nil, err
	}

	return store, nil
}
