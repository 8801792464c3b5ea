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

// Package cfv3 reads the Cloud Foundry v3 API through go-cfclient, it is how
// leftover test organizations are found for the teardown sweep.
package cfv3

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudfoundry/go-cfclient/v3/client"
	"github.com/cloudfoundry/go-cfclient/v3/config"
	"github.com/sirupsen/logrus"
)

// Options select the API and the credentials used against it.
type Options struct {
	APIURL            string
	Token             string
	RefreshToken      string
	Username          string
	Password          string
	SkipTLSValidation bool
}

// Organization is the part of a v3 organization the harness needs.
type Organization struct {
	GUID string
	Name string
}

// Client wraps a go-cfclient client.
type Client struct {
	cf  *client.Client
	log logrus.FieldLogger
}

func configOptions(options *Options) []config.Option {
	var out []config.Option

	if options.Token != "" || options.RefreshToken != "" {
		out = append(out, config.Token(options.Token, options.RefreshToken))
	} else {
		out = append(out, config.UserPassword(options.Username, options.Password))
	}

	if options.SkipTLSValidation {
		out = append(out, config.SkipTLSValidation())
	}

	return out
}

func New(options *Options, log logrus.FieldLogger) (*Client, error) {
	cfg, err := config.New(options.APIURL, configOptions(options)...)
	if err != nil {
		return nil, fmt.Errorf("configuring cloud foundry v3 client: %w", err)
	}

	cf, err := client.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating cloud foundry v3 client: %w", err)
	}

	return &Client{
		cf:  cf,
		log: log.WithField("component", "cfv3"),
	}, nil
}

// Organizations lists every organization visible to the caller.
func (c *Client) Organizations(ctx context.Context) ([]Organization, error) {
	orgs, err := c.cf.Organizations.ListAll(ctx, client.NewOrganizationListOptions())
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	out := make([]Organization, len(orgs))

	for i, org := range orgs {
		out[i] = Organization{GUID: org.GUID, Name: org.Name}
	}

	return out, nil
}

// TestOrganizations returns the organizations whose name carries prefix.
func (c *Client) TestOrganizations(ctx context.Context, prefix string) ([]Organization, error) {
	orgs, err := c.Organizations(ctx)
	if err != nil {
		return nil, err
	}

	var out []Organization

	for _, org := range orgs {
		if strings.HasPrefix(org.Name, prefix) {
			out = append(out, org)
		}
	}

	c.log.WithField("count", len(out)).Infof("found test organizations with prefix %q", prefix)

	return out, nil
}
