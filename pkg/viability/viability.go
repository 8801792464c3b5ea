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

// Package viability checks an environment answers before any suite runs
// against it.
package viability

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
	"github.com/trustedanalytics/platform-tests/pkg/httpclient"
	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

// ErrNotViable is wrapped by every failed probe.
var ErrNotViable = errors.New("environment is not viable")

// Probe is one URL that must answer 2xx.
type Probe struct {
	Client *httpclient.Client
	Path   string
}

func (p *Probe) url() string {
	return p.Client.BaseURL() + "/" + p.Path
}

func (p *Probe) run(ctx context.Context) error {
	err := p.Client.Get(ctx, p.Path, nil, nil)
	if err == nil {
		return nil
	}

	var unexpected *httpclient.UnexpectedResponseError
	if errors.As(err, &unexpected) {
		return fmt.Errorf("%w: %s answered %d", ErrNotViable, p.url(), unexpected.Status)
	}

	return fmt.Errorf("%w: %s unreachable: %w", ErrNotViable, p.url(), err)
}

// Probes returns the console root and the Cloud Foundry info endpoint.
func Probes(console *platform.Client, client *cf.Client) []Probe {
	return []Probe{
		{Client: console.HTTP(), Path: ""},
		{Client: client.HTTP(), Path: cf.NewEndpoints().Info()},
	}
}

// Check runs every probe and reports all that failed.
func Check(ctx context.Context, log logrus.FieldLogger, probes ...Probe) error {
	var errs []error

	for i := range probes {
		if err := probes[i].run(ctx); err != nil {
			log.WithError(err).Error("viability probe failed")

			errs = append(errs, err)

			continue
		}

		log.WithField("url", probes[i].url()).Info("viability probe passed")
	}

	return errors.Join(errs...)
}
