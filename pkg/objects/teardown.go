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

package objects

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
	"github.com/trustedanalytics/platform-tests/pkg/cfv3"
	"github.com/trustedanalytics/platform-tests/pkg/constants"
)

// OrganizationSweeper finds organizations left behind by earlier runs.
type OrganizationSweeper interface {
	TestOrganizations(ctx context.Context, prefix string) ([]cfv3.Organization, error)
}

// TearDownTestOrganizations deletes every organization named with the test
// prefix. It goes on after a failed delete and returns all failures joined.
func TearDownTestOrganizations(ctx context.Context, sweeper OrganizationSweeper, client *cf.Client, log logrus.FieldLogger) error {
	orgs, err := sweeper.TestOrganizations(ctx, constants.TestNamePrefix+"-")
	if err != nil {
		return fmt.Errorf("finding test organizations: %w", err)
	}

	var errs []error

	for _, org := range orgs {
		o := Organization{GUID: org.GUID, Name: org.Name}

		if err := o.CFDelete(ctx, client); err != nil {
			log.WithField("org", org.Name).WithError(err).Warn("failed to delete test organization")

			errs = append(errs, err)

			continue
		}

		log.WithField("org", org.Name).Info("deleted test organization")
	}

	return errors.Join(errs...)
}
