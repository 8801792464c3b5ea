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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustedanalytics/platform-tests/pkg/constants"
	"github.com/trustedanalytics/platform-tests/pkg/objects"
	"github.com/trustedanalytics/platform-tests/test/api"
)

var _ = Describe("Latest events", api.SpecLabels(constants.PriorityLow, constants.ComponentLatestEventsService), func() {
	It("should answer a basic request", func() {
		events, err := objects.LatestEvents(ctx, env.Console, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(events.Total).To(BeNumerically(">=", len(events.Events)))
	})

	It("should answer for the reference organization", func() {
		orgGUID, err := env.Reference.OrganizationGUID(ctx)
		Expect(err).NotTo(HaveOccurred(), "Reference organization %s should exist", env.Reference.OrganizationName)

		_, err = objects.LatestEvents(ctx, env.Console, orgGUID)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Applications", api.SpecLabels(constants.PriorityLow, constants.ComponentConsole), func() {
	It("should list applications of the reference space", func() {
		spaceGUID, err := env.Reference.SpaceGUID(ctx)
		Expect(err).NotTo(HaveOccurred(), "Reference space %s should exist", env.Reference.SpaceName)

		apps, err := objects.Applications(ctx, env.Console, spaceGUID, "")
		Expect(err).NotTo(HaveOccurred())

		for _, app := range apps {
			Expect(app.SpaceGUID).To(Equal(spaceGUID))
		}
	})
})
