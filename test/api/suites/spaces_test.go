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
	"net/http"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustedanalytics/platform-tests/pkg/constants"
	"github.com/trustedanalytics/platform-tests/pkg/httpclient"
	"github.com/trustedanalytics/platform-tests/pkg/objects"
	"github.com/trustedanalytics/platform-tests/test/api"
)

const pollInterval = 5 * time.Second

var _ = Describe("Spaces", api.SpecLabels(constants.PriorityMedium, constants.ComponentUserManagement), func() {
	var org *objects.Organization

	BeforeEach(func() {
		org = api.CreateOrganizationWithCleanup(ctx, env)
	})

	Context("When creating a space", func() {
		It("should be listed in its organization", Label(constants.PriorityHigh.Label()), func() {
			space := api.CreateSpaceWithCleanup(ctx, env, org.GUID)

			spaces, err := objects.OrganizationSpaces(ctx, env.Console, org.GUID)
			Expect(err).NotTo(HaveOccurred())
			Expect(spaces).To(ContainElement(Satisfy(space.Equal)))
		})

		It("should accept a long name", Label(constants.PriorityLow.Label()), func() {
			name := api.GenerateTestID() + strings.Repeat("x", 400)

			space, err := objects.CreateSpace(ctx, env.Console, org.GUID, name)
			Expect(err).NotTo(HaveOccurred(), "Should create space with a 400 character name")
			Expect(space.Name).To(Equal(name))
		})

		It("should reject a duplicate name", func() {
			space := api.CreateSpaceWithCleanup(ctx, env, org.GUID)

			_, err := objects.CreateSpace(ctx, env.Console, org.GUID, space.Name)
			Expect(httpclient.StatusCode(err)).To(Equal(http.StatusBadRequest), "Expected HTTP 400 for duplicate space: %v", err)
		})

		It("should reject an empty name", Label(constants.PriorityLow.Label()), func() {
			err := env.Console.CreateSpace(ctx, org.GUID, "")
			Expect(httpclient.StatusCode(err)).To(Equal(http.StatusBadRequest), "Expected HTTP 400 for empty space name: %v", err)
		})
	})

	Context("When deleting a space", func() {
		It("should disappear from the list", func() {
			space, err := objects.CreateSpace(ctx, env.Console, org.GUID, "")
			Expect(err).NotTo(HaveOccurred())

			Expect(space.Delete(ctx, env.Console)).To(Succeed())

			Eventually(func() ([]objects.Space, error) {
				return objects.Spaces(ctx, env.Console)
			}).WithTimeout(env.Config.TestTimeout).WithPolling(pollInterval).ShouldNot(ContainElement(Satisfy(space.Equal)))

			err = space.Delete(ctx, env.Console)
			Expect(httpclient.StatusCode(err)).To(Equal(http.StatusNotFound), "Expected HTTP 404 deleting a deleted space: %v", err)
		})
	})
})
