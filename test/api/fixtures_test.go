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

//nolint:revive // dot imports are standard for Ginkgo/Gomega test code
package api_test

import (
	"context"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustedanalytics/platform-tests/pkg/config"
	"github.com/trustedanalytics/platform-tests/pkg/constants"
	"github.com/trustedanalytics/platform-tests/pkg/environment"
	"github.com/trustedanalytics/platform-tests/pkg/objects"
	"github.com/trustedanalytics/platform-tests/pkg/platform/fake"
	"github.com/trustedanalytics/platform-tests/test/api"
)

var _ = Describe("Fixtures", Ordered, func() {
	var (
		ctx       context.Context
		fakeAPI   *fake.Platform
		env       *environment.Environment
		org       *objects.Organization
		planGUIDs []string
	)

	BeforeAll(func() {
		ctx = context.Background()
		fakeAPI = fake.New()
		planGUIDs = fakeAPI.AddService("postgresql", "free")

		server := httptest.NewServer(fakeAPI.Handler())
		DeferCleanup(server.Close)

		cfg := &config.TestConfig{
			Domain:     "example.com",
			ConsoleURL: server.URL,
			APIURL:     server.URL,
			UserDomain: "example.com",
		}

		env = environment.NewWithHTTPClient(cfg, server.Client(), api.NewLogger(cfg))
	})

	It("should create resources that are visible everywhere", func() {
		org = api.CreateOrganizationWithCleanup(ctx, env, "space")
		api.VerifyOrganizationPresence(ctx, env, org)

		user := api.AddUserWithCleanup(ctx, env, org.GUID, objects.RoleAuditors)
		Expect(user.Roles).To(ConsistOf(objects.RoleAuditors))

		service, plan := api.FirstPlan(ctx, env, org.Spaces[0].GUID)
		Expect(service.Label).To(Equal("postgresql"))
		Expect(plan.GUID).To(Equal(planGUIDs[0]))

		instance := api.CreateServiceInstanceWithCleanup(ctx, env, api.NewServiceInstance(org).WithPlan(service.Label, plan.Name).Build())
		api.CreateServiceKeyWithCleanup(ctx, env, instance.GUID)

		Expect(fakeAPI.InstanceNames(org.Spaces[0].GUID)).To(ConsistOf(instance.Name))
	})

	It("should have cleaned up after the previous spec", func() {
		Expect(fakeAPI.OrganizationNames()).To(BeEmpty())
		Expect(fakeAPI.InstanceNames(org.Spaces[0].GUID)).To(BeEmpty())
		Expect(fakeAPI.Requests("DELETE /rest/service_keys/{guid}")).To(Equal(1))
		Expect(fakeAPI.Requests("DELETE /rest/orgs/{guid}/users/{user}")).To(Equal(1))
		Expect(fakeAPI.Requests("DELETE /v2/organizations/{guid}")).To(Equal(1))
	})

	It("should skip when the marketplace is empty", func() {
		space := api.CreateSpaceWithCleanup(ctx, env, fakeAPI.AddOrganization(api.GenerateTestID()))
		Expect(space.Name).To(HavePrefix(constants.TestNamePrefix))

		empty := fake.New()
		server := httptest.NewServer(empty.Handler())
		DeferCleanup(server.Close)

		cfg := &config.TestConfig{ConsoleURL: server.URL, APIURL: server.URL}
		bare := environment.NewWithHTTPClient(cfg, server.Client(), api.NewLogger(cfg))

		api.FirstPlan(ctx, bare, space.GUID)

		Fail("FirstPlan should have skipped the spec")
	})
})

var _ = Describe("Builders", func() {
	It("should build options for the first space", func() {
		org := &objects.Organization{GUID: "org", Spaces: []objects.Space{{GUID: "space"}}}

		options := api.NewServiceInstance(org).WithPlan("kafka", "shared").Build()
		Expect(options.OrgGUID).To(Equal("org"))
		Expect(options.SpaceGUID).To(Equal("space"))
		Expect(objects.IsTestName(options.Name)).To(BeTrue())

		options = api.NewServiceInstance(org).WithPlan("kafka", "shared").WithPlanGUID("plan").InSpace("other").WithName("x").Build()
		Expect(options.Label).To(BeEmpty())
		Expect(options.PlanName).To(BeEmpty())
		Expect(options.PlanGUID).To(Equal("plan"))
		Expect(options.SpaceGUID).To(Equal("other"))
		Expect(options.Name).To(Equal("x"))
	})

	It("should label by priority and component", func() {
		Expect(api.SpecLabels(constants.PriorityHigh, constants.ComponentConsole, constants.ComponentCloudController)).To(Equal(Labels{
			"priority:high", "component:console", "component:cloud-controller",
		}))
	})
})
