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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustedanalytics/platform-tests/pkg/constants"
	"github.com/trustedanalytics/platform-tests/pkg/httpclient"
	"github.com/trustedanalytics/platform-tests/pkg/objects"
	"github.com/trustedanalytics/platform-tests/pkg/platform"
	"github.com/trustedanalytics/platform-tests/test/api"
)

var _ = Describe("Marketplace", api.SpecLabels(constants.PriorityHigh, constants.ComponentServiceCatalog), func() {
	var (
		org   *objects.Organization
		space objects.Space
	)

	BeforeEach(func() {
		org = api.CreateOrganizationWithCleanup(ctx, env, api.GenerateTestID())
		space = org.Spaces[0]
	})

	It("should list the same services as Cloud Foundry", Label(constants.ComponentCloudController.Label()), func() {
		console, err := objects.Marketplace(ctx, env.Console, space.GUID)
		Expect(err).NotTo(HaveOccurred())

		cfServices, err := objects.CFMarketplace(ctx, env.CF, space.GUID)
		Expect(err).NotTo(HaveOccurred())

		Expect(console).To(HaveLen(len(cfServices)), "Console and Cloud Foundry marketplaces differ")

		for _, service := range cfServices {
			Expect(console).To(ContainElement(Satisfy(service.Equal)), "Service %s missing from the console marketplace", service.Label)
		}
	})

	Describe("Given a service plan", func() {
		var (
			service objects.ServiceType
			plan    objects.ServicePlan
		)

		BeforeEach(func() {
			service, plan = api.FirstPlan(ctx, env, space.GUID)
			GinkgoWriter.Printf("Using plan %s of service %s\n", plan.Name, service.Label)
		})

		It("should create and delete an instance", func() {
			options := api.NewServiceInstance(org).WithPlan(service.Label, plan.Name).Build()

			instance, err := objects.CreateServiceInstance(ctx, env.Console, options)
			Expect(err).NotTo(HaveOccurred(), "Should create instance of %s %s", service.Label, plan.Name)

			instances, err := objects.ServiceInstances(ctx, env.Console, space.GUID, service.Label)
			Expect(err).NotTo(HaveOccurred())
			Expect(instances).To(ContainElement(Satisfy(instance.Equal)))

			Expect(instance.Delete(ctx, env.Console)).To(Succeed())

			Eventually(func() ([]objects.ServiceInstance, error) {
				return objects.ServiceInstances(ctx, env.Console, space.GUID, service.Label)
			}).WithTimeout(env.Config.TestTimeout).WithPolling(pollInterval).ShouldNot(ContainElement(Satisfy(instance.Equal)))
		})

		It("should be visible through Cloud Foundry", Label(constants.ComponentCloudController.Label()), func() {
			instance := api.CreateServiceInstanceWithCleanup(ctx, env, api.NewServiceInstance(org).WithPlanGUID(plan.GUID).Build())

			instances, err := objects.CFServiceInstances(ctx, env.CF, org.GUID)
			Expect(err).NotTo(HaveOccurred())
			Expect(instances).To(ContainElement(HaveField("GUID", instance.GUID)))
		})

		It("should reject a duplicate name", Label(constants.PriorityMedium.Label()), func() {
			instance := api.CreateServiceInstanceWithCleanup(ctx, env, api.NewServiceInstance(org).WithPlanGUID(plan.GUID).Build())

			_, err := objects.CreateServiceInstance(ctx, env.Console, api.NewServiceInstance(org).WithName(instance.Name).WithPlanGUID(plan.GUID).Build())
			Expect(httpclient.StatusCode(err)).To(Equal(http.StatusConflict), "Expected HTTP 409 for duplicate instance: %v", err)
			Expect(err.Error()).To(ContainSubstring("service instance name " + instance.Name + " already taken"))
		})

		It("should reject an empty name", Label(constants.PriorityLow.Label()), func() {
			_, err := env.Console.CreateServiceInstance(ctx, &platform.CreateServiceInstanceRequest{
				ServicePlanGUID:  plan.GUID,
				OrganizationGUID: org.GUID,
				SpaceGUID:        space.GUID,
			})
			Expect(httpclient.StatusCode(err)).To(Equal(http.StatusBadRequest), "Expected HTTP 400 for empty instance name: %v", err)
		})
	})

	It("should reject an unknown plan without creating anything", Label(constants.PriorityLow.Label()), func() {
		_, err := objects.CreateServiceInstance(ctx, env.Console, api.NewServiceInstance(org).WithPlan("no-such-service-"+api.GenerateTestID(), "free").Build())
		Expect(err).To(HaveOccurred())

		instances, err := objects.ServiceInstances(ctx, env.Console, space.GUID, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(instances).To(BeEmpty())
	})
})
