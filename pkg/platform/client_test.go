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
package platform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/httpclient"
	"github.com/trustedanalytics/platform-tests/pkg/platform"
	"github.com/trustedanalytics/platform-tests/pkg/platform/fake"
)

var _ = Describe("Console client", func() {
	var (
		ctx     context.Context
		fakeAPI *fake.Platform
		console *platform.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeAPI = fake.New()

		server := httptest.NewServer(fakeAPI.Handler())
		DeferCleanup(server.Close)

		log := logrus.New()
		log.SetOutput(GinkgoWriter)

		console = platform.New(httpclient.New(server.URL, server.Client(), log, httpclient.Options{}), log)
	})

	Describe("Organizations", func() {
		It("should create, rename and delete an organization", func() {
			guid, err := console.CreateOrganization(ctx, "test-org")
			Expect(err).NotTo(HaveOccurred())
			Expect(guid).NotTo(BeEmpty())

			Expect(console.RenameOrganization(ctx, guid, "test-org-renamed")).To(Succeed())

			orgs, err := console.Organizations(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(orgs).To(ContainElement(HaveField("Name", "test-org-renamed")))

			Expect(console.DeleteOrganization(ctx, guid)).To(Succeed())

			orgs, err = console.Organizations(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(orgs).To(BeEmpty())
		})

		It("should keep the status of a rejected request", func() {
			_, err := console.CreateOrganization(ctx, "dup")
			Expect(err).NotTo(HaveOccurred())

			_, err = console.CreateOrganization(ctx, "dup")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("creating organization dup"))
			Expect(httpclient.StatusCode(err)).To(Equal(http.StatusConflict))
			Expect(httpclient.Classify(err)).To(Equal(httpclient.FailureRejected))
		})
	})

	Describe("Spaces and users", func() {
		var orgGUID string

		BeforeEach(func() {
			orgGUID = fakeAPI.AddOrganization("org")
		})

		It("should list a created space under its organization", func() {
			Expect(console.CreateSpace(ctx, orgGUID, "space")).To(Succeed())

			spaces, err := console.OrganizationSpaces(ctx, orgGUID)
			Expect(err).NotTo(HaveOccurred())
			Expect(spaces).To(HaveLen(1))
			Expect(spaces[0].Entity.Name).To(Equal("space"))
			Expect(spaces[0].Entity.OrganizationGUID).To(Equal(orgGUID))

			Expect(console.DeleteSpace(ctx, spaces[0].Metadata.GUID)).To(Succeed())

			spaces, err = console.Spaces(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(spaces).To(BeEmpty())
		})

		It("should add and remove organization users", func() {
			Expect(console.AddOrganizationUser(ctx, orgGUID, "someone@example.com", []string{"managers"})).To(Succeed())

			users, err := console.OrganizationUsers(ctx, orgGUID)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Roles).To(ConsistOf("managers"))

			Expect(console.DeleteOrganizationUser(ctx, orgGUID, users[0].GUID)).To(Succeed())

			users, err = console.OrganizationUsers(ctx, orgGUID)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(BeEmpty())
		})
	})

	Describe("Service instances", func() {
		var (
			orgGUID   string
			spaceGUID string
			planGUIDs []string
		)

		BeforeEach(func() {
			orgGUID = fakeAPI.AddOrganization("org")
			spaceGUID = fakeAPI.AddSpace(orgGUID, "space")
			planGUIDs = fakeAPI.AddService("mysql", "free", "paid")
		})

		It("should list plans by service label", func() {
			plans, err := console.ServicePlans(ctx, "mysql")
			Expect(err).NotTo(HaveOccurred())
			Expect(plans).To(HaveLen(2))
			Expect(plans[1].Entity.Name).To(Equal("paid"))

			services, err := console.Marketplace(ctx, spaceGUID)
			Expect(err).NotTo(HaveOccurred())
			Expect(services).To(ContainElement(HaveField("Entity.Label", "mysql")))
		})

		It("should create an instance with a key and summarize it", func() {
			created, err := console.CreateServiceInstance(ctx, &platform.CreateServiceInstanceRequest{
				Name:             "db",
				ServicePlanGUID:  planGUIDs[0],
				OrganizationGUID: orgGUID,
				SpaceGUID:        spaceGUID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Entity.Name).To(Equal("db"))

			key, err := console.CreateServiceKey(ctx, created.Metadata.GUID, "key")
			Expect(err).NotTo(HaveOccurred())

			var credentials map[string]string
			Expect(json.Unmarshal(key.Credentials, &credentials)).To(Succeed())
			Expect(credentials).To(HaveKey("password"))

			summary, err := console.ServiceInstancesSummary(ctx, spaceGUID, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary).To(HaveLen(1))
			Expect(summary[0].Instances).To(HaveLen(1))
			Expect(summary[0].Instances[0].ServiceKeys).To(ConsistOf(HaveField("GUID", key.GUID)))

			instances, err := console.ServiceInstances(ctx, spaceGUID, "mysql")
			Expect(err).NotTo(HaveOccurred())
			Expect(instances).To(HaveLen(1))
			Expect(instances[0].ServicePlan.Name).To(Equal("free"))

			Expect(console.DeleteServiceKey(ctx, key.GUID)).To(Succeed())
			Expect(console.DeleteServiceInstance(ctx, created.Metadata.GUID)).To(Succeed())
			Expect(fakeAPI.InstanceNames(spaceGUID)).To(BeEmpty())
		})

		It("should surface a gateway time out so it can be classified", func() {
			fakeAPI.GatewayTimeouts = 1

			_, err := console.CreateServiceInstance(ctx, &platform.CreateServiceInstanceRequest{
				Name:            "slow",
				ServicePlanGUID: planGUIDs[0],
				SpaceGUID:       spaceGUID,
			})
			Expect(httpclient.Classify(err)).To(Equal(httpclient.FailureTransientGatewayTimeout))
			Expect(fakeAPI.InstanceNames(spaceGUID)).To(ConsistOf("slow"))
		})
	})

	Describe("Applications and events", func() {
		It("should filter applications by bound service", func() {
			orgGUID := fakeAPI.AddOrganization("org")
			spaceGUID := fakeAPI.AddSpace(orgGUID, "space")
			fakeAPI.AddApp(spaceGUID, "bound", "mysql")
			other := fakeAPI.AddApp(spaceGUID, "other", "")

			apps, err := console.Apps(ctx, spaceGUID, "mysql")
			Expect(err).NotTo(HaveOccurred())
			Expect(apps).To(ConsistOf(HaveField("Name", "bound")))

			Expect(console.DeleteApp(ctx, other, true)).To(Succeed())

			apps, err = console.Apps(ctx, spaceGUID, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(apps).To(HaveLen(1))
		})

		It("should return the newest event first", func() {
			fakeAPI.AddEvent(map[string]any{"message": "first"})
			fakeAPI.AddEvent(map[string]any{"message": "second"})

			events, err := console.LatestEvents(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(events.Total).To(Equal(2))
			Expect(string(events.Events[0])).To(ContainSubstring("second"))
		})
	})
})
