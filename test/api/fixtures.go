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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustedanalytics/platform-tests/pkg/environment"
	"github.com/trustedanalytics/platform-tests/pkg/objects"
)

// CreateOrganizationWithCleanup creates a test organization with the named
// spaces and schedules its deletion, with everything in it, through Cloud
// Foundry.
func CreateOrganizationWithCleanup(ctx context.Context, env *environment.Environment, spaceNames ...string) *objects.Organization {
	org, err := objects.CreateOrganization(ctx, env.Console, "", spaceNames...)

	// A failure creating a space still leaves the organization behind.
	if org != nil {
		DeferCleanup(func(ctx SpecContext) {
			GinkgoWriter.Printf("Cleaning up organization: %s\n", org.Name)

			if err := org.CFDelete(ctx, env.CF); err != nil {
				GinkgoWriter.Printf("Warning: Failed to delete organization %s: %v\n", org.Name, err)
			}
		})
	}

	Expect(err).NotTo(HaveOccurred(), "Should create organization with spaces %v", spaceNames)

	GinkgoWriter.Printf("Created organization %s with ID: %s\n", org.Name, org.GUID)

	return org
}

// CreateSpaceWithCleanup creates a test space in an organization.
func CreateSpaceWithCleanup(ctx context.Context, env *environment.Environment, orgGUID string) *objects.Space {
	space, err := objects.CreateSpace(ctx, env.Console, orgGUID, "")
	Expect(err).NotTo(HaveOccurred(), "Should create space in organization %s", orgGUID)

	DeferCleanup(func(ctx SpecContext) {
		if err := space.Delete(ctx, env.Console); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete space %s: %v\n", space.Name, err)
		}
	})

	return space
}

// AddUserWithCleanup adds a new test user to an organization.
func AddUserWithCleanup(ctx context.Context, env *environment.Environment, orgGUID string, roles ...string) *objects.User {
	user, err := objects.AddUserToOrganization(ctx, env.Console, orgGUID, objects.TestUsername(env.Config.UserDomain), roles)
	Expect(err).NotTo(HaveOccurred(), "Should add user with roles %v", roles)

	DeferCleanup(func(ctx SpecContext) {
		if err := user.Delete(ctx, env.Console); err != nil {
			GinkgoWriter.Printf("Warning: Failed to remove user %s: %v\n", user.Username, err)
		}
	})

	return user
}

// CreateServiceInstanceWithCleanup creates an instance and schedules its
// deletion.
func CreateServiceInstanceWithCleanup(ctx context.Context, env *environment.Environment, options objects.ServiceInstanceOptions) *objects.ServiceInstance {
	instance, err := objects.CreateServiceInstance(ctx, env.Console, options)
	Expect(err).NotTo(HaveOccurred(), "Should create service instance %s", options.Name)

	GinkgoWriter.Printf("Created service instance %s with ID: %s\n", instance.Name, instance.GUID)

	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up service instance: %s\n", instance.Name)

		if err := instance.Delete(ctx, env.Console); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete service instance %s: %v\n", instance.Name, err)
		}
	})

	return instance
}

// CreateServiceKeyWithCleanup creates a key for an instance.
func CreateServiceKeyWithCleanup(ctx context.Context, env *environment.Environment, instanceGUID string) *objects.ServiceKey {
	key, err := objects.CreateServiceKey(ctx, env.Console, instanceGUID, "")
	Expect(err).NotTo(HaveOccurred(), "Should create service key for instance %s", instanceGUID)

	DeferCleanup(func(ctx SpecContext) {
		if err := key.Delete(ctx, env.Console); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete service key %s: %v\n", key.Name, err)
		}
	})

	return key
}

// FirstPlan returns a service and one of its plans from the marketplace of
// a space, skipping the spec when the marketplace is empty.
func FirstPlan(ctx context.Context, env *environment.Environment, spaceGUID string) (objects.ServiceType, objects.ServicePlan) {
	marketplace, err := objects.Marketplace(ctx, env.Console, spaceGUID)
	Expect(err).NotTo(HaveOccurred(), "Should list marketplace of space %s", spaceGUID)

	for _, service := range marketplace {
		if len(service.Plans) > 0 {
			return service, service.Plans[0]
		}
	}

	Skip("No service with a plan in the marketplace")

	return objects.ServiceType{}, objects.ServicePlan{}
}

// VerifyOrganizationPresence checks an organization is listed by both the
// console and Cloud Foundry.
func VerifyOrganizationPresence(ctx context.Context, env *environment.Environment, org *objects.Organization) {
	orgs, err := objects.Organizations(ctx, env.Console)
	Expect(err).NotTo(HaveOccurred())
	Expect(orgs).To(ContainElement(Satisfy(org.Equal)), "Expected organization %s in the console list", org.Name)

	cfOrgs, err := objects.CFOrganizations(ctx, env.CF)
	Expect(err).NotTo(HaveOccurred())
	Expect(cfOrgs).To(ContainElement(Satisfy(org.Equal)), "Expected organization %s in the Cloud Foundry list", org.Name)
}
