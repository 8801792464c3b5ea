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

package cf

import (
	"fmt"
	"net/url"
)

// Endpoints contains the v2 API paths, relative to the /v2 root.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func (e *Endpoints) Info() string {
	return "info"
}

func (e *Endpoints) Job(jobID string) string {
	return fmt.Sprintf("jobs/%s", url.PathEscape(jobID))
}

// Organization endpoints.
func (e *Endpoints) Organizations() string {
	return "organizations"
}

func (e *Endpoints) Organization(orgGUID string) string {
	return fmt.Sprintf("organizations/%s", url.PathEscape(orgGUID))
}

func (e *Endpoints) OrganizationSpaces(orgGUID string) string {
	return fmt.Sprintf("organizations/%s/spaces", url.PathEscape(orgGUID))
}

// OrganizationUsers returns the path of an org role collection, role is one
// of users, managers, billing_managers or auditors.
func (e *Endpoints) OrganizationUsers(orgGUID, role string) string {
	return fmt.Sprintf("organizations/%s/%s", url.PathEscape(orgGUID), role)
}

// Space endpoints.
func (e *Endpoints) Spaces() string {
	return "spaces"
}

func (e *Endpoints) SpaceRoutes(spaceGUID string) string {
	return fmt.Sprintf("spaces/%s/routes", url.PathEscape(spaceGUID))
}

func (e *Endpoints) SpaceServices(spaceGUID string) string {
	return fmt.Sprintf("spaces/%s/services", url.PathEscape(spaceGUID))
}

func (e *Endpoints) SpaceSummary(spaceGUID string) string {
	return fmt.Sprintf("spaces/%s/summary", url.PathEscape(spaceGUID))
}

func (e *Endpoints) Route(routeGUID string) string {
	return fmt.Sprintf("routes/%s", url.PathEscape(routeGUID))
}

// Service endpoints.
func (e *Endpoints) ServiceBrokers() string {
	return "service_brokers"
}

func (e *Endpoints) ServicePlans(serviceGUID string) string {
	return fmt.Sprintf("services/%s/service_plans", url.PathEscape(serviceGUID))
}

func (e *Endpoints) ServiceInstances() string {
	return "service_instances"
}

func (e *Endpoints) UserProvidedServiceInstances() string {
	return "user_provided_service_instances"
}

// Application endpoints.
func (e *Endpoints) Buildpacks() string {
	return "buildpacks"
}

func (e *Endpoints) Apps() string {
	return "apps"
}

func (e *Endpoints) AppEnv(appGUID string) string {
	return fmt.Sprintf("apps/%s/env", url.PathEscape(appGUID))
}

func (e *Endpoints) AppSummary(appGUID string) string {
	return fmt.Sprintf("apps/%s/summary", url.PathEscape(appGUID))
}
