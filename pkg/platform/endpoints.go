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

package platform

import (
	"fmt"
	"net/url"
)

// Endpoints contains all console API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Organization endpoints.
func (e *Endpoints) Organizations() string {
	return "/rest/orgs"
}

func (e *Endpoints) Organization(orgGUID string) string {
	return fmt.Sprintf("/rest/orgs/%s", url.PathEscape(orgGUID))
}

func (e *Endpoints) OrganizationName(orgGUID string) string {
	return fmt.Sprintf("/rest/orgs/%s/name", url.PathEscape(orgGUID))
}

func (e *Endpoints) OrganizationSpaces(orgGUID string) string {
	return fmt.Sprintf("/rest/orgs/%s/spaces", url.PathEscape(orgGUID))
}

func (e *Endpoints) OrganizationUsers(orgGUID string) string {
	return fmt.Sprintf("/rest/orgs/%s/users", url.PathEscape(orgGUID))
}

func (e *Endpoints) OrganizationUser(orgGUID, userGUID string) string {
	return fmt.Sprintf("/rest/orgs/%s/users/%s", url.PathEscape(orgGUID), url.PathEscape(userGUID))
}

// Space endpoints.
func (e *Endpoints) Spaces() string {
	return "/rest/spaces"
}

func (e *Endpoints) Space(spaceGUID string) string {
	return fmt.Sprintf("/rest/spaces/%s", url.PathEscape(spaceGUID))
}

// Catalog endpoints.
func (e *Endpoints) Services() string {
	return "/rest/services"
}

func (e *Endpoints) ServicePlans(label string) string {
	return fmt.Sprintf("/rest/services/%s/service_plans", url.PathEscape(label))
}

func (e *Endpoints) ServiceInstances() string {
	return "/rest/service_instances"
}

func (e *Endpoints) ServiceInstance(instanceGUID string) string {
	return fmt.Sprintf("/rest/service_instances/%s", url.PathEscape(instanceGUID))
}

func (e *Endpoints) ServiceInstancesSummary() string {
	return "/rest/service_instances/summary"
}

func (e *Endpoints) ServiceKeys() string {
	return "/rest/service_keys"
}

func (e *Endpoints) ServiceKey(keyGUID string) string {
	return fmt.Sprintf("/rest/service_keys/%s", url.PathEscape(keyGUID))
}

// Application endpoints.
func (e *Endpoints) Apps() string {
	return "/rest/apps"
}

func (e *Endpoints) App(appGUID string) string {
	return fmt.Sprintf("/rest/apps/%s", url.PathEscape(appGUID))
}

// Latest events service.
func (e *Endpoints) LatestEvents() string {
	return "/rest/les/events"
}
