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
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Org role collections accepted by OrganizationUsers.
const (
	RoleUsers           = "users"
	RoleManagers        = "managers"
	RoleBillingManagers = "billing_managers"
	RoleAuditors        = "auditors"
)

func (c *Client) Info(ctx context.Context) (*Info, error) {
	var info Info

	if err := c.client.Get(ctx, c.endpoints.Info(), nil, &info); err != nil {
		return nil, fmt.Errorf("getting info: %w", err)
	}

	return &info, nil
}

func (c *Client) Organizations(ctx context.Context) ([]Resource[Organization], error) {
	c.log.Info("get all organizations")

	return GetAllPages[Organization](ctx, c, c.endpoints.Organizations(), nil)
}

// OrganizationByName returns nil and no error when nothing matches.
func (c *Client) OrganizationByName(ctx context.Context, name string) (*Resource[Organization], error) {
	orgs, err := GetAllPages[Organization](ctx, c, c.endpoints.Organizations(), nameQuery(name))
	if err != nil {
		return nil, err
	}

	if len(orgs) == 0 {
		return nil, nil //nolint:nilnil
	}

	return &orgs[0], nil
}

// DeleteOrganization deletes an organization and everything in it, and
// waits for the platform to finish the job.
func (c *Client) DeleteOrganization(ctx context.Context, orgGUID string) error {
	c.log.WithField("org", orgGUID).Info("delete organization")

	query := url.Values{
		"async":     {"true"},
		"recursive": {"true"},
	}

	var job Resource[Job]

	if err := c.client.Do(ctx, http.MethodDelete, c.endpoints.Organization(orgGUID), query, nil, &job); err != nil {
		return err
	}

	return c.WaitForJob(ctx, jobGUID(&job), "delete org", DefaultJobTimeout)
}

func (c *Client) OrganizationSpaces(ctx context.Context, orgGUID string) ([]Resource[Space], error) {
	return GetAllPages[Space](ctx, c, c.endpoints.OrganizationSpaces(orgGUID), nil)
}

// OrganizationUsers lists the holders of an org role, see the Role constants.
func (c *Client) OrganizationUsers(ctx context.Context, orgGUID, role string) ([]Resource[User], error) {
	return GetAllPages[User](ctx, c, c.endpoints.OrganizationUsers(orgGUID, role), nil)
}

// SpaceByName looks a space up within an organization, nil if absent.
func (c *Client) SpaceByName(ctx context.Context, orgGUID, name string) (*Resource[Space], error) {
	query := url.Values{"q": {"name:" + name, "organization_guid:" + orgGUID}}

	spaces, err := GetAllPages[Space](ctx, c, c.endpoints.Spaces(), query)
	if err != nil {
		return nil, err
	}

	if len(spaces) == 0 {
		return nil, nil //nolint:nilnil
	}

	return &spaces[0], nil
}

func (c *Client) SpaceRoutes(ctx context.Context, spaceGUID string) ([]Resource[Route], error) {
	return GetAllPages[Route](ctx, c, c.endpoints.SpaceRoutes(spaceGUID), nil)
}

func (c *Client) SpaceSummary(ctx context.Context, spaceGUID string) (*SpaceSummary, error) {
	var summary SpaceSummary

	if err := c.client.Get(ctx, c.endpoints.SpaceSummary(spaceGUID), nil, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// DeleteRoute deletes a route asynchronously and waits for the job.
func (c *Client) DeleteRoute(ctx context.Context, routeGUID string) error {
	var job Resource[Job]

	if err := c.client.Do(ctx, http.MethodDelete, c.endpoints.Route(routeGUID), url.Values{"async": {"true"}}, nil, &job); err != nil {
		return err
	}

	return c.WaitForJob(ctx, jobGUID(&job), "delete route", DefaultJobTimeout)
}

func (c *Client) SpaceServiceBrokers(ctx context.Context, spaceGUID string) ([]Resource[ServiceBroker], error) {
	return GetAllPages[ServiceBroker](ctx, c, c.endpoints.ServiceBrokers(), url.Values{"space_guid": {spaceGUID}})
}

// SpaceServices lists the services visible in a space, optionally only those
// with the given label.
func (c *Client) SpaceServices(ctx context.Context, spaceGUID, label string) ([]Resource[Service], error) {
	var query url.Values

	if label != "" {
		query = url.Values{"q": {"label:" + label}}
	}

	return GetAllPages[Service](ctx, c, c.endpoints.SpaceServices(spaceGUID), query)
}

func (c *Client) ServicePlans(ctx context.Context, serviceGUID string) ([]Resource[ServicePlan], error) {
	return GetAllPages[ServicePlan](ctx, c, c.endpoints.ServicePlans(serviceGUID), nil)
}

// ServiceInstances lists instances across the platform, or in one org when
// orgGUID is set.
func (c *Client) ServiceInstances(ctx context.Context, orgGUID string) ([]Resource[ServiceInstance], error) {
	var query url.Values

	if orgGUID != "" {
		query = url.Values{"q": {"organization_guid:" + orgGUID}}
	}

	return GetAllPages[ServiceInstance](ctx, c, c.endpoints.ServiceInstances(), query)
}

// CreateServiceInstance provisions an instance, letting the broker complete
// it asynchronously.
func (c *Client) CreateServiceInstance(ctx context.Context, name, spaceGUID, planGUID string) (*Resource[ServiceInstance], error) {
	c.log.WithField("instance", name).Info("create service instance")

	body := map[string]string{
		"name":              name,
		"space_guid":        spaceGUID,
		"service_plan_guid": planGUID,
	}

	var instance Resource[ServiceInstance]

	if err := c.client.Do(ctx, http.MethodPost, c.endpoints.ServiceInstances(), url.Values{"accepts_incomplete": {"true"}}, body, &instance); err != nil {
		return nil, err
	}

	return &instance, nil
}

func (c *Client) UserProvidedServiceInstances(ctx context.Context) ([]Resource[ServiceInstance], error) {
	return GetAllPages[ServiceInstance](ctx, c, c.endpoints.UserProvidedServiceInstances(), nil)
}

func (c *Client) CreateUserProvidedServiceInstance(ctx context.Context, name, spaceGUID string, credentials map[string]any) (*Resource[ServiceInstance], error) {
	body := map[string]any{
		"name":        name,
		"space_guid":  spaceGUID,
		"credentials": credentials,
	}

	var instance Resource[ServiceInstance]

	if err := c.client.Do(ctx, http.MethodPost, c.endpoints.UserProvidedServiceInstances(), nil, body, &instance); err != nil {
		return nil, err
	}

	return &instance, nil
}

func (c *Client) Buildpacks(ctx context.Context) ([]Resource[Buildpack], error) {
	return GetAllPages[Buildpack](ctx, c, c.endpoints.Buildpacks(), nil)
}

func (c *Client) Apps(ctx context.Context) ([]Resource[App], error) {
	return GetAllPages[App](ctx, c, c.endpoints.Apps(), nil)
}

func (c *Client) AppEnv(ctx context.Context, appGUID string) (*AppEnv, error) {
	var env AppEnv

	if err := c.client.Get(ctx, c.endpoints.AppEnv(appGUID), nil, &env); err != nil {
		return nil, err
	}

	return &env, nil
}

func (c *Client) AppSummary(ctx context.Context, appGUID string) (*AppSummary, error) {
	var summary AppSummary

	if err := c.client.Get(ctx, c.endpoints.AppSummary(appGUID), nil, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// jobGUID reads the job id out of an async delete response. Older platforms
// only fill in the metadata.
func jobGUID(job *Resource[Job]) string {
	if job.Entity.GUID != "" {
		return job.Entity.GUID
	}

	return job.Metadata.GUID
}
