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
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/httpclient"
)

// Client talks to the console REST API.
type Client struct {
	client    *httpclient.Client
	endpoints *Endpoints
	log       logrus.FieldLogger
}

func New(client *httpclient.Client, log logrus.FieldLogger) *Client {
	return &Client{
		client:    client,
		endpoints: NewEndpoints(),
		log:       log.WithField("component", "console"),
	}
}

// HTTP exposes the underlying transport.
func (c *Client) HTTP() *httpclient.Client {
	return c.client
}

func (c *Client) Organizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization

	if err := c.client.Get(ctx, c.endpoints.Organizations(), nil, &orgs); err != nil {
		return nil, errors.Wrap(err, "listing organizations")
	}

	return orgs, nil
}

// CreateOrganization returns the GUID of the new organization. The console
// answers with a bare JSON string.
func (c *Client) CreateOrganization(ctx context.Context, name string) (string, error) {
	var raw json.RawMessage

	if err := c.client.Do(ctx, http.MethodPost, c.endpoints.Organizations(), nil, map[string]string{"name": name}, &raw); err != nil {
		return "", errors.Wrapf(err, "creating organization %s", name)
	}

	var guid string

	if err := json.Unmarshal(raw, &guid); err != nil {
		return "", errors.Wrapf(err, "decoding guid of organization %s", name)
	}

	return guid, nil
}

func (c *Client) RenameOrganization(ctx context.Context, orgGUID, name string) error {
	if err := c.client.Do(ctx, http.MethodPut, c.endpoints.OrganizationName(orgGUID), nil, map[string]string{"name": name}, nil); err != nil {
		return errors.Wrapf(err, "renaming organization %s", orgGUID)
	}

	return nil
}

func (c *Client) DeleteOrganization(ctx context.Context, orgGUID string) error {
	if err := c.client.Do(ctx, http.MethodDelete, c.endpoints.Organization(orgGUID), nil, nil, nil); err != nil {
		return errors.Wrapf(err, "deleting organization %s", orgGUID)
	}

	return nil
}

func (c *Client) Spaces(ctx context.Context) ([]Space, error) {
	var spaces []Space

	if err := c.client.Get(ctx, c.endpoints.Spaces(), nil, &spaces); err != nil {
		return nil, errors.Wrap(err, "listing spaces")
	}

	return spaces, nil
}

func (c *Client) OrganizationSpaces(ctx context.Context, orgGUID string) ([]Space, error) {
	var spaces []Space

	if err := c.client.Get(ctx, c.endpoints.OrganizationSpaces(orgGUID), nil, &spaces); err != nil {
		return nil, errors.Wrapf(err, "listing spaces of organization %s", orgGUID)
	}

	return spaces, nil
}

// CreateSpace creates a space. The console does not answer with the new GUID,
// callers look the space up by name.
func (c *Client) CreateSpace(ctx context.Context, orgGUID, name string) error {
	body := map[string]string{
		"name":     name,
		"org_guid": orgGUID,
	}

	if err := c.client.Do(ctx, http.MethodPost, c.endpoints.Spaces(), nil, body, nil); err != nil {
		return errors.Wrapf(err, "creating space %s", name)
	}

	return nil
}

func (c *Client) DeleteSpace(ctx context.Context, spaceGUID string) error {
	if err := c.client.Do(ctx, http.MethodDelete, c.endpoints.Space(spaceGUID), nil, nil, nil); err != nil {
		return errors.Wrapf(err, "deleting space %s", spaceGUID)
	}

	return nil
}

func (c *Client) OrganizationUsers(ctx context.Context, orgGUID string) ([]User, error) {
	var users []User

	if err := c.client.Get(ctx, c.endpoints.OrganizationUsers(orgGUID), nil, &users); err != nil {
		return nil, errors.Wrapf(err, "listing users of organization %s", orgGUID)
	}

	return users, nil
}

func (c *Client) AddOrganizationUser(ctx context.Context, orgGUID, username string, roles []string) error {
	body := map[string]any{
		"username": username,
		"roles":    roles,
	}

	if err := c.client.Do(ctx, http.MethodPost, c.endpoints.OrganizationUsers(orgGUID), nil, body, nil); err != nil {
		return errors.Wrapf(err, "adding user %s to organization %s", username, orgGUID)
	}

	return nil
}

// UpdateOrganizationUser replaces the roles of a user.
func (c *Client) UpdateOrganizationUser(ctx context.Context, orgGUID, userGUID string, roles []string) error {
	body := map[string]any{"roles": roles}

	if err := c.client.Do(ctx, http.MethodPut, c.endpoints.OrganizationUser(orgGUID, userGUID), nil, body, nil); err != nil {
		return errors.Wrapf(err, "updating roles of user %s in organization %s", userGUID, orgGUID)
	}

	return nil
}

func (c *Client) DeleteOrganizationUser(ctx context.Context, orgGUID, userGUID string) error {
	if err := c.client.Do(ctx, http.MethodDelete, c.endpoints.OrganizationUser(orgGUID, userGUID), nil, nil, nil); err != nil {
		return errors.Wrapf(err, "removing user %s from organization %s", userGUID, orgGUID)
	}

	return nil
}

// Marketplace lists the services visible in a space.
func (c *Client) Marketplace(ctx context.Context, spaceGUID string) ([]Service, error) {
	var services []Service

	query := url.Values{"space": {spaceGUID}}

	if err := c.client.Get(ctx, c.endpoints.Services(), query, &services); err != nil {
		return nil, errors.Wrapf(err, "listing marketplace of space %s", spaceGUID)
	}

	return services, nil
}

func (c *Client) ServicePlans(ctx context.Context, label string) ([]ServicePlan, error) {
	var plans []ServicePlan

	if err := c.client.Get(ctx, c.endpoints.ServicePlans(label), nil, &plans); err != nil {
		return nil, errors.Wrapf(err, "listing plans of service %s", label)
	}

	return plans, nil
}

// ServiceInstances lists instances in a space, optionally narrowed to one
// service label.
func (c *Client) ServiceInstances(ctx context.Context, spaceGUID, label string) ([]ServiceInstance, error) {
	var instances []ServiceInstance

	query := url.Values{"space": {spaceGUID}}
	if label != "" {
		query.Set("service", label)
	}

	if err := c.client.Get(ctx, c.endpoints.ServiceInstances(), query, &instances); err != nil {
		return nil, errors.Wrapf(err, "listing service instances of space %s", spaceGUID)
	}

	return instances, nil
}

// CreateServiceInstanceRequest is the body of a create call.
type CreateServiceInstanceRequest struct {
	Name             string         `json:"name"`
	ServicePlanGUID  string         `json:"service_plan_guid"`
	OrganizationGUID string         `json:"organization_guid"`
	SpaceGUID        string         `json:"space_guid"`
	Parameters       map[string]any `json:"parameters,omitempty"`
}

// CreateServiceInstance creates an instance. A failure still carries the
// response, so httpclient.Classify can spot a gateway time out.
func (c *Client) CreateServiceInstance(ctx context.Context, request *CreateServiceInstanceRequest) (*CreatedServiceInstance, error) {
	var created CreatedServiceInstance

	if err := c.client.Do(ctx, http.MethodPost, c.endpoints.ServiceInstances(), nil, request, &created); err != nil {
		return nil, errors.Wrapf(err, "creating service instance %s", request.Name)
	}

	return &created, nil
}

func (c *Client) DeleteServiceInstance(ctx context.Context, instanceGUID string) error {
	if err := c.client.Do(ctx, http.MethodDelete, c.endpoints.ServiceInstance(instanceGUID), nil, nil, nil); err != nil {
		return errors.Wrapf(err, "deleting service instance %s", instanceGUID)
	}

	return nil
}

// ServiceInstancesSummary lists instances of a space grouped by service.
func (c *Client) ServiceInstancesSummary(ctx context.Context, spaceGUID string, withKeys bool) ([]ServiceSummary, error) {
	var summary []ServiceSummary

	query := url.Values{
		"space":        {spaceGUID},
		"service_keys": {strconv.FormatBool(withKeys)},
	}

	if err := c.client.Get(ctx, c.endpoints.ServiceInstancesSummary(), query, &summary); err != nil {
		return nil, errors.Wrapf(err, "summarizing service instances of space %s", spaceGUID)
	}

	return summary, nil
}

func (c *Client) CreateServiceKey(ctx context.Context, instanceGUID, name string) (*ServiceKey, error) {
	body := map[string]string{
		"name":                  name,
		"service_instance_guid": instanceGUID,
	}

	var key ServiceKey

	if err := c.client.Do(ctx, http.MethodPost, c.endpoints.ServiceKeys(), nil, body, &key); err != nil {
		return nil, errors.Wrapf(err, "creating service key %s", name)
	}

	return &key, nil
}

func (c *Client) DeleteServiceKey(ctx context.Context, keyGUID string) error {
	if err := c.client.Do(ctx, http.MethodDelete, c.endpoints.ServiceKey(keyGUID), nil, nil, nil); err != nil {
		return errors.Wrapf(err, "deleting service key %s", keyGUID)
	}

	return nil
}

// Apps lists applications in a space, optionally those bound to a service.
func (c *Client) Apps(ctx context.Context, spaceGUID, serviceLabel string) ([]App, error) {
	var apps []App

	query := url.Values{"space": {spaceGUID}}
	if serviceLabel != "" {
		query.Set("service_label", serviceLabel)
	}

	if err := c.client.Get(ctx, c.endpoints.Apps(), query, &apps); err != nil {
		return nil, errors.Wrapf(err, "listing applications of space %s", spaceGUID)
	}

	return apps, nil
}

// DeleteApp removes the application and, with cascade, its routes and bindings.
func (c *Client) DeleteApp(ctx context.Context, appGUID string, cascade bool) error {
	query := url.Values{"cascade": {strconv.FormatBool(cascade)}}

	if err := c.client.Do(ctx, http.MethodDelete, c.endpoints.App(appGUID), query, nil, nil); err != nil {
		return errors.Wrapf(err, "deleting application %s", appGUID)
	}

	return nil
}

// LatestEvents returns the most recent platform events, newest first.
func (c *Client) LatestEvents(ctx context.Context, orgGUID string) (*Events, error) {
	var events Events

	var query url.Values
	if orgGUID != "" {
		query = url.Values{"org": {orgGUID}}
	}

	if err := c.client.Get(ctx, c.endpoints.LatestEvents(), query, &events); err != nil {
		return nil, errors.Wrap(err, "fetching latest events")
	}

	return &events, nil
}
