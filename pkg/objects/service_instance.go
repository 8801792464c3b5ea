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

package objects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
	"github.com/trustedanalytics/platform-tests/pkg/platform"
	"github.com/trustedanalytics/platform-tests/pkg/retry"
	"github.com/trustedanalytics/platform-tests/pkg/validation"
)

// ErrUnknownPlan is returned when a plan name does not resolve for a label.
var ErrUnknownPlan = errors.New("no such service plan")

type ServiceInstance struct {
	GUID        string
	Name        string
	SpaceGUID   string
	Label       string
	BoundApps   []platform.NamedReference
	Credentials json.RawMessage
}

// Equal compares the identifying fields, bound applications and credentials
// are ignored.
func (i ServiceInstance) Equal(other ServiceInstance) bool {
	return i.GUID == other.GUID &&
		i.Name == other.Name &&
		i.SpaceGUID == other.SpaceGUID &&
		i.Label == other.Label
}

// ServiceInstanceOptions describe an instance to create. The plan is given
// either by GUID, or by service label and plan name.
type ServiceInstanceOptions struct {
	// Name defaults to a test name.
	Name      string
	OrgGUID   string `validate:"required"`
	SpaceGUID string `validate:"required"`
	Label     string `validate:"required_without=PlanGUID"`
	PlanName  string `validate:"required_without=PlanGUID"`
	PlanGUID  string
	// Parameters are passed to the broker.
	Parameters map[string]any
	// Retry tunes the wait after a gateway time out.
	Retry retry.Options
}

func (o *ServiceInstanceOptions) planGUID(ctx context.Context, console *platform.Client) (string, error) {
	if o.PlanGUID != "" {
		return o.PlanGUID, nil
	}

	plans, err := console.ServicePlans(ctx, o.Label)
	if err != nil {
		return "", err
	}

	for _, p := range plans {
		if p.Entity.Name == o.PlanName {
			return p.Metadata.GUID, nil
		}
	}

	return "", fmt.Errorf("%w: %s for service %s", ErrUnknownPlan, o.PlanName, o.Label)
}

// CreateServiceInstance creates an instance through the console. When the
// gateway times out on the call the instance is waited for by name in the
// space rather than failing.
func CreateServiceInstance(ctx context.Context, console *platform.Client, options ServiceInstanceOptions) (*ServiceInstance, error) {
	if err := validation.Struct(&options); err != nil {
		return nil, fmt.Errorf("invalid service instance options: %w", err)
	}

	planGUID, err := options.planGUID(ctx, console)
	if err != nil {
		return nil, err
	}

	name := nameOrTest(options.Name)

	request := &platform.CreateServiceInstanceRequest{
		Name:             name,
		ServicePlanGUID:  planGUID,
		OrganizationGUID: options.OrgGUID,
		SpaceGUID:        options.SpaceGUID,
		Parameters:       options.Parameters,
	}

	create := func(ctx context.Context) (ServiceInstance, error) {
		created, err := console.CreateServiceInstance(ctx, request)
		if err != nil {
			return ServiceInstance{}, err
		}

		return ServiceInstance{
			GUID:      created.Metadata.GUID,
			Name:      name,
			SpaceGUID: options.SpaceGUID,
			Label:     options.Label,
		}, nil
	}

	list := func(ctx context.Context) ([]ServiceInstance, error) {
		return ServiceInstances(ctx, console, options.SpaceGUID, "")
	}

	nameOf := func(i ServiceInstance) string {
		return i.Name
	}

	instance, err := retry.CreateWithEventualVisibility(ctx, options.Retry, name, create, list, nameOf)
	if err != nil {
		return nil, err
	}

	return &instance, nil
}

// ServiceInstances lists instances of a space, optionally of one service.
func ServiceInstances(ctx context.Context, console *platform.Client, spaceGUID, label string) ([]ServiceInstance, error) {
	instances, err := console.ServiceInstances(ctx, spaceGUID, label)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceInstance, len(instances))

	for i, in := range instances {
		out[i] = ServiceInstance{
			GUID:      in.GUID,
			Name:      in.Name,
			SpaceGUID: spaceGUID,
			BoundApps: in.BoundApps,
		}

		if in.ServicePlan != nil {
			out[i].Label = in.ServicePlan.Service.Label
		}
	}

	return out, nil
}

// InstanceKeys pairs an instance with its service keys.
type InstanceKeys struct {
	Instance ServiceInstance
	Keys     []ServiceKey
}

// ServiceInstanceKeys lists the keys of every instance in a space.
func ServiceInstanceKeys(ctx context.Context, console *platform.Client, spaceGUID string) ([]InstanceKeys, error) {
	summary, err := console.ServiceInstancesSummary(ctx, spaceGUID, true)
	if err != nil {
		return nil, err
	}

	var out []InstanceKeys

	for _, service := range summary {
		for _, in := range service.Instances {
			entry := InstanceKeys{
				Instance: ServiceInstance{
					GUID:      in.GUID,
					Name:      in.Name,
					SpaceGUID: spaceGUID,
					Label:     service.Label,
				},
			}

			for i := range in.ServiceKeys {
				entry.Keys = append(entry.Keys, serviceKeyFromConsole(&in.ServiceKeys[i]))
			}

			out = append(out, entry)
		}
	}

	return out, nil
}

func (i *ServiceInstance) Delete(ctx context.Context, console *platform.Client) error {
	return console.DeleteServiceInstance(ctx, i.GUID)
}

func serviceInstanceFromCF(in *cf.Resource[cf.ServiceInstance]) ServiceInstance {
	return ServiceInstance{
		GUID:        in.Metadata.GUID,
		Name:        in.Entity.Name,
		SpaceGUID:   in.Entity.SpaceGUID,
		Credentials: in.Entity.Credentials,
	}
}

// CFCreateServiceInstance creates an instance through Cloud Foundry.
func CFCreateServiceInstance(ctx context.Context, client *cf.Client, spaceGUID, name, planGUID string) (*ServiceInstance, error) {
	created, err := client.CreateServiceInstance(ctx, nameOrTest(name), spaceGUID, planGUID)
	if err != nil {
		return nil, err
	}

	instance := serviceInstanceFromCF(created)

	return &instance, nil
}

// CFCreateUserProvidedServiceInstance creates an instance carrying the given
// credentials, with no broker behind it.
func CFCreateUserProvidedServiceInstance(ctx context.Context, client *cf.Client, spaceGUID, name string, credentials map[string]any) (*ServiceInstance, error) {
	created, err := client.CreateUserProvidedServiceInstance(ctx, nameOrTest(name), spaceGUID, credentials)
	if err != nil {
		return nil, err
	}

	instance := serviceInstanceFromCF(created)

	return &instance, nil
}

func CFUserProvidedServiceInstances(ctx context.Context, client *cf.Client) ([]ServiceInstance, error) {
	instances, err := client.UserProvidedServiceInstances(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceInstance, len(instances))

	for i := range instances {
		out[i] = serviceInstanceFromCF(&instances[i])
	}

	return out, nil
}

// CFServiceInstances lists the instances of an organization.
func CFServiceInstances(ctx context.Context, client *cf.Client, orgGUID string) ([]ServiceInstance, error) {
	instances, err := client.ServiceInstances(ctx, orgGUID)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceInstance, len(instances))

	for i := range instances {
		out[i] = serviceInstanceFromCF(&instances[i])
	}

	return out, nil
}
