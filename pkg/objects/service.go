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

	"github.com/trustedanalytics/platform-tests/pkg/cf"
	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

type ServicePlan struct {
	GUID string
	Name string
}

// ServiceType is an offering of the marketplace.
type ServiceType struct {
	GUID        string
	Label       string
	Description string
	Plans       []ServicePlan
}

func (s ServiceType) Equal(other ServiceType) bool {
	return s.GUID == other.GUID && s.Label == other.Label
}

// PlanGUID returns the GUID of the named plan, or "" if the plan is unknown.
func (s ServiceType) PlanGUID(name string) string {
	for _, p := range s.Plans {
		if p.Name == name {
			return p.GUID
		}
	}

	return ""
}

// Marketplace lists the service types visible in a space.
func Marketplace(ctx context.Context, console *platform.Client, spaceGUID string) ([]ServiceType, error) {
	services, err := console.Marketplace(ctx, spaceGUID)
	if err != nil {
		return nil, err
	}

	out := make([]ServiceType, len(services))

	for i, s := range services {
		out[i] = ServiceType{
			GUID:        s.Metadata.GUID,
			Label:       s.Entity.Label,
			Description: s.Entity.Description,
		}

		for _, p := range s.Entity.ServicePlans {
			out[i].Plans = append(out[i].Plans, ServicePlan{GUID: p.Metadata.GUID, Name: p.Entity.Name})
		}
	}

	return out, nil
}

// CFMarketplace lists the service types of a space through Cloud Foundry,
// with their plans.
func CFMarketplace(ctx context.Context, client *cf.Client, spaceGUID string) ([]ServiceType, error) {
	services, err := client.SpaceServices(ctx, spaceGUID, "")
	if err != nil {
		return nil, err
	}

	out := make([]ServiceType, len(services))

	for i, s := range services {
		out[i] = ServiceType{
			GUID:        s.Metadata.GUID,
			Label:       s.Entity.Label,
			Description: s.Entity.Description,
		}

		plans, err := client.ServicePlans(ctx, s.Metadata.GUID)
		if err != nil {
			return nil, err
		}

		for _, p := range plans {
			out[i].Plans = append(out[i].Plans, ServicePlan{GUID: p.Metadata.GUID, Name: p.Entity.Name})
		}
	}

	return out, nil
}
