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
	"encoding/json"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
)

type NamedReference struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}

type Organization struct {
	GUID   string           `json:"guid"`
	Name   string           `json:"name"`
	Spaces []NamedReference `json:"spaces"`
}

type SpaceEntity struct {
	Name             string `json:"name"`
	OrganizationGUID string `json:"organization_guid"`
}

// Space is returned in the CF envelope by the console.
type Space = cf.Resource[SpaceEntity]

type User struct {
	GUID     string   `json:"guid"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type ServicePlanEntity struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Free        bool   `json:"free"`
}

type ServicePlan = cf.Resource[ServicePlanEntity]

type ServiceEntity struct {
	Label        string        `json:"label"`
	Description  string        `json:"description"`
	Tags         []string      `json:"tags"`
	ServicePlans []ServicePlan `json:"service_plans"`
}

// Service is a marketplace entry.
type Service = cf.Resource[ServiceEntity]

type InstancePlan struct {
	Name    string `json:"name"`
	Service struct {
		Label string `json:"label"`
	} `json:"service"`
}

type LastOperation struct {
	Type  string `json:"type"`
	State string `json:"state"`
}

type ServiceInstance struct {
	GUID          string           `json:"guid"`
	Name          string           `json:"name"`
	BoundApps     []NamedReference `json:"bound_apps"`
	ServicePlan   *InstancePlan    `json:"service_plan"`
	LastOperation *LastOperation   `json:"last_operation,omitempty"`
}

// CreatedServiceInstance is the answer to a create call, in the CF envelope.
type CreatedServiceInstance = cf.Resource[struct {
	Name string `json:"name"`
}]

type ServiceKey struct {
	GUID                string          `json:"guid"`
	Name                string          `json:"name"`
	Credentials         json.RawMessage `json:"credentials"`
	ServiceInstanceGUID string          `json:"service_instance_guid"`
}

type SummaryInstance struct {
	GUID        string       `json:"guid"`
	Name        string       `json:"name"`
	ServiceKeys []ServiceKey `json:"service_keys"`
}

// ServiceSummary groups the instances of one service, with their keys.
type ServiceSummary struct {
	Label     string            `json:"label"`
	Instances []SummaryInstance `json:"instances"`
}

type App struct {
	GUID  string   `json:"guid"`
	Name  string   `json:"name"`
	State string   `json:"state"`
	URLs  []string `json:"urls"`
}

type Events struct {
	Total  int               `json:"total"`
	Events []json.RawMessage `json:"events"`
}
