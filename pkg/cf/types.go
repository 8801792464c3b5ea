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
	"encoding/json"
)

// Metadata is common to all v2 resources.
type Metadata struct {
	GUID      string `json:"guid"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Resource is the v2 envelope around an entity.
type Resource[E any] struct {
	Metadata Metadata `json:"metadata"`
	Entity   E        `json:"entity"`
}

// Page is one page of a v2 collection.
type Page[E any] struct {
	TotalResults int           `json:"total_results"`
	TotalPages   int           `json:"total_pages"`
	Resources    []Resource[E] `json:"resources"`
}

// JobStatusFinished is the terminal status of an asynchronous job.
const JobStatusFinished = "finished"

type Job struct {
	GUID   string `json:"guid"`
	Status string `json:"status"`
}

type Organization struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Space struct {
	Name             string `json:"name"`
	OrganizationGUID string `json:"organization_guid"`
}

type User struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	Active   bool   `json:"active"`
}

type Route struct {
	Host       string `json:"host"`
	Path       string `json:"path"`
	DomainGUID string `json:"domain_guid"`
	SpaceGUID  string `json:"space_guid"`
}

type ServiceBroker struct {
	Name      string `json:"name"`
	BrokerURL string `json:"broker_url"`
	SpaceGUID string `json:"space_guid"`
}

type Service struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type ServicePlan struct {
	Name        string `json:"name"`
	Free        bool   `json:"free"`
	ServiceGUID string `json:"service_guid"`
}

type ServiceInstance struct {
	Name            string          `json:"name"`
	SpaceGUID       string          `json:"space_guid"`
	ServicePlanGUID string          `json:"service_plan_guid,omitempty"`
	Credentials     json.RawMessage `json:"credentials,omitempty"`
	Type            string          `json:"type,omitempty"`
}

type Buildpack struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Enabled  bool   `json:"enabled"`
	Locked   bool   `json:"locked"`
	Filename string `json:"filename"`
}

type App struct {
	Name      string `json:"name"`
	SpaceGUID string `json:"space_guid"`
	State     string `json:"state"`
	Instances int    `json:"instances"`
}

// AppEnv is the result of GET apps/{guid}/env.
type AppEnv struct {
	StagingEnvJSON     map[string]any `json:"staging_env_json"`
	RunningEnvJSON     map[string]any `json:"running_env_json"`
	EnvironmentJSON    map[string]any `json:"environment_json"`
	SystemEnvJSON      map[string]any `json:"system_env_json"`
	ApplicationEnvJSON map[string]any `json:"application_env_json"`
}

// AppSummary is the result of GET apps/{guid}/summary.
type AppSummary struct {
	GUID     string            `json:"guid"`
	Name     string            `json:"name"`
	State    string            `json:"state"`
	Routes   []json.RawMessage `json:"routes"`
	Services []json.RawMessage `json:"services"`
}

// SpaceSummary is the result of GET spaces/{guid}/summary, the equivalent of
// `cf apps` and `cf services` together.
type SpaceSummary struct {
	GUID     string       `json:"guid"`
	Name     string       `json:"name"`
	Apps     []AppSummary `json:"apps"`
	Services []struct {
		GUID string `json:"guid"`
		Name string `json:"name"`
	} `json:"services"`
}

// Info is the result of GET info.
type Info struct {
	Name                  string `json:"name"`
	Build                 string `json:"build"`
	Version               int    `json:"version"`
	APIVersion            string `json:"api_version"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
}
