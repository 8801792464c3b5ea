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

package api

import (
	"github.com/trustedanalytics/platform-tests/pkg/objects"
	"github.com/trustedanalytics/platform-tests/pkg/retry"
)

// GenerateTestID returns a name the teardown sweep will recognise.
func GenerateTestID() string {
	return objects.TestName()
}

// ServiceInstanceBuilder builds service instance options for testing.
type ServiceInstanceBuilder struct {
	options objects.ServiceInstanceOptions
}

// NewServiceInstance starts options for an instance in the first space of org.
func NewServiceInstance(org *objects.Organization) *ServiceInstanceBuilder {
	b := &ServiceInstanceBuilder{
		options: objects.ServiceInstanceOptions{
			Name:    GenerateTestID(),
			OrgGUID: org.GUID,
		},
	}

	if len(org.Spaces) > 0 {
		b.options.SpaceGUID = org.Spaces[0].GUID
	}

	return b
}

func (b *ServiceInstanceBuilder) WithName(name string) *ServiceInstanceBuilder {
	b.options.Name = name
	return b
}

// InSpace overrides the space the instance is created in.
func (b *ServiceInstanceBuilder) InSpace(spaceGUID string) *ServiceInstanceBuilder {
	b.options.SpaceGUID = spaceGUID
	return b
}

// WithPlan selects the plan by service label and plan name.
func (b *ServiceInstanceBuilder) WithPlan(label, plan string) *ServiceInstanceBuilder {
	b.options.Label = label
	b.options.PlanName = plan
	b.options.PlanGUID = ""

	return b
}

func (b *ServiceInstanceBuilder) WithPlanGUID(guid string) *ServiceInstanceBuilder {
	b.options.PlanGUID = guid
	b.options.Label = ""
	b.options.PlanName = ""

	return b
}

func (b *ServiceInstanceBuilder) WithParameters(parameters map[string]any) *ServiceInstanceBuilder {
	b.options.Parameters = parameters
	return b
}

func (b *ServiceInstanceBuilder) WithRetry(options retry.Options) *ServiceInstanceBuilder {
	b.options.Retry = options
	return b
}

// Build returns the completed options.
func (b *ServiceInstanceBuilder) Build() objects.ServiceInstanceOptions {
	return b.options
}
