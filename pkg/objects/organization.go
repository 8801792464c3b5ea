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
	"fmt"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

type Organization struct {
	GUID   string
	Name   string
	Spaces []Space
}

func (o Organization) Equal(other Organization) bool {
	return o.GUID == other.GUID && o.Name == other.Name
}

func organizationFromConsole(in *platform.Organization) Organization {
	org := Organization{
		GUID: in.GUID,
		Name: in.Name,
	}

	for _, s := range in.Spaces {
		org.Spaces = append(org.Spaces, Space{GUID: s.GUID, Name: s.Name, OrgGUID: in.GUID})
	}

	return org
}

// CreateOrganization creates an organization, with a test name if name is
// empty, and the named spaces in it.
func CreateOrganization(ctx context.Context, console *platform.Client, name string, spaceNames ...string) (*Organization, error) {
	name = nameOrTest(name)

	guid, err := console.CreateOrganization(ctx, name)
	if err != nil {
		return nil, err
	}

	org := &Organization{GUID: guid, Name: name}

	for _, spaceName := range spaceNames {
		space, err := CreateSpace(ctx, console, guid, spaceName)
		if err != nil {
			return org, err
		}

		org.Spaces = append(org.Spaces, *space)
	}

	return org, nil
}

func Organizations(ctx context.Context, console *platform.Client) ([]Organization, error) {
	orgs, err := console.Organizations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Organization, len(orgs))

	for i := range orgs {
		out[i] = organizationFromConsole(&orgs[i])
	}

	return out, nil
}

// CFOrganizations lists organizations through the Cloud Foundry API.
func CFOrganizations(ctx context.Context, client *cf.Client) ([]Organization, error) {
	orgs, err := client.Organizations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Organization, len(orgs))

	for i, org := range orgs {
		out[i] = Organization{GUID: org.Metadata.GUID, Name: org.Entity.Name}
	}

	return out, nil
}

func (o *Organization) Rename(ctx context.Context, console *platform.Client, name string) error {
	if err := console.RenameOrganization(ctx, o.GUID, name); err != nil {
		return err
	}

	o.Name = name

	return nil
}

func (o *Organization) Delete(ctx context.Context, console *platform.Client) error {
	return console.DeleteOrganization(ctx, o.GUID)
}

// CFDelete deletes the organization and its content through Cloud Foundry,
// waiting for the job to finish.
func (o *Organization) CFDelete(ctx context.Context, client *cf.Client) error {
	if err := client.DeleteOrganization(ctx, o.GUID); err != nil {
		return fmt.Errorf("deleting organization %s: %w", o.Name, err)
	}

	return nil
}
