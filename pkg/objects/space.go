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

	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

type Space struct {
	GUID    string
	Name    string
	OrgGUID string
}

func (s Space) Equal(other Space) bool {
	return s.GUID == other.GUID && s.Name == other.Name
}

func spaceFromConsole(in *platform.Space) Space {
	return Space{
		GUID:    in.Metadata.GUID,
		Name:    in.Entity.Name,
		OrgGUID: in.Entity.OrganizationGUID,
	}
}

func spacesFromConsole(in []platform.Space) []Space {
	out := make([]Space, len(in))

	for i := range in {
		out[i] = spaceFromConsole(&in[i])
	}

	return out
}

// CreateSpace creates a space, with a test name if name is empty. The
// console does not return the GUID, so the space is looked up afterwards.
func CreateSpace(ctx context.Context, console *platform.Client, orgGUID, name string) (*Space, error) {
	name = nameOrTest(name)

	if err := console.CreateSpace(ctx, orgGUID, name); err != nil {
		return nil, err
	}

	spaces, err := OrganizationSpaces(ctx, console, orgGUID)
	if err != nil {
		return nil, err
	}

	for i := range spaces {
		if spaces[i].Name == name {
			return &spaces[i], nil
		}
	}

	return nil, fmt.Errorf("space %s missing from organization %s after creation", name, orgGUID) //nolint:err113
}

func Spaces(ctx context.Context, console *platform.Client) ([]Space, error) {
	spaces, err := console.Spaces(ctx)
	if err != nil {
		return nil, err
	}

	return spacesFromConsole(spaces), nil
}

func OrganizationSpaces(ctx context.Context, console *platform.Client, orgGUID string) ([]Space, error) {
	spaces, err := console.OrganizationSpaces(ctx, orgGUID)
	if err != nil {
		return nil, err
	}

	return spacesFromConsole(spaces), nil
}

func (s *Space) Delete(ctx context.Context, console *platform.Client) error {
	return console.DeleteSpace(ctx, s.GUID)
}
