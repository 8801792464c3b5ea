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
	"slices"

	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

// Organization roles a user can be given through the console.
const (
	RoleManagers        = "managers"
	RoleAuditors        = "auditors"
	RoleBillingManagers = "billing_managers"
)

// OrganizationRoles returns every role, in the order the console lists them.
func OrganizationRoles() []string {
	return []string{RoleManagers, RoleAuditors, RoleBillingManagers}
}

type User struct {
	GUID     string
	Username string
	Roles    []string
	OrgGUID  string
}

// Equal compares identity and roles, regardless of role order.
func (u User) Equal(other User) bool {
	if u.GUID != other.GUID || u.Username != other.Username || len(u.Roles) != len(other.Roles) {
		return false
	}

	a := slices.Sorted(slices.Values(u.Roles))
	b := slices.Sorted(slices.Values(other.Roles))

	return slices.Equal(a, b)
}

// TestUsername returns an address built from a test name.
func TestUsername(domain string) string {
	return TestName() + "@" + domain
}

// AddUserToOrganization adds a user with the given roles and returns it as
// the console lists it.
func AddUserToOrganization(ctx context.Context, console *platform.Client, orgGUID, username string, roles []string) (*User, error) {
	if err := console.AddOrganizationUser(ctx, orgGUID, username, roles); err != nil {
		return nil, err
	}

	users, err := OrganizationUsers(ctx, console, orgGUID)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}

	return nil, fmt.Errorf("user %s missing from organization %s after creation", username, orgGUID) //nolint:err113
}

func OrganizationUsers(ctx context.Context, console *platform.Client, orgGUID string) ([]User, error) {
	users, err := console.OrganizationUsers(ctx, orgGUID)
	if err != nil {
		return nil, err
	}

	out := make([]User, len(users))

	for i, u := range users {
		out[i] = User{GUID: u.GUID, Username: u.Username, Roles: u.Roles, OrgGUID: orgGUID}
	}

	return out, nil
}

func (u *User) UpdateRoles(ctx context.Context, console *platform.Client, roles []string) error {
	if err := console.UpdateOrganizationUser(ctx, u.OrgGUID, u.GUID, roles); err != nil {
		return err
	}

	u.Roles = roles

	return nil
}

func (u *User) Delete(ctx context.Context, console *platform.Client) error {
	return console.DeleteOrganizationUser(ctx, u.OrgGUID, u.GUID)
}
