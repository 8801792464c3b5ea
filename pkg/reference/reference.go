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

// Package reference resolves the long lived organization and space that
// every environment provides for read only checks.
package reference

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
)

var (
	// ErrOrganizationNotFound is returned when the reference organization
	// does not exist on the platform.
	ErrOrganizationNotFound = errors.New("reference organization not found")

	// ErrSpaceNotFound is returned when the reference space does not exist
	// in the reference organization.
	ErrSpaceNotFound = errors.New("reference space not found")
)

// Resolver looks organizations and spaces up by name.
type Resolver interface {
	OrganizationByName(ctx context.Context, name string) (*cf.Resource[cf.Organization], error)
	SpaceByName(ctx context.Context, orgGUID, name string) (*cf.Resource[cf.Space], error)
}

// Context holds the reference names and their GUIDs once resolved. A
// successful resolution is kept for the life of the process, a failed one
// is retried on the next call.
type Context struct {
	OrganizationName string
	SpaceName        string

	resolver Resolver

	lock      sync.Mutex
	orgGUID   string
	spaceGUID string
}

func New(resolver Resolver, orgName, spaceName string) *Context {
	return &Context{
		OrganizationName: orgName,
		SpaceName:        spaceName,
		resolver:         resolver,
	}
}

// OrganizationGUID returns the GUID of the reference organization.
func (c *Context) OrganizationGUID(ctx context.Context) (string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.organizationGUID(ctx)
}

func (c *Context) organizationGUID(ctx context.Context) (string, error) {
	if c.orgGUID != "" {
		return c.orgGUID, nil
	}

	org, err := c.resolver.OrganizationByName(ctx, c.OrganizationName)
	if err != nil {
		return "", fmt.Errorf("resolving organization %s: %w", c.OrganizationName, err)
	}

	if org == nil {
		return "", fmt.Errorf("%w: %s", ErrOrganizationNotFound, c.OrganizationName)
	}

	c.orgGUID = org.Metadata.GUID

	return c.orgGUID, nil
}

// SpaceGUID returns the GUID of the reference space, resolving the
// organization first if needed.
func (c *Context) SpaceGUID(ctx context.Context) (string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.spaceGUID != "" {
		return c.spaceGUID, nil
	}

	orgGUID, err := c.organizationGUID(ctx)
	if err != nil {
		return "", err
	}

	space, err := c.resolver.SpaceByName(ctx, orgGUID, c.SpaceName)
	if err != nil {
		return "", fmt.Errorf("resolving space %s: %w", c.SpaceName, err)
	}

	if space == nil {
		return "", fmt.Errorf("%w: %s in %s", ErrSpaceNotFound, c.SpaceName, c.OrganizationName)
	}

	c.spaceGUID = space.Metadata.GUID

	return c.spaceGUID, nil
}
