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

	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

type Application struct {
	GUID      string
	Name      string
	State     string
	URLs      []string
	SpaceGUID string
}

func (a Application) Equal(other Application) bool {
	return a.GUID == other.GUID && a.Name == other.Name
}

// Applications lists applications of a space, optionally only those bound
// to a service with the given label.
func Applications(ctx context.Context, console *platform.Client, spaceGUID, serviceLabel string) ([]Application, error) {
	apps, err := console.Apps(ctx, spaceGUID, serviceLabel)
	if err != nil {
		return nil, err
	}

	out := make([]Application, len(apps))

	for i, a := range apps {
		out[i] = Application{
			GUID:      a.GUID,
			Name:      a.Name,
			State:     a.State,
			URLs:      a.URLs,
			SpaceGUID: spaceGUID,
		}
	}

	return out, nil
}

// Delete removes the application with its routes and bindings.
func (a *Application) Delete(ctx context.Context, console *platform.Client) error {
	return console.DeleteApp(ctx, a.GUID, true)
}
