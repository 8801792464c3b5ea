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
)

type Buildpack struct {
	GUID     string
	Name     string
	URL      string
	Filename string
	Position int
	Enabled  bool
	Locked   bool
}

// Buildpacks lists the buildpacks installed on the platform.
func Buildpacks(ctx context.Context, client *cf.Client) ([]Buildpack, error) {
	buildpacks, err := client.Buildpacks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Buildpack, len(buildpacks))

	for i, b := range buildpacks {
		out[i] = Buildpack{
			GUID:     b.Metadata.GUID,
			Name:     b.Entity.Name,
			URL:      b.Metadata.URL,
			Filename: b.Entity.Filename,
			Position: b.Entity.Position,
			Enabled:  b.Entity.Enabled,
			Locked:   b.Entity.Locked,
		}
	}

	return out, nil
}
