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
	"github.com/onsi/ginkgo/v2"

	"github.com/trustedanalytics/platform-tests/pkg/constants"
)

// SpecLabels tags a container or spec with its priority and the components it
// exercises.
func SpecLabels(priority constants.Priority, components ...constants.Component) ginkgo.Labels {
	labels := ginkgo.Labels{priority.Label()}

	for _, c := range components {
		labels = append(labels, c.Label())
	}

	return labels
}

// ExpectedFailure marks a spec that fails on a known platform defect. Its
// failure is recorded as expected, and a pass as unexpected.
//
//nolint:gochecknoglobals
var ExpectedFailure = ginkgo.Label(constants.ExpectedFailureLabel)
