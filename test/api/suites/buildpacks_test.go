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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustedanalytics/platform-tests/pkg/constants"
	"github.com/trustedanalytics/platform-tests/pkg/objects"
	"github.com/trustedanalytics/platform-tests/test/api"
)

var _ = Describe("Buildpacks", api.SpecLabels(constants.PriorityLow, constants.ComponentCloudController), func() {
	It("should list installed buildpacks in position order", func() {
		buildpacks, err := objects.Buildpacks(ctx, env.CF)
		Expect(err).NotTo(HaveOccurred())
		Expect(buildpacks).NotTo(BeEmpty(), "No buildpacks installed")

		for i := 1; i < len(buildpacks); i++ {
			Expect(buildpacks[i].Position).To(BeNumerically(">=", buildpacks[i-1].Position))
		}

		GinkgoWriter.Printf("Found %d buildpacks\n", len(buildpacks))
	})
})
