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

//nolint:revive // dot imports are standard for Ginkgo/Gomega test code
package cfv3_test

import (
	"context"
	"net/http"
	"strings"

	"github.com/cloudfoundry/go-cfclient/v3/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/cfv3"
)

const pagingQueryString = "page=1&per_page=50"

var _ = Describe("Cloud Foundry v3 sweeper", func() {
	var (
		g         *testutil.ObjectJSONGenerator
		testOrg   *testutil.JSONResource
		otherOrg  *testutil.JSONResource
		serverURL string
		client    *cfv3.Client
	)

	BeforeEach(func() {
		g = testutil.NewObjectJSONGenerator()
		testOrg = g.Organization()
		otherOrg = g.Organization()

		// Generated names carry no known prefix, rename through the JSON.
		testOrg.JSON = strings.Replace(testOrg.JSON, testOrg.Name, "test-20260101-abc", 1)
		testOrg.Name = "test-20260101-abc"

		serverURL = testutil.SetupMultiple([]testutil.MockRoute{
			{
				Method:      "GET",
				Endpoint:    "/v3/organizations",
				Output:      g.Paged([]string{testOrg.JSON, otherOrg.JSON}),
				Status:      http.StatusOK,
				QueryString: pagingQueryString,
			},
		}, GlobalT)
		DeferCleanup(testutil.Teardown)

		log := logrus.New()
		log.SetOutput(GinkgoWriter)

		var err error

		client, err = cfv3.New(&cfv3.Options{
			APIURL:            serverURL,
			RefreshToken:      "fake-refresh-token",
			SkipTLSValidation: true,
		}, log)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should list every organization", func() {
		orgs, err := client.Organizations(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(orgs).To(HaveLen(2))
	})

	It("should keep only the organizations with the test prefix", func() {
		orgs, err := client.TestOrganizations(context.Background(), "test-")
		Expect(err).NotTo(HaveOccurred())
		Expect(orgs).To(ConsistOf(cfv3.Organization{GUID: testOrg.GUID, Name: "test-20260101-abc"}))
	})
})
