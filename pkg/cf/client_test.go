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
package cf_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
	"github.com/trustedanalytics/platform-tests/pkg/httpclient"

	clocktesting "k8s.io/utils/clock/testing"
)

// fakeCloudController serves just enough of the v2 API to drive the client.
type fakeCloudController struct {
	lock sync.Mutex

	// pages are the organization names returned per page.
	pages [][]string
	// failPage answers that page with a 500.
	failPage int
	// pageRequests records the query of every organizations request.
	pageRequests []url.Values

	// jobStatuses are returned in order, the last one repeats.
	jobStatuses []string
	jobPolls    int

	deletes []url.Values
}

func (f *fakeCloudController) router() http.Handler {
	r := chi.NewRouter()

	r.Get("/v2/organizations", func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()

		query := r.URL.Query()
		f.pageRequests = append(f.pageRequests, query)

		page, _ := strconv.Atoi(query.Get("page"))
		if page == f.failPage {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"description":"boom"}`))

			return
		}

		result := cf.Page[cf.Organization]{
			TotalPages: len(f.pages),
		}

		if page >= 1 && page <= len(f.pages) {
			for _, name := range f.pages[page-1] {
				result.Resources = append(result.Resources, cf.Resource[cf.Organization]{
					Metadata: cf.Metadata{GUID: name + "-guid"},
					Entity:   cf.Organization{Name: name},
				})
			}
		}

		_ = json.NewEncoder(w).Encode(result)
	})

	r.Delete("/v2/organizations/{guid}", func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()

		f.deletes = append(f.deletes, r.URL.Query())

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(cf.Resource[cf.Job]{
			Metadata: cf.Metadata{GUID: "job-1"},
			Entity:   cf.Job{GUID: "job-1", Status: "queued"},
		})
	})

	r.Get("/v2/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()

		status := f.jobStatuses[min(f.jobPolls, len(f.jobStatuses)-1)]
		f.jobPolls++

		_ = json.NewEncoder(w).Encode(cf.Resource[cf.Job]{
			Entity: cf.Job{GUID: chi.URLParam(r, "id"), Status: status},
		})
	})

	return r
}

func orgNames(orgs []cf.Resource[cf.Organization]) []string {
	names := make([]string, len(orgs))

	for i := range orgs {
		names[i] = orgs[i].Entity.Name
	}

	return names
}

var _ = Describe("Cloud Foundry v2 client", func() {
	var (
		ctx    context.Context
		fake   *fakeCloudController
		clock  *clocktesting.FakeClock
		client *cf.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = &fakeCloudController{}
		clock = clocktesting.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

		server := httptest.NewServer(fake.router())
		DeferCleanup(server.Close)

		log := logrus.New()
		log.SetOutput(GinkgoWriter)

		client = cf.New(httpclient.New(server.URL+"/v2", server.Client(), log, httpclient.Options{}), log, cf.WithClock(clock))
	})

	Context("When fetching a paginated collection", func() {
		It("should concatenate every page in order", func() {
			fake.pages = [][]string{{"a", "b"}, {"c"}, {"d", "e"}}

			orgs, err := cf.GetAllPages[cf.Organization](ctx, client, "organizations", url.Values{"q": {"status:active"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(orgNames(orgs)).To(Equal([]string{"a", "b", "c", "d", "e"}))

			Expect(fake.pageRequests).To(HaveLen(3))

			for i, query := range fake.pageRequests {
				Expect(query.Get("page")).To(Equal(strconv.Itoa(i + 1)))
				Expect(query.Get("results-per-page")).To(Equal("100"))
				Expect(query.Get("q")).To(Equal("status:active"))
			}
		})

		It("should page on its own keys whatever the caller passes", func() {
			fake.pages = [][]string{{"a"}, {"b"}}

			orgs, err := cf.GetAllPages[cf.Organization](ctx, client, "organizations", url.Values{"page": {"5"}, "results-per-page": {"10"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(orgNames(orgs)).To(Equal([]string{"a", "b"}))

			Expect(fake.pageRequests).To(HaveLen(2))
			Expect(fake.pageRequests[0].Get("page")).To(Equal("1"))
			Expect(fake.pageRequests[1].Get("page")).To(Equal("2"))
			Expect(fake.pageRequests[1].Get("results-per-page")).To(Equal("100"))
		})

		It("should issue exactly one request for a single page", func() {
			fake.pages = [][]string{{"only"}}

			orgs, err := client.Organizations(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(orgNames(orgs)).To(Equal([]string{"only"}))
			Expect(fake.pageRequests).To(HaveLen(1))
		})

		It("should stop after the first page of an empty collection", func() {
			orgs, err := client.Organizations(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(orgs).To(BeEmpty())
			Expect(fake.pageRequests).To(HaveLen(1))
		})

		It("should propagate a failed page without retrying", func() {
			fake.pages = [][]string{{"a"}, {"b"}, {"c"}}
			fake.failPage = 2

			_, err := client.Organizations(ctx)
			Expect(err).To(HaveOccurred())
			Expect(httpclient.StatusCode(err)).To(Equal(http.StatusInternalServerError))
			Expect(fake.pageRequests).To(HaveLen(2))
		})

		It("should find an organization by name", func() {
			fake.pages = [][]string{{"reference"}}

			org, err := client.OrganizationByName(ctx, "reference")
			Expect(err).NotTo(HaveOccurred())
			Expect(org).NotTo(BeNil())
			Expect(org.Metadata.GUID).To(Equal("reference-guid"))
			Expect(fake.pageRequests[0].Get("q")).To(Equal("name:reference"))
		})
	})

	Context("When waiting for an asynchronous job", func() {
		It("should return as soon as the job is finished", func() {
			fake.jobStatuses = []string{"queued", "running", "finished"}
			start := clock.Now()

			Expect(client.WaitForJob(ctx, "job-1", "delete org", 2*time.Minute)).To(Succeed())
			Expect(fake.jobPolls).To(Equal(3))
			Expect(clock.Since(start)).To(Equal(10 * time.Second))
		})

		It("should not sleep when the first poll is terminal", func() {
			fake.jobStatuses = []string{"finished"}
			start := clock.Now()

			Expect(client.WaitForJob(ctx, "job-1", "delete org", cf.DefaultJobTimeout)).To(Succeed())
			Expect(fake.jobPolls).To(Equal(1))
			Expect(clock.Since(start)).To(BeZero())
		})

		It("should time out on an interval boundary", func() {
			fake.jobStatuses = []string{"in progress"}
			start := clock.Now()

			err := client.WaitForJob(ctx, "job-1", "delete route", 10*time.Second)
			Expect(err).To(MatchError(cf.ErrJobTimeout))
			Expect(err.Error()).To(ContainSubstring("delete route"))
			Expect(fake.jobPolls).To(Equal(2))
			Expect(clock.Since(start)).To(Equal(10 * time.Second))
		})

		It("should never overrun the timeout by more than one interval", func() {
			fake.jobStatuses = []string{"in progress"}
			start := clock.Now()

			err := client.WaitForJob(ctx, "job-1", "delete org", 12*time.Second)
			Expect(err).To(MatchError(cf.ErrJobTimeout))
			Expect(fake.jobPolls).To(Equal(3))
			Expect(clock.Since(start)).To(BeNumerically("<=", 12*time.Second+cf.DefaultJobPollInterval))
		})
	})

	Context("When deleting an organization", func() {
		It("should delete recursively and wait for the job", func() {
			fake.jobStatuses = []string{"running", "finished"}

			Expect(client.DeleteOrganization(ctx, "org-guid")).To(Succeed())
			Expect(fake.deletes).To(HaveLen(1))
			Expect(fake.deletes[0].Get("async")).To(Equal("true"))
			Expect(fake.deletes[0].Get("recursive")).To(Equal("true"))
			Expect(fake.jobPolls).To(Equal(2))
		})
	})
})
