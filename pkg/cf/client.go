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

package cf

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/httpclient"

	"k8s.io/utils/clock"
)

const (
	// ResultsPerPage is the page size requested from every collection.
	ResultsPerPage = 100

	// DefaultJobTimeout bounds WaitForJob when the caller has no better idea.
	DefaultJobTimeout = 120 * time.Second

	// DefaultJobPollInterval is the fixed delay between job status polls.
	DefaultJobPollInterval = 5 * time.Second
)

// ErrJobTimeout is returned when an asynchronous job is not finished in time.
var ErrJobTimeout = errors.New("job did not finish")

// Client talks to the Cloud Foundry v2 API.
type Client struct {
	client          *httpclient.Client
	endpoints       *Endpoints
	log             logrus.FieldLogger
	clock           clock.Clock
	jobPollInterval time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithClock replaces the wall clock used for job polling.
func WithClock(c clock.Clock) Option {
	return func(client *Client) {
		client.clock = c
	}
}

// WithJobPollInterval replaces DefaultJobPollInterval.
func WithJobPollInterval(interval time.Duration) Option {
	return func(client *Client) {
		client.jobPollInterval = interval
	}
}

// New returns a client, the httpclient must be rooted at the /v2 path.
func New(client *httpclient.Client, log logrus.FieldLogger, options ...Option) *Client {
	c := &Client{
		client:          client,
		endpoints:       NewEndpoints(),
		log:             log.WithField("component", "cf"),
		clock:           clock.RealClock{},
		jobPollInterval: DefaultJobPollInterval,
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// HTTP exposes the underlying client for one-off calls.
func (c *Client) HTTP() *httpclient.Client {
	return c.client
}

// GetAllPages walks a paginated collection and returns every resource, in
// page order. Pages are fetched one at a time, the next only once the
// previous one has been consumed. The walk ends on the page whose number
// reaches the total_pages reported by that page; a collection that keeps
// growing faster than it is read is never finished.
// Errors are returned as the transport reported them.
func GetAllPages[E any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]Resource[E], error) {
	var resources []Resource[E]

	for page := 1; ; page++ {
		params := make(url.Values, len(query)+2)

		for key, values := range query {
			params[key] = slices.Clone(values)
		}

		params.Set("results-per-page", strconv.Itoa(ResultsPerPage))
		params.Set("page", strconv.Itoa(page))

		var result Page[E]

		if err := c.client.Get(ctx, endpoint, params, &result); err != nil {
			return nil, err
		}

		resources = append(resources, result.Resources...)

		if page >= result.TotalPages {
			return resources, nil
		}
	}
}

// WaitForJob polls an asynchronous job at a fixed interval until it reports
// it's finished. If that is not observed within timeout of the first poll, an
// error wrapping ErrJobTimeout and naming the job is returned.
func (c *Client) WaitForJob(ctx context.Context, jobID, jobName string, timeout time.Duration) error {
	log := c.log.WithFields(logrus.Fields{
		"job":   jobName,
		"jobID": jobID,
	})

	start := c.clock.Now()

	for c.clock.Since(start) < timeout {
		var job Resource[Job]

		if err := c.client.Get(ctx, c.endpoints.Job(jobID), nil, &job); err != nil {
			return err
		}

		if job.Entity.Status == JobStatusFinished {
			return nil
		}

		log.Infof("%s - job status: %s", jobName, job.Entity.Status)

		c.clock.Sleep(c.jobPollInterval)
	}

	return fmt.Errorf("%w: %s in %s", ErrJobTimeout, jobName, timeout)
}

// nameQuery builds the v2 filter for an exact name match.
func nameQuery(name string) url.Values {
	return url.Values{"q": {"name:" + name}}
}
