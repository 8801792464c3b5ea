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

package results

import (
	"context"
	"fmt"
	"maps"
	"os"
	"time"

	"github.com/trustedanalytics/platform-tests/pkg/constants"

	"k8s.io/utils/clock"
	"k8s.io/utils/ptr"
)

// RunOptions describe what a run is executed against.
type RunOptions struct {
	Environment        string
	EnvironmentVersion string
	Suite              string
	Release            string
	Components         []Component

	// Hostname defaults to the local host name.
	Hostname string
	// Clock defaults to the wall clock.
	Clock clock.PassiveClock
}

// TestRun aggregates the outcomes of one suite execution and keeps the
// stored record in step with them. It is not safe for concurrent use.
type TestRun struct {
	store   Store
	clock   clock.PassiveClock
	options RunOptions

	startedBy string
	id        string
	startDate *time.Time
	endDate   *time.Time
	testCount int
	result    map[Outcome]int
	status    Outcome
	log       *string
}

// NewTestRun returns a run with every counter at zero and a successful status.
// Nothing is stored until Start.
func NewTestRun(store Store, options RunOptions) *TestRun {
	c := options.Clock
	if c == nil {
		c = clock.RealClock{}
	}

	hostname := options.Hostname
	if hostname == "" {
		hostname, _ = os.Hostname()
	}

	result := make(map[Outcome]int, len(Outcomes()))

	for _, o := range Outcomes() {
		result[o] = 0
	}

	return &TestRun{
		store:     store,
		clock:     c,
		options:   options,
		startedBy: hostname,
		result:    result,
		status:    OutcomeSuccess,
	}
}

// ID is empty until the run has been started.
func (r *TestRun) ID() string {
	return r.id
}

func (r *TestRun) Status() Outcome {
	return r.status
}

func (r *TestRun) TestCount() int {
	return r.testCount
}

// Result returns a copy of the per outcome counters.
func (r *TestRun) Result() map[Outcome]int {
	return maps.Clone(r.result)
}

func (r *TestRun) StartDate() *time.Time {
	return r.startDate
}

func (r *TestRun) EndDate() *time.Time {
	return r.endDate
}

// SetLog attaches a log to the record, it is stored with the next update.
func (r *TestRun) SetLog(log string) {
	r.log = ptr.To(log)
}

// Start stamps the start date and inserts the record. Starting twice inserts
// a second record.
func (r *TestRun) Start(ctx context.Context) error {
	r.startDate = ptr.To(r.clock.Now().UTC())

	id, err := r.store.Insert(ctx, constants.TestRunCollection, r.Document())
	if err != nil {
		return fmt.Errorf("inserting test run: %w", err)
	}

	r.id = id

	return nil
}

// UpdateResult counts one test outcome and stores the record before
// returning. Any outcome other than success or expected failure fails the run
// for good.
func (r *TestRun) UpdateResult(ctx context.Context, outcome Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	r.testCount++
	r.result[outcome]++

	if !outcome.Passing() {
		r.status = OutcomeFailure
	}

	return r.replace(ctx)
}

// End stamps the end date and stores the record.
func (r *TestRun) End(ctx context.Context) error {
	r.endDate = ptr.To(r.clock.Now().UTC())

	return r.replace(ctx)
}

func (r *TestRun) replace(ctx context.Context) error {
	if err := r.store.Replace(ctx, constants.TestRunCollection, r.id, r.Document()); err != nil {
		return fmt.Errorf("replacing test run %s: %w", r.id, err)
	}

	return nil
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}

	return t.Format(time.RFC3339Nano)
}

// Document renders the record as it is stored.
func (r *TestRun) Document() Document {
	result := make(map[string]int, len(r.result))

	for o, n := range r.result {
		result[string(o)] = n
	}

	var log any
	if r.log != nil {
		log = *r.log
	}

	return Document{
		"environment":         r.options.Environment,
		"environment_version": r.options.EnvironmentVersion,
		"suite":               r.options.Suite,
		"started_by":          r.startedBy,
		"release":             r.options.Release,
		"platform_components": componentsDocument(r.options.Components),
		"start_date":          formatDate(r.startDate),
		"end_date":            formatDate(r.endDate),
		"test_count":          r.testCount,
		"result":              result,
		"status":              string(r.status),
		"log":                 log,
	}
}
