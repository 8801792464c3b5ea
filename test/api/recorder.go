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
	"context"
	"slices"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/ginkgo/v2/types"

	"github.com/trustedanalytics/platform-tests/pkg/constants"
	"github.com/trustedanalytics/platform-tests/pkg/results"
)

// OutcomeOf maps the state of a finished spec to a run outcome.
func OutcomeOf(report types.SpecReport) results.Outcome {
	expectedFailure := slices.Contains(report.Labels(), constants.ExpectedFailureLabel)

	switch report.State {
	case types.SpecStatePassed:
		if expectedFailure {
			return results.OutcomeUnexpectedSuccess
		}

		return results.OutcomeSuccess
	case types.SpecStateFailed:
		if expectedFailure {
			return results.OutcomeExpectedFailure
		}

		return results.OutcomeFailure
	case types.SpecStateSkipped, types.SpecStatePending:
		return results.OutcomeSkip
	case types.SpecStateInvalid, types.SpecStatePanicked, types.SpecStateInterrupted,
		types.SpecStateAborted, types.SpecStateTimedout:
	}

	return results.OutcomeError
}

// Recorder keeps a test run record in step with a suite.
type Recorder struct {
	run *results.TestRun
}

func NewRecorder(run *results.TestRun) *Recorder {
	return &Recorder{run: run}
}

// Run returns the record, nil if recording is off.
func (r *Recorder) Run() *results.TestRun {
	if r == nil {
		return nil
	}

	return r.run
}

// Start stores the record, call it from BeforeSuite.
func (r *Recorder) Start(ctx context.Context) error {
	if r == nil {
		return nil
	}

	return r.run.Start(ctx)
}

// Selected tells whether a spec was chosen to run. Specs left out by the
// label filter are reported as skipped without a failure, a Skip call always
// carries its message.
func Selected(report types.SpecReport) bool {
	return report.State != types.SpecStateSkipped || report.Failure.Message != ""
}

// Record adds the outcome of one spec, call it from ReportAfterEach. Specs
// that were not selected are not part of the run and are ignored.
func (r *Recorder) Record(ctx context.Context, report types.SpecReport) error {
	if r == nil || !Selected(report) {
		return nil
	}

	outcome := OutcomeOf(report)

	ginkgo.GinkgoWriter.Printf("Recording %s as %s\n", report.FullText(), outcome)

	return r.run.UpdateResult(ctx, outcome)
}

// End stamps the end date, call it from AfterSuite.
func (r *Recorder) End(ctx context.Context) error {
	if r == nil {
		return nil
	}

	return r.run.End(ctx)
}
