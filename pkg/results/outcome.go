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
	"errors"
	"fmt"
)

// ErrUnknownOutcome is returned for an outcome outside the closed set.
var ErrUnknownOutcome = errors.New("unknown test outcome")

// Outcome is the result of a single test.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeExpectedFailure   Outcome = "expected_failure"
	OutcomeUnexpectedSuccess Outcome = "unexpected_success"
	OutcomeFailure           Outcome = "failure"
	OutcomeError             Outcome = "error"
	OutcomeSkip              Outcome = "skip"
)

// Outcomes returns every valid outcome.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeSuccess,
		OutcomeExpectedFailure,
		OutcomeUnexpectedSuccess,
		OutcomeFailure,
		OutcomeError,
		OutcomeSkip,
	}
}

// Validate returns an error wrapping ErrUnknownOutcome unless o is valid.
func (o Outcome) Validate() error {
	for _, valid := range Outcomes() {
		if o == valid {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownOutcome, string(o))
}

// Passing tells whether the outcome leaves the run successful.
func (o Outcome) Passing() bool {
	return o == OutcomeSuccess || o == OutcomeExpectedFailure
}
