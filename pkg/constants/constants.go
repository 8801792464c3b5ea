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

package constants

import (
	"fmt"
	"os"
	"path"
)

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = path.Base(os.Args[0])

	// Version is the application version set via the Makefile.
	//nolint:gochecknoglobals
	Version string

	// Revision is the git revision set via the Makefile.
	//nolint:gochecknoglobals
	Revision string
)

// VersionString returns a canonical version string.
func VersionString() string {
	return fmt.Sprintf("%s/%s (revision/%s)", Application, Version, Revision)
}

const (
	// TestNamePrefix marks every resource created by the suites, it is what
	// the teardown sweeper keys on.
	TestNamePrefix = "test"

	// TestRunCollection is the result store collection for run records.
	TestRunCollection = "test_run"
)

// Priority orders suites so a subset can be run against a busy environment.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Label returns the Ginkgo label used to select specs of this priority.
func (p Priority) Label() string {
	return "priority:" + string(p)
}

// Component is a platform application a spec exercises.
type Component string

const (
	ComponentUserManagement      Component = "user-management"
	ComponentServiceCatalog      Component = "service-catalog"
	ComponentApplicationBroker   Component = "application-broker"
	ComponentConsole             Component = "console"
	ComponentLatestEventsService Component = "latest-events-service"
	ComponentCloudController     Component = "cloud-controller"
)

// Label returns the Ginkgo label used to select specs of this component.
func (c Component) Label() string {
	return "component:" + string(c)
}

// ExpectedFailureLabel marks specs that fail on a known platform defect.
const ExpectedFailureLabel = "expected-failure"
