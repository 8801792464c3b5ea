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

// Package api provides integration test utilities for the platform.
//
// # Environment
//
// Suites run against a live shared environment described by environment
// variables or a .env file, see pkg/config. Clients are assembled once per
// suite with LoadEnvironment and log through GinkgoWriter, so the output of
// a spec is only shown when it fails.
//
// # Fixtures
//
// Every resource a spec creates is named with objects.TestName and deleted
// with DeferCleanup, whether the spec passes or not. Anything a crashed run
// leaves behind is swept by "platform-tests teardown".
//
// # Selection
//
// Specs carry a priority and the components they exercise as labels, see
// Labels, and are selected with --ginkgo.label-filter, for example
// "priority:high && component:console".
//
// # Recording
//
// When a result database is configured a Recorder stores one test_run
// document per suite execution, updated after every spec.
package api
