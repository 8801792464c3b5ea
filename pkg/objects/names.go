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

package objects

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trustedanalytics/platform-tests/pkg/constants"
)

// TestName returns a name that is unique across runs and carries the test
// prefix, so leftovers can be swept up.
func TestName() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return strings.Join([]string{
		constants.TestNamePrefix,
		time.Now().UTC().Format("20060102-150405"),
		suffix,
	}, "-")
}

// IsTestName tells whether name was produced by TestName.
func IsTestName(name string) bool {
	return strings.HasPrefix(name, constants.TestNamePrefix+"-")
}

func nameOrTest(name string) string {
	if name == "" {
		return TestName()
	}

	return name
}
