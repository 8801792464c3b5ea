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
	"context"
	"encoding/json"

	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

// EventSummary is the answer of the latest events service.
type EventSummary struct {
	Total  int
	Events []json.RawMessage
}

func LatestEvents(ctx context.Context, console *platform.Client, orgGUID string) (*EventSummary, error) {
	events, err := console.LatestEvents(ctx, orgGUID)
	if err != nil {
		return nil, err
	}

	return &EventSummary{
		Total:  events.Total,
		Events: events.Events,
	}, nil
}
