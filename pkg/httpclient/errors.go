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

package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// GatewayTimeoutMessage is what the reverse proxy in front of the control
// plane puts in the body of a 504.
const GatewayTimeoutMessage = "Gateway Timeout"

// UnexpectedResponseError is returned when the remote answered, but not with
// the status we asked for.
type UnexpectedResponseError struct {
	Method  string
	Path    string
	Status  int
	Body    string
	TraceID string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Status, e.Body, e.TraceID)
}

// IsGatewayTimeout tells whether the proxy gave up waiting on the backend.
// The backend operation may still complete.
func (e *UnexpectedResponseError) IsGatewayTimeout() bool {
	return e.Status == http.StatusGatewayTimeout && strings.Contains(e.Body, GatewayTimeoutMessage)
}

// FailureKind tags the outcome of a remote call so callers branch on it
// rather than on error strings.
type FailureKind int

const (
	// FailureNone means the call succeeded.
	FailureNone FailureKind = iota
	// FailureTransport means no response was received.
	FailureTransport
	// FailureRejected means the remote definitively answered with an error.
	FailureRejected
	// FailureTransientGatewayTimeout means a gateway timed out, the outcome
	// of the operation on the backend is unknown.
	FailureTransientGatewayTimeout
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTransport:
		return "transport"
	case FailureRejected:
		return "rejected"
	case FailureTransientGatewayTimeout:
		return "transient-gateway-timeout"
	}

	return "unknown"
}

// Classify maps an error returned by Client.Do to its kind.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	var unexpected *UnexpectedResponseError
	if !errors.As(err, &unexpected) {
		return FailureTransport
	}

	if unexpected.IsGatewayTimeout() {
		return FailureTransientGatewayTimeout
	}

	return FailureRejected
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var unexpected *UnexpectedResponseError
	if errors.As(err, &unexpected) {
		return unexpected.Status
	}

	return 0
}
