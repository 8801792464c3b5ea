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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Options control what the client logs.
type Options struct {
	// LogRequests logs method, path, status and duration of every call.
	LogRequests bool
	// LogResponses logs response bodies.
	LogResponses bool
	// LoggedBodyLength truncates logged bodies, 0 logs them whole.
	LoggedBodyLength int
}

// Client is a JSON client for one remote API. Every request carries a fresh
// W3C trace context so a failure can be located in the platform logs.
type Client struct {
	baseURL string
	client  *http.Client
	log     logrus.FieldLogger
	options Options
}

// New returns a client rooted at baseURL. The http.Client is expected to
// carry authentication, see NewAuthenticatedClient.
func New(baseURL string, client *http.Client, log logrus.FieldLogger, options Options) *Client {
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		log:     log,
		options: options,
	}
}

// BaseURL returns the root all paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) truncate(body []byte) string {
	if c.options.LoggedBodyLength > 0 && len(body) > c.options.LoggedBodyLength {
		return string(body[:c.options.LoggedBodyLength]) + "...[truncated]"
	}

	return string(body)
}

// logError logs a failed exchange with its trace context.
func (c *Client) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"duration": duration,
		"traceID":  extractTraceID(traceParent),
	}).WithError(err).Error(context)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *Client) logUnexpectedStatus(method, path string, status int, body []byte, traceParent string) {
	c.log.WithFields(logrus.Fields{
		"method":  method,
		"path":    path,
		"status":  status,
		"body":    c.truncate(body),
		"traceID": extractTraceID(traceParent),
	}).Error("unexpected status")
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

// Do issues a request and decodes a JSON response into out, if out is not nil.
// body, if not nil, is encoded as JSON. Any status outside 2xx is returned as
// an *UnexpectedResponseError, failures to get a response at all are returned
// wrapped as they are.
//
//nolint:cyclop
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=platform-tests")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return fmt.Errorf("reading response body: %w", err)
	}

	if c.options.LogRequests {
		c.log.WithFields(logrus.Fields{
			"method":   method,
			"path":     path,
			"status":   resp.StatusCode,
			"duration": duration,
			"traceID":  extractTraceID(traceParent),
		}).Info("request")
	}

	if c.options.LogResponses && len(respBody) > 0 {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Infof("response body: %s", c.truncate(respBody))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logUnexpectedStatus(method, path, resp.StatusCode, respBody, traceParent)

		return &UnexpectedResponseError{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Body:    string(respBody),
			TraceID: extractTraceID(traceParent),
		}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshaling %s %s response: %w", method, path, err)
	}

	return nil
}

// Get is shorthand for a GET decoded into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}
