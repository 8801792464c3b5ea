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

// Package retry handles resources the platform creates asynchronously.
//
// A create call can time out at the gateway in front of the control plane
// while the backend goes on to create the resource. When, and only when, that
// happens the resource is looked for by name in the scope it was created in,
// until it shows up or the attempt budget is exhausted. Any other failure is
// a genuine answer from the platform and is returned as is.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/httpclient"

	"k8s.io/utils/clock"
)

const (
	// DefaultAttempts is the number of times the scope is listed.
	DefaultAttempts = 100

	// DefaultInterval is the delay between listings.
	DefaultInterval = 3 * time.Second
)

// ErrNotCreated is returned when the resource never became visible.
var ErrNotCreated = errors.New("resource was not created in time")

// Options configure the visibility poll.
type Options struct {
	// Attempts defaults to DefaultAttempts.
	Attempts int
	// Interval defaults to DefaultInterval.
	Interval time.Duration
	// Clock defaults to the wall clock.
	Clock clock.Clock
	// Log defaults to the standard logrus logger.
	Log logrus.FieldLogger
}

func (o *Options) withDefaults() Options {
	out := *o

	if out.Attempts <= 0 {
		out.Attempts = DefaultAttempts
	}

	if out.Interval <= 0 {
		out.Interval = DefaultInterval
	}

	if out.Clock == nil {
		out.Clock = clock.RealClock{}
	}

	if out.Log == nil {
		out.Log = logrus.StandardLogger()
	}

	return out
}

// clockTimer is a backoff.Timer that waits on a clock, so a fake clock in
// tests makes the whole poll run instantly.
type clockTimer struct {
	clock clock.Clock
	c     chan time.Time
}

func newClockTimer(c clock.Clock) *clockTimer {
	return &clockTimer{
		clock: c,
		c:     make(chan time.Time, 1),
	}
}

func (t *clockTimer) Start(d time.Duration) {
	t.clock.Sleep(d)
	t.c <- t.clock.Now()
}

func (t *clockTimer) C() <-chan time.Time {
	return t.c
}

func (t *clockTimer) Stop() {}

// ListFunc lists the scope a resource was created in.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// AwaitVisible lists the scope until an item called name appears and returns
// it. Names are assumed to be unique within the scope. A failure to list is
// returned straight away.
func AwaitVisible[T any](ctx context.Context, options Options, name string, list ListFunc[T], nameOf func(T) string) (T, error) {
	o := options.withDefaults()

	log := o.Log.WithField("resource", name)

	attempt := 0

	operation := func() (T, error) {
		var zero T

		attempt++

		items, err := list(ctx)
		if err != nil {
			return zero, backoff.Permanent(err)
		}

		for _, item := range items {
			if nameOf(item) == name {
				log.WithField("attempt", attempt).Info("resource is visible")

				return item, nil
			}
		}

		return zero, fmt.Errorf("%w: %q not visible after %d attempts", ErrNotCreated, name, attempt)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(o.Interval), uint64(o.Attempts-1)), ctx)

	notify := func(_ error, next time.Duration) {
		log.WithField("attempt", attempt).Debugf("not visible yet, retrying in %s", next)
	}

	return backoff.RetryNotifyWithTimerAndData(operation, policy, notify, newClockTimer(o.Clock))
}

// CreateWithEventualVisibility runs create. If the gateway timed out on it,
// the resource is waited for with AwaitVisible instead of trusting the
// response. Every other failure is returned unchanged without listing.
func CreateWithEventualVisibility[T any](ctx context.Context, options Options, name string, create func(ctx context.Context) (T, error), list ListFunc[T], nameOf func(T) string) (T, error) {
	created, err := create(ctx)

	switch httpclient.Classify(err) {
	case httpclient.FailureNone:
		return created, nil
	case httpclient.FailureTransientGatewayTimeout:
		o := options.withDefaults()
		o.Log.WithField("resource", name).Warn("gateway timed out on create, waiting for the resource to appear")

		return AwaitVisible(ctx, o, name, list, nameOf)
	case httpclient.FailureTransport, httpclient.FailureRejected:
	}

	return created, err
}
