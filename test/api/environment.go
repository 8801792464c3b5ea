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

	"github.com/onsi/ginkgo/v2"
	"github.com/sirupsen/logrus"

	"github.com/trustedanalytics/platform-tests/pkg/config"
	"github.com/trustedanalytics/platform-tests/pkg/environment"
)

// NewLogger returns a logger writing to GinkgoWriter.
func NewLogger(cfg *config.TestConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(ginkgo.GinkgoWriter)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	if cfg != nil {
		log.SetLevel(cfg.LogLevel())
	}

	return log
}

// LoadEnvironment loads the configuration and logs in to the environment.
func LoadEnvironment(ctx context.Context) (*environment.Environment, error) {
	cfg, err := config.LoadTestConfig()
	if err != nil {
		return nil, err
	}

	return environment.New(ctx, cfg, NewLogger(cfg))
}
