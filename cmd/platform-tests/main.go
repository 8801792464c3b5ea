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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trustedanalytics/platform-tests/pkg/config"
	"github.com/trustedanalytics/platform-tests/pkg/constants"
	"github.com/trustedanalytics/platform-tests/pkg/options"
)

//nolint:gochecknoglobals
var (
	opts options.Options
	log  = logrus.New()
)

//nolint:gochecknoglobals
var rootCmd = &cobra.Command{
	Use:   "platform-tests",
	Short: "Acceptance tooling for a Cloud Foundry based platform",
	Long: `platform-tests checks an environment is up, sweeps organizations left
behind by test runs and lists recorded runs. The suites themselves run with
ginkgo under test/api/suites.

The environment is described by environment variables, or a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return opts.SetupLogging(log)
	},
}

//nolint:gochecknoglobals
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(constants.VersionString())
	},
}

func init() {
	opts.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies its logging switches.
func loadConfig() (*config.TestConfig, error) {
	cfg, err := config.LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if cfg.DebugLogging {
		log.SetLevel(cfg.LogLevel())
	}

	return cfg, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("command failed")
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
