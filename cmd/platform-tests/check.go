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
	"github.com/spf13/cobra"

	"github.com/trustedanalytics/platform-tests/pkg/environment"
)

//nolint:gochecknoglobals
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the console and Cloud Foundry API answer",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env, err := environment.New(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	if err := env.CheckViability(cmd.Context()); err != nil {
		return err
	}

	log.WithField("environment", cfg.Domain).Info("environment is viable")

	return nil
}
