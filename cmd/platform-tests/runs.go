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
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trustedanalytics/platform-tests/pkg/constants"
	"github.com/trustedanalytics/platform-tests/pkg/environment"
	"github.com/trustedanalytics/platform-tests/pkg/results/gormstore"
)

var errNoResults = errors.New("no result database configured, set RESULTS_DB_DRIVER and RESULTS_DB_DSN")

//nolint:gochecknoglobals
var runsLimit int

//nolint:gochecknoglobals
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded test runs, newest first",
	RunE:  runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Number of runs to list, 0 for all")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !cfg.ResultsEnabled() {
		return errNoResults
	}

	store, err := environment.OpenResults(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	defer func() {
		if err := store.Stop(); err != nil {
			log.WithError(err).Warn("failed to close result store")
		}
	}()

	rows, err := store.List(cmd.Context(), constants.TestRunCollection)
	if err != nil {
		return err
	}

	return writeRuns(cmd.OutOrStdout(), rows, runsLimit)
}

func field(document map[string]any, key string) string {
	value, ok := document[key]
	if !ok || value == nil {
		return "-"
	}

	return fmt.Sprint(value)
}

func writeRuns(out io.Writer, rows []gormstore.StoredDocument, limit int) error {
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tSUITE\tENVIRONMENT\tSTATUS\tTESTS\tSTARTED\tENDED")

	for i := range rows {
		document, err := rows[i].Decode()
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rows[i].ID,
			field(document, "suite"),
			field(document, "environment"),
			field(document, "status"),
			field(document, "test_count"),
			field(document, "start_date"),
			field(document, "end_date"),
		)
	}

	return w.Flush()
}
