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

package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Options control logging of the command line tool.
type Options struct {
	LogLevel string
	LogJSON  bool
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.LogLevel, "log-level", "info", "Log level ("+strings.Join(levels(), ", ")+")")
	f.BoolVar(&o.LogJSON, "log-json", false, "Log JSON objects rather than text")
}

// SetupLogging applies the options to log.
func (o *Options) SetupLogging(log *logrus.Logger) error {
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.LogLevel, err)
	}

	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	if o.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}

func levels() []string {
	out := make([]string, 0, len(logrus.AllLevels))

	for _, level := range logrus.AllLevels {
		out = append(out, level.String())
	}

	return out
}
