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

package results

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Component is a deployed platform application and its version.
type Component struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

type componentsFile struct {
	Release    string      `yaml:"release"`
	Components []Component `yaml:"components"`
}

// LoadComponents reads the release name and component list of an
// environment from a YAML file of the form:
//
//	release: "0.7.1"
//	components:
//	- name: console
//	  version: "0.7.12"
func LoadComponents(path string) (string, []Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading components file: %w", err)
	}

	var file componentsFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", nil, fmt.Errorf("parsing components file %s: %w", path, err)
	}

	for i, c := range file.Components {
		if c.Name == "" {
			return "", nil, fmt.Errorf("parsing components file %s: component %d has no name", path, i)
		}
	}

	return file.Release, file.Components, nil
}

func componentsDocument(components []Component) []map[string]string {
	out := make([]map[string]string, len(components))

	for i, c := range components {
		out[i] = map[string]string{
			"name":    c.Name,
			"version": c.Version,
		}
	}

	return out
}
