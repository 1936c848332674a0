/*
   Copyright 2025 The DIRPX Authors.

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

package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoJobs is returned when a config file declares no jobs.
var ErrNoJobs = errors.New("enumx(gen): config declares no jobs")

// File is the YAML config consumed by enumgen -config.
type File struct {
	Version string `yaml:"version,omitempty"`
	Jobs    []Job  `yaml:"jobs"`
}

// Job is one generation run.
type Job struct {
	// Package is a go/packages pattern, "." when empty.
	Package string `yaml:"package,omitempty"`
	// Types lists the enum type names to generate for.
	Types []string `yaml:"types"`
	// Output is the file to write. Defaults to <dir>/<type>_enumx.go.
	Output      string `yaml:"output,omitempty"`
	TrimPrefix  string `yaml:"trimprefix,omitempty"`
	LineComment bool   `yaml:"linecomment,omitempty"`
	Register    bool   `yaml:"register,omitempty"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if len(f.Jobs) == 0 {
		return nil, ErrNoJobs
	}
	for i, j := range f.Jobs {
		if len(j.Types) == 0 {
			return nil, fmt.Errorf("job %d: %w", i, ErrNoTypes)
		}
	}
	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Jobs {
		j := &f.Jobs[i]
		if j.Package == "" {
			j.Package = "."
		}
		for k, t := range j.Types {
			j.Types[k] = strings.TrimSpace(t)
		}
	}
}
