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
	"log/slog"
	"path/filepath"
	"strings"
)

// OutputName returns the default output file name for typeName.
func OutputName(typeName string) string {
	return strings.ToLower(typeName) + "_enumx.go"
}

// Run loads job.Package relative to dir, generates the descriptors and
// writes them. Relative outputs are resolved against dir. It returns the
// path written.
func Run(dir string, job Job, args string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	loadDir, pattern := dir, job.Package
	if pattern == "" {
		pattern = "."
	}
	// Directory patterns load from the package's own directory so that
	// its enclosing module is used.
	if isDirPattern(pattern) {
		if filepath.IsAbs(pattern) {
			loadDir = pattern
		} else {
			loadDir = filepath.Join(dir, pattern)
		}
		pattern = "."
	}

	logger.Debug("loading package", "dir", loadDir, "pattern", pattern, "types", job.Types)
	pkg, err := Load(loadDir, pattern, job.Types, LoadOptions{
		TrimPrefix:  job.TrimPrefix,
		LineComment: job.LineComment,
	})
	if err != nil {
		return "", err
	}
	for _, e := range pkg.Enums {
		logger.Debug("found enum", "type", e.TypeName, "members", len(e.Constants))
	}

	src, err := Generate(pkg, GenerateOptions{Args: args, Register: job.Register})
	if err != nil {
		return "", err
	}

	out := job.Output
	switch {
	case out == "":
		out = filepath.Join(pkg.Dir, OutputName(job.Types[0]))
	case !filepath.IsAbs(out):
		out = filepath.Join(dir, out)
	}

	if err := WriteFile(out, src); err != nil {
		return "", err
	}
	logger.Info("generated", "package", pkg.Path, "output", out)
	return out, nil
}

func isDirPattern(p string) bool {
	if strings.Contains(p, "...") {
		return false
	}
	return filepath.IsAbs(p) || p == "." || p == ".." ||
		strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../")
}
