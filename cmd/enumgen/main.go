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

// Command enumgen generates enumx descriptors for named integer and string
// constant types.
//
// Usage:
//
//	enumgen -type=Strategy[,Other] [-output=file] [-trimprefix=P] [-linecomment] [-register] [package]
//	enumgen -config=enumgen.yaml
//
// Typically invoked from a go:generate directive:
//
//	//go:generate go run dirpx.dev/enumx/cmd/enumgen -type=Strategy
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/enumx/internal/gen"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("enumgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		typeNames   = fs.String("type", "", "comma-separated list of type names; required unless -config is set")
		output      = fs.String("output", "", "output file name; default <dir>/<type>_enumx.go")
		trimPrefix  = fs.String("trimprefix", "", "trim this prefix from member names")
		lineComment = fs.Bool("linecomment", false, "use the trailing line comment as the member name")
		register    = fs.Bool("register", false, "emit an init function registering the enums instead of EnumDescriptor methods")
		configPath  = fs.String("config", "", "YAML file listing generation jobs")
		verbose     = fs.Bool("v", false, "verbose logging")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of enumgen:\n")
		fmt.Fprintf(stderr, "\tenumgen -type=T [flags] [package]\n")
		fmt.Fprintf(stderr, "\tenumgen -config=enumgen.yaml\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	cmdline := strings.Join(args, " ")

	if *configPath != "" {
		f, err := gen.LoadFile(*configPath)
		if err != nil {
			logger.Error("config", "error", err)
			return 1
		}
		dir := filepath.Dir(*configPath)
		for i, job := range f.Jobs {
			if _, err := gen.Run(dir, job, cmdline, logger.With("job", i)); err != nil {
				logger.Error("generate", "job", i, "error", err)
				return 1
			}
		}
		return 0
	}

	if *typeNames == "" {
		fs.Usage()
		return 2
	}

	pattern := "."
	switch fs.NArg() {
	case 0:
	case 1:
		pattern = fs.Arg(0)
	default:
		logger.Error("only one package may be given", "args", fs.Args())
		return 2
	}

	job := gen.Job{
		Package:     pattern,
		Types:       strings.Split(*typeNames, ","),
		Output:      *output,
		TrimPrefix:  *trimPrefix,
		LineComment: *lineComment,
		Register:    *register,
	}
	if _, err := gen.Run(".", job, cmdline, logger); err != nil {
		logger.Error("generate", "error", err)
		return 1
	}
	return 0
}
