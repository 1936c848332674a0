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

// Package normalize provides ready-made name normalizers for reverse maps.
//
// Every normalizer is a pure function and safe for concurrent use. Only Identity
// is injective; the others can make distinct member names collide, in which
// case the last declared member wins (see mapping.Reverse).
package normalize

import (
	"strings"

	"github.com/stoewer/go-strcase"
	"golang.org/x/text/cases"

	"dirpx.dev/enumx/apis"
)

// Identity returns s unchanged.
func Identity(s string) string { return s }

// Upper maps s to upper case.
func Upper(s string) string { return strings.ToUpper(s) }

// Lower maps s to lower case.
func Lower(s string) string { return strings.ToLower(s) }

// Fold applies Unicode case folding, the right choice for case-insensitive
// matching ("Straße" and "STRASSE" fold alike).
func Fold(s string) string {
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Fold().String(s)
}

// TrimSpace removes leading and trailing white space.
func TrimSpace(s string) string { return strings.TrimSpace(s) }

// Snake maps s to snake_case ("LeastRecentlyUsed" -> "least_recently_used").
func Snake(s string) string { return strcase.SnakeCase(s) }

// Kebab maps s to kebab-case ("LeastRecentlyUsed" -> "least-recently-used").
func Kebab(s string) string { return strcase.KebabCase(s) }

// LowerCamel maps s to lowerCamelCase ("http_server" -> "httpServer").
func LowerCamel(s string) string { return strcase.LowerCamelCase(s) }

// Chain composes normalizers left to right. Nil entries are skipped and an
// empty chain is Identity.
func Chain(ns ...apis.Normalizer) apis.Normalizer {
	out := make([]apis.Normalizer, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	switch len(out) {
	case 0:
		return Identity
	case 1:
		return out[0]
	}
	return func(s string) string {
		for _, n := range out {
			s = n(s)
		}
		return s
	}
}
