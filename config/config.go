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

package config

import (
	"dirpx.dev/enumx/apis"
)

const (
	// DefaultStrictKinds represents the default for StrictKinds.
	// When true, only integer and string kinds can be enumerated types.
	DefaultStrictKinds = true
	// DefaultAllowAliases represents the default for AllowAliases.
	// When true, several names may be declared for one value.
	DefaultAllowAliases = true
	// DefaultMaxMembers represents the default for MaxMembers.
	// Far above any hand-written or generated enumeration.
	DefaultMaxMembers = 1 << 16
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxMembers is valid.
	if cfg.MaxMembers <= 0 {
		cfg.MaxMembers = DefaultMaxMembers
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		StrictKinds:  DefaultStrictKinds,
		AllowAliases: DefaultAllowAliases,
		MaxMembers:   DefaultMaxMembers,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStrictKinds sets the StrictKinds option.
func WithStrictKinds(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictKinds = strict
	}
}

// WithAllowAliases sets the AllowAliases option.
func WithAllowAliases(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowAliases = allow
	}
}

// WithMaxMembers sets the MaxMembers option.
// A non-positive value resets to the default.
func WithMaxMembers(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxMembers = DefaultMaxMembers
			return
		}
		c.MaxMembers = max
	}
}
