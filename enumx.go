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

package enumx

import (
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/cache"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/mapping"
	"dirpx.dev/enumx/normalize"
)

// std is the process-wide state. It is assembled once and never replaced,
// so cache entries live as long as the process.
var std = newState(config.DefaultConfig())

// state bundles the default configuration, registry, resolver and caches.
type state struct {
	// cfg is the global enumx configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// exact is the identity-normalized cache behind Manager and TryParse.
	exact *cache.Cache
	// folded is the case-folding cache behind ParseFold and UnmarshalText.
	folded *cache.Cache
}

func newState(cfg apis.Config) *state {
	b := builder.New()
	reg := b.BuildRegistry(cfg, nil)
	res := b.BuildResolver(cfg, reg)
	return &state{
		cfg:    cfg,
		reg:    reg,
		res:    res,
		exact:  cache.New(res, cfg),
		folded: cache.NewNormalized(res, cfg, normalize.Chain(normalize.TrimSpace, normalize.Fold)),
	}
}

// Config returns the global enumx configuration.
func Config() apis.Config {
	return std.cfg
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return std.reg
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return std.res
}

// Cache returns the global exact-match cache, mainly for diagnostics
// (Builds, Entries).
func Cache() *cache.Cache {
	return std.exact
}

// Register adds the declared members of T to the global registry.
// Registration must happen before the first lookup of T, typically from an
// init function; a type already looked up keeps the maps it was built with.
func Register[T comparable](members ...apis.Member[T]) error {
	return std.reg.Register(apis.NewTable(members...))
}

// MustRegister is like Register but panics on error. Generated code uses it.
func MustRegister[T comparable](members ...apis.Member[T]) {
	if err := Register(members...); err != nil {
		panic(err)
	}
}

// TryCreateEnumToNameMap builds a fresh member -> name map of T.
// It returns (nil, false) if T is not an enumerated type.
//
// Every call resolves the descriptor and allocates a new map; call it once
// and keep the result, or use Manager.
func TryCreateEnumToNameMap[T comparable]() (map[T]string, bool) {
	return mapping.Forward[T](std.res, std.cfg)
}

// TryCreateNameToEnumMap builds a fresh normalized-name -> member map of T.
// A nil normalizer is identity. Names that collide after normalization keep
// the last declared member:
//
//	// type Similar int; members One=1 "One", Two=2 "one"
//	m, _ := TryCreateNameToEnumMap[Similar](normalize.Upper)
//	// m == map[string]Similar{"ONE": 2}
//
// It returns (nil, false) if T is not an enumerated type.
func TryCreateNameToEnumMap[T comparable](normalizer apis.Normalizer) (map[string]T, bool) {
	return mapping.Reverse[T](std.res, std.cfg, normalizer)
}

// Initialize builds the cached maps of T if needed and reports whether T is
// an enumerated type. Lookups initialize implicitly; calling Initialize up
// front only moves the one-time cost out of the first request.
func Initialize[T comparable]() bool {
	return cache.Ensure[T](std.exact)
}

// TryParse returns the member of T declared under name (exact match).
func TryParse[T comparable](name string) (T, bool) {
	return cache.TryParse[T](std.exact, name)
}

// TryGetString returns the declared name of v. Values that were never
// declared, e.g. T(1000), are reported as not found.
func TryGetString[T comparable](v T) (string, bool) {
	return cache.TryGetString(std.exact, v)
}

// Manager is a zero-size handle on the cached maps of T:
//
//	var results enumx.Manager[ResultState]
//	if s, ok := results.TryGetString(state); ok { ... }
type Manager[T comparable] struct{}

// Initialize is Initialize[T].
func (Manager[T]) Initialize() bool { return Initialize[T]() }

// TryParse is TryParse[T].
func (Manager[T]) TryParse(name string) (T, bool) { return TryParse[T](name) }

// TryGetString is TryGetString[T].
func (Manager[T]) TryGetString(v T) (string, bool) { return TryGetString(v) }
