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

// Package enumx converts between enumerated values and their names through
// lookup maps that are built once per type and then read lock-free.
//
// Go has no enumeration reflection: the constants of a type cannot be listed
// at run time. enumx therefore works from descriptors, ordered lists of
// (value, name) members produced by cmd/enumgen or written by hand. A named
// type whose underlying kind is an integer or string kind and which has a
// valid descriptor is an "enumerated type" here.
//
// # Descriptors
//
// A type gets its descriptor in one of two ways, tried in this order:
//
//  1. The type implements apis.Describer. enumgen emits
//
//     func (Color) EnumDescriptor() apis.Descriptor { return _ColorDescriptor }
//
//  2. The descriptor was registered with Register or MustRegister, usually
//     from an init function (enumgen -register). This also works for types
//     declared in packages you do not own.
//
// Descriptors are validated against Config: non-empty and unique names, values
// of the right type, an enumerable kind, and optionally no aliases.
//
// # One-shot maps
//
//	byValue, ok := enumx.TryCreateEnumToNameMap[Color]()
//	byName, ok := enumx.TryCreateNameToEnumMap[Color](normalize.Fold)
//
// These build fresh maps on every call and report false for types that are
// not enumerated types. Reverse maps insert members in declaration order, so
// names that collide after normalization keep the last declared member.
// Forward maps keep the first declared name when several names share a value.
//
// # Cached lookups
//
//	var colors enumx.Manager[Color]
//	c, ok := colors.TryParse("Green")
//	s, ok := colors.TryGetString(c)
//
// The first lookup for a type builds both maps exactly once, even under
// concurrent first use, and later lookups are plain map reads. Cached parsing
// is exact; use ParseFold or a cache.NewNormalized cache for relaxed matching.
// Types that are not enumerated types are cached too, with empty maps.
//
// # Text encoding
//
// Format, Parse, ParseFold, MustParse, MarshalText and UnmarshalText give a
// type String/TextMarshaler support in one line each; see
// examples/cache/strategy.
//
// # Concurrency model
//
// Registration takes a short mutex. Each cache entry is published through a
// sync.Once, so no reader ever sees a partially built map. Cache entries are
// never evicted; their number is bounded by the number of enumerated types in
// the program.
//
// # Custom setups
//
// The global state uses config.DefaultConfig. Programs that need a different
// Config, an isolated registry or extra strategies compose the packages
// directly:
//
//	cfg := config.NewConfig(config.WithAllowAliases(false))
//	b := builder.New()
//	reg := b.BuildRegistry(cfg, nil)
//	c := cache.New(b.BuildResolver(cfg, reg), cfg)
//	v, ok := cache.TryParse[Color](c, "Red")
package enumx
