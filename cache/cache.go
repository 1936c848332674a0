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

// Package cache memoizes the lookup maps of enumerated types.
//
// A Cache holds at most one entry per type. The entry is created on the first
// lookup for its type, built exactly once with mapping.Both, and kept for the
// lifetime of the Cache. Concurrent first lookups block until the build is
// done; afterwards every lookup is a plain read of immutable maps.
//
// A type without a valid descriptor still gets an entry, with empty maps, so
// every lookup for it reports "not found" without retrying the build.
package cache

import (
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/mapping"
)

// Cache is a type-keyed, build-once store of forward and reverse maps.
// The zero value is not usable; construct with New or NewNormalized.
type Cache struct {
	// res finds descriptors.
	res apis.Resolver
	// cfg is passed to res and to descriptor validation.
	cfg apis.Config
	// normalizer is applied to names when building and parsing; nil is identity.
	normalizer apis.Normalizer
	// entries maps reflect.Type to *entry[T].
	entries sync.Map
	// builds counts completed builds.
	builds atomic.Int64
}

// New returns a Cache that matches names exactly.
func New(res apis.Resolver, cfg apis.Config) *Cache {
	return &Cache{res: res, cfg: cfg}
}

// NewNormalized returns a Cache whose reverse maps are keyed by
// normalizer(name) and whose TryParse normalizes its input the same way.
// Name collisions follow mapping.Reverse: the last declared member wins.
func NewNormalized(res apis.Resolver, cfg apis.Config, normalizer apis.Normalizer) *Cache {
	return &Cache{res: res, cfg: cfg, normalizer: normalizer}
}

// summarizer is the type-erased view of an entry used by Entries.
type summarizer interface {
	summary() (apis.CacheEntry, bool)
}

// entry is the per-type cache slot. Fields are written once inside once.Do
// and only read after it returns.
type entry[T comparable] struct {
	once    sync.Once
	ready   atomic.Bool
	typ     reflect.Type
	valid   bool
	forward map[T]string
	reverse map[string]T
}

func (e *entry[T]) summary() (apis.CacheEntry, bool) {
	if !e.ready.Load() {
		return apis.CacheEntry{}, false
	}
	return apis.CacheEntry{Type: e.typ, Valid: e.valid, Len: len(e.reverse)}, true
}

// load returns the Ready entry for T, building it on first use.
func load[T comparable](c *Cache) *entry[T] {
	t := reflect.TypeFor[T]()
	v, ok := c.entries.Load(t)
	if !ok {
		v, _ = c.entries.LoadOrStore(t, &entry[T]{typ: t})
	}
	e := v.(*entry[T])
	e.once.Do(func() { build(c, e) })
	return e
}

func build[T comparable](c *Cache, e *entry[T]) {
	defer e.ready.Store(true)
	c.builds.Add(1)

	fwd, rev, ok := mapping.Both[T](c.res, c.cfg, c.normalizer)
	if !ok {
		e.forward = map[T]string{}
		e.reverse = map[string]T{}
		return
	}
	e.valid = true
	e.forward = fwd
	e.reverse = rev
}

// Ensure builds the entry for T if needed and reports whether T is a valid
// enumerated type. Repeated calls never rebuild.
func Ensure[T comparable](c *Cache) bool {
	return load[T](c).valid
}

// TryParse returns the member declared under name. For a NewNormalized cache
// the name is normalized first.
func TryParse[T comparable](c *Cache, name string) (T, bool) {
	e := load[T](c)
	if c.normalizer != nil {
		name = c.normalizer(name)
	}
	v, ok := e.reverse[name]
	return v, ok
}

// TryGetString returns the canonical name of v. Values outside the declared
// member set are reported as not found.
func TryGetString[T comparable](c *Cache, v T) (string, bool) {
	name, ok := load[T](c).forward[v]
	return name, ok
}

// Builds returns how many entries have been built. Each type is built at
// most once, so this never exceeds the number of distinct types looked up.
func (c *Cache) Builds() int64 {
	return c.builds.Load()
}

// Entries returns a snapshot of the Ready entries (order is unspecified).
func (c *Cache) Entries() []apis.CacheEntry {
	var out []apis.CacheEntry
	c.entries.Range(func(_, value any) bool {
		if s, ok := value.(summarizer).summary(); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}
