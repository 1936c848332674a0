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

// Package mapping builds the forward (member -> name) and reverse
// (name -> member) lookup maps of an enumerated type.
//
// The builders are stateless and allocate fresh maps on every call. Callers
// that look names up repeatedly should build once and keep the result, or use
// package cache, which does exactly that per type.
package mapping

import (
	"reflect"

	"dirpx.dev/enumx/apis"
	uref "dirpx.dev/enumx/utils/reflect"
)

// Forward builds the member -> name map of T.
//
// It returns (nil, false) if res knows no valid descriptor for T. Otherwise
// the map holds one entry per distinct declared value; when several names are
// declared for one value, the first declared name is kept.
func Forward[T comparable](res apis.Resolver, cfg apis.Config) (map[T]string, bool) {
	d, ok := describe[T](res, cfg)
	if !ok {
		return nil, false
	}
	return forward[T](d), true
}

// Reverse builds the normalized name -> member map of T. A nil normalizer is
// identity.
//
// Members are inserted in declaration order and a later member overwrites an
// earlier one under the same key. If the normalizer maps several names to one
// key, the last declared member wins and the map is smaller than the member
// count; callers that need every member reachable must use a normalizer that
// is injective over the declared names.
//
// It returns (nil, false) if res knows no valid descriptor for T.
func Reverse[T comparable](res apis.Resolver, cfg apis.Config, normalizer apis.Normalizer) (map[string]T, bool) {
	d, ok := describe[T](res, cfg)
	if !ok {
		return nil, false
	}
	return reverse[T](d, normalizer), true
}

// Both builds the Forward and Reverse maps of T from a single descriptor
// lookup.
func Both[T comparable](res apis.Resolver, cfg apis.Config, normalizer apis.Normalizer) (map[T]string, map[string]T, bool) {
	d, ok := describe[T](res, cfg)
	if !ok {
		return nil, nil, false
	}
	return forward[T](d), reverse[T](d, normalizer), true
}

func forward[T comparable](d apis.Descriptor) map[T]string {
	out := make(map[T]string, d.Len())
	for i := range d.Len() {
		v := d.Value(i).(T)
		if _, seen := out[v]; !seen {
			out[v] = d.Name(i)
		}
	}
	return out
}

func reverse[T comparable](d apis.Descriptor, normalizer apis.Normalizer) map[string]T {
	out := make(map[string]T, d.Len())
	for i := range d.Len() {
		key := d.Name(i)
		if normalizer != nil {
			key = normalizer(key)
		}
		out[key] = d.Value(i).(T)
	}
	return out
}

// describe resolves and validates the descriptor of T. Resolvers may chain
// custom strategies, so the descriptor is checked here regardless of where
// it came from.
func describe[T comparable](res apis.Resolver, cfg apis.Config) (apis.Descriptor, bool) {
	if res == nil {
		return nil, false
	}
	t := reflect.TypeFor[T]()
	d, ok := res.Describe(t, cfg)
	if !ok || d == nil || d.Type() != t {
		return nil, false
	}
	if err := uref.Validate(d, cfg); err != nil {
		return nil, false
	}
	return d, true
}
