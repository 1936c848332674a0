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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNilDescriptor is returned when a nil descriptor is provided.
	ErrNilDescriptor = errors.New("enumx(registry): nil descriptor provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different member list.
	ErrConflictingRegistration = errors.New("enumx(registry): conflicting type registration")
)

// New constructs a Registry that validates descriptors according to cfg.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxMembers <= 0 {
		cfg.MaxMembers = config.DefaultMaxMembers
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for descriptor validation.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to its descriptor.
	m sync.Map // map[reflect.Type]apis.Descriptor
	// count tracks the number of registered entries.
	count int
}

// Register validates d and stores it under d.Type().
// It is idempotent for an identical member list.
func (r *registry) Register(d apis.Descriptor) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if err := uref.Validate(d, r.cfg); err != nil {
		return err
	}
	t := d.Type()

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(t); ok {
		return checkSame(old.(apis.Descriptor), d)
	}

	// Write path: guard with a mutex to keep counter consistent.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(t); ok {
		return checkSame(old.(apis.Descriptor), d)
	}

	r.m.Store(t, d)
	r.count++
	return nil
}

// Lookup returns the descriptor registered for t.
func (r *registry) Lookup(t reflect.Type) (apis.Descriptor, bool) {
	if t == nil {
		return nil, false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(apis.Descriptor), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:       key.(reflect.Type),
			Descriptor: value.(apis.Descriptor),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// checkSame returns nil if a and b declare the same members in the same order.
func checkSame(a, b apis.Descriptor) error {
	if a == b {
		return nil
	}
	if a.Len() != b.Len() {
		return ErrConflictingRegistration
	}
	for i := range a.Len() {
		if a.Name(i) != b.Name(i) || a.Value(i) != b.Value(i) {
			return ErrConflictingRegistration
		}
	}
	return nil
}
