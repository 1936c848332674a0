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

package apis

import "reflect"

// Registry provides explicit descriptors for types that do not implement
// Describer themselves. Keep it minimal so implementations can be
// sync.Map-backed.
type Registry interface {
	// Register stores d under d.Type(). Implementations should be idempotent
	// for an identical member list and reject conflicting ones.
	Register(d Descriptor) error
	// Lookup returns the descriptor registered for t, if any.
	Lookup(t reflect.Type) (Descriptor, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
}

// Entry is a single (type, descriptor) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Descriptor is the associated descriptor.
	Descriptor Descriptor
}
