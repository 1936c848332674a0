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

import (
	"fmt"
	"reflect"
)

// Member is one declared value of an enumerated type together with its
// canonical name.
type Member[T comparable] struct {
	// Value is the member value.
	Value T
	// Name is the declared identifier (or its configured override).
	Name string
}

// Descriptor lists the declared members of one enumerated type in declaration
// order. It is type-erased so registries and diagnostics can hold descriptors
// of different types side by side.
//
// A published Descriptor must never change.
type Descriptor interface {
	// Type returns the enumerated type the descriptor belongs to.
	Type() reflect.Type
	// Len returns the number of declared members.
	Len() int
	// Name returns the canonical name of the i-th declared member.
	Name(i int) string
	// Value returns the i-th declared member value boxed as any.
	Value(i int) any
}

// Describer is implemented by enumerated types that carry their own
// descriptor, typically through a generated EnumDescriptor method. It must
// work on the zero value of the type.
type Describer interface {
	EnumDescriptor() Descriptor
}

// Normalizer transforms a member name into a lookup key. A nil Normalizer
// means identity.
type Normalizer func(string) string

// Table is the standard Descriptor implementation backed by a member slice.
type Table[T comparable] struct {
	typ     reflect.Type
	members []Member[T]
}

// Ensure Table implements Descriptor.
var _ Descriptor = (*Table[int])(nil)

// NewTable returns a Table for T holding a copy of members.
func NewTable[T comparable](members ...Member[T]) *Table[T] {
	cp := make([]Member[T], len(members))
	copy(cp, members)
	return &Table[T]{typ: reflect.TypeFor[T](), members: cp}
}

// Type returns reflect.TypeFor[T]().
func (t *Table[T]) Type() reflect.Type { return t.typ }

// Len returns the number of declared members.
func (t *Table[T]) Len() int { return len(t.members) }

// Name returns the canonical name of the i-th member.
func (t *Table[T]) Name(i int) string { return t.members[i].Name }

// Value returns the i-th member value.
func (t *Table[T]) Value(i int) any { return t.members[i].Value }

// Members returns a copy of the declared members in declaration order.
func (t *Table[T]) Members() []Member[T] {
	cp := make([]Member[T], len(t.members))
	copy(cp, t.members)
	return cp
}

// String implements fmt.Stringer for diagnostics.
func (t *Table[T]) String() string {
	return fmt.Sprintf("%s(%d members)", t.typ, len(t.members))
}
