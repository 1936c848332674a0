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

package reflect

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
)

var (
	// ErrNilDescriptor is returned when a nil descriptor is provided.
	ErrNilDescriptor = errors.New("reflect: nil descriptor provided")
	// ErrNilType is returned when a descriptor reports a nil reflect.Type.
	ErrNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrTypeNotNamed indicates an anonymous type; only named types can be
	// enumerated types.
	ErrTypeNotNamed = errors.New("reflect: type is not named")
	// ErrNotEnumKind indicates an underlying kind that is neither an integer
	// nor a string kind.
	ErrNotEnumKind = errors.New("reflect: underlying kind cannot be enumerated")
	// ErrEmptyDescriptor indicates a descriptor without members.
	ErrEmptyDescriptor = errors.New("reflect: descriptor has no members")
	// ErrTooManyMembers indicates a descriptor above Config.MaxMembers.
	ErrTooManyMembers = errors.New("reflect: descriptor exceeds member limit")
	// ErrEmptyName indicates a member declared with an empty name.
	ErrEmptyName = errors.New("reflect: member has empty name")
	// ErrDuplicateName indicates two members declared with the same name.
	ErrDuplicateName = errors.New("reflect: duplicate member name")
	// ErrValueType indicates a member value whose dynamic type is not the
	// descriptor's type.
	ErrValueType = errors.New("reflect: member value has wrong type")
	// ErrAliasedValue indicates two members sharing one value while
	// Config.AllowAliases is false.
	ErrAliasedValue = errors.New("reflect: aliased member value")
)

// IsEnumKind reports whether t's underlying kind can back an enumerated type:
// any signed or unsigned integer kind, or string.
func IsEnumKind(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.String:
		return true
	default:
		return false
	}
}

// Validate checks d against cfg and returns the first violation found.
//
// Checks, in order:
//   - d and d.Type() are non-nil and the type is named;
//   - the kind is an integer or string kind (only if cfg.StrictKinds);
//   - 0 < d.Len() <= cfg.MaxMembers (DefaultMaxMembers if MaxMembers <= 0);
//   - every name is non-empty and unique;
//   - every value has dynamic type d.Type();
//   - no two members share a value (only if !cfg.AllowAliases).
func Validate(d apis.Descriptor, cfg apis.Config) error {
	if d == nil {
		return ErrNilDescriptor
	}
	t := d.Type()
	if t == nil {
		return ErrNilType
	}
	if t.Name() == "" {
		return fmt.Errorf("%w: %s", ErrTypeNotNamed, t)
	}
	if cfg.StrictKinds && !IsEnumKind(t) {
		return fmt.Errorf("%w: %s is %s", ErrNotEnumKind, t, t.Kind())
	}

	maxMembers := cfg.MaxMembers
	if maxMembers <= 0 {
		maxMembers = config.DefaultMaxMembers
	}
	n := d.Len()
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyDescriptor, t)
	}
	if n > maxMembers {
		return fmt.Errorf("%w: %s has %d, limit %d", ErrTooManyMembers, t, n, maxMembers)
	}

	names := make(map[string]struct{}, n)
	values := make(map[any]string, n)
	for i := range n {
		name := d.Name(i)
		if name == "" {
			return fmt.Errorf("%w: %s member %d", ErrEmptyName, t, i)
		}
		if _, dup := names[name]; dup {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateName, t, name)
		}
		names[name] = struct{}{}

		v := d.Value(i)
		if reflect.TypeOf(v) != t {
			return fmt.Errorf("%w: %s.%s is %T", ErrValueType, t, name, v)
		}
		if prev, alias := values[v]; alias && !cfg.AllowAliases {
			return fmt.Errorf("%w: %s.%s and %s.%s", ErrAliasedValue, t, prev, t, name)
		} else if !alias {
			values[v] = name
		}
	}
	return nil
}
