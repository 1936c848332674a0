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
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"dirpx.dev/enumx/cache"
)

var (
	// ErrNotEnum is returned when T has no valid descriptor.
	ErrNotEnum = errors.New("enumx: not an enumerated type")
	// ErrUnknownName is returned when no member is declared under a name.
	ErrUnknownName = errors.New("enumx: unknown name")
	// ErrUnknownValue is returned when a value is not a declared member.
	ErrUnknownValue = errors.New("enumx: unknown value")
)

// Format returns the declared name of v, or a diagnostic "Type(value)" form
// for undeclared values. It never fails and is suitable for String methods.
func Format[T comparable](v T) string {
	if name, ok := TryGetString(v); ok {
		return name
	}
	t := reflect.TypeFor[T]()
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return t.Name() + "(" + strconv.FormatInt(rv.Int(), 10) + ")"
	case rv.CanUint():
		return t.Name() + "(" + strconv.FormatUint(rv.Uint(), 10) + ")"
	case rv.Kind() == reflect.String:
		return t.Name() + "(" + strconv.Quote(rv.String()) + ")"
	default:
		return t.Name() + "(?)"
	}
}

// Parse returns the member of T declared under s (exact match).
func Parse[T comparable](s string) (T, error) {
	if v, ok := TryParse[T](s); ok {
		return v, nil
	}
	var zero T
	if !Initialize[T]() {
		return zero, fmt.Errorf("%w: %s", ErrNotEnum, reflect.TypeFor[T]())
	}
	return zero, fmt.Errorf("%w %q for %s", ErrUnknownName, s, reflect.TypeFor[T]())
}

// ParseFold is like Parse but ignores surrounding white space and case.
// An exact match always wins; otherwise names are compared after Unicode case
// folding, and names that fold alike resolve to the last declared member.
func ParseFold[T comparable](s string) (T, error) {
	if v, ok := TryParse[T](s); ok {
		return v, nil
	}
	if v, ok := cache.TryParse[T](std.folded, s); ok {
		return v, nil
	}
	return Parse[T](s)
}

// MustParse is like ParseFold but panics on invalid input. Use it for
// hard-coded values only.
func MustParse[T comparable](s string) T {
	v, err := ParseFold[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText returns the declared name of v. Undeclared values are an
// error, so invalid states are never persisted.
func MarshalText[T comparable](v T) ([]byte, error) {
	if name, ok := TryGetString(v); ok {
		return []byte(name), nil
	}
	if !Initialize[T]() {
		return nil, fmt.Errorf("%w: %s", ErrNotEnum, reflect.TypeFor[T]())
	}
	return nil, fmt.Errorf("%w %s", ErrUnknownValue, Format(v))
}

// UnmarshalText parses text with ParseFold and stores the result in *dst.
// On failure *dst is left unchanged.
func UnmarshalText[T comparable](text []byte, dst *T) error {
	v, err := ParseFold[T](string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
