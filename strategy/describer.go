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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/enumx/apis"
	uref "dirpx.dev/enumx/utils/reflect"
)

// NewDescriberStrategy creates an apis.Strategy that asks the type itself:
// if the zero value of t implements apis.Describer, its EnumDescriptor() is used.
func NewDescriberStrategy() apis.Strategy {
	return describerStrategy{}
}

// describerStrategy is the registration-free fast path used by generated code.
// Descriptors are validated once per (type, config) and memoized.
type describerStrategy struct{}

// Ensure describerStrategy implements apis.Strategy.
var _ apis.Strategy = (*describerStrategy)(nil)

var describerType = reflect.TypeFor[apis.Describer]()

// cacheKey ensures memoization respects all config knobs that affect validation.
type cacheKey struct {
	t   reflect.Type
	cfg apis.Config
}

// described is a memoized TryDescribe outcome.
type described struct {
	d  apis.Descriptor
	ok bool
}

// describerCache caches validated descriptors by (type, config).
var describerCache sync.Map // key: cacheKey, val: described

// TryDescribe returns the validated descriptor t reports about itself.
func (describerStrategy) TryDescribe(t reflect.Type, cfg apis.Config) (apis.Descriptor, bool) {
	if t == nil || !t.Implements(describerType) {
		return nil, false
	}
	// A nil zero value cannot be asked anything.
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return nil, false
	}

	key := cacheKey{t: t, cfg: cfg}
	if v, ok := describerCache.Load(key); ok {
		r := v.(described)
		return r.d, r.ok
	}

	d := reflect.Zero(t).Interface().(apis.Describer).EnumDescriptor()
	r := described{}
	if d != nil && d.Type() == t && uref.Validate(d, cfg) == nil {
		r = described{d: d, ok: true}
	}

	describerCache.Store(key, r)
	return r.d, r.ok
}
