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

package cache_test

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/cache"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/normalize"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colors = apis.NewTable(
	apis.Member[Color]{Value: Red, Name: "Red"},
	apis.Member[Color]{Value: Green, Name: "Green"},
	apis.Member[Color]{Value: Blue, Name: "Blue"},
)

func (Color) EnumDescriptor() apis.Descriptor { return colors }
// Large has 101 members for the lookup benchmarks.
// Large has 101 members, like the original performance suite.
type Large int

var large = func() *apis.Table[Large] {
	members := make([]apis.Member[Large], 0, 101)
	for i := range 101 {
		members = append(members, apis.Member[Large]{Value: Large(i), Name: fmt.Sprintf("L%d", i)})
	}
	return apis.NewTable(members...)
}()

func (Large) EnumDescriptor() apis.Descriptor { return large }

type dummy struct{ One, Two int }

// counting wraps a resolver and counts Describe calls.
type counting struct {
	apis.Resolver
	calls atomic.Int64
}

func (c *counting) Describe(t reflect.Type, cfg apis.Config) (apis.Descriptor, bool) {
	c.calls.Add(1)
	return c.Resolver.Describe(t, cfg)
}

func newCache() (*cache.Cache, *counting) {
	cfg := config.DefaultConfig()
	res := &counting{Resolver: builder.New().BuildResolver(cfg, nil)}
	return cache.New(res, cfg), res
}

func TestLookupsWithoutEnsure(t *testing.T) {
	c, _ := newCache()

	v, ok := cache.TryParse[Color](c, "Green")
	require.True(t, ok)
	assert.Equal(t, Green, v)

	name, ok := cache.TryGetString(c, Blue)
	require.True(t, ok)
	assert.Equal(t, "Blue", name)
}

func TestNotFound(t *testing.T) {
	c, _ := newCache()

	_, ok := cache.TryParse[Color](c, "green")
	assert.False(t, ok, "cache lookups are case-sensitive")

	_, ok = cache.TryParse[Color](c, "garbageValue")
	assert.False(t, ok)

	name, ok := cache.TryGetString(c, Color(1000))
	assert.False(t, ok, "out-of-range values have no name")
	assert.Empty(t, name)
}

func TestRoundTrip(t *testing.T) {
	c, _ := newCache()

	for _, m := range large.Members() {
		name, ok := cache.TryGetString(c, m.Value)
		require.True(t, ok)
		require.Equal(t, m.Name, name)

		v, ok := cache.TryParse[Large](c, name)
		require.True(t, ok)
		require.Equal(t, m.Value, v)
	}
}

func TestNotAnEnumeratedType(t *testing.T) {
	c, res := newCache()

	assert.False(t, cache.Ensure[dummy](c))
	_, ok := cache.TryParse[dummy](c, "One")
	assert.False(t, ok)
	_, ok = cache.TryGetString(c, dummy{})
	assert.False(t, ok)

	assert.Equal(t, int64(1), c.Builds(), "a failed build is still built only once")
	assert.Equal(t, int64(1), res.calls.Load())

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, apis.CacheEntry{Type: reflect.TypeFor[dummy](), Valid: false, Len: 0}, entries[0])
}

func TestEnsureIsIdempotent(t *testing.T) {
	c, res := newCache()

	for range 10 {
		require.True(t, cache.Ensure[Color](c))
	}
	_, _ = cache.TryParse[Color](c, "Red")
	_, _ = cache.TryGetString(c, Red)

	assert.Equal(t, int64(1), c.Builds())
	assert.Equal(t, int64(1), res.calls.Load())

	require.True(t, cache.Ensure[Large](c))
	assert.Equal(t, int64(2), c.Builds(), "each distinct type is built once")
	assert.Len(t, c.Entries(), 2)
}

func TestCachesAreIndependent(t *testing.T) {
	a, _ := newCache()
	b, _ := newCache()

	require.True(t, cache.Ensure[Color](a))
	assert.Equal(t, int64(0), b.Builds())
	assert.Empty(t, b.Entries())
}

func TestNewNormalized(t *testing.T) {
	cfg := config.DefaultConfig()
	res := builder.New().BuildResolver(cfg, nil)
	c := cache.NewNormalized(res, cfg, normalize.Chain(normalize.TrimSpace, normalize.Fold))

	v, ok := cache.TryParse[Color](c, "  GREEN ")
	require.True(t, ok)
	assert.Equal(t, Green, v)

	name, ok := cache.TryGetString(c, Green)
	require.True(t, ok)
	assert.Equal(t, "Green", name, "forward names stay canonical")
}

// TestConcurrentFirstAccess verifies that parallel first lookups on a cold
// cache build once and all observe the complete maps.
func TestConcurrentFirstAccess(t *testing.T) {
	for round := 0; round < 20; round++ {
		c, res := newCache()

		start := make(chan struct{})
		wg := sync.WaitGroup{}
		workers := runtime.GOMAXPROCS(0) * 4
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func(id int) {
				defer wg.Done()
				<-start
				m := large.Members()
				for i := 0; i < 200; i++ {
					want := m[(i+id)%len(m)]
					v, ok := cache.TryParse[Large](c, want.Name)
					if !ok || v != want.Value {
						t.Errorf("TryParse(%q) = (%v, %v), want (%v, true)", want.Name, v, ok, want.Value)
						return
					}
					if name, ok := cache.TryGetString(c, want.Value); !ok || name != want.Name {
						t.Errorf("TryGetString(%v) = (%q, %v), want (%q, true)", want.Value, name, ok, want.Name)
						return
					}
				}
			}(w)
		}
		close(start)
		wg.Wait()

		require.Equal(t, int64(1), c.Builds())
		require.Equal(t, int64(1), res.calls.Load())
	}
}

func BenchmarkTryParse(b *testing.B) {
	c, _ := newCache()
	names := make([]string, 0, large.Len())
	for _, m := range large.Members() {
		names = append(names, m.Name)
	}
	cache.Ensure[Large](c)

	i := 0
	for b.Loop() {
		_, _ = cache.TryParse[Large](c, names[i%len(names)])
		i++
	}
}

func BenchmarkTryGetString(b *testing.B) {
	c, _ := newCache()
	cache.Ensure[Large](c)

	i := 0
	for b.Loop() {
		_, _ = cache.TryGetString(c, Large(i%101))
		i++
	}
}
