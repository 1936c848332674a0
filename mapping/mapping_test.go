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

package mapping_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/mapping"
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

// Similar declares names that only differ by case.
type Similar int

var similar = apis.NewTable(
	apis.Member[Similar]{Value: 1, Name: "One"},
	apis.Member[Similar]{Value: 2, Name: "one"},
)

func (Similar) EnumDescriptor() apis.Descriptor { return similar }

// Status declares an alias: Ok and Success share one value.
type Status int

var statuses = apis.NewTable(
	apis.Member[Status]{Value: 0, Name: "Ok"},
	apis.Member[Status]{Value: 0, Name: "Success"},
	apis.Member[Status]{Value: 1, Name: "Failed"},
)

func (Status) EnumDescriptor() apis.Descriptor { return statuses }

// Large is registered, not self-describing.
type Large int

// dummy is a value type that is not an enumerated type.
type dummy struct{ One, Two int }

func newResolver(t *testing.T) (apis.Resolver, apis.Config) {
	t.Helper()
	cfg := config.DefaultConfig()
	b := builder.New()
	reg := b.BuildRegistry(cfg, nil)

	members := make([]apis.Member[Large], 0, 100)
	for i := range 100 {
		members = append(members, apis.Member[Large]{Value: Large(i), Name: fmt.Sprintf("Value%03d", i)})
	}
	require.NoError(t, reg.Register(apis.NewTable(members...)))

	return b.BuildResolver(cfg, reg), cfg
}

func TestForward(t *testing.T) {
	res, cfg := newResolver(t)

	m, ok := mapping.Forward[Color](res, cfg)
	require.True(t, ok)
	assert.Equal(t, map[Color]string{Red: "Red", Green: "Green", Blue: "Blue"}, m)

	large, ok := mapping.Forward[Large](res, cfg)
	require.True(t, ok)
	require.Len(t, large, 100)
	for i := range 100 {
		assert.Equal(t, fmt.Sprintf("Value%03d", i), large[Large(i)])
	}
	_, found := large[Large(1000)]
	assert.False(t, found, "out-of-range value must not have a name")
}

func TestReverse_Identity(t *testing.T) {
	res, cfg := newResolver(t)

	m, ok := mapping.Reverse[Color](res, cfg, nil)
	require.True(t, ok)
	assert.Equal(t, map[string]Color{"Red": Red, "Green": Green, "Blue": Blue}, m)

	_, found := m["green"]
	assert.False(t, found, "identity normalization is case-sensitive")

	same, ok := mapping.Reverse[Color](res, cfg, normalize.Identity)
	require.True(t, ok)
	assert.Equal(t, m, same)
}

func TestReverse_CollisionLastDeclaredWins(t *testing.T) {
	res, cfg := newResolver(t)

	m, ok := mapping.Reverse[Similar](res, cfg, normalize.Upper)
	require.True(t, ok)
	require.Len(t, m, 1, spew.Sdump(m))
	assert.Equal(t, Similar(2), m["ONE"], "the later declared member must win")

	plain, ok := mapping.Reverse[Similar](res, cfg, nil)
	require.True(t, ok)
	assert.Len(t, plain, 2)
}

func TestReverse_NormalizerApplied(t *testing.T) {
	res, cfg := newResolver(t)

	m, ok := mapping.Reverse[Large](res, cfg, normalize.Lower)
	require.True(t, ok)
	assert.Len(t, m, 100)
	assert.Equal(t, Large(42), m["value042"])
}

func TestAliases(t *testing.T) {
	res, cfg := newResolver(t)

	fwd, ok := mapping.Forward[Status](res, cfg)
	require.True(t, ok)
	assert.Equal(t, map[Status]string{0: "Ok", 1: "Failed"}, fwd, "first declared name is canonical")

	rev, ok := mapping.Reverse[Status](res, cfg, nil)
	require.True(t, ok)
	assert.Equal(t, map[string]Status{"Ok": 0, "Success": 0, "Failed": 1}, rev, "every declared name is parseable")

	_, ok = mapping.Forward[Status](res, config.NewConfig(config.WithAllowAliases(false)))
	assert.False(t, ok, "aliases rejected by config make the type invalid")
}

func TestNotAnEnumeratedType(t *testing.T) {
	res, cfg := newResolver(t)

	fwd, ok := mapping.Forward[dummy](res, cfg)
	assert.False(t, ok)
	assert.Nil(t, fwd)

	rev, ok := mapping.Reverse[dummy](res, cfg, nil)
	assert.False(t, ok)
	assert.Nil(t, rev)

	_, ok = mapping.Forward[int](res, cfg)
	assert.False(t, ok)

	_, ok = mapping.Forward[Color](nil, cfg)
	assert.False(t, ok, "nil resolver knows nothing")
}

// BenchmarkReverse shows why results should be cached: every call
// validates the descriptor and allocates a new map.
func BenchmarkReverse(b *testing.B) {
	cfg := config.DefaultConfig()
	res := builder.New().BuildResolver(cfg, nil)
	for b.Loop() {
		_, _ = mapping.Reverse[Color](res, cfg, nil)
	}
}

func TestBoth(t *testing.T) {
	res, cfg := newResolver(t)

	fwd, rev, ok := mapping.Both[Color](res, cfg, normalize.Lower)
	require.True(t, ok)
	assert.Equal(t, "Blue", fwd[Blue])
	assert.Equal(t, Blue, rev["blue"])

	dfwd, drev, ok := mapping.Both[dummy](res, cfg, nil)
	assert.False(t, ok)
	assert.Nil(t, dfwd)
	assert.Nil(t, drev)
}
