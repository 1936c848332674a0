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

package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx/internal/gen"
)

const fixtureDir = "testdata/fixture"

func TestLoad_SourceOrderSkipsBlank(t *testing.T) {
	pkg, err := gen.Load(fixtureDir, ".", []string{"Phase"}, gen.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "fixture", pkg.Name)
	require.Len(t, pkg.Enums, 1)
	assert.Equal(t, []gen.Constant{
		{Ident: "PhaseIdle", Name: "PhaseIdle"},
		{Ident: "PhaseRunning", Name: "PhaseRunning"},
		{Ident: "PhaseDone", Name: "PhaseDone"},
		{Ident: "PhaseDefault", Name: "PhaseDefault"},
	}, pkg.Enums[0].Constants)
}

func TestLoad_TrimPrefix(t *testing.T) {
	pkg, err := gen.Load(fixtureDir, ".", []string{"Phase"}, gen.LoadOptions{TrimPrefix: "Phase"})
	require.NoError(t, err)

	var names []string
	for _, c := range pkg.Enums[0].Constants {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Idle", "Running", "Done", "Default"}, names)
}

func TestLoad_LineComment(t *testing.T) {
	pkg, err := gen.Load(fixtureDir, ".", []string{"Tone"}, gen.LoadOptions{LineComment: true})
	require.NoError(t, err)

	assert.Equal(t, []gen.Constant{
		{Ident: "ToneWarm", Name: "warm-tone"},
		{Ident: "ToneCool", Name: "cool-tone"},
		{Ident: "ToneFlat", Name: "ToneFlat"},
	}, pkg.Enums[0].Constants)
}

func TestLoad_MultipleTypes(t *testing.T) {
	pkg, err := gen.Load(fixtureDir, ".", []string{"Phase", "Tone"}, gen.LoadOptions{})
	require.NoError(t, err)
	require.Len(t, pkg.Enums, 2)
	assert.Equal(t, "Phase", pkg.Enums[0].TypeName)
	assert.Equal(t, "Tone", pkg.Enums[1].TypeName)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  error
	}{
		{"no types", nil, gen.ErrNoTypes},
		{"missing", []string{"Nope"}, gen.ErrTypeNotFound},
		{"struct", []string{"Shape"}, gen.ErrUnsupportedKind},
		{"no constants", []string{"Empty"}, gen.ErrNoConstants},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Load(fixtureDir, ".", tt.types, gen.LoadOptions{})
			require.ErrorIs(t, err, tt.want)
		})
	}
}
