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

// Package fixture declares enum-like types loaded by the generator tests.
package fixture

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	_
	PhaseDone
)

// PhaseDefault is an alias of PhaseIdle.
const PhaseDefault = PhaseIdle

type Tone string

const (
	ToneWarm Tone = "warm" // warm-tone
	ToneCool Tone = "cool" // cool-tone
	ToneFlat Tone = "flat"
)

type Shape struct{ Sides int }

type Empty uint8

// Unrelated constants share the block but are not members.
const (
	Limit      = 10
	Name       = "fixture"
	PhaseCount = int(PhaseDone) + 1
)
