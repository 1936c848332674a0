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

// Config carries read-only knobs that influence descriptor validation.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// StrictKinds requires the underlying kind of an enumerated type to be an
	// integer or string kind. If false, any comparable named type is accepted.
	StrictKinds bool

	// AllowAliases permits two declared members to share one value.
	// Aliases keep the first declared name in forward maps.
	AllowAliases bool

	// MaxMembers limits the number of declared members in one descriptor.
	// Acts as a safety guard against pathological descriptors.
	MaxMembers int
}
