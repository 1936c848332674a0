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

// Package gen generates enumx descriptors for named constant types.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find the
// package-level constants of each requested type, in source order, and
// renders them as an apis.Table.
//
// Key types:
//   - Enum: one requested type and its constants
//   - Package: the loaded package and its enums
//   - Job: one generation run, from flags or a YAML config file
package gen
