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

package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

var (
	// ErrNoTypes is returned when no type names were requested.
	ErrNoTypes = errors.New("enumx(gen): no type names given")
	// ErrTypeNotFound is returned when a requested type is not declared in the package.
	ErrTypeNotFound = errors.New("enumx(gen): type not found")
	// ErrUnsupportedKind is returned for types whose underlying type is not an integer or string.
	ErrUnsupportedKind = errors.New("enumx(gen): underlying type is not an integer or string")
	// ErrNoConstants is returned when a requested type has no constants.
	ErrNoConstants = errors.New("enumx(gen): no constants declared")
)

// Constant is one declared constant of an enumerated type.
type Constant struct {
	// Ident is the Go identifier.
	Ident string
	// Name is the member name written to the descriptor.
	Name string
}

// Enum is one requested type with its constants in source order.
type Enum struct {
	TypeName  string
	Constants []Constant
}

// Package is a loaded package with the enums found in it.
type Package struct {
	Name  string
	Path  string
	Dir   string
	Enums []Enum
}

// LoadOptions controls how member names are derived.
type LoadOptions struct {
	// TrimPrefix is removed from the start of every identifier.
	TrimPrefix string
	// LineComment uses the trailing line comment as the name when present.
	LineComment bool
}

// Load loads the single package matched by pattern (relative to dir) and
// collects the constants of typeNames.
func Load(dir, pattern string, typeNames []string, opts LoadOptions) (*Package, error) {
	if len(typeNames) == 0 {
		return nil, ErrNoTypes
	}

	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]

	// Check for package errors
	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	out := &Package{Name: pkg.Name, Path: pkg.PkgPath}
	if len(pkg.GoFiles) > 0 {
		out.Dir = dirOf(pkg.GoFiles[0])
	}

	for _, name := range typeNames {
		e, err := collect(pkg, name, opts)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", name, err)
		}
		out.Enums = append(out.Enums, e)
	}
	return out, nil
}

// collect finds the constants of typeName in declaration order.
func collect(pkg *packages.Package, typeName string, opts LoadOptions) (Enum, error) {
	obj, ok := pkg.Types.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return Enum{}, ErrTypeNotFound
	}
	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsInteger|types.IsString) == 0 {
		return Enum{}, ErrUnsupportedKind
	}

	e := Enum{TypeName: typeName}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, spec := range gd.Specs {
				vs := spec.(*ast.ValueSpec)
				for _, ident := range vs.Names {
					if ident.Name == "_" {
						continue
					}
					c, ok := pkg.TypesInfo.Defs[ident].(*types.Const)
					if !ok || c.Parent() != pkg.Types.Scope() || !types.Identical(c.Type(), obj.Type()) {
						continue
					}
					e.Constants = append(e.Constants, Constant{
						Ident: ident.Name,
						Name:  memberName(ident.Name, vs, opts),
					})
				}
			}
		}
	}

	if len(e.Constants) == 0 {
		return Enum{}, ErrNoConstants
	}
	return e, nil
}

// memberName applies the naming options to one identifier. Line comments
// only apply to single-name specs, so "A, B // x" keeps both identifiers.
func memberName(ident string, vs *ast.ValueSpec, opts LoadOptions) string {
	if opts.LineComment && len(vs.Names) == 1 && vs.Comment != nil {
		if text := strings.TrimSpace(vs.Comment.Text()); text != "" {
			return text
		}
	}
	if trimmed := strings.TrimPrefix(ident, opts.TrimPrefix); trimmed != "" {
		return trimmed
	}
	return ident
}

func dirOf(file string) string {
	if i := strings.LastIndexAny(file, `/\`); i >= 0 {
		return file[:i]
	}
	return "."
}
