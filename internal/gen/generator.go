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
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"
)

const (
	apisImport  = "dirpx.dev/enumx/apis"
	enumxImport = "dirpx.dev/enumx"
)

// GenerateOptions controls the shape of the generated file.
type GenerateOptions struct {
	// Args is echoed in the "Code generated" header.
	Args string
	// Register emits an init function that registers every enum with the
	// process-wide registry instead of an EnumDescriptor method.
	Register bool
}

var fileTemplate = template.Must(template.New("enumx").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by "enumgen {{.Args}}"; DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{quote .}}
{{- end}}
)
{{if .Register}}
func init() {
{{- range .Enums}}
	enumx.MustRegister(
{{- $t := .TypeName}}
{{- range .Constants}}
		apis.Member[{{$t}}]{Value: {{.Ident}}, Name: {{quote .Name}}},
{{- end}}
	)
{{- end}}
}
{{else}}
{{- range .Enums}}
var _{{.TypeName}}Descriptor = apis.NewTable(
{{- $t := .TypeName}}
{{- range .Constants}}
	apis.Member[{{$t}}]{Value: {{.Ident}}, Name: {{quote .Name}}},
{{- end}}
)

// EnumDescriptor implements apis.Describer.
func ({{.TypeName}}) EnumDescriptor() apis.Descriptor { return _{{.TypeName}}Descriptor }
{{end}}
{{- end}}`))

type fileData struct {
	Args     string
	Package  string
	Imports  []string
	Register bool
	Enums    []Enum
}

// Generate renders the enumx file for pkg and formats it with go/format.
func Generate(pkg *Package, opts GenerateOptions) ([]byte, error) {
	data := fileData{
		Args:     opts.Args,
		Package:  pkg.Name,
		Imports:  []string{apisImport},
		Register: opts.Register,
		Enums:    pkg.Enums,
	}
	if opts.Register {
		data.Imports = []string{enumxImport, apisImport}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w\n%s", err, buf.String())
	}
	return src, nil
}
