// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-mli/mli/contrib/conv"
	"github.com/ajroetker/go-mli/mli/contrib/pool"
)

// familyName holds the Go names of a kernel family: the Family constant and
// the exported dispatcher the generated functions specialize.
type familyName struct {
	Ident  string
	Public string
}

// family is one kernel family of a package: its Go names and the names of
// its table rows in dispatch order, generic row included.
type family struct {
	familyName
	rows []string
}

// api describes the entry points of one package.
type api struct {
	families func() ([]family, error)
	// Params and Args are the parameter list and the forwarded arguments
	// shared by every entry point of the package.
	Params string
	Args   string
}

var apis = map[string]api{
	"conv": {
		families: convFamilies,
		Params:   "in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor",
		Args:     "in, weights, bias, cfg, out",
	},
	"pool": {
		families: poolFamilies,
		Params:   "in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor",
		Args:     "in, cfg, out",
	},
}

var convNames = map[conv.Family]familyName{
	conv.Conv2DFX8:        {"Conv2DFX8", "Conv2DCHWFX8"},
	conv.Conv2DFX16:       {"Conv2DFX16", "Conv2DCHWFX16"},
	conv.Conv2DFX8W16D:    {"Conv2DFX8W16D", "Conv2DCHWFX8W16D"},
	conv.Conv2DSA8:        {"Conv2DSA8", "Conv2DCHWSA8"},
	conv.DepthwiseFX8:     {"DepthwiseFX8", "DepthwiseConv2DCHWFX8"},
	conv.DepthwiseFX16:    {"DepthwiseFX16", "DepthwiseConv2DCHWFX16"},
	conv.DepthwiseFX8W16D: {"DepthwiseFX8W16D", "DepthwiseConv2DCHWFX8W16D"},
	conv.DepthwiseSA8:     {"DepthwiseSA8", "DepthwiseConv2DCHWSA8"},
}

var poolNames = map[pool.Family]familyName{
	pool.MaxpoolFX8:  {"MaxpoolFX8", "MaxpoolCHWFX8"},
	pool.MaxpoolFX16: {"MaxpoolFX16", "MaxpoolCHWFX16"},
	pool.AvepoolFX8:  {"AvepoolFX8", "AvepoolCHWFX8"},
	pool.AvepoolFX16: {"AvepoolFX16", "AvepoolCHWFX16"},
}

func convFamilies() ([]family, error) {
	var out []family
	for _, f := range conv.Families {
		names, ok := convNames[f]
		if !ok {
			return nil, fmt.Errorf("family %v has no Go name", f)
		}
		rows := lo.Map(f.Table(), func(s conv.Spec, _ int) string { return s.Name })
		out = append(out, family{names, rows})
	}
	return out, nil
}

func poolFamilies() ([]family, error) {
	var out []family
	for _, f := range pool.Families {
		names, ok := poolNames[f]
		if !ok {
			return nil, fmt.Errorf("family %v has no Go name", f)
		}
		rows := lo.Map(f.Table(), func(s pool.Spec, _ int) string { return s.Name })
		out = append(out, family{names, rows})
	}
	return out, nil
}

// Entry is one generated function.
type Entry struct {
	Func   string
	Family string
	Public string
	Row    string
}

var upper = cases.Upper(language.Und)

// Identifier joins prefix with the underscore-separated parts of a row name,
// upper-casing the first letter of each: k3x3_str1_krnpad -> K3x3Str1Krnpad.
func Identifier(prefix, row string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for _, part := range strings.Split(row, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(upper.String(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

// Entries lists the generated functions of pkg in family and table order.
// The generic row of each table is skipped: it has its own hand-written
// entry point.
func Entries(pkg string) ([]Entry, error) {
	a, ok := apis[pkg]
	if !ok {
		return nil, fmt.Errorf("no entry points for package %q", pkg)
	}
	families, err := a.families()
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, f := range families {
		rows := lo.Map(f.rows[:len(f.rows)-1], func(row string, _ int) Entry {
			return Entry{
				Func:   Identifier(f.Public, row),
				Family: f.Ident,
				Public: f.Public,
				Row:    row,
			}
		})
		out = append(out, rows...)
	}
	if dups := lo.FindDuplicates(lo.Map(out, func(e Entry, _ int) string { return e.Func })); len(dups) > 0 {
		return nil, fmt.Errorf("duplicate entry points %v", dups)
	}
	return out, nil
}

var fileTemplate = template.Must(template.New("api").Parse(`// Code generated by mligen. DO NOT EDIT.

package {{.Package}}

import "github.com/ajroetker/go-mli/mli"
{{range .Entries}}
// {{.Func}} runs the {{.Row}} specialization of {{.Public}}.
func {{.Func}}({{$.Params}}) error {
	return runNamed({{.Family}}, "{{.Row}}", {{$.Args}})
}
{{end}}`))

// Generate returns the formatted source of z_spec_api.go for pkg.
func Generate(pkg string) ([]byte, error) {
	entries, err := Entries(pkg)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		slog.Debug("mligen: entry point", "func", e.Func, "row", e.Row)
	}
	a := apis[pkg]
	var buf bytes.Buffer
	err = fileTemplate.Execute(&buf, struct {
		Package string
		Params  string
		Args    string
		Entries []Entry
	}{pkg, a.Params, a.Args, entries})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := imports.Process("z_spec_api.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
