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
	"os"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-mli/mli/contrib/conv"
	"github.com/ajroetker/go-mli/mli/contrib/pool"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		prefix, row, want string
	}{
		{"Conv2DCHWFX8", "k3x3_str1_krnpad", "Conv2DCHWFX8K3x3Str1Krnpad"},
		{"Conv2DCHWFX8", "k1x1_ch4_str1_nopad", "Conv2DCHWFX8K1x1Ch4Str1Nopad"},
		{"DepthwiseConv2DCHWSA8", "str1", "DepthwiseConv2DCHWSA8Str1"},
		{"Conv2DCHWFX16", "knx1_str1", "Conv2DCHWFX16Knx1Str1"},
	}
	for _, tt := range tests {
		t.Run(tt.row, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(tt.prefix, tt.row))
		})
	}
}

func TestEntriesCoverTables(t *testing.T) {
	for pkg, a := range apis {
		t.Run(pkg, func(t *testing.T) {
			entries, err := Entries(pkg)
			require.NoError(t, err)
			families, err := a.families()
			require.NoError(t, err)

			want := lo.SumBy(families, func(f family) int { return len(f.rows) - 1 })
			assert.Len(t, entries, want)
			assert.False(t, lo.ContainsBy(entries, func(e Entry) bool { return e.Row == "generic" }))

			byFamily := lo.GroupBy(entries, func(e Entry) string { return e.Family })
			for _, f := range families {
				got := lo.Map(byFamily[f.Ident], func(e Entry, _ int) string { return e.Row })
				assert.Equal(t, f.rows[:len(f.rows)-1], got, "family %s", f.Ident)
			}
		})
	}
}

func TestFamiliesNamed(t *testing.T) {
	assert.Len(t, convNames, len(conv.Families))
	assert.Len(t, poolNames, len(pool.Families))

	_, err := Entries("rnn")
	assert.Error(t, err)
}

// The committed files must be what the generator writes for the current
// tables.
func TestCommittedFileUpToDate(t *testing.T) {
	for pkg := range apis {
		t.Run(pkg, func(t *testing.T) {
			src, err := Generate(pkg)
			require.NoError(t, err)
			committed, err := os.ReadFile("../../mli/contrib/" + pkg + "/z_spec_api.go")
			require.NoError(t, err)
			assert.Equal(t, string(committed), string(src), "run go generate ./mli/contrib/%s", pkg)
		})
	}
}
