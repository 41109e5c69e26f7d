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

package pool

import (
	"fmt"

	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/contrib/conv"
)

// Core names the traversal a pooling specialization runs.
type Core uint8

const (
	// CoreGeneric reduces every centre window independently.
	CoreGeneric Core = iota
	// CoreStr1 folds the kernel rows of each output row into one column
	// vector and slides the window along it. Stride 1 only.
	CoreStr1
)

var coreNames = [...]string{"pool_chw", "pool_chw_str1"}

func (c Core) String() string {
	if int(c) < len(coreNames) {
		return coreNames[c]
	}
	return fmt.Sprintf("core(%d)", c)
}

// Spec is one row of a pooling specialization table. Rows match calls the
// same way the convolution rows do, with the pooling window in place of the
// weights.
type Spec struct {
	conv.Pattern
	Core Core
}

func spec(kw, kh, ch, stride int, pad conv.Padding, core Core) Spec {
	return Spec{Pattern: conv.NewPattern(kw, kh, ch, stride, pad), Core: core}
}

var generic = spec(0, 0, 0, 0, conv.PadAny, CoreGeneric)

// GeometryOf extracts the dispatch geometry of a pooling call.
func GeometryOf(in *mli.Tensor, cfg *mli.PoolConfig) conv.Geometry {
	return conv.Geometry{
		KernelW:   cfg.KernelWidth,
		KernelH:   cfg.KernelHeight,
		Channels:  in.Shape[0],
		StrideW:   cfg.StrideWidth,
		StrideH:   cfg.StrideHeight,
		PadTop:    cfg.PaddingTop,
		PadBottom: cfg.PaddingBottom,
		PadLeft:   cfg.PaddingLeft,
		PadRight:  cfg.PaddingRight,
	}
}

// maxStr1 returns the ch1, ch3 and any-channel stride-1 rows of a square
// max window.
func maxStr1(k int, pad conv.Padding) []Spec {
	return []Spec{
		spec(k, k, 1, 1, pad, CoreStr1),
		spec(k, k, 3, 1, pad, CoreStr1),
		spec(k, k, 0, 1, pad, CoreStr1),
	}
}

// maxRect returns the ch1 and any-channel stride-1 rows of the 1x2, 1x3,
// 2x1 and 3x1 max windows.
func maxRect(pad conv.Padding) []Spec {
	var rows []Spec
	for _, k := range [][2]int{{1, 2}, {1, 3}, {2, 1}, {3, 1}} {
		rows = append(rows,
			spec(k[0], k[1], 1, 1, pad, CoreStr1),
			spec(k[0], k[1], 0, 1, pad, CoreStr1),
		)
	}
	return rows
}

func maxpoolTable() []Spec {
	var t []Spec
	for _, pad := range []conv.Padding{conv.PadNone, conv.PadKernel} {
		for k := 10; k >= 2; k-- {
			t = append(t, maxStr1(k, pad)...)
		}
		t = append(t, maxRect(pad)...)
	}
	return append(t,
		spec(1, 0, 0, 1, conv.PadAny, CoreStr1),
		spec(0, 1, 0, 1, conv.PadAny, CoreStr1),
		spec(0, 0, 1, 1, conv.PadAny, CoreStr1),
		spec(3, 3, 1, 0, conv.PadAny, CoreGeneric),
		spec(3, 3, 0, 0, conv.PadAny, CoreGeneric),
		spec(2, 2, 1, 0, conv.PadAny, CoreGeneric),
		spec(2, 2, 0, 0, conv.PadAny, CoreGeneric),
		generic,
	)
}

// avepoolKernels are the stride-1 windows with a dedicated row, as width
// and height, per padding pattern.
var avepoolKernels = map[conv.Padding][][2]int{
	conv.PadNone: {
		{2, 2}, {3, 3}, {4, 4}, {4, 2}, {5, 5}, {6, 2}, {6, 4}, {6, 6}, {6, 8},
		{7, 7}, {8, 2}, {8, 4}, {8, 6}, {8, 8}, {9, 9},
	},
	conv.PadKernel: {
		{4, 2}, {4, 4}, {4, 6}, {4, 8}, {5, 5}, {6, 2}, {6, 4}, {6, 6}, {6, 8},
		{7, 7}, {8, 2}, {8, 4}, {8, 6}, {8, 8}, {9, 9},
	},
}

func avepoolTable() []Spec {
	var t []Spec
	for _, pad := range []conv.Padding{conv.PadNone, conv.PadKernel} {
		for _, k := range avepoolKernels[pad] {
			t = append(t, spec(k[0], k[1], 0, 1, pad, CoreStr1))
		}
	}
	for k := 10; k >= 2; k-- {
		t = append(t, spec(k, k, 0, 0, conv.PadKernel, CoreGeneric))
	}
	return append(t, generic)
}

var (
	maxpoolRows = maxpoolTable()
	avepoolRows = avepoolTable()
)

// Family is a pooling kernel family: reduction and element type.
type Family uint8

const (
	MaxpoolFX8 Family = iota
	MaxpoolFX16
	AvepoolFX8
	AvepoolFX16
)

// Families lists every family in declaration order.
var Families = []Family{MaxpoolFX8, MaxpoolFX16, AvepoolFX8, AvepoolFX16}

var familyNames = [...]string{"maxpool_chw_fx8", "maxpool_chw_fx16", "avepool_chw_fx8", "avepool_chw_fx16"}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("family(%d)", f)
}

// Average reports whether f averages its windows.
func (f Family) Average() bool { return f == AvepoolFX8 || f == AvepoolFX16 }

// Table returns the specialization table of f in dispatch order. The last
// row is always the generic path. The slice must not be modified.
func (f Family) Table() []Spec {
	if f.Average() {
		return avepoolRows
	}
	return maxpoolRows
}

// Lookup returns the row of f called name.
func (f Family) Lookup(name string) (Spec, bool) {
	for _, s := range f.Table() {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// SelectGeometry returns the first row of f matching g.
func SelectGeometry(f Family, g conv.Geometry) Spec {
	t := f.Table()
	for _, s := range t[:len(t)-1] {
		if s.Matches(g) {
			return s
		}
	}
	return t[len(t)-1]
}

// Select returns the specialization the dispatcher runs for a call.
// Arguments are assumed validated.
func Select(f Family, in *mli.Tensor, cfg *mli.PoolConfig) Spec {
	return SelectGeometry(f, GeometryOf(in, cfg))
}
