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

package conv

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-mli/mli"
)

// Core names the composition function a specialization runs.
type Core uint8

const (
	// CoreGeneric is the any-stride border/centre decomposition.
	CoreGeneric Core = iota
	// CoreStr1 is the stride-1 decomposition with looped borders.
	CoreStr1
	// CoreStr1Fixed is the stride-1 decomposition with unrolled borders.
	CoreStr1Fixed
	// CoreK1x1Str1 sweeps column pairs of a 1x1 kernel.
	CoreK1x1Str1
	// CorePerPixel compensates each output pixel independently.
	CorePerPixel
	// CoreNopad walks windows that never touch padding.
	CoreNopad
)

var coreNames = [...]string{"conv2d_chw", "conv2d_chw_str1", "conv2d_chw_str1_fixed", "conv2d_chw_nopad_k1x1_str1", "convolution_chw", "convolution_chw_nopad"}

func (c Core) String() string {
	if int(c) < len(coreNames) {
		return coreNames[c]
	}
	return fmt.Sprintf("core(%d)", c)
}

// Padding is the padding pattern a specialization requires.
type Padding uint8

const (
	// PadAny accepts any padding.
	PadAny Padding = iota
	// PadNone requires zero padding on every side.
	PadNone
	// PadKernel requires the "same" padding of the kernel: exactly
	// ((kh-1)/2, kh/2, (kw-1)/2, kw/2) for stride 1, at most that otherwise.
	PadKernel
)

// Pattern is the call shape a specialization accepts. Zero KernelW,
// KernelH, Channels or Stride fields match anything. The pooling tables
// share it.
type Pattern struct {
	Name     string
	KernelW  int
	KernelH  int
	Channels int
	Stride   int
	Padding  Padding
}

// Spec is one row of a specialization table.
type Spec struct {
	Pattern
	Core Core
}

// Geometry is what the dispatcher looks at in a call.
type Geometry struct {
	KernelW, KernelH  int
	Channels          int
	StrideW, StrideH  int
	PadTop, PadBottom int
	PadLeft, PadRight int
	Dilated           bool
}

// GeometryOf extracts the dispatch geometry of a convolution call.
func GeometryOf(in, weights *mli.Tensor, cfg *mli.Conv2DConfig) Geometry {
	dh, dw := cfg.Dilations()
	return Geometry{
		KernelW:   weights.Shape[3],
		KernelH:   weights.Shape[2],
		Channels:  in.Shape[0],
		StrideW:   cfg.StrideWidth,
		StrideH:   cfg.StrideHeight,
		PadTop:    cfg.PaddingTop,
		PadBottom: cfg.PaddingBottom,
		PadLeft:   cfg.PaddingLeft,
		PadRight:  cfg.PaddingRight,
		Dilated:   dh > 1 || dw > 1,
	}
}

// Matches reports whether the pattern applies to g. Dilated calls only
// match the generic pattern.
func (s Pattern) Matches(g Geometry) bool {
	if g.Dilated {
		return s.Name == GenericName
	}
	if s.KernelW != 0 && s.KernelW != g.KernelW {
		return false
	}
	if s.KernelH != 0 && s.KernelH != g.KernelH {
		return false
	}
	if s.Channels != 0 && s.Channels != g.Channels {
		return false
	}
	if s.Stride == 1 && (g.StrideW != 1 || g.StrideH != 1) {
		return false
	}
	switch s.Padding {
	case PadNone:
		return g.PadTop == 0 && g.PadBottom == 0 && g.PadLeft == 0 && g.PadRight == 0
	case PadKernel:
		t, b := (g.KernelH-1)/2, g.KernelH/2
		l, r := (g.KernelW-1)/2, g.KernelW/2
		if s.Stride == 1 {
			return g.PadTop == t && g.PadBottom == b && g.PadLeft == l && g.PadRight == r
		}
		return g.PadTop <= t && g.PadBottom <= b && g.PadLeft <= l && g.PadRight <= r
	}
	return true
}

// GenericName names the catch-all row closing every table.
const GenericName = "generic"

// NewPattern builds a pattern and its row name, for example
// k3x3_ch1_str1_krnpad. A kernel width of 1 with any height is k1xn and a
// height of 1 with any width is knx1.
func NewPattern(kw, kh, ch, stride int, pad Padding) Pattern {
	var parts []string
	switch {
	case kw > 0 && kh > 0:
		parts = append(parts, fmt.Sprintf("k%dx%d", kw, kh))
	case kw == 1:
		parts = append(parts, "k1xn")
	case kh == 1:
		parts = append(parts, "knx1")
	}
	if ch > 0 {
		parts = append(parts, fmt.Sprintf("ch%d", ch))
	}
	if stride == 1 {
		parts = append(parts, "str1")
	}
	switch pad {
	case PadKernel:
		parts = append(parts, "krnpad")
	case PadNone:
		parts = append(parts, "nopad")
	}
	if len(parts) == 0 {
		parts = append(parts, GenericName)
	}
	return Pattern{
		Name:     strings.Join(parts, "_"),
		KernelW:  kw,
		KernelH:  kh,
		Channels: ch,
		Stride:   stride,
		Padding:  pad,
	}
}

func spec(kw, kh, ch, stride int, pad Padding, core Core) Spec {
	return Spec{Pattern: NewPattern(kw, kh, ch, stride, pad), Core: core}
}

var generic = spec(0, 0, 0, 0, PadAny, CoreGeneric)

// squareStr1 returns the ch1 and any-channel stride-1 rows of a square
// kernel with kernel padding.
func squareStr1(k int) []Spec {
	return []Spec{
		spec(k, k, 1, 1, PadKernel, CoreStr1Fixed),
		spec(k, k, 0, 1, PadKernel, CoreStr1Fixed),
	}
}

// str1Tail are the stride-1 rows without a padding pattern.
var str1Tail = []Spec{
	spec(1, 0, 0, 1, PadAny, CoreStr1),
	spec(0, 1, 0, 1, PadAny, CoreStr1),
	spec(0, 0, 1, 1, PadAny, CoreGeneric),
	spec(0, 0, 0, 1, PadAny, CoreGeneric),
}

func concatSpecs(groups ...[]Spec) []Spec {
	var out []Spec
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var conv2dFX8Table = concatSpecs(
	squareStr1(7),
	squareStr1(6),
	squareStr1(5),
	squareStr1(4),
	squareStr1(3),
	[]Spec{spec(3, 1, 0, 1, PadKernel, CoreStr1Fixed)},
	squareStr1(2),
	[]Spec{
		spec(2, 1, 0, 1, PadKernel, CoreStr1Fixed),
		spec(1, 3, 0, 1, PadKernel, CoreStr1Fixed),
		spec(1, 2, 0, 1, PadKernel, CoreStr1Fixed),
		spec(1, 1, 4, 1, PadNone, CoreK1x1Str1),
		spec(1, 1, 3, 1, PadNone, CoreK1x1Str1),
		spec(1, 1, 1, 1, PadNone, CoreK1x1Str1),
		spec(1, 1, 0, 1, PadNone, CoreK1x1Str1),
	},
	str1Tail,
	[]Spec{
		spec(3, 3, 1, 0, PadKernel, CoreGeneric),
		spec(3, 3, 0, 0, PadKernel, CoreGeneric),
		spec(2, 2, 1, 0, PadKernel, CoreGeneric),
		spec(2, 2, 0, 0, PadKernel, CoreGeneric),
		spec(1, 1, 8, 0, PadNone, CorePerPixel),
		spec(1, 1, 4, 0, PadNone, CorePerPixel),
		spec(1, 1, 3, 0, PadNone, CorePerPixel),
		spec(1, 1, 1, 0, PadNone, CorePerPixel),
		spec(1, 1, 0, 0, PadNone, CorePerPixel),
		generic,
	},
)

// conv2dFX16Table adds unpadded 5x5 rows to the FX8 table.
var conv2dFX16Table = concatSpecs(
	conv2dFX8Table[:6],
	[]Spec{
		spec(5, 5, 1, 1, PadNone, CoreNopad),
		spec(5, 5, 0, 1, PadNone, CoreNopad),
	},
	conv2dFX8Table[6:],
)

var conv2dFX8W16DTable = concatSpecs(
	squareStr1(5),
	squareStr1(3),
	[]Spec{spec(1, 1, 0, 1, PadNone, CoreK1x1Str1)},
	str1Tail,
	[]Spec{
		spec(3, 3, 0, 0, PadKernel, CoreGeneric),
		spec(1, 1, 0, 0, PadNone, CorePerPixel),
		generic,
	},
)

var depthwiseTable = []Spec{
	spec(7, 7, 0, 1, PadKernel, CoreStr1Fixed),
	spec(5, 5, 0, 1, PadKernel, CoreStr1Fixed),
	spec(3, 3, 0, 1, PadKernel, CoreStr1Fixed),
	spec(1, 0, 0, 1, PadAny, CoreStr1),
	spec(0, 1, 0, 1, PadAny, CoreStr1),
	spec(0, 0, 0, 1, PadAny, CoreGeneric),
	spec(3, 3, 0, 0, PadKernel, CoreGeneric),
	generic,
}

var conv2dSA8Table = []Spec{
	spec(3, 3, 0, 1, PadKernel, CoreStr1Fixed),
	spec(1, 1, 0, 1, PadNone, CoreK1x1Str1),
	spec(1, 0, 0, 1, PadAny, CoreStr1),
	spec(0, 1, 0, 1, PadAny, CoreStr1),
	spec(0, 0, 0, 1, PadAny, CoreGeneric),
	spec(1, 1, 0, 0, PadNone, CorePerPixel),
	generic,
}

var depthwiseSA8Table = []Spec{
	spec(3, 3, 0, 1, PadKernel, CoreStr1Fixed),
	spec(0, 0, 0, 1, PadAny, CoreGeneric),
	spec(3, 3, 0, 0, PadKernel, CoreGeneric),
	generic,
}

// Family is a convolution kernel family: operation and element types.
type Family uint8

const (
	Conv2DFX8 Family = iota
	Conv2DFX16
	Conv2DFX8W16D
	Conv2DSA8
	DepthwiseFX8
	DepthwiseFX16
	DepthwiseFX8W16D
	DepthwiseSA8
)

// Families lists every family in declaration order.
var Families = []Family{
	Conv2DFX8, Conv2DFX16, Conv2DFX8W16D, Conv2DSA8,
	DepthwiseFX8, DepthwiseFX16, DepthwiseFX8W16D, DepthwiseSA8,
}

var familyNames = [...]string{
	"conv2d_chw_fx8", "conv2d_chw_fx16", "conv2d_chw_fx8w16d", "conv2d_chw_sa8",
	"depthwise_conv2d_chw_fx8", "depthwise_conv2d_chw_fx16", "depthwise_conv2d_chw_fx8w16d", "depthwise_conv2d_chw_sa8",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("family(%d)", f)
}

// Depthwise reports whether f is a depthwise family.
func (f Family) Depthwise() bool { return f >= DepthwiseFX8 }

// Table returns the specialization table of f in dispatch order. The last
// row is always the generic path. The slice must not be modified.
func (f Family) Table() []Spec {
	switch f {
	case Conv2DFX8:
		return conv2dFX8Table
	case Conv2DFX16:
		return conv2dFX16Table
	case Conv2DFX8W16D:
		return conv2dFX8W16DTable
	case Conv2DSA8:
		return conv2dSA8Table
	case DepthwiseSA8:
		return depthwiseSA8Table
	default:
		return depthwiseTable
	}
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
func SelectGeometry(f Family, g Geometry) Spec {
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
func Select(f Family, in, weights *mli.Tensor, cfg *mli.Conv2DConfig) Spec {
	return SelectGeometry(f, GeometryOf(in, weights, cfg))
}
