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

package mli

import "fmt"

// MaxRank is the maximum number of dimensions of a tensor.
const MaxRank = 4

// ElType enumerates the element formats a tensor buffer can hold.
type ElType uint8

const (
	FX8 ElType = iota
	FX16
	SA8
	SA32
	FP32
)

func (t ElType) String() string {
	switch t {
	case FX8:
		return "fx8"
	case FX16:
		return "fx16"
	case SA8:
		return "sa8"
	case SA32:
		return "sa32"
	case FP32:
		return "fp32"
	default:
		return fmt.Sprintf("ElType(%d)", uint8(t))
	}
}

// Size returns the element size in bytes, or 0 for an unknown type.
func (t ElType) Size() int {
	switch t {
	case FX8, SA8:
		return 1
	case FX16:
		return 2
	case SA32, FP32:
		return 4
	default:
		return 0
	}
}

// IsFX reports whether t is a power-of-two fixed-point format.
func (t ElType) IsFX() bool { return t == FX8 || t == FX16 }

// IsSA reports whether t is a scale/zero-point asymmetric format.
func (t ElType) IsSA() bool { return t == SA8 || t == SA32 }

// SAParams describes asymmetric quantization:
//
//	real = (stored - ZeroPoint) * Scale * 2^-ScaleFracBits
//
// Dim < 0 selects per-tensor quantization and every slice has length 1.
// Otherwise each slice holds one entry per index along axis Dim.
type SAParams struct {
	Dim           int
	Scale         []int16
	ZeroPoint     []int16
	ScaleFracBits []int8
}

// ScaleAt returns the scale, zero point and scale fractional bits that apply
// to index idx along the quantization axis.
func (p *SAParams) ScaleAt(idx int) (scale int16, zp int16, frac int8) {
	if p.Dim < 0 || len(p.Scale) == 1 {
		idx = 0
	}
	scale, frac = 1, 0
	if idx < len(p.Scale) {
		scale = p.Scale[idx]
	}
	if idx < len(p.ZeroPoint) {
		zp = p.ZeroPoint[idx]
	} else if len(p.ZeroPoint) > 0 {
		zp = p.ZeroPoint[0]
	}
	if idx < len(p.ScaleFracBits) {
		frac = p.ScaleFracBits[idx]
	} else if len(p.ScaleFracBits) > 0 {
		frac = p.ScaleFracBits[0]
	}
	return scale, zp, frac
}

// ElParams carries the quantization parameters of a tensor. FracBits is used
// by FX types, SA by asymmetric types; FP32 uses neither.
type ElParams struct {
	FracBits int
	SA       SAParams
}

// Tensor is an n-dimensional view over a caller-owned buffer.
//
// MemStride holds per-axis element strides. When every stride is zero the
// layout is contiguous and strides are derived from Shape.
type Tensor struct {
	Data      any
	Capacity  int
	Shape     [MaxRank]int
	MemStride [MaxRank]int
	Rank      int
	ElType    ElType
	ElParams  ElParams
}

// Elem is the set of Go types a tensor buffer can be made of.
type Elem interface {
	~int8 | ~int16 | ~int32 | ~float32
}

// Values returns the tensor buffer as []T, or nil when the buffer has a
// different Go type.
func Values[T Elem](t *Tensor) []T {
	if t == nil {
		return nil
	}
	s, _ := t.Data.([]T)
	return s
}

// DataLen returns the number of elements in the backing slice, or -1 when
// Data is nil or not one of the supported slice types.
func (t *Tensor) DataLen() int {
	switch d := t.Data.(type) {
	case []int8:
		return len(d)
	case []int16:
		return len(d)
	case []int32:
		return len(d)
	case []float32:
		return len(d)
	default:
		return -1
	}
}

// DataMatchesType reports whether the Go type of Data agrees with ElType.
func (t *Tensor) DataMatchesType() bool {
	switch t.Data.(type) {
	case []int8:
		return t.ElType == FX8 || t.ElType == SA8
	case []int16:
		return t.ElType == FX16
	case []int32:
		return t.ElType == SA32
	case []float32:
		return t.ElType == FP32
	default:
		return false
	}
}

// Dims returns the used part of Shape.
func (t *Tensor) Dims() []int {
	return append([]int(nil), t.Shape[:t.usedRank()]...)
}

// usedRank is Rank bounded to [0, MaxRank] so malformed descriptors can still
// be described in error messages.
func (t *Tensor) usedRank() int {
	return min(max(t.Rank, 0), MaxRank)
}

// SetShape sets Rank and Shape from dims and clears memory strides.
func (t *Tensor) SetShape(dims ...int) {
	t.Rank = len(dims)
	t.Shape = [MaxRank]int{}
	t.MemStride = [MaxRank]int{}
	copy(t.Shape[:], dims)
}

// StridesSet reports whether all memory strides of the used dimensions are
// explicitly set.
func (t *Tensor) StridesSet() bool {
	if t.Rank == 0 {
		return false
	}
	for i := 0; i < t.Rank; i++ {
		if t.MemStride[i] == 0 {
			return false
		}
	}
	return true
}

// Strides returns the effective per-axis element strides: MemStride when all
// strides are set, otherwise contiguous strides derived from Shape.
func (t *Tensor) Strides() [MaxRank]int {
	if t.StridesSet() {
		return t.MemStride
	}
	var s [MaxRank]int
	step := 1
	for i := t.Rank - 1; i >= 0; i-- {
		s[i] = step
		step *= t.Shape[i]
	}
	return s
}

// CountPart returns the number of elements in dimensions [startDim, Rank).
// A rank-0 tensor holds one element. Dimensions beyond MaxRank are ignored.
func (t *Tensor) CountPart(startDim int) int {
	n := 1
	for i := max(startDim, 0); i < t.usedRank(); i++ {
		n *= t.Shape[i]
	}
	return n
}

// Count returns the total number of elements.
func (t *Tensor) Count() int { return t.CountPart(0) }

// CopyFormat copies element type and quantization parameters from src.
func (t *Tensor) CopyFormat(src *Tensor) {
	t.ElType = src.ElType
	t.ElParams = src.ElParams
}

// CopyShape copies rank and shape from src and clears memory strides.
func (t *Tensor) CopyShape(src *Tensor) {
	t.Rank = src.Rank
	t.Shape = src.Shape
	t.MemStride = [MaxRank]int{}
}

func newTensor(shape []int, typ ElType, data any, n int) *Tensor {
	t := &Tensor{Data: data, Capacity: n * typ.Size(), ElType: typ}
	t.Rank = len(shape)
	copy(t.Shape[:], shape)
	return t
}

// NewFX8 wraps data as an FX8 tensor of the given shape.
func NewFX8(shape []int, fracBits int, data []int8) *Tensor {
	t := newTensor(shape, FX8, data, len(data))
	t.ElParams.FracBits = fracBits
	return t
}

// NewFX16 wraps data as an FX16 tensor of the given shape.
func NewFX16(shape []int, fracBits int, data []int16) *Tensor {
	t := newTensor(shape, FX16, data, len(data))
	t.ElParams.FracBits = fracBits
	return t
}

// NewSA8 wraps data as an SA8 tensor.
func NewSA8(shape []int, params SAParams, data []int8) *Tensor {
	t := newTensor(shape, SA8, data, len(data))
	t.ElParams.SA = params
	return t
}

// NewSA32 wraps data as an SA32 tensor.
func NewSA32(shape []int, params SAParams, data []int32) *Tensor {
	t := newTensor(shape, SA32, data, len(data))
	t.ElParams.SA = params
	return t
}

// NewFP32 wraps data as an FP32 tensor.
func NewFP32(shape []int, data []float32) *Tensor {
	return newTensor(shape, FP32, data, len(data))
}

// PerTensor returns per-tensor SA parameters.
func PerTensor(scale, zeroPoint int16, scaleFracBits int8) SAParams {
	return SAParams{
		Dim:           -1,
		Scale:         []int16{scale},
		ZeroPoint:     []int16{zeroPoint},
		ScaleFracBits: []int8{scaleFracBits},
	}
}

// ElementSize returns the size in bytes of one element of t.
func ElementSize(t *Tensor) int {
	return t.ElType.Size()
}
