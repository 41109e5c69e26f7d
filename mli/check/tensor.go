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

// Package check validates tensors and kernel configurations before any
// kernel touches memory. Every function returns nil or an *mli.Error whose
// Status names the first rule that failed.
package check

import (
	"log/slog"
	"unsafe"

	"github.com/ajroetker/go-mli/mli"
)

func fail(op string, st mli.Status, format string, args ...any) error {
	err := mli.Errorf(op, st, format, args...)
	slog.Debug("mli: check failed", "op", op, "status", st, "reason", err.Reason)
	return err
}

// Tensor checks that t is structurally valid: rank within MaxRank, positive
// shape, memory strides large enough for the shape, a backing slice of the
// right Go type and a capacity that covers the addressed span.
func Tensor(t *mli.Tensor) error { return tensor("tensor", t) }

func tensor(op string, t *mli.Tensor) error {
	if t == nil {
		return fail(op, mli.BadTensor, "nil tensor")
	}
	if err := buffer(op, t); err != nil {
		return err
	}
	return shapeStrides(op, t.Shape, t.MemStride, t.Rank, t.Capacity, t.ElType.Size())
}

// buffer checks the Go side of a tensor: Data holds a slice of the container
// type matching ElType, and Capacity does not exceed it.
func buffer(op string, t *mli.Tensor) error {
	if t.Data == nil {
		return fail(op, mli.BadTensor, "nil data")
	}
	if t.ElType.Size() == 0 {
		return fail(op, mli.BadTensor, "unknown element type %v", t.ElType)
	}
	if !t.DataMatchesType() {
		return fail(op, mli.BadTensor, "data %T does not hold %v elements", t.Data, t.ElType)
	}
	if t.Capacity < 0 || t.Capacity > t.DataLen()*t.ElType.Size() {
		return fail(op, mli.BadTensor, "capacity %d exceeds data of %d elements", t.Capacity, t.DataLen())
	}
	return nil
}

func shapeStrides(op string, shape, stride [mli.MaxRank]int, rank, capacity, elSize int) error {
	if rank < 0 || rank > mli.MaxRank {
		return fail(op, mli.BadTensor, "rank %d", rank)
	}
	for i := 0; i < rank; i++ {
		if stride[i] < 0 {
			return fail(op, mli.BadTensor, "negative memory stride on axis %d", i)
		}
		if shape[i] <= 0 {
			return fail(op, mli.BadTensor, "shape[%d] = %d", i, shape[i])
		}
	}

	stridesSet := rank > 0
	for i := 0; i < rank; i++ {
		if stride[i] == 0 {
			stridesSet = false
		}
	}
	size := 1
	if stridesSet {
		prevShape, prevStride := 1, 1
		for i := rank - 1; i >= 0; i-- {
			if stride[i] < prevShape*prevStride {
				return fail(op, mli.BadTensor, "memory stride %d on axis %d too small", stride[i], i)
			}
			prevShape, prevStride = shape[i], stride[i]
			size += (prevShape - 1) * prevStride
		}
	} else {
		for i := rank - 1; i >= 0; i-- {
			size *= shape[i]
		}
	}
	if capacity < size*elSize {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", capacity, size*elSize)
	}
	return nil
}

// Scalar checks that t is a scalar: either rank 0 with one value in Data, or
// a valid tensor of any rank holding exactly one element.
func Scalar(t *mli.Tensor) error { return scalar("scalar", t) }

func scalar(op string, t *mli.Tensor) error {
	if t == nil {
		return fail(op, mli.BadTensor, "nil tensor")
	}
	if t.Rank == 0 {
		if !t.DataMatchesType() || t.DataLen() < 1 {
			return fail(op, mli.BadTensor, "scalar without a value")
		}
		return nil
	}
	if err := tensor(op, t); err != nil {
		return err
	}
	if t.Count() != 1 {
		return fail(op, mli.ShapeMismatch, "scalar with %d elements", t.Count())
	}
	return nil
}

// IsScalar reports whether t is rank 0 or holds a single element. A rank
// outside [0, MaxRank] is never a scalar.
func IsScalar(t *mli.Tensor) bool {
	if t.Rank < 0 || t.Rank > mli.MaxRank {
		return false
	}
	return t.Rank == 0 || t.Count() == 1
}

// byteSpan returns the address range [lo, hi) of the Go slice behind t.Data.
func byteSpan(t *mli.Tensor) (lo, hi uintptr) {
	switch d := t.Data.(type) {
	case []int8:
		return sliceSpan(d)
	case []int16:
		return sliceSpan(d)
	case []int32:
		return sliceSpan(d)
	case []float32:
		return sliceSpan(d)
	}
	return 0, 0
}

func sliceSpan[T any](s []T) (lo, hi uintptr) {
	if len(s) == 0 {
		return 0, 0
	}
	var z T
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return lo, lo + uintptr(len(s))*unsafe.Sizeof(z)
}

// Overlap reports whether the buffers of a and b share memory.
func Overlap(a, b *mli.Tensor) bool {
	if a == nil || b == nil {
		return false
	}
	alo, ahi := byteSpan(a)
	blo, bhi := byteSpan(b)
	return alo < ahi && blo < bhi && alo < bhi && blo < ahi
}

// noAlias rejects a destination that shares memory with any operand, for
// kernels that read operands after the first write to dst.
func noAlias(op, name string, dst *mli.Tensor, operands ...*mli.Tensor) error {
	for i, t := range operands {
		if Overlap(dst, t) {
			return fail(op, mli.IncompatibleTensors, "%s overlaps operand %d", name, i)
		}
	}
	return nil
}

// outPresent checks the output descriptor the way every kernel needs it
// before shapes are known: non-nil with a usable buffer.
func outPresent(op string, out *mli.Tensor) error {
	if out == nil {
		return fail(op, mli.BadTensor, "nil output tensor")
	}
	return buffer(op, out)
}

// outType checks that the output buffer can hold elements of type want.
func outType(op string, out *mli.Tensor, want mli.ElType) error {
	ok := false
	switch out.Data.(type) {
	case []int8:
		ok = want == mli.FX8 || want == mli.SA8
	case []int16:
		ok = want == mli.FX16
	case []int32:
		ok = want == mli.SA32
	case []float32:
		ok = want == mli.FP32
	}
	if !ok {
		return fail(op, mli.TypeMismatch, "output data %T cannot hold %v", out.Data, want)
	}
	return nil
}

func isType(op string, name string, t *mli.Tensor, want mli.ElType) error {
	if t.ElType != want {
		return fail(op, mli.TypeMismatch, "%s is %v, want %v", name, t.ElType, want)
	}
	return nil
}

func innerStrideOne(t *mli.Tensor) bool {
	if t.Rank == 0 {
		return true
	}
	s := t.MemStride[t.Rank-1]
	return s == 0 || s == 1
}

// contiguous reports whether the memory strides, when set, describe the
// packed layout of shape.
func contiguous(shape, stride [mli.MaxRank]int, rank int) bool {
	for i := 0; i < rank; i++ {
		if stride[i] == 0 {
			return true
		}
	}
	prevShape, prevStride := 1, 1
	for i := rank - 1; i >= 0; i-- {
		if stride[i] != prevShape*prevStride {
			return false
		}
		prevShape, prevStride = shape[i], stride[i]
	}
	return true
}

// outCapacity checks that out can hold a result of the given shape, honouring
// explicit output memory strides when they are set.
func outCapacity(op string, out *mli.Tensor, shape []int, elSize int) error {
	var s [mli.MaxRank]int
	copy(s[:], shape)
	stride := out.MemStride
	set := len(shape) > 0
	for i := range shape {
		if stride[i] == 0 {
			set = false
		}
	}
	if !set {
		stride = [mli.MaxRank]int{}
	}
	return shapeStrides(op, s, stride, len(shape), out.Capacity, elSize)
}

// CountElements checks the arguments of a partial element count.
func CountElements(t *mli.Tensor, startDim int) error {
	const op = "count_elements"
	if t == nil {
		return fail(op, mli.BadTensor, "nil tensor")
	}
	if t.Rank > mli.MaxRank {
		return fail(op, mli.BadTensor, "rank %d exceeds %d", t.Rank, mli.MaxRank)
	}
	if startDim < 0 || startDim >= t.Rank {
		return fail(op, mli.BadFuncCfg, "start dim %d outside rank %d", startDim, t.Rank)
	}
	return nil
}

// PointToSubtensor checks a sub-tensor request against its parent.
func PointToSubtensor(in *mli.Tensor, cfg *mli.SubtensorConfig, out *mli.Tensor) error {
	const op = "point_to_subtensor"
	if err := tensor(op, in); err != nil {
		return err
	}
	if out == nil {
		return fail(op, mli.BadTensor, "nil output tensor")
	}
	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	if cfg.CoordNum < 1 || cfg.CoordNum > in.Rank {
		return fail(op, mli.BadFuncCfg, "%d coordinates for rank %d", cfg.CoordNum, in.Rank)
	}
	for i := 0; i < cfg.CoordNum; i++ {
		if cfg.StartCoord[i] < 0 || cfg.StartCoord[i] >= in.Shape[i] {
			return fail(op, mli.BadFuncCfg, "coordinate %d = %d outside %d", i, cfg.StartCoord[i], in.Shape[i])
		}
	}
	last := cfg.CoordNum - 1
	if cfg.FirstOutDimSize < 1 || cfg.StartCoord[last]+cfg.FirstOutDimSize > in.Shape[last] {
		return fail(op, mli.BadFuncCfg, "sub-tensor end %d beyond %d", cfg.StartCoord[last]+cfg.FirstOutDimSize, in.Shape[last])
	}
	return nil
}
