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

package check

import (
	"slices"

	"github.com/ajroetker/go-mli/mli"
)

// EltwiseOp names an element-wise binary operation.
type EltwiseOp int

const (
	EltwiseAdd EltwiseOp = iota
	EltwiseSub
	EltwiseMul
	EltwiseMin
	EltwiseMax
)

var eltwiseNames = [...]string{"add", "sub", "mul", "min", "max"}

func (o EltwiseOp) String() string {
	if o >= 0 && int(o) < len(eltwiseNames) {
		return eltwiseNames[o]
	}
	return "eltwise"
}

// Eltwise checks the operands of an element-wise operation. Either input may
// be a scalar; otherwise shapes must be identical. Every operation except
// multiplication requires both inputs in the same FX notation.
func Eltwise(o EltwiseOp, in1, in2, out *mli.Tensor) error {
	return eltwise("eltwise_"+o.String(), o, in1, in2, out)
}

func eltwise(op string, o EltwiseOp, in1, in2, out *mli.Tensor) error {
	if in1 == nil || in2 == nil {
		return fail(op, mli.BadTensor, "nil input tensor")
	}
	for _, in := range []*mli.Tensor{in1, in2} {
		var err error
		if in.Rank == 0 {
			err = scalar(op, in)
		} else {
			err = tensor(op, in)
		}
		if err != nil {
			return err
		}
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if in1.Rank == 0 && in2.Rank == 0 {
		return fail(op, mli.NotSupported, "both inputs are rank-0 scalars")
	}
	if in1.ElType != in2.ElType {
		return fail(op, mli.IncompatibleTensors, "inputs %v and %v", in1.ElType, in2.ElType)
	}
	if o != EltwiseMul && in1.ElParams.FracBits != in2.ElParams.FracBits {
		return fail(op, mli.IncompatibleTensors, "frac bits %d and %d", in1.ElParams.FracBits, in2.ElParams.FracBits)
	}
	if !IsScalar(in1) && !IsScalar(in2) {
		if !slices.Equal(in1.Shape[:in1.Rank], in2.Shape[:in2.Rank]) {
			return fail(op, mli.ShapeMismatch, "shapes %v and %v", in1.Dims(), in2.Dims())
		}
	}
	for _, in := range []*mli.Tensor{in1, in2} {
		if in.Rank > 0 && !contiguous(in.Shape, in.MemStride, in.Rank) {
			return fail(op, mli.IncompatibleTensors, "inputs must be contiguous")
		}
	}
	// A broadcast scalar is read on every step, so the output may cover a
	// full-size input but not the scalar.
	if c1, c2 := in1.Count(), in2.Count(); c1 != c2 {
		bcast := in1
		if c2 < c1 {
			bcast = in2
		}
		if err := noAlias(op, "output", out, bcast); err != nil {
			return err
		}
	}
	n := max(in1.Count(), in2.Count()) * in1.ElType.Size()
	if n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	return nil
}

func eltwiseTyped(o EltwiseOp, in1, in2, out *mli.Tensor, want mli.ElType) error {
	op := "eltwise_" + o.String() + "_" + want.String()
	if err := eltwise(op, o, in1, in2, out); err != nil {
		return err
	}
	if err := isType(op, "in1", in1, want); err != nil {
		return err
	}
	if err := isType(op, "in2", in2, want); err != nil {
		return err
	}
	return outType(op, out, want)
}

// EltwiseFX8 checks an 8-bit fixed-point element-wise operation.
func EltwiseFX8(o EltwiseOp, in1, in2, out *mli.Tensor) error {
	return eltwiseTyped(o, in1, in2, out, mli.FX8)
}

// EltwiseFX16 checks a 16-bit fixed-point element-wise operation.
func EltwiseFX16(o EltwiseOp, in1, in2, out *mli.Tensor) error {
	return eltwiseTyped(o, in1, in2, out, mli.FX16)
}
