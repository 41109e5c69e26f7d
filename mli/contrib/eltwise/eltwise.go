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

// Package eltwise implements element-wise binary operations on fixed-point
// tensors: add and subtract with saturation, multiply with a rescaling
// shift, and min and max.
//
// Either operand may be a scalar, which is broadcast against the other.
// Add, Sub, Min and Max require both inputs in the same notation and produce
// it; Mul shifts the product to the fractional bits the caller set on the
// output.
package eltwise

import (
	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// Op re-exports the element-wise operation selector of package check.
type Op = check.EltwiseOp

const (
	Add = check.EltwiseAdd
	Sub = check.EltwiseSub
	Mul = check.EltwiseMul
	Min = check.EltwiseMin
	Max = check.EltwiseMax
)

// Kernel runs element-wise operations with the rounding mode of one platform
// description.
type Kernel struct {
	desc mli.Description
}

// New returns a Kernel bound to desc.
func New(desc mli.Description) *Kernel {
	return &Kernel{desc: desc}
}

func platform() *Kernel { return New(mli.CurrentPlatform()) }

// FX8 applies o to two 8-bit tensors.
func (k *Kernel) FX8(o Op, in1, in2, out *mli.Tensor) error {
	if err := check.EltwiseFX8(o, in1, in2, out); err != nil {
		return err
	}
	run[int8](o, k.desc.Rounding, in1, in2, out)
	return nil
}

// FX16 applies o to two 16-bit tensors.
func (k *Kernel) FX16(o Op, in1, in2, out *mli.Tensor) error {
	if err := check.EltwiseFX16(o, in1, in2, out); err != nil {
		return err
	}
	run[int16](o, k.desc.Rounding, in1, in2, out)
	return nil
}

func run[T mli.Fixed](o Op, rnd mli.Rounding, in1, in2, out *mli.Tensor) {
	a, b, dst := mli.Values[T](in1), mli.Values[T](in2), mli.Values[T](out)
	n1, n2 := in1.Count(), in2.Count()
	step1, step2 := 1, 1
	if n1 == 1 {
		step1 = 0
	}
	if n2 == 1 {
		step2 = 0
	}
	n := max(n1, n2)

	switch o {
	case Add:
		for i := 0; i < n; i++ {
			dst[i] = mli.AddSat(a[i*step1], b[i*step2])
		}
	case Sub:
		for i := 0; i < n; i++ {
			dst[i] = mli.SubSat(a[i*step1], b[i*step2])
		}
	case Mul:
		shift := mli.CalcShift(in1.ElParams.FracBits, in2.ElParams.FracBits, out.ElParams.FracBits)
		for i := 0; i < n; i++ {
			dst[i] = mli.CastAcc[T](int64(a[i*step1])*int64(b[i*step2]), shift, rnd)
		}
	case Min:
		for i := 0; i < n; i++ {
			dst[i] = min(a[i*step1], b[i*step2])
		}
	case Max:
		for i := 0; i < n; i++ {
			dst[i] = max(a[i*step1], b[i*step2])
		}
	}

	shaped := in2
	if n1 > n2 || (n1 == n2 && in1.Rank >= in2.Rank) {
		shaped = in1
	}
	out.CopyShape(shaped)
	out.ElType = in1.ElType
	if o != Mul {
		out.ElParams.FracBits = in1.ElParams.FracBits
	}
}

// AddFX8 adds two 8-bit tensors with saturation.
func AddFX8(in1, in2, out *mli.Tensor) error { return platform().FX8(Add, in1, in2, out) }

// AddFX16 adds two 16-bit tensors with saturation.
func AddFX16(in1, in2, out *mli.Tensor) error { return platform().FX16(Add, in1, in2, out) }

// SubFX8 subtracts in2 from in1 with saturation.
func SubFX8(in1, in2, out *mli.Tensor) error { return platform().FX8(Sub, in1, in2, out) }

// SubFX16 subtracts in2 from in1 with saturation.
func SubFX16(in1, in2, out *mli.Tensor) error { return platform().FX16(Sub, in1, in2, out) }

// MulFX8 multiplies two 8-bit tensors into the notation of out.
func MulFX8(in1, in2, out *mli.Tensor) error { return platform().FX8(Mul, in1, in2, out) }

// MulFX16 multiplies two 16-bit tensors into the notation of out.
func MulFX16(in1, in2, out *mli.Tensor) error { return platform().FX16(Mul, in1, in2, out) }

// MinFX8 takes the element-wise minimum of two 8-bit tensors.
func MinFX8(in1, in2, out *mli.Tensor) error { return platform().FX8(Min, in1, in2, out) }

// MinFX16 takes the element-wise minimum of two 16-bit tensors.
func MinFX16(in1, in2, out *mli.Tensor) error { return platform().FX16(Min, in1, in2, out) }

// MaxFX8 takes the element-wise maximum of two 8-bit tensors.
func MaxFX8(in1, in2, out *mli.Tensor) error { return platform().FX8(Max, in1, in2, out) }

// MaxFX16 takes the element-wise maximum of two 16-bit tensors.
func MaxFX16(in1, in2, out *mli.Tensor) error { return platform().FX16(Max, in1, in2, out) }
