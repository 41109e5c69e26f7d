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

// Package activation implements the element-wise non-linearities of the
// library on fixed-point tensors.
//
// Relu, LeakyRelu and PRelu keep the input notation. Tanh, Sigm and Softmax always
// produce Q7 (8-bit) or Q15 (16-bit) results, whatever the input notation;
// see [OutFracBits].
//
// Every operation reads the input as a flat contiguous vector, so in and out
// may share a buffer.
package activation

import (
	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// Kernel evaluates activations with the rounding mode of one platform
// description.
type Kernel struct {
	desc mli.Description
}

// New returns a Kernel bound to desc.
func New(desc mli.Description) *Kernel {
	return &Kernel{desc: desc}
}

func platform() *Kernel { return New(mli.CurrentPlatform()) }

func (k *Kernel) ReluFX8(in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) error {
	if err := check.ReluFX8(in, cfg, out); err != nil {
		return err
	}
	relu[int8](in, cfg, out)
	return nil
}

func (k *Kernel) ReluFX16(in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) error {
	if err := check.ReluFX16(in, cfg, out); err != nil {
		return err
	}
	relu[int16](in, cfg, out)
	return nil
}

func relu[T mli.Fixed](in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) {
	n := in.Count()
	src, dst := mli.Values[T](in)[:n], mli.Values[T](out)[:n]
	lower, upper := mli.ReluMinMax[T](cfg.Type, in.ElParams.FracBits)
	for i, x := range src {
		dst[i] = T(mli.Clip(int64(x), lower, upper))
	}
	out.CopyFormat(in)
	out.CopyShape(in)
}

// LeakyReluFX8 scales negative inputs by the scalar slope.
func (k *Kernel) LeakyReluFX8(in, slope, out *mli.Tensor) error {
	if err := check.LeakyReluFX8(in, slope, out); err != nil {
		return err
	}
	leakyRelu[int8](k.desc.Rounding, in, slope, out)
	return nil
}

// LeakyReluFX16 scales negative inputs by the scalar slope.
func (k *Kernel) LeakyReluFX16(in, slope, out *mli.Tensor) error {
	if err := check.LeakyReluFX16(in, slope, out); err != nil {
		return err
	}
	leakyRelu[int16](k.desc.Rounding, in, slope, out)
	return nil
}

func leakyRelu[T mli.Fixed](rnd mli.Rounding, in, slope, out *mli.Tensor) {
	n := in.Count()
	src, dst := mli.Values[T](in)[:n], mli.Values[T](out)[:n]
	l := newLeak(mli.Values[T](slope)[0], slope.ElParams.FracBits, rnd)
	for i, x := range src {
		dst[i] = l.apply(x)
	}
	out.CopyFormat(in)
	out.CopyShape(in)
}

// leak scales by one slope. It picks between x and x*slope with max when the
// slope is below one and with min otherwise, which also covers slopes of
// either sign.
type leak[T mli.Fixed] struct {
	slope int64
	shift int
	below bool
	rnd   mli.Rounding
}

func newLeak[T mli.Fixed](slope T, frac int, rnd mli.Rounding) leak[T] {
	s := int64(slope)
	return leak[T]{slope: s, shift: frac, below: s < mli.Asl(1, frac), rnd: rnd}
}

func (l leak[T]) apply(x T) T {
	scaled := mli.CastAcc[T](int64(x)*l.slope, l.shift, l.rnd)
	if l.below {
		return max(x, scaled)
	}
	return min(x, scaled)
}

// PReluFX8 is LeakyReluFX8 with a slope per index along cfg.Axis.
func (k *Kernel) PReluFX8(in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) error {
	if err := check.PReluFX8(in, slope, cfg, out); err != nil {
		return err
	}
	prelu[int8](k.desc.Rounding, in, slope, cfg, out)
	return nil
}

// PReluFX16 is LeakyReluFX16 with a slope per index along cfg.Axis.
func (k *Kernel) PReluFX16(in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) error {
	if err := check.PReluFX16(in, slope, cfg, out); err != nil {
		return err
	}
	prelu[int16](k.desc.Rounding, in, slope, cfg, out)
	return nil
}

func prelu[T mli.Fixed](rnd mli.Rounding, in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) {
	if cfg.Axis < 0 {
		leakyRelu[T](rnd, in, slope, out)
		return
	}
	n := in.Count()
	src, dst := mli.Values[T](in)[:n], mli.Values[T](out)[:n]
	dim, inner := in.Shape[cfg.Axis], in.CountPart(cfg.Axis+1)
	leaks := make([]leak[T], dim)
	for i, s := range mli.Values[T](slope)[:dim] {
		leaks[i] = newLeak(s, slope.ElParams.FracBits, rnd)
	}
	for i, x := range src {
		dst[i] = leaks[(i/inner)%dim].apply(x)
	}
	out.CopyFormat(in)
	out.CopyShape(in)
}

// TanhFX8 computes tanh into Q7.
func (k *Kernel) TanhFX8(in, out *mli.Tensor) error {
	if err := check.BasicActivationFX8(in, out); err != nil {
		return err
	}
	apply[int8](tanhLUT, k.desc.Rounding, in, out)
	return nil
}

// TanhFX16 computes tanh into Q15.
func (k *Kernel) TanhFX16(in, out *mli.Tensor) error {
	if err := check.BasicActivationFX16(in, out); err != nil {
		return err
	}
	apply[int16](tanhLUT, k.desc.Rounding, in, out)
	return nil
}

// SigmFX8 computes the logistic function into Q7.
func (k *Kernel) SigmFX8(in, out *mli.Tensor) error {
	if err := check.BasicActivationFX8(in, out); err != nil {
		return err
	}
	apply[int8](sigmLUT, k.desc.Rounding, in, out)
	return nil
}

// SigmFX16 computes the logistic function into Q15.
func (k *Kernel) SigmFX16(in, out *mli.Tensor) error {
	if err := check.BasicActivationFX16(in, out); err != nil {
		return err
	}
	apply[int16](sigmLUT, k.desc.Rounding, in, out)
	return nil
}

func ReluFX8(in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) error {
	return platform().ReluFX8(in, cfg, out)
}

func ReluFX16(in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) error {
	return platform().ReluFX16(in, cfg, out)
}

func PReluFX8(in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) error {
	return platform().PReluFX8(in, slope, cfg, out)
}

func PReluFX16(in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) error {
	return platform().PReluFX16(in, slope, cfg, out)
}

func LeakyReluFX8(in, slope, out *mli.Tensor) error { return platform().LeakyReluFX8(in, slope, out) }
func LeakyReluFX16(in, slope, out *mli.Tensor) error { return platform().LeakyReluFX16(in, slope, out) }
func TanhFX8(in, out *mli.Tensor) error { return platform().TanhFX8(in, out) }
func TanhFX16(in, out *mli.Tensor) error { return platform().TanhFX16(in, out) }
func SigmFX8(in, out *mli.Tensor) error { return platform().SigmFX8(in, out) }
func SigmFX16(in, out *mli.Tensor) error { return platform().SigmFX16(in, out) }
func SoftmaxFX8(in, out *mli.Tensor) error { return platform().SoftmaxFX8(in, out) }
func SoftmaxFX16(in, out *mli.Tensor) error { return platform().SoftmaxFX16(in, out) }
