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

package quantize

import (
	"math"

	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// mulBits is the precision of the requantization multiplier. Products with
// an SA32 value stay below 2^62.
const mulBits = 15

// Converter converts tensors with the rounding mode of one platform
// description.
type Converter struct {
	desc mli.Description
}

// New returns a Converter bound to desc.
func New(desc mli.Description) *Converter {
	return &Converter{desc: desc}
}

// Convert writes in to out in the element format out describes.
func Convert(in, out *mli.Tensor) error {
	return New(mli.CurrentPlatform()).Convert(in, out)
}

// Convert writes in to out in the element format out describes.
func (c *Converter) Convert(in, out *mli.Tensor) error {
	if err := check.Convert(in, out); err != nil {
		return err
	}
	n := in.Count()
	src, dst := axisOf(in, in), axisOf(out, in)

	switch {
	case in.ElType == mli.FP32 && out.ElType == mli.FP32:
		copy(mli.Values[float32](out)[:n], mli.Values[float32](in)[:n])
	case out.ElType == mli.FP32:
		get, _ := access(in)
		f := mli.Values[float32](out)
		for i := 0; i < n; i++ {
			p := src.params(i)
			f[i] = float32(math.Ldexp(float64(get(i)-p.zp)*float64(p.scale), -p.frac))
		}
	case in.ElType == mli.FP32:
		_, set := access(out)
		f := mli.Values[float32](in)
		for i := 0; i < n; i++ {
			p := dst.params(i)
			q := math.Round(math.Ldexp(float64(f[i]), p.frac) / float64(p.scale))
			set(i, saturate(q)+p.zp)
		}
	default:
		get, _ := access(in)
		_, set := access(out)
		cached, perElement := requantParams{}, src.perAxis() || dst.perAxis()
		if !perElement {
			cached = requant(src.params(0), dst.params(0))
		}
		for i := 0; i < n; i++ {
			r := cached
			if perElement {
				r = requant(src.params(i), dst.params(i))
			}
			v := get(i) - r.zpIn
			if r.exact {
				v = mli.AsrRnd(v, r.shift, c.desc.Rounding)
			} else {
				v = mli.AsrRnd(v*r.mul, r.shift, c.desc.Rounding)
			}
			set(i, v+r.zpOut)
		}
	}
	out.CopyShape(in)
	return nil
}

// quant is the affine mapping of one tensor slice.
type quant struct {
	scale int64
	zp    int64
	frac  int
}

// axis resolves the quantization parameters of flat element i.
type axis struct {
	t      *mli.Tensor
	stride int
	n      int
}

// axisOf resolves the parameters of t over the geometry of shaped; the
// output of a conversion takes the input shape.
func axisOf(t, shaped *mli.Tensor) axis {
	a := axis{t: t, stride: 1, n: 1}
	if t.ElType.IsSA() && t.ElParams.SA.Dim >= 0 {
		d := t.ElParams.SA.Dim
		a.stride, a.n = shaped.CountPart(d+1), shaped.Shape[d]
	}
	return a
}

func (a axis) perAxis() bool { return a.n > 1 }

func (a axis) params(i int) quant {
	if !a.t.ElType.IsSA() {
		return quant{scale: 1, frac: a.t.ElParams.FracBits}
	}
	scale, zp, frac := a.t.ElParams.SA.ScaleAt(i / a.stride % a.n)
	return quant{scale: int64(scale), zp: int64(zp), frac: int(frac)}
}

type requantParams struct {
	zpIn  int64
	zpOut int64
	mul   int64
	shift int
	exact bool
}

// requant maps real = (q - in.zp) * in.scale * 2^-in.frac onto the output
// notation. Equal scales need no multiplier, which keeps FX conversions
// exact.
func requant(in, out quant) requantParams {
	r := requantParams{zpIn: in.zp, zpOut: out.zp, shift: in.frac - out.frac}
	if in.scale == out.scale {
		r.exact = true
		return r
	}
	r.mul = (in.scale << mulBits) / out.scale
	r.shift += mulBits
	return r
}

func saturate(q float64) int64 {
	return int64(max(min(q, math.MaxInt32), math.MinInt32))
}

// access returns element accessors of an integer tensor. set saturates to
// the container.
func access(t *mli.Tensor) (get func(int) int64, set func(int, int64)) {
	switch d := t.Data.(type) {
	case []int8:
		return func(i int) int64 { return int64(d[i]) }, func(i int, v int64) { d[i] = mli.Sat[int8](v) }
	case []int16:
		return func(i int) int64 { return int64(d[i]) }, func(i int, v int64) { d[i] = mli.Sat[int16](v) }
	case []int32:
		return func(i int) int64 { return int64(d[i]) }, func(i int, v int64) { d[i] = mli.Sat[int32](v) }
	}
	return nil, nil
}
