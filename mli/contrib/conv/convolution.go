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

import "github.com/ajroetker/go-mli/mli"

// requant is the output stage of one output channel.
//
// FX: acc = bias << biasShift + Σ in*w, out = clip(asr_rnd(acc, outShift)).
// SA: acc = bias + Σ (in - zpIn)*w,
// out = clip(sat16(asr_rnd(sat32(acc)*mul, outShift)) + zpOut), where
// mul = sat16((inScale << 14) / outScale) * wScale.
type requant struct {
	asym      bool
	biasShift int
	outShift  int
	mul       int64
	zpIn      int64
	zpOut     int64
	lo, hi    int64
	rnd       mli.Rounding
}

func (q *requant) init(bias int64) int64 {
	if q.asym {
		return bias
	}
	return mli.Asl(bias, q.biasShift)
}

func (q *requant) result(acc int64) int64 {
	if q.asym {
		v := mli.SatBits(mli.AsrRnd(mli.SatBits(acc, 32)*q.mul, q.outShift, q.rnd), 16) + q.zpOut
		return mli.Clip(v, q.lo, q.hi)
	}
	return mli.Clip(mli.AsrRnd(acc, q.outShift, q.rnd), q.lo, q.hi)
}

// saQuant derives per-channel SA output stages.
type saQuant struct {
	in, w, out *mli.SAParams
	relu       mli.ReluType
	rnd        mli.Rounding
}

func (s *saQuant) at(oc int) requant {
	inScale, inZP, inFrac := s.in.ScaleAt(0)
	wScale, _, wFrac := s.w.ScaleAt(oc)
	outScale, outZP, outFrac := s.out.ScaleAt(0)
	q := requant{
		asym:     true,
		mul:      scaleRatio(inScale, outScale) * int64(wScale),
		outShift: int(inFrac) + int(wFrac) + ratioFracBits - int(outFrac),
		zpIn:     int64(inZP),
		zpOut:    int64(outZP),
		rnd:      s.rnd,
	}
	q.lo, q.hi = saRelu(s.relu, outScale, outZP, outFrac)
	return q
}

const ratioFracBits = 14

// scaleRatio returns the input to output scale ratio of an SA8 kernel with
// ratioFracBits fractional bits, saturated to 16 bits.
func scaleRatio(inScale, outScale int16) int64 {
	return mli.SatBits((int64(inScale)<<ratioFracBits)/int64(outScale), 16)
}

// saRelu returns the relu clamp expressed in the SA8 output domain.
func saRelu(rt mli.ReluType, scale, zp int16, frac int8) (lo, hi int64) {
	lo, hi = mli.Limits[int8]()
	z := int64(zp)
	one := (mli.Asl(1, int(frac)) + int64(scale)/2) / int64(scale)
	switch rt {
	case mli.ReluGen:
		lo = max(z, lo)
	case mli.Relu6:
		lo = max(z, lo)
		hi = min(z+6*one, hi)
	case mli.Relu1:
		lo = max(z-one, lo)
		hi = min(z+one, hi)
	}
	return lo, hi
}

// conv holds the geometry and buffers of one convolution call.
type conv[I, W, B mli.Int] struct {
	ks   kernelSet[I, W]
	in   []I
	w    []W
	bias []B
	out  []I

	inH, inW              int
	inChStep, inRowStep   int
	outH, outW            int
	outChStep, outRowStep int
	kh, kw                int
	dh, dw                int
	sh, sw                int
	pt, pl                int
	depth                 int // input channels per filter
	filters               int
	depthwise             bool

	fx requant
	sa *saQuant
}

func (c *conv[I, W, B]) requant(oc int) requant {
	if c.sa != nil {
		return c.sa.at(oc)
	}
	return c.fx
}

// channels returns the input channel range output channel oc reduces over.
func (c *conv[I, W, B]) channels(oc int) (start, num int) {
	if c.depthwise {
		return oc, 1
	}
	return 0, c.depth
}

// filter returns the offset of the weights of output channel oc.
func (c *conv[I, W, B]) filter(oc int) int {
	return oc * c.depth * c.kh * c.kw
}

// pixel reduces a clmns x rows window over the input channels of oc. inOff
// is the spatial offset of the window origin inside a channel plane; wOff
// points at the matching tap of the first channel's kernel.
func (c *conv[I, W, B]) pixel(dp dotprod[I, W], q *requant, oc, inOff, wOff, clmns, rows int) I {
	start, num := c.channels(oc)
	inOff += start * c.inChStep
	acc := q.init(int64(c.bias[oc]))
	for ch := 0; ch < num; ch++ {
		acc = dp(c.in[inOff:], c.w[wOff:], clmns, rows, c.inRowStep, c.kw, q.zpIn, acc)
		inOff += c.inChStep
		wOff += c.kh * c.kw
	}
	return I(q.result(acc))
}

func (c *conv[I, W, B]) convolution(q *requant, oc, inOff, wOff, clmns, rows int) I {
	return c.pixel(c.ks.plain, q, oc, inOff, wOff, clmns, rows)
}

func (c *conv[I, W, B]) convolutionEven(q *requant, oc, inOff, wOff, clmns, rows int) I {
	return c.pixel(c.ks.even, q, oc, inOff, wOff, clmns, rows)
}

func (c *conv[I, W, B]) convolutionOddEven(q *requant, oc, inOff, wOff, clmns, rows int) I {
	return c.pixel(c.ks.pick(variantOddEven, clmns), q, oc, inOff, wOff, clmns, rows)
}

func (c *conv[I, W, B]) convolutionUnroll4Plus1(q *requant, oc, inOff, wOff, clmns, rows int) I {
	return c.pixel(c.ks.plus1, q, oc, inOff, wOff, clmns, rows)
}

func (c *conv[I, W, B]) convolutionUnroll4Plus3(q *requant, oc, inOff, wOff, clmns, rows int) I {
	return c.pixel(c.ks.plus3, q, oc, inOff, wOff, clmns, rows)
}

// convolutionV computes the outputs at inOff and inOff+1.
func (c *conv[I, W, B]) convolutionV(q *requant, oc, inOff, wOff, clmns, rows int) (I, I) {
	start, num := c.channels(oc)
	inOff += start * c.inChStep
	acc0 := q.init(int64(c.bias[oc]))
	acc1 := acc0
	for ch := 0; ch < num; ch++ {
		acc0, acc1 = c.ks.pair(c.in[inOff:], c.w[wOff:], clmns, rows, c.inRowStep, c.kw, q.zpIn, acc0, acc1)
		inOff += c.inChStep
		wOff += c.kh * c.kw
	}
	return I(q.result(acc0)), I(q.result(acc1))
}

// convolutionVariant calls the wrapper named by v.
func (c *conv[I, W, B]) convolutionVariant(v variant, q *requant, oc, inOff, wOff, clmns, rows int) I {
	switch v {
	case variantEven:
		return c.convolutionEven(q, oc, inOff, wOff, clmns, rows)
	case variantOddEven:
		return c.convolutionOddEven(q, oc, inOff, wOff, clmns, rows)
	case variantPlus1:
		return c.convolutionUnroll4Plus1(q, oc, inOff, wOff, clmns, rows)
	case variantPlus3:
		return c.convolutionUnroll4Plus3(q, oc, inOff, wOff, clmns, rows)
	default:
		return c.convolution(q, oc, inOff, wOff, clmns, rows)
	}
}

// dilatedPixel reduces the taps of a dilated kernel at input position
// (hIn, wIn) that fall inside the input.
func (c *conv[I, W, B]) dilatedPixel(q *requant, oc, hIn, wIn int) I {
	r0, r1 := validTaps(hIn, c.kh, c.dh, c.inH)
	c0, c1 := validTaps(wIn, c.kw, c.dw, c.inW)
	acc := q.init(int64(c.bias[oc]))
	if r1 >= r0 && c1 >= c0 {
		start, num := c.channels(oc)
		inOff := start*c.inChStep + (hIn+r0*c.dh)*c.inRowStep + wIn + c0*c.dw
		wOff := c.filter(oc) + r0*c.kw + c0
		for ch := 0; ch < num; ch++ {
			acc = dotprod2DStep(c.in[inOff:], c.w[wOff:], c1-c0+1, r1-r0+1,
				c.inRowStep*c.dh, c.dw, c.kw, q.zpIn, acc)
			inOff += c.inChStep
			wOff += c.kh * c.kw
		}
	}
	return I(q.result(acc))
}

// validTaps returns the first and last tap index i of a k-tap kernel with
// dilation d at position pos such that 0 <= pos+i*d < n.
func validTaps(pos, k, d, n int) (first, last int) {
	if pos < 0 {
		first = (-pos + d - 1) / d
	}
	last = k - 1
	if end := pos + last*d; end >= n {
		last = (n - 1 - pos)
		if last < 0 {
			return first, -1
		}
		last /= d
	}
	return first, last
}
