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

// dotprod accumulates Σ (in[r*inStep+x] - zp) * w[r*wStep+x] over a
// width x height window into acc. in and w start at the window origin.
type dotprod[I, W mli.Int] func(in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64

// dotprodV accumulates two windows one column apart that share weights: the
// second window starts at in[1].
type dotprodV[I, W mli.Int] func(in []I, w []W, width, height, inStep, wStep int, zp, acc0, acc1 int64) (int64, int64)

func dotprod2D[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	for r := 0; r < height; r++ {
		ir, wr := r*inStep, r*wStep
		for x := 0; x < width; x++ {
			acc += (int64(in[ir+x]) - zp) * int64(w[wr+x])
		}
	}
	return acc
}

// dotprod2DUnroll2 requires an even width.
func dotprod2DUnroll2[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	var a0, a1 int64
	for r := 0; r < height; r++ {
		row := in[r*inStep : r*inStep+width]
		wrow := w[r*wStep : r*wStep+width]
		for x := 0; x < width; x += 2 {
			a0 += (int64(row[x]) - zp) * int64(wrow[x])
			a1 += (int64(row[x+1]) - zp) * int64(wrow[x+1])
		}
	}
	return acc + a0 + a1
}

// dotprod2DOdd requires an odd width: one column, then pairs.
func dotprod2DOdd[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	var a0, a1 int64
	for r := 0; r < height; r++ {
		row := in[r*inStep : r*inStep+width]
		wrow := w[r*wStep : r*wStep+width]
		acc += (int64(row[0]) - zp) * int64(wrow[0])
		for x := 1; x < width; x += 2 {
			a0 += (int64(row[x]) - zp) * int64(wrow[x])
			a1 += (int64(row[x+1]) - zp) * int64(wrow[x+1])
		}
	}
	return acc + a0 + a1
}

// dotprod2DUnroll4 requires a width that is a multiple of 4.
func dotprod2DUnroll4[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	return acc + unroll4(in, w, 0, width, height, inStep, wStep, zp)
}

// dotprod2DUnroll4Plus1 handles width%4 == 1.
func dotprod2DUnroll4Plus1[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	for r := 0; r < height; r++ {
		acc += (int64(in[r*inStep]) - zp) * int64(w[r*wStep])
	}
	return acc + unroll4(in, w, 1, width, height, inStep, wStep, zp)
}

// dotprod2DUnroll4Plus2 handles width%4 == 2.
func dotprod2DUnroll4Plus2[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	for r := 0; r < height; r++ {
		ir, wr := r*inStep, r*wStep
		acc += (int64(in[ir]) - zp) * int64(w[wr])
		acc += (int64(in[ir+1]) - zp) * int64(w[wr+1])
	}
	return acc + unroll4(in, w, 2, width, height, inStep, wStep, zp)
}

// dotprod2DUnroll4Plus3 handles width%4 == 3.
func dotprod2DUnroll4Plus3[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	for r := 0; r < height; r++ {
		ir, wr := r*inStep, r*wStep
		acc += (int64(in[ir]) - zp) * int64(w[wr])
		acc += (int64(in[ir+1]) - zp) * int64(w[wr+1])
		acc += (int64(in[ir+2]) - zp) * int64(w[wr+2])
	}
	return acc + unroll4(in, w, 3, width, height, inStep, wStep, zp)
}

// unroll4 sums columns [from, width) four at a time into independent lanes.
func unroll4[I, W mli.Int](in []I, w []W, from, width, height, inStep, wStep int, zp int64) int64 {
	var a0, a1, a2, a3 int64
	for r := 0; r < height; r++ {
		row := in[r*inStep+from : r*inStep+width]
		wrow := w[r*wStep+from : r*wStep+width]
		for x := 0; x+3 < len(row); x += 4 {
			a0 += (int64(row[x]) - zp) * int64(wrow[x])
			a1 += (int64(row[x+1]) - zp) * int64(wrow[x+1])
			a2 += (int64(row[x+2]) - zp) * int64(wrow[x+2])
			a3 += (int64(row[x+3]) - zp) * int64(wrow[x+3])
		}
	}
	return a0 + a1 + a2 + a3
}

// dotprod2DUnroll4Even dispatches an even width to the unroll-4 kernels.
func dotprod2DUnroll4Even[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	if width&3 == 0 {
		return dotprod2DUnroll4(in, w, width, height, inStep, wStep, zp, acc)
	}
	return dotprod2DUnroll4Plus2(in, w, width, height, inStep, wStep, zp, acc)
}

// dotprod2DUnroll4Odd dispatches an odd width to the unroll-4 kernels.
func dotprod2DUnroll4Odd[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc int64) int64 {
	if width&3 == 1 {
		return dotprod2DUnroll4Plus1(in, w, width, height, inStep, wStep, zp, acc)
	}
	return dotprod2DUnroll4Plus3(in, w, width, height, inStep, wStep, zp, acc)
}

// dotprod2Dv computes two adjacent output columns with one weight load per
// tap.
func dotprod2Dv[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc0, acc1 int64) (int64, int64) {
	for r := 0; r < height; r++ {
		ir, wr := r*inStep, r*wStep
		for x := 0; x < width; x++ {
			k := int64(w[wr+x])
			acc0 += (int64(in[ir+x]) - zp) * k
			acc1 += (int64(in[ir+x+1]) - zp) * k
		}
	}
	return acc0, acc1
}

// dotprod1Dv computes two adjacent output columns of a 1x1 kernel: height is
// the channel count and inStep the channel stride.
func dotprod1Dv[I, W mli.Int](in []I, w []W, _, height, inStep, wStep int, zp, acc0, acc1 int64) (int64, int64) {
	for c := 0; c < height; c++ {
		k := int64(w[c*wStep])
		i := c * inStep
		acc0 += (int64(in[i]) - zp) * k
		acc1 += (int64(in[i+1]) - zp) * k
	}
	return acc0, acc1
}

// dotprod1DvUnroll2 is dotprod1Dv processing two channels per step.
func dotprod1DvUnroll2[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc0, acc1 int64) (int64, int64) {
	var b0, b1 int64
	c := 0
	for ; c+1 < height; c += 2 {
		k0, k1 := int64(w[c*wStep]), int64(w[(c+1)*wStep])
		i0, i1 := c*inStep, (c+1)*inStep
		acc0 += (int64(in[i0]) - zp) * k0
		acc1 += (int64(in[i0+1]) - zp) * k0
		b0 += (int64(in[i1]) - zp) * k1
		b1 += (int64(in[i1+1]) - zp) * k1
	}
	if c < height {
		acc0, acc1 = dotprod1Dv(in[c*inStep:], w[c*wStep:], width, 1, inStep, wStep, zp, acc0, acc1)
	}
	return acc0 + b0, acc1 + b1
}

// dotprod2DvUnroll4 is dotprod2Dv with each row split into unroll-4 lanes.
func dotprod2DvUnroll4[I, W mli.Int](in []I, w []W, width, height, inStep, wStep int, zp, acc0, acc1 int64) (int64, int64) {
	head := width & 3
	if head != 0 {
		acc0, acc1 = dotprod2Dv(in, w, head, height, inStep, wStep, zp, acc0, acc1)
	}
	if width == head {
		return acc0, acc1
	}
	acc0 += unroll4(in, w, head, width, height, inStep, wStep, zp)
	acc1 += unroll4(in[1:], w, head, width, height, inStep, wStep, zp)
	return acc0, acc1
}

// pairOf builds a two-column kernel out of two single-column calls.
func pairOf[I, W mli.Int](dp dotprod[I, W]) dotprodV[I, W] {
	return func(in []I, w []W, width, height, inStep, wStep int, zp, acc0, acc1 int64) (int64, int64) {
		return dp(in, w, width, height, inStep, wStep, zp, acc0), dp(in[1:], w, width, height, inStep, wStep, zp, acc1)
	}
}

// dotprod2DStep is the dilated window: taps are colStep columns and inStep
// input elements apart.
func dotprod2DStep[I, W mli.Int](in []I, w []W, width, height, inStep, colStep, wStep int, zp, acc int64) int64 {
	for r := 0; r < height; r++ {
		ir, wr := r*inStep, r*wStep
		for x := 0; x < width; x++ {
			acc += (int64(in[ir+x*colStep]) - zp) * int64(w[wr+x])
		}
	}
	return acc
}
