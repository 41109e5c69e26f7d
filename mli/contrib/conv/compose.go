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

// Composition of the micro-kernels over an output feature map. Padding is
// never materialized: a window that overlaps the padded border is shrunk to
// its valid part and the weight offset moves by the same compensation.

// edge computes output column W of a row whose valid kernel rows start at
// inRow/wRow, compensating on both sides of the window.
func (c *conv[I, W, B]) edge(v variant, q *requant, oc, inRow, wRow, rows, col int) I {
	wIn := col*c.sw - c.pl
	left := max(-wIn, 0)
	clmns := c.kw - left - max(wIn+c.kw-c.inW, 0)
	return c.convolutionVariant(v, q, oc, inRow+wIn+left, wRow+left, clmns, rows)
}

// rowWindow returns the input and weight offsets of the first valid kernel
// row for output row H, and how many kernel rows are valid.
func (c *conv[I, W, B]) rowWindow(oc, H int) (inRow, wRow, rows int) {
	hIn := H*c.sh - c.pt
	top := max(-hIn, 0)
	bottom := max(hIn+c.kh-c.inH, 0)
	return (hIn + top) * c.inRowStep, c.filter(oc) + top*c.kw, c.kh - top - bottom
}

func (c *conv[I, W, B]) outRow(oc, H int) []I {
	o := oc*c.outChStep + H*c.outRowStep
	return c.out[o : o+c.outW]
}

// convolutionCHWNopad walks a feature map whose windows all lie inside the
// input.
func (c *conv[I, W, B]) convolutionCHWNopad(oc int, q *requant) {
	wOff := c.filter(oc)
	for H := 0; H < c.outH; H++ {
		out := c.outRow(oc, H)
		inRow := H * c.sh * c.inRowStep
		for col := range out {
			out[col] = c.convolution(q, oc, inRow+col*c.sw, wOff, c.kw, c.kh)
		}
	}
}

// convolutionCHW compensates every output pixel on all four sides.
func (c *conv[I, W, B]) convolutionCHW(oc int, q *requant) {
	for H := 0; H < c.outH; H++ {
		inRow, wRow, rows := c.rowWindow(oc, H)
		out := c.outRow(oc, H)
		for col := range out {
			out[col] = c.edge(variantPlain, q, oc, inRow, wRow, rows, col)
		}
	}
}

// convolutionCHWDilated is the only path for dilation > 1.
func (c *conv[I, W, B]) convolutionCHWDilated(oc int, q *requant) {
	for H := 0; H < c.outH; H++ {
		out := c.outRow(oc, H)
		for col := range out {
			out[col] = c.dilatedPixel(q, oc, H*c.sh-c.pt, col*c.sw-c.pl)
		}
	}
}

// conv2dCHWNopadK1x1Str1 sweeps pairs of columns of a 1x1 kernel across all
// input channels, with one trailing single column for odd widths.
func (c *conv[I, W, B]) conv2dCHWNopadK1x1Str1(oc int, q *requant) {
	start, num := c.channels(oc)
	w := c.w[c.filter(oc):]
	acc := q.init(int64(c.bias[oc]))
	for H := 0; H < c.outH; H++ {
		out := c.outRow(oc, H)
		in := c.in[start*c.inChStep+H*c.inRowStep:]
		col := 0
		for ; col+1 < len(out); col += 2 {
			a0, a1 := c.ks.pair1D(in[col:], w, 1, num, c.inChStep, 1, q.zpIn, acc, acc)
			out[col], out[col+1] = I(q.result(a0)), I(q.result(a1))
		}
		if col < len(out) {
			out[col] = I(q.result(c.ks.plain(in[col:], w, 1, num, c.inChStep, 1, q.zpIn, acc)))
		}
	}
}

// conv2dCHWStr1 is the stride-1 path. fixed selects the unrolled border
// handling, which applies to paddings of at most 2.
func (c *conv[I, W, B]) conv2dCHWStr1(oc int, q *requant, fixed bool) {
	leftComp := c.pl
	rightComp := max(c.outW-c.pl+c.kw-1-c.inW, 0)
	for H := 0; H < c.outH; H++ {
		inRow, wRow, rows := c.rowWindow(oc, H)
		c.conv2dRowStr1(oc, q, c.outRow(oc, H), inRow, wRow, rows, leftComp, rightComp, fixed)
	}
}

func (c *conv[I, W, B]) conv2dRowStr1(oc int, q *requant, out []I, inRow, wRow, rows, leftComp, rightComp int, fixed bool) {
	nLeft := min(leftComp, len(out))
	nRight := min(rightComp, len(out)-nLeft)
	end := len(out) - nRight

	// Left border: the window starts at input column 0 and the weights
	// slide right by the compensation.
	if fixed && nLeft <= 2 {
		if nLeft == 2 {
			out[0] = c.edge(variantOddEven, q, oc, inRow, wRow, rows, 0)
		}
		if nLeft >= 1 {
			out[nLeft-1] = c.edge(variantPlain, q, oc, inRow, wRow, rows, nLeft-1)
		}
	} else {
		for col := 0; col < nLeft; col++ {
			out[col] = c.edge(variantOddEven, q, oc, inRow, wRow, rows, col)
		}
	}

	col := nLeft
	for ; col+1 < end; col += 2 {
		out[col], out[col+1] = c.convolutionV(q, oc, inRow+col-c.pl, wRow, c.kw, rows)
	}
	if col < end {
		out[col] = c.convolution(q, oc, inRow+col-c.pl, wRow, c.kw, rows)
	}

	if fixed && nRight <= 2 {
		if nRight >= 1 {
			out[end] = c.edge(variantPlain, q, oc, inRow, wRow, rows, end)
		}
		if nRight == 2 {
			out[end+1] = c.edge(variantOddEven, q, oc, inRow, wRow, rows, end+1)
		}
	} else {
		for col := end; col < len(out); col++ {
			out[col] = c.edge(variantOddEven, q, oc, inRow, wRow, rows, col)
		}
	}
}

// conv2dCHW is the any-stride path. Rows of the top and bottom bands get a
// shortened window from rowWindow; each row is then split into left border,
// centre and right border columns by conv2dRowAnyStride.
func (c *conv[I, W, B]) conv2dCHW(oc int, q *requant) {
	leftCount := min(mli.CeilDiv(c.pl, c.sw), c.outW)
	rightStart := 0
	if n := c.inW + c.pl - c.kw; n >= 0 {
		rightStart = min(n/c.sw+1, c.outW)
	}
	rightStart = max(rightStart, leftCount)

	for H := 0; H < c.outH; H++ {
		inRow, wRow, rows := c.rowWindow(oc, H)
		c.conv2dRowAnyStride(oc, q, c.outRow(oc, H), inRow, wRow, rows, leftCount, rightStart)
	}
}

func (c *conv[I, W, B]) conv2dRowAnyStride(oc int, q *requant, out []I, inRow, wRow, rows, leftCount, rightStart int) {
	col := 0
	for ; col < leftCount; col++ {
		out[col] = c.edge(variantPlain, q, oc, inRow, wRow, rows, col)
	}
	v := centreVariant(c.kw)
	for ; col < rightStart; col++ {
		out[col] = c.convolutionVariant(v, q, oc, inRow+col*c.sw-c.pl, wRow, c.kw, rows)
	}
	for ; col < len(out); col++ {
		out[col] = c.edge(variantPlain, q, oc, inRow, wRow, rows, col)
	}
}
