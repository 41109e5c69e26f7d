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

package activation

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/go-mli/mli"
)

// Non-linearities are tabulated on a grid of 1/16 and linearly interpolated
// with 8 more fractional bits. Inputs are brought to Q12 before lookup and
// table entries are Q15.
const (
	lutFracBits   = 4
	lutInterpBits = 8
	lutSize       = 257
	lutOutFrac    = 15
)

type lut struct {
	table  [lutSize]int32
	offset int
}

// newLUT samples f on lutSize evenly spaced points spanning [lo, hi]. The
// span must be (lutSize-1)/16 wide.
func newLUT(f func(float64) float64, lo, hi float64) *lut {
	xs := floats.Span(make([]float64, lutSize), lo, hi)
	l := &lut{offset: int(-lo * (1 << lutFracBits))}
	for i, x := range xs {
		l.table[i] = int32(mli.SatBits(int64(math.Round(f(x)*(1<<lutOutFrac))), 16))
	}
	return l
}

var (
	tanhLUT   = newLUT(math.Tanh, -8, 8)
	sigmLUT   = newLUT(func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }, -8, 8)
	expnegLUT = newLUT(math.Exp, -16, 0)
)

// eval returns f(x) in Q15 for x with fracBits fractional bits. Arguments
// outside the table clamp to its end points.
func (l *lut) eval(x int64, fracBits int) int64 {
	pos := mli.AsrRnd(x, fracBits-(lutFracBits+lutInterpBits), mli.RoundUp) + int64(l.offset)<<lutInterpBits
	if pos <= 0 {
		return int64(l.table[0])
	}
	if pos >= (lutSize-1)<<lutInterpBits {
		return int64(l.table[lutSize-1])
	}
	idx, fr := pos>>lutInterpBits, pos&(1<<lutInterpBits-1)
	a, b := int64(l.table[idx]), int64(l.table[idx+1])
	return a + ((b-a)*fr+1<<(lutInterpBits-1))>>lutInterpBits
}

// apply maps every element of in through l into out at the Q7 or Q15
// notation of T.
func apply[T mli.Fixed](l *lut, rnd mli.Rounding, in, out *mli.Tensor) {
	n := in.Count()
	src, dst := mli.Values[T](in)[:n], mli.Values[T](out)[:n]
	frac := in.ElParams.FracBits
	shift := lutOutFrac - OutFracBits[T]()
	for i, x := range src {
		dst[i] = mli.CastAcc[T](l.eval(int64(x), frac), shift, rnd)
	}
	out.CopyFormat(in)
	out.CopyShape(in)
	out.ElParams.FracBits = OutFracBits[T]()
}

// OutFracBits is the notation of tanh, sigmoid and softmax results: Q7 for
// 8-bit containers and Q15 for 16-bit ones.
func OutFracBits[T mli.Fixed]() int {
	_, hi := mli.Limits[T]()
	if hi == math.MaxInt8 {
		return 7
	}
	return 15
}
