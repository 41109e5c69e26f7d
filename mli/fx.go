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

// Fixed-point primitives. Accumulators are int64, wide enough for any dot
// product over a supported kernel (the DSP target uses 40 bits).

// Int is the set of integer containers kernels read and write.
type Int interface {
	~int8 | ~int16 | ~int32
}

// Fixed is the set of FX containers.
type Fixed interface {
	~int8 | ~int16
}

// Rounding selects how right shifts of an accumulator round.
type Rounding uint8

const (
	// RoundUp adds half an LSB and shifts (round half towards +inf).
	RoundUp Rounding = iota
	// RoundConvergent rounds half to even.
	RoundConvergent
)

func (r Rounding) String() string {
	if r == RoundConvergent {
		return "convergent"
	}
	return "up"
}

// AsrRnd arithmetically shifts acc right by shift with rounding r.
// A negative shift is a left shift.
func AsrRnd(acc int64, shift int, r Rounding) int64 {
	if shift <= 0 {
		return acc << uint(-shift)
	}
	if shift > 62 {
		shift = 62
	}
	half := int64(1) << uint(shift-1)
	if r == RoundConvergent {
		q := acc >> uint(shift)
		rem := acc & (int64(1)<<uint(shift) - 1)
		if rem > half || (rem == half && q&1 != 0) {
			q++
		}
		return q
	}
	return (acc + half) >> uint(shift)
}

// Asl shifts acc left by shift, or right without rounding when shift is
// negative.
func Asl(acc int64, shift int) int64 {
	if shift >= 0 {
		return acc << uint(shift)
	}
	return acc >> uint(-shift)
}

// Limits returns the value range of container T.
func Limits[T Int]() (lo, hi int64) {
	var z T
	switch any(z).(type) {
	case int8:
		return -128, 127
	case int16:
		return -32768, 32767
	default:
		return -2147483648, 2147483647
	}
}

// Sat clamps v into the range of T.
func Sat[T Int](v int64) T {
	lo, hi := Limits[T]()
	if v < lo {
		return T(lo)
	}
	if v > hi {
		return T(hi)
	}
	return T(v)
}

// SatBits clamps v into the signed range of a bits-wide container.
func SatBits(v int64, bits int) int64 {
	hi := int64(1)<<uint(bits-1) - 1
	lo := -hi - 1
	return Clip(v, lo, hi)
}

// Clip clamps v into [lo, hi].
func Clip(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mac returns acc + x*w.
func Mac[A, B Int](acc int64, x A, w B) int64 {
	return acc + int64(x)*int64(w)
}

// CastAcc shifts acc right by shift with rounding r and saturates to T.
func CastAcc[T Int](acc int64, shift int, r Rounding) T {
	return Sat[T](AsrRnd(acc, shift, r))
}

// AddSat adds two container values with saturation.
func AddSat[T Int](a, b T) T {
	return Sat[T](int64(a) + int64(b))
}

// SubSat subtracts two container values with saturation.
func SubSat[T Int](a, b T) T {
	return Sat[T](int64(a) - int64(b))
}

// CalcShift returns aFrac + bFrac - outFrac: the right shift that brings a
// product of two FX values to the output format.
func CalcShift(aFrac, bFrac, outFrac int) int {
	return aFrac + bFrac - outFrac
}

// ReluMinMax returns the output clamp for relu type rt applied to values
// with fracBits fractional bits in container T.
func ReluMinMax[T Int](rt ReluType, fracBits int) (lo, hi int64) {
	lo, hi = Limits[T]()
	switch rt {
	case ReluGen:
		lo = 0
	case Relu6:
		lo = 0
		hi = min(Asl(6, fracBits), hi)
	case Relu1:
		lo = max(-Asl(1, fracBits), lo)
		hi = min(Asl(1, fracBits), hi)
	}
	return lo, hi
}

// NormQ31 returns the number of redundant sign bits of a 32-bit value, i.e.
// how far it can be shifted left without overflow. Zero returns 31.
func NormQ31(v int32) int {
	if v == 0 {
		return 31
	}
	if v < 0 {
		v = ^v
	}
	n := 0
	for v&0x40000000 == 0 && n < 31 {
		v <<= 1
		n++
	}
	return n
}

// CeilDiv returns ceil(a / b) for b > 0.
func CeilDiv(a, b int) int {
	if a <= 0 {
		return -((-a) / b)
	}
	return (a + b - 1) / b
}

// OutSize returns the output extent of a sliding window along one axis.
func OutSize(in, padBefore, padAfter, kernel, stride int) int {
	return CeilDiv(in+padBefore+padAfter-kernel+1, stride)
}
