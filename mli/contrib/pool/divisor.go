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

package pool

import "github.com/ajroetker/go-mli/mli"

// divLUTThreshold is the first window size whose divisor is computed rather
// than looked up.
const divLUTThreshold = 32

// mulLUT and shiftLUT hold 1/n as mul * 2^-shift for n < divLUTThreshold.
// Powers of two use a multiplier of one.
var mulLUT = [divLUTThreshold]int16{
	0, 0x0001, 0x0001, 0x5555, 0x0001, 0x6666, 0x5555, 0x4924,
	0x0001, 0x71c7, 0x6666, 0x5d17, 0x5555, 0x4ec4, 0x4924, 0x4444,
	0x0001, 0x7878, 0x71c7, 0x6bca, 0x6666, 0x6186, 0x5d17, 0x590b,
	0x5555, 0x51eb, 0x4ec4, 0x4bda, 0x4924, 0x469e, 0x4444, 0x4210,
}

var shiftLUT = [divLUTThreshold]int8{
	0, 0, 1, 16, 2, 17, 17, 17,
	3, 18, 18, 18, 18, 18, 18, 18,
	4, 19, 19, 19, 19, 19, 19, 19,
	19, 19, 19, 19, 19, 19, 19, 19,
}

// divisor returns mul and shift such that x/n ≈ (x*mul) >> shift.
func divisor(n int) (mul int64, shift int) {
	if n < divLUTThreshold {
		return int64(mulLUT[n]), int(shiftLUT[n])
	}
	val := uint32(1<<31) / uint32(n)
	norm := mli.NormQ31(int32(val)) + 1
	val <<= uint(norm)
	return int64(val >> 17), 14 + norm
}
