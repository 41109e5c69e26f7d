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

// Package quantize converts tensors between the element formats of the
// library: FX8, FX16, SA8, SA32 and FP32.
//
// Every integer format reads as a real value through
//
//	real = (q - zero_point) * scale * 2^-frac
//
// where FX tensors have scale 1, zero point 0 and frac = FracBits, and SA
// tensors take the three values per tensor or per index of their
// quantization axis.
//
// # Conversions
//
// Integer to integer conversion requantizes with a 15-bit multiplier
//
//	q' = asr_rnd((q - zp) * mul, shift) + zp'
//
// saturated to the output container; FX to FX is an exact shift. Float to
// integer rounds half away from zero and saturates. Integer to float is
// exact up to float32 precision.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mli/mli/contrib/quantize"
//
//	in := mli.NewFP32([]int{3}, []float32{0.5, -1.25, 3})
//	out := mli.NewFX16([]int{3}, 12, make([]int16, 3))
//	if err := quantize.Convert(in, out); err != nil {
//		return err
//	}
//	// out holds 2048, -5120, 12288 in Q12.
//
// The output descriptor selects the target: its ElType and ElParams are kept,
// its shape is taken from the input.
package quantize
