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

// Package mli holds the data model shared by all quantized inference kernels:
// tensor descriptors over caller-owned buffers, kernel configurations, status
// codes, fixed-point arithmetic primitives and the platform description that
// selects micro-kernel sets at startup.
//
// # Tensors
//
// A [Tensor] never owns its buffer. Data is a borrowed slice whose Go type
// matches the element type:
//
//   - FX8, SA8:  []int8
//   - FX16:      []int16
//   - SA32:      []int32
//   - FP32:      []float32
//
// Capacity is expressed in bytes, as in the C ABI the kernels were designed
// against, and must not exceed what the backing slice holds.
//
// # Fixed-point arithmetic
//
// FX values are integers scaled by 2^-FracBits. A product of an input with
// FracBits=a and a weight with FracBits=b carries a+b fractional bits; the
// accumulator is brought to the output format by [AsrRnd] followed by [Sat].
// Every code path in the kernel packages funnels through these primitives so
// that all specializations produce bit-identical results.
//
// # Platform
//
// The micro-kernel level (scalar, 2-wide, N-wide) and the rounding mode are
// captured once at process start in a [Description]. Set MLI_NO_SIMD=1 to force
// the scalar set, and MLI_ROUNDING=convergent to select convergent rounding.
//
// # Example Usage
//
//	in := mli.NewFX8([]int{1, 4, 4}, 5, inBuf)
//	w := mli.NewFX8([]int{8, 1, 3, 3}, 6, wBuf)
//	b := mli.NewFX8([]int{8}, 4, bBuf)
//	out := mli.NewFX8([]int{8, 4, 4}, 4, outBuf)
//	cfg := &mli.Conv2DConfig{StrideWidth: 1, StrideHeight: 1,
//		PaddingTop: 1, PaddingBottom: 1, PaddingLeft: 1, PaddingRight: 1}
//	if err := conv.Conv2DCHWFX8(in, w, b, cfg, out); err != nil {
//		return err
//	}
package mli
