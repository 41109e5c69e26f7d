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

// Package conv implements quantized 2D and depthwise convolution over CHW
// feature maps.
//
// The package has three layers:
//
//   - micro-kernels: dot products over a kernel window (dotprod2D and its
//     unrolled and two-column variants), wrapped per output pixel with bias,
//     requantization and the fused relu clamp;
//   - composition: drives the micro-kernels over the top and bottom bands,
//     the left and right border columns and the centre of every output row,
//     shrinking the window instead of materializing padding;
//   - specialization: an ordered table of shape patterns per kernel family.
//     [Select] returns the first row matching a call; the last row of every
//     table is the generic path and matches anything.
//
// Every row of every table produces output bit-identical to the generic
// path, and every micro-kernel level of [mli.Description] produces output
// bit-identical to the scalar level.
//
// Example:
//
//	cfg := &mli.Conv2DConfig{StrideWidth: 1, StrideHeight: 1,
//		PaddingLeft: 1, PaddingRight: 1, PaddingTop: 1, PaddingBottom: 1}
//	if err := conv.Conv2DCHWFX8(in, weights, bias, cfg, out); err != nil {
//		return err
//	}
//	fmt.Println(conv.Select(conv.Conv2DFX8, in, weights, cfg).Name) // k3x3_str1_krnpad
package conv

//go:generate go run ../../../cmd/mligen -o z_spec_api.go
