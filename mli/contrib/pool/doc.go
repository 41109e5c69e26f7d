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

// Package pool implements max and average pooling over CHW feature maps.
//
// A call is split the same way as the convolution kernels split theirs: a
// centre region whose windows lie inside the input runs without any bounds
// logic, and up to four border areas run with per-pixel compensation, so
// padding is never materialized. Padded taps are ignored by max pooling and
// excluded from the divisor of average pooling.
//
// Every family has a specialization table in the shape of the convolution
// tables: rows name a window size, channel count, stride and padding
// pattern, the dispatcher runs the first row matching a call, and each row
// has a generated entry point such as MaxpoolCHWFX8K3x3Str1Krnpad. Stride-1
// rows fold the window rows of an output row into one column vector first
// and then slide the window along it; their results are identical to the
// generic path.
//
// Average pooling divides with a multiplier and shift taken from a small
// lookup table for windows of fewer than 32 elements and computed by
// normalization otherwise; the result is rounded with the platform's
// rounding mode.
//
// # Example Usage
//
//	cfg := mli.PoolConfig{KernelWidth: 2, KernelHeight: 2, StrideWidth: 2, StrideHeight: 2}
//	if err := pool.MaxpoolCHWFX8(in, &cfg, out); err != nil {
//		return err
//	}
//	fmt.Println(pool.Select(pool.MaxpoolFX8, in, &cfg).Name) // k2x2 for a multi-channel map
package pool

//go:generate go run ../../../cmd/mligen -pkg pool -o z_spec_api.go
