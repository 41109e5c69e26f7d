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

// Package transform rearranges fixed-point tensors without changing their
// values: concatenation along an axis, zero padding of CHW feature maps and
// axis permutation. Outputs take the element format of the input.
//
// Argmax also lives here. It returns positions instead of values.
package transform

import (
	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// ConcatFX8 joins up to mli.MaxConcatTensors inputs along cfg.Axis.
func ConcatFX8(inputs []*mli.Tensor, cfg *mli.ConcatConfig, out *mli.Tensor) error {
	if err := check.ConcatFX8(inputs, cfg, out); err != nil {
		return err
	}
	concat[int8](inputs, cfg.Axis, out)
	return nil
}

// ConcatFX16 joins up to mli.MaxConcatTensors inputs along cfg.Axis.
func ConcatFX16(inputs []*mli.Tensor, cfg *mli.ConcatConfig, out *mli.Tensor) error {
	if err := check.ConcatFX16(inputs, cfg, out); err != nil {
		return err
	}
	concat[int16](inputs, cfg.Axis, out)
	return nil
}

func concat[T mli.Fixed](inputs []*mli.Tensor, axis int, out *mli.Tensor) {
	first := inputs[0]
	outer := 1
	for d := 0; d < axis; d++ {
		outer *= first.Shape[d]
	}
	dst := mli.Values[T](out)
	pos, total := 0, 0
	for _, in := range inputs {
		total += in.Shape[axis]
	}
	for o := 0; o < outer; o++ {
		for _, in := range inputs {
			block := in.CountPart(axis)
			copy(dst[pos:pos+block], mli.Values[T](in)[o*block:(o+1)*block])
			pos += block
		}
	}
	out.CopyFormat(first)
	out.CopyShape(first)
	out.Shape[axis] = total
}

// Padding2DCHWFX8 surrounds every channel with zero rows and columns.
func Padding2DCHWFX8(in *mli.Tensor, cfg *mli.Padding2DConfig, out *mli.Tensor) error {
	if err := check.Padding2DCHWFX8(in, cfg, out); err != nil {
		return err
	}
	padding2D[int8](in, cfg, out)
	return nil
}

// Padding2DCHWFX16 surrounds every channel with zero rows and columns.
func Padding2DCHWFX16(in *mli.Tensor, cfg *mli.Padding2DConfig, out *mli.Tensor) error {
	if err := check.Padding2DCHWFX16(in, cfg, out); err != nil {
		return err
	}
	padding2D[int16](in, cfg, out)
	return nil
}

func padding2D[T mli.Fixed](in *mli.Tensor, cfg *mli.Padding2DConfig, out *mli.Tensor) {
	shape := check.Padding2DOutShape(in, cfg)
	ch, inH, inW := in.Shape[0], in.Shape[1], in.Shape[2]
	outH, outW := shape[1], shape[2]
	src := mli.Values[T](in)
	dst := mli.Values[T](out)[:ch*outH*outW]
	clear(dst)
	for c := 0; c < ch; c++ {
		for h := 0; h < inH; h++ {
			from := (c*inH + h) * inW
			to := (c*outH+h+cfg.PaddingTop)*outW + cfg.PaddingLeft
			copy(dst[to:to+inW], src[from:from+inW])
		}
	}
	out.CopyFormat(in)
	out.SetShape(shape[:]...)
}

// PermuteFX8 reorders the axes of in: output axis i is input axis
// cfg.PermDim[i].
func PermuteFX8(in *mli.Tensor, cfg *mli.PermuteConfig, out *mli.Tensor) error {
	if err := check.PermuteFX8(in, cfg, out); err != nil {
		return err
	}
	permute[int8](in, cfg, out)
	return nil
}

// PermuteFX16 reorders the axes of in: output axis i is input axis
// cfg.PermDim[i].
func PermuteFX16(in *mli.Tensor, cfg *mli.PermuteConfig, out *mli.Tensor) error {
	if err := check.PermuteFX16(in, cfg, out); err != nil {
		return err
	}
	permute[int16](in, cfg, out)
	return nil
}

func permute[T mli.Fixed](in *mli.Tensor, cfg *mli.PermuteConfig, out *mli.Tensor) {
	rank := in.Rank
	inStrides := in.Strides()
	var shape, step [mli.MaxRank]int
	for i := 0; i < rank; i++ {
		shape[i] = in.Shape[cfg.PermDim[i]]
		step[i] = inStrides[cfg.PermDim[i]]
	}
	src, dst := mli.Values[T](in), mli.Values[T](out)

	// Walk the output in order, carrying an odometer over its coordinates.
	var coord [mli.MaxRank]int
	off := 0
	for i, n := 0, in.Count(); i < n; i++ {
		dst[i] = src[off]
		for d := rank - 1; d >= 0; d-- {
			coord[d]++
			off += step[d]
			if coord[d] < shape[d] {
				break
			}
			off -= coord[d] * step[d]
			coord[d] = 0
		}
	}
	out.CopyFormat(in)
	out.SetShape(shape[:rank]...)
}
