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

package check

import "github.com/ajroetker/go-mli/mli"

// Concat checks the join of inputs along cfg.Axis. Inputs must agree in type,
// fractional bits and rank, and in every dimension except the axis.
func Concat(inputs []*mli.Tensor, cfg *mli.ConcatConfig, out *mli.Tensor) error {
	return concat("concat", inputs, cfg, out)
}

func concat(op string, inputs []*mli.Tensor, cfg *mli.ConcatConfig, out *mli.Tensor) error {
	if inputs == nil {
		return fail(op, mli.BadTensor, "nil inputs")
	}
	if len(inputs) == 0 {
		return fail(op, mli.BadFuncCfg, "no inputs")
	}
	if err := tensor(op, inputs[0]); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	first := inputs[0]
	if cfg.Axis < 0 || cfg.Axis >= first.Rank {
		return fail(op, mli.BadFuncCfg, "axis %d outside rank %d", cfg.Axis, first.Rank)
	}
	if len(inputs) > mli.MaxConcatTensors {
		return fail(op, mli.BadFuncCfg, "%d inputs, at most %d", len(inputs), mli.MaxConcatTensors)
	}

	total := first.Count()
	for i, in := range inputs[1:] {
		if err := tensor(op, in); err != nil {
			return err
		}
		if in.ElType != first.ElType || in.ElParams.FracBits != first.ElParams.FracBits || in.Rank != first.Rank {
			return fail(op, mli.IncompatibleTensors, "input %d format differs from input 0", i+1)
		}
		for d := 0; d < first.Rank; d++ {
			if d != cfg.Axis && in.Shape[d] != first.Shape[d] {
				return fail(op, mli.ShapeMismatch, "input %d shape %v against %v", i+1, in.Dims(), first.Dims())
			}
		}
		total += in.Count()
	}
	for _, in := range inputs {
		if !contiguous(in.Shape, in.MemStride, in.Rank) {
			return fail(op, mli.IncompatibleTensors, "inputs must be contiguous")
		}
	}
	if err := noAlias(op, "output", out, inputs...); err != nil {
		return err
	}
	if n := total * first.ElType.Size(); n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	return nil
}

func transformTyped(op string, inputs []*mli.Tensor, out *mli.Tensor, want mli.ElType) error {
	for i, in := range inputs {
		if in.ElType != want {
			return fail(op, mli.TypeMismatch, "input %d is %v, want %v", i, in.ElType, want)
		}
	}
	return outType(op, out, want)
}

// ConcatFX8 checks an 8-bit fixed-point concatenation.
func ConcatFX8(inputs []*mli.Tensor, cfg *mli.ConcatConfig, out *mli.Tensor) error {
	const op = "concat_fx8"
	if err := concat(op, inputs, cfg, out); err != nil {
		return err
	}
	return transformTyped(op, inputs, out, mli.FX8)
}

// ConcatFX16 checks a 16-bit fixed-point concatenation.
func ConcatFX16(inputs []*mli.Tensor, cfg *mli.ConcatConfig, out *mli.Tensor) error {
	const op = "concat_fx16"
	if err := concat(op, inputs, cfg, out); err != nil {
		return err
	}
	return transformTyped(op, inputs, out, mli.FX16)
}

// Padding2DCHW checks zero padding of a CHW feature map.
func Padding2DCHW(in *mli.Tensor, cfg *mli.Padding2DConfig, out *mli.Tensor) error {
	return padding2DCHW("padding2d_chw", in, cfg, out)
}

func padding2DCHW(op string, in *mli.Tensor, cfg *mli.Padding2DConfig, out *mli.Tensor) error {
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if in.Rank != 3 {
		return fail(op, mli.ShapeMismatch, "input rank %d, want 3", in.Rank)
	}
	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	if cfg.PaddingLeft < 0 || cfg.PaddingRight < 0 || cfg.PaddingTop < 0 || cfg.PaddingBottom < 0 {
		return fail(op, mli.BadFuncCfg, "negative padding")
	}
	if !contiguous(in.Shape, in.MemStride, in.Rank) {
		return fail(op, mli.IncompatibleTensors, "input must be contiguous")
	}
	if err := noAlias(op, "output", out, in); err != nil {
		return err
	}
	shape := Padding2DOutShape(in, cfg)
	if n := shape[0] * shape[1] * shape[2] * in.ElType.Size(); n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	return nil
}

// Padding2DOutShape returns the CHW shape of in after padding.
func Padding2DOutShape(in *mli.Tensor, cfg *mli.Padding2DConfig) [3]int {
	return [3]int{
		in.Shape[fmapC],
		in.Shape[fmapH] + cfg.PaddingTop + cfg.PaddingBottom,
		in.Shape[fmapW] + cfg.PaddingLeft + cfg.PaddingRight,
	}
}

// Padding2DCHWFX8 checks 8-bit fixed-point zero padding.
func Padding2DCHWFX8(in *mli.Tensor, cfg *mli.Padding2DConfig, out *mli.Tensor) error {
	const op = "padding2d_chw_fx8"
	if err := padding2DCHW(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX8)
}

// Padding2DCHWFX16 checks 16-bit fixed-point zero padding.
func Padding2DCHWFX16(in *mli.Tensor, cfg *mli.Padding2DConfig, out *mli.Tensor) error {
	const op = "padding2d_chw_fx16"
	if err := padding2DCHW(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX16)
}

// Permute checks an axis permutation: PermDim[:Rank] must be a permutation
// of the input axes.
func Permute(in *mli.Tensor, cfg *mli.PermuteConfig, out *mli.Tensor) error {
	return permute("permute", in, cfg, out)
}

func permute(op string, in *mli.Tensor, cfg *mli.PermuteConfig, out *mli.Tensor) error {
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	var seen [mli.MaxRank]bool
	for i := 0; i < in.Rank; i++ {
		d := cfg.PermDim[i]
		if d < 0 || d >= in.Rank {
			return fail(op, mli.BadFuncCfg, "perm_dim[%d] = %d outside rank %d", i, d, in.Rank)
		}
		if seen[d] {
			return fail(op, mli.BadFuncCfg, "axis %d repeated", d)
		}
		seen[d] = true
	}
	if !contiguous(in.Shape, in.MemStride, in.Rank) {
		return fail(op, mli.IncompatibleTensors, "input must be contiguous")
	}
	if err := noAlias(op, "output", out, in); err != nil {
		return err
	}
	if n := in.Count() * in.ElType.Size(); n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	return nil
}

// PermuteFX8 checks an 8-bit fixed-point permutation.
func PermuteFX8(in *mli.Tensor, cfg *mli.PermuteConfig, out *mli.Tensor) error {
	const op = "permute_fx8"
	if err := permute(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX8)
}

// PermuteFX16 checks a 16-bit fixed-point permutation.
func PermuteFX16(in *mli.Tensor, cfg *mli.PermuteConfig, out *mli.Tensor) error {
	const op = "permute_fx16"
	if err := permute(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX16)
}

// Argmax checks a top-k index search. The input must be contiguous. out may
// be FX8, FX16, SA8 or SA32 and must hold TopK indices per slice, each of
// which must fit its element type.
func Argmax(in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) error {
	return argmax("argmax", in, cfg, out)
}

func argmax(op string, in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) error {
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	if cfg.Axis < -1 || cfg.Axis >= in.Rank {
		return fail(op, mli.BadFuncCfg, "axis %d outside rank %d", cfg.Axis, in.Rank)
	}
	groups := 1
	if cfg.Axis >= 0 {
		groups = in.Shape[cfg.Axis]
	}
	if per := in.Count() / groups; cfg.TopK < 1 || cfg.TopK > per {
		return fail(op, mli.BadFuncCfg, "topk %d outside [1, %d]", cfg.TopK, per)
	}
	if !contiguous(in.Shape, in.MemStride, in.Rank) {
		return fail(op, mli.IncompatibleTensors, "input must be contiguous")
	}
	switch out.ElType {
	case mli.FX8, mli.FX16, mli.SA8, mli.SA32:
	default:
		return fail(op, mli.TypeMismatch, "output type %v cannot hold indices", out.ElType)
	}
	if err := outType(op, out, out.ElType); err != nil {
		return err
	}
	if limit := int64(1)<<(8*out.ElType.Size()-1) - 1; int64(in.Count()-1) > limit {
		return fail(op, mli.IncompatibleTensors, "%d elements overflow %v indices", in.Count(), out.ElType)
	}
	if err := noAlias(op, "output", out, in); err != nil {
		return err
	}
	if n := groups * cfg.TopK * out.ElType.Size(); n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	return nil
}

// ArgmaxFX8 checks a top-k search over an 8-bit fixed-point input.
func ArgmaxFX8(in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) error {
	const op = "argmax_fx8"
	if err := argmax(op, in, cfg, out); err != nil {
		return err
	}
	return isType(op, "input", in, mli.FX8)
}

// ArgmaxFX16 checks a top-k search over a 16-bit fixed-point input.
func ArgmaxFX16(in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) error {
	const op = "argmax_fx16"
	if err := argmax(op, in, cfg, out); err != nil {
		return err
	}
	return isType(op, "input", in, mli.FX16)
}

// ArgmaxSA8 checks a top-k search over an 8-bit asymmetric input.
func ArgmaxSA8(in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) error {
	const op = "argmax_sa8"
	if err := argmax(op, in, cfg, out); err != nil {
		return err
	}
	return isType(op, "input", in, mli.SA8)
}
