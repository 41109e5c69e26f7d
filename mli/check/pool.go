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

// PoolOutShape returns the CHW output shape of pooling in under cfg.
func PoolOutShape(in *mli.Tensor, cfg *mli.PoolConfig) [3]int {
	return [3]int{
		in.Shape[fmapC],
		mli.OutSize(in.Shape[fmapH], cfg.PaddingTop, cfg.PaddingBottom, cfg.KernelHeight, cfg.StrideHeight),
		mli.OutSize(in.Shape[fmapW], cfg.PaddingLeft, cfg.PaddingRight, cfg.KernelWidth, cfg.StrideWidth),
	}
}

func poolCHW(op string, in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
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
	if cfg.KernelWidth <= 0 || cfg.KernelHeight <= 0 {
		return fail(op, mli.BadFuncCfg, "kernel %dx%d", cfg.KernelHeight, cfg.KernelWidth)
	}
	if cfg.PaddingLeft < 0 || cfg.PaddingRight < 0 || cfg.PaddingTop < 0 || cfg.PaddingBottom < 0 {
		return fail(op, mli.BadFuncCfg, "negative padding")
	}
	if cfg.PaddingLeft >= cfg.KernelWidth || cfg.PaddingRight >= cfg.KernelWidth ||
		cfg.PaddingTop >= cfg.KernelHeight || cfg.PaddingBottom >= cfg.KernelHeight {
		return fail(op, mli.BadFuncCfg, "padding must be smaller than the %dx%d kernel", cfg.KernelHeight, cfg.KernelWidth)
	}
	if cfg.StrideHeight <= 0 || cfg.StrideWidth <= 0 {
		return fail(op, mli.BadFuncCfg, "stride %dx%d", cfg.StrideHeight, cfg.StrideWidth)
	}
	if in.Shape[fmapH]+cfg.PaddingTop+cfg.PaddingBottom < cfg.KernelHeight ||
		in.Shape[fmapW]+cfg.PaddingLeft+cfg.PaddingRight < cfg.KernelWidth {
		return fail(op, mli.BadFuncCfg, "kernel larger than padded input")
	}
	if !innerStrideOne(in) || !innerStrideOne(out) {
		return fail(op, mli.IncompatibleTensors, "inner-most memory stride must be 1")
	}
	if err := noAlias(op, "output", out, in); err != nil {
		return err
	}
	shape := PoolOutShape(in, cfg)
	return outCapacity(op, out, shape[:], in.ElType.Size())
}

func withType(op string, in, out *mli.Tensor, want mli.ElType) error {
	if err := isType(op, "input", in, want); err != nil {
		return err
	}
	return outType(op, out, want)
}

// MaxpoolCHW checks a CHW max pooling independent of element type.
func MaxpoolCHW(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return poolCHW("maxpool_chw", in, cfg, out)
}

// MaxpoolCHWFX8 checks an 8-bit fixed-point max pooling.
func MaxpoolCHWFX8(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	const op = "maxpool_chw_fx8"
	if err := poolCHW(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX8)
}

// MaxpoolCHWFX16 checks a 16-bit fixed-point max pooling.
func MaxpoolCHWFX16(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	const op = "maxpool_chw_fx16"
	if err := poolCHW(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX16)
}

// AvepoolCHW checks a CHW average pooling independent of element type.
func AvepoolCHW(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return poolCHW("avepool_chw", in, cfg, out)
}

// AvepoolCHWFX8 checks an 8-bit fixed-point average pooling.
func AvepoolCHWFX8(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	const op = "avepool_chw_fx8"
	if err := poolCHW(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX8)
}

// AvepoolCHWFX16 checks a 16-bit fixed-point average pooling.
func AvepoolCHWFX16(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	const op = "avepool_chw_fx16"
	if err := poolCHW(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX16)
}
