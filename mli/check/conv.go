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

// Axis layout of CHW feature maps and kernel-major weights.
const (
	fmapC = 0
	fmapH = 1
	fmapW = 2

	krnlC = 0 // output channels
	krnlD = 1 // input channels
	krnlH = 2
	krnlW = 3
)

// ConvOutShape returns the CHW output shape of a convolution of in with
// weights under cfg. Arguments are assumed validated.
func ConvOutShape(in, weights *mli.Tensor, cfg *mli.Conv2DConfig) [3]int {
	dh, dw := cfg.Dilations()
	kh := (weights.Shape[krnlH]-1)*dh + 1
	kw := (weights.Shape[krnlW]-1)*dw + 1
	return [3]int{
		weights.Shape[krnlC],
		mli.OutSize(in.Shape[fmapH], cfg.PaddingTop, cfg.PaddingBottom, kh, cfg.StrideHeight),
		mli.OutSize(in.Shape[fmapW], cfg.PaddingLeft, cfg.PaddingRight, kw, cfg.StrideWidth),
	}
}

// Conv2DCHW checks the operands of a dense CHW convolution independent of
// element type.
func Conv2DCHW(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return conv2dCHW("conv2d_chw", false, in, weights, bias, cfg, out)
}

// DepthwiseConv2DCHW checks the operands of a depthwise CHW convolution.
func DepthwiseConv2DCHW(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return conv2dCHW("depthwise_conv2d_chw", true, in, weights, bias, cfg, out)
}

func conv2dCHW(op string, depthwise bool, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := tensor(op, weights); err != nil {
		return err
	}
	if err := tensor(op, bias); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}

	if in.Rank != 3 || weights.Rank != 4 || bias.Rank != 1 {
		return fail(op, mli.ShapeMismatch, "ranks in=%d weights=%d bias=%d, want 3, 4, 1", in.Rank, weights.Rank, bias.Rank)
	}
	if depthwise {
		if weights.Shape[krnlD] != 1 {
			return fail(op, mli.ShapeMismatch, "depthwise weights depth %d, want 1", weights.Shape[krnlD])
		}
		if in.Shape[fmapC] != weights.Shape[krnlC] {
			return fail(op, mli.ShapeMismatch, "in channels %d != weights filters %d", in.Shape[fmapC], weights.Shape[krnlC])
		}
	} else if in.Shape[fmapC] != weights.Shape[krnlD] {
		return fail(op, mli.ShapeMismatch, "in channels %d != weights depth %d", in.Shape[fmapC], weights.Shape[krnlD])
	}
	if bias.Shape[0] != weights.Shape[krnlC] {
		return fail(op, mli.ShapeMismatch, "bias %d != weights filters %d", bias.Shape[0], weights.Shape[krnlC])
	}

	if err := convConfig(op, cfg, weights.Shape[krnlH], weights.Shape[krnlW]); err != nil {
		return err
	}

	if weights.ElType.IsSA() {
		if bias.ElType != mli.SA32 || in.ElType != mli.SA8 {
			return fail(op, mli.NotSupported, "asymmetric weights need sa8 input and sa32 bias, got %v and %v", in.ElType, bias.ElType)
		}
	} else {
		if weights.ElType != bias.ElType {
			return fail(op, mli.NotSupported, "weights %v with bias %v", weights.ElType, bias.ElType)
		}
		if in.ElType == mli.FX8 && weights.ElType == mli.FX16 {
			return fail(op, mli.NotSupported, "fx8 data with fx16 weights")
		}
	}

	if !innerStrideOne(in) || !innerStrideOne(out) {
		return fail(op, mli.IncompatibleTensors, "inner-most memory stride must be 1")
	}
	if err := noAlias(op, "output", out, in, weights, bias); err != nil {
		return err
	}
	if !contiguous(weights.Shape, weights.MemStride, weights.Rank) || !contiguous(bias.Shape, bias.MemStride, bias.Rank) {
		return fail(op, mli.IncompatibleTensors, "weights and bias must be contiguous")
	}
	if weights.ElType.IsSA() {
		if err := saConvParams(op, in, weights, bias); err != nil {
			return err
		}
	} else if err := biasFracFX(op, in, weights, bias); err != nil {
		return err
	}

	shape := ConvOutShape(in, weights, cfg)
	return outCapacity(op, out, shape[:], in.ElType.Size())
}

func convConfig(op string, cfg *mli.Conv2DConfig, kh, kw int) error {
	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	if cfg.DilationHeight < 0 || cfg.DilationWidth < 0 {
		return fail(op, mli.BadFuncCfg, "negative dilation")
	}
	dh, dw := cfg.Dilations()
	kh = (kh-1)*dh + 1
	kw = (kw-1)*dw + 1
	if cfg.PaddingLeft < 0 || cfg.PaddingRight < 0 || cfg.PaddingTop < 0 || cfg.PaddingBottom < 0 {
		return fail(op, mli.BadFuncCfg, "negative padding")
	}
	if cfg.PaddingLeft >= kw || cfg.PaddingRight >= kw || cfg.PaddingTop >= kh || cfg.PaddingBottom >= kh {
		return fail(op, mli.BadFuncCfg, "padding must be smaller than the %dx%d kernel", kh, kw)
	}
	if cfg.StrideHeight <= 0 || cfg.StrideWidth <= 0 {
		return fail(op, mli.BadFuncCfg, "stride %dx%d", cfg.StrideHeight, cfg.StrideWidth)
	}
	if cfg.Relu.Type < mli.ReluNone || cfg.Relu.Type > mli.Relu6 {
		return fail(op, mli.BadFuncCfg, "relu type %d", cfg.Relu.Type)
	}
	return nil
}

// BiasFracFX checks that the bias does not carry more fractional bits than
// the accumulator it is added to.
func BiasFracFX(in, weights, bias *mli.Tensor) error {
	return biasFracFX("bias_frac_fx", in, weights, bias)
}

func biasFracFX(op string, in, weights, bias *mli.Tensor) error {
	acc := in.ElParams.FracBits + weights.ElParams.FracBits
	if bias.ElParams.FracBits > acc {
		return fail(op, mli.IncompatibleTensors, "bias frac bits %d exceed accumulator frac bits %d", bias.ElParams.FracBits, acc)
	}
	return nil
}

// BiasScaleSA checks that the bias scale of every output channel equals the
// product of input and weight scales, within one unit of rounding, under the
// shift implied by the scale fractional bits.
func BiasScaleSA(in, weights, bias *mli.Tensor) error {
	return biasScaleSA("bias_scale_sa", in, weights, bias)
}

func biasScaleSA(op string, in, weights, bias *mli.Tensor) error {
	inScale, _, inFrac := in.ElParams.SA.ScaleAt(0)
	n := 1
	if weights.ElParams.SA.Dim >= 0 {
		n = weights.Shape[weights.ElParams.SA.Dim]
	}
	for i := 0; i < n; i++ {
		wScale, _, wFrac := weights.ElParams.SA.ScaleAt(i)
		bScale, _, bFrac := bias.ElParams.SA.ScaleAt(i)
		shift := int(inFrac) + int(wFrac) - int(bFrac)
		want := mli.Asl(int64(inScale)*int64(wScale), -shift)
		if d := want - int64(bScale); d > 1 || d < -1 {
			return fail(op, mli.IncompatibleTensors, "bias scale %d of channel %d, want %d", bScale, i, want)
		}
	}
	return nil
}

// saAxis checks that per-axis quantization arrays match the axis extent.
func saAxis(op, name string, t *mli.Tensor) error {
	p := &t.ElParams.SA
	if len(p.Scale) == 0 || len(p.ScaleFracBits) == 0 || len(p.ZeroPoint) == 0 {
		return fail(op, mli.IncompatibleTensors, "%s has no quantization parameters", name)
	}
	if p.Dim < 0 {
		return nil
	}
	if p.Dim >= t.Rank {
		return fail(op, mli.IncompatibleTensors, "%s quantization axis %d outside rank %d", name, p.Dim, t.Rank)
	}
	n := t.Shape[p.Dim]
	if len(p.Scale) != n || len(p.ScaleFracBits) != n || len(p.ZeroPoint) != n {
		return fail(op, mli.IncompatibleTensors, "%s quantization arrays do not match axis extent %d", name, n)
	}
	return nil
}

func saConvParams(op string, in, weights, bias *mli.Tensor) error {
	if in.ElParams.SA.Dim >= 0 {
		return fail(op, mli.IncompatibleTensors, "input must be quantized per tensor")
	}
	for _, x := range []struct {
		name string
		t    *mli.Tensor
	}{{"input", in}, {"weights", weights}, {"bias", bias}} {
		if err := saAxis(op, x.name, x.t); err != nil {
			return err
		}
	}
	if d := weights.ElParams.SA.Dim; d >= 0 && d != krnlC {
		return fail(op, mli.IncompatibleTensors, "weights quantized along axis %d, want %d", d, krnlC)
	}
	if weights.ElParams.SA.Dim != bias.ElParams.SA.Dim && weights.ElParams.SA.Dim >= 0 {
		return fail(op, mli.IncompatibleTensors, "bias and weights quantization axes differ")
	}
	for _, zp := range weights.ElParams.SA.ZeroPoint {
		if zp != 0 {
			return fail(op, mli.IncompatibleTensors, "weights zero point %d, want symmetric weights", zp)
		}
	}
	return biasScaleSA(op, in, weights, bias)
}

func convTypes(op string, in, weights, bias, out *mli.Tensor, tin, tw, tb mli.ElType) error {
	if err := isType(op, "input", in, tin); err != nil {
		return err
	}
	if err := isType(op, "weights", weights, tw); err != nil {
		return err
	}
	if err := isType(op, "bias", bias, tb); err != nil {
		return err
	}
	return outType(op, out, tin)
}

// typedConv checks a convolution entry point: operand and output types first,
// then the type-independent rules.
func typedConv(op string, depthwise bool, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor, tin, tw, tb mli.ElType) error {
	for _, t := range []*mli.Tensor{in, weights, bias} {
		if err := tensor(op, t); err != nil {
			return err
		}
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if err := convTypes(op, in, weights, bias, out, tin, tw, tb); err != nil {
		return err
	}
	return conv2dCHW(op, depthwise, in, weights, bias, cfg, out)
}

// Conv2DCHWFX8 checks an 8-bit fixed-point dense convolution.
func Conv2DCHWFX8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	const op = "conv2d_chw_fx8"
	return typedConv(op, false, in, weights, bias, cfg, out, mli.FX8, mli.FX8, mli.FX8)
}

// Conv2DCHWFX16 checks a 16-bit fixed-point dense convolution.
func Conv2DCHWFX16(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	const op = "conv2d_chw_fx16"
	return typedConv(op, false, in, weights, bias, cfg, out, mli.FX16, mli.FX16, mli.FX16)
}

// Conv2DCHWFX8W16D checks a dense convolution of 16-bit data with 8-bit weights.
func Conv2DCHWFX8W16D(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	const op = "conv2d_chw_fx8w16d"
	return typedConv(op, false, in, weights, bias, cfg, out, mli.FX16, mli.FX8, mli.FX8)
}

// Conv2DCHWSA8 checks an asymmetric 8-bit dense convolution with 32-bit bias.
func Conv2DCHWSA8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	const op = "conv2d_chw_sa8"
	if err := typedConv(op, false, in, weights, bias, cfg, out, mli.SA8, mli.SA8, mli.SA32); err != nil {
		return err
	}
	return saOut(op, out)
}

// DepthwiseConv2DCHWFX8 checks an 8-bit fixed-point depthwise convolution.
func DepthwiseConv2DCHWFX8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	const op = "depthwise_conv2d_chw_fx8"
	return typedConv(op, true, in, weights, bias, cfg, out, mli.FX8, mli.FX8, mli.FX8)
}

// DepthwiseConv2DCHWFX16 checks a 16-bit fixed-point depthwise convolution.
func DepthwiseConv2DCHWFX16(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	const op = "depthwise_conv2d_chw_fx16"
	return typedConv(op, true, in, weights, bias, cfg, out, mli.FX16, mli.FX16, mli.FX16)
}

// DepthwiseConv2DCHWFX8W16D checks a depthwise convolution of 16-bit data
// with 8-bit weights.
func DepthwiseConv2DCHWFX8W16D(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	const op = "depthwise_conv2d_chw_fx8w16d"
	return typedConv(op, true, in, weights, bias, cfg, out, mli.FX16, mli.FX8, mli.FX8)
}

// DepthwiseConv2DCHWSA8 checks an asymmetric 8-bit depthwise convolution.
func DepthwiseConv2DCHWSA8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	const op = "depthwise_conv2d_chw_sa8"
	if err := typedConv(op, true, in, weights, bias, cfg, out, mli.SA8, mli.SA8, mli.SA32); err != nil {
		return err
	}
	return saOut(op, out)
}

// saOut checks the caller-provided quantization of an SA8 output.
func saOut(op string, out *mli.Tensor) error {
	p := &out.ElParams.SA
	if p.Dim >= 0 || len(p.Scale) == 0 || len(p.ScaleFracBits) == 0 || len(p.ZeroPoint) == 0 {
		return fail(op, mli.IncompatibleTensors, "output must carry per-tensor quantization")
	}
	if p.Scale[0] <= 0 {
		return fail(op, mli.IncompatibleTensors, "output scale %d", p.Scale[0])
	}
	return nil
}
