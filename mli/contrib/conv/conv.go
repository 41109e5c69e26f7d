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

package conv

import (
	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// Kernel runs convolutions with the micro-kernel set of one platform
// description. The zero value uses the scalar micro-kernels.
type Kernel struct {
	desc mli.Description
}

// New returns a Kernel bound to desc.
func New(desc mli.Description) *Kernel {
	return &Kernel{desc: desc}
}

// Description returns the platform description k was built with.
func (k *Kernel) Description() mli.Description { return k.desc }

// Run validates a call of family f, selects its specialization and runs it.
func (k *Kernel) Run(f Family, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	if err := f.validate(in, weights, bias, cfg, out); err != nil {
		return err
	}
	k.run(f, Select(f, in, weights, cfg), in, weights, bias, cfg, out)
	return nil
}

// RunSpec validates a call of family f and runs row s directly. The call
// must match the row's pattern; otherwise RunSpec returns BadFuncCfg.
func (k *Kernel) RunSpec(f Family, s Spec, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	if err := f.validate(in, weights, bias, cfg, out); err != nil {
		return err
	}
	if !s.Matches(GeometryOf(in, weights, cfg)) {
		return mli.Errorf(f.String()+"_"+s.Name, mli.BadFuncCfg, "call does not match the %s pattern", s.Name)
	}
	k.run(f, s, in, weights, bias, cfg, out)
	return nil
}

// Generic validates a call of family f and runs the generic row.
func (k *Kernel) Generic(f Family, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	t := f.Table()
	return k.RunSpec(f, t[len(t)-1], in, weights, bias, cfg, out)
}

func (f Family) validate(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	switch f {
	case Conv2DFX8:
		return check.Conv2DCHWFX8(in, weights, bias, cfg, out)
	case Conv2DFX16:
		return check.Conv2DCHWFX16(in, weights, bias, cfg, out)
	case Conv2DFX8W16D:
		return check.Conv2DCHWFX8W16D(in, weights, bias, cfg, out)
	case Conv2DSA8:
		return check.Conv2DCHWSA8(in, weights, bias, cfg, out)
	case DepthwiseFX8:
		return check.DepthwiseConv2DCHWFX8(in, weights, bias, cfg, out)
	case DepthwiseFX16:
		return check.DepthwiseConv2DCHWFX16(in, weights, bias, cfg, out)
	case DepthwiseFX8W16D:
		return check.DepthwiseConv2DCHWFX8W16D(in, weights, bias, cfg, out)
	case DepthwiseSA8:
		return check.DepthwiseConv2DCHWSA8(in, weights, bias, cfg, out)
	}
	return mli.Errorf(f.String(), mli.NotSupported, "unknown family")
}

func (k *Kernel) run(f Family, s Spec, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) {
	dw := f.Depthwise()
	switch f {
	case Conv2DFX8, DepthwiseFX8:
		runFX[int8, int8](k.desc, dw, s.Core, in, weights, bias, cfg, out)
	case Conv2DFX16, DepthwiseFX16:
		runFX[int16, int16](k.desc, dw, s.Core, in, weights, bias, cfg, out)
	case Conv2DFX8W16D, DepthwiseFX8W16D:
		runFX[int16, int8](k.desc, dw, s.Core, in, weights, bias, cfg, out)
	case Conv2DSA8, DepthwiseSA8:
		c := newConv[int8, int8, int32](k.desc, dw, in, weights, bias, cfg, out)
		c.sa = &saQuant{
			in:   &in.ElParams.SA,
			w:    &weights.ElParams.SA,
			out:  &out.ElParams.SA,
			relu: cfg.Relu.Type,
			rnd:  k.desc.Rounding,
		}
		c.run(s.Core)
	}
}

func runFX[I, W mli.Fixed](desc mli.Description, depthwise bool, core Core, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) {
	c := newConv[I, W, W](desc, depthwise, in, weights, bias, cfg, out)
	inFrac, wFrac := in.ElParams.FracBits, weights.ElParams.FracBits
	outFrac := out.ElParams.FracBits
	c.fx = requant{
		biasShift: inFrac + wFrac - bias.ElParams.FracBits,
		outShift:  mli.CalcShift(inFrac, wFrac, outFrac),
		mul:       1,
		rnd:       desc.Rounding,
	}
	c.fx.lo, c.fx.hi = mli.ReluMinMax[I](cfg.Relu.Type, outFrac)
	c.run(core)
}

// newConv fills the output descriptor and captures the geometry of a
// validated call.
func newConv[I, W, B mli.Int](desc mli.Description, depthwise bool, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) *conv[I, W, B] {
	shape := check.ConvOutShape(in, weights, cfg)
	out.Rank = 3
	out.Shape = [mli.MaxRank]int{shape[0], shape[1], shape[2]}
	out.ElType = in.ElType

	is, os := in.Strides(), out.Strides()
	dh, dw := cfg.Dilations()
	return &conv[I, W, B]{
		ks:         kernelsFor[I, W](desc.Level),
		in:         mli.Values[I](in),
		w:          mli.Values[W](weights),
		bias:       mli.Values[B](bias),
		out:        mli.Values[I](out),
		inH:        in.Shape[1],
		inW:        in.Shape[2],
		inChStep:   is[0],
		inRowStep:  is[1],
		outH:       shape[1],
		outW:       shape[2],
		outChStep:  os[0],
		outRowStep: os[1],
		kh:         weights.Shape[2],
		kw:         weights.Shape[3],
		dh:         dh,
		dw:         dw,
		sh:         cfg.StrideHeight,
		sw:         cfg.StrideWidth,
		pt:         cfg.PaddingTop,
		pl:         cfg.PaddingLeft,
		depth:      weights.Shape[1],
		filters:    weights.Shape[0],
		depthwise:  depthwise,
	}
}

func (c *conv[I, W, B]) run(core Core) {
	dilated := c.dh > 1 || c.dw > 1
	for oc := 0; oc < c.filters; oc++ {
		q := c.requant(oc)
		switch {
		case dilated:
			c.convolutionCHWDilated(oc, &q)
		case core == CoreStr1:
			c.conv2dCHWStr1(oc, &q, false)
		case core == CoreStr1Fixed:
			c.conv2dCHWStr1(oc, &q, true)
		case core == CoreK1x1Str1:
			c.conv2dCHWNopadK1x1Str1(oc, &q)
		case core == CorePerPixel:
			c.convolutionCHW(oc, &q)
		case core == CoreNopad:
			c.convolutionCHWNopad(oc, &q)
		default:
			c.conv2dCHW(oc, &q)
		}
	}
}

func platform() *Kernel { return New(mli.CurrentPlatform()) }

// Conv2DCHWFX8 convolves an FX8 CHW input with FX8 weights and bias.
func Conv2DCHWFX8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Run(Conv2DFX8, in, weights, bias, cfg, out)
}

// Conv2DCHWFX16 convolves an FX16 CHW input with FX16 weights and bias.
func Conv2DCHWFX16(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Run(Conv2DFX16, in, weights, bias, cfg, out)
}

// Conv2DCHWFX8W16D convolves FX16 data with FX8 weights and bias.
func Conv2DCHWFX8W16D(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Run(Conv2DFX8W16D, in, weights, bias, cfg, out)
}

// Conv2DCHWSA8 convolves SA8 data with symmetric SA8 weights and an SA32
// bias. The output quantization is taken from out.
func Conv2DCHWSA8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Run(Conv2DSA8, in, weights, bias, cfg, out)
}

// DepthwiseConv2DCHWFX8 is the depthwise counterpart of Conv2DCHWFX8.
func DepthwiseConv2DCHWFX8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Run(DepthwiseFX8, in, weights, bias, cfg, out)
}

// DepthwiseConv2DCHWFX16 is the depthwise counterpart of Conv2DCHWFX16.
func DepthwiseConv2DCHWFX16(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Run(DepthwiseFX16, in, weights, bias, cfg, out)
}

// DepthwiseConv2DCHWFX8W16D is the depthwise counterpart of Conv2DCHWFX8W16D.
func DepthwiseConv2DCHWFX8W16D(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Run(DepthwiseFX8W16D, in, weights, bias, cfg, out)
}

// DepthwiseConv2DCHWSA8 is the depthwise counterpart of Conv2DCHWSA8.
func DepthwiseConv2DCHWSA8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Run(DepthwiseSA8, in, weights, bias, cfg, out)
}

// GenericConv2DCHWFX8 runs the generic path of Conv2DCHWFX8.
func GenericConv2DCHWFX8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Generic(Conv2DFX8, in, weights, bias, cfg, out)
}

// GenericConv2DCHWFX16 runs the generic path of Conv2DCHWFX16.
func GenericConv2DCHWFX16(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Generic(Conv2DFX16, in, weights, bias, cfg, out)
}

// GenericConv2DCHWFX8W16D runs the generic path of Conv2DCHWFX8W16D.
func GenericConv2DCHWFX8W16D(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Generic(Conv2DFX8W16D, in, weights, bias, cfg, out)
}

// GenericConv2DCHWSA8 runs the generic path of Conv2DCHWSA8.
func GenericConv2DCHWSA8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Generic(Conv2DSA8, in, weights, bias, cfg, out)
}

// GenericDepthwiseConv2DCHWFX8 runs the generic path of DepthwiseConv2DCHWFX8.
func GenericDepthwiseConv2DCHWFX8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Generic(DepthwiseFX8, in, weights, bias, cfg, out)
}

// GenericDepthwiseConv2DCHWFX16 runs the generic path of DepthwiseConv2DCHWFX16.
func GenericDepthwiseConv2DCHWFX16(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Generic(DepthwiseFX16, in, weights, bias, cfg, out)
}

// GenericDepthwiseConv2DCHWFX8W16D runs the generic path of DepthwiseConv2DCHWFX8W16D.
func GenericDepthwiseConv2DCHWFX8W16D(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Generic(DepthwiseFX8W16D, in, weights, bias, cfg, out)
}

// GenericDepthwiseConv2DCHWSA8 runs the generic path of DepthwiseConv2DCHWSA8.
func GenericDepthwiseConv2DCHWSA8(in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	return platform().Generic(DepthwiseSA8, in, weights, bias, cfg, out)
}

// runNamed runs the row of f called name; the generated per-specialization
// entry points go through it.
func runNamed(f Family, name string, in, weights, bias *mli.Tensor, cfg *mli.Conv2DConfig, out *mli.Tensor) error {
	s, ok := f.Lookup(name)
	if !ok {
		return mli.Errorf(f.String()+"_"+name, mli.NotSupported, "no such specialization")
	}
	return platform().RunSpec(f, s, in, weights, bias, cfg, out)
}
