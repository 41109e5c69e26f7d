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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/bits"
	"math/rand/v2"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
	"github.com/ajroetker/go-mli/mli/contrib/conv"
	"github.com/ajroetker/go-mli/mli/contrib/quantize"
)

var (
	levels    = []mli.Level{mli.LevelScalar, mli.LevelVec2, mli.LevelVecN}
	roundings = []mli.Rounding{mli.RoundUp, mli.RoundConvergent}
)

func newVerifyCmd() *cobra.Command {
	var (
		shape   shapeFlags
		input   []int
		filters int
		seed    uint64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every matching row against the generic path and a float reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, kh, kw, cfg, err := shape.config()
			if err != nil {
				return err
			}
			if len(input) != 3 {
				return fmt.Errorf("--input takes C,H,W, got %d values", len(input))
			}
			p := problem{
				family: f,
				inC:    input[0],
				inH:    input[1],
				inW:    input[2],
				outC:   filters,
				kh:     kh,
				kw:     kw,
				cfg:    cfg,
			}
			r, err := verify(p, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
			if err != nil {
				return err
			}
			r.print(cmd.OutOrStdout())
			if r.mismatches > 0 {
				return fmt.Errorf("%d of %d runs differ from the generic path", r.mismatches, r.runs)
			}
			return nil
		},
	}
	shape.register(cmd.Flags())
	cmd.Flags().IntSliceVarP(&input, "input", "i", []int{4, 8, 8}, "input shape C,H,W")
	cmd.Flags().IntVarP(&filters, "filters", "n", 4, "output channels of dense families")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}

// problem is one convolution call shape of one family.
type problem struct {
	family        conv.Family
	inC, inH, inW int
	outC          int
	kh, kw        int
	cfg           mli.Conv2DConfig
}

// operands holds the quantized call arguments and their float values.
type operands struct {
	in, w, b    *mli.Tensor
	fin, fw, fb []float64
	outShape    [3]int
	newOut      func() *mli.Tensor
}

func (p problem) weightShape() []int {
	if p.family.Depthwise() {
		return []int{p.inC, 1, p.kh, p.kw}
	}
	return []int{p.outC, p.inC, p.kh, p.kw}
}

// headroom returns the integer bits the output needs for a sum of taps
// products of values in [-1, 1) plus a bias in [-1, 1).
func (p problem) headroom() int {
	taps := p.kh * p.kw
	if !p.family.Depthwise() {
		taps *= p.inC
	}
	return bits.Len(uint(taps))
}

func fp32(shape []int, v []float64) *mli.Tensor {
	return mli.NewFP32(shape, lo.Map(v, func(x float64, _ int) float32 { return float32(x) }))
}

// quantizeTo converts v into t and returns the values t actually holds.
func quantizeTo(t *mli.Tensor, v []float64) ([]float64, error) {
	shape := t.Dims()
	if err := quantize.Convert(fp32(shape, v), t); err != nil {
		return nil, err
	}
	return dequantize(t)
}

func dequantize(t *mli.Tensor) ([]float64, error) {
	f := mli.NewFP32(nil, make([]float32, t.Count()))
	if err := quantize.Convert(t, f); err != nil {
		return nil, err
	}
	return lo.Map(mli.Values[float32](f), func(x float32, _ int) float64 { return float64(x) }), nil
}

func uniform(rng *rand.Rand, n int) []float64 {
	return lo.Times(n, func(int) float64 { return 2*rng.Float64() - 1 })
}

func (p problem) operands(rng *rand.Rand) (*operands, error) {
	inShape := []int{p.inC, p.inH, p.inW}
	wShape := p.weightShape()
	bShape := []int{wShape[0]}
	outFrac := max(0, 7-p.headroom())
	outFrac16 := max(0, 15-p.headroom())

	o := &operands{}
	n := func(s []int) int { return lo.Reduce(s, func(a, d, _ int) int { return a * d }, 1) }
	switch p.family {
	case conv.Conv2DFX8, conv.DepthwiseFX8:
		o.in = mli.NewFX8(inShape, 7, make([]int8, n(inShape)))
		o.w = mli.NewFX8(wShape, 7, make([]int8, n(wShape)))
		o.b = mli.NewFX8(bShape, 7, make([]int8, n(bShape)))
		o.newOut = func() *mli.Tensor { return mli.NewFX8(nil, outFrac, make([]int8, o.count())) }
	case conv.Conv2DFX16, conv.DepthwiseFX16:
		o.in = mli.NewFX16(inShape, 15, make([]int16, n(inShape)))
		o.w = mli.NewFX16(wShape, 15, make([]int16, n(wShape)))
		o.b = mli.NewFX16(bShape, 15, make([]int16, n(bShape)))
		o.newOut = func() *mli.Tensor { return mli.NewFX16(nil, outFrac16, make([]int16, o.count())) }
	case conv.Conv2DFX8W16D, conv.DepthwiseFX8W16D:
		o.in = mli.NewFX16(inShape, 15, make([]int16, n(inShape)))
		o.w = mli.NewFX8(wShape, 7, make([]int8, n(wShape)))
		o.b = mli.NewFX8(bShape, 7, make([]int8, n(bShape)))
		o.newOut = func() *mli.Tensor { return mli.NewFX16(nil, outFrac16, make([]int16, o.count())) }
	default:
		// Unit scales keep the bias scale exactly the product of input and
		// weight scales.
		o.in = mli.NewSA8(inShape, mli.PerTensor(1, 0, 7), make([]int8, n(inShape)))
		o.w = mli.NewSA8(wShape, mli.PerTensor(1, 0, 7), make([]int8, n(wShape)))
		o.b = mli.NewSA32(bShape, mli.PerTensor(1, 0, 14), make([]int32, n(bShape)))
		saOut := mli.PerTensor(1, 0, int8(outFrac))
		o.newOut = func() *mli.Tensor { return mli.NewSA8(nil, saOut, make([]int8, o.count())) }
	}

	var err error
	if o.fin, err = quantizeTo(o.in, uniform(rng, n(inShape))); err != nil {
		return nil, err
	}
	if o.fw, err = quantizeTo(o.w, uniform(rng, n(wShape))); err != nil {
		return nil, err
	}
	if o.fb, err = quantizeTo(o.b, uniform(rng, n(bShape))); err != nil {
		return nil, err
	}
	o.outShape = check.ConvOutShape(o.in, o.w, &p.cfg)
	return o, nil
}

func (o *operands) count() int { return o.outShape[0] * o.outShape[1] * o.outShape[2] }

// reference computes the convolution in float64 on the quantized operand
// values.
func (p problem) reference(o *operands) []float64 {
	dh, dw := p.cfg.Dilations()
	outC, outH, outW := o.outShape[0], o.outShape[1], o.outShape[2]
	depth := p.inC
	if p.family.Depthwise() {
		depth = 1
	}
	res := make([]float64, outC*outH*outW)
	for oc := 0; oc < outC; oc++ {
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				acc := o.fb[oc]
				for d := 0; d < depth; d++ {
					ic := d
					if p.family.Depthwise() {
						ic = oc
					}
					for y := 0; y < p.kh; y++ {
						ih := oh*p.cfg.StrideHeight - p.cfg.PaddingTop + y*dh
						if ih < 0 || ih >= p.inH {
							continue
						}
						for x := 0; x < p.kw; x++ {
							iw := ow*p.cfg.StrideWidth - p.cfg.PaddingLeft + x*dw
							if iw < 0 || iw >= p.inW {
								continue
							}
							acc += o.fin[(ic*p.inH+ih)*p.inW+iw] * o.fw[((oc*depth+d)*p.kh+y)*p.kw+x]
						}
					}
				}
				res[(oc*outH+oh)*outW+ow] = acc
			}
		}
	}
	return res
}

// report summarizes a verify run.
type report struct {
	family     conv.Family
	rows       []string
	runs       int
	mismatches int
	absErr     []float64
	outFrac    int
	relErr     float64
}

func verify(p problem, rng *rand.Rand) (*report, error) {
	o, err := p.operands(rng)
	if err != nil {
		return nil, err
	}
	r := &report{family: p.family}
	g := conv.GeometryOf(o.in, o.w, &p.cfg)
	table := p.family.Table()
	rows := lo.Filter(table, func(s conv.Spec, _ int) bool { return s.Matches(g) })
	r.rows = lo.Map(rows, func(s conv.Spec, _ int) string { return s.Name })

	var generic *mli.Tensor
	for _, rnd := range roundings {
		want := o.newOut()
		if err := conv.New(mli.NewDescription(mli.LevelScalar, rnd)).Generic(p.family, o.in, o.w, o.b, &p.cfg, want); err != nil {
			return nil, err
		}
		if rnd == mli.RoundUp {
			generic = want
		}
		for _, level := range levels {
			k := conv.New(mli.NewDescription(level, rnd))
			for _, s := range rows {
				got := o.newOut()
				if err := k.RunSpec(p.family, s, o.in, o.w, o.b, &p.cfg, got); err != nil {
					return nil, fmt.Errorf("%s at %s: %w", s.Name, level, err)
				}
				r.runs++
				if diff := cmp.Diff(want.Data, got.Data); diff != "" {
					r.mismatches++
					slog.Warn("mlispec: row differs from generic", "row", s.Name, "level", level, "rounding", rnd, "diff", diff)
					continue
				}
				slog.Debug("mlispec: row matches generic", "row", s.Name, "level", level, "rounding", rnd)
			}
		}
	}

	got, err := dequantize(generic)
	if err != nil {
		return nil, err
	}
	ref := p.reference(o)
	r.outFrac = generic.ElParams.FracBits
	if generic.ElType.IsSA() {
		r.outFrac = int(generic.ElParams.SA.ScaleFracBits[0])
	}

	// Saturated outputs say nothing about rounding error.
	limit := math.Ldexp(1, 8*generic.ElType.Size()-1-r.outFrac) - math.Ldexp(1, -r.outFrac)
	kept := lo.Filter(lo.Range(len(ref)), func(i, _ int) bool { return math.Abs(ref[i]) < limit })
	gotK := lo.Map(kept, func(i, _ int) float64 { return got[i] })
	refK := lo.Map(kept, func(i, _ int) float64 { return ref[i] })
	diff := make([]float64, len(kept))
	floats.SubTo(diff, gotK, refK)
	r.absErr = lo.Map(diff, func(d float64, _ int) float64 { return math.Abs(d) })
	if n := floats.Norm(refK, 2); n > 0 {
		r.relErr = floats.Norm(diff, 2) / n
	}
	return r, nil
}

func (r *report) print(w io.Writer) {
	fmt.Fprintf(w, "%s: %d matching rows %v\n", r.family, len(r.rows), r.rows)
	fmt.Fprintf(w, "runs: %d (%d levels x %d roundings), mismatches: %d\n", r.runs, len(levels), len(roundings), r.mismatches)
	if len(r.absErr) == 0 {
		return
	}
	mean, std := stat.MeanStdDev(r.absErr, nil)
	lsb := math.Ldexp(1, -r.outFrac)
	fmt.Fprintf(w, "error vs float64 over %d outputs: mean %.3g LSB, stddev %.3g LSB, max %.3g LSB, relative L2 %.3g\n",
		len(r.absErr), mean/lsb, std/lsb, floats.Max(r.absErr)/lsb, r.relErr)
}
