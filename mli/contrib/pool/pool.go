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

package pool

import (
	"slices"

	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// Kernel runs pooling with the rounding mode of one platform description.
type Kernel struct {
	desc mli.Description
}

// New returns a Kernel bound to desc.
func New(desc mli.Description) *Kernel {
	return &Kernel{desc: desc}
}

func platform() *Kernel { return New(mli.CurrentPlatform()) }

// Description returns the platform description k was built with.
func (k *Kernel) Description() mli.Description { return k.desc }

// Run validates a call of family f, selects its specialization and runs it.
func (k *Kernel) Run(f Family, in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	if err := f.validate(in, cfg, out); err != nil {
		return err
	}
	k.run(f, Select(f, in, cfg), in, cfg, out)
	return nil
}

// RunSpec validates a call of family f and runs row s directly. The call
// must match the row's pattern; otherwise RunSpec returns BadFuncCfg.
func (k *Kernel) RunSpec(f Family, s Spec, in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	if err := f.validate(in, cfg, out); err != nil {
		return err
	}
	if !s.Matches(GeometryOf(in, cfg)) {
		return mli.Errorf(f.String()+"_"+s.Name, mli.BadFuncCfg, "call does not match the %s pattern", s.Name)
	}
	k.run(f, s, in, cfg, out)
	return nil
}

// Generic validates a call of family f and runs the generic row.
func (k *Kernel) Generic(f Family, in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	t := f.Table()
	return k.RunSpec(f, t[len(t)-1], in, cfg, out)
}

func (f Family) validate(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	switch f {
	case MaxpoolFX8:
		return check.MaxpoolCHWFX8(in, cfg, out)
	case MaxpoolFX16:
		return check.MaxpoolCHWFX16(in, cfg, out)
	case AvepoolFX8:
		return check.AvepoolCHWFX8(in, cfg, out)
	case AvepoolFX16:
		return check.AvepoolCHWFX16(in, cfg, out)
	}
	return mli.Errorf(f.String(), mli.NotSupported, "unknown family")
}

func (k *Kernel) run(f Family, s Spec, in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) {
	switch f {
	case MaxpoolFX8, AvepoolFX8:
		run[int8](f.Average(), s.Core, k.desc.Rounding, in, cfg, out)
	default:
		run[int16](f.Average(), s.Core, k.desc.Rounding, in, cfg, out)
	}
}

// MaxpoolCHWFX8 takes the maximum of every window of an 8-bit map.
func (k *Kernel) MaxpoolCHWFX8(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return k.Run(MaxpoolFX8, in, cfg, out)
}

// MaxpoolCHWFX16 takes the maximum of every window of a 16-bit map.
func (k *Kernel) MaxpoolCHWFX16(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return k.Run(MaxpoolFX16, in, cfg, out)
}

// AvepoolCHWFX8 averages every window of an 8-bit map.
func (k *Kernel) AvepoolCHWFX8(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return k.Run(AvepoolFX8, in, cfg, out)
}

// AvepoolCHWFX16 averages every window of a 16-bit map.
func (k *Kernel) AvepoolCHWFX16(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return k.Run(AvepoolFX16, in, cfg, out)
}

// MaxpoolCHWFX8 runs Kernel.MaxpoolCHWFX8 on the current platform.
func MaxpoolCHWFX8(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return platform().MaxpoolCHWFX8(in, cfg, out)
}

// MaxpoolCHWFX16 runs Kernel.MaxpoolCHWFX16 on the current platform.
func MaxpoolCHWFX16(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return platform().MaxpoolCHWFX16(in, cfg, out)
}

// AvepoolCHWFX8 runs Kernel.AvepoolCHWFX8 on the current platform.
func AvepoolCHWFX8(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return platform().AvepoolCHWFX8(in, cfg, out)
}

// AvepoolCHWFX16 runs Kernel.AvepoolCHWFX16 on the current platform.
func AvepoolCHWFX16(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return platform().AvepoolCHWFX16(in, cfg, out)
}

// GenericMaxpoolCHWFX8 runs the generic path of MaxpoolCHWFX8.
func GenericMaxpoolCHWFX8(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return platform().Generic(MaxpoolFX8, in, cfg, out)
}

// GenericMaxpoolCHWFX16 runs the generic path of MaxpoolCHWFX16.
func GenericMaxpoolCHWFX16(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return platform().Generic(MaxpoolFX16, in, cfg, out)
}

// GenericAvepoolCHWFX8 runs the generic path of AvepoolCHWFX8.
func GenericAvepoolCHWFX8(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return platform().Generic(AvepoolFX8, in, cfg, out)
}

// GenericAvepoolCHWFX16 runs the generic path of AvepoolCHWFX16.
func GenericAvepoolCHWFX16(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	return platform().Generic(AvepoolFX16, in, cfg, out)
}

// runNamed runs the row of f called name; the generated per-specialization
// entry points go through it.
func runNamed(f Family, name string, in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error {
	s, ok := f.Lookup(name)
	if !ok {
		return mli.Errorf(f.String()+"_"+name, mli.NotSupported, "no such specialization")
	}
	return platform().RunSpec(f, s, in, cfg, out)
}

// rect is a half-open range of output rows and columns.
type rect struct {
	rowBeg, rowEnd   int
	clmnBeg, clmnEnd int
}

func (r rect) empty() bool { return r.rowBeg >= r.rowEnd || r.clmnBeg >= r.clmnEnd }

// areas splits an output map into the centre, whose windows need no
// compensation, and the border areas around it.
func areas(outH, outW, inH, inW int, cfg *mli.PoolConfig) (centre rect, border [4]rect) {
	whole := rect{0, outH, 0, outW}
	if inH < cfg.KernelHeight || inW < cfg.KernelWidth {
		border[0] = whole
		return rect{}, border
	}
	top := min(mli.CeilDiv(cfg.PaddingTop, cfg.StrideHeight), outH)
	bottom := max(outH-mli.CeilDiv(cfg.PaddingBottom, cfg.StrideHeight), top)
	left := min(mli.CeilDiv(cfg.PaddingLeft, cfg.StrideWidth), outW)
	right := max(outW-mli.CeilDiv(cfg.PaddingRight, cfg.StrideWidth), left)

	centre = rect{top, bottom, left, right}
	border = [4]rect{
		{0, top, 0, outW},
		{bottom, outH, 0, outW},
		{top, bottom, 0, left},
		{top, bottom, right, outW},
	}
	return centre, border
}

type pool[T mli.Fixed] struct {
	in, out    []T
	inH, inW   int
	inChStep   int
	inRowStep  int
	outChStep  int
	outRowStep int
	kh, kw     int
	sh, sw     int
	pt, pl     int
	rnd        mli.Rounding
	average    bool
	reduce     func(p *pool[T], off, clmns, rows int) T
}

func run[T mli.Fixed](average bool, core Core, rnd mli.Rounding, in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) {
	shape := check.PoolOutShape(in, cfg)
	out.CopyFormat(in)
	out.Rank = 3
	out.Shape = [mli.MaxRank]int{shape[0], shape[1], shape[2]}

	is, os := in.Strides(), out.Strides()
	p := &pool[T]{
		in:         mli.Values[T](in),
		out:        mli.Values[T](out),
		inH:        in.Shape[1],
		inW:        in.Shape[2],
		inChStep:   is[0],
		inRowStep:  is[1],
		outChStep:  os[0],
		outRowStep: os[1],
		kh:         cfg.KernelHeight,
		kw:         cfg.KernelWidth,
		sh:         cfg.StrideHeight,
		sw:         cfg.StrideWidth,
		pt:         cfg.PaddingTop,
		pl:         cfg.PaddingLeft,
		rnd:        rnd,
		average:    average,
		reduce:     (*pool[T]).windowMax,
	}
	if average {
		p.reduce = (*pool[T]).windowAverage
	}

	centre, border := areas(shape[1], shape[2], p.inH, p.inW, cfg)
	var col []int64
	if core == CoreStr1 && !centre.empty() {
		col = make([]int64, centre.clmnEnd-centre.clmnBeg+p.kw-1)
	}
	for ch := 0; ch < shape[0]; ch++ {
		switch {
		case centre.empty():
		case core == CoreStr1:
			p.sweep(ch, centre, col)
		default:
			p.nopad(ch, centre)
		}
		for _, r := range border {
			if !r.empty() {
				p.padded(ch, r)
			}
		}
	}
}

func (p *pool[T]) nopad(ch int, r rect) {
	for H := r.rowBeg; H < r.rowEnd; H++ {
		inRow := ch*p.inChStep + (H*p.sh-p.pt)*p.inRowStep
		o := ch*p.outChStep + H*p.outRowStep
		for W := r.clmnBeg; W < r.clmnEnd; W++ {
			p.out[o+W] = p.reduce(p, inRow+W*p.sw-p.pl, p.kw, p.kh)
		}
	}
}

// sweep runs the stride-1 centre r. Each output row first folds its kh
// input rows into col, one entry per input column, and then slides the kw
// window along col; averages keep a running sum.
func (p *pool[T]) sweep(ch int, r rect, col []int64) {
	mul, shift := divisor(p.kw * p.kh)
	for H := r.rowBeg; H < r.rowEnd; H++ {
		top := ch*p.inChStep + (H-p.pt)*p.inRowStep + r.clmnBeg - p.pl
		for x := range col {
			col[x] = int64(p.in[top+x])
		}
		for i := 1; i < p.kh; i++ {
			row := p.in[top+i*p.inRowStep:]
			for x := range col {
				if p.average {
					col[x] += int64(row[x])
				} else {
					col[x] = max(col[x], int64(row[x]))
				}
			}
		}

		o := ch*p.outChStep + H*p.outRowStep
		if !p.average {
			for W := r.clmnBeg; W < r.clmnEnd; W++ {
				x := W - r.clmnBeg
				p.out[o+W] = T(slices.Max(col[x : x+p.kw]))
			}
			continue
		}
		var sum int64
		for _, v := range col[:p.kw-1] {
			sum += v
		}
		for W := r.clmnBeg; W < r.clmnEnd; W++ {
			x := W - r.clmnBeg
			sum += col[x+p.kw-1]
			p.out[o+W] = mli.CastAcc[T](sum*mul, shift, p.rnd)
			sum -= col[x]
		}
	}
}

// padded shrinks every window of r to its valid part.
func (p *pool[T]) padded(ch int, r rect) {
	for H := r.rowBeg; H < r.rowEnd; H++ {
		hIn := H*p.sh - p.pt
		top := max(-hIn, 0)
		rows := p.kh - top - max(hIn+p.kh-p.inH, 0)
		inRow := ch*p.inChStep + (hIn+top)*p.inRowStep
		o := ch*p.outChStep + H*p.outRowStep
		for W := r.clmnBeg; W < r.clmnEnd; W++ {
			wIn := W*p.sw - p.pl
			left := max(-wIn, 0)
			clmns := p.kw - left - max(wIn+p.kw-p.inW, 0)
			p.out[o+W] = p.reduce(p, inRow+wIn+left, clmns, rows)
		}
	}
}

func (p *pool[T]) windowMax(off, clmns, rows int) T {
	m := p.in[off]
	for r := 0; r < rows; r++ {
		row := off + r*p.inRowStep
		m = max(m, slices.Max(p.in[row:row+clmns]))
	}
	return m
}

func (p *pool[T]) windowAverage(off, clmns, rows int) T {
	mul, shift := divisor(clmns * rows)
	var acc int64
	for r := 0; r < rows; r++ {
		row := off + r*p.inRowStep
		for _, v := range p.in[row : row+clmns] {
			acc += int64(v)
		}
	}
	return mli.CastAcc[T](acc*mul, shift, p.rnd)
}
