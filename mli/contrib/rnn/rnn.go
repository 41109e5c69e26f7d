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

// Package rnn implements the dense and recurrent layers: fully connected,
// the basic RNN cell, the LSTM cell and the GRU cell, for FX8, FX16 and
// FX8W16D operands.
//
// Every layer is built on one dense step: a bias pre-shifted to the
// accumulator notation, the input dot product, a rescale of the partial sum
// to the state notation and the state dot product. Non-linearities come from
// package activation and the LSTM output gate is applied with package
// eltwise, so results match those kernels bit for bit.
package rnn

import (
	"math"

	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/contrib/activation"
	"github.com/ajroetker/go-mli/mli/contrib/eltwise"
)

// Kernel runs dense and recurrent layers with the rounding mode of one
// platform description.
type Kernel struct {
	desc mli.Description
	act  *activation.Kernel
	elt  *eltwise.Kernel
}

// New returns a Kernel bound to desc.
func New(desc mli.Description) *Kernel {
	return &Kernel{desc: desc, act: activation.New(desc), elt: eltwise.New(desc)}
}

func platform() *Kernel { return New(mli.CurrentPlatform()) }

// dense computes outN rows of weights [outN, inN+stateN] against the
// concatenation of an input and a state vector.
type dense[T, W mli.Fixed] struct {
	weights   []W
	bias      []W
	inN       int
	stateN    int
	outN      int
	biasShift int
	inToState int
	outShift  int
	rnd       mli.Rounding
}

func newDense[T, W mli.Fixed](rnd mli.Rounding, in, state, weights, bias *mli.Tensor, outN, outFrac int) *dense[T, W] {
	inFrac, wFrac := in.ElParams.FracBits, weights.ElParams.FracBits
	stateFrac := inFrac
	if state != nil {
		stateFrac = state.ElParams.FracBits
	}
	return &dense[T, W]{
		weights:   mli.Values[W](weights),
		bias:      mli.Values[W](bias),
		outN:      outN,
		biasShift: mli.CalcShift(inFrac, wFrac, bias.ElParams.FracBits),
		inToState: inFrac - stateFrac,
		outShift:  mli.CalcShift(stateFrac, wFrac, outFrac),
		rnd:       rnd,
	}
}

func (d *dense[T, W]) run(in, state, out []T) {
	depth := d.inN + d.stateN
	for o := 0; o < d.outN; o++ {
		row := d.weights[o*depth : (o+1)*depth]
		acc := mli.Asl(int64(d.bias[o]), d.biasShift)
		for j, x := range in[:d.inN] {
			acc = mli.Mac(acc, x, row[j])
		}
		acc = mli.AsrRnd(acc, d.inToState, d.rnd)
		for j, s := range state[:d.stateN] {
			acc = mli.Mac(acc, s, row[d.inN+j])
		}
		out[o] = mli.CastAcc[T](acc, d.outShift, d.rnd)
	}
}

// gateFracBits is the notation of dense results feeding tanh or sigmoid:
// one sign and three integer bits.
func gateFracBits[T mli.Fixed]() int {
	return activation.OutFracBits[T]() - 3
}

func elType[T mli.Fixed]() mli.ElType {
	if _, hi := mli.Limits[T](); hi == math.MaxInt8 {
		return mli.FX8
	}
	return mli.FX16
}

// view wraps s as a rank-1 tensor with fracBits fractional bits.
func view[T mli.Fixed](s []T, fracBits int) *mli.Tensor {
	typ := elType[T]()
	t := &mli.Tensor{Data: s, Capacity: len(s) * typ.Size(), ElType: typ}
	t.SetShape(len(s))
	t.ElParams.FracBits = fracBits
	return t
}

func (k *Kernel) activate(fn mli.RNNActivation, in, out *mli.Tensor) error {
	wide := in.ElType == mli.FX16
	switch {
	case fn == mli.RNNActTanh && wide:
		return k.act.TanhFX16(in, out)
	case fn == mli.RNNActTanh:
		return k.act.TanhFX8(in, out)
	case wide:
		return k.act.SigmFX16(in, out)
	default:
		return k.act.SigmFX8(in, out)
	}
}

func (k *Kernel) mul(in1, in2, out *mli.Tensor) error {
	if in1.ElType == mli.FX16 {
		return k.elt.FX16(eltwise.Mul, in1, in2, out)
	}
	return k.elt.FX8(eltwise.Mul, in1, in2, out)
}
