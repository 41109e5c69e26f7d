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

package rnn

import (
	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
	"github.com/ajroetker/go-mli/mli/contrib/activation"
	"github.com/ajroetker/go-mli/mli/helpers"
)

// Gate order of the GRU weights, bias and intermediate buffer.
const (
	gruUpdate = iota
	gruReset
	gruNew
	gruGates
)

// GRUCellFX8 runs a gated recurrent unit. weights are [3, out, in+out] and
// bias [3, out], stacked in update, reset and new gate order:
//
//	z = sigm(Wz.[x, h] + bz)
//	r = sigm(Wr.[x, h] + br)
//	n = tanh(Wn.[x, r*h] + bn)
//	h' = (1-z)*n + z*h
//
// The output keeps the notation of prev_out so that it can feed the next
// step; cfg.IR receives the gate vectors of the last step and cfg.Act is
// ignored.
func (k *Kernel) GRUCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	if err := check.GRUCellFX8(in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return gruCell[int8, int8](k, in, prevOut, weights, bias, cfg, out)
}

// GRUCellFX16 is GRUCellFX8 for 16-bit operands.
func (k *Kernel) GRUCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	if err := check.GRUCellFX16(in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return gruCell[int16, int16](k, in, prevOut, weights, bias, cfg, out)
}

// GRUCellFX8W16D is GRUCellFX16 with 8-bit weights and bias.
func (k *Kernel) GRUCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	if err := check.GRUCellFX8W16D(in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return gruCell[int16, int8](k, in, prevOut, weights, bias, cfg, out)
}

func gruCell[T, W mli.Fixed](k *Kernel, in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	outN := prevOut.Count()
	batches, inN := 1, in.Count()
	if cfg.Mode != mli.RNNOneToOne {
		batches, inN = in.Shape[0], in.CountPart(1)
	}

	ir := cfg.IR
	ir.SetShape(bias.Dims()...)
	ir.ElType = in.ElType
	ir.ElParams.FracBits = gateFracBits[T]()

	// The update and reset gates share one dense step over [x, h]; the new
	// gate runs the last weight block over [x, r*h].
	gates := newDense[T, W](k.desc.Rounding, in, prevOut, weights, bias, gruNew*outN, ir.ElParams.FracBits)
	gates.inN, gates.stateN = inN, outN
	candidate := *gates
	candidate.outN = outN
	candidate.weights = gates.weights[gruNew*outN*(inN+outN):]
	candidate.bias = gates.bias[gruNew*outN:]

	var views [gruGates]mli.Tensor
	for g := range views {
		sub := mli.SubtensorConfig{CoordNum: 1, FirstOutDimSize: 1}
		sub.StartCoord[0] = g
		if err := helpers.PointToSubtensor(ir, &sub, &views[g]); err != nil {
			return err
		}
		views[g].SetShape(outN)
	}

	width := activation.OutFracBits[T]()
	rnd := k.desc.Rounding
	stateFrac := prevOut.ElParams.FracBits
	// (1-z)*n is Q(2*width); bring it to the Q(width+state) notation of z*h.
	nShift := width - stateFrac
	one := mli.Asl(1, width)

	src := mli.Values[T](in)
	dst := mli.Values[T](out)
	gv := mli.Values[T](ir)
	state := mli.Values[T](prevOut)[:outN]
	zG := gv[gruUpdate*outN : (gruUpdate+1)*outN]
	rG := gv[gruReset*outN : (gruReset+1)*outN]
	nG := gv[gruNew*outN : (gruNew+1)*outN]
	reset := make([]T, outN)

	for b := 0; b < batches; b++ {
		x := src[b*inN : (b+1)*inN]
		gates.run(x, state, gv)
		for _, g := range []int{gruUpdate, gruReset} {
			views[g].ElParams.FracBits = ir.ElParams.FracBits
			if err := k.activate(mli.RNNActSigm, &views[g], &views[g]); err != nil {
				return err
			}
		}

		for j, h := range state {
			reset[j] = mli.CastAcc[T](int64(rG[j])*int64(h), width, rnd)
		}
		candidate.run(x, reset, nG)
		views[gruNew].ElParams.FracBits = ir.ElParams.FracBits
		if err := k.activate(mli.RNNActTanh, &views[gruNew], &views[gruNew]); err != nil {
			return err
		}

		row := dst[:outN]
		if cfg.Mode == mli.RNNBatchToBatch {
			row = dst[b*outN : (b+1)*outN]
		}
		for j := range row {
			z := int64(zG[j])
			acc := mli.AsrRnd((one-z)*int64(nG[j]), nShift, rnd)
			acc = mli.Mac(acc, zG[j], state[j])
			row[j] = mli.CastAcc[T](acc, width, rnd)
		}
		state = row
	}

	out.ElType = in.ElType
	out.ElParams.FracBits = stateFrac
	if cfg.Mode == mli.RNNBatchToBatch {
		out.SetShape(batches, outN)
	} else {
		out.SetShape(outN)
	}
	return nil
}

func GRUCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	return platform().GRUCellFX8(in, prevOut, weights, bias, cfg, out)
}

func GRUCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	return platform().GRUCellFX16(in, prevOut, weights, bias, cfg, out)
}

func GRUCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	return platform().GRUCellFX8W16D(in, prevOut, weights, bias, cfg, out)
}
