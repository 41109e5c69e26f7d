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

// Gate order of the LSTM weights, bias and intermediate buffer.
const (
	gateIn = iota
	gateCandidate
	gateForget
	gateOut
	numGates
)

// LSTMCellFX8 runs a long short-term memory cell. weights are [4, out,
// in+out] and bias [4, out], stacked in input, candidate, forget and output
// gate order. cell is updated in place in its own notation; cfg.IR receives
// the gate vectors of the last step.
//
// Without an activation the output is cell * output gate in the notation of
// prev_out; with one it is act(cell) * output gate in Q7.
func (k *Kernel) LSTMCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	if err := check.LSTMCellFX8(in, prevOut, weights, bias, cfg, cell, out); err != nil {
		return err
	}
	return lstmCell[int8, int8](k, in, prevOut, weights, bias, cfg, cell, out)
}

// LSTMCellFX16 is LSTMCellFX8 for 16-bit operands, with Q15 activated output.
func (k *Kernel) LSTMCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	if err := check.LSTMCellFX16(in, prevOut, weights, bias, cfg, cell, out); err != nil {
		return err
	}
	return lstmCell[int16, int16](k, in, prevOut, weights, bias, cfg, cell, out)
}

// LSTMCellFX8W16D is LSTMCellFX16 with 8-bit weights and bias.
func (k *Kernel) LSTMCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	if err := check.LSTMCellFX8W16D(in, prevOut, weights, bias, cfg, cell, out); err != nil {
		return err
	}
	return lstmCell[int16, int8](k, in, prevOut, weights, bias, cfg, cell, out)
}

func lstmCell[T, W mli.Fixed](k *Kernel, in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	outN := prevOut.Count()
	batches, inN := 1, in.Count()
	if cfg.Mode != mli.RNNOneToOne {
		batches, inN = in.Shape[0], in.CountPart(1)
	}

	ir := cfg.IR
	ir.SetShape(bias.Dims()...)
	ir.ElType = in.ElType
	ir.ElParams.FracBits = gateFracBits[T]()

	d := newDense[T, W](k.desc.Rounding, in, prevOut, weights, bias, numGates*outN, ir.ElParams.FracBits)
	d.inN, d.stateN = inN, outN

	var gates [numGates]mli.Tensor
	for g := range gates {
		sub := mli.SubtensorConfig{CoordNum: 1, FirstOutDimSize: 1}
		sub.StartCoord[0] = g
		if err := helpers.PointToSubtensor(ir, &sub, &gates[g]); err != nil {
			return err
		}
		gates[g].SetShape(outN)
	}

	width := activation.OutFracBits[T]()
	rnd := k.desc.Rounding
	resFrac := prevOut.ElParams.FracBits
	if cfg.Act != mli.RNNActNone {
		resFrac = width
	}
	// i*g is Q(2*width); bring it to the Q(width+cell) notation of f*c.
	irShift := width - cell.ElParams.FracBits

	src := mli.Values[T](in)
	dst := mli.Values[T](out)
	gv := mli.Values[T](ir)
	c := mli.Values[T](cell)[:outN]
	state := mli.Values[T](prevOut)
	iG := gv[gateIn*outN : (gateIn+1)*outN]
	gG := gv[gateCandidate*outN : (gateCandidate+1)*outN]
	fG := gv[gateForget*outN : (gateForget+1)*outN]

	for b := 0; b < batches; b++ {
		d.run(src[b*inN:(b+1)*inN], state, gv)

		for g := range gates {
			gates[g].ElParams.FracBits = ir.ElParams.FracBits
			fn := mli.RNNActSigm
			if g == gateCandidate {
				fn = mli.RNNActTanh
			}
			if err := k.activate(fn, &gates[g], &gates[g]); err != nil {
				return err
			}
		}

		for j := range c {
			acc := mli.AsrRnd(int64(iG[j])*int64(gG[j]), irShift, rnd)
			acc = mli.Mac(acc, fG[j], c[j])
			c[j] = mli.CastAcc[T](acc, width, rnd)
		}

		row := dst[:outN]
		if cfg.Mode == mli.RNNBatchToBatch {
			row = dst[b*outN : (b+1)*outN]
		}
		res := view(row, resFrac)
		if cfg.Act == mli.RNNActNone {
			if err := k.mul(cell, &gates[gateOut], res); err != nil {
				return err
			}
		} else {
			if err := k.activate(cfg.Act, cell, res); err != nil {
				return err
			}
			if err := k.mul(res, &gates[gateOut], res); err != nil {
				return err
			}
		}
		state = row
	}

	out.ElType = in.ElType
	out.ElParams.FracBits = resFrac
	if cfg.Mode == mli.RNNBatchToBatch {
		out.SetShape(batches, outN)
	} else {
		out.SetShape(outN)
	}
	return nil
}

func LSTMCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	return platform().LSTMCellFX8(in, prevOut, weights, bias, cfg, cell, out)
}

func LSTMCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	return platform().LSTMCellFX16(in, prevOut, weights, bias, cfg, cell, out)
}

func LSTMCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	return platform().LSTMCellFX8W16D(in, prevOut, weights, bias, cfg, cell, out)
}
