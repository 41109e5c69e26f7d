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
)

// BasicRNNCellFX8 runs out = act(weights * [in, prev_out] + bias) over the
// steps selected by cfg.Mode.
//
// Without an activation the dense result lands in the notation the caller
// set on out. With tanh or sigmoid it is computed in Q4 and the cell output
// is Q7. In RNNBatchToLast mode cfg.IR holds intermediate steps.
func (k *Kernel) BasicRNNCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	if err := check.BasicRNNCellFX8(in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return basicRNNCell[int8, int8](k, in, prevOut, weights, bias, cfg, out)
}

// BasicRNNCellFX16 is BasicRNNCellFX8 for 16-bit operands; activations
// compute in Q12 and produce Q15.
func (k *Kernel) BasicRNNCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	if err := check.BasicRNNCellFX16(in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return basicRNNCell[int16, int16](k, in, prevOut, weights, bias, cfg, out)
}

// BasicRNNCellFX8W16D is BasicRNNCellFX16 with 8-bit weights and bias.
func (k *Kernel) BasicRNNCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	if err := check.BasicRNNCellFX8W16D(in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return basicRNNCell[int16, int8](k, in, prevOut, weights, bias, cfg, out)
}

func basicRNNCell[T, W mli.Fixed](k *Kernel, in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	batches, inN, outN := check.RNNDims(in, bias, cfg.Mode)
	toLast := cfg.Mode == mli.RNNBatchToLast

	resFrac, denseFrac := out.ElParams.FracBits, out.ElParams.FracBits
	if cfg.Act != mli.RNNActNone {
		resFrac, denseFrac = activation.OutFracBits[T](), gateFracBits[T]()
	}
	d := newDense[T, W](k.desc.Rounding, in, prevOut, weights, bias, outN, denseFrac)
	d.inN, d.stateN = inN, prevOut.Count()

	src := mli.Values[T](in)
	dst := mli.Values[T](out)
	var ir []T
	if cfg.IR != nil {
		ir = mli.Values[T](cfg.IR)
	}
	state := mli.Values[T](prevOut)

	for b := 0; b < batches; b++ {
		x := src[b*inN : (b+1)*inN]
		res := dst[:outN]
		switch {
		case cfg.Mode == mli.RNNBatchToBatch:
			res = dst[b*outN : (b+1)*outN]
		case toLast && cfg.Act == mli.RNNActNone && (batches-1-b)%2 == 1:
			// Steps alternate between out and IR so the last lands in out.
			res = ir[:outN]
		}

		if cfg.Act == mli.RNNActNone {
			d.run(x, state, res)
		} else {
			pre := res
			if toLast {
				pre = ir[:outN]
			}
			d.run(x, state, pre)
			if err := k.activate(cfg.Act, view(pre, denseFrac), view(res, resFrac)); err != nil {
				return err
			}
		}
		state = res
	}

	out.ElType = in.ElType
	out.ElParams.FracBits = resFrac
	if cfg.Mode == mli.RNNBatchToBatch {
		out.SetShape(batches, outN)
	} else {
		out.SetShape(bias.Dims()...)
	}
	return nil
}

func BasicRNNCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	return platform().BasicRNNCellFX8(in, prevOut, weights, bias, cfg, out)
}

func BasicRNNCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	return platform().BasicRNNCellFX16(in, prevOut, weights, bias, cfg, out)
}

func BasicRNNCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	return platform().BasicRNNCellFX8W16D(in, prevOut, weights, bias, cfg, out)
}
