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

// RNNDims returns the geometry of a recurrent cell call: the number of steps,
// the input elements consumed per step and the dense outputs per step.
func RNNDims(in, bias *mli.Tensor, mode mli.RNNMode) (batches, inElements, outElements int) {
	outElements = bias.Count()
	if mode == mli.RNNOneToOne {
		return 1, in.Count(), outElements
	}
	return in.Shape[0], in.CountPart(1), outElements
}

// BasicRNNCell checks a basic recurrent cell: weights [out, in+prev] (or a
// stack [n, out, in+prev] in one-to-one mode), bias [out], prev_out [prev].
func BasicRNNCell(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	return basicRNNCell("basic_rnn_cell", in, prevOut, weights, bias, cfg, out)
}

func basicRNNCell(op string, in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	for _, t := range []*mli.Tensor{in, prevOut, weights, bias} {
		if err := tensor(op, t); err != nil {
			return err
		}
	}
	if err := outPresent(op, out); err != nil {
		return err
	}

	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	if err := rnnMode(op, cfg); err != nil {
		return err
	}
	if cfg.Mode == mli.RNNBatchToLast && (cfg.IR == nil || cfg.IR.Data == nil) {
		return fail(op, mli.BadFuncCfg, "batch-to-last mode needs an intermediate buffer")
	}
	if cfg.Mode != mli.RNNOneToOne && in.Rank < 2 {
		return fail(op, mli.BadFuncCfg, "batch mode needs an input of rank 2 or more")
	}

	batches, inElements, outElements := RNNDims(in, bias, cfg.Mode)
	prevElements := prevOut.Count()
	if cfg.Mode == mli.RNNOneToOne && weights.Rank == 3 {
		if bias.Rank != 2 || weights.Shape[0] != bias.Shape[0] || weights.Shape[1] != bias.Shape[1] {
			return fail(op, mli.ShapeMismatch, "stacked weights %v and bias %v", weights.Dims(), bias.Dims())
		}
		if bias.Shape[1] != prevElements || inElements+prevElements != weights.Shape[2] {
			return fail(op, mli.ShapeMismatch, "stacked weights %v for %d inputs and %d states", weights.Dims(), inElements, prevElements)
		}
	} else {
		if weights.Rank != 2 || bias.Rank != 1 || weights.Shape[0] != bias.Shape[0] {
			return fail(op, mli.ShapeMismatch, "weights %v and bias %v", weights.Dims(), bias.Dims())
		}
		if bias.Shape[0] != prevElements || inElements+prevElements != weights.Shape[1] {
			return fail(op, mli.ShapeMismatch, "weights %v for %d inputs and %d states", weights.Dims(), inElements, prevElements)
		}
	}
	if prevOut.Rank != 1 {
		return fail(op, mli.ShapeMismatch, "prev_out rank %d, want 1", prevOut.Rank)
	}

	if weights.ElType != bias.ElType || in.ElType != prevOut.ElType {
		return fail(op, mli.TypeMismatch, "weights %v bias %v in %v prev_out %v", weights.ElType, bias.ElType, in.ElType, prevOut.ElType)
	}
	if err := denseTypes(op, in, weights, bias); err != nil {
		return err
	}
	for _, t := range []*mli.Tensor{in, prevOut, weights, bias} {
		if !contiguous(t.Shape, t.MemStride, t.Rank) {
			return fail(op, mli.IncompatibleTensors, "operands must be contiguous")
		}
	}
	if err := noAlias(op, "output", out, in, prevOut, weights, bias); err != nil {
		return err
	}
	if err := biasFracFX(op, in, weights, bias); err != nil {
		return err
	}

	size := in.ElType.Size()
	outBatches := 1
	if cfg.Mode == mli.RNNBatchToBatch {
		outBatches = batches
	}
	if n := outElements * outBatches * size; n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	if cfg.Mode == mli.RNNBatchToLast || (cfg.IR != nil && cfg.Act != mli.RNNActNone) {
		if cfg.IR == nil {
			return fail(op, mli.BadFuncCfg, "activation needs an intermediate buffer")
		}
		if err := buffer(op, cfg.IR); err != nil {
			return err
		}
		if n := outElements * outBatches * size; n > cfg.IR.Capacity {
			return fail(op, mli.NotEnoughMemory, "intermediate capacity %d < %d bytes", cfg.IR.Capacity, n)
		}
		if err := noAlias(op, "intermediate", cfg.IR, in, prevOut, weights, bias, out); err != nil {
			return err
		}
	}
	return nil
}

func rnnMode(op string, cfg *mli.RNNCellConfig) error {
	if cfg.Mode < mli.RNNOneToOne || cfg.Mode > mli.RNNBatchToLast {
		return fail(op, mli.BadFuncCfg, "rnn mode %d", cfg.Mode)
	}
	if cfg.Act < mli.RNNActNone || cfg.Act > mli.RNNActSigm {
		return fail(op, mli.BadFuncCfg, "rnn activation %d", cfg.Act)
	}
	return nil
}

func rnnTypes(op string, in, prevOut, weights, bias, out *mli.Tensor, cfg *mli.RNNCellConfig, tio, tw mli.ElType) error {
	if err := isType(op, "prev_out", prevOut, tio); err != nil {
		return err
	}
	if cfg.IR != nil {
		if err := isType(op, "intermediate", cfg.IR, tio); err != nil {
			return err
		}
	}
	return convTypes(op, in, weights, bias, out, tio, tw, tw)
}

// BasicRNNCellFX8 checks an 8-bit fixed-point basic RNN cell.
func BasicRNNCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	const op = "basic_rnn_cell_fx8"
	if err := basicRNNCell(op, in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return rnnTypes(op, in, prevOut, weights, bias, out, cfg, mli.FX8, mli.FX8)
}

// BasicRNNCellFX16 checks a 16-bit fixed-point basic RNN cell.
func BasicRNNCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	const op = "basic_rnn_cell_fx16"
	if err := basicRNNCell(op, in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return rnnTypes(op, in, prevOut, weights, bias, out, cfg, mli.FX16, mli.FX16)
}

// BasicRNNCellFX8W16D checks a basic RNN cell of 16-bit data with 8-bit weights.
func BasicRNNCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	const op = "basic_rnn_cell_fx8w16d"
	if err := basicRNNCell(op, in, prevOut, weights, bias, cfg, out); err != nil {
		return err
	}
	return rnnTypes(op, in, prevOut, weights, bias, out, cfg, mli.FX16, mli.FX8)
}

// LSTMCell checks an LSTM cell: weights [4, out, in+out], bias [4, out],
// prev_out and cell of [out] elements, and an intermediate buffer for the
// four gate vectors.
func LSTMCell(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	return lstmCell("lstm_cell", in, prevOut, weights, bias, cfg, cell, out)
}

func lstmCell(op string, in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	if err := tensor(op, cell); err != nil {
		return err
	}
	if err := gatedCell(op, 4, in, prevOut, weights, bias, cfg, cell, out); err != nil {
		return err
	}
	if cell.Rank != 1 || prevOut.Shape[0] != cell.Shape[0] {
		return fail(op, mli.ShapeMismatch, "cell %v and prev_out %v", cell.Dims(), prevOut.Dims())
	}
	if in.ElType != cell.ElType {
		return fail(op, mli.TypeMismatch, "in %v cell %v", in.ElType, cell.ElType)
	}
	return nil
}

// gatedCell checks the operands shared by the LSTM and GRU cells: weights
// [gates, out, in+out], bias [gates, out], a rank-1 prev_out and an
// intermediate buffer for the gate vectors. cell is nil for the GRU.
func gatedCell(op string, gates int, in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	for _, t := range []*mli.Tensor{in, prevOut, weights, bias} {
		if err := tensor(op, t); err != nil {
			return err
		}
	}
	if err := outPresent(op, out); err != nil {
		return err
	}

	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	if cfg.IR == nil || cfg.IR.Data == nil {
		return fail(op, mli.BadFuncCfg, "missing intermediate buffer")
	}
	if err := rnnMode(op, cfg); err != nil {
		return err
	}
	if cfg.Mode != mli.RNNOneToOne && in.Rank < 2 {
		return fail(op, mli.BadFuncCfg, "batch mode needs an input of rank 2 or more")
	}

	outElements := prevOut.Count()
	batches, inElements := 1, in.Count()
	if cfg.Mode != mli.RNNOneToOne {
		batches, inElements = in.Shape[0], in.CountPart(1)
	}
	if weights.Rank != 3 || bias.Rank != 2 || weights.Shape[0] != gates || bias.Shape[0] != gates {
		return fail(op, mli.ShapeMismatch, "weights %v and bias %v, want [%d out in+out] and [%d out]", weights.Dims(), bias.Dims(), gates, gates)
	}
	if weights.Shape[1] != bias.Shape[1] || bias.Shape[1] != outElements || inElements+outElements != weights.Shape[2] {
		return fail(op, mli.ShapeMismatch, "weights %v for %d inputs and %d outputs", weights.Dims(), inElements, outElements)
	}
	if prevOut.Rank != 1 {
		return fail(op, mli.ShapeMismatch, "prev_out %v, want rank 1", prevOut.Dims())
	}

	if weights.ElType != bias.ElType || in.ElType != prevOut.ElType {
		return fail(op, mli.TypeMismatch, "weights %v bias %v in %v prev_out %v",
			weights.ElType, bias.ElType, in.ElType, prevOut.ElType)
	}
	if err := denseTypes(op, in, weights, bias); err != nil {
		return err
	}
	operands := []*mli.Tensor{in, prevOut, weights, bias}
	if cell != nil {
		operands = append(operands, cell)
	}
	for _, t := range operands {
		if !contiguous(t.Shape, t.MemStride, t.Rank) {
			return fail(op, mli.IncompatibleTensors, "operands must be contiguous")
		}
	}
	if err := biasFracFX(op, in, weights, bias); err != nil {
		return err
	}

	if err := buffer(op, cfg.IR); err != nil {
		return err
	}
	size := in.ElType.Size()
	if n := gates * outElements * size; n > cfg.IR.Capacity {
		return fail(op, mli.NotEnoughMemory, "intermediate capacity %d < %d bytes", cfg.IR.Capacity, n)
	}
	if err := noAlias(op, "intermediate", cfg.IR, append(operands, out)...); err != nil {
		return err
	}
	if err := noAlias(op, "output", out, operands...); err != nil {
		return err
	}
	outBatches := 1
	if cfg.Mode == mli.RNNBatchToBatch {
		outBatches = batches
	}
	if n := outBatches * outElements * size; n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	return nil
}

func lstmTypes(op string, in, prevOut, weights, bias, cell, out *mli.Tensor, cfg *mli.RNNCellConfig, tio, tw mli.ElType) error {
	if err := isType(op, "cell", cell, tio); err != nil {
		return err
	}
	return rnnTypes(op, in, prevOut, weights, bias, out, cfg, tio, tw)
}

// LSTMCellFX8 checks an 8-bit fixed-point LSTM cell.
func LSTMCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	const op = "lstm_cell_fx8"
	if err := lstmCell(op, in, prevOut, weights, bias, cfg, cell, out); err != nil {
		return err
	}
	return lstmTypes(op, in, prevOut, weights, bias, cell, out, cfg, mli.FX8, mli.FX8)
}

// LSTMCellFX16 checks a 16-bit fixed-point LSTM cell.
func LSTMCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	const op = "lstm_cell_fx16"
	if err := lstmCell(op, in, prevOut, weights, bias, cfg, cell, out); err != nil {
		return err
	}
	return lstmTypes(op, in, prevOut, weights, bias, cell, out, cfg, mli.FX16, mli.FX16)
}

// LSTMCellFX8W16D checks an LSTM cell of 16-bit data with 8-bit weights.
func LSTMCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error {
	const op = "lstm_cell_fx8w16d"
	if err := lstmCell(op, in, prevOut, weights, bias, cfg, cell, out); err != nil {
		return err
	}
	return lstmTypes(op, in, prevOut, weights, bias, cell, out, cfg, mli.FX16, mli.FX8)
}

// GRUCell checks a gated recurrent unit: weights [3, out, in+out], bias
// [3, out], prev_out of [out] elements and an intermediate buffer for the
// three gate vectors.
func GRUCell(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	return gatedCell("gru_cell", 3, in, prevOut, weights, bias, cfg, nil, out)
}

// GRUCellFX8 checks an 8-bit fixed-point GRU cell.
func GRUCellFX8(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	const op = "gru_cell_fx8"
	if err := gatedCell(op, 3, in, prevOut, weights, bias, cfg, nil, out); err != nil {
		return err
	}
	return rnnTypes(op, in, prevOut, weights, bias, out, cfg, mli.FX8, mli.FX8)
}

// GRUCellFX16 checks a 16-bit fixed-point GRU cell.
func GRUCellFX16(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	const op = "gru_cell_fx16"
	if err := gatedCell(op, 3, in, prevOut, weights, bias, cfg, nil, out); err != nil {
		return err
	}
	return rnnTypes(op, in, prevOut, weights, bias, out, cfg, mli.FX16, mli.FX16)
}

// GRUCellFX8W16D checks a GRU cell of 16-bit data with 8-bit weights.
func GRUCellFX8W16D(in, prevOut, weights, bias *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error {
	const op = "gru_cell_fx8w16d"
	if err := gatedCell(op, 3, in, prevOut, weights, bias, cfg, nil, out); err != nil {
		return err
	}
	return rnnTypes(op, in, prevOut, weights, bias, out, cfg, mli.FX16, mli.FX8)
}
