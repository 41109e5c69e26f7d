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

// FullyConnected checks a dense layer: weights [out, in], bias [out].
func FullyConnected(in, weights, bias, out *mli.Tensor) error {
	return fullyConnected("fully_connected", in, weights, bias, out)
}

func fullyConnected(op string, in, weights, bias, out *mli.Tensor) error {
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
	if weights.Rank != 2 || bias.Rank != 1 {
		return fail(op, mli.ShapeMismatch, "ranks weights=%d bias=%d, want 2, 1", weights.Rank, bias.Rank)
	}
	if in.Count() != weights.Shape[1] {
		return fail(op, mli.ShapeMismatch, "%d inputs for weights of depth %d", in.Count(), weights.Shape[1])
	}
	if bias.Shape[0] != weights.Shape[0] {
		return fail(op, mli.ShapeMismatch, "bias %d != weights rows %d", bias.Shape[0], weights.Shape[0])
	}
	if err := denseTypes(op, in, weights, bias); err != nil {
		return err
	}
	if !contiguous(in.Shape, in.MemStride, in.Rank) || !contiguous(weights.Shape, weights.MemStride, weights.Rank) ||
		!contiguous(bias.Shape, bias.MemStride, bias.Rank) {
		return fail(op, mli.IncompatibleTensors, "operands must be contiguous")
	}
	if err := noAlias(op, "output", out, in, weights, bias); err != nil {
		return err
	}
	if err := biasFracFX(op, in, weights, bias); err != nil {
		return err
	}
	if weights.Shape[0]*in.ElType.Size() > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, weights.Shape[0]*in.ElType.Size())
	}
	return nil
}

// denseTypes rejects element type combinations no dense kernel implements.
func denseTypes(op string, in, weights, bias *mli.Tensor) error {
	if weights.ElType != bias.ElType {
		return fail(op, mli.NotSupported, "weights %v with bias %v", weights.ElType, bias.ElType)
	}
	if in.ElType == mli.FX8 && weights.ElType == mli.FX16 {
		return fail(op, mli.NotSupported, "fx8 data with fx16 weights")
	}
	if !in.ElType.IsFX() || !weights.ElType.IsFX() {
		return fail(op, mli.NotSupported, "%v data with %v weights", in.ElType, weights.ElType)
	}
	return nil
}

func fcTypes(op string, in, weights, bias, out *mli.Tensor, tin, tw mli.ElType) error {
	return convTypes(op, in, weights, bias, out, tin, tw, tw)
}

// FullyConnectedFX8 checks an 8-bit fixed-point dense layer.
func FullyConnectedFX8(in, weights, bias, out *mli.Tensor) error {
	const op = "fully_connected_fx8"
	if err := fullyConnected(op, in, weights, bias, out); err != nil {
		return err
	}
	return fcTypes(op, in, weights, bias, out, mli.FX8, mli.FX8)
}

// FullyConnectedFX16 checks a 16-bit fixed-point dense layer.
func FullyConnectedFX16(in, weights, bias, out *mli.Tensor) error {
	const op = "fully_connected_fx16"
	if err := fullyConnected(op, in, weights, bias, out); err != nil {
		return err
	}
	return fcTypes(op, in, weights, bias, out, mli.FX16, mli.FX16)
}

// FullyConnectedFX8W16D checks a dense layer of 16-bit data with 8-bit weights.
func FullyConnectedFX8W16D(in, weights, bias, out *mli.Tensor) error {
	const op = "fully_connected_fx8w16d"
	if err := fullyConnected(op, in, weights, bias, out); err != nil {
		return err
	}
	return fcTypes(op, in, weights, bias, out, mli.FX16, mli.FX8)
}
