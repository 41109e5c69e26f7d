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

// Convert checks a tensor conversion. The output descriptor carries the
// target element type and its quantization parameters; per-axis SA arrays on
// either side must have one entry per index of their axis.
func Convert(in, out *mli.Tensor) error {
	const op = "convert"
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if !contiguous(in.Shape, in.MemStride, in.Rank) {
		return fail(op, mli.IncompatibleTensors, "input must be contiguous")
	}
	if err := saArrays(op, "input", in, in); err != nil {
		return err
	}
	if err := saArrays(op, "output", out, in); err != nil {
		return err
	}
	if n := in.Count() * out.ElType.Size(); n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	return nil
}

// saArrays checks the SA parameters of t against the geometry of shaped.
func saArrays(op, name string, t, shaped *mli.Tensor) error {
	if !t.ElType.IsSA() {
		return nil
	}
	p := &t.ElParams.SA
	n := 1
	if p.Dim >= 0 {
		if p.Dim >= shaped.Rank {
			return fail(op, mli.BadFuncCfg, "%s quantization axis %d outside rank %d", name, p.Dim, shaped.Rank)
		}
		n = shaped.Shape[p.Dim]
	}
	if len(p.Scale) != n || len(p.ZeroPoint) != n || len(p.ScaleFracBits) != n {
		return fail(op, mli.SizeMismatch, "%s has %d/%d/%d quantization entries, want %d",
			name, len(p.Scale), len(p.ZeroPoint), len(p.ScaleFracBits), n)
	}
	return nil
}
