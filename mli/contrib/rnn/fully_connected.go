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
)

// FullyConnectedFX8 computes out = weights * in + bias in the notation the
// caller set on out.
func (k *Kernel) FullyConnectedFX8(in, weights, bias, out *mli.Tensor) error {
	if err := check.FullyConnectedFX8(in, weights, bias, out); err != nil {
		return err
	}
	fullyConnected[int8, int8](k.desc.Rounding, in, weights, bias, out)
	return nil
}

// FullyConnectedFX16 is FullyConnectedFX8 for 16-bit operands.
func (k *Kernel) FullyConnectedFX16(in, weights, bias, out *mli.Tensor) error {
	if err := check.FullyConnectedFX16(in, weights, bias, out); err != nil {
		return err
	}
	fullyConnected[int16, int16](k.desc.Rounding, in, weights, bias, out)
	return nil
}

// FullyConnectedFX8W16D is FullyConnectedFX8 for 16-bit data and 8-bit
// weights.
func (k *Kernel) FullyConnectedFX8W16D(in, weights, bias, out *mli.Tensor) error {
	if err := check.FullyConnectedFX8W16D(in, weights, bias, out); err != nil {
		return err
	}
	fullyConnected[int16, int8](k.desc.Rounding, in, weights, bias, out)
	return nil
}

func fullyConnected[T, W mli.Fixed](rnd mli.Rounding, in, weights, bias, out *mli.Tensor) {
	outN := weights.Shape[0]
	d := newDense[T, W](rnd, in, nil, weights, bias, outN, out.ElParams.FracBits)
	d.inN = in.Count()
	d.run(mli.Values[T](in), nil, mli.Values[T](out))
	out.ElType = in.ElType
	out.SetShape(outN)
}

func FullyConnectedFX8(in, weights, bias, out *mli.Tensor) error {
	return platform().FullyConnectedFX8(in, weights, bias, out)
}

func FullyConnectedFX16(in, weights, bias, out *mli.Tensor) error {
	return platform().FullyConnectedFX16(in, weights, bias, out)
}

func FullyConnectedFX8W16D(in, weights, bias, out *mli.Tensor) error {
	return platform().FullyConnectedFX8W16D(in, weights, bias, out)
}
