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

package activation

import (
	"slices"

	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// SoftmaxFX8 normalizes the whole tensor into a Q7 distribution.
func (k *Kernel) SoftmaxFX8(in, out *mli.Tensor) error {
	if err := check.BasicActivationFX8(in, out); err != nil {
		return err
	}
	softmax[int8](in, out)
	return nil
}

// SoftmaxFX16 normalizes the whole tensor into a Q15 distribution.
func (k *Kernel) SoftmaxFX16(in, out *mli.Tensor) error {
	if err := check.BasicActivationFX16(in, out); err != nil {
		return err
	}
	softmax[int16](in, out)
	return nil
}

// softmax subtracts the maximum so every exponent is exp(-d) for d >= 0,
// then divides each term by the sum with round-half-up.
func softmax[T mli.Fixed](in, out *mli.Tensor) {
	n := in.Count()
	src, dst := mli.Values[T](in)[:n], mli.Values[T](out)[:n]
	frac := in.ElParams.FracBits
	outFrac := OutFracBits[T]()

	top := int64(slices.Max(src))
	exps := make([]int64, n)
	var sum int64
	for i, x := range src {
		exps[i] = expnegLUT.eval(int64(x)-top, frac)
		sum += exps[i]
	}
	for i, e := range exps {
		dst[i] = mli.Sat[T]((e<<outFrac + sum/2) / sum)
	}
	out.CopyFormat(in)
	out.CopyShape(in)
	out.ElParams.FracBits = outFrac
}
