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

package transform

import (
	"cmp"
	"slices"

	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// ArgmaxFX8 writes the flat indices of the cfg.TopK largest input values
// into out, largest first. Equal values keep ascending index order.
//
// With cfg.Axis -1 the whole tensor is searched and out is [1, TopK].
// Otherwise out is [in.Shape[Axis], TopK] and row i holds the top indices
// among the elements whose Axis coordinate is i. out may be FX8, FX16, SA8 or
// SA32; its notation is reset to plain integers.
func ArgmaxFX8(in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) error {
	if err := check.ArgmaxFX8(in, cfg, out); err != nil {
		return err
	}
	argmax[int8](in, cfg, out)
	return nil
}

// ArgmaxFX16 is ArgmaxFX8 for 16-bit inputs.
func ArgmaxFX16(in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) error {
	if err := check.ArgmaxFX16(in, cfg, out); err != nil {
		return err
	}
	argmax[int16](in, cfg, out)
	return nil
}

// ArgmaxSA8 is ArgmaxFX8 for asymmetric inputs. The zero point and scale do
// not change the order, so the raw values are compared.
func ArgmaxSA8(in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) error {
	if err := check.ArgmaxSA8(in, cfg, out); err != nil {
		return err
	}
	argmax[int8](in, cfg, out)
	return nil
}

func argmax[T mli.Fixed](in *mli.Tensor, cfg *mli.ArgmaxConfig, out *mli.Tensor) {
	n := in.Count()
	src := mli.Values[T](in)[:n]
	groups, inner := 1, n
	if cfg.Axis >= 0 {
		groups, inner = in.Shape[cfg.Axis], in.CountPart(cfg.Axis+1)
	}
	k := cfg.TopK

	idx := make([][]int, groups)
	for g := range idx {
		idx[g] = make([]int, 0, n/groups)
	}
	for i := range src {
		g := (i / inner) % groups
		idx[g] = append(idx[g], i)
	}
	top := make([]int, 0, groups*k)
	for _, ids := range idx {
		slices.SortStableFunc(ids, func(a, b int) int { return cmp.Compare(src[b], src[a]) })
		top = append(top, ids[:k]...)
	}

	switch dst := out.Data.(type) {
	case []int8:
		store(dst, top)
	case []int16:
		store(dst, top)
	case []int32:
		store(dst, top)
	}
	out.SetShape(groups, k)
	if out.ElType.IsSA() {
		out.ElParams.SA = mli.SAParams{Dim: -1, Scale: []int16{1}, ZeroPoint: []int16{0}, ScaleFracBits: []int8{0}}
	} else {
		out.ElParams.FracBits = 0
	}
}

func store[T int8 | int16 | int32](dst []T, idx []int) {
	for i, v := range idx {
		dst[i] = T(v)
	}
}
