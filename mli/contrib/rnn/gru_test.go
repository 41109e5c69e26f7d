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
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/go-mli/mli"
)

func gruRef(x, h, w, b []float64, outN int) []float64 {
	depth := len(x) + outN
	v := append(slices.Clone(x), h...)
	z, r := make([]float64, outN), make([]float64, outN)
	for j := range outN {
		z[j] = sigmoid(b[j] + floats.Dot(w[j*depth:(j+1)*depth], v))
		r[j] = sigmoid(b[outN+j] + floats.Dot(w[(outN+j)*depth:(outN+j+1)*depth], v))
	}
	rh := append(slices.Clone(x), lo.Map(h, func(v float64, j int) float64 { return r[j] * v })...)
	hOut := make([]float64, outN)
	for j := range outN {
		o := 2*outN + j
		n := math.Tanh(b[o] + floats.Dot(w[o*depth:(o+1)*depth], rh))
		hOut[j] = (1-z[j])*n + z[j]*h[j]
	}
	return hOut
}

func TestGRUMatchesFloat(t *testing.T) {
	const inN, outN = 4, 3
	tests := []struct {
		name     string
		mode     mli.RNNMode
		batches  int
		prevFrac int
		tol      float64
	}{
		{"one-to-one", mli.RNNOneToOne, 1, 12, 5e-3},
		{"one-to-one/q14 state", mli.RNNOneToOne, 1, 14, 5e-3},
		{"batch-to-batch", mli.RNNBatchToBatch, 4, 12, 1e-2},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := newOperands(uint64(60+i), tt.batches, inN, outN, 3, tt.prevFrac)
			ir := mli.NewFX16([]int{3 * outN}, 0, make([]int16, 3*outN))
			out := mli.NewFX16([]int{tt.batches * outN}, 0, make([]int16, tt.batches*outN))

			x := deq(mli.Values[int16](op.in), 12)
			h := deq(mli.Values[int16](op.prev), tt.prevFrac)
			w := deq(mli.Values[int16](op.w), 12)
			b := deq(mli.Values[int16](op.b), 12)

			cfg := &mli.RNNCellConfig{Mode: tt.mode, IR: ir}
			require.NoError(t, GRUCellFX16(op.in, op.prev, op.w, op.b, cfg, out))
			assert.Equal(t, []int{3, outN}, ir.Dims())
			require.Equal(t, tt.prevFrac, out.ElParams.FracBits)

			got := deq(mli.Values[int16](out), tt.prevFrac)
			for s := 0; s < tt.batches; s++ {
				h = gruRef(x[s*inN:(s+1)*inN], h, w, b, outN)
				for j := range outN {
					assert.InDelta(t, h[j], got[s*outN+j], tt.tol, "step %d out %d", s, j)
				}
			}
		})
	}
}

func TestGRUBatchToLast(t *testing.T) {
	const batches, inN, outN = 3, 2, 5
	op := newOperands(91, batches, inN, outN, 3, 12)
	k := New(mli.Description{})

	run := func(mode mli.RNNMode, n int) *mli.Tensor {
		out := mli.NewFX16([]int{n}, 0, make([]int16, n))
		ir := mli.NewFX16([]int{3 * outN}, 0, make([]int16, 3*outN))
		require.NoError(t, k.GRUCellFX16(op.in, op.prev, op.w, op.b, &mli.RNNCellConfig{Mode: mode, IR: ir}, out))
		return out
	}
	all := run(mli.RNNBatchToBatch, batches*outN)
	last := run(mli.RNNBatchToLast, outN)
	assert.Equal(t, []int{batches, outN}, all.Dims())
	assert.Equal(t, []int{outN}, last.Dims())
	assert.Equal(t, mli.Values[int16](all)[(batches-1)*outN:], mli.Values[int16](last))

	// Feeding each step's output back as prev_out reproduces the batch.
	prev := op.prev
	for s := range batches {
		step := mli.NewFX16([]int{outN}, 0, make([]int16, outN))
		ir := mli.NewFX16([]int{3 * outN}, 0, make([]int16, 3*outN))
		require.NoError(t, k.GRUCellFX16(row(op.in, s, inN), prev, op.w, op.b, &mli.RNNCellConfig{Mode: mli.RNNOneToOne, IR: ir}, step))
		assert.Equal(t, mli.Values[int16](all)[s*outN:(s+1)*outN], mli.Values[int16](step), "step %d", s)
		prev = step
	}
}

func TestGRUNarrowWeightsMatchWide(t *testing.T) {
	const inN, outN = 3, 4
	rng := rand.New(rand.NewPCG(6, 6))
	in := mli.NewFX16([]int{inN}, 12, quant16(rng, inN, 1, 12))
	prev := mli.NewFX16([]int{outN}, 12, quant16(rng, outN, 1, 12))
	w8 := quant8(rng, 3*outN*(inN+outN), 0.5, 7)
	b8 := quant8(rng, 3*outN, 0.5, 7)
	widen := func(s []int8) []int16 { return lo.Map(s, func(v int8, _ int) int16 { return int16(v) << 8 }) }

	run := func(f func(in, prev, w, b *mli.Tensor, cfg *mli.RNNCellConfig, out *mli.Tensor) error, w, b *mli.Tensor) *mli.Tensor {
		out := mli.NewFX16([]int{outN}, 0, make([]int16, outN))
		cfg := &mli.RNNCellConfig{Mode: mli.RNNOneToOne, IR: mli.NewFX16([]int{3 * outN}, 0, make([]int16, 3*outN))}
		require.NoError(t, f(in, prev, w, b, cfg, out))
		return out
	}
	narrow := run(GRUCellFX8W16D, mli.NewFX8([]int{3, outN, inN + outN}, 7, w8), mli.NewFX8([]int{3, outN}, 7, b8))
	wide := run(GRUCellFX16, mli.NewFX16([]int{3, outN, inN + outN}, 15, widen(w8)), mli.NewFX16([]int{3, outN}, 15, widen(b8)))
	assert.Equal(t, mli.Values[int16](wide), mli.Values[int16](narrow))
}

func TestGRUFX8(t *testing.T) {
	const inN, outN = 3, 2
	rng := rand.New(rand.NewPCG(9, 9))
	in := mli.NewFX8([]int{inN}, 6, quant8(rng, inN, 1, 6))
	prev := mli.NewFX8([]int{outN}, 6, quant8(rng, outN, 1, 6))
	w := mli.NewFX8([]int{3, outN, inN + outN}, 6, quant8(rng, 3*outN*(inN+outN), 0.5, 6))
	b := mli.NewFX8([]int{3, outN}, 6, quant8(rng, 3*outN, 0.5, 6))
	out := mli.NewFX8([]int{outN}, 0, make([]int8, outN))
	ir := mli.NewFX8([]int{3 * outN}, 0, make([]int8, 3*outN))

	h := gruRef(deq(mli.Values[int8](in), 6), deq(mli.Values[int8](prev), 6),
		deq(mli.Values[int8](w), 6), deq(mli.Values[int8](b), 6), outN)

	require.NoError(t, GRUCellFX8(in, prev, w, b, &mli.RNNCellConfig{Mode: mli.RNNOneToOne, IR: ir}, out))
	require.Equal(t, 6, out.ElParams.FracBits)
	assert.Equal(t, 4, ir.ElParams.FracBits)
	for j, v := range deq(mli.Values[int8](out), 6) {
		assert.InDelta(t, h[j], v, 0.1, "out %d", j)
	}
}
