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
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/go-mli/mli"
)

func quant16(rng *rand.Rand, n int, scale float64, frac int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(math.Round(math.Ldexp((rng.Float64()*2-1)*scale, frac)))
	}
	return s
}

func quant8(rng *rand.Rand, n int, scale float64, frac int) []int8 {
	s := make([]int8, n)
	for i := range s {
		s[i] = int8(math.Round(math.Ldexp((rng.Float64()*2-1)*scale, frac)))
	}
	return s
}

func deq[T int8 | int16](s []T, frac int) []float64 {
	return lo.Map(s, func(v T, _ int) float64 { return math.Ldexp(float64(v), -frac) })
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// operands holds FX16 cell inputs in Q12 with a state of prevFrac bits.
type operands struct {
	in, prev, w, b *mli.Tensor
}

func newOperands(seed uint64, batches, inN, outN, gates, prevFrac int) operands {
	rng := rand.New(rand.NewPCG(seed, 1))
	depth := inN + outN
	wShape, bShape := []int{outN, depth}, []int{outN}
	if gates > 1 {
		wShape, bShape = []int{gates, outN, depth}, []int{gates, outN}
	}
	return operands{
		in:   mli.NewFX16([]int{batches, inN}, 12, quant16(rng, batches*inN, 1, 12)),
		prev: mli.NewFX16([]int{outN}, prevFrac, quant16(rng, outN, 0.9, prevFrac)),
		w:    mli.NewFX16(wShape, 12, quant16(rng, gates*outN*depth, 0.5, 12)),
		b:    mli.NewFX16(bShape, 12, quant16(rng, gates*outN, 0.5, 12)),
	}
}

func row(t *mli.Tensor, b, n int) *mli.Tensor {
	return mli.NewFX16([]int{n}, t.ElParams.FracBits, slices.Clone(mli.Values[int16](t)[b*n:(b+1)*n]))
}

func clone16(t *mli.Tensor) *mli.Tensor {
	c := *t
	c.Data = slices.Clone(mli.Values[int16](t))
	return &c
}

func TestFullyConnectedGolden(t *testing.T) {
	in := mli.NewFX8([]int{2}, 4, []int8{16, 32})
	w := mli.NewFX8([]int{2, 2}, 6, []int8{64, 32, -64, 0})
	b := mli.NewFX8([]int{2}, 6, []int8{64, 0})
	out := mli.NewFX8([]int{4}, 4, make([]int8, 4))
	require.NoError(t, New(mli.Description{}).FullyConnectedFX8(in, w, b, out))
	assert.Empty(t, cmp.Diff([]int8{48, -16}, mli.Values[int8](out)[:2]))
	assert.Equal(t, []int{2}, out.Dims())
	assert.Equal(t, 4, out.ElParams.FracBits)
}

func TestFullyConnectedMatchesFloat(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	const inN, outN = 10, 6
	for _, rnd := range []mli.Rounding{mli.RoundUp, mli.RoundConvergent} {
		t.Run(rnd.String(), func(t *testing.T) {
			in := mli.NewFX16([]int{inN}, 12, quant16(rng, inN, 1, 12))
			w := mli.NewFX8([]int{outN, inN}, 7, quant8(rng, outN*inN, 0.5, 7))
			b := mli.NewFX8([]int{outN}, 7, quant8(rng, outN, 0.5, 7))
			out := mli.NewFX16([]int{outN}, 10, make([]int16, outN))
			require.NoError(t, New(mli.Description{Rounding: rnd}).FullyConnectedFX8W16D(in, w, b, out))

			x := deq(mli.Values[int16](in), 12)
			wf := deq(mli.Values[int8](w), 7)
			bf := deq(mli.Values[int8](b), 7)
			for o, v := range mli.Values[int16](out) {
				want := math.Ldexp(bf[o]+floats.Dot(wf[o*inN:(o+1)*inN], x), 10)
				assert.InDelta(t, want, float64(v), 0.5, "row %d", o)
			}
		})
	}
}

func TestBasicRNNGolden(t *testing.T) {
	tests := []struct {
		act      mli.RNNActivation
		want     int16
		wantFrac int
	}{
		{mli.RNNActNone, 512, 8},
		{mli.RNNActTanh, 31589, 15},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.act), func(t *testing.T) {
			in := mli.NewFX16([]int{1}, 8, []int16{256})
			prev := mli.NewFX16([]int{1}, 8, []int16{128})
			w := mli.NewFX16([]int{1, 2}, 8, []int16{256, 512})
			b := mli.NewFX16([]int{1}, 8, []int16{0})
			out := mli.NewFX16([]int{1}, 8, make([]int16, 1))
			cfg := &mli.RNNCellConfig{Mode: mli.RNNOneToOne, Act: tt.act}
			require.NoError(t, BasicRNNCellFX16(in, prev, w, b, cfg, out))
			assert.Equal(t, tt.want, mli.Values[int16](out)[0])
			assert.Equal(t, tt.wantFrac, out.ElParams.FracBits)
			assert.Equal(t, []int{1}, out.Dims())
		})
	}
}

func TestBasicRNNBatchMatchesSteps(t *testing.T) {
	const batches, inN, outN = 3, 4, 3
	k := New(mli.Description{})
	for _, act := range []mli.RNNActivation{mli.RNNActNone, mli.RNNActTanh, mli.RNNActSigm} {
		t.Run(fmt.Sprint(act), func(t *testing.T) {
			prevFrac := 12
			if act != mli.RNNActNone {
				prevFrac = 15
			}
			op := newOperands(uint64(act)+1, batches, inN, outN, 1, prevFrac)
			out := mli.NewFX16([]int{batches * outN}, prevFrac, make([]int16, batches*outN))
			require.NoError(t, k.BasicRNNCellFX16(op.in, op.prev, op.w, op.b,
				&mli.RNNCellConfig{Mode: mli.RNNBatchToBatch, Act: act}, out))
			assert.Equal(t, []int{batches, outN}, out.Dims())

			prev := clone16(op.prev)
			for b := 0; b < batches; b++ {
				step := mli.NewFX16([]int{outN}, prevFrac, make([]int16, outN))
				require.NoError(t, k.BasicRNNCellFX16(row(op.in, b, inN), prev, op.w, op.b,
					&mli.RNNCellConfig{Mode: mli.RNNOneToOne, Act: act}, step))
				assert.Equal(t, mli.Values[int16](step), mli.Values[int16](out)[b*outN:(b+1)*outN], "step %d", b)
				prev = mli.NewFX16([]int{outN}, prevFrac, mli.Values[int16](step))
			}
		})
	}
}

func TestBasicRNNBatchToLast(t *testing.T) {
	const inN, outN = 5, 4
	k := New(mli.Description{Rounding: mli.RoundConvergent})
	for _, act := range []mli.RNNActivation{mli.RNNActNone, mli.RNNActTanh} {
		for batches := 1; batches <= 4; batches++ {
			t.Run(fmt.Sprintf("%v/%d", act, batches), func(t *testing.T) {
				op := newOperands(uint64(10+batches), batches, inN, outN, 1, 12)
				all := mli.NewFX16([]int{batches * outN}, 12, make([]int16, batches*outN))
				require.NoError(t, k.BasicRNNCellFX16(op.in, op.prev, op.w, op.b,
					&mli.RNNCellConfig{Mode: mli.RNNBatchToBatch, Act: act}, all))

				last := mli.NewFX16([]int{outN}, 12, make([]int16, outN))
				ir := mli.NewFX16([]int{outN}, 0, make([]int16, outN))
				require.NoError(t, k.BasicRNNCellFX16(op.in, op.prev, op.w, op.b,
					&mli.RNNCellConfig{Mode: mli.RNNBatchToLast, Act: act, IR: ir}, last))
				assert.Equal(t, mli.Values[int16](all)[(batches-1)*outN:], mli.Values[int16](last))
				assert.Equal(t, []int{outN}, last.Dims())
				assert.Equal(t, all.ElParams.FracBits, last.ElParams.FracBits)
			})
		}
	}
}

func TestBasicRNNStackedWeights(t *testing.T) {
	const inN, outN, stack = 4, 3, 2
	op := newOperands(21, 1, inN, outN, stack, 12)
	out := mli.NewFX16([]int{stack * outN}, 12, make([]int16, stack*outN))
	cfg := &mli.RNNCellConfig{Mode: mli.RNNOneToOne}
	require.NoError(t, BasicRNNCellFX16(op.in, op.prev, op.w, op.b, cfg, out))
	assert.Equal(t, []int{stack, outN}, out.Dims())

	depth := inN + outN
	for s := 0; s < stack; s++ {
		w := mli.NewFX16([]int{outN, depth}, 12, mli.Values[int16](op.w)[s*outN*depth:(s+1)*outN*depth])
		b := mli.NewFX16([]int{outN}, 12, mli.Values[int16](op.b)[s*outN:(s+1)*outN])
		single := mli.NewFX16([]int{outN}, 12, make([]int16, outN))
		require.NoError(t, BasicRNNCellFX16(op.in, op.prev, w, b, cfg, single))
		assert.Equal(t, mli.Values[int16](single), mli.Values[int16](out)[s*outN:(s+1)*outN], "stack %d", s)
	}
}

func lstmRef(x, h, c, w, b []float64, outN int, act mli.RNNActivation) (hOut, cOut []float64) {
	v := append(slices.Clone(x), h...)
	depth := len(v)
	z := make([]float64, 4*outN)
	for r := range z {
		z[r] = b[r] + floats.Dot(w[r*depth:(r+1)*depth], v)
	}
	hOut, cOut = make([]float64, outN), make([]float64, outN)
	for j := range outN {
		i, g := sigmoid(z[j]), math.Tanh(z[outN+j])
		f, o := sigmoid(z[2*outN+j]), sigmoid(z[3*outN+j])
		cOut[j] = i*g + f*c[j]
		switch act {
		case mli.RNNActTanh:
			hOut[j] = o * math.Tanh(cOut[j])
		case mli.RNNActSigm:
			hOut[j] = o * sigmoid(cOut[j])
		default:
			hOut[j] = o * cOut[j]
		}
	}
	return hOut, cOut
}

func TestLSTMMatchesFloat(t *testing.T) {
	const inN, outN = 4, 3
	tests := []struct {
		name    string
		mode    mli.RNNMode
		act     mli.RNNActivation
		batches int
		tol     float64
	}{
		{"one-to-one/tanh", mli.RNNOneToOne, mli.RNNActTanh, 1, 5e-3},
		{"one-to-one/sigm", mli.RNNOneToOne, mli.RNNActSigm, 1, 5e-3},
		{"batch-to-batch/none", mli.RNNBatchToBatch, mli.RNNActNone, 3, 1e-2},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := newOperands(uint64(40+i), tt.batches, inN, outN, 4, 12)
			rng := rand.New(rand.NewPCG(uint64(i), 9))
			cell := mli.NewFX16([]int{outN}, 12, quant16(rng, outN, 1, 12))
			ir := mli.NewFX16([]int{4 * outN}, 0, make([]int16, 4*outN))
			out := mli.NewFX16([]int{tt.batches * outN}, 0, make([]int16, tt.batches*outN))

			x := deq(mli.Values[int16](op.in), 12)
			h := deq(mli.Values[int16](op.prev), 12)
			c := deq(mli.Values[int16](cell), 12)
			w := deq(mli.Values[int16](op.w), 12)
			b := deq(mli.Values[int16](op.b), 12)

			cfg := &mli.RNNCellConfig{Mode: tt.mode, Act: tt.act, IR: ir}
			require.NoError(t, LSTMCellFX16(op.in, op.prev, op.w, op.b, cfg, cell, out))
			assert.Equal(t, []int{4, outN}, ir.Dims())
			assert.Equal(t, 12, ir.ElParams.FracBits)

			outFrac := 12
			if tt.act != mli.RNNActNone {
				outFrac = 15
			}
			require.Equal(t, outFrac, out.ElParams.FracBits)
			got := deq(mli.Values[int16](out), outFrac)
			for s := 0; s < tt.batches; s++ {
				h, c = lstmRef(x[s*inN:(s+1)*inN], h, c, w, b, outN, tt.act)
				for j := range outN {
					assert.InDelta(t, h[j], got[s*outN+j], tt.tol, "step %d out %d", s, j)
				}
			}
			for j, v := range deq(mli.Values[int16](cell), 12) {
				assert.InDelta(t, c[j], v, tt.tol, "cell %d", j)
			}
		})
	}
}

func TestLSTMBatchToLast(t *testing.T) {
	const batches, inN, outN = 3, 2, 5
	op := newOperands(77, batches, inN, outN, 4, 12)
	rng := rand.New(rand.NewPCG(1, 2))
	cellInit := quant16(rng, outN, 1, 12)
	k := New(mli.Description{})

	run := func(mode mli.RNNMode, n int) (out, cell *mli.Tensor) {
		cell = mli.NewFX16([]int{outN}, 12, slices.Clone(cellInit))
		out = mli.NewFX16([]int{n}, 0, make([]int16, n))
		ir := mli.NewFX16([]int{4 * outN}, 0, make([]int16, 4*outN))
		cfg := &mli.RNNCellConfig{Mode: mode, Act: mli.RNNActTanh, IR: ir}
		require.NoError(t, k.LSTMCellFX16(op.in, op.prev, op.w, op.b, cfg, cell, out))
		return out, cell
	}
	all, cellAll := run(mli.RNNBatchToBatch, batches*outN)
	last, cellLast := run(mli.RNNBatchToLast, outN)
	assert.Equal(t, []int{batches, outN}, all.Dims())
	assert.Equal(t, []int{outN}, last.Dims())
	assert.Equal(t, mli.Values[int16](all)[(batches-1)*outN:], mli.Values[int16](last))
	assert.Equal(t, mli.Values[int16](cellAll), mli.Values[int16](cellLast))
}

// Weights of 1/128 granularity give identical accumulators, up to a factor
// of 256, whether stored as Q7 bytes or Q15 words.
func TestLSTMNarrowWeightsMatchWide(t *testing.T) {
	const inN, outN = 3, 4
	rng := rand.New(rand.NewPCG(5, 5))
	in := mli.NewFX16([]int{inN}, 12, quant16(rng, inN, 1, 12))
	prev := mli.NewFX16([]int{outN}, 12, quant16(rng, outN, 1, 12))
	w8 := quant8(rng, 4*outN*(inN+outN), 0.5, 7)
	b8 := quant8(rng, 4*outN, 0.5, 7)
	widen := func(s []int8) []int16 { return lo.Map(s, func(v int8, _ int) int16 { return int16(v) << 8 }) }
	cellInit := quant16(rng, outN, 1, 11)

	run := func(f func(in, prev, w, b *mli.Tensor, cfg *mli.RNNCellConfig, cell, out *mli.Tensor) error, w, b *mli.Tensor) (*mli.Tensor, *mli.Tensor) {
		cell := mli.NewFX16([]int{outN}, 11, slices.Clone(cellInit))
		out := mli.NewFX16([]int{outN}, 0, make([]int16, outN))
		cfg := &mli.RNNCellConfig{Mode: mli.RNNOneToOne, Act: mli.RNNActSigm, IR: mli.NewFX16([]int{4 * outN}, 0, make([]int16, 4*outN))}
		require.NoError(t, f(in, prev, w, b, cfg, cell, out))
		return out, cell
	}
	narrowOut, narrowCell := run(LSTMCellFX8W16D,
		mli.NewFX8([]int{4, outN, inN + outN}, 7, w8), mli.NewFX8([]int{4, outN}, 7, b8))
	wideOut, wideCell := run(LSTMCellFX16,
		mli.NewFX16([]int{4, outN, inN + outN}, 15, widen(w8)), mli.NewFX16([]int{4, outN}, 15, widen(b8)))

	assert.Equal(t, mli.Values[int16](wideOut), mli.Values[int16](narrowOut))
	assert.Equal(t, mli.Values[int16](wideCell), mli.Values[int16](narrowCell))
	assert.Equal(t, wideOut.ElParams.FracBits, narrowOut.ElParams.FracBits)
}

func TestLSTMFX8(t *testing.T) {
	const inN, outN = 3, 2
	rng := rand.New(rand.NewPCG(8, 8))
	in := mli.NewFX8([]int{inN}, 6, quant8(rng, inN, 1, 6))
	prev := mli.NewFX8([]int{outN}, 6, quant8(rng, outN, 1, 6))
	w := mli.NewFX8([]int{4, outN, inN + outN}, 6, quant8(rng, 4*outN*(inN+outN), 0.5, 6))
	b := mli.NewFX8([]int{4, outN}, 6, quant8(rng, 4*outN, 0.5, 6))
	cell := mli.NewFX8([]int{outN}, 6, quant8(rng, outN, 1, 6))
	out := mli.NewFX8([]int{outN}, 0, make([]int8, outN))
	ir := mli.NewFX8([]int{4 * outN}, 0, make([]int8, 4*outN))

	h, c := lstmRef(deq(mli.Values[int8](in), 6), deq(mli.Values[int8](prev), 6), deq(mli.Values[int8](cell), 6),
		deq(mli.Values[int8](w), 6), deq(mli.Values[int8](b), 6), outN, mli.RNNActTanh)

	cfg := &mli.RNNCellConfig{Mode: mli.RNNOneToOne, Act: mli.RNNActTanh, IR: ir}
	require.NoError(t, LSTMCellFX8(in, prev, w, b, cfg, cell, out))
	require.Equal(t, 7, out.ElParams.FracBits)
	assert.Equal(t, 4, ir.ElParams.FracBits)
	for j, v := range deq(mli.Values[int8](out), 7) {
		assert.InDelta(t, h[j], v, 0.1, "out %d", j)
	}
	for j, v := range deq(mli.Values[int8](cell), 6) {
		assert.InDelta(t, c[j], v, 0.1, "cell %d", j)
	}
}

func TestValidation(t *testing.T) {
	op := newOperands(1, 2, 3, 2, 1, 12)
	out := mli.NewFX16([]int{4}, 12, make([]int16, 4))
	before := slices.Clone(mli.Values[int16](out))

	err := BasicRNNCellFX16(op.in, op.prev, op.w, op.b, &mli.RNNCellConfig{Mode: mli.RNNBatchToLast}, out)
	assert.Equal(t, mli.BadFuncCfg, mli.StatusOf(err))
	err = BasicRNNCellFX8(op.in, op.prev, op.w, op.b, &mli.RNNCellConfig{Mode: mli.RNNBatchToBatch}, out)
	assert.Equal(t, mli.TypeMismatch, mli.StatusOf(err))

	lstm := newOperands(2, 1, 3, 2, 4, 12)
	cell := mli.NewFX16([]int{2}, 12, make([]int16, 2))
	err = LSTMCellFX16(lstm.in, lstm.prev, lstm.w, lstm.b, &mli.RNNCellConfig{}, cell, out)
	assert.Equal(t, mli.BadFuncCfg, mli.StatusOf(err))

	err = FullyConnectedFX16(mli.NewFX16([]int{4}, 12, make([]int16, 4)), op.w, op.b, out)
	assert.Equal(t, mli.ShapeMismatch, mli.StatusOf(err))
	assert.Equal(t, before, mli.Values[int16](out))
}
