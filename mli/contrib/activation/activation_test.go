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

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func TestLUTEndPoints(t *testing.T) {
	assert.Equal(t, int64(0), tanhLUT.eval(0, 0))
	assert.Equal(t, int64(16384), sigmLUT.eval(0, 9))
	assert.Equal(t, int64(32767), expnegLUT.eval(0, 3))
	assert.Equal(t, int64(32767), tanhLUT.eval(100, 0))
	assert.Equal(t, int64(-32768), tanhLUT.eval(-100, 0))
	assert.Equal(t, int64(0), expnegLUT.eval(-1000, 2))
}

func TestFX16Accuracy(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		run  func(in, out *mli.Tensor) error
		tol  float64
	}{
		{"tanh", math.Tanh, TanhFX16, 1e-3},
		{"sigm", sigmoid, SigmFX16, 2e-4},
	}
	for _, tt := range tests {
		for _, frac := range []int{8, 12, 14} {
			t.Run(tt.name, func(t *testing.T) {
				n := 4001
				xs := floats.Span(make([]float64, n), -7.9, 7.9)
				if frac == 14 {
					floats.Scale(0.25, xs)
				}
				data := lo.Map(xs, func(x float64, _ int) int16 {
					return int16(math.Round(math.Ldexp(x, frac)))
				})
				in := mli.NewFX16([]int{n}, frac, data)
				out := mli.NewFX16([]int{n}, 0, make([]int16, n))
				require.NoError(t, tt.run(in, out))
				require.Equal(t, 15, out.ElParams.FracBits)
				for i, v := range mli.Values[int16](out) {
					x := math.Ldexp(float64(data[i]), -frac)
					assert.InDelta(t, tt.f(x), math.Ldexp(float64(v), -15), tt.tol, "frac %d x=%g", frac, x)
				}
			})
		}
	}
}

func TestFX8(t *testing.T) {
	in := mli.NewFX8([]int{5}, 5, []int8{-128, -16, 0, 16, 127})
	out := mli.NewFX8([]int{5}, 0, make([]int8, 5))

	require.NoError(t, TanhFX8(in, out))
	assert.Equal(t, 7, out.ElParams.FracBits)
	want := lo.Map(mli.Values[int8](in), func(x int8, _ int) float64 { return math.Tanh(math.Ldexp(float64(x), -5)) })
	for i, v := range mli.Values[int8](out) {
		assert.InDelta(t, want[i], math.Ldexp(float64(v), -7), 1.0/128, "i=%d", i)
	}

	require.NoError(t, SigmFX8(in, out))
	assert.Equal(t, int8(64), mli.Values[int8](out)[2])
	assert.Equal(t, int8(126), mli.Values[int8](out)[4])
}

func TestInPlace(t *testing.T) {
	buf := []int16{-4096, 0, 4096}
	tensor := mli.NewFX16([]int{3}, 12, buf)
	require.NoError(t, TanhFX16(tensor, tensor))
	assert.Equal(t, 15, tensor.ElParams.FracBits)
	assert.Equal(t, int16(0), buf[1])
	assert.Equal(t, -buf[0], buf[2])
	assert.InDelta(t, math.Tanh(1)*32768, float64(buf[2]), 16)
}

func TestSoftmax(t *testing.T) {
	t.Run("uniform", func(t *testing.T) {
		in := mli.NewFX16([]int{4}, 10, []int16{300, 300, 300, 300})
		out := mli.NewFX16([]int{4}, 0, make([]int16, 4))
		require.NoError(t, SoftmaxFX16(in, out))
		assert.Empty(t, cmp.Diff([]int16{8192, 8192, 8192, 8192}, mli.Values[int16](out)))
	})

	t.Run("single", func(t *testing.T) {
		in := mli.NewFX8([]int{1}, 3, []int8{-50})
		out := mli.NewFX8([]int{1}, 0, make([]int8, 1))
		require.NoError(t, SoftmaxFX8(in, out))
		assert.Equal(t, int8(127), mli.Values[int8](out)[0])
		assert.Equal(t, 7, out.ElParams.FracBits)
	})

	t.Run("random", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 11))
		for range 20 {
			n := 2 + rng.IntN(30)
			data := make([]int16, n)
			xs := make([]float64, n)
			for i := range data {
				data[i] = int16(rng.IntN(8192) - 4096)
				xs[i] = math.Ldexp(float64(data[i]), -10)
			}
			in := mli.NewFX16([]int{n}, 10, data)
			out := mli.NewFX16([]int{n}, 0, make([]int16, n))
			require.NoError(t, SoftmaxFX16(in, out))

			top := floats.Max(xs)
			ref := lo.Map(xs, func(x float64, _ int) float64 { return math.Exp(x - top) })
			floats.Scale(1/floats.Sum(ref), ref)
			got := lo.Map(mli.Values[int16](out), func(v int16, _ int) float64 { return math.Ldexp(float64(v), -15) })
			assert.InDelta(t, 1, floats.Sum(got), 5e-3)
			for i := range got {
				assert.InDelta(t, ref[i], got[i], 2e-3, "n=%d i=%d", n, i)
			}
		}
	})
}

func TestRelu(t *testing.T) {
	data := []int8{-20, 5, 100, 127, -128}
	tests := []struct {
		typ  mli.ReluType
		want []int8
	}{
		{mli.ReluNone, []int8{-20, 5, 100, 127, -128}},
		{mli.ReluGen, []int8{0, 5, 100, 127, 0}},
		{mli.Relu1, []int8{-16, 5, 16, 16, -16}},
		{mli.Relu6, []int8{0, 5, 96, 96, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			in := mli.NewFX8([]int{5}, 4, data)
			out := mli.NewFX8([]int{5}, 0, make([]int8, 5))
			require.NoError(t, ReluFX8(in, &mli.ReluConfig{Type: tt.typ}, out))
			assert.Empty(t, cmp.Diff(tt.want, mli.Values[int8](out)))
			assert.Equal(t, 4, out.ElParams.FracBits)
		})
	}

	t.Run("fx16-relu6", func(t *testing.T) {
		in := mli.NewFX16([]int{3}, 12, []int16{-1, 4096, 32767})
		out := mli.NewFX16([]int{3}, 0, make([]int16, 3))
		require.NoError(t, ReluFX16(in, &mli.ReluConfig{Type: mli.Relu6}, out))
		assert.Equal(t, []int16{0, 4096, 24576}, mli.Values[int16](out))
	})
}

func TestLeakyRelu(t *testing.T) {
	tests := []struct {
		name  string
		slope *mli.Tensor
		want  []int8
	}{
		{"quarter", mli.NewFX8(nil, 7, []int8{32}), []int8{-10, -1, 0, 40}},
		{"double", mli.NewFX8(nil, 4, []int8{32}), []int8{-80, -6, 0, 40}},
		{"negative", mli.NewFX8([]int{1}, 7, []int8{-64}), []int8{20, 1, 0, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mli.NewFX8([]int{4}, 3, []int8{-40, -3, 0, 40})
			out := mli.NewFX8([]int{4}, 0, make([]int8, 4))
			require.NoError(t, New(mli.Description{}).LeakyReluFX8(in, tt.slope, out))
			assert.Empty(t, cmp.Diff(tt.want, mli.Values[int8](out)))
			assert.Equal(t, 3, out.ElParams.FracBits)
		})
	}
}

func TestValidation(t *testing.T) {
	in := mli.NewFX16([]int{8}, 12, make([]int16, 8))
	small := mli.NewFX16([]int{4}, 0, make([]int16, 4))
	assert.Equal(t, mli.NotEnoughMemory, mli.StatusOf(TanhFX16(in, small)))

	wrong := mli.NewFX8([]int{8}, 0, make([]int8, 8))
	assert.Equal(t, mli.TypeMismatch, mli.StatusOf(SigmFX16(in, wrong)))
	assert.Equal(t, mli.TypeMismatch, mli.StatusOf(SoftmaxFX8(in, wrong)))

	assert.Equal(t, mli.BadFuncCfg, mli.StatusOf(ReluFX16(in, nil, in)))
	assert.Equal(t, mli.TypeMismatch, mli.StatusOf(LeakyReluFX16(in, mli.NewFX8(nil, 7, []int8{1}), in)))
}

func TestPRelu(t *testing.T) {
	data := []int8{-40, 8, -4, -40, 8, -4}
	tests := []struct {
		name  string
		axis  int
		slope *mli.Tensor
		want  []int8
	}{
		{"rows", 0, mli.NewFX8([]int{2}, 7, []int8{32, -64}), []int8{-10, 8, -1, 20, 8, 2}},
		{"columns", 1, mli.NewFX8([]int{3}, 4, []int8{8, 32, 0}), []int8{-20, 8, 0, -20, 8, 0}},
		{"whole tensor", -1, mli.NewFX8(nil, 7, []int8{32}), []int8{-10, 8, -1, -10, 8, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mli.NewFX8([]int{2, 3}, 3, slices.Clone(data))
			out := mli.NewFX8(nil, 0, make([]int8, 6))
			require.NoError(t, New(mli.Description{}).PReluFX8(in, tt.slope, &mli.PReluConfig{Axis: tt.axis}, out))
			assert.Empty(t, cmp.Diff(tt.want, mli.Values[int8](out)))
			assert.Equal(t, []int{2, 3}, out.Dims())
			assert.Equal(t, 3, out.ElParams.FracBits)
		})
	}
}

func TestPReluMatchesLeakyReluPerChannel(t *testing.T) {
	const c, hw = 3, 10
	rng := rand.New(rand.NewPCG(4, 4))
	data := make([]int16, c*hw)
	for i := range data {
		data[i] = int16(rng.IntN(1<<14) - 1<<13)
	}
	slopes := []int16{1 << 10, -3 << 9, 5 << 12}
	in := mli.NewFX16([]int{c, 1, hw}, 10, data)
	out := mli.NewFX16(nil, 0, make([]int16, c*hw))
	require.NoError(t, PReluFX16(in, mli.NewFX16([]int{c}, 12, slopes), &mli.PReluConfig{Axis: 0}, out))

	for ch, s := range slopes {
		plane := mli.NewFX16([]int{hw}, 10, data[ch*hw:(ch+1)*hw])
		want := mli.NewFX16(nil, 0, make([]int16, hw))
		require.NoError(t, LeakyReluFX16(plane, mli.NewFX16(nil, 12, []int16{s}), want))
		assert.Equal(t, mli.Values[int16](want), mli.Values[int16](out)[ch*hw:(ch+1)*hw], "channel %d", ch)
	}
}

func TestPReluInPlace(t *testing.T) {
	in := mli.NewFX16([]int{2, 2}, 8, []int16{-256, 256, -512, 512})
	require.NoError(t, PReluFX16(in, mli.NewFX16([]int{2}, 8, []int16{128, 0}), &mli.PReluConfig{Axis: 1}, in))
	assert.Equal(t, []int16{-128, 256, -256, 512}, mli.Values[int16](in))
}

func TestPReluValidation(t *testing.T) {
	in := mli.NewFX16([]int{2, 3}, 8, make([]int16, 6))
	out := mli.NewFX16(nil, 0, make([]int16, 6))
	tests := []struct {
		name  string
		slope *mli.Tensor
		cfg   *mli.PReluConfig
		out   *mli.Tensor
		want  mli.Status
	}{
		{"nil config", mli.NewFX16(nil, 8, []int16{1}), nil, out, mli.BadFuncCfg},
		{"axis beyond rank", mli.NewFX16([]int{3}, 8, make([]int16, 3)), &mli.PReluConfig{Axis: 2}, out, mli.BadFuncCfg},
		{"axis below -1", mli.NewFX16(nil, 8, []int16{1}), &mli.PReluConfig{Axis: -2}, out, mli.BadFuncCfg},
		{"slope count", mli.NewFX16([]int{2}, 8, make([]int16, 2)), &mli.PReluConfig{Axis: 1}, out, mli.ShapeMismatch},
		{"whole tensor vector", mli.NewFX16([]int{3}, 8, make([]int16, 3)), &mli.PReluConfig{Axis: -1}, out, mli.ShapeMismatch},
		{"slope type", mli.NewFX8([]int{3}, 7, make([]int8, 3)), &mli.PReluConfig{Axis: 1}, out, mli.TypeMismatch},
		{"output type", mli.NewFX16([]int{3}, 8, make([]int16, 3)), &mli.PReluConfig{Axis: 1}, mli.NewFX8(nil, 0, make([]int8, 12)), mli.TypeMismatch},
		{"capacity", mli.NewFX16([]int{2}, 8, make([]int16, 2)), &mli.PReluConfig{Axis: 0}, mli.NewFX16(nil, 0, make([]int16, 5)), mli.NotEnoughMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PReluFX16(in, tt.slope, tt.cfg, tt.out)
			require.Error(t, err)
			assert.Equal(t, tt.want, mli.StatusOf(err))
		})
	}
}
