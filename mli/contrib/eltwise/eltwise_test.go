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

package eltwise

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-mli/mli"
)

func TestGoldenFX8(t *testing.T) {
	a := []int8{10, -20, 100, 127, -128, 3}
	b := []int8{5, 7, 100, 1, -1, -3}
	tests := []struct {
		op   Op
		want []int8
	}{
		{Add, []int8{15, -13, 127, 127, -128, 0}},
		{Sub, []int8{5, -27, 0, 126, -127, 6}},
		{Min, []int8{5, -20, 100, 1, -128, -3}},
		{Max, []int8{10, 7, 100, 127, -1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			in1 := mli.NewFX8([]int{2, 3}, 4, a)
			in2 := mli.NewFX8([]int{2, 3}, 4, b)
			out := mli.NewFX8([]int{6}, 0, make([]int8, 6))
			require.NoError(t, New(mli.Description{}).FX8(tt.op, in1, in2, out))
			assert.Empty(t, cmp.Diff(tt.want, mli.Values[int8](out)))
			assert.Equal(t, []int{2, 3}, out.Dims())
			assert.Equal(t, 4, out.ElParams.FracBits)
		})
	}
}

func TestMulRescales(t *testing.T) {
	// 1.5 (q4) * -2.25 (q4) = -3.375, stored as q3: -27.
	in1 := mli.NewFX16([]int{1}, 4, []int16{24})
	in2 := mli.NewFX16([]int{1}, 4, []int16{-36})
	out := mli.NewFX16([]int{1}, 3, make([]int16, 1))
	require.NoError(t, MulFX16(in1, in2, out))
	assert.Equal(t, int16(-27), mli.Values[int16](out)[0])
	assert.Equal(t, 3, out.ElParams.FracBits)

	// 3 (q1) * 5 (q0) into q0 is 7.5 before rounding.
	tests := []struct {
		rnd  mli.Rounding
		want int8
	}{
		{mli.RoundUp, 8},
		{mli.RoundConvergent, 8},
	}
	for _, tt := range tests {
		t.Run(tt.rnd.String(), func(t *testing.T) {
			in1 := mli.NewFX8([]int{1}, 1, []int8{3})
			in2 := mli.NewFX8([]int{1}, 0, []int8{5})
			out := mli.NewFX8([]int{1}, 0, make([]int8, 1))
			require.NoError(t, New(mli.Description{Rounding: tt.rnd}).FX8(Mul, in1, in2, out))
			assert.Equal(t, tt.want, mli.Values[int8](out)[0])
		})
	}

	t.Run("tie-to-even", func(t *testing.T) {
		in1 := mli.NewFX8([]int{1}, 1, []int8{5})
		in2 := mli.NewFX8([]int{1}, 0, []int8{1})
		out := mli.NewFX8([]int{1}, 0, make([]int8, 1))
		require.NoError(t, New(mli.Description{Rounding: mli.RoundConvergent}).FX8(Mul, in1, in2, out))
		assert.Equal(t, int8(2), mli.Values[int8](out)[0])
		require.NoError(t, New(mli.Description{Rounding: mli.RoundUp}).FX8(Mul, in1, in2, out))
		assert.Equal(t, int8(3), mli.Values[int8](out)[0])
	})
}

func TestScalarBroadcast(t *testing.T) {
	vec := mli.NewFX16([]int{4}, 8, []int16{1, 2, 3, 4})
	tests := []struct {
		name   string
		scalar *mli.Tensor
		first  bool
		op     Op
		want   []int16
	}{
		{"scalar-rhs", mli.NewFX16(nil, 8, []int16{10}), false, Sub, []int16{-9, -8, -7, -6}},
		{"scalar-lhs", mli.NewFX16(nil, 8, []int16{10}), true, Sub, []int16{9, 8, 7, 6}},
		{"one-element", mli.NewFX16([]int{1}, 8, []int16{3}), false, Max, []int16{3, 3, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mli.NewFX16([]int{4}, 0, make([]int16, 4))
			in1, in2 := vec, tt.scalar
			if tt.first {
				in1, in2 = tt.scalar, vec
			}
			require.NoError(t, New(mli.Description{}).FX16(tt.op, in1, in2, out))
			assert.Empty(t, cmp.Diff(tt.want, mli.Values[int16](out)))
			assert.Equal(t, []int{4}, out.Dims())
		})
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		in1  *mli.Tensor
		in2  *mli.Tensor
		out  *mli.Tensor
		want mli.Status
	}{
		{
			"shape", Add,
			mli.NewFX8([]int{2, 3}, 4, make([]int8, 6)),
			mli.NewFX8([]int{3, 2}, 4, make([]int8, 6)),
			mli.NewFX8([]int{6}, 0, make([]int8, 6)),
			mli.ShapeMismatch,
		},
		{
			"frac", Add,
			mli.NewFX8([]int{2}, 4, make([]int8, 2)),
			mli.NewFX8([]int{2}, 5, make([]int8, 2)),
			mli.NewFX8([]int{2}, 0, make([]int8, 2)),
			mli.IncompatibleTensors,
		},
		{
			"capacity", Max,
			mli.NewFX8([]int{4}, 4, make([]int8, 4)),
			mli.NewFX8([]int{4}, 4, make([]int8, 4)),
			mli.NewFX8([]int{2}, 0, make([]int8, 2)),
			mli.NotEnoughMemory,
		},
		{
			"two-scalars", Add,
			mli.NewFX8(nil, 4, []int8{1}),
			mli.NewFX8(nil, 4, []int8{1}),
			mli.NewFX8([]int{1}, 0, make([]int8, 1)),
			mli.NotSupported,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]int8(nil), mli.Values[int8](tt.out)...)
			err := New(mli.Description{}).FX8(tt.op, tt.in1, tt.in2, tt.out)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, mli.Values[int8](tt.out))
		})
	}

	t.Run("type", func(t *testing.T) {
		in := mli.NewFX16([]int{2}, 4, make([]int16, 2))
		out := mli.NewFX8([]int{2}, 4, make([]int8, 2))
		assert.ErrorIs(t, AddFX8(in, in, out), mli.TypeMismatch)
	})
}
