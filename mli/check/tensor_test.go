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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-mli/mli"
)

func TestTensor(t *testing.T) {
	tests := []struct {
		name string
		t    *mli.Tensor
		want mli.Status
	}{
		{"valid", fx8([]int{2, 3}, 0), mli.OK},
		{"nil", nil, mli.BadTensor},
		{"rank too large", &mli.Tensor{Data: make([]int8, 1), Capacity: 1, Rank: 5}, mli.BadTensor},
		{"zero extent", mli.NewFX8([]int{2, 0}, 0, make([]int8, 2)), mli.BadTensor},
		{"go type", &mli.Tensor{Data: make([]int16, 4), Capacity: 4, Shape: [mli.MaxRank]int{4}, Rank: 1, ElType: mli.FX8}, mli.BadTensor},
		{"capacity short of shape", mli.NewFX8([]int{2, 3}, 0, make([]int8, 5)), mli.NotEnoughMemory},
		{"negative stride", &mli.Tensor{
			Data: make([]int8, 6), Capacity: 6, Shape: [mli.MaxRank]int{2, 3}, MemStride: [mli.MaxRank]int{3, -1}, Rank: 2,
		}, mli.BadTensor},
		{"stride too small", &mli.Tensor{
			Data: make([]int8, 6), Capacity: 6, Shape: [mli.MaxRank]int{2, 3}, MemStride: [mli.MaxRank]int{2, 1}, Rank: 2,
		}, mli.BadTensor},
		{"padded rows", &mli.Tensor{
			Data: make([]int8, 9), Capacity: 9, Shape: [mli.MaxRank]int{2, 3}, MemStride: [mli.MaxRank]int{5, 1}, Rank: 2,
		}, mli.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Tensor(tt.t)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}

func TestScalar(t *testing.T) {
	assert.NoError(t, Scalar(mli.NewFX8(nil, 3, []int8{7})))
	assert.NoError(t, Scalar(fx8([]int{1, 1}, 3)))
	assert.Equal(t, mli.ShapeMismatch, mli.StatusOf(Scalar(fx8([]int{2}, 3))))
	assert.Equal(t, mli.BadTensor, mli.StatusOf(Scalar(mli.NewFX8(nil, 3, []int8{}))))
	assert.True(t, IsScalar(mli.NewFX8(nil, 0, []int8{1})))
	assert.False(t, IsScalar(fx8([]int{3}, 0)))
}

func TestCountElements(t *testing.T) {
	in := fx8([]int{2, 3, 4}, 0)
	require.NoError(t, CountElements(in, 1))
	assert.Equal(t, mli.BadFuncCfg, mli.StatusOf(CountElements(in, 3)))
	assert.Equal(t, mli.BadTensor, mli.StatusOf(CountElements(nil, 0)))
}

func TestPointToSubtensor(t *testing.T) {
	in := fx8([]int{2, 3, 4}, 0)
	tests := []struct {
		name string
		cfg  *mli.SubtensorConfig
		out  *mli.Tensor
		want mli.Status
	}{
		{"one coordinate", &mli.SubtensorConfig{StartCoord: [mli.MaxRank]int{1}, CoordNum: 1, FirstOutDimSize: 1}, &mli.Tensor{}, mli.OK},
		{"two coordinates", &mli.SubtensorConfig{StartCoord: [mli.MaxRank]int{1, 1}, CoordNum: 2, FirstOutDimSize: 2}, &mli.Tensor{}, mli.OK},
		{"past the end", &mli.SubtensorConfig{StartCoord: [mli.MaxRank]int{1}, CoordNum: 1, FirstOutDimSize: 2}, &mli.Tensor{}, mli.BadFuncCfg},
		{"too many coordinates", &mli.SubtensorConfig{CoordNum: 4, FirstOutDimSize: 1}, &mli.Tensor{}, mli.BadFuncCfg},
		{"nil config", nil, &mli.Tensor{}, mli.BadFuncCfg},
		{"nil output", &mli.SubtensorConfig{CoordNum: 1, FirstOutDimSize: 1}, nil, mli.BadTensor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PointToSubtensor(in, tt.cfg, tt.out)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}

func TestPoolCHW(t *testing.T) {
	newCfg := func() *mli.PoolConfig {
		return &mli.PoolConfig{KernelWidth: 2, KernelHeight: 2, StrideWidth: 2, StrideHeight: 2}
	}
	tests := []struct {
		name  string
		in    *mli.Tensor
		cfg   func(c *mli.PoolConfig)
		out   *mli.Tensor
		check func(in *mli.Tensor, cfg *mli.PoolConfig, out *mli.Tensor) error
		want  mli.Status
	}{
		{"valid", fx8([]int{2, 4, 4}, 3), nil, fx8([]int{2, 2, 2}, 3), MaxpoolCHWFX8, mli.OK},
		{"avepool valid", fx8([]int{2, 4, 4}, 3), nil, fx8([]int{8}, 3), AvepoolCHWFX8, mli.OK},
		{"rank", fx8([]int{8, 4}, 3), nil, fx8([]int{8}, 3), MaxpoolCHWFX8, mli.ShapeMismatch},
		{"padding", fx8([]int{2, 4, 4}, 3), func(c *mli.PoolConfig) { c.PaddingTop = 2 }, fx8([]int{8}, 3), MaxpoolCHWFX8, mli.BadFuncCfg},
		{"zero kernel", fx8([]int{2, 4, 4}, 3), func(c *mli.PoolConfig) { c.KernelWidth = 0 }, fx8([]int{8}, 3), MaxpoolCHWFX8, mli.BadFuncCfg},
		{"output too small", fx8([]int{2, 4, 4}, 3), nil, fx8([]int{7}, 3), MaxpoolCHWFX8, mli.NotEnoughMemory},
		{"type", fx8([]int{2, 4, 4}, 3), nil, fx8([]int{8}, 3), AvepoolCHWFX16, mli.TypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newCfg()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			err := tt.check(tt.in, cfg, tt.out)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}

func TestEltwise(t *testing.T) {
	scalar := func(v int8, frac int) *mli.Tensor { return mli.NewFX8(nil, frac, []int8{v}) }
	tests := []struct {
		name     string
		op       EltwiseOp
		in1, in2 *mli.Tensor
		out      *mli.Tensor
		want     mli.Status
	}{
		{"add", EltwiseAdd, fx8([]int{4}, 5), fx8([]int{4}, 5), fx8([]int{4}, 5), mli.OK},
		{"add with scalar", EltwiseAdd, fx8([]int{2, 2}, 5), scalar(3, 5), fx8([]int{4}, 5), mli.OK},
		{"scalar first", EltwiseMax, scalar(3, 5), fx8([]int{4}, 5), fx8([]int{4}, 5), mli.OK},
		{"add frac mismatch", EltwiseAdd, fx8([]int{4}, 5), fx8([]int{4}, 4), fx8([]int{4}, 5), mli.IncompatibleTensors},
		{"mul frac mismatch", EltwiseMul, fx8([]int{4}, 5), fx8([]int{4}, 4), fx8([]int{4}, 5), mli.OK},
		{"two scalars", EltwiseSub, scalar(1, 5), scalar(2, 5), fx8([]int{1}, 5), mli.NotSupported},
		{"shapes", EltwiseMin, fx8([]int{4}, 5), fx8([]int{5}, 5), fx8([]int{5}, 5), mli.ShapeMismatch},
		{"types", EltwiseAdd, fx8([]int{4}, 5), fx16([]int{4}, 5), fx8([]int{4}, 5), mli.IncompatibleTensors},
		{"output too small", EltwiseAdd, fx8([]int{4}, 5), fx8([]int{4}, 5), fx8([]int{3}, 5), mli.NotEnoughMemory},
		{"nil output", EltwiseAdd, fx8([]int{4}, 5), fx8([]int{4}, 5), nil, mli.BadTensor},
		{"output type", EltwiseAdd, fx8([]int{4}, 5), fx8([]int{4}, 5), fx16([]int{4}, 5), mli.TypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EltwiseFX8(tt.op, tt.in1, tt.in2, tt.out)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}

func TestActivations(t *testing.T) {
	in := fx8([]int{2, 3}, 4)
	require.NoError(t, ReluFX8(in, &mli.ReluConfig{Type: mli.Relu6}, fx8([]int{6}, 4)))
	assert.Equal(t, mli.BadFuncCfg, mli.StatusOf(ReluFX8(in, nil, fx8([]int{6}, 4))))
	assert.Equal(t, mli.NotEnoughMemory, mli.StatusOf(ReluFX8(in, &mli.ReluConfig{}, fx8([]int{5}, 4))))

	slope := mli.NewFX8(nil, 7, []int8{13})
	require.NoError(t, LeakyReluFX8(in, slope, fx8([]int{6}, 4)))
	assert.Equal(t, mli.TypeMismatch, mli.StatusOf(LeakyReluFX8(in, mli.NewFX16(nil, 7, []int16{13}), fx8([]int{6}, 4))))
	assert.Equal(t, mli.ShapeMismatch, mli.StatusOf(LeakyReluFX8(in, fx8([]int{2}, 7), fx8([]int{6}, 4))))

	require.NoError(t, BasicActivationFX16(fx16([]int{5}, 12), fx16([]int{5}, 15)))
	assert.Equal(t, mli.TypeMismatch, mli.StatusOf(BasicActivationFX16(in, fx8([]int{6}, 7))))
}

func TestConcat(t *testing.T) {
	tests := []struct {
		name   string
		inputs []*mli.Tensor
		axis   int
		out    *mli.Tensor
		want   mli.Status
	}{
		{"axis 0", []*mli.Tensor{fx8([]int{2, 3}, 4), fx8([]int{1, 3}, 4)}, 0, fx8([]int{9}, 4), mli.OK},
		{"axis 1", []*mli.Tensor{fx8([]int{2, 3}, 4), fx8([]int{2, 1}, 4)}, 1, fx8([]int{8}, 4), mli.OK},
		{"axis outside rank", []*mli.Tensor{fx8([]int{2, 3}, 4)}, 2, fx8([]int{6}, 4), mli.BadFuncCfg},
		{"other axis differs", []*mli.Tensor{fx8([]int{2, 3}, 4), fx8([]int{2, 4}, 4)}, 0, fx8([]int{14}, 4), mli.ShapeMismatch},
		{"frac differs", []*mli.Tensor{fx8([]int{2, 3}, 4), fx8([]int{2, 3}, 5)}, 0, fx8([]int{12}, 4), mli.IncompatibleTensors},
		{"output too small", []*mli.Tensor{fx8([]int{2, 3}, 4), fx8([]int{2, 3}, 4)}, 0, fx8([]int{11}, 4), mli.NotEnoughMemory},
		{"nil inputs", nil, 0, fx8([]int{1}, 4), mli.BadTensor},
		{"too many inputs", []*mli.Tensor{
			fx8([]int{1}, 0), fx8([]int{1}, 0), fx8([]int{1}, 0), fx8([]int{1}, 0), fx8([]int{1}, 0),
			fx8([]int{1}, 0), fx8([]int{1}, 0), fx8([]int{1}, 0), fx8([]int{1}, 0),
		}, 0, fx8([]int{9}, 0), mli.BadFuncCfg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConcatFX8(tt.inputs, &mli.ConcatConfig{Axis: tt.axis}, tt.out)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
	err := ConcatFX16([]*mli.Tensor{fx8([]int{2}, 0)}, &mli.ConcatConfig{}, fx8([]int{2}, 0))
	assert.Equal(t, mli.TypeMismatch, mli.StatusOf(err))
}

func TestPadding2DAndPermute(t *testing.T) {
	in := fx8([]int{1, 2, 2}, 3)
	cfg := &mli.Padding2DConfig{PaddingLeft: 1, PaddingRight: 1, PaddingTop: 1, PaddingBottom: 1}
	require.NoError(t, Padding2DCHWFX8(in, cfg, fx8([]int{16}, 3)))
	assert.Equal(t, [3]int{1, 4, 4}, Padding2DOutShape(in, cfg))
	assert.Equal(t, mli.NotEnoughMemory, mli.StatusOf(Padding2DCHWFX8(in, cfg, fx8([]int{15}, 3))))
	assert.Equal(t, mli.ShapeMismatch, mli.StatusOf(Padding2DCHWFX8(fx8([]int{2, 2}, 3), cfg, fx8([]int{16}, 3))))
	assert.Equal(t, mli.BadFuncCfg, mli.StatusOf(Padding2DCHWFX8(in, nil, fx8([]int{16}, 3))))

	m := fx16([]int{2, 3}, 3)
	require.NoError(t, PermuteFX16(m, &mli.PermuteConfig{PermDim: [mli.MaxRank]int{1, 0}}, fx16([]int{6}, 3)))
	assert.Equal(t, mli.BadFuncCfg, mli.StatusOf(PermuteFX16(m, &mli.PermuteConfig{}, fx16([]int{6}, 3))))
	assert.Equal(t, mli.BadFuncCfg, mli.StatusOf(PermuteFX16(m, &mli.PermuteConfig{PermDim: [mli.MaxRank]int{2, 0}}, fx16([]int{6}, 3))))
	assert.Equal(t, mli.TypeMismatch, mli.StatusOf(PermuteFX8(m, &mli.PermuteConfig{PermDim: [mli.MaxRank]int{1, 0}}, fx16([]int{6}, 3))))
}

func TestConvert(t *testing.T) {
	in := fx8([]int{4}, 3)
	require.NoError(t, Convert(in, fx16([]int{4}, 10)))
	assert.Equal(t, mli.NotEnoughMemory, mli.StatusOf(Convert(in, fx16([]int{3}, 10))))

	perAxis := mli.SAParams{Dim: 0, Scale: []int16{1, 1, 1}, ZeroPoint: []int16{0, 0, 0}, ScaleFracBits: []int8{0, 0, 0}}
	out := mli.NewSA8([]int{4}, perAxis, make([]int8, 4))
	assert.Equal(t, mli.SizeMismatch, mli.StatusOf(Convert(in, out)))

	perAxis = mli.SAParams{Dim: 0, Scale: []int16{1, 1, 1, 1}, ZeroPoint: []int16{0, 0, 0, 0}, ScaleFracBits: []int8{0, 0, 0, 0}}
	out = mli.NewSA8([]int{4}, perAxis, make([]int8, 4))
	assert.NoError(t, Convert(in, out))
}

func TestOverRankOperand(t *testing.T) {
	overRank := func(t *mli.Tensor) *mli.Tensor {
		t.Rank = mli.MaxRank + 1
		return t
	}
	relu := &mli.ReluConfig{Type: mli.ReluGen}
	pool := &mli.PoolConfig{KernelWidth: 2, KernelHeight: 2, StrideWidth: 2, StrideHeight: 2}
	tests := []struct {
		name string
		run  func() error
	}{
		{"tensor", func() error { return Tensor(overRank(fx8([]int{4}, 0))) }},
		{"scalar", func() error { return Scalar(overRank(fx8([]int{1}, 0))) }},
		{"eltwise first input", func() error {
			return EltwiseFX8(EltwiseAdd, overRank(fx8([]int{4}, 5)), fx8([]int{4}, 5), fx8([]int{4}, 5))
		}},
		{"eltwise second input", func() error {
			return EltwiseFX16(EltwiseMul, fx16([]int{4}, 5), overRank(fx16([]int{1}, 5)), fx16([]int{4}, 5))
		}},
		{"relu", func() error { return ReluFX8(overRank(fx8([]int{4}, 5)), relu, fx8([]int{4}, 5)) }},
		{"leaky relu slope", func() error {
			return LeakyReluFX8(fx8([]int{4}, 5), overRank(fx8([]int{1}, 7)), fx8([]int{4}, 5))
		}},
		{"activation", func() error { return BasicActivationFX16(overRank(fx16([]int{4}, 12)), fx16([]int{4}, 15)) }},
		{"convert", func() error { return Convert(overRank(fx8([]int{4}, 3)), fx16([]int{4}, 10)) }},
		{"fully connected input", func() error {
			return FullyConnectedFX8(overRank(fx8([]int{4}, 7)), fx8([]int{3, 4}, 6), fx8([]int{3}, 5), fx8([]int{3}, 4))
		}},
		{"fully connected bias", func() error {
			return FullyConnectedFX8(fx8([]int{4}, 7), fx8([]int{3, 4}, 6), overRank(fx8([]int{3}, 5)), fx8([]int{3}, 4))
		}},
		{"conv weights", func() error {
			f := newConvFixture()
			return Conv2DCHWFX8(f.in, overRank(f.w), f.b, f.cfg, f.out)
		}},
		{"depthwise input", func() error {
			f := newConvFixture()
			return DepthwiseConv2DCHWFX8(overRank(f.in), f.w, f.b, f.cfg, f.out)
		}},
		{"maxpool", func() error { return MaxpoolCHWFX8(overRank(fx8([]int{2, 4, 4}, 3)), pool, fx8([]int{8}, 3)) }},
		{"avepool", func() error { return AvepoolCHWFX16(overRank(fx16([]int{2, 4, 4}, 3)), pool, fx16([]int{8}, 3)) }},
		{"concat later input", func() error {
			inputs := []*mli.Tensor{fx8([]int{2, 3}, 4), overRank(fx8([]int{2, 3}, 4))}
			return ConcatFX8(inputs, &mli.ConcatConfig{}, fx8([]int{12}, 4))
		}},
		{"padding", func() error {
			return Padding2DCHWFX8(overRank(fx8([]int{1, 2, 2}, 3)), &mli.Padding2DConfig{}, fx8([]int{4}, 3))
		}},
		{"permute", func() error {
			return PermuteFX8(overRank(fx8([]int{2, 3}, 3)), &mli.PermuteConfig{PermDim: [mli.MaxRank]int{1, 0}}, fx8([]int{6}, 3))
		}},
		{"point to subtensor", func() error {
			return PointToSubtensor(overRank(fx8([]int{2, 3}, 0)), &mli.SubtensorConfig{CoordNum: 1, FirstOutDimSize: 1}, &mli.Tensor{})
		}},
		{"count elements", func() error { return CountElements(overRank(fx8([]int{2, 3}, 0)), 0) }},
		{"rnn prev_out", func() error {
			f := newRNNFixture()
			return BasicRNNCellFX8(f.in, overRank(f.prev), f.w, f.b, f.cfg, f.out)
		}},
		{"lstm prev_out", func() error {
			f := newLSTMFixture()
			return LSTMCellFX8W16D(f.in, overRank(f.prev), f.w, f.b, f.cfg, f.cell, f.out)
		}},
		{"lstm cell", func() error {
			f := newLSTMFixture()
			return LSTMCellFX8W16D(f.in, f.prev, f.w, f.b, f.cfg, overRank(f.cell), f.out)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = tt.run() })
			assert.Equal(t, mli.BadTensor, mli.StatusOf(err), "err = %v", err)
		})
	}
}

func TestCountIgnoresRankBeyondMax(t *testing.T) {
	in := fx8([]int{2, 3, 4, 5}, 0)
	in.Rank = mli.MaxRank + 2
	assert.Equal(t, 120, in.Count())
	assert.Equal(t, []int{2, 3, 4, 5}, in.Dims())
	assert.False(t, IsScalar(in))
}

func TestOverlap(t *testing.T) {
	buf := make([]int8, 16)
	whole := mli.NewFX8([]int{16}, 0, buf)
	head := mli.NewFX8([]int{8}, 0, buf[:8])
	tail := mli.NewFX8([]int{8}, 0, buf[8:])
	assert.True(t, Overlap(whole, head))
	assert.True(t, Overlap(tail, whole))
	assert.False(t, Overlap(head, tail))
	assert.False(t, Overlap(head, fx8([]int{8}, 0)))
	assert.False(t, Overlap(nil, head))
	assert.False(t, Overlap(head, mli.NewFX8([]int{8}, 0, buf[:0])))
}

func TestOutputAliasing(t *testing.T) {
	shared := func(t *mli.Tensor, shape []int) *mli.Tensor {
		return mli.NewFX8(shape, t.ElParams.FracBits, mli.Values[int8](t))
	}
	pool := &mli.PoolConfig{KernelWidth: 2, KernelHeight: 2, StrideWidth: 2, StrideHeight: 2}
	tests := []struct {
		name string
		run  func() error
		want mli.Status
	}{
		{"conv output on input", func() error {
			f := newConvFixture()
			f.in = fx8([]int{3, 4, 4}, 5)
			f.w = fx8([]int{3, 3, 3, 3}, 6)
			return Conv2DCHWFX8(f.in, f.w, f.b, f.cfg, shared(f.in, []int{3, 4, 4}))
		}, mli.IncompatibleTensors},
		{"conv output on weights", func() error {
			f := newConvFixture()
			return Conv2DCHWFX8(f.in, f.w, f.b, f.cfg, shared(f.w, []int{3, 4, 4}))
		}, mli.IncompatibleTensors},
		{"maxpool in place", func() error {
			in := fx8([]int{2, 4, 4}, 3)
			return MaxpoolCHWFX8(in, pool, shared(in, []int{2, 2, 2}))
		}, mli.IncompatibleTensors},
		{"fully connected output on input", func() error {
			in := fx8([]int{4}, 7)
			return FullyConnectedFX8(in, fx8([]int{3, 4}, 6), fx8([]int{3}, 5), shared(in, []int{3}))
		}, mli.IncompatibleTensors},
		{"rnn output on prev_out", func() error {
			f := newRNNFixture()
			return BasicRNNCellFX8(f.in, f.prev, f.w, f.b, f.cfg, shared(f.prev, []int{3}))
		}, mli.IncompatibleTensors},
		{"rnn intermediate on output", func() error {
			f := newRNNFixture()
			f.cfg.Mode = mli.RNNBatchToLast
			f.in = fx8([]int{2, 4}, 7)
			f.cfg.IR = shared(f.out, []int{3})
			return BasicRNNCellFX8(f.in, f.prev, f.w, f.b, f.cfg, f.out)
		}, mli.IncompatibleTensors},
		{"lstm output on cell", func() error {
			f := newLSTMFixture()
			out := mli.NewFX16([]int{3}, 12, mli.Values[int16](f.cell))
			return LSTMCellFX8W16D(f.in, f.prev, f.w, f.b, f.cfg, f.cell, out)
		}, mli.IncompatibleTensors},
		{"lstm intermediate on input", func() error {
			f := newLSTMFixture()
			f.in = fx16([]int{12}, 12)
			f.w = fx8([]int{4, 3, 15}, 6)
			f.cfg.IR = mli.NewFX16([]int{4, 3}, 0, mli.Values[int16](f.in))
			return LSTMCellFX8W16D(f.in, f.prev, f.w, f.b, f.cfg, f.cell, f.out)
		}, mli.IncompatibleTensors},
		{"concat output on second input", func() error {
			a, b := fx8([]int{2, 3}, 4), fx8([]int{12}, 4)
			b.SetShape(2, 3)
			return ConcatFX8([]*mli.Tensor{a, b}, &mli.ConcatConfig{}, shared(b, []int{12}))
		}, mli.IncompatibleTensors},
		{"padding in place", func() error {
			in := fx8([]int{1, 4, 4}, 3)
			in.SetShape(1, 2, 2)
			return Padding2DCHWFX8(in, &mli.Padding2DConfig{PaddingLeft: 1, PaddingTop: 1}, shared(in, []int{9}))
		}, mli.IncompatibleTensors},
		{"permute in place", func() error {
			in := fx8([]int{2, 3}, 3)
			return PermuteFX8(in, &mli.PermuteConfig{PermDim: [mli.MaxRank]int{1, 0}}, shared(in, []int{6}))
		}, mli.IncompatibleTensors},
		{"relu in place", func() error {
			in := fx8([]int{2, 3}, 4)
			return ReluFX8(in, &mli.ReluConfig{Type: mli.ReluGen}, in)
		}, mli.OK},
		{"eltwise in place", func() error {
			in := fx8([]int{4}, 5)
			return EltwiseFX8(EltwiseAdd, in, fx8([]int{4}, 5), in)
		}, mli.OK},
		{"eltwise in place beside a scalar", func() error {
			in := fx8([]int{4}, 5)
			return EltwiseFX8(EltwiseMul, in, mli.NewFX8(nil, 5, []int8{3}), in)
		}, mli.OK},
		{"eltwise output on broadcast scalar", func() error {
			buf := make([]int8, 4)
			return EltwiseFX8(EltwiseAdd, mli.NewFX8(nil, 5, buf[:1]), fx8([]int{4}, 5), mli.NewFX8([]int{4}, 5, buf))
		}, mli.IncompatibleTensors},
		{"prelu in place", func() error {
			in := fx8([]int{2, 3}, 4)
			return PReluFX8(in, fx8([]int{2}, 7), &mli.PReluConfig{Axis: 0}, in)
		}, mli.OK},
		{"argmax output on input", func() error {
			in := fx8([]int{2, 3}, 4)
			out := mli.NewFX8(nil, 0, mli.Values[int8](in))
			return ArgmaxFX8(in, &mli.ArgmaxConfig{Axis: -1, TopK: 2}, out)
		}, mli.IncompatibleTensors},
		{"gru intermediate on output", func() error {
			f := newGRUFixture()
			f.cfg.IR = mli.NewFX8([]int{3, 3}, 0, make([]int8, 9))
			out := mli.NewFX8([]int{3}, 0, mli.Values[int8](f.cfg.IR)[:3])
			return GRUCellFX8(f.in, f.prev, f.w, f.b, f.cfg, out)
		}, mli.IncompatibleTensors},
		{"activation in place", func() error {
			in := fx16([]int{5}, 12)
			return BasicActivationFX16(in, in)
		}, mli.OK},
		{"disjoint halves of one buffer", func() error {
			buf := make([]int8, 20)
			in := mli.NewFX8([]int{1, 4, 4}, 3, buf[:16])
			return MaxpoolCHWFX8(in, pool, mli.NewFX8([]int{4}, 3, buf[16:20]))
		}, mli.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}
