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

	"github.com/ajroetker/go-mli/mli"
)

func TestFullyConnected(t *testing.T) {
	tests := []struct {
		name  string
		in    *mli.Tensor
		w, b  *mli.Tensor
		out   *mli.Tensor
		check func(in, w, b, out *mli.Tensor) error
		want  mli.Status
	}{
		{"valid", fx8([]int{4}, 7), fx8([]int{3, 4}, 6), fx8([]int{3}, 5), fx8([]int{3}, 4), FullyConnectedFX8, mli.OK},
		{"input count", fx8([]int{5}, 7), fx8([]int{3, 4}, 6), fx8([]int{3}, 5), fx8([]int{3}, 4), FullyConnectedFX8, mli.ShapeMismatch},
		{"bias rows", fx8([]int{4}, 7), fx8([]int{3, 4}, 6), fx8([]int{2}, 5), fx8([]int{3}, 4), FullyConnectedFX8, mli.ShapeMismatch},
		{"bias frac", fx8([]int{4}, 7), fx8([]int{3, 4}, 6), fx8([]int{3}, 14), fx8([]int{3}, 4), FullyConnectedFX8, mli.IncompatibleTensors},
		{"output too small", fx8([]int{4}, 7), fx8([]int{3, 4}, 6), fx8([]int{3}, 5), fx8([]int{2}, 4), FullyConnectedFX8, mli.NotEnoughMemory},
		{"mixed weights", fx16([]int{4}, 7), fx8([]int{3, 4}, 6), fx8([]int{3}, 5), fx16([]int{3}, 4), FullyConnectedFX8W16D, mli.OK},
		{"fx8 data with fx16 weights", fx8([]int{4}, 7), fx16([]int{3, 4}, 6), fx16([]int{3}, 5), fx8([]int{3}, 4), FullyConnectedFX8, mli.NotSupported},
		{"entry type", fx8([]int{4}, 7), fx8([]int{3, 4}, 6), fx8([]int{3}, 5), fx8([]int{3}, 4), FullyConnectedFX16, mli.TypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.in, tt.w, tt.b, tt.out)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}

type rnnFixture struct {
	in, prev, w, b, cell, out *mli.Tensor
	cfg                       *mli.RNNCellConfig
}

func newRNNFixture() *rnnFixture {
	return &rnnFixture{
		in:   fx8([]int{4}, 7),
		prev: fx8([]int{3}, 7),
		w:    fx8([]int{3, 7}, 6),
		b:    fx8([]int{3}, 5),
		out:  fx8([]int{3}, 7),
		cfg:  &mli.RNNCellConfig{Mode: mli.RNNOneToOne, Act: mli.RNNActTanh},
	}
}

func TestBasicRNNCell(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *rnnFixture)
		want   mli.Status
	}{
		{"valid", func(f *rnnFixture) {}, mli.OK},
		{"nil config", func(f *rnnFixture) { f.cfg = nil }, mli.BadFuncCfg},
		{"batch to last without buffer", func(f *rnnFixture) { f.cfg.Mode = mli.RNNBatchToLast }, mli.BadFuncCfg},
		{"batch mode on a vector", func(f *rnnFixture) { f.cfg.Mode = mli.RNNBatchToBatch }, mli.BadFuncCfg},
		{"weights width", func(f *rnnFixture) { f.w = fx8([]int{3, 6}, 6) }, mli.ShapeMismatch},
		{"prev_out rank", func(f *rnnFixture) { f.prev = fx8([]int{1, 3}, 7) }, mli.ShapeMismatch},
		{"prev_out type", func(f *rnnFixture) { f.prev = fx16([]int{3}, 7) }, mli.TypeMismatch},
		{"bias frac", func(f *rnnFixture) { f.b.ElParams.FracBits = 14 }, mli.IncompatibleTensors},
		{"output too small", func(f *rnnFixture) { f.out = fx8([]int{2}, 7) }, mli.NotEnoughMemory},
		{"batch to batch", func(f *rnnFixture) {
			f.cfg.Mode = mli.RNNBatchToBatch
			f.in = fx8([]int{2, 4}, 7)
			f.out = fx8([]int{2, 3}, 7)
		}, mli.OK},
		{"batch to batch output", func(f *rnnFixture) {
			f.cfg.Mode = mli.RNNBatchToBatch
			f.in = fx8([]int{2, 4}, 7)
			f.out = fx8([]int{5}, 7)
		}, mli.NotEnoughMemory},
		{"batch to last", func(f *rnnFixture) {
			f.cfg.Mode = mli.RNNBatchToLast
			f.cfg.IR = fx8([]int{3}, 0)
			f.in = fx8([]int{5, 4}, 7)
		}, mli.OK},
		{"batch to last buffer", func(f *rnnFixture) {
			f.cfg.Mode = mli.RNNBatchToLast
			f.cfg.IR = fx8([]int{2}, 0)
			f.in = fx8([]int{5, 4}, 7)
		}, mli.NotEnoughMemory},
		{"stacked weights", func(f *rnnFixture) {
			f.w = fx8([]int{2, 3, 7}, 6)
			f.b = fx8([]int{2, 3}, 5)
			f.out = fx8([]int{6}, 7)
		}, mli.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRNNFixture()
			tt.mutate(f)
			err := BasicRNNCellFX8(f.in, f.prev, f.w, f.b, f.cfg, f.out)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}

func newLSTMFixture() *rnnFixture {
	return &rnnFixture{
		in:   fx16([]int{2}, 12),
		prev: fx16([]int{3}, 12),
		w:    fx8([]int{4, 3, 5}, 6),
		b:    fx8([]int{4, 3}, 5),
		cell: fx16([]int{3}, 11),
		out:  fx16([]int{3}, 12),
		cfg:  &mli.RNNCellConfig{Mode: mli.RNNOneToOne, Act: mli.RNNActTanh, IR: fx16([]int{4, 3}, 0)},
	}
}

func TestLSTMCell(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *rnnFixture)
		want   mli.Status
	}{
		{"valid", func(f *rnnFixture) {}, mli.OK},
		{"missing buffer", func(f *rnnFixture) { f.cfg.IR = nil }, mli.BadFuncCfg},
		{"buffer too small", func(f *rnnFixture) { f.cfg.IR = fx16([]int{11}, 0) }, mli.NotEnoughMemory},
		{"buffer type", func(f *rnnFixture) { f.cfg.IR = fx8([]int{24}, 0) }, mli.TypeMismatch},
		{"weights width", func(f *rnnFixture) { f.w = fx8([]int{4, 3, 6}, 6) }, mli.ShapeMismatch},
		{"three gates", func(f *rnnFixture) {
			f.w = fx8([]int{3, 3, 5}, 6)
			f.b = fx8([]int{3, 3}, 5)
		}, mli.ShapeMismatch},
		{"cell length", func(f *rnnFixture) { f.cell = fx16([]int{4}, 11) }, mli.ShapeMismatch},
		{"cell type", func(f *rnnFixture) { f.cell = fx8([]int{3}, 4) }, mli.TypeMismatch},
		{"batch to batch output", func(f *rnnFixture) {
			f.cfg.Mode = mli.RNNBatchToBatch
			f.in = fx16([]int{2, 2}, 12)
		}, mli.NotEnoughMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLSTMFixture()
			tt.mutate(f)
			err := LSTMCellFX8W16D(f.in, f.prev, f.w, f.b, f.cfg, f.cell, f.out)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}

func newGRUFixture() *rnnFixture {
	return &rnnFixture{
		in:   fx8([]int{2}, 7),
		prev: fx8([]int{3}, 7),
		w:    fx8([]int{3, 3, 5}, 6),
		b:    fx8([]int{3, 3}, 5),
		out:  fx8([]int{3}, 7),
		cfg:  &mli.RNNCellConfig{Mode: mli.RNNOneToOne, IR: fx8([]int{3, 3}, 0)},
	}
}

func TestGRUCell(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *rnnFixture)
		want   mli.Status
	}{
		{"valid", func(f *rnnFixture) {}, mli.OK},
		{"missing buffer", func(f *rnnFixture) { f.cfg.IR = nil }, mli.BadFuncCfg},
		{"buffer too small", func(f *rnnFixture) { f.cfg.IR = fx8([]int{8}, 0) }, mli.NotEnoughMemory},
		{"four gates", func(f *rnnFixture) {
			f.w = fx8([]int{4, 3, 5}, 6)
			f.b = fx8([]int{4, 3}, 5)
		}, mli.ShapeMismatch},
		{"weights width", func(f *rnnFixture) { f.w = fx8([]int{3, 3, 4}, 6) }, mli.ShapeMismatch},
		{"prev_out type", func(f *rnnFixture) { f.prev = fx16([]int{3}, 7) }, mli.TypeMismatch},
		{"output in buffer", func(f *rnnFixture) { f.out = f.cfg.IR }, mli.IncompatibleTensors},
		{"batch to batch", func(f *rnnFixture) {
			f.cfg.Mode = mli.RNNBatchToBatch
			f.in = fx8([]int{4, 2}, 7)
			f.out = fx8([]int{4, 3}, 7)
		}, mli.OK},
		{"batch to batch output", func(f *rnnFixture) {
			f.cfg.Mode = mli.RNNBatchToBatch
			f.in = fx8([]int{4, 2}, 7)
		}, mli.NotEnoughMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGRUFixture()
			tt.mutate(f)
			err := GRUCellFX8(f.in, f.prev, f.w, f.b, f.cfg, f.out)
			assert.Equal(t, tt.want, mli.StatusOf(err), "err = %v", err)
		})
	}
}
