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

package mli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTensorStrides(t *testing.T) {
	x := NewFX8([]int{2, 3, 4}, 0, make([]int8, 24))
	if diff := cmp.Diff([MaxRank]int{12, 4, 1, 0}, x.Strides()); diff != "" {
		t.Errorf("contiguous strides mismatch (-want +got):\n%s", diff)
	}
	x.MemStride = [MaxRank]int{20, 5, 1}
	if diff := cmp.Diff([MaxRank]int{20, 5, 1, 0}, x.Strides()); diff != "" {
		t.Errorf("explicit strides mismatch (-want +got):\n%s", diff)
	}
	if got := x.Count(); got != 24 {
		t.Errorf("Count = %d, want 24", got)
	}
	if got := x.CountPart(1); got != 12 {
		t.Errorf("CountPart(1) = %d, want 12", got)
	}
}

func TestTensorDataType(t *testing.T) {
	tests := []struct {
		name string
		t    *Tensor
		want bool
	}{
		{"fx8", NewFX8([]int{1}, 0, []int8{0}), true},
		{"fx16", NewFX16([]int{1}, 0, []int16{0}), true},
		{"sa8", NewSA8([]int{1}, PerTensor(1, 0, 0), []int8{0}), true},
		{"sa32", NewSA32([]int{1}, PerTensor(1, 0, 0), []int32{0}), true},
		{"fp32", NewFP32([]int{1}, []float32{0}), true},
		{"fx16 over int8", &Tensor{Data: []int8{0}, ElType: FX16}, false},
		{"nil data", &Tensor{ElType: FX8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.DataMatchesType(); got != tt.want {
				t.Errorf("DataMatchesType = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSAParamsScaleAt(t *testing.T) {
	p := SAParams{Dim: 0, Scale: []int16{3, 5}, ZeroPoint: []int16{-1, 2}, ScaleFracBits: []int8{4, 6}}
	s, zp, f := p.ScaleAt(1)
	if s != 5 || zp != 2 || f != 6 {
		t.Errorf("ScaleAt(1) = %d %d %d", s, zp, f)
	}
	pt := PerTensor(7, 1, 3)
	s, zp, f = pt.ScaleAt(9)
	if s != 7 || zp != 1 || f != 3 {
		t.Errorf("per-tensor ScaleAt(9) = %d %d %d", s, zp, f)
	}
}

func TestNewDescriptionLanes(t *testing.T) {
	for _, lvl := range []Level{LevelScalar, LevelVec2, LevelVecN} {
		d := NewDescription(lvl, RoundUp)
		if d.Lanes() < 1 {
			t.Errorf("%v: Lanes() = %d", lvl, d.Lanes())
		}
	}
	if CurrentName() == "" {
		t.Error("no platform selected at init")
	}
}
