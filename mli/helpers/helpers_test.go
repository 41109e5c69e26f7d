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

package helpers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-mli/mli"
)

func iota8(n int) []int8 {
	s := make([]int8, n)
	for i := range s {
		s[i] = int8(i)
	}
	return s
}

func TestCountElements(t *testing.T) {
	in := mli.NewFX8([]int{2, 3, 4}, 0, iota8(24))
	tests := []struct {
		start int
		want  int
	}{
		{0, 24},
		{1, 12},
		{2, 4},
		{3, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := CountElements(in, tt.start); got != tt.want {
			t.Errorf("CountElements(in, %d) = %d, want %d", tt.start, got, tt.want)
		}
	}
	if got := CountElements(nil, 0); got != 0 {
		t.Errorf("CountElements(nil, 0) = %d, want 0", got)
	}
}

func TestPointToSubtensor(t *testing.T) {
	in := mli.NewFX8([]int{2, 3, 4}, 5, iota8(24))
	tests := []struct {
		name      string
		cfg       mli.SubtensorConfig
		wantShape []int
		wantFirst int8
		wantCap   int
	}{
		{"second batch", mli.SubtensorConfig{StartCoord: [mli.MaxRank]int{1}, CoordNum: 1, FirstOutDimSize: 1}, []int{1, 3, 4}, 12, 12},
		{"rows of second batch", mli.SubtensorConfig{StartCoord: [mli.MaxRank]int{1, 1}, CoordNum: 2, FirstOutDimSize: 2}, []int{2, 4}, 16, 8},
		{"single row tail", mli.SubtensorConfig{StartCoord: [mli.MaxRank]int{0, 2, 1}, CoordNum: 3, FirstOutDimSize: 3}, []int{3}, 9, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out mli.Tensor
			if err := PointToSubtensor(in, &tt.cfg, &out); err != nil {
				t.Fatalf("PointToSubtensor: %v", err)
			}
			if diff := cmp.Diff(tt.wantShape, out.Dims()); diff != "" {
				t.Errorf("shape mismatch (-want +got):\n%s", diff)
			}
			data := mli.Values[int8](&out)
			if data[0] != tt.wantFirst {
				t.Errorf("first element = %d, want %d", data[0], tt.wantFirst)
			}
			if out.Capacity != tt.wantCap {
				t.Errorf("capacity = %d, want %d", out.Capacity, tt.wantCap)
			}
			if out.ElParams.FracBits != 5 || out.ElType != mli.FX8 {
				t.Errorf("format = %v/%d, want fx8/5", out.ElType, out.ElParams.FracBits)
			}
		})
	}

	data := mli.Values[int8](in)
	var out mli.Tensor
	cfg := mli.SubtensorConfig{StartCoord: [mli.MaxRank]int{1}, CoordNum: 1, FirstOutDimSize: 1}
	if err := PointToSubtensor(in, &cfg, &out); err != nil {
		t.Fatal(err)
	}
	mli.Values[int8](&out)[0] = 100
	if data[12] != 100 {
		t.Errorf("sub-tensor does not alias its parent")
	}
}

func TestPointToSubtensorInvalid(t *testing.T) {
	in := mli.NewFX8([]int{2, 3}, 0, iota8(6))
	var out mli.Tensor
	cfg := mli.SubtensorConfig{StartCoord: [mli.MaxRank]int{2}, CoordNum: 1, FirstOutDimSize: 1}
	err := PointToSubtensor(in, &cfg, &out)
	if mli.StatusOf(err) != mli.BadFuncCfg {
		t.Errorf("status = %v, want %v", mli.StatusOf(err), mli.BadFuncCfg)
	}
	if out.Data != nil {
		t.Errorf("output touched on failure")
	}
}
