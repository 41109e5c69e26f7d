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

// Package helpers provides tensor utilities that sit on top of validation:
// partial element counts and zero-copy sub-tensor views.
package helpers

import (
	"github.com/ajroetker/go-mli/mli"
	"github.com/ajroetker/go-mli/mli/check"
)

// CountElements returns the number of elements in dimensions [startDim, Rank)
// of t, or 0 when the arguments are invalid.
func CountElements(t *mli.Tensor, startDim int) int {
	if err := check.CountElements(t, startDim); err != nil {
		return 0
	}
	return t.CountPart(startDim)
}

// PointToSubtensor makes out a view into in without copying. The leading
// cfg.CoordNum coordinates are fixed, and the last of them keeps
// cfg.FirstOutDimSize entries, so out has rank in.Rank-CoordNum+1.
func PointToSubtensor(in *mli.Tensor, cfg *mli.SubtensorConfig, out *mli.Tensor) error {
	if err := check.PointToSubtensor(in, cfg, out); err != nil {
		return err
	}

	startAxis := cfg.CoordNum - 1
	strides := in.Strides()
	offset := 0
	for i := 0; i < cfg.CoordNum; i++ {
		offset += cfg.StartCoord[i] * strides[i]
	}

	var shape, memStride [mli.MaxRank]int
	rank := in.Rank - startAxis
	shape[0] = cfg.FirstOutDimSize
	size := cfg.FirstOutDimSize
	for i := 1; i < rank; i++ {
		shape[i] = in.Shape[startAxis+i]
		size *= shape[i]
	}
	elSize := in.ElType.Size()
	capacity := size * elSize
	if in.StridesSet() {
		for i := 0; i < rank; i++ {
			memStride[i] = in.MemStride[startAxis+i]
		}
		capacity = in.Capacity - offset*elSize
	}

	out.Data = reslice(in.Data, offset)
	out.Shape = shape
	out.MemStride = memStride
	out.Rank = rank
	out.Capacity = capacity
	out.CopyFormat(in)
	return nil
}

func reslice(data any, offset int) any {
	switch d := data.(type) {
	case []int8:
		return d[offset:]
	case []int16:
		return d[offset:]
	case []int32:
		return d[offset:]
	case []float32:
		return d[offset:]
	}
	return nil
}
