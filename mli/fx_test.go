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
	"errors"
	"testing"
)

func TestAsrRnd(t *testing.T) {
	tests := []struct {
		name  string
		acc   int64
		shift int
		r     Rounding
		want  int64
	}{
		{"zero shift", 37, 0, RoundUp, 37},
		{"negative shift is left", 3, -2, RoundUp, 12},
		{"half up positive", 5, 1, RoundUp, 3},
		{"half up negative", -5, 1, RoundUp, -2},
		{"below half", 9, 2, RoundUp, 2},
		{"above half", 11, 2, RoundUp, 3},
		{"convergent half to even down", 5, 1, RoundConvergent, 2},
		{"convergent half to even up", 7, 1, RoundConvergent, 4},
		{"convergent negative half", -5, 1, RoundConvergent, -2},
		{"convergent not half", 11, 2, RoundConvergent, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsrRnd(tt.acc, tt.shift, tt.r); got != tt.want {
				t.Errorf("AsrRnd(%d, %d, %v) = %d, want %d", tt.acc, tt.shift, tt.r, got, tt.want)
			}
		})
	}
}

func TestSat(t *testing.T) {
	if got := Sat[int8](200); got != 127 {
		t.Errorf("Sat[int8](200) = %d", got)
	}
	if got := Sat[int8](-200); got != -128 {
		t.Errorf("Sat[int8](-200) = %d", got)
	}
	if got := Sat[int16](40000); got != 32767 {
		t.Errorf("Sat[int16](40000) = %d", got)
	}
	if got := Sat[int16](-5); got != -5 {
		t.Errorf("Sat[int16](-5) = %d", got)
	}
	if got := SatBits(300, 9); got != 255 {
		t.Errorf("SatBits(300, 9) = %d", got)
	}
}

func TestReluMinMax(t *testing.T) {
	tests := []struct {
		name   string
		rt     ReluType
		frac   int
		lo, hi int64
	}{
		{"none", ReluNone, 4, -128, 127},
		{"gen", ReluGen, 4, 0, 127},
		{"relu6 fits", Relu6, 4, 0, 96},
		{"relu6 saturates", Relu6, 5, 0, 127},
		{"relu1 frac 4", Relu1, 4, -16, 16},
		{"relu1 frac 7", Relu1, 7, -128, 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := ReluMinMax[int8](tt.rt, tt.frac)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("ReluMinMax(%v, %d) = [%d, %d], want [%d, %d]", tt.rt, tt.frac, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestOutSize(t *testing.T) {
	tests := []struct {
		in, p1, p2, k, s, want int
	}{
		{8, 0, 0, 3, 1, 6},
		{8, 1, 1, 3, 1, 8},
		{8, 1, 1, 3, 2, 4},
		{7, 0, 0, 1, 2, 4},
		{5, 2, 2, 5, 3, 2},
	}
	for _, tt := range tests {
		if got := OutSize(tt.in, tt.p1, tt.p2, tt.k, tt.s); got != tt.want {
			t.Errorf("OutSize(%d,%d,%d,%d,%d) = %d, want %d", tt.in, tt.p1, tt.p2, tt.k, tt.s, got, tt.want)
		}
	}
}

func TestNormQ31(t *testing.T) {
	tests := []struct {
		v    int32
		want int
	}{
		{0, 31},
		{1, 30},
		{0x40000000, 0},
		{-1, 31},
		{-0x40000000, 1},
		{0x10000, 14},
	}
	for _, tt := range tests {
		if got := NormQ31(tt.v); got != tt.want {
			t.Errorf("NormQ31(%#x) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestStatusError(t *testing.T) {
	err := Errorf("conv2d", ShapeMismatch, "in channels %d", 3)
	if !errors.Is(err, ShapeMismatch) {
		t.Fatalf("errors.Is(%v, ShapeMismatch) = false", err)
	}
	if StatusOf(err) != ShapeMismatch {
		t.Errorf("StatusOf = %v", StatusOf(err))
	}
	if StatusOf(nil) != OK {
		t.Errorf("StatusOf(nil) = %v", StatusOf(nil))
	}
	if got := err.Error(); got != "conv2d: shape mismatch: in channels 3" {
		t.Errorf("Error() = %q", got)
	}
}
