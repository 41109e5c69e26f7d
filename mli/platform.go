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
	"log/slog"
	"os"
	"strings"
)

// Level identifies a micro-kernel set. All levels compute bit-identical
// results; they differ only in how many output columns a micro-kernel
// produces per step.
type Level int

const (
	LevelScalar Level = iota
	LevelVec2
	LevelVecN
)

func (l Level) String() string {
	switch l {
	case LevelVec2:
		return "vec2"
	case LevelVecN:
		return "vecN"
	default:
		return "scalar"
	}
}

// Description is an immutable description of the target the kernels run on.
type Description struct {
	Name           string
	Level          Level
	VectorLength8  int // 8-bit lanes per vector
	VectorLength16 int // 16-bit lanes per vector
	MacIssueSlots  int
	GuardBits      int
	Rounding       Rounding
}

// Lanes returns how many output columns a micro-kernel of this description
// computes per step.
func (d Description) Lanes() int {
	switch d.Level {
	case LevelVec2:
		return 2
	case LevelVecN:
		if d.VectorLength16 > 0 {
			return d.VectorLength16
		}
		return 8
	default:
		return 1
	}
}

// NewDescription builds a description for a given level and rounding mode.
// Tests use it to run every micro-kernel set on the same host.
func NewDescription(level Level, r Rounding) Description {
	d := Description{Level: level, Rounding: r, GuardBits: 24, MacIssueSlots: 1}
	switch level {
	case LevelVec2:
		d.Name = "vec2"
		d.VectorLength8, d.VectorLength16 = 4, 2
		d.MacIssueSlots = 2
	case LevelVecN:
		d.Name = "vecN"
		d.VectorLength8, d.VectorLength16 = 16, 8
		d.MacIssueSlots = 2
	default:
		d.Name = "scalar"
		d.VectorLength8, d.VectorLength16 = 1, 1
	}
	return d
}

var current Description

// CurrentPlatform returns the description selected at startup.
func CurrentPlatform() Description { return current }

// CurrentLevel returns the micro-kernel level selected at startup.
func CurrentLevel() Level { return current.Level }

// CurrentName returns the name of the detected target.
func CurrentName() string { return current.Name }

// NoSimdEnv reports whether MLI_NO_SIMD requests the scalar micro-kernels.
func NoSimdEnv() bool {
	v := os.Getenv("MLI_NO_SIMD")
	return v != "" && v != "0"
}

func roundingEnv() Rounding {
	switch strings.ToLower(os.Getenv("MLI_ROUNDING")) {
	case "convergent", "even":
		return RoundConvergent
	default:
		return RoundUp
	}
}

func setScalarMode() {
	current = NewDescription(LevelScalar, roundingEnv())
}

func setLevel(level Level, name string) {
	current = NewDescription(level, roundingEnv())
	current.Name = name
}

func logPlatform() {
	slog.Debug("mli: platform selected",
		"name", current.Name,
		"level", current.Level,
		"lanes", current.Lanes(),
		"rounding", current.Rounding)
}
