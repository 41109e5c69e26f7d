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
	"fmt"
)

// Status is the closed set of outcomes a kernel entry point can report.
type Status int

const (
	OK Status = iota
	// BadTensor: nil tensor or buffer, invalid rank or structurally broken tensor.
	BadTensor
	// ShapeMismatch: operand shapes are valid but mutually inconsistent.
	ShapeMismatch
	// TypeMismatch: an operand element type does not fit the entry point.
	TypeMismatch
	// BadFuncCfg: configuration values out of range.
	BadFuncCfg
	// IncompatibleTensors: layout or quantization parameters do not fit together.
	IncompatibleTensors
	// NotEnoughMemory: declared capacity too small for the result.
	NotEnoughMemory
	// NotSupported: a combination of element types that is not implemented.
	NotSupported
	// SizeMismatch: per-axis quantization arrays disagree with the axis extent.
	SizeMismatch
)

var statusNames = [...]string{
	OK:                  "ok",
	BadTensor:           "bad tensor",
	ShapeMismatch:       "shape mismatch",
	TypeMismatch:        "type mismatch",
	BadFuncCfg:          "bad function config",
	IncompatibleTensors: "incompatible tensors",
	NotEnoughMemory:     "not enough memory",
	NotSupported:        "not supported",
	SizeMismatch:        "size mismatch",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Error makes Status usable with errors.Is.
func (s Status) Error() string { return "mli: " + s.String() }

// Error is returned by validation and kernel entry points.
type Error struct {
	Op     string
	Status Status
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Status, e.Reason)
}

func (e *Error) Unwrap() error { return e.Status }

// Errorf builds an *Error for op with the given status.
func Errorf(op string, st Status, format string, args ...any) *Error {
	return &Error{Op: op, Status: st, Reason: fmt.Sprintf(format, args...)}
}

// StatusOf maps an error returned by this module back to its Status.
// A nil error is OK; errors from elsewhere map to BadTensor.
func StatusOf(err error) Status {
	if err == nil {
		return OK
	}
	var st Status
	if errors.As(err, &st) {
		return st
	}
	return BadTensor
}
