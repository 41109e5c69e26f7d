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

import "github.com/ajroetker/go-mli/mli"

func elementwiseOut(op string, in, out *mli.Tensor) error {
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if !contiguous(in.Shape, in.MemStride, in.Rank) {
		return fail(op, mli.IncompatibleTensors, "input must be contiguous")
	}
	if n := in.Count() * in.ElType.Size(); n > out.Capacity {
		return fail(op, mli.NotEnoughMemory, "capacity %d < %d bytes", out.Capacity, n)
	}
	return nil
}

// Relu checks a clamp activation.
func Relu(in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) error {
	return relu("relu", in, cfg, out)
}

func relu(op string, in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) error {
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if cfg == nil || cfg.Type < mli.ReluNone || cfg.Type > mli.Relu6 {
		return fail(op, mli.BadFuncCfg, "relu config")
	}
	return elementwiseOut(op, in, out)
}

// ReluFX8 checks an 8-bit fixed-point relu.
func ReluFX8(in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) error {
	const op = "relu_fx8"
	if err := relu(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX8)
}

// ReluFX16 checks a 16-bit fixed-point relu.
func ReluFX16(in *mli.Tensor, cfg *mli.ReluConfig, out *mli.Tensor) error {
	const op = "relu_fx16"
	if err := relu(op, in, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX16)
}

// LeakyRelu checks a leaky relu whose negative slope is a scalar tensor of the
// input's element type.
func LeakyRelu(in, slope, out *mli.Tensor) error {
	return leakyRelu("leaky_relu", in, slope, out)
}

func leakyRelu(op string, in, slope, out *mli.Tensor) error {
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if err := scalar(op, slope); err != nil {
		return err
	}
	if slope.ElType != in.ElType {
		return fail(op, mli.TypeMismatch, "slope %v for %v input", slope.ElType, in.ElType)
	}
	return elementwiseOut(op, in, out)
}

// LeakyReluFX8 checks an 8-bit fixed-point leaky relu.
func LeakyReluFX8(in, slope, out *mli.Tensor) error {
	const op = "leaky_relu_fx8"
	if err := leakyRelu(op, in, slope, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX8)
}

// LeakyReluFX16 checks a 16-bit fixed-point leaky relu.
func LeakyReluFX16(in, slope, out *mli.Tensor) error {
	const op = "leaky_relu_fx16"
	if err := leakyRelu(op, in, slope, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX16)
}

// PRelu checks a parametric relu. With cfg.Axis -1 the slope is a scalar;
// otherwise it holds one value per index along the axis. The slope has the
// input's element type.
func PRelu(in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) error {
	return prelu("prelu", in, slope, cfg, out)
}

func prelu(op string, in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) error {
	if err := tensor(op, in); err != nil {
		return err
	}
	if err := outPresent(op, out); err != nil {
		return err
	}
	if cfg == nil {
		return fail(op, mli.BadFuncCfg, "nil config")
	}
	if cfg.Axis < -1 || cfg.Axis >= in.Rank {
		return fail(op, mli.BadFuncCfg, "axis %d outside rank %d", cfg.Axis, in.Rank)
	}
	if cfg.Axis < 0 {
		if err := scalar(op, slope); err != nil {
			return err
		}
	} else {
		if err := tensor(op, slope); err != nil {
			return err
		}
		if !contiguous(slope.Shape, slope.MemStride, slope.Rank) {
			return fail(op, mli.IncompatibleTensors, "slope must be contiguous")
		}
		if n := slope.Count(); n != in.Shape[cfg.Axis] {
			return fail(op, mli.ShapeMismatch, "%d slopes for axis of %d", n, in.Shape[cfg.Axis])
		}
	}
	if slope.ElType != in.ElType {
		return fail(op, mli.TypeMismatch, "slope %v for %v input", slope.ElType, in.ElType)
	}
	return elementwiseOut(op, in, out)
}

// PReluFX8 checks an 8-bit fixed-point parametric relu.
func PReluFX8(in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) error {
	const op = "prelu_fx8"
	if err := prelu(op, in, slope, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX8)
}

// PReluFX16 checks a 16-bit fixed-point parametric relu.
func PReluFX16(in, slope *mli.Tensor, cfg *mli.PReluConfig, out *mli.Tensor) error {
	const op = "prelu_fx16"
	if err := prelu(op, in, slope, cfg, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX16)
}

// BasicActivation checks a one-input activation such as tanh, sigmoid or
// softmax.
func BasicActivation(in, out *mli.Tensor) error {
	return elementwiseOut("basic_activation", in, out)
}

// BasicActivationFX8 checks an 8-bit fixed-point activation.
func BasicActivationFX8(in, out *mli.Tensor) error {
	const op = "basic_activation_fx8"
	if err := elementwiseOut(op, in, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX8)
}

// BasicActivationFX16 checks a 16-bit fixed-point activation.
func BasicActivationFX16(in, out *mli.Tensor) error {
	const op = "basic_activation_fx16"
	if err := elementwiseOut(op, in, out); err != nil {
		return err
	}
	return withType(op, in, out, mli.FX16)
}
