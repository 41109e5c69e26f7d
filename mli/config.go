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

// ReluType selects the clamp fused into a kernel's output stage.
type ReluType int

const (
	ReluNone ReluType = iota
	ReluGen
	Relu1
	Relu6
)

func (r ReluType) String() string {
	switch r {
	case ReluGen:
		return "relu"
	case Relu1:
		return "relu1"
	case Relu6:
		return "relu6"
	default:
		return "none"
	}
}

// ReluConfig is the fused activation of conv, pooling-free and relu kernels.
type ReluConfig struct {
	Type ReluType
}

// PReluConfig selects the axis a PRelu slope vector runs along. Axis -1
// applies a single slope to the whole tensor.
type PReluConfig struct {
	Axis int
}

// Conv2DConfig configures 2D and depthwise convolution.
//
// Dilations of 0 mean 1. Padding on each side must be smaller than the
// dilated kernel extent on that axis.
type Conv2DConfig struct {
	Relu           ReluConfig
	StrideWidth    int
	StrideHeight   int
	PaddingLeft    int
	PaddingRight   int
	PaddingTop     int
	PaddingBottom  int
	DilationWidth  int
	DilationHeight int
}

// Dilations returns the effective dilation factors.
func (c *Conv2DConfig) Dilations() (dh, dw int) {
	dh, dw = c.DilationHeight, c.DilationWidth
	if dh == 0 {
		dh = 1
	}
	if dw == 0 {
		dw = 1
	}
	return dh, dw
}

// PoolConfig configures max and average pooling.
type PoolConfig struct {
	KernelWidth   int
	KernelHeight  int
	StrideWidth   int
	StrideHeight  int
	PaddingLeft   int
	PaddingRight  int
	PaddingTop    int
	PaddingBottom int
}

// RNNMode selects how a recurrent cell walks the input batch.
type RNNMode int

const (
	// RNNOneToOne processes a single input vector.
	RNNOneToOne RNNMode = iota
	// RNNBatchToBatch processes every row of the input and keeps every result.
	RNNBatchToBatch
	// RNNBatchToLast processes every row and keeps only the last result.
	RNNBatchToLast
)

// RNNActivation is the output non-linearity of a recurrent cell.
type RNNActivation int

const (
	RNNActNone RNNActivation = iota
	RNNActTanh
	RNNActSigm
)

// RNNCellConfig configures basic RNN and LSTM cells. IR is a caller-provided
// intermediate buffer: the LSTM stores its four gate vectors there, the basic
// cell uses it as the second half of a ping-pong buffer in RNNBatchToLast mode.
type RNNCellConfig struct {
	Mode RNNMode
	Act  RNNActivation
	IR   *Tensor
}

// SubtensorConfig selects a sub-tensor: StartCoord[:CoordNum] are leading
// coordinates and FirstOutDimSize the extent kept along the last of them.
type SubtensorConfig struct {
	StartCoord      [MaxRank]int
	CoordNum        int
	FirstOutDimSize int
}

// MaxConcatTensors is the largest number of inputs Concat accepts.
const MaxConcatTensors = 8

// ConcatConfig selects the axis inputs are joined along.
type ConcatConfig struct {
	Axis int
}

// Padding2DConfig sets the number of zero rows and columns added on each side
// of a CHW feature map.
type Padding2DConfig struct {
	PaddingLeft   int
	PaddingRight  int
	PaddingTop    int
	PaddingBottom int
}

// PermuteConfig maps output axis i to input axis PermDim[i].
type PermuteConfig struct {
	PermDim [MaxRank]int
}

// ArgmaxConfig configures top-k selection. Axis -1 searches the whole tensor;
// otherwise every index along Axis selects its own TopK elements.
type ArgmaxConfig struct {
	Axis int
	TopK int
}
