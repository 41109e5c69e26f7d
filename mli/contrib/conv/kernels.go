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

package conv

import "github.com/ajroetker/go-mli/mli"

// variant names the reduction shape a pixel wrapper asks for. The kernel set
// of each level maps it onto a concrete dotprod.
type variant uint8

const (
	variantPlain   variant = iota // any width
	variantEven                   // even width
	variantOddEven                // either, branching on the width
	variantPlus1                  // width%4 == 1
	variantPlus3                  // width%4 == 3
)

// kernelSet is the micro-kernel set of one capability level.
type kernelSet[I, W mli.Int] struct {
	level  mli.Level
	plain  dotprod[I, W]
	even   dotprod[I, W]
	odd    dotprod[I, W]
	plus1  dotprod[I, W]
	plus3  dotprod[I, W]
	pair   dotprodV[I, W]
	pair1D dotprodV[I, W]
}

// kernelsFor returns the micro-kernel set for level l. All sets compute the
// same sums; they differ in how many columns and lanes they handle per step.
func kernelsFor[I, W mli.Int](l mli.Level) kernelSet[I, W] {
	switch l {
	case mli.LevelVec2:
		return kernelSet[I, W]{
			level:  l,
			plain:  dotprod2D[I, W],
			even:   dotprod2DUnroll2[I, W],
			odd:    dotprod2DOdd[I, W],
			plus1:  dotprod2DOdd[I, W],
			plus3:  dotprod2DOdd[I, W],
			pair:   dotprod2Dv[I, W],
			pair1D: dotprod1Dv[I, W],
		}
	case mli.LevelVecN:
		return kernelSet[I, W]{
			level:  l,
			plain:  dotprod2D[I, W],
			even:   dotprod2DUnroll4Even[I, W],
			odd:    dotprod2DUnroll4Odd[I, W],
			plus1:  dotprod2DUnroll4Plus1[I, W],
			plus3:  dotprod2DUnroll4Plus3[I, W],
			pair:   dotprod2DvUnroll4[I, W],
			pair1D: dotprod1DvUnroll2[I, W],
		}
	default:
		return kernelSet[I, W]{
			level:  mli.LevelScalar,
			plain:  dotprod2D[I, W],
			even:   dotprod2D[I, W],
			odd:    dotprod2D[I, W],
			plus1:  dotprod2D[I, W],
			plus3:  dotprod2D[I, W],
			pair:   pairOf(dotprod2D[I, W]),
			pair1D: pairOf(dotprod2D[I, W]),
		}
	}
}

func (ks *kernelSet[I, W]) pick(v variant, width int) dotprod[I, W] {
	switch v {
	case variantEven:
		return ks.even
	case variantOddEven:
		if width&1 != 0 {
			return ks.odd
		}
		return ks.even
	case variantPlus1:
		return ks.plus1
	case variantPlus3:
		return ks.plus3
	default:
		return ks.plain
	}
}

// centreVariant picks the wrapper for full-width windows of the any-stride
// path from the kernel width alone.
func centreVariant(kw int) variant {
	switch {
	case kw&1 == 0:
		return variantEven
	case kw&3 == 3:
		return variantPlus3
	default:
		return variantPlus1
	}
}
