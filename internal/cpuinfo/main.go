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

// Package main provides a diagnostic tool to print the CPU features detected
// by Go and the micro-kernel set the mli package selected from them.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-mli/mli"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	d := mli.CurrentPlatform()
	fmt.Printf("MLI platform:        %s\n", d.Name)
	fmt.Printf("MLI micro-kernels:   %s (%d columns per step)\n", d.Level, d.Lanes())
	fmt.Printf("MLI vector lanes:    %d x 8-bit, %d x 16-bit\n", d.VectorLength8, d.VectorLength16)
	fmt.Printf("MLI MAC issue slots: %d\n", d.MacIssueSlots)
	fmt.Printf("MLI guard bits:      %d\n", d.GuardBits)
	fmt.Printf("MLI rounding:        %s\n", d.Rounding)
	fmt.Printf("MLI_NO_SIMD set:     %v\n", mli.NoSimdEnv())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON, selects vec2)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasASIMDDP:  %v (int8 dot product)\n", cpu.ARM64.HasASIMDDP)
	fmt.Printf("  HasSVE:      %v (selects vecN)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasI8MM:     %v (int8 matrix multiply)\n", cpu.ARM64.HasI8MM)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:       %v (baseline, selects vec2)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSSE3:      %v\n", cpu.X86.HasSSSE3)
	fmt.Printf("  HasAVX2:       %v (selects vecN)\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:    %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW:   %v (with AVX512F selects 64-lane vecN)\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasAVX512VNNI: %v (int8 dot product)\n", cpu.X86.HasAVX512VNNI)
}
