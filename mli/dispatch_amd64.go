//go:build amd64

package mli

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		logPlatform()
		return
	}

	detectCPUFeatures()
	logPlatform()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		setLevel(LevelVecN, "avx512")
		current.VectorLength8, current.VectorLength16 = 64, 32
	case cpu.X86.HasAVX2:
		setLevel(LevelVecN, "avx2")
		current.VectorLength8, current.VectorLength16 = 32, 16
	default:
		// SSE2 is baseline for amd64
		setLevel(LevelVec2, "sse2")
	}
}
