//go:build arm64

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
	case cpu.ARM64.HasSVE:
		setLevel(LevelVecN, "sve")
	case cpu.ARM64.HasASIMD:
		setLevel(LevelVec2, "neon")
		current.VectorLength8, current.VectorLength16 = 16, 8
	default:
		setScalarMode()
	}
}
