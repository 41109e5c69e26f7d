//go:build amd64

package mli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/cpu"
)

func TestDetectedLevel(t *testing.T) {
	if NoSimdEnv() {
		assert.Equal(t, LevelScalar, CurrentLevel())
		return
	}
	tests := []struct {
		name  string
		has   bool
		level Level
		lanes int
	}{
		{"avx512", cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW, LevelVecN, 64},
		{"avx2", cpu.X86.HasAVX2, LevelVecN, 32},
		{"sse2", true, LevelVec2, 4},
	}
	for _, tt := range tests {
		if !tt.has {
			continue
		}
		assert.Equal(t, tt.name, CurrentName())
		assert.Equal(t, tt.level, CurrentLevel())
		assert.Equal(t, tt.lanes, CurrentPlatform().VectorLength8)
		return
	}
}
