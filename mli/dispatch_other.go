//go:build !amd64 && !arm64

package mli

func init() {
	// Other architectures use the scalar micro-kernels.
	setScalarMode()
	logPlatform()
}
