//go:build !linux

package preprocess

// pinCPU is a no-op on platforms without thread affinity control.
func pinCPU(int) {}
