//go:build linux

package preprocess

import "golang.org/x/sys/unix"

// pinCPU binds the calling thread to one CPU. The caller must hold
// runtime.LockOSThread. Pinning is best effort: on a machine with fewer
// CPUs than MT_CONF names, the set call fails and the worker simply runs
// unpinned.
func pinCPU(cpu int) {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	_ = unix.SchedSetaffinity(0, &set)
}
