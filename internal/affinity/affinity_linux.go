//go:build linux

package affinity

import "golang.org/x/sys/unix"

// Pin binds the calling OS thread to the given core. The caller must hold
// runtime.LockOSThread for the binding to stay with its goroutine. core
// must be in [0, CPUSetSize); out-of-range ids are rejected by the caller
// as a no-op, not passed down.
func Pin(core int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	// pid 0 targets the calling thread.
	return unix.SchedSetaffinity(0, &set)
}
