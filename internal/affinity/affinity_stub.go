//go:build !linux

package affinity

// Pin is a no-op on platforms without sched_setaffinity. Reporting success
// keeps call sites free of platform conditionals; the worker simply runs
// unbound.
func Pin(core int) error {
	return nil
}
