// Package affinity binds the calling OS thread to a single core.
//
// On Linux the binding uses sched_setaffinity(2) via golang.org/x/sys/unix.
// Everywhere else Pin is a no-op that reports success, so callers can invoke
// it unconditionally. Binding failure is advisory: the worker proceeds
// unbound and the caller decides whether to log.
package affinity
