// Package atomicops provides the 32/64-bit atomic load, store, fetch-add
// and compare-and-swap primitives plus the memory fences used by the
// dataset fill path.
//
// # Path selection
//
// Each primitive has two implementations: an atomic path on sync/atomic
// (sequentially consistent, which subsumes the acquire/release minimums the
// fill path needs) and a plain path using ordinary loads and stores. The
// path is selected exactly once at init from the capability snapshot, so
// call sites never branch - the same strategy runs process-wide.
//
// # Contract
//
// None of these operations fail. A shared location must be accessed through
// this package exclusively once a second worker is active; mixing plain and
// atomic access to the same word is a precondition violation, not a checked
// error. Pointers must be naturally aligned (Go allocations always are).
//
// When the capability snapshot reports no atomic extension the plain path is
// active and these primitives give no cross-goroutine guarantees at all.
// State shared between goroutines of this process (as opposed to state
// modeled for the target's threads) must use sync/atomic directly; the fill
// orchestrator does. The fences in this package are always real and do not
// follow the path selection.
package atomicops
