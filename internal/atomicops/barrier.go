package atomicops

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// fenceCell is the dedicated synchronization word the barriers operate on.
// It sits alone on its cache line so barrier traffic never false-shares
// with payload data.
type fenceCell struct {
	_ cpu.CacheLinePad
	v uint64
	_ cpu.CacheLinePad
}

var fence fenceCell

// The Go memory model only exposes sequentially consistent atomics, so each
// barrier below is at least as strong as the fence it models (fence rw,rw /
// fence r,rw / fence rw,w). Barriers are synchronization points, not
// suspension points: they never block or yield.

// FullBarrier orders all prior loads and stores against all subsequent ones.
func FullBarrier() {
	atomic.AddUint64(&fence.v, 0)
}

// ReadBarrier orders prior loads against subsequent loads and stores.
func ReadBarrier() {
	_ = atomic.LoadUint64(&fence.v)
}

// WriteBarrier orders prior loads and stores against subsequent stores.
func WriteBarrier() {
	atomic.StoreUint64(&fence.v, 0)
}
