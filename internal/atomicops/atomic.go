package atomicops

import (
	"sync/atomic"

	"github.com/hupe1980/rvfill/internal/isa"
)

// Primitive function pointers - set once at init, zero runtime overhead.
// The atomic implementations are the default; init downgrades to the plain
// path when the atomic extension is absent.
var (
	load32Impl  = load32Atomic
	load64Impl  = load64Atomic
	store32Impl = store32Atomic
	store64Impl = store64Atomic
	add32Impl   = add32Atomic
	add64Impl   = add64Atomic
	cas32Impl   = cas32Atomic
	cas64Impl   = cas64Atomic
)

func init() {
	if !isa.HasAtomicExt() {
		ForcePlain()
	}
}

// ForceAtomic routes all primitives through sync/atomic.
// Intended for tests that pin a path; production code relies on init.
func ForceAtomic() {
	load32Impl = load32Atomic
	load64Impl = load64Atomic
	store32Impl = store32Atomic
	store64Impl = store64Atomic
	add32Impl = add32Atomic
	add64Impl = add64Atomic
	cas32Impl = cas32Atomic
	cas64Impl = cas64Atomic
}

// ForcePlain routes all primitives through ordinary loads and stores.
// Only valid while a single goroutine touches the affected locations.
func ForcePlain() {
	load32Impl = load32Plain
	load64Impl = load64Plain
	store32Impl = store32Plain
	store64Impl = store64Plain
	add32Impl = add32Plain
	add64Impl = add64Plain
	cas32Impl = cas32Plain
	cas64Impl = cas64Plain
}

// Load32 returns *ptr with at least acquire semantics on the atomic path.
func Load32(ptr *uint32) uint32 { return load32Impl(ptr) }

// Load64 returns *ptr with at least acquire semantics on the atomic path.
func Load64(ptr *uint64) uint64 { return load64Impl(ptr) }

// Store32 writes value to *ptr with at least release semantics on the
// atomic path.
func Store32(ptr *uint32, value uint32) { store32Impl(ptr, value) }

// Store64 writes value to *ptr with at least release semantics on the
// atomic path.
func Store64(ptr *uint64, value uint64) { store64Impl(ptr, value) }

// Add32 atomically adds delta to *ptr and returns the value *ptr held
// before the addition.
func Add32(ptr *uint32, delta uint32) uint32 { return add32Impl(ptr, delta) }

// Add64 atomically adds delta to *ptr and returns the value *ptr held
// before the addition.
func Add64(ptr *uint64, delta uint64) uint64 { return add64Impl(ptr, delta) }

// CompareAndSwap32 writes desired to *ptr iff *ptr == expected, evaluated
// atomically, and reports whether the swap happened. On failure the
// location is left unchanged. A false result is an ordinary outcome under
// contention, never an error; callers own any retry loop.
func CompareAndSwap32(ptr *uint32, expected, desired uint32) bool {
	return cas32Impl(ptr, expected, desired)
}

// CompareAndSwap64 is the 64-bit variant of CompareAndSwap32.
func CompareAndSwap64(ptr *uint64, expected, desired uint64) bool {
	return cas64Impl(ptr, expected, desired)
}

func load32Atomic(ptr *uint32) uint32 { return atomic.LoadUint32(ptr) }
func load64Atomic(ptr *uint64) uint64 { return atomic.LoadUint64(ptr) }

func store32Atomic(ptr *uint32, value uint32) { atomic.StoreUint32(ptr, value) }
func store64Atomic(ptr *uint64, value uint64) { atomic.StoreUint64(ptr, value) }

func add32Atomic(ptr *uint32, delta uint32) uint32 { return atomic.AddUint32(ptr, delta) - delta }
func add64Atomic(ptr *uint64, delta uint64) uint64 { return atomic.AddUint64(ptr, delta) - delta }

// The hardware compare-and-swap is a single bounded attempt: the underlying
// load-reserve/store-conditional loop retries only on reservation loss, not
// on comparison failure.
func cas32Atomic(ptr *uint32, expected, desired uint32) bool {
	return atomic.CompareAndSwapUint32(ptr, expected, desired)
}

func cas64Atomic(ptr *uint64, expected, desired uint64) bool {
	return atomic.CompareAndSwapUint64(ptr, expected, desired)
}

func load32Plain(ptr *uint32) uint32 { return *ptr }
func load64Plain(ptr *uint64) uint64 { return *ptr }

func store32Plain(ptr *uint32, value uint32) { *ptr = value }
func store64Plain(ptr *uint64, value uint64) { *ptr = value }

func add32Plain(ptr *uint32, delta uint32) uint32 {
	old := *ptr
	*ptr = old + delta
	return old
}

func add64Plain(ptr *uint64, delta uint64) uint64 {
	old := *ptr
	*ptr = old + delta
	return old
}

func cas32Plain(ptr *uint32, expected, desired uint32) bool {
	if *ptr == expected {
		*ptr = desired
		return true
	}
	return false
}

func cas64Plain(ptr *uint64, expected, desired uint64) bool {
	if *ptr == expected {
		*ptr = desired
		return true
	}
	return false
}
