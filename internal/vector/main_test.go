package vector

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/hupe1980/rvfill/internal/isa"
)

// TestMain runs before all tests and prints ISA diagnostic information.
// This helps CI identify which kernel strategy is actually being used.
func TestMain(m *testing.M) {
	fmt.Printf("=== Kernel ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("RVFILL_ISA=%q\n", os.Getenv("RVFILL_ISA"))
	fmt.Printf("Active ISA: %s\n", isa.ActiveISA())
	fmt.Printf("Override: %v\n", isa.IsOverridden())
	fmt.Printf("Extensions: atomic=%v vector=%v bitmanip=%v\n",
		isa.HasAtomicExt(), isa.HasVectorExt(), isa.HasBitmanipExt())
	fmt.Printf("==============================\n\n")

	os.Exit(m.Run())
}
