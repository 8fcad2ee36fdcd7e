package testkit

import (
	"sync"
	"testing"
)

// seams are package-level vars, so tests that swap them must not overlap
var seamMu sync.Mutex

// Swap replaces *target for the rest of the test and returns the previous value
// so the replacement can delegate to it. The original is restored on cleanup.
func Swap[T any](t *testing.T, target *T, replacement T) (orig T) {
	t.Helper()
	orig = *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
	return orig
}

// Serial holds a process-wide lock until the test ends
// Call it before Swap in any test that touches a shared seam
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
