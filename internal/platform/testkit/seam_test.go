package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	connID     = func() string { return "random" }
	chunkLimit = 255
)

func TestSwapRestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		orig := Swap(t, &connID, func() string { return "fixed" })
		if got := connID(); got != "fixed" {
			t.Fatalf("connID() = %q after swap", got)
		}
		if got := orig(); got != "random" {
			t.Fatalf("returned original = %q", got)
		}
	})
	if got := connID(); got != "random" {
		t.Fatalf("connID() = %q after cleanup", got)
	}

	t.Run("value", func(t *testing.T) {
		Swap(t, &chunkLimit, 1)
		if chunkLimit != 1 {
			t.Fatalf("chunkLimit = %d", chunkLimit)
		}
	})
	if chunkLimit != 255 {
		t.Fatalf("chunkLimit = %d after cleanup", chunkLimit)
	}
}

func TestSerialDoesNotInterleave(t *testing.T) {
	var (
		mu  sync.Mutex
		log []string
	)
	mark := func(s string) {
		mu.Lock()
		log = append(log, s)
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				mark(name + "+")
				time.Sleep(20 * time.Millisecond)
				mark(name + "-")
			})
		}
	})

	if len(log) != 4 {
		t.Fatalf("log = %v", log)
	}
	// each start must be immediately followed by its own end
	for i := 0; i < 4; i += 2 {
		if log[i][:1] != log[i+1][:1] || log[i][1] != '+' || log[i+1][1] != '-' {
			t.Fatalf("interleaved: %v", log)
		}
	}
}
