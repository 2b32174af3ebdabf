package randutil

import (
	"testing"
	"time"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("draw %d diverged: %d != %d", i, av, bv)
		}
	}
}

func TestNewSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same == 100 {
		t.Error("adjacent seeds produced identical streams")
	}
}

func TestForRunReproducible(t *testing.T) {
	a := ForRun("table-7", 3)
	b := ForRun("table-7", 3)
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("draw %d diverged: %d != %d", i, av, bv)
		}
	}
}

func TestForRunAttemptsIndependent(t *testing.T) {
	a := ForRun("table-7", 0)
	b := ForRun("table-7", 1)
	if a.Uint64() == b.Uint64() && a.Uint64() == b.Uint64() {
		t.Error("consecutive attempts produced the same stream")
	}
}

func TestForRunEmptySeedVaries(t *testing.T) {
	// Time-mixed seeds should essentially never collide on the first
	// draw across calls.
	a := ForRun("", 0)
	time.Sleep(time.Millisecond)
	b := ForRun("", 0)
	if a.Uint64() == b.Uint64() && a.Uint64() == b.Uint64() && a.Uint64() == b.Uint64() {
		t.Error("empty-seed streams unexpectedly identical")
	}
}
