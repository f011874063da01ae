package nextstep_test

import (
	"sync"
	"testing"
	"time"

	"nextstep-go/internal/nextstep"
	"nextstep-go/internal/testutil"
)

func TestProgressSimulator_Current(t *testing.T) {
	clock := testutil.FixedClock()
	sim := nextstep.NewProgressSimulator(clock, nextstep.DefaultProgressInterval, nil)

	if got := sim.Current(); got != 0 {
		t.Errorf("Current() before Start = %d, want 0", got)
	}

	sim.Start(10 * time.Second)

	if got := sim.Current(); got != 0 {
		t.Errorf("Current() at start = %d, want 0", got)
	}

	clock.Advance(5 * time.Second)
	if got := sim.Current(); got != 50 {
		t.Errorf("Current() at half = %d, want 50", got)
	}

	clock.Advance(4 * time.Second)
	if got := sim.Current(); got != 89 {
		t.Errorf("Current() at 9s = %d, want 89", got)
	}
}

func TestProgressSimulator_CapsAt99(t *testing.T) {
	clock := testutil.FixedClock()
	sim := nextstep.NewProgressSimulator(clock, nextstep.DefaultProgressInterval, nil)
	sim.Start(10 * time.Second)

	// Long past the estimated duration the simulator holds at 99: it
	// never claims done while the real operation is still running.
	clock.Advance(10 * time.Minute)
	if got := sim.Current(); got != 99 {
		t.Errorf("Current() past duration = %d, want 99", got)
	}
}

func TestProgressSimulator_Monotonic(t *testing.T) {
	clock := testutil.FixedClock()
	sim := nextstep.NewProgressSimulator(clock, nextstep.DefaultProgressInterval, nil)
	sim.Start(3 * time.Second)

	last := -1
	for i := 0; i < 40; i++ {
		got := sim.Current()
		if got < last {
			t.Fatalf("progress went backwards: %d after %d", got, last)
		}
		last = got
		clock.Advance(100 * time.Millisecond)
	}
}

func TestProgressSimulator_Complete(t *testing.T) {
	clock := testutil.FixedClock()
	// The ticker goroutine fires the callback too, so access is guarded.
	var mu sync.Mutex
	var notified []int
	sim := nextstep.NewProgressSimulator(clock, nextstep.DefaultProgressInterval, func(p int) {
		mu.Lock()
		notified = append(notified, p)
		mu.Unlock()
	})

	sim.Start(10 * time.Second)
	clock.Advance(2 * time.Second)
	sim.Complete()

	if got := sim.Current(); got != 100 {
		t.Errorf("Current() after Complete = %d, want 100", got)
	}
	mu.Lock()
	last := -1
	if len(notified) > 0 {
		last = notified[len(notified)-1]
	}
	mu.Unlock()
	if last != 100 {
		t.Errorf("expected a final notification of 100, got %d", last)
	}

	// Completion is pinned: the clock moving on changes nothing.
	clock.Advance(time.Hour)
	if got := sim.Current(); got != 100 {
		t.Errorf("Current() long after Complete = %d, want 100", got)
	}
}

func TestProgressSimulator_Reset(t *testing.T) {
	clock := testutil.FixedClock()
	sim := nextstep.NewProgressSimulator(clock, nextstep.DefaultProgressInterval, nil)

	sim.Start(10 * time.Second)
	clock.Advance(7 * time.Second)
	sim.Reset()

	if got := sim.Current(); got != 0 {
		t.Errorf("Current() after Reset = %d, want 0", got)
	}

	// A reset simulator can start a fresh run.
	sim.Start(10 * time.Second)
	clock.Advance(5 * time.Second)
	if got := sim.Current(); got != 50 {
		t.Errorf("Current() after restart = %d, want 50", got)
	}
}

func TestProgressSimulator_RestartAfterComplete(t *testing.T) {
	clock := testutil.FixedClock()
	sim := nextstep.NewProgressSimulator(clock, nextstep.DefaultProgressInterval, nil)

	sim.Start(10 * time.Second)
	sim.Complete()
	sim.Start(10 * time.Second)

	if got := sim.Current(); got != 0 {
		t.Errorf("Current() after restart = %d, want 0", got)
	}
}
