package nextstep

import (
	"math"
	"sync"
	"time"
)

// DefaultProgressInterval is how often a running simulator notifies its
// observer.
const DefaultProgressInterval = 300 * time.Millisecond

// ProgressSimulator produces a synthetic progress percentage while a
// long-running backend operation is in flight. The real duration is
// unknown, so the simulator climbs toward 99 over an estimated duration
// and holds there; only an explicit Complete moves it to 100. That way it
// never claims "done" before the real result arrives.
//
// Progress is derived from the clock on demand; the periodic tick exists
// only to drive the observer callback. The simulator itself cannot fail.
type ProgressSimulator struct {
	clock    Clock
	interval time.Duration
	onChange func(percent int)

	mu        sync.Mutex
	started   bool
	completed bool
	startAt   time.Time
	duration  time.Duration
	stop      chan struct{}
}

// NewProgressSimulator creates a simulator. onChange may be nil; when set
// it is invoked from the tick goroutine with the current percentage.
func NewProgressSimulator(clock Clock, interval time.Duration, onChange func(int)) *ProgressSimulator {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &ProgressSimulator{
		clock:    clock,
		interval: interval,
		onChange: onChange,
	}
}

// Start begins a simulated run over the estimated duration.
// Any previous run is discarded.
func (p *ProgressSimulator) Start(duration time.Duration) {
	p.mu.Lock()
	p.stopLocked()
	p.started = true
	p.completed = false
	p.startAt = p.clock.Now()
	p.duration = duration

	var stop chan struct{}
	if p.onChange != nil {
		stop = make(chan struct{})
		p.stop = stop
	}
	p.mu.Unlock()

	if stop != nil {
		go p.tick(stop)
	}
}

// Complete stops the tick and pins progress at exactly 100.
func (p *ProgressSimulator) Complete() {
	p.mu.Lock()
	p.stopLocked()
	p.started = true
	p.completed = true
	p.mu.Unlock()

	if p.onChange != nil {
		p.onChange(100)
	}
}

// Reset stops the tick and returns progress to 0.
func (p *ProgressSimulator) Reset() {
	p.mu.Lock()
	p.stopLocked()
	p.started = false
	p.completed = false
	p.mu.Unlock()
}

// Current returns the present progress percentage in 0..100.
// Before Complete it never exceeds 99, regardless of elapsed time.
func (p *ProgressSimulator) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.completed {
		return 100
	}
	if !p.started {
		return 0
	}

	elapsed := p.clock.Now().Sub(p.startAt)
	if p.duration <= 0 || elapsed >= p.duration {
		return 99
	}
	percent := int(math.Round(float64(elapsed) / float64(p.duration) * 99))
	if percent > 99 {
		percent = 99
	}
	if percent < 0 {
		percent = 0
	}
	return percent
}

// stopLocked cancels a running tick goroutine. Callers must hold mu.
func (p *ProgressSimulator) stopLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

func (p *ProgressSimulator) tick(stop chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.onChange(p.Current())
		}
	}
}
