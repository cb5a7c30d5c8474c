package declwin

import (
	"fmt"
	"sync"
	"time"
)

// AnimationTimer raises OnTimerTick at a fixed interval. The ticker
// runs on a background goroutine but every event is posted to the
// dispatch loop, so handlers always run on the UI goroutine and may
// touch controls and layouts freely.
type AnimationTimer struct {
	handle   Handle
	interval time.Duration
	maxTick  uint32
	lifetime time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

// Handle returns the timer's handle. Tick events carry it as their
// source.
func (t *AnimationTimer) Handle() Handle { return t.handle }

// IsActive reports whether the timer is ticking.
func (t *AnimationTimer) IsActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Start begins ticking. Starting an active timer does nothing.
func (t *AnimationTimer) Start() {
	t.mu.Lock()
	if t.running || !t.handle.Valid() {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})
	stop := t.stopCh
	t.mu.Unlock()
	go t.run(stop)
}

// Stop ends the current run and raises OnTimerStop once. Stopping an
// inactive timer does nothing.
func (t *AnimationTimer) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.stopCh)
	t.mu.Unlock()

	h := t.handle
	Post(func() { raiseEvent(h, OnTimerStop, EventData{}) })
}

// Close stops the timer and releases its handle. The timer cannot be
// restarted afterwards.
func (t *AnimationTimer) Close() {
	t.Stop()
	if t.handle.Valid() {
		activeBackend().destroy(t.handle)
		t.handle = 0
	}
}

func (t *AnimationTimer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if t.lifetime > 0 {
		deadline = time.After(t.lifetime)
	}

	var tick uint32
	for {
		select {
		case <-stop:
			return
		case <-deadline:
			t.Stop()
			return
		case <-ticker.C:
			tick++
			n := tick
			h := t.handle
			Post(func() { raiseEvent(h, OnTimerTick, EventData{Tick: n}) })
			if t.maxTick > 0 && tick >= t.maxTick {
				t.Stop()
				return
			}
		}
	}
}

// AnimationTimerBuilder assembles an AnimationTimer.
type AnimationTimerBuilder struct {
	interval time.Duration
	maxTick  uint32
	lifetime time.Duration
	active   bool
	parent   Handle
}

// NewAnimationTimerBuilder returns a builder ticking at 60 per
// second, inactive until started.
func NewAnimationTimerBuilder() *AnimationTimerBuilder {
	return &AnimationTimerBuilder{interval: time.Second / 60}
}

// Interval sets the time between ticks.
func (b *AnimationTimerBuilder) Interval(d time.Duration) *AnimationTimerBuilder {
	b.interval = d
	return b
}

// MaxTick stops the timer after n ticks. Zero means unlimited.
func (b *AnimationTimerBuilder) MaxTick(n uint32) *AnimationTimerBuilder {
	b.maxTick = n
	return b
}

// Lifetime stops the timer after a total duration. Zero means
// unlimited.
func (b *AnimationTimerBuilder) Lifetime(d time.Duration) *AnimationTimerBuilder {
	b.lifetime = d
	return b
}

// Active starts the timer as soon as it is built.
func (b *AnimationTimerBuilder) Active(v bool) *AnimationTimerBuilder {
	b.active = v
	return b
}

// Parent sets the window whose handlers receive the timer's events.
// Required.
func (b *AnimationTimerBuilder) Parent(p Parent) *AnimationTimerBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Build creates the timer and binds it to out.
func (b *AnimationTimerBuilder) Build(out *AnimationTimer) error {
	if out == nil {
		return fmt.Errorf("AnimationTimer build target is nil")
	}
	if !b.parent.Valid() {
		return fmt.Errorf("AnimationTimer requires a parent")
	}
	if b.interval <= 0 {
		return fmt.Errorf("AnimationTimer interval %v is not positive", b.interval)
	}
	h, err := activeBackend().create("AnimationTimer", b.parent, 0)
	if err != nil {
		return fmt.Errorf("creating AnimationTimer: %w", err)
	}
	out.handle = h
	out.interval = b.interval
	out.maxTick = b.maxTick
	out.lifetime = b.lifetime
	if b.active {
		out.Start()
	}
	return nil
}
