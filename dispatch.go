package declwin

import "sync"

// eventLoop is one run of the dispatch loop. Stopping a loop discards
// it; the next DispatchEvents starts a fresh one, so modal-style
// nested dispatch works.
type eventLoop struct {
	queue    chan func()
	stop     chan struct{}
	stopOnce sync.Once
}

const eventQueueSize = 256

var (
	loopMu sync.Mutex
	loop   *eventLoop
)

func currentLoop() *eventLoop {
	loopMu.Lock()
	defer loopMu.Unlock()
	if loop == nil {
		loop = &eventLoop{
			queue: make(chan func(), eventQueueSize),
			stop:  make(chan struct{}),
		}
	}
	return loop
}

// nativePump is implemented by backends that own the platform message
// loop. DispatchEvents hands the loop over so queued functions and
// native messages interleave on one thread.
type nativePump interface {
	pump(l *eventLoop)
}

// nativeWaker is implemented by backends whose pump blocks in a
// platform wait and needs a nudge when the queue gains work.
type nativeWaker interface {
	wake()
}

// drainQueue runs every queued function without blocking.
func (l *eventLoop) drainQueue() {
	for {
		select {
		case fn := <-l.queue:
			fn()
		default:
			return
		}
	}
}

// stopped reports whether StopDispatch has been called on this loop.
func (l *eventLoop) stopped() bool {
	select {
	case <-l.stop:
		return true
	default:
		return false
	}
}

// DispatchEvents runs the UI event loop on the calling goroutine.
// It blocks until StopDispatch is called. All control and layout
// mutation must happen on this goroutine; background work hands
// results over with Post.
func DispatchEvents() {
	l := currentLoop()
	if p, ok := activeBackend().(nativePump); ok {
		p.pump(l)
		return
	}
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.stop:
			return
		}
	}
}

// StopDispatch stops the running dispatch loop. Safe to call from any
// goroutine and idempotent.
func StopDispatch() {
	loopMu.Lock()
	l := loop
	loop = nil
	loopMu.Unlock()
	if l != nil {
		l.stopOnce.Do(func() { close(l.stop) })
		if w, ok := activeBackend().(nativeWaker); ok {
			w.wake()
		}
	}
}

// DrainEvents runs every queued function and returns without
// blocking. Headless programs and tests use it in place of
// DispatchEvents to process posted work synchronously.
func DrainEvents() {
	currentLoop().drainQueue()
}

// Post queues fn to run on the dispatch loop. Safe to call from any
// goroutine. If the loop has been stopped the function is dropped.
func Post(fn func()) {
	l := currentLoop()
	select {
	case l.queue <- fn:
		if w, ok := activeBackend().(nativeWaker); ok {
			w.wake()
		}
	case <-l.stop:
	}
}
