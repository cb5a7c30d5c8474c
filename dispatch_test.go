package declwin

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const dispatchTimeout = 5 * time.Second

// runDispatchLoop starts DispatchEvents on its own goroutine and
// returns a channel that closes when the loop exits.
func runDispatchLoop() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		DispatchEvents()
		close(done)
	}()
	return done
}

// awaitPosted posts a sentinel and blocks until the dispatch loop has
// run it, proving the loop is live before the test stops it.
func awaitPosted(t *testing.T) {
	t.Helper()
	ran := make(chan struct{})
	Post(func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(dispatchTimeout):
		t.Fatalf("dispatch loop never ran the posted sentinel")
	}
}

// --- Draining ---

func TestPost_DrainEventsRunsInOrder(t *testing.T) {
	var got []int
	Post(func() { got = append(got, 1) })
	Post(func() { got = append(got, 2) })
	Post(func() { got = append(got, 3) })

	DrainEvents()

	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("drained order mismatch (-want +got):\n%s", diff)
	}
}

func TestDrainEvents_EmptyQueue(t *testing.T) {
	// Must return immediately with nothing queued.
	DrainEvents()
}

// --- Blocking dispatch ---

func TestDispatchEvents_RunsPostedWorkUntilStopped(t *testing.T) {
	done := runDispatchLoop()

	var ran bool
	worked := make(chan struct{})
	Post(func() {
		ran = true
		close(worked)
	})

	select {
	case <-worked:
	case <-time.After(dispatchTimeout):
		t.Fatalf("posted function never ran")
	}

	StopDispatch()
	select {
	case <-done:
	case <-time.After(dispatchTimeout):
		t.Fatalf("DispatchEvents did not return after StopDispatch")
	}

	if !ran {
		t.Errorf("posted work did not run on the dispatch loop")
	}
}

func TestDispatchEvents_RestartsAfterStop(t *testing.T) {
	// Stopping discards the loop; the next DispatchEvents must start
	// a fresh one.
	for i := 0; i < 2; i++ {
		done := runDispatchLoop()
		awaitPosted(t)
		StopDispatch()
		select {
		case <-done:
		case <-time.After(dispatchTimeout):
			t.Fatalf("run %d: DispatchEvents did not return after StopDispatch", i)
		}
	}
}

func TestStopDispatch_Idempotent(t *testing.T) {
	done := runDispatchLoop()
	awaitPosted(t)

	StopDispatch()
	StopDispatch()

	select {
	case <-done:
	case <-time.After(dispatchTimeout):
		t.Fatalf("DispatchEvents did not return after StopDispatch")
	}
}

// --- Posting around a stop ---

func TestPost_AfterStopQueuesForNextLoop(t *testing.T) {
	// Create and stop a loop so the next Post targets a fresh one.
	Post(func() {})
	StopDispatch()

	var ran bool
	Post(func() { ran = true })
	DrainEvents()

	if !ran {
		t.Errorf("function posted after a stop did not run on the next loop")
	}
}
