package declwin

import "sync"

// Event identifies what happened to a control.
type Event int

const (
	// OnInit is raised once on a top-level window after its whole
	// build function has run.
	OnInit Event = iota + 1

	// OnWindowClose is raised when a window is asked to close.
	OnWindowClose

	// OnResize is raised after a control's size changed. EventData
	// carries the new size.
	OnResize

	// OnMove is raised after a control's position changed. EventData
	// carries the new position.
	OnMove

	// OnButtonClick is raised by buttons and check boxes.
	OnButtonClick

	// OnTextInput is raised when a TextInput's text changes.
	OnTextInput

	// OnTabChanged is raised when a TabsContainer selects another tab.
	OnTabChanged

	// OnTimerTick is raised by an AnimationTimer on each interval.
	// EventData carries the tick counter.
	OnTimerTick

	// OnTimerStop is raised when an AnimationTimer reaches its max
	// tick count or is stopped.
	OnTimerStop
)

var eventNames = map[Event]string{
	OnInit:        "OnInit",
	OnWindowClose: "OnWindowClose",
	OnResize:      "OnResize",
	OnMove:        "OnMove",
	OnButtonClick: "OnButtonClick",
	OnTextInput:   "OnTextInput",
	OnTabChanged:  "OnTabChanged",
	OnTimerTick:   "OnTimerTick",
	OnTimerStop:   "OnTimerStop",
}

// String returns the event's constant name.
func (e Event) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}
	return "Event(?)"
}

// EventData carries the payload of an event. Only the fields relevant
// to the event are set.
type EventData struct {
	Size Size   // OnResize
	Pos  Point  // OnMove
	Text string // OnTextInput
	Tick uint32 // OnTimerTick
}

// EventHandler identifies one bound handler so it can be unbound.
type EventHandler struct {
	owner Handle
	id    uint64
}

type boundHandler struct {
	id uint64
	fn func(Event, EventData, Handle)
}

var (
	handlersMu sync.Mutex
	handlers   = map[Handle][]boundHandler{}
	handlerSeq uint64
)

// BindEventHandler registers fn for every event raised on owner or on
// any of its descendants. Handlers bound to the same owner run in
// binding order. The generated build functions bind one handler per
// top-level window.
func BindEventHandler(owner Handle, fn func(evt Event, data EventData, src Handle)) *EventHandler {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlerSeq++
	handlers[owner] = append(handlers[owner], boundHandler{id: handlerSeq, fn: fn})
	return &EventHandler{owner: owner, id: handlerSeq}
}

// UnbindEventHandler removes a handler returned by BindEventHandler.
// Unbinding twice is a no-op.
func UnbindEventHandler(h *EventHandler) {
	if h == nil {
		return
	}
	handlersMu.Lock()
	defer handlersMu.Unlock()
	bound := handlers[h.owner]
	for i := range bound {
		if bound[i].id == h.id {
			handlers[h.owner] = append(bound[:i:i], bound[i+1:]...)
			break
		}
	}
	if len(handlers[h.owner]) == 0 {
		delete(handlers, h.owner)
	}
}

// raiseEvent delivers evt to the handlers of src and of every ancestor
// of src, innermost first. The handler list is snapshotted so handlers
// may bind or unbind during delivery.
func raiseEvent(src Handle, evt Event, data EventData) {
	be := activeBackend()

	var fns []func(Event, EventData, Handle)
	handlersMu.Lock()
	for h := src; h.Valid(); h = be.parent(h) {
		for _, b := range handlers[h] {
			fns = append(fns, b.fn)
		}
	}
	handlersMu.Unlock()

	for _, fn := range fns {
		fn(evt, data, src)
	}
}

// dropHandlers removes all handlers bound to h. Called on destroy.
func dropHandlers(h Handle) {
	handlersMu.Lock()
	delete(handlers, h)
	handlersMu.Unlock()
}
