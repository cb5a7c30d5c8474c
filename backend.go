package declwin

import (
	"fmt"
	"sync"
)

// boundsChange is one deferred child move inside a batch.
type boundsChange struct {
	handle Handle
	rect   Rect
}

// FontSpec describes a font resource to the backend.
type FontSpec struct {
	Family string
	Size   int
	Weight int
	Italic bool
}

// backend is the windowing seam. The in-memory implementation backs
// tests and headless use; Init swaps in the native implementation on
// platforms that have one.
type backend interface {
	// create makes a native object of the given control class. flags
	// carries the control's flag bits so native style can be derived;
	// visibility and enablement are still applied separately.
	create(class string, parent Handle, flags uint32) (Handle, error)
	destroy(h Handle)
	parent(h Handle) Handle
	bounds(h Handle) Rect
	setBounds(h Handle, r Rect)
	// applyDeferred applies a batch of child rectangles and only then
	// raises resize notifications, so one layout pass cannot re-enter
	// itself through its own child moves.
	applyDeferred(changes []boundsChange)
	text(h Handle) string
	setText(h Handle, s string)
	placeholder(h Handle) string
	setPlaceholder(h Handle, s string)
	textAlign(h Handle) (HAlign, VAlign)
	setTextAlign(h Handle, ha HAlign, va VAlign)
	visible(h Handle) bool
	setVisible(h Handle, v bool)
	enabled(h Handle) bool
	setEnabled(h Handle, v bool)
	setFocus(h Handle)
	focused(h Handle) bool
	checkState(h Handle) CheckState
	setCheckState(h Handle, s CheckState)
	createFont(spec FontSpec) (Handle, error)
	setFont(h Handle, font Handle)
	font(h Handle) Handle
}

var (
	backendMu sync.RWMutex
	active    backend = newMemoryBackend()
)

func activeBackend() backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return active
}

// Init selects the native windowing backend when the platform has
// one. Without it the in-memory backend stays active, which is enough
// for headless operation and tests. Init is safe to call more than
// once.
func Init() error {
	nb, ok, err := platformBackend()
	if err != nil {
		return fmt.Errorf("initializing native backend: %w", err)
	}
	if !ok {
		return nil
	}
	backendMu.Lock()
	active = nb
	backendMu.Unlock()
	return nil
}

// memWindow is one live object in the in-memory backend.
type memWindow struct {
	class       string
	parent      Handle
	children    []Handle
	rect        Rect
	text        string
	placeholder string
	hAlign      HAlign
	vAlign      VAlign
	visible     bool
	enabled     bool
	check       CheckState
	font        Handle
}

// memoryBackend keeps the whole window tree in ordinary maps. All
// calls happen on the dispatch goroutine; the mutex covers tests that
// build fixtures before starting a loop.
type memoryBackend struct {
	mu      sync.Mutex
	seq     Handle
	windows map[Handle]*memWindow
	fonts   map[Handle]FontSpec
	focus   Handle
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{
		windows: map[Handle]*memWindow{},
		fonts:   map[Handle]FontSpec{},
	}
}

func (m *memoryBackend) create(class string, parent Handle, _ uint32) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if parent.Valid() {
		p, ok := m.windows[parent]
		if !ok {
			return 0, fmt.Errorf("parent handle %#x is not a live control", uintptr(parent))
		}
		m.seq++
		h := m.seq
		m.windows[h] = &memWindow{class: class, parent: parent, visible: true, enabled: true}
		p.children = append(p.children, h)
		return h, nil
	}
	m.seq++
	h := m.seq
	m.windows[h] = &memWindow{class: class, visible: true, enabled: true}
	return h, nil
}

func (m *memoryBackend) destroy(h Handle) {
	m.mu.Lock()
	w, ok := m.windows[h]
	if !ok {
		m.mu.Unlock()
		return
	}
	subtree := m.collect(h)
	if w.parent.Valid() {
		if p, ok := m.windows[w.parent]; ok {
			for i, c := range p.children {
				if c == h {
					p.children = append(p.children[:i], p.children[i+1:]...)
					break
				}
			}
		}
	}
	for _, s := range subtree {
		delete(m.windows, s)
	}
	m.mu.Unlock()

	for _, s := range subtree {
		dropHandlers(s)
	}
}

// collect returns h and all its descendants. Caller holds the lock.
func (m *memoryBackend) collect(h Handle) []Handle {
	out := []Handle{h}
	for i := 0; i < len(out); i++ {
		if w, ok := m.windows[out[i]]; ok {
			out = append(out, w.children...)
		}
	}
	return out
}

func (m *memoryBackend) parent(h Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.parent
	}
	return 0
}

func (m *memoryBackend) bounds(h Handle) Rect {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.rect
	}
	return Rect{}
}

func (m *memoryBackend) setBounds(h Handle, r Rect) {
	m.mu.Lock()
	w, ok := m.windows[h]
	if !ok {
		m.mu.Unlock()
		return
	}
	old := w.rect
	w.rect = r
	m.mu.Unlock()

	if old.W != r.W || old.H != r.H {
		raiseEvent(h, OnResize, EventData{Size: Size{W: r.W, H: r.H}})
	}
	if old.X != r.X || old.Y != r.Y {
		raiseEvent(h, OnMove, EventData{Pos: Point{X: r.X, Y: r.Y}})
	}
}

func (m *memoryBackend) applyDeferred(changes []boundsChange) {
	type note struct {
		handle  Handle
		resized bool
		moved   bool
		rect    Rect
	}
	notes := make([]note, 0, len(changes))

	m.mu.Lock()
	for _, ch := range changes {
		w, ok := m.windows[ch.handle]
		if !ok {
			continue
		}
		old := w.rect
		w.rect = ch.rect
		notes = append(notes, note{
			handle:  ch.handle,
			resized: old.W != ch.rect.W || old.H != ch.rect.H,
			moved:   old.X != ch.rect.X || old.Y != ch.rect.Y,
			rect:    ch.rect,
		})
	}
	m.mu.Unlock()

	for _, n := range notes {
		if n.resized {
			raiseEvent(n.handle, OnResize, EventData{Size: Size{W: n.rect.W, H: n.rect.H}})
		}
		if n.moved {
			raiseEvent(n.handle, OnMove, EventData{Pos: Point{X: n.rect.X, Y: n.rect.Y}})
		}
	}
}

func (m *memoryBackend) text(h Handle) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.text
	}
	return ""
}

func (m *memoryBackend) setText(h Handle, s string) {
	m.mu.Lock()
	w, ok := m.windows[h]
	if ok {
		w.text = s
	}
	class := ""
	if ok {
		class = w.class
	}
	m.mu.Unlock()

	if class == "TextInput" {
		raiseEvent(h, OnTextInput, EventData{Text: s})
	}
}

func (m *memoryBackend) placeholder(h Handle) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.placeholder
	}
	return ""
}

func (m *memoryBackend) setPlaceholder(h Handle, s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		w.placeholder = s
	}
}

func (m *memoryBackend) textAlign(h Handle) (HAlign, VAlign) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.hAlign, w.vAlign
	}
	return AlignLeft, AlignTop
}

func (m *memoryBackend) setTextAlign(h Handle, ha HAlign, va VAlign) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		w.hAlign = ha
		w.vAlign = va
	}
}

func (m *memoryBackend) visible(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.visible
	}
	return false
}

func (m *memoryBackend) setVisible(h Handle, v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		w.visible = v
	}
}

func (m *memoryBackend) enabled(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.enabled
	}
	return false
}

func (m *memoryBackend) setEnabled(h Handle, v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		w.enabled = v
	}
}

func (m *memoryBackend) setFocus(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.windows[h]; ok {
		m.focus = h
	}
}

func (m *memoryBackend) focused(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focus == h && h.Valid()
}

func (m *memoryBackend) checkState(h Handle) CheckState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.check
	}
	return Unchecked
}

func (m *memoryBackend) setCheckState(h Handle, s CheckState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		w.check = s
	}
}

func (m *memoryBackend) createFont(spec FontSpec) (Handle, error) {
	if spec.Family == "" {
		return 0, fmt.Errorf("font family is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	h := m.seq
	m.fonts[h] = spec
	return h, nil
}

func (m *memoryBackend) setFont(h Handle, font Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		w.font = font
	}
}

func (m *memoryBackend) font(h Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.windows[h]; ok {
		return w.font
	}
	return 0
}
