package declwin

import "fmt"

// Window is a top-level window. Every UI graph needs at least one;
// generated build functions create it first and bind the unit's event
// handler to it.
type Window struct {
	ControlBase
}

// Text returns the title bar text.
func (w *Window) Text() string { return activeBackend().text(w.handle) }

// SetText replaces the title bar text.
func (w *Window) SetText(s string) { activeBackend().setText(w.handle, s) }

// Close asks the window to close by raising OnWindowClose. The window
// is not destroyed; a handler deciding to quit calls StopDispatch.
func (w *Window) Close() {
	raiseEvent(w.handle, OnWindowClose, EventData{})
}

// WindowBuilder assembles a Window.
type WindowBuilder struct {
	title    string
	size     Size
	position Point
	flags    WindowFlags
	hasFlags bool
	parent   Handle
}

// NewWindowBuilder returns a builder with the stock top-level
// decoration.
func NewWindowBuilder() *WindowBuilder {
	return &WindowBuilder{
		title:    "New Window",
		size:     Size{W: 500, H: 500},
		position: Point{X: 300, Y: 300},
	}
}

// Title sets the title bar text.
func (b *WindowBuilder) Title(s string) *WindowBuilder { b.title = s; return b }

// Size sets the initial outer size.
func (b *WindowBuilder) Size(s Size) *WindowBuilder { b.size = s; return b }

// Position sets the initial screen position.
func (b *WindowBuilder) Position(p Point) *WindowBuilder { b.position = p; return b }

// Flags replaces the default MainWindow|Visible style.
func (b *WindowBuilder) Flags(f WindowFlags) *WindowBuilder {
	b.flags = f
	b.hasFlags = true
	return b
}

// Parent makes the window owned by another window. Owned windows stay
// above their owner but are still top-level.
func (b *WindowBuilder) Parent(p Parent) *WindowBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Build creates the window and binds it to out.
func (b *WindowBuilder) Build(out *Window) error {
	if out == nil {
		return fmt.Errorf("Window build target is nil")
	}
	flags := WindowFlagMainWindow | WindowFlagVisible
	if b.hasFlags {
		flags = b.flags
	}
	h, err := activeBackend().create("Window", b.parent, uint32(flags))
	if err != nil {
		return fmt.Errorf("creating Window: %w", err)
	}
	out.handle = h
	be := activeBackend()
	be.setText(h, b.title)
	be.setBounds(h, Rect{X: b.position.X, Y: b.position.Y, W: b.size.W, H: b.size.H})
	be.setVisible(h, flags&WindowFlagVisible != 0)
	be.setEnabled(h, flags&WindowFlagDisabled == 0)
	return nil
}

// MessageWindow is an invisible top-level window used purely as an
// event sink, for applications without visible UI of their own.
type MessageWindow struct {
	ControlBase
}

// MessageWindowBuilder assembles a MessageWindow.
type MessageWindowBuilder struct{}

// NewMessageWindowBuilder returns a builder. MessageWindow has no
// configurable properties.
func NewMessageWindowBuilder() *MessageWindowBuilder {
	return &MessageWindowBuilder{}
}

// Build creates the message window and binds it to out.
func (b *MessageWindowBuilder) Build(out *MessageWindow) error {
	if out == nil {
		return fmt.Errorf("MessageWindow build target is nil")
	}
	h, err := activeBackend().create("MessageWindow", 0, 0)
	if err != nil {
		return fmt.Errorf("creating MessageWindow: %w", err)
	}
	out.handle = h
	activeBackend().setVisible(h, false)
	return nil
}
