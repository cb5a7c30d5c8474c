package declwin

import "fmt"

// Button is a push button. Pressing it raises OnButtonClick on the
// button's handle.
type Button struct {
	ControlBase
}

// Text returns the caption.
func (b *Button) Text() string { return activeBackend().text(b.handle) }

// SetText replaces the caption.
func (b *Button) SetText(s string) { activeBackend().setText(b.handle, s) }

// Click raises OnButtonClick as if the user pressed the button.
func (b *Button) Click() {
	raiseEvent(b.handle, OnButtonClick, EventData{})
}

// ButtonBuilder assembles a Button.
type ButtonBuilder struct {
	text     string
	size     Size
	position Point
	flags    ButtonFlags
	hasFlags bool
	font     *Font
	focus    bool
	parent   Handle
}

// NewButtonBuilder returns a builder with the default caption and
// size.
func NewButtonBuilder() *ButtonBuilder {
	return &ButtonBuilder{text: "Button", size: Size{W: 100, H: 25}}
}

// Text sets the caption.
func (b *ButtonBuilder) Text(s string) *ButtonBuilder { b.text = s; return b }

// Size sets the initial size.
func (b *ButtonBuilder) Size(s Size) *ButtonBuilder { b.size = s; return b }

// Position sets the initial position within the parent.
func (b *ButtonBuilder) Position(p Point) *ButtonBuilder { b.position = p; return b }

// Flags replaces the default Visible style.
func (b *ButtonBuilder) Flags(f ButtonFlags) *ButtonBuilder {
	b.flags = f
	b.hasFlags = true
	return b
}

// Font sets the caption font.
func (b *ButtonBuilder) Font(f *Font) *ButtonBuilder { b.font = f; return b }

// Focus gives the button keyboard focus once built.
func (b *ButtonBuilder) Focus(v bool) *ButtonBuilder { b.focus = v; return b }

// Parent sets the container the button is created under. Required.
func (b *ButtonBuilder) Parent(p Parent) *ButtonBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Build creates the button and binds it to out.
func (b *ButtonBuilder) Build(out *Button) error {
	if out == nil {
		return fmt.Errorf("Button build target is nil")
	}
	if !b.parent.Valid() {
		return fmt.Errorf("Button %q requires a parent", b.text)
	}
	flags := ButtonFlagVisible
	if b.hasFlags {
		flags = b.flags
	}
	h, err := activeBackend().create("Button", b.parent, uint32(flags))
	if err != nil {
		return fmt.Errorf("creating Button: %w", err)
	}
	out.handle = h
	be := activeBackend()
	be.setText(h, b.text)
	be.setBounds(h, Rect{X: b.position.X, Y: b.position.Y, W: b.size.W, H: b.size.H})
	be.setVisible(h, flags&ButtonFlagVisible != 0)
	be.setEnabled(h, flags&ButtonFlagDisabled == 0)
	if b.font != nil {
		be.setFont(h, b.font.Handle())
	}
	if b.focus {
		be.setFocus(h)
	}
	return nil
}
