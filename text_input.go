package declwin

import "fmt"

// TextInput is a single-line text entry control. Changing its text,
// programmatically or by typing, raises OnTextInput.
type TextInput struct {
	ControlBase
}

// Text returns the current contents.
func (t *TextInput) Text() string { return activeBackend().text(t.handle) }

// SetText replaces the contents.
func (t *TextInput) SetText(s string) { activeBackend().setText(t.handle, s) }

// Placeholder returns the hint shown while the input is empty.
func (t *TextInput) Placeholder() string { return activeBackend().placeholder(t.handle) }

// SetPlaceholder replaces the empty-input hint.
func (t *TextInput) SetPlaceholder(s string) { activeBackend().setPlaceholder(t.handle, s) }

// TextInputBuilder assembles a TextInput.
type TextInputBuilder struct {
	text        string
	placeholder string
	size        Size
	position    Point
	flags       TextInputFlags
	hasFlags    bool
	font        *Font
	focus       bool
	parent      Handle
}

// NewTextInputBuilder returns a builder for an empty input.
func NewTextInputBuilder() *TextInputBuilder {
	return &TextInputBuilder{size: Size{W: 100, H: 25}}
}

// Text sets the initial contents.
func (b *TextInputBuilder) Text(s string) *TextInputBuilder { b.text = s; return b }

// Placeholder sets the hint shown while the input is empty.
func (b *TextInputBuilder) Placeholder(s string) *TextInputBuilder { b.placeholder = s; return b }

// Size sets the initial size.
func (b *TextInputBuilder) Size(s Size) *TextInputBuilder { b.size = s; return b }

// Position sets the initial position within the parent.
func (b *TextInputBuilder) Position(p Point) *TextInputBuilder { b.position = p; return b }

// Flags replaces the default Visible|TabStop style.
func (b *TextInputBuilder) Flags(f TextInputFlags) *TextInputBuilder {
	b.flags = f
	b.hasFlags = true
	return b
}

// Font sets the text font.
func (b *TextInputBuilder) Font(f *Font) *TextInputBuilder { b.font = f; return b }

// Focus gives the input keyboard focus once built.
func (b *TextInputBuilder) Focus(v bool) *TextInputBuilder { b.focus = v; return b }

// Parent sets the container the input is created under. Required.
func (b *TextInputBuilder) Parent(p Parent) *TextInputBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Build creates the input and binds it to out.
func (b *TextInputBuilder) Build(out *TextInput) error {
	if out == nil {
		return fmt.Errorf("TextInput build target is nil")
	}
	if !b.parent.Valid() {
		return fmt.Errorf("TextInput requires a parent")
	}
	flags := TextInputFlagVisible | TextInputFlagTabStop
	if b.hasFlags {
		flags = b.flags
	}
	h, err := activeBackend().create("TextInput", b.parent, uint32(flags))
	if err != nil {
		return fmt.Errorf("creating TextInput: %w", err)
	}
	out.handle = h
	be := activeBackend()
	be.setBounds(h, Rect{X: b.position.X, Y: b.position.Y, W: b.size.W, H: b.size.H})
	be.setVisible(h, flags&TextInputFlagVisible != 0)
	be.setEnabled(h, flags&TextInputFlagDisabled == 0)
	if b.text != "" {
		be.setText(h, b.text)
	}
	if b.placeholder != "" {
		be.setPlaceholder(h, b.placeholder)
	}
	if b.font != nil {
		be.setFont(h, b.font.Handle())
	}
	if b.focus {
		be.setFocus(h)
	}
	return nil
}
