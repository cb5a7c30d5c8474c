package declwin

import "fmt"

// CheckBox is a two- or three-state check button. Toggling it raises
// OnButtonClick, the same event buttons raise.
type CheckBox struct {
	ControlBase
}

// Text returns the caption.
func (c *CheckBox) Text() string { return activeBackend().text(c.handle) }

// SetText replaces the caption.
func (c *CheckBox) SetText(s string) { activeBackend().setText(c.handle, s) }

// CheckState returns the current state.
func (c *CheckBox) CheckState() CheckState { return activeBackend().checkState(c.handle) }

// SetCheckState sets the state without raising a click.
func (c *CheckBox) SetCheckState(s CheckState) { activeBackend().setCheckState(c.handle, s) }

// Toggle flips between Checked and Unchecked the way a user click
// does and raises OnButtonClick. Indeterminate resolves to Checked.
func (c *CheckBox) Toggle() {
	be := activeBackend()
	if be.checkState(c.handle) == Checked {
		be.setCheckState(c.handle, Unchecked)
	} else {
		be.setCheckState(c.handle, Checked)
	}
	raiseEvent(c.handle, OnButtonClick, EventData{})
}

// CheckBoxBuilder assembles a CheckBox.
type CheckBoxBuilder struct {
	text     string
	size     Size
	position Point
	state    CheckState
	flags    CheckBoxFlags
	hasFlags bool
	font     *Font
	parent   Handle
}

// NewCheckBoxBuilder returns a builder for an unchecked box.
func NewCheckBoxBuilder() *CheckBoxBuilder {
	return &CheckBoxBuilder{text: "A checkbox", size: Size{W: 100, H: 25}}
}

// Text sets the caption.
func (b *CheckBoxBuilder) Text(s string) *CheckBoxBuilder { b.text = s; return b }

// Size sets the initial size.
func (b *CheckBoxBuilder) Size(s Size) *CheckBoxBuilder { b.size = s; return b }

// Position sets the initial position within the parent.
func (b *CheckBoxBuilder) Position(p Point) *CheckBoxBuilder { b.position = p; return b }

// CheckState sets the initial state.
func (b *CheckBoxBuilder) CheckState(s CheckState) *CheckBoxBuilder { b.state = s; return b }

// Flags replaces the default Visible|TabStop style.
func (b *CheckBoxBuilder) Flags(f CheckBoxFlags) *CheckBoxBuilder {
	b.flags = f
	b.hasFlags = true
	return b
}

// Font sets the caption font.
func (b *CheckBoxBuilder) Font(f *Font) *CheckBoxBuilder { b.font = f; return b }

// Parent sets the container the box is created under. Required.
func (b *CheckBoxBuilder) Parent(p Parent) *CheckBoxBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Build creates the check box and binds it to out.
func (b *CheckBoxBuilder) Build(out *CheckBox) error {
	if out == nil {
		return fmt.Errorf("CheckBox build target is nil")
	}
	if !b.parent.Valid() {
		return fmt.Errorf("CheckBox %q requires a parent", b.text)
	}
	flags := CheckBoxFlagVisible | CheckBoxFlagTabStop
	if b.hasFlags {
		flags = b.flags
	}
	if b.state == Indeterminate && flags&CheckBoxFlagTristate == 0 {
		return fmt.Errorf("CheckBox %q needs the TRISTATE flag for an indeterminate state", b.text)
	}
	h, err := activeBackend().create("CheckBox", b.parent, uint32(flags))
	if err != nil {
		return fmt.Errorf("creating CheckBox: %w", err)
	}
	out.handle = h
	be := activeBackend()
	be.setText(h, b.text)
	be.setBounds(h, Rect{X: b.position.X, Y: b.position.Y, W: b.size.W, H: b.size.H})
	be.setVisible(h, flags&CheckBoxFlagVisible != 0)
	be.setEnabled(h, flags&CheckBoxFlagDisabled == 0)
	be.setCheckState(h, b.state)
	if b.font != nil {
		be.setFont(h, b.font.Handle())
	}
	return nil
}
