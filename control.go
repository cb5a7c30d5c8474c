package declwin

// ControlBase carries the handle and the operations shared by every
// control. Concrete controls embed it.
type ControlBase struct {
	handle Handle
}

// Handle returns the control's windowing handle.
func (c *ControlBase) Handle() Handle { return c.handle }

// Position returns the control's position relative to its parent.
func (c *ControlBase) Position() Point {
	return activeBackend().bounds(c.handle).Pos()
}

// SetPosition moves the control without changing its size.
func (c *ControlBase) SetPosition(x, y int) {
	be := activeBackend()
	r := be.bounds(c.handle)
	be.setBounds(c.handle, Rect{X: x, Y: y, W: r.W, H: r.H})
}

// Size returns the control's current size.
func (c *ControlBase) Size() Size {
	return activeBackend().bounds(c.handle).Size()
}

// SetSize resizes the control in place. Layouts attached to the
// control recompute from the resize notification this produces.
func (c *ControlBase) SetSize(w, h int) {
	be := activeBackend()
	r := be.bounds(c.handle)
	be.setBounds(c.handle, Rect{X: r.X, Y: r.Y, W: w, H: h})
}

// Visible reports whether the control is shown.
func (c *ControlBase) Visible() bool {
	return activeBackend().visible(c.handle)
}

// SetVisible shows or hides the control.
func (c *ControlBase) SetVisible(v bool) {
	activeBackend().setVisible(c.handle, v)
}

// Enabled reports whether the control accepts input.
func (c *ControlBase) Enabled() bool {
	return activeBackend().enabled(c.handle)
}

// SetEnabled enables or disables input on the control.
func (c *ControlBase) SetEnabled(v bool) {
	activeBackend().setEnabled(c.handle, v)
}

// Focused reports whether the control has keyboard focus.
func (c *ControlBase) Focused() bool {
	return activeBackend().focused(c.handle)
}

// SetFocus gives the control keyboard focus.
func (c *ControlBase) SetFocus() {
	activeBackend().setFocus(c.handle)
}

// Destroy releases the control, its descendants and their bound
// handlers. Using a control after Destroy is a no-op.
func (c *ControlBase) Destroy() {
	activeBackend().destroy(c.handle)
	c.handle = 0
}
