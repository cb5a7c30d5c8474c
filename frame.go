package declwin

import "fmt"

// Frame is a plain container control. Controls declared after a frame
// without an explicit parent attach to it, and layouts can manage its
// children independently of the window's own layout.
type Frame struct {
	ControlBase
}

// FrameBuilder assembles a Frame.
type FrameBuilder struct {
	size     Size
	position Point
	flags    FrameFlags
	hasFlags bool
	parent   Handle
}

// NewFrameBuilder returns a builder with a visible border.
func NewFrameBuilder() *FrameBuilder {
	return &FrameBuilder{size: Size{W: 100, H: 25}}
}

// Size sets the initial size.
func (b *FrameBuilder) Size(s Size) *FrameBuilder { b.size = s; return b }

// Position sets the initial position within the parent.
func (b *FrameBuilder) Position(p Point) *FrameBuilder { b.position = p; return b }

// Flags replaces the default Visible|Border style.
func (b *FrameBuilder) Flags(f FrameFlags) *FrameBuilder {
	b.flags = f
	b.hasFlags = true
	return b
}

// Parent sets the container the frame is created under. Required.
func (b *FrameBuilder) Parent(p Parent) *FrameBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Build creates the frame and binds it to out.
func (b *FrameBuilder) Build(out *Frame) error {
	if out == nil {
		return fmt.Errorf("Frame build target is nil")
	}
	if !b.parent.Valid() {
		return fmt.Errorf("Frame requires a parent")
	}
	flags := FrameFlagVisible | FrameFlagBorder
	if b.hasFlags {
		flags = b.flags
	}
	h, err := activeBackend().create("Frame", b.parent, uint32(flags))
	if err != nil {
		return fmt.Errorf("creating Frame: %w", err)
	}
	out.handle = h
	be := activeBackend()
	be.setBounds(h, Rect{X: b.position.X, Y: b.position.Y, W: b.size.W, H: b.size.H})
	be.setVisible(h, flags&FrameFlagVisible != 0)
	be.setEnabled(h, flags&FrameFlagDisabled == 0)
	return nil
}
