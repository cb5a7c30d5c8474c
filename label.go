package declwin

import "fmt"

// Label is a static text control.
type Label struct {
	ControlBase
}

// Text returns the label text.
func (l *Label) Text() string { return activeBackend().text(l.handle) }

// SetText replaces the label text.
func (l *Label) SetText(s string) { activeBackend().setText(l.handle, s) }

// TextAlign returns the horizontal and vertical text alignment.
func (l *Label) TextAlign() (HAlign, VAlign) { return activeBackend().textAlign(l.handle) }

// LabelBuilder assembles a Label.
type LabelBuilder struct {
	text     string
	size     Size
	position Point
	flags    LabelFlags
	hasFlags bool
	font     *Font
	hAlign   HAlign
	vAlign   VAlign
	parent   Handle
}

// NewLabelBuilder returns a builder with left/top aligned default
// text.
func NewLabelBuilder() *LabelBuilder {
	return &LabelBuilder{text: "A label", size: Size{W: 130, H: 25}}
}

// Text sets the label text.
func (b *LabelBuilder) Text(s string) *LabelBuilder { b.text = s; return b }

// Size sets the initial size.
func (b *LabelBuilder) Size(s Size) *LabelBuilder { b.size = s; return b }

// Position sets the initial position within the parent.
func (b *LabelBuilder) Position(p Point) *LabelBuilder { b.position = p; return b }

// Flags replaces the default Visible style.
func (b *LabelBuilder) Flags(f LabelFlags) *LabelBuilder {
	b.flags = f
	b.hasFlags = true
	return b
}

// Font sets the text font.
func (b *LabelBuilder) Font(f *Font) *LabelBuilder { b.font = f; return b }

// HAlign sets the horizontal text alignment.
func (b *LabelBuilder) HAlign(a HAlign) *LabelBuilder { b.hAlign = a; return b }

// VAlign sets the vertical text alignment.
func (b *LabelBuilder) VAlign(a VAlign) *LabelBuilder { b.vAlign = a; return b }

// Parent sets the container the label is created under. Required.
func (b *LabelBuilder) Parent(p Parent) *LabelBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Build creates the label and binds it to out.
func (b *LabelBuilder) Build(out *Label) error {
	if out == nil {
		return fmt.Errorf("Label build target is nil")
	}
	if !b.parent.Valid() {
		return fmt.Errorf("Label %q requires a parent", b.text)
	}
	flags := LabelFlagVisible
	if b.hasFlags {
		flags = b.flags
	}
	h, err := activeBackend().create("Label", b.parent, uint32(flags))
	if err != nil {
		return fmt.Errorf("creating Label: %w", err)
	}
	out.handle = h
	be := activeBackend()
	be.setText(h, b.text)
	be.setBounds(h, Rect{X: b.position.X, Y: b.position.Y, W: b.size.W, H: b.size.H})
	be.setVisible(h, flags&LabelFlagVisible != 0)
	be.setEnabled(h, flags&LabelFlagDisabled == 0)
	be.setTextAlign(h, b.hAlign, b.vAlign)
	if b.font != nil {
		be.setFont(h, b.font.Handle())
	}
	return nil
}
