package declwin

import "fmt"

// BoxChild places one control in a BoxLayout. A span below 1 is
// treated as 1.
type BoxChild struct {
	Cell     int
	CellSpan int
}

type boxItem struct {
	BoxChild
	control Handle
}

// BoxLayout is a GridLayout degenerated to a single axis: cells run
// left to right for Horizontal, top to bottom for Vertical, and every
// child fills the cross axis. Margin, spacing and the undersized
// no-op follow the grid rules exactly.
type BoxLayout struct {
	parent     Handle
	layoutType Orientation
	margins    Insets
	spacing    int
	minSize    Size
	maxSize    Size
	cellCount  int
	items      []boxItem
	handler    *EventHandler
}

// AddChild places c in cell with a span of 1 and recomputes.
func (b *BoxLayout) AddChild(cell int, c Control) {
	b.AddChildCell(BoxChild{Cell: cell, CellSpan: 1}, c)
}

// AddChildCell places c according to item and recomputes.
func (b *BoxLayout) AddChildCell(item BoxChild, c Control) {
	b.items = append(b.items, boxItem{BoxChild: normalizeBoxChild(item), control: c.Handle()})
	b.Fit()
}

// RemoveChild detaches c from the layout and recomputes.
func (b *BoxLayout) RemoveChild(c Control) {
	h := c.Handle()
	for i := range b.items {
		if b.items[i].control == h {
			b.items = append(b.items[:i], b.items[i+1:]...)
			b.Fit()
			return
		}
	}
}

// HasChild reports whether c is placed in the layout.
func (b *BoxLayout) HasChild(c Control) bool {
	h := c.Handle()
	for i := range b.items {
		if b.items[i].control == h {
			return true
		}
	}
	return false
}

// Fit recomputes from the container's current size.
func (b *BoxLayout) Fit() {
	if !b.parent.Valid() {
		return
	}
	b.resize(activeBackend().bounds(b.parent).Size())
}

// Resize recomputes as if the container were w by h, regardless of
// its actual size.
func (b *BoxLayout) Resize(w, h int) {
	b.resize(Size{W: w, H: h})
}

func (b *BoxLayout) cells() int {
	if b.cellCount > 0 {
		return b.cellCount
	}
	count := 1
	for i := range b.items {
		if ext := b.items[i].Cell + b.items[i].CellSpan; ext > count {
			count = ext
		}
	}
	return count
}

func (b *BoxLayout) resize(sz Size) {
	if len(b.items) == 0 {
		return
	}

	w, h := sz.W, sz.H
	if w < b.minSize.W {
		w = b.minSize.W
	}
	if h < b.minSize.H {
		h = b.minSize.H
	}
	if b.maxSize.W > 0 && w > b.maxSize.W {
		w = b.maxSize.W
	}
	if b.maxSize.H > 0 && h > b.maxSize.H {
		h = b.maxSize.H
	}

	count := b.cells()
	sp := b.spacing
	sp2 := sp * 2
	m := b.margins

	main, cross := w, h
	mainLead, mainTrail := m.Left, m.Right
	crossLead, crossTrail := m.Top, m.Bottom
	if b.layoutType == Vertical {
		main, cross = h, w
		mainLead, mainTrail = m.Top, m.Bottom
		crossLead, crossTrail = m.Left, m.Right
	}

	// The cross axis behaves like a one-row grid.
	if main <= mainLead+mainTrail+sp2*count {
		return
	}
	if cross <= crossLead+crossTrail+sp2 {
		return
	}

	slots := splitSlots(main-(mainLead+mainTrail)-sp2*count, count)
	crossSize := cross - (crossLead + crossTrail) - sp2

	changes := make([]boundsChange, 0, len(b.items))
	for i := range b.items {
		it := &b.items[i]
		if it.Cell >= count {
			continue
		}
		span := it.CellSpan
		if it.Cell+span > count {
			span = count - it.Cell
		}

		mainPos := mainLead + sp + sp2*it.Cell + sumSlots(slots[:it.Cell])
		mainSize := sumSlots(slots[it.Cell:it.Cell+span]) + sp2*(span-1)
		crossPos := crossLead + sp

		r := Rect{X: mainPos, Y: crossPos, W: mainSize, H: crossSize}
		if b.layoutType == Vertical {
			r = Rect{X: crossPos, Y: mainPos, W: crossSize, H: mainSize}
		}
		changes = append(changes, boundsChange{handle: it.control, rect: r})
	}
	activeBackend().applyDeferred(changes)
}

func normalizeBoxChild(item BoxChild) BoxChild {
	if item.CellSpan < 1 {
		item.CellSpan = 1
	}
	if item.Cell < 0 {
		item.Cell = 0
	}
	return item
}

// BoxLayoutBuilder assembles a BoxLayout.
type BoxLayoutBuilder struct {
	layout BoxLayout
	items  []boxItem
}

// NewBoxLayoutBuilder returns a horizontal builder with 5 pixel
// margins and spacing.
func NewBoxLayoutBuilder() *BoxLayoutBuilder {
	return &BoxLayoutBuilder{
		layout: BoxLayout{margins: InsetsAll(5), spacing: 5},
	}
}

// Parent sets the container whose children the layout manages.
// Required.
func (b *BoxLayoutBuilder) Parent(p Parent) *BoxLayoutBuilder {
	if p != nil {
		b.layout.parent = p.Handle()
	}
	return b
}

// LayoutType selects the axis cells run along.
func (b *BoxLayoutBuilder) LayoutType(o Orientation) *BoxLayoutBuilder {
	b.layout.layoutType = o
	return b
}

// Margin sets the outer margins.
func (b *BoxLayoutBuilder) Margin(m Insets) *BoxLayoutBuilder {
	b.layout.margins = m
	return b
}

// Spacing sets the spacing band around every cell.
func (b *BoxLayoutBuilder) Spacing(sp int) *BoxLayoutBuilder {
	b.layout.spacing = sp
	return b
}

// MinSize sets the lower container size clamp.
func (b *BoxLayoutBuilder) MinSize(s Size) *BoxLayoutBuilder {
	b.layout.minSize = s
	return b
}

// MaxSize sets the upper container size clamp.
func (b *BoxLayoutBuilder) MaxSize(s Size) *BoxLayoutBuilder {
	b.layout.maxSize = s
	return b
}

// CellCount fixes the number of cells instead of deriving it from the
// placed children.
func (b *BoxLayoutBuilder) CellCount(n int) *BoxLayoutBuilder {
	b.layout.cellCount = n
	return b
}

// ChildCell places a control in the layout being built.
func (b *BoxLayoutBuilder) ChildCell(item BoxChild, c Control) *BoxLayoutBuilder {
	b.items = append(b.items, boxItem{BoxChild: normalizeBoxChild(item), control: c.Handle()})
	return b
}

// Build finalizes the layout into out, computes the initial geometry
// and attaches the container's resize notification.
func (b *BoxLayoutBuilder) Build(out *BoxLayout) error {
	if out == nil {
		return fmt.Errorf("BoxLayout build target is nil")
	}
	if !b.layout.parent.Valid() {
		return fmt.Errorf("BoxLayout requires a parent")
	}
	for i := range b.items {
		it := &b.items[i]
		if b.layout.cellCount > 0 && it.Cell+it.CellSpan > b.layout.cellCount {
			return fmt.Errorf("BoxLayout child at cell %d span %d does not fit %d fixed cells",
				it.Cell, it.CellSpan, b.layout.cellCount)
		}
	}
	if out.handler != nil {
		UnbindEventHandler(out.handler)
	}
	*out = b.layout
	out.items = append([]boxItem(nil), b.items...)
	out.Fit()
	out.handler = bindLayoutResize(out.parent, out.resize)
	return nil
}
