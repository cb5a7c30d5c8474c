package declwin

import "fmt"

// GridChild places one control in a GridLayout. Spans below 1 are
// treated as 1.
type GridChild struct {
	Col, Row         int
	ColSpan, RowSpan int
}

type gridItem struct {
	GridChild
	control Handle
}

// GridLayout arranges its container's children in equally sized
// cells. Cells share the container width minus the margins and a
// spacing band of spacing*2 per column; rows work the same way. The
// layout recomputes whenever the container is resized.
//
// If the container is too small to host the margins and spacing the
// pass is skipped outright, leaving every child where it was. Zero
// remaining space counts as too small.
type GridLayout struct {
	parent  Handle
	margins Insets
	spacing int
	minSize Size
	maxSize Size
	maxCol  int
	maxRow  int
	items   []gridItem
	handler *EventHandler
}

// AddChild places c at (col, row) with a 1x1 span and recomputes.
func (g *GridLayout) AddChild(col, row int, c Control) {
	g.AddChildItem(GridChild{Col: col, Row: row, ColSpan: 1, RowSpan: 1}, c)
}

// AddChildItem places c according to item and recomputes.
func (g *GridLayout) AddChildItem(item GridChild, c Control) {
	g.items = append(g.items, gridItem{GridChild: normalizeGridChild(item), control: c.Handle()})
	g.Fit()
}

// RemoveChild detaches c from the layout and recomputes. The control
// itself is neither destroyed nor moved.
func (g *GridLayout) RemoveChild(c Control) {
	h := c.Handle()
	for i := range g.items {
		if g.items[i].control == h {
			g.items = append(g.items[:i], g.items[i+1:]...)
			g.Fit()
			return
		}
	}
}

// MoveChild reassigns c's cell, keeping its span, and recomputes.
func (g *GridLayout) MoveChild(c Control, col, row int) {
	h := c.Handle()
	for i := range g.items {
		if g.items[i].control == h {
			g.items[i].Col = col
			g.items[i].Row = row
			g.Fit()
			return
		}
	}
}

// HasChild reports whether c is placed in the layout.
func (g *GridLayout) HasChild(c Control) bool {
	h := c.Handle()
	for i := range g.items {
		if g.items[i].control == h {
			return true
		}
	}
	return false
}

// SetSpacing changes the per-cell spacing band and recomputes.
func (g *GridLayout) SetSpacing(sp int) {
	g.spacing = sp
	g.Fit()
}

// SetMargin changes the outer margins and recomputes.
func (g *GridLayout) SetMargin(m Insets) {
	g.margins = m
	g.Fit()
}

// SetMinSize sets the lower clamp applied to the container size
// before computing.
func (g *GridLayout) SetMinSize(s Size) {
	g.minSize = s
	g.Fit()
}

// SetMaxSize sets the upper clamp applied to the container size
// before computing. A zero component means unlimited.
func (g *GridLayout) SetMaxSize(s Size) {
	g.maxSize = s
	g.Fit()
}

// Fit recomputes from the container's current size.
func (g *GridLayout) Fit() {
	if !g.parent.Valid() {
		return
	}
	g.resize(activeBackend().bounds(g.parent).Size())
}

// Resize recomputes as if the container were w by h, regardless of
// its actual size.
func (g *GridLayout) Resize(w, h int) {
	g.resize(Size{W: w, H: h})
}

// columnCount returns the explicit override or the widest occupied
// extent of the items.
func (g *GridLayout) columnCount() int {
	if g.maxCol > 0 {
		return g.maxCol
	}
	count := 1
	for i := range g.items {
		if ext := g.items[i].Col + g.items[i].ColSpan; ext > count {
			count = ext
		}
	}
	return count
}

func (g *GridLayout) rowCount() int {
	if g.maxRow > 0 {
		return g.maxRow
	}
	count := 1
	for i := range g.items {
		if ext := g.items[i].Row + g.items[i].RowSpan; ext > count {
			count = ext
		}
	}
	return count
}

func (g *GridLayout) resize(sz Size) {
	if len(g.items) == 0 {
		return
	}

	w, h := sz.W, sz.H
	if w < g.minSize.W {
		w = g.minSize.W
	}
	if h < g.minSize.H {
		h = g.minSize.H
	}
	if g.maxSize.W > 0 && w > g.maxSize.W {
		w = g.maxSize.W
	}
	if g.maxSize.H > 0 && h > g.maxSize.H {
		h = g.maxSize.H
	}

	cols := g.columnCount()
	rows := g.rowCount()
	sp := g.spacing
	sp2 := sp * 2
	m := g.margins

	// Skip the whole pass when nothing would remain for the cells.
	if w <= m.Left+m.Right+sp2*cols {
		return
	}
	if h <= m.Top+m.Bottom+sp2*rows {
		return
	}

	colWidths := splitSlots(w-(m.Left+m.Right)-sp2*cols, cols)
	rowHeights := splitSlots(h-(m.Top+m.Bottom)-sp2*rows, rows)

	changes := make([]boundsChange, 0, len(g.items))
	for i := range g.items {
		it := &g.items[i]
		if it.Col >= cols || it.Row >= rows {
			continue
		}
		colSpan := it.ColSpan
		if it.Col+colSpan > cols {
			colSpan = cols - it.Col
		}
		rowSpan := it.RowSpan
		if it.Row+rowSpan > rows {
			rowSpan = rows - it.Row
		}

		x := m.Left + sp + sp2*it.Col + sumSlots(colWidths[:it.Col])
		y := m.Top + sp + sp2*it.Row + sumSlots(rowHeights[:it.Row])
		cw := sumSlots(colWidths[it.Col:it.Col+colSpan]) + sp2*(colSpan-1)
		ch := sumSlots(rowHeights[it.Row:it.Row+rowSpan]) + sp2*(rowSpan-1)

		changes = append(changes, boundsChange{handle: it.control, rect: Rect{X: x, Y: y, W: cw, H: ch}})
	}
	activeBackend().applyDeferred(changes)
}

func normalizeGridChild(item GridChild) GridChild {
	if item.ColSpan < 1 {
		item.ColSpan = 1
	}
	if item.RowSpan < 1 {
		item.RowSpan = 1
	}
	if item.Col < 0 {
		item.Col = 0
	}
	if item.Row < 0 {
		item.Row = 0
	}
	return item
}

// GridLayoutBuilder assembles a GridLayout.
type GridLayoutBuilder struct {
	layout GridLayout
	items  []gridItem
}

// NewGridLayoutBuilder returns a builder with 5 pixel margins and
// spacing.
func NewGridLayoutBuilder() *GridLayoutBuilder {
	return &GridLayoutBuilder{
		layout: GridLayout{margins: InsetsAll(5), spacing: 5},
	}
}

// Parent sets the container whose children the layout manages.
// Required.
func (b *GridLayoutBuilder) Parent(p Parent) *GridLayoutBuilder {
	if p != nil {
		b.layout.parent = p.Handle()
	}
	return b
}

// Margin sets the outer margins.
func (b *GridLayoutBuilder) Margin(m Insets) *GridLayoutBuilder {
	b.layout.margins = m
	return b
}

// Spacing sets the spacing band around every cell.
func (b *GridLayoutBuilder) Spacing(sp int) *GridLayoutBuilder {
	b.layout.spacing = sp
	return b
}

// MinSize sets the lower container size clamp.
func (b *GridLayoutBuilder) MinSize(s Size) *GridLayoutBuilder {
	b.layout.minSize = s
	return b
}

// MaxSize sets the upper container size clamp.
func (b *GridLayoutBuilder) MaxSize(s Size) *GridLayoutBuilder {
	b.layout.maxSize = s
	return b
}

// MaxColumn fixes the column count instead of deriving it from the
// placed children.
func (b *GridLayoutBuilder) MaxColumn(n int) *GridLayoutBuilder {
	b.layout.maxCol = n
	return b
}

// MaxRow fixes the row count instead of deriving it from the placed
// children.
func (b *GridLayoutBuilder) MaxRow(n int) *GridLayoutBuilder {
	b.layout.maxRow = n
	return b
}

// ChildItem places a control in the layout being built.
func (b *GridLayoutBuilder) ChildItem(item GridChild, c Control) *GridLayoutBuilder {
	b.items = append(b.items, gridItem{GridChild: normalizeGridChild(item), control: c.Handle()})
	return b
}

// Build finalizes the layout into out, computes the initial geometry
// and attaches the container's resize notification.
func (b *GridLayoutBuilder) Build(out *GridLayout) error {
	if out == nil {
		return fmt.Errorf("GridLayout build target is nil")
	}
	if !b.layout.parent.Valid() {
		return fmt.Errorf("GridLayout requires a parent")
	}
	for i := range b.items {
		it := &b.items[i]
		if b.layout.maxCol > 0 && it.Col+it.ColSpan > b.layout.maxCol {
			return fmt.Errorf("GridLayout child at column %d span %d does not fit %d fixed columns",
				it.Col, it.ColSpan, b.layout.maxCol)
		}
		if b.layout.maxRow > 0 && it.Row+it.RowSpan > b.layout.maxRow {
			return fmt.Errorf("GridLayout child at row %d span %d does not fit %d fixed rows",
				it.Row, it.RowSpan, b.layout.maxRow)
		}
	}
	if out.handler != nil {
		UnbindEventHandler(out.handler)
	}
	*out = b.layout
	out.items = append([]gridItem(nil), b.items...)
	out.Fit()
	out.handler = bindLayoutResize(out.parent, out.resize)
	return nil
}
