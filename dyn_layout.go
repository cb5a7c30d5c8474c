package declwin

import "fmt"

// DynChild states how a control follows its container's size, in
// percent per axis. MoveX and MoveY shift the control's position by
// that share of the container's growth; SizeX and SizeY scale its
// size the same way. Zero leaves the axis pinned to the value the
// control had when it was added.
type DynChild struct {
	MoveX int
	MoveY int
	SizeX int
	SizeY int
}

type dynItem struct {
	DynChild
	control       Handle
	posInit       Point
	sizeInit      Size
	containerInit Size
}

// DynLayout repositions children proportionally to how much the
// container has grown or shrunk since each child was added. Unlike
// the cell-based layouts it never overrides a child's initial
// placement; it only derives offsets from it.
type DynLayout struct {
	parent  Handle
	items   []dynItem
	handler *EventHandler
}

// AddChild registers c with the given movement percentages. The
// control's current position and size become the baseline the
// percentages apply to.
func (d *DynLayout) AddChild(item DynChild, c Control) {
	d.items = append(d.items, d.capture(item, c))
	d.Fit()
}

// RemoveChild detaches c. The control keeps its current bounds.
func (d *DynLayout) RemoveChild(c Control) {
	h := c.Handle()
	for i := range d.items {
		if d.items[i].control == h {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// HasChild reports whether c is tracked by the layout.
func (d *DynLayout) HasChild(c Control) bool {
	h := c.Handle()
	for i := range d.items {
		if d.items[i].control == h {
			return true
		}
	}
	return false
}

// Fit recomputes from the container's current size.
func (d *DynLayout) Fit() {
	if !d.parent.Valid() {
		return
	}
	d.resize(activeBackend().bounds(d.parent).Size())
}

func (d *DynLayout) capture(item DynChild, c Control) dynItem {
	be := activeBackend()
	r := be.bounds(c.Handle())
	return dynItem{
		DynChild:      item,
		control:       c.Handle(),
		posInit:       r.Pos(),
		sizeInit:      r.Size(),
		containerInit: be.bounds(d.parent).Size(),
	}
}

func (d *DynLayout) resize(sz Size) {
	if len(d.items) == 0 {
		return
	}

	changes := make([]boundsChange, len(d.items))
	for i := range d.items {
		it := &d.items[i]
		dw := float64(sz.W - it.containerInit.W)
		dh := float64(sz.H - it.containerInit.H)

		r := Rect{X: it.posInit.X, Y: it.posInit.Y, W: it.sizeInit.W, H: it.sizeInit.H}
		if it.MoveX > 0 {
			r.X = it.posInit.X + int(float64(it.MoveX)*0.01*dw)
		}
		if it.MoveY > 0 {
			r.Y = it.posInit.Y + int(float64(it.MoveY)*0.01*dh)
		}
		if it.SizeX > 0 {
			r.W = it.sizeInit.W + int(float64(it.SizeX)*0.01*dw)
		}
		if it.SizeY > 0 {
			r.H = it.sizeInit.H + int(float64(it.SizeY)*0.01*dh)
		}
		changes[i] = boundsChange{handle: it.control, rect: r}
	}
	activeBackend().applyDeferred(changes)
}

// DynLayoutBuilder assembles a DynLayout.
type DynLayoutBuilder struct {
	parent Handle
	items  []struct {
		item    DynChild
		control Handle
	}
}

// NewDynLayoutBuilder returns an empty builder.
func NewDynLayoutBuilder() *DynLayoutBuilder {
	return &DynLayoutBuilder{}
}

// Parent sets the container whose size drives the layout. Required.
func (b *DynLayoutBuilder) Parent(p Parent) *DynLayoutBuilder {
	if p != nil {
		b.parent = p.Handle()
	}
	return b
}

// Child registers a control with its movement percentages. The
// baseline is captured at build time.
func (b *DynLayoutBuilder) Child(item DynChild, c Control) *DynLayoutBuilder {
	b.items = append(b.items, struct {
		item    DynChild
		control Handle
	}{item, c.Handle()})
	return b
}

// Build finalizes the layout into out, captures every child's
// baseline, computes the initial geometry and attaches the
// container's resize notification.
func (b *DynLayoutBuilder) Build(out *DynLayout) error {
	if out == nil {
		return fmt.Errorf("DynLayout build target is nil")
	}
	if !b.parent.Valid() {
		return fmt.Errorf("DynLayout requires a parent")
	}

	if out.handler != nil {
		UnbindEventHandler(out.handler)
	}
	*out = DynLayout{parent: b.parent}
	be := activeBackend()
	for _, c := range b.items {
		r := be.bounds(c.control)
		out.items = append(out.items, dynItem{
			DynChild:      c.item,
			control:       c.control,
			posInit:       r.Pos(),
			sizeInit:      r.Size(),
			containerInit: be.bounds(b.parent).Size(),
		})
	}
	out.Fit()
	out.handler = bindLayoutResize(out.parent, out.resize)
	return nil
}
