package declwin

import (
	"fmt"

	"github.com/declwin/declwin/internal/flex"
)

// dimUnit discriminates Dim values. The zero unit is auto so a zero
// Dim behaves like an unset dimension.
type dimUnit uint8

const (
	dimAuto dimUnit = iota
	dimPx
	dimPct
)

// Dim is one dimension of a flexbox style: automatic, a fixed pixel
// count, or a percentage of the container.
type Dim struct {
	unit   dimUnit
	amount float64
}

// DimAuto returns the automatic dimension, same as the zero Dim.
func DimAuto() Dim { return Dim{} }

// DimPx returns a fixed pixel dimension.
func DimPx(px int) Dim { return Dim{unit: dimPx, amount: float64(px)} }

// DimPct returns a percentage dimension on the 0 to 100 scale.
func DimPct(p float64) Dim { return Dim{unit: dimPct, amount: p} }

// IsAuto reports whether the dimension is automatic.
func (d Dim) IsAuto() bool { return d.unit == dimAuto }

// Px returns the pixel amount and whether the dimension is fixed.
func (d Dim) Px() (int, bool) { return int(d.amount), d.unit == dimPx }

// Pct returns the percentage and whether the dimension is one.
func (d Dim) Pct() (float64, bool) { return d.amount, d.unit == dimPct }

func (d Dim) value() flex.Value {
	switch d.unit {
	case dimPx:
		return flex.Fixed(int(d.amount))
	case dimPct:
		return flex.Percent(d.amount)
	default:
		return flex.Auto()
	}
}

// FlexChildStyle is the per-child styling of a FlexboxLayout. The
// zero value sizes the child automatically with the engine's default
// shrink factor.
type FlexChildStyle struct {
	Width     Dim
	Height    Dim
	MinWidth  Dim
	MinHeight Dim
	MaxWidth  Dim
	MaxHeight Dim
	Basis     Dim
	Grow      float64
	Shrink    float64
	AlignSelf AlignSelf
	Margin    Insets
}

// hasSizing reports whether the style carries any explicit dimension
// or flex factor. A single sized child turns off auto-sizing for the
// whole layout.
func (s FlexChildStyle) hasSizing() bool {
	return !s.Width.IsAuto() || !s.Height.IsAuto() ||
		!s.MinWidth.IsAuto() || !s.MinHeight.IsAuto() ||
		!s.MaxWidth.IsAuto() || !s.MaxHeight.IsAuto() ||
		!s.Basis.IsAuto() || s.Grow != 0 || s.Shrink != 0
}

type flexLayoutItem struct {
	style   FlexChildStyle
	control Handle
}

// FlexboxLayout hands the box-model math to a flexbox solver and
// applies the solved rectangles to its container's children. Beyond
// plumbing it adds two build-time conveniences: auto-size divides the
// main axis evenly across the children by injecting 100/N percent
// sizes, and auto-spacing injects a uniform margin on every child
// with matching container padding. Each convenience stays active only
// while no explicit override of the corresponding kind was configured
// at build time.
type FlexboxLayout struct {
	parent       Handle
	direction    FlexDirection
	wrap         bool
	justify      JustifyContent
	alignItems   AlignItems
	alignContent AlignContent
	padding      Insets
	gap          int
	items        []flexLayoutItem
	handler      *EventHandler
}

// AddChild places c with the given style and recomputes. Children
// added after build are styled exactly as given; the build-time
// conveniences do not apply to them.
func (f *FlexboxLayout) AddChild(style FlexChildStyle, c Control) {
	f.items = append(f.items, flexLayoutItem{style: style, control: c.Handle()})
	f.Fit()
}

// RemoveChild detaches c from the layout and recomputes.
func (f *FlexboxLayout) RemoveChild(c Control) {
	h := c.Handle()
	for i := range f.items {
		if f.items[i].control == h {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.Fit()
			return
		}
	}
}

// HasChild reports whether c is placed in the layout.
func (f *FlexboxLayout) HasChild(c Control) bool {
	h := c.Handle()
	for i := range f.items {
		if f.items[i].control == h {
			return true
		}
	}
	return false
}

// ChildStyle returns the effective style of c, including anything the
// build-time conveniences injected.
func (f *FlexboxLayout) ChildStyle(c Control) (FlexChildStyle, bool) {
	h := c.Handle()
	for i := range f.items {
		if f.items[i].control == h {
			return f.items[i].style, true
		}
	}
	return FlexChildStyle{}, false
}

// Fit recomputes from the container's current size.
func (f *FlexboxLayout) Fit() {
	if !f.parent.Valid() {
		return
	}
	f.resize(activeBackend().bounds(f.parent).Size())
}

func (f *FlexboxLayout) resize(sz Size) {
	if len(f.items) == 0 {
		return
	}

	rootStyle := flex.DefaultStyle()
	rootStyle.Direction = flex.Row
	if f.direction == Column {
		rootStyle.Direction = flex.Column
	}
	rootStyle.Wrap = f.wrap
	rootStyle.JustifyContent = justifyValue(f.justify)
	rootStyle.AlignItems = alignItemsValue(f.alignItems)
	rootStyle.AlignContent = alignContentValue(f.alignContent)
	rootStyle.Padding = edgesValue(f.padding)
	rootStyle.Gap = f.gap

	root := flex.NewNode(rootStyle)
	nodes := make([]*flex.Node, len(f.items))
	for i := range f.items {
		nodes[i] = flex.NewNode(childStyleValue(f.items[i].style))
		root.AddChild(nodes[i])
	}

	flex.Calculate(root, sz.W, sz.H)

	changes := make([]boundsChange, len(f.items))
	for i := range f.items {
		r := nodes[i].Layout.Rect
		changes[i] = boundsChange{
			handle: f.items[i].control,
			rect:   Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height},
		}
	}
	activeBackend().applyDeferred(changes)
}

func childStyleValue(cs FlexChildStyle) flex.Style {
	st := flex.DefaultStyle()
	st.Width = cs.Width.value()
	st.Height = cs.Height.value()
	if !cs.MinWidth.IsAuto() {
		st.MinWidth = cs.MinWidth.value()
	}
	if !cs.MinHeight.IsAuto() {
		st.MinHeight = cs.MinHeight.value()
	}
	st.MaxWidth = cs.MaxWidth.value()
	st.MaxHeight = cs.MaxHeight.value()
	st.Basis = cs.Basis.value()
	st.FlexGrow = cs.Grow
	if cs.Shrink != 0 {
		st.FlexShrink = cs.Shrink
	}
	if a, ok := alignSelfValue(cs.AlignSelf); ok {
		st.AlignSelf = &a
	}
	st.Margin = edgesValue(cs.Margin)
	return st
}

func justifyValue(j JustifyContent) flex.Justify {
	switch j {
	case JustifyEnd:
		return flex.JustifyEnd
	case JustifyCenter:
		return flex.JustifyCenter
	case JustifySpaceBetween:
		return flex.JustifySpaceBetween
	case JustifySpaceAround:
		return flex.JustifySpaceAround
	case JustifySpaceEvenly:
		return flex.JustifySpaceEvenly
	default:
		return flex.JustifyStart
	}
}

func alignItemsValue(a AlignItems) flex.Align {
	switch a {
	case AlignItemsStart:
		return flex.AlignStart
	case AlignItemsEnd:
		return flex.AlignEnd
	case AlignItemsCenter:
		return flex.AlignCenter
	default:
		return flex.AlignStretch
	}
}

func alignContentValue(a AlignContent) flex.Align {
	switch a {
	case AlignContentStart:
		return flex.AlignStart
	case AlignContentEnd:
		return flex.AlignEnd
	case AlignContentCenter:
		return flex.AlignCenter
	default:
		return flex.AlignStretch
	}
}

func alignSelfValue(a AlignSelf) (flex.Align, bool) {
	switch a {
	case AlignSelfStart:
		return flex.AlignStart, true
	case AlignSelfEnd:
		return flex.AlignEnd, true
	case AlignSelfCenter:
		return flex.AlignCenter, true
	case AlignSelfStretch:
		return flex.AlignStretch, true
	default:
		return 0, false
	}
}

func edgesValue(i Insets) flex.Edges {
	return flex.EdgeTRBL(i.Top, i.Right, i.Bottom, i.Left)
}

// FlexboxLayoutBuilder assembles a FlexboxLayout. Auto-size and a 5
// pixel auto-spacing start enabled; setting any child dimension or
// flex factor cancels auto-size, and setting any padding or child
// margin cancels auto-spacing.
type FlexboxLayoutBuilder struct {
	layout      FlexboxLayout
	items       []flexLayoutItem
	autoSize    bool
	autoSpacing int
}

// NewFlexboxLayoutBuilder returns a row-direction builder with both
// conveniences enabled.
func NewFlexboxLayoutBuilder() *FlexboxLayoutBuilder {
	return &FlexboxLayoutBuilder{autoSize: true, autoSpacing: 5}
}

// Parent sets the container whose children the layout manages.
// Required.
func (b *FlexboxLayoutBuilder) Parent(p Parent) *FlexboxLayoutBuilder {
	if p != nil {
		b.layout.parent = p.Handle()
	}
	return b
}

// FlexDirection selects the main axis.
func (b *FlexboxLayoutBuilder) FlexDirection(d FlexDirection) *FlexboxLayoutBuilder {
	b.layout.direction = d
	return b
}

// Wrap lets overflowing children start a new line.
func (b *FlexboxLayoutBuilder) Wrap(v bool) *FlexboxLayoutBuilder {
	b.layout.wrap = v
	return b
}

// JustifyContent distributes children along the main axis.
func (b *FlexboxLayoutBuilder) JustifyContent(j JustifyContent) *FlexboxLayoutBuilder {
	b.layout.justify = j
	return b
}

// AlignItems aligns children on the cross axis.
func (b *FlexboxLayoutBuilder) AlignItems(a AlignItems) *FlexboxLayoutBuilder {
	b.layout.alignItems = a
	return b
}

// AlignContent packs wrapped lines on the cross axis.
func (b *FlexboxLayoutBuilder) AlignContent(a AlignContent) *FlexboxLayoutBuilder {
	b.layout.alignContent = a
	return b
}

// Padding sets the container padding and cancels auto-spacing.
func (b *FlexboxLayoutBuilder) Padding(p Insets) *FlexboxLayoutBuilder {
	b.layout.padding = p
	b.autoSpacing = 0
	return b
}

// Gap sets the main-axis space between children.
func (b *FlexboxLayoutBuilder) Gap(n int) *FlexboxLayoutBuilder {
	b.layout.gap = n
	return b
}

// AutoSize toggles the equal-percentage main-axis sizing convenience.
func (b *FlexboxLayoutBuilder) AutoSize(v bool) *FlexboxLayoutBuilder {
	b.autoSize = v
	return b
}

// AutoSpacing sets the uniform margin/padding convenience amount.
// Zero disables it.
func (b *FlexboxLayoutBuilder) AutoSpacing(px int) *FlexboxLayoutBuilder {
	b.autoSpacing = px
	return b
}

// ChildStyle places a control in the layout being built. A style with
// any explicit dimension or flex factor cancels auto-size; a style
// with a margin cancels auto-spacing.
func (b *FlexboxLayoutBuilder) ChildStyle(style FlexChildStyle, c Control) *FlexboxLayoutBuilder {
	if style.hasSizing() {
		b.autoSize = false
	}
	if !style.Margin.IsZero() {
		b.autoSpacing = 0
	}
	b.items = append(b.items, flexLayoutItem{style: style, control: c.Handle()})
	return b
}

// Build finalizes the layout into out, applying the conveniences that
// survived, computes the initial geometry and attaches the
// container's resize notification. The injected values stay visible
// through ChildStyle afterwards.
func (b *FlexboxLayoutBuilder) Build(out *FlexboxLayout) error {
	if out == nil {
		return fmt.Errorf("FlexboxLayout build target is nil")
	}
	if !b.layout.parent.Valid() {
		return fmt.Errorf("FlexboxLayout requires a parent")
	}

	items := append([]flexLayoutItem(nil), b.items...)
	if b.autoSize && len(items) > 0 {
		share := DimPct(100.0 / float64(len(items)))
		for i := range items {
			if b.layout.direction == Column {
				items[i].style.Width = DimAuto()
				items[i].style.Height = share
			} else {
				items[i].style.Width = share
				items[i].style.Height = DimAuto()
			}
		}
	}
	if b.autoSpacing > 0 {
		b.layout.padding = InsetsAll(b.autoSpacing)
		for i := range items {
			items[i].style.Margin = InsetsAll(b.autoSpacing)
		}
	}

	if out.handler != nil {
		UnbindEventHandler(out.handler)
	}
	*out = b.layout
	out.items = items
	out.Fit()
	out.handler = bindLayoutResize(out.parent, out.resize)
	return nil
}
