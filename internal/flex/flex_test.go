package flex

import "testing"

func fixedBox(w, h int) *Node {
	n := NewNode(DefaultStyle())
	n.Style.Width = Fixed(w)
	n.Style.Height = Fixed(h)
	return n
}

func container(w, h int, dir Direction) *Node {
	n := NewNode(DefaultStyle())
	n.Style.Width = Fixed(w)
	n.Style.Height = Fixed(h)
	n.Style.Direction = dir
	return n
}

func alignPtr(a Align) *Align { return &a }

func TestFlexGrow(t *testing.T) {
	parent := container(100, 50, Row)

	fixed := fixedBox(30, 50)
	growing := fixedBox(0, 50)
	growing.Style.FlexGrow = 1

	parent.AddChild(fixed, growing)
	Calculate(parent, 200, 200)

	if fixed.Layout.Rect.Width != 30 {
		t.Errorf("fixed width = %d, want 30", fixed.Layout.Rect.Width)
	}
	if growing.Layout.Rect.Width != 70 {
		t.Errorf("growing width = %d, want 70", growing.Layout.Rect.Width)
	}
	if growing.Layout.Rect.X != 30 {
		t.Errorf("growing X = %d, want 30", growing.Layout.Rect.X)
	}
}

func TestFlexGrowProportional(t *testing.T) {
	parent := container(100, 50, Row)

	child1 := fixedBox(0, 50)
	child1.Style.FlexGrow = 1
	child2 := fixedBox(0, 50)
	child2.Style.FlexGrow = 3

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 200)

	if child1.Layout.Rect.Width != 25 {
		t.Errorf("child1 width = %d, want 25", child1.Layout.Rect.Width)
	}
	if child2.Layout.Rect.Width != 75 {
		t.Errorf("child2 width = %d, want 75", child2.Layout.Rect.Width)
	}
}

func TestFlexShrink(t *testing.T) {
	parent := container(100, 50, Row)

	child1 := fixedBox(80, 50)
	child2 := fixedBox(80, 50)

	parent.AddChild(child1, child2)
	Calculate(parent, 200, 200)

	// Total is 160 in a 100 container; equal shrink factors split the
	// 60 deficit evenly.
	if child1.Layout.Rect.Width != 50 {
		t.Errorf("child1 width = %d, want 50", child1.Layout.Rect.Width)
	}
	if child2.Layout.Rect.Width != 50 {
		t.Errorf("child2 width = %d, want 50", child2.Layout.Rect.Width)
	}
}

func TestFlexPercentSizing(t *testing.T) {
	parent := container(200, 50, Row)

	half := NewNode(DefaultStyle())
	half.Style.Width = Percent(50)
	half.Style.Height = Fixed(50)
	quarter := NewNode(DefaultStyle())
	quarter.Style.Width = Percent(25)
	quarter.Style.Height = Fixed(50)

	parent.AddChild(half, quarter)
	Calculate(parent, 400, 400)

	if half.Layout.Rect.Width != 100 {
		t.Errorf("half width = %d, want 100", half.Layout.Rect.Width)
	}
	if quarter.Layout.Rect.Width != 50 {
		t.Errorf("quarter width = %d, want 50", quarter.Layout.Rect.Width)
	}
	if quarter.Layout.Rect.X != 100 {
		t.Errorf("quarter X = %d, want 100", quarter.Layout.Rect.X)
	}
}

func TestFlexBasisOverridesWidth(t *testing.T) {
	parent := container(100, 50, Row)

	child := fixedBox(10, 50)
	child.Style.Basis = Fixed(40)

	parent.AddChild(child)
	Calculate(parent, 200, 200)

	if child.Layout.Rect.Width != 40 {
		t.Errorf("width = %d, want the 40 from basis", child.Layout.Rect.Width)
	}
}

func TestFlexJustify(t *testing.T) {
	type tc struct {
		justify Justify
		wantX   [2]int
	}

	tests := map[string]tc{
		"start":         {JustifyStart, [2]int{0, 20}},
		"end":           {JustifyEnd, [2]int{60, 80}},
		"center":        {JustifyCenter, [2]int{30, 50}},
		"space between": {JustifySpaceBetween, [2]int{0, 80}},
		"space around":  {JustifySpaceAround, [2]int{15, 65}},
		"space evenly":  {JustifySpaceEvenly, [2]int{20, 60}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := container(100, 50, Row)
			parent.Style.JustifyContent = tt.justify

			a := fixedBox(20, 50)
			b := fixedBox(20, 50)
			parent.AddChild(a, b)
			Calculate(parent, 200, 200)

			if a.Layout.Rect.X != tt.wantX[0] {
				t.Errorf("a.X = %d, want %d", a.Layout.Rect.X, tt.wantX[0])
			}
			if b.Layout.Rect.X != tt.wantX[1] {
				t.Errorf("b.X = %d, want %d", b.Layout.Rect.X, tt.wantX[1])
			}
		})
	}
}

func TestFlexAlignItems(t *testing.T) {
	type tc struct {
		align Align
		wantY int
	}

	tests := map[string]tc{
		"start":  {AlignStart, 0},
		"end":    {AlignEnd, 40},
		"center": {AlignCenter, 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := container(100, 60, Row)
			parent.Style.AlignItems = tt.align

			child := fixedBox(20, 20)
			parent.AddChild(child)
			Calculate(parent, 200, 200)

			if child.Layout.Rect.Y != tt.wantY {
				t.Errorf("Y = %d, want %d", child.Layout.Rect.Y, tt.wantY)
			}
		})
	}
}

func TestFlexAlignStretch(t *testing.T) {
	parent := container(100, 60, Row)

	child := NewNode(DefaultStyle())
	child.Style.Width = Fixed(20)
	// Height stays auto: stretch fills the cross axis.

	parent.AddChild(child)
	Calculate(parent, 200, 200)

	if child.Layout.Rect.Height != 60 {
		t.Errorf("height = %d, want 60", child.Layout.Rect.Height)
	}
}

func TestFlexAlignSelfOverride(t *testing.T) {
	parent := container(100, 60, Row)
	parent.Style.AlignItems = AlignStart

	child := fixedBox(20, 20)
	child.Style.AlignSelf = alignPtr(AlignEnd)

	parent.AddChild(child)
	Calculate(parent, 200, 200)

	if child.Layout.Rect.Y != 40 {
		t.Errorf("Y = %d, want 40", child.Layout.Rect.Y)
	}
}

func TestFlexMargin(t *testing.T) {
	parent := container(100, 50, Row)

	child := fixedBox(40, 40)
	child.Style.Margin = EdgeAll(5)

	parent.AddChild(child)
	Calculate(parent, 200, 200)

	// The slot includes the margin; the border box is inset by it.
	r := child.Layout.Rect
	if r.X != 5 || r.Y != 5 {
		t.Errorf("position = (%d, %d), want (5, 5)", r.X, r.Y)
	}
	if r.Width != 40 {
		t.Errorf("width = %d, want 40", r.Width)
	}
}

func TestFlexGap(t *testing.T) {
	parent := container(100, 50, Row)
	parent.Style.Gap = 10

	a := fixedBox(20, 50)
	b := fixedBox(20, 50)
	parent.AddChild(a, b)
	Calculate(parent, 200, 200)

	if b.Layout.Rect.X != 30 {
		t.Errorf("b.X = %d, want 30", b.Layout.Rect.X)
	}
}

func TestFlexColumn(t *testing.T) {
	parent := container(50, 100, Column)

	top := NewNode(DefaultStyle())
	top.Style.Height = Fixed(30)
	rest := NewNode(DefaultStyle())
	rest.Style.FlexGrow = 1

	parent.AddChild(top, rest)
	Calculate(parent, 200, 200)

	if top.Layout.Rect != NewRect(0, 0, 50, 30) {
		t.Errorf("top = %+v, want (0, 0, 50, 30)", top.Layout.Rect)
	}
	if rest.Layout.Rect != NewRect(0, 30, 50, 70) {
		t.Errorf("rest = %+v, want (0, 30, 50, 70)", rest.Layout.Rect)
	}
}

func TestFlexMinMaxOnMainAxis(t *testing.T) {
	parent := container(100, 50, Row)

	small := fixedBox(10, 50)
	small.Style.MinWidth = Fixed(30)
	large := fixedBox(80, 50)
	large.Style.MaxWidth = Fixed(50)
	large.Style.FlexShrink = 0

	parent.AddChild(small, large)
	Calculate(parent, 200, 200)

	if small.Layout.Rect.Width != 30 {
		t.Errorf("small width = %d, want the 30 minimum", small.Layout.Rect.Width)
	}
	if large.Layout.Rect.Width != 50 {
		t.Errorf("large width = %d, want the 50 maximum", large.Layout.Rect.Width)
	}
}

func TestFlexWrap(t *testing.T) {
	parent := container(100, 60, Row)
	parent.Style.Wrap = true

	a := fixedBox(50, 20)
	b := fixedBox(50, 20)
	c := fixedBox(50, 20)
	parent.AddChild(a, b, c)
	Calculate(parent, 200, 200)

	// The first two fill the line exactly; the third wraps.
	if a.Layout.Rect != NewRect(0, 0, 50, 20) {
		t.Errorf("a = %+v, want (0, 0, 50, 20)", a.Layout.Rect)
	}
	if b.Layout.Rect != NewRect(50, 0, 50, 20) {
		t.Errorf("b = %+v, want (50, 0, 50, 20)", b.Layout.Rect)
	}
	if c.Layout.Rect != NewRect(0, 20, 50, 20) {
		t.Errorf("c = %+v, want (0, 20, 50, 20)", c.Layout.Rect)
	}
}

func TestFlexWrapAlignContent(t *testing.T) {
	type tc struct {
		align Align
		wantY [2]int // line positions for the first and last child
	}

	tests := map[string]tc{
		"start":   {AlignStart, [2]int{0, 20}},
		"end":     {AlignEnd, [2]int{20, 40}},
		"center":  {AlignCenter, [2]int{10, 30}},
		"stretch": {AlignStretch, [2]int{0, 30}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := container(100, 60, Row)
			parent.Style.Wrap = true
			parent.Style.AlignContent = tt.align

			a := fixedBox(60, 20)
			b := fixedBox(60, 20)
			parent.AddChild(a, b)
			Calculate(parent, 200, 200)

			if a.Layout.Rect.Y != tt.wantY[0] {
				t.Errorf("a.Y = %d, want %d", a.Layout.Rect.Y, tt.wantY[0])
			}
			if b.Layout.Rect.Y != tt.wantY[1] {
				t.Errorf("b.Y = %d, want %d", b.Layout.Rect.Y, tt.wantY[1])
			}
		})
	}
}
