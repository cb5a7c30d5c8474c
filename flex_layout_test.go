package declwin

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- Build-time conveniences ---

func TestFlexboxLayout_AutoSizeSplitsMainAxis(t *testing.T) {
	win := newTestWindow(t, 300, 100)
	a := newTestButton(t, win)
	b := newTestButton(t, win)
	c := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		ChildStyle(FlexChildStyle{}, a).
		ChildStyle(FlexChildStyle{}, b).
		ChildStyle(FlexChildStyle{}, c).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for i, ctl := range []Control{a, b, c} {
		style, ok := fl.ChildStyle(ctl)
		if !ok {
			t.Fatalf("ChildStyle(child %d) ok = false", i)
		}
		pct, isPct := style.Width.Pct()
		if !isPct || pct != 100.0/3 {
			t.Errorf("child %d width = %v%% (pct=%v), want %v%%", i, pct, isPct, 100.0/3)
		}
		if !style.Height.IsAuto() {
			t.Errorf("child %d height is not auto", i)
		}
	}
}

func TestFlexboxLayout_AutoSizeColumnSplitsHeight(t *testing.T) {
	win := newTestWindow(t, 100, 310)
	a := newTestButton(t, win)
	b := newTestButton(t, win)
	c := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		FlexDirection(Column).
		ChildStyle(FlexChildStyle{}, a).
		ChildStyle(FlexChildStyle{}, b).
		ChildStyle(FlexChildStyle{}, c).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	style, _ := fl.ChildStyle(a)
	if !style.Width.IsAuto() {
		t.Errorf("column child width = %+v, want auto", style.Width)
	}
	if pct, ok := style.Height.Pct(); !ok || pct != 100.0/3 {
		t.Errorf("column child height = %v%%, want %v%%", pct, 100.0/3)
	}

	// The solved geometry follows the swapped axes.
	want := []Rect{
		{X: 10, Y: 10, W: 80, H: 90},
		{X: 10, Y: 110, W: 80, H: 90},
		{X: 10, Y: 210, W: 80, H: 90},
	}
	got := []Rect{boundsOf(a), boundsOf(b), boundsOf(c)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("solved bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestFlexboxLayout_AutoSpacingInjectsMargins(t *testing.T) {
	win := newTestWindow(t, 300, 100)
	a := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		ChildStyle(FlexChildStyle{}, a).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	style, _ := fl.ChildStyle(a)
	if got, want := style.Margin, InsetsAll(5); got != want {
		t.Errorf("injected margin = %v, want %v", got, want)
	}

	// Padding and margin together shrink the single child by 10 on
	// each side.
	if got, want := boundsOf(a), (Rect{X: 10, Y: 10, W: 280, H: 80}); got != want {
		t.Errorf("solved bounds = %v, want %v", got, want)
	}
}

func TestFlexboxLayout_AutoGeometryEndToEnd(t *testing.T) {
	win := newTestWindow(t, 310, 100)
	a := newTestButton(t, win)
	b := newTestButton(t, win)
	c := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		ChildStyle(FlexChildStyle{}, a).
		ChildStyle(FlexChildStyle{}, b).
		ChildStyle(FlexChildStyle{}, c).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// 300 of content splits into three 100-wide slots; the injected
	// 5px margins inset every child within its slot.
	want := []Rect{
		{X: 10, Y: 10, W: 90, H: 80},
		{X: 110, Y: 10, W: 90, H: 80},
		{X: 210, Y: 10, W: 90, H: 80},
	}
	got := []Rect{boundsOf(a), boundsOf(b), boundsOf(c)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("solved bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestFlexboxLayoutBuilder_ExplicitSizingCancelsAutoSize(t *testing.T) {
	type tc struct {
		style FlexChildStyle
	}

	tests := map[string]tc{
		"explicit width":      {style: FlexChildStyle{Width: DimPx(50)}},
		"explicit height":     {style: FlexChildStyle{Height: DimPct(40)}},
		"explicit min width":  {style: FlexChildStyle{MinWidth: DimPx(5)}},
		"explicit max height": {style: FlexChildStyle{MaxHeight: DimPct(50)}},
		"explicit basis":      {style: FlexChildStyle{Basis: DimPx(10)}},
		"explicit grow":       {style: FlexChildStyle{Grow: 1}},
		"explicit shrink":     {style: FlexChildStyle{Shrink: 2}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			win := newTestWindow(t, 300, 100)
			sized := newTestButton(t, win)
			plain := newTestButton(t, win)

			var fl FlexboxLayout
			err := NewFlexboxLayoutBuilder().
				Parent(win).
				ChildStyle(tt.style, sized).
				ChildStyle(FlexChildStyle{}, plain).
				Build(&fl)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			// One sized child turns the convenience off for every
			// child.
			style, _ := fl.ChildStyle(plain)
			if !style.Width.IsAuto() || !style.Height.IsAuto() {
				t.Errorf("plain child dimensions = (%+v, %+v), want auto", style.Width, style.Height)
			}
			sizedStyle, _ := fl.ChildStyle(sized)
			if sizedStyle.Width != tt.style.Width || sizedStyle.Grow != tt.style.Grow {
				t.Errorf("sized child style changed: got %+v, want %+v", sizedStyle, tt.style)
			}
		})
	}
}

func TestFlexboxLayoutBuilder_ChildMarginCancelsAutoSpacing(t *testing.T) {
	win := newTestWindow(t, 300, 100)
	a := newTestButton(t, win)
	b := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		ChildStyle(FlexChildStyle{Margin: InsetsAll(2)}, a).
		ChildStyle(FlexChildStyle{}, b).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	aStyle, _ := fl.ChildStyle(a)
	if got, want := aStyle.Margin, InsetsAll(2); got != want {
		t.Errorf("explicit margin = %v, want %v", got, want)
	}
	bStyle, _ := fl.ChildStyle(b)
	if !bStyle.Margin.IsZero() {
		t.Errorf("plain child margin = %v, want zero", bStyle.Margin)
	}

	// Auto-size is a separate convenience and stays on.
	if pct, ok := bStyle.Width.Pct(); !ok || pct != 50 {
		t.Errorf("plain child width = %v%%, want 50%%", pct)
	}
}

func TestFlexboxLayoutBuilder_PaddingCancelsAutoSpacing(t *testing.T) {
	win := newTestWindow(t, 300, 100)
	a := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		Padding(InsetsAll(2)).
		ChildStyle(FlexChildStyle{}, a).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	style, _ := fl.ChildStyle(a)
	if !style.Margin.IsZero() {
		t.Errorf("margin = %v, want zero after explicit Padding", style.Margin)
	}
}

func TestFlexboxLayoutBuilder_DisabledConveniences(t *testing.T) {
	win := newTestWindow(t, 300, 100)
	a := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		AutoSize(false).
		AutoSpacing(0).
		ChildStyle(FlexChildStyle{}, a).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	style, _ := fl.ChildStyle(a)
	if !style.Width.IsAuto() || !style.Height.IsAuto() || !style.Margin.IsZero() {
		t.Errorf("style = %+v, want the untouched zero style", style)
	}

	// Without the sizing convenience an auto child has no main-axis
	// extent; only the cross-axis stretch applies.
	if got, want := boundsOf(a), (Rect{X: 0, Y: 0, W: 0, H: 100}); got != want {
		t.Errorf("solved bounds = %v, want %v", got, want)
	}
}

// --- Solved geometry ---

func TestFlexboxLayout_JustifySpaceBetween(t *testing.T) {
	win := newTestWindow(t, 300, 100)
	a := newTestButton(t, win)
	b := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		AutoSpacing(0).
		JustifyContent(JustifySpaceBetween).
		ChildStyle(FlexChildStyle{Width: DimPx(50), Height: DimPx(40)}, a).
		ChildStyle(FlexChildStyle{Width: DimPx(50), Height: DimPx(40)}, b).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []Rect{
		{X: 0, Y: 0, W: 50, H: 40},
		{X: 250, Y: 0, W: 50, H: 40},
	}
	got := []Rect{boundsOf(a), boundsOf(b)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("solved bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestFlexboxLayout_GrowFactorsShareFreeSpace(t *testing.T) {
	win := newTestWindow(t, 300, 100)
	a := newTestButton(t, win)
	b := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		AutoSpacing(0).
		ChildStyle(FlexChildStyle{Grow: 1}, a).
		ChildStyle(FlexChildStyle{Grow: 3}, b).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []Rect{
		{X: 0, Y: 0, W: 75, H: 100},
		{X: 75, Y: 0, W: 225, H: 100},
	}
	got := []Rect{boundsOf(a), boundsOf(b)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("solved bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestFlexboxLayout_RecomputesOnContainerResize(t *testing.T) {
	win := newTestWindow(t, 310, 100)
	a := newTestButton(t, win)
	b := newTestButton(t, win)
	c := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		ChildStyle(FlexChildStyle{}, a).
		ChildStyle(FlexChildStyle{}, b).
		ChildStyle(FlexChildStyle{}, c).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	win.SetSize(610, 100)

	want := []Rect{
		{X: 10, Y: 10, W: 190, H: 80},
		{X: 210, Y: 10, W: 190, H: 80},
		{X: 410, Y: 10, W: 190, H: 80},
	}
	got := []Rect{boundsOf(a), boundsOf(b), boundsOf(c)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bounds after window resize (-want +got):\n%s", diff)
	}
}

// --- Child management ---

func TestFlexboxLayout_AddChildAfterBuildKeepsStyle(t *testing.T) {
	win := newTestWindow(t, 300, 100)
	a := newTestButton(t, win)
	late := newTestButton(t, win)

	var fl FlexboxLayout
	err := NewFlexboxLayoutBuilder().
		Parent(win).
		ChildStyle(FlexChildStyle{}, a).
		Build(&fl)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	fl.AddChild(FlexChildStyle{Width: DimPx(30)}, late)

	// Post-build children take their style as given, with no
	// convenience injection.
	style, ok := fl.ChildStyle(late)
	if !ok {
		t.Fatalf("ChildStyle(late) ok = false")
	}
	if px, isPx := style.Width.Px(); !isPx || px != 30 {
		t.Errorf("late child width = %+v, want 30px", style.Width)
	}
	if !style.Margin.IsZero() {
		t.Errorf("late child margin = %v, want zero", style.Margin)
	}

	fl.RemoveChild(late)
	if fl.HasChild(late) {
		t.Errorf("HasChild() = true after RemoveChild")
	}
	if !fl.HasChild(a) {
		t.Errorf("HasChild() = false for the remaining child")
	}
}

// --- Builder validation ---

func TestFlexboxLayoutBuilder_Errors(t *testing.T) {
	win := newTestWindow(t, 300, 100)

	if err := NewFlexboxLayoutBuilder().Parent(win).Build(nil); err == nil {
		t.Errorf("Build(nil) error = nil, want error")
	}

	var fl FlexboxLayout
	if err := NewFlexboxLayoutBuilder().Build(&fl); err == nil {
		t.Errorf("Build() without parent error = nil, want error")
	}
}
