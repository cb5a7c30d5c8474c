package declwin

import "testing"

// --- Accessors ---

func TestControlBase_Accessors(t *testing.T) {
	win := newTestWindow(t, 300, 200)
	btn := newTestButton(t, win)

	btn.SetPosition(40, 50)
	if got, want := btn.Position(), (Point{X: 40, Y: 50}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}

	btn.SetSize(120, 30)
	if got, want := btn.Size(), (Size{W: 120, H: 30}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}

	// Moving must not resize and resizing must not move.
	if got, want := btn.Position(), (Point{X: 40, Y: 50}); got != want {
		t.Errorf("Position() after SetSize = %v, want %v", got, want)
	}

	btn.SetVisible(false)
	if btn.Visible() {
		t.Errorf("Visible() = true after SetVisible(false)")
	}
	btn.SetVisible(true)
	if !btn.Visible() {
		t.Errorf("Visible() = false after SetVisible(true)")
	}

	btn.SetEnabled(false)
	if btn.Enabled() {
		t.Errorf("Enabled() = true after SetEnabled(false)")
	}
	btn.SetEnabled(true)
	if !btn.Enabled() {
		t.Errorf("Enabled() = false after SetEnabled(true)")
	}
}

func TestControlBase_FocusMovesBetweenControls(t *testing.T) {
	win := newTestWindow(t, 300, 200)
	a := newTestButton(t, win)
	b := newTestButton(t, win)

	a.SetFocus()
	if !a.Focused() {
		t.Errorf("a.Focused() = false after a.SetFocus()")
	}
	if b.Focused() {
		t.Errorf("b.Focused() = true while a holds focus")
	}

	b.SetFocus()
	if a.Focused() {
		t.Errorf("a.Focused() = true after focus moved to b")
	}
	if !b.Focused() {
		t.Errorf("b.Focused() = false after b.SetFocus()")
	}
}

// --- Destruction ---

func TestControlBase_DestroyCascades(t *testing.T) {
	win := newTestWindow(t, 300, 200)

	var frame Frame
	if err := NewFrameBuilder().Parent(win).Build(&frame); err != nil {
		t.Fatalf("FrameBuilder.Build() error = %v", err)
	}
	btn := newTestButton(t, &frame)

	if got, want := btn.Text(), "Button"; got != want {
		t.Fatalf("Text() before destroy = %q, want %q", got, want)
	}

	frame.Destroy()

	// The whole subtree is gone; queries against it return zero
	// values.
	if got := btn.Text(); got != "" {
		t.Errorf("Text() after subtree destroy = %q, want empty", got)
	}
	if btn.Visible() {
		t.Errorf("Visible() = true for a destroyed control")
	}
	if frame.Handle().Valid() {
		t.Errorf("Handle().Valid() = true after Destroy")
	}

	// The window itself is untouched.
	if got, want := win.Text(), "fixture"; got != want {
		t.Errorf("window Text() = %q, want %q", got, want)
	}
}

func TestControlBase_DestroyIdempotent(t *testing.T) {
	win := newTestWindow(t, 300, 200)
	btn := newTestButton(t, win)

	btn.Destroy()
	btn.Destroy()

	if btn.Handle().Valid() {
		t.Errorf("Handle().Valid() = true after Destroy")
	}
}
