package declwin

import "testing"

func TestButtonBuilder_Defaults(t *testing.T) {
	win := newTestWindow(t, 300, 200)
	btn := newTestButton(t, win)

	if got, want := btn.Text(), "Button"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if got, want := btn.Size(), (Size{W: 100, H: 25}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if got, want := btn.Position(), (Point{}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
	if !btn.Visible() {
		t.Errorf("Visible() = false, want true")
	}
	if !btn.Enabled() {
		t.Errorf("Enabled() = false, want true")
	}
}

func TestButtonBuilder_FontAndFocus(t *testing.T) {
	win := newTestWindow(t, 300, 200)

	var font Font
	if err := NewFontBuilder().Family("Segoe UI").Build(&font); err != nil {
		t.Fatalf("FontBuilder.Build() error = %v", err)
	}

	var btn Button
	err := NewButtonBuilder().
		Parent(win).
		Font(&font).
		Focus(true).
		Build(&btn)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got, want := activeBackend().font(btn.Handle()), font.Handle(); got != want {
		t.Errorf("assigned font = %v, want %v", got, want)
	}
	if !btn.Focused() {
		t.Errorf("Focused() = false after a Focus(true) build")
	}
}

func TestButtonBuilder_FlagsDisabled(t *testing.T) {
	win := newTestWindow(t, 300, 200)

	var btn Button
	err := NewButtonBuilder().
		Parent(win).
		Flags(ButtonFlagVisible | ButtonFlagDisabled).
		Build(&btn)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if btn.Enabled() {
		t.Errorf("Enabled() = true with the DISABLED flag")
	}
	if !btn.Visible() {
		t.Errorf("Visible() = false with the VISIBLE flag")
	}
}

func TestButton_SetText(t *testing.T) {
	win := newTestWindow(t, 300, 200)
	btn := newTestButton(t, win)

	btn.SetText("Apply")
	if got, want := btn.Text(), "Apply"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestButtonBuilder_RequiresParent(t *testing.T) {
	var btn Button
	if err := NewButtonBuilder().Build(&btn); err == nil {
		t.Errorf("Build() without parent error = nil, want error")
	}
}
