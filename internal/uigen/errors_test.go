package uigen

import (
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	pos := Position{File: "app.go", Line: 12, Column: 3}

	plain := NewErrorf(pos, "unexpected %q", "x")
	if got, want := plain.Error(), `app.go:12:3: error: unexpected "x"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	hinted := NewErrorWithHint(pos, "layout Grid has no parent", "add a parent parameter")
	if got := hinted.Error(); !strings.HasSuffix(got, "(add a parent parameter)") {
		t.Errorf("Error() = %q, want trailing hint", got)
	}
}

func TestErrorList(t *testing.T) {
	errs := NewErrorList()
	if errs.HasErrors() {
		t.Error("fresh list reports errors")
	}
	if errs.Err() != nil {
		t.Errorf("Err() = %v, want nil", errs.Err())
	}

	pos := Position{File: "app.go", Line: 1, Column: 1}
	errs.AddErrorf(pos, "first")
	errs.AddErrorf(pos, "second")

	if errs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", errs.Len())
	}
	msg := errs.Error()
	if !strings.Contains(msg, "first") || !strings.Contains(msg, "second") {
		t.Errorf("Error() = %q, want both messages", msg)
	}
	if errs.Err() == nil {
		t.Error("Err() = nil, want the accumulated errors")
	}
}
