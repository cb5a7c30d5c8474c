package uigen

import (
	"strings"
	"testing"
)

// dir builds a directive the way the scanner would.
func dir(name, payload string) Directive {
	pos := Position{File: "test.go", Line: 1, Column: 2}
	return Directive{Name: name, Payload: payload, Pos: pos, payloadPos: pos}
}

// field builds a field descriptor with the given directives.
func field(name, typeExpr string, directives ...Directive) Field {
	return Field{
		Name:       name,
		TypeExpr:   typeExpr,
		TypeName:   lastSegment(typeExpr),
		Pos:        Position{File: "test.go", Line: 2, Column: 2},
		Directives: directives,
	}
}

func TestClassifyRoles(t *testing.T) {
	s := &ScannedStruct{
		Name: "App",
		Fields: []Field{
			field("Window", "declwin.Window", dir("control", `title: "x"`)),
			field("Font", "declwin.Font", dir("resource", `family: "Segoe UI"`)),
			field("Grid", "declwin.GridLayout", dir("layout", "parent: Window")),
			field("Side", "Sidebar", dir("partial", "")),
			field("Plain", "string"),
		},
	}

	errs := NewErrorList()
	unit := buildUnit(s, "main", errs)
	if errs.HasErrors() {
		t.Fatalf("buildUnit failed: %v", errs.Err())
	}

	if len(unit.Controls) != 1 || unit.Controls[0].Name != "Window" {
		t.Errorf("controls = %+v, want one control Window", unit.Controls)
	}
	if len(unit.Resources) != 1 || unit.Resources[0].Type != "Font" {
		t.Errorf("resources = %+v, want one Font resource", unit.Resources)
	}
	if len(unit.Layouts) != 1 || unit.Layouts[0].Type != "GridLayout" {
		t.Errorf("layouts = %+v, want one GridLayout", unit.Layouts)
	}
	if len(unit.Partials) != 1 || unit.Partials[0].Type != "Sidebar" {
		t.Errorf("partials = %+v, want one Sidebar partial", unit.Partials)
	}
}

func TestClassifyTypeResolution(t *testing.T) {
	type tc struct {
		field    Field
		wantType string
		wantErr  string
	}

	tests := map[string]tc{
		"declared type last segment": {
			field:    field("B", "declwin.Button", dir("control", `text: "go"`)),
			wantType: "Button",
		},
		"bare declared type": {
			field:    field("B", "Button", dir("control", "")),
			wantType: "Button",
		},
		"ty overrides declared type": {
			field:    field("B", "declwin.Label", dir("control", `ty: Button, text: "go"`)),
			wantType: "Button",
		},
		"qualified ty overrides declared type": {
			field:    field("B", "CustomSlot", dir("control", "ty: declwin.Button")),
			wantType: "Button",
		},
		"non-path ty": {
			field:   field("B", "Button", dir("control", "ty: pick()")),
			wantErr: "must be a type path",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			errs := NewErrorList()
			unit := buildUnit(&ScannedStruct{Name: "App", Fields: []Field{tt.field}}, "main", errs)

			if tt.wantErr != "" {
				if !errs.HasErrors() {
					t.Fatalf("buildUnit succeeded, want error containing %q", tt.wantErr)
				}
				if !strings.Contains(errs.Error(), tt.wantErr) {
					t.Errorf("error = %q, want it to contain %q", errs.Error(), tt.wantErr)
				}
				return
			}

			if errs.HasErrors() {
				t.Fatalf("buildUnit failed: %v", errs.Err())
			}
			if len(unit.Controls) != 1 {
				t.Fatalf("controls = %d, want 1", len(unit.Controls))
			}
			if got := unit.Controls[0].Type; got != tt.wantType {
				t.Errorf("type = %q, want %q", got, tt.wantType)
			}
		})
	}
}

func TestClassifyTyConsumed(t *testing.T) {
	errs := NewErrorList()
	unit := buildUnit(&ScannedStruct{
		Name:   "App",
		Fields: []Field{field("B", "Slot", dir("control", `ty: Button, text: "go"`))},
	}, "main", errs)
	if errs.HasErrors() {
		t.Fatalf("buildUnit failed: %v", errs.Err())
	}

	params := unit.Controls[0].Params
	if params.Has("ty") {
		t.Errorf("ty parameter leaked into emission params: %+v", params)
	}
	if got, _ := params.Get("text"); got != `"go"` {
		t.Errorf("text param = %q, want %q", got, `"go"`)
	}
}

func TestClassifyErrors(t *testing.T) {
	type tc struct {
		fields  []Field
		wantErr string
	}

	tests := map[string]tc{
		"two role directives": {
			fields:  []Field{field("W", "Window", dir("control", ""), dir("layout", ""))},
			wantErr: "both ui:control and ui:layout",
		},
		"item without role": {
			fields:  []Field{field("B", "Button", dir("item", "layout: Grid"))},
			wantErr: "no role directive",
		},
		"item on layout field": {
			fields:  []Field{field("G", "GridLayout", dir("layout", "parent: W"), dir("item", "layout: G"))},
			wantErr: "only valid on a ui:control",
		},
		"events on resource field": {
			fields:  []Field{field("F", "Font", dir("resource", ""), dir("events", "OnInit: Setup"))},
			wantErr: "only valid on a ui:control",
		},
		"unknown directive": {
			fields:  []Field{field("B", "Button", dir("widget", `text: "x"`))},
			wantErr: "unknown directive ui:widget",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			errs := NewErrorList()
			buildUnit(&ScannedStruct{Name: "App", Fields: tt.fields}, "main", errs)
			if !errs.HasErrors() {
				t.Fatalf("buildUnit succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(errs.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", errs.Error(), tt.wantErr)
			}
		})
	}
}

func TestClassifyEvents(t *testing.T) {
	errs := NewErrorList()
	unit := buildUnit(&ScannedStruct{
		Name: "App",
		Fields: []Field{
			field("B", "Button",
				dir("control", `text: "go"`),
				dir("events", "OnButtonClick: Submit, OnButtonClick: Log"),
			),
		},
	}, "main", errs)
	if errs.HasErrors() {
		t.Fatalf("buildUnit failed: %v", errs.Err())
	}

	events := unit.Controls[0].Events
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Method != "Submit" || events[1].Method != "Log" {
		t.Errorf("methods = %s, %s, want Submit, Log", events[0].Method, events[1].Method)
	}

	errs = NewErrorList()
	buildUnit(&ScannedStruct{
		Name:   "App",
		Fields: []Field{field("B", "Button", dir("control", ""), dir("events", "Clicked: Submit"))},
	}, "main", errs)
	if !strings.Contains(errs.Error(), `unknown event "Clicked"`) {
		t.Errorf("error = %q, want unknown event diagnostic", errs.Error())
	}
}
