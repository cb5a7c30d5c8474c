package declwin

import "testing"

func TestFontBuilder_Defaults(t *testing.T) {
	var font Font
	if err := NewFontBuilder().Build(&font); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !font.Handle().Valid() {
		t.Errorf("Handle().Valid() = false after a successful build")
	}
}

func TestFontBuilder_WeightRange(t *testing.T) {
	type tc struct {
		weight  int
		wantErr bool
	}

	tests := map[string]tc{
		"system default": {weight: 0},
		"bold":           {weight: 700},
		"upper bound":    {weight: 1000},
		"past the scale": {weight: 1500, wantErr: true},
		"negative":       {weight: -1, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var font Font
			err := NewFontBuilder().Weight(tt.weight).Build(&font)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFontBuilder_EmptyFamily(t *testing.T) {
	var font Font
	if err := NewFontBuilder().Family("").Build(&font); err == nil {
		t.Errorf("Build() with empty family error = nil, want error")
	}
}

func TestFontBuilder_NilTarget(t *testing.T) {
	if err := NewFontBuilder().Build(nil); err == nil {
		t.Errorf("Build(nil) error = nil, want error")
	}
}
