package declwin

import "fmt"

// Font is a shared text resource. Fonts are built before any control
// that uses them; the generated code orders resource builds first for
// exactly that reason.
type Font struct {
	handle Handle
}

// Handle returns the font's resource handle.
func (f *Font) Handle() Handle { return f.handle }

// FontBuilder assembles a Font.
type FontBuilder struct {
	spec FontSpec
}

// NewFontBuilder returns a builder for a 16 pixel system-default
// family font.
func NewFontBuilder() *FontBuilder {
	return &FontBuilder{spec: FontSpec{Family: "System", Size: 16}}
}

// Family sets the font family name.
func (b *FontBuilder) Family(name string) *FontBuilder { b.spec.Family = name; return b }

// Size sets the font height in pixels.
func (b *FontBuilder) Size(px int) *FontBuilder { b.spec.Size = px; return b }

// Weight sets the font weight on the 0 to 1000 scale, 0 meaning the
// system default.
func (b *FontBuilder) Weight(w int) *FontBuilder { b.spec.Weight = w; return b }

// Italic slants the font.
func (b *FontBuilder) Italic(v bool) *FontBuilder { b.spec.Italic = v; return b }

// Build creates the font resource and binds it to out.
func (b *FontBuilder) Build(out *Font) error {
	if out == nil {
		return fmt.Errorf("Font build target is nil")
	}
	if b.spec.Weight < 0 || b.spec.Weight > 1000 {
		return fmt.Errorf("font weight %d is outside 0-1000", b.spec.Weight)
	}
	h, err := activeBackend().createFont(b.spec)
	if err != nil {
		return fmt.Errorf("creating font %q: %w", b.spec.Family, err)
	}
	out.handle = h
	return nil
}
