package karte

import "testing"

// findGlyph returns the panel glyph at (x, y), or nil.
func findGlyph(p *Panel, x, y int) *Glyph {
	for i := 0; i < p.glyphs.Len(); i++ {
		g := p.glyphs.At(i)
		if g.X == x && g.Y == y {
			return g
		}
	}
	return nil
}

func TestPanelFrameGlyphCount(t *testing.T) {
	p := NewPanel(Rect{X: 0, Y: 0, W: 6, H: 4}, BorderSingle, ColorGrey)

	// Perimeter of a 6x4 rect: 2*6 + 2*4 - 4 corners counted once.
	want := 2*6 + 2*4 - 4
	if p.glyphs.Len() != want {
		t.Errorf("glyph count = %d, want %d", p.glyphs.Len(), want)
	}
}

func TestPanelSingleBorderCorners(t *testing.T) {
	p := NewPanel(Rect{X: 2, Y: 1, W: 5, H: 3}, BorderSingle, ColorGrey)

	tests := []struct {
		x, y, index int
	}{
		{2, 1, 218}, // top-left
		{6, 1, 191}, // top-right
		{2, 3, 192}, // bottom-left
		{6, 3, 217}, // bottom-right
		{4, 1, 196}, // top edge
		{2, 2, 179}, // left edge
	}
	for _, tt := range tests {
		g := findGlyph(p, tt.x, tt.y)
		if g == nil {
			t.Errorf("no glyph at (%d, %d)", tt.x, tt.y)
			continue
		}
		if g.Index != tt.index {
			t.Errorf("glyph at (%d, %d) index = %d, want %d", tt.x, tt.y, g.Index, tt.index)
		}
	}
}

func TestPanelDoubleBorderCorners(t *testing.T) {
	p := NewPanel(Rect{X: 0, Y: 0, W: 3, H: 3}, BorderDouble, ColorGrey)

	if g := findGlyph(p, 0, 0); g == nil || g.Index != 201 {
		t.Error("top-left corner should use the double-line glyph")
	}
	if g := findGlyph(p, 2, 2); g == nil || g.Index != 188 {
		t.Error("bottom-right corner should use the double-line glyph")
	}
}

func TestPanelSetColor(t *testing.T) {
	p := NewPanel(Rect{X: 0, Y: 0, W: 3, H: 3}, BorderSingle, ColorGrey)
	p.SetColor(ColorGold)

	for i := 0; i < p.glyphs.Len(); i++ {
		if got := p.glyphs.At(i).Fg; got != ColorGold {
			t.Errorf("glyph %d Fg = %v, want gold", i, got)
		}
	}
}
