package karte

import "testing"

func TestLabelGlyphRun(t *testing.T) {
	l := NewLabel(3, 5, "AB", ColorWhite, ColorBlack)

	if l.glyphs.Len() != 2 {
		t.Fatalf("glyph count = %d, want 2", l.glyphs.Len())
	}

	first := l.glyphs.At(0)
	if first.X != 3 || first.Y != 5 {
		t.Errorf("first glyph at (%d, %d), want (3, 5)", first.X, first.Y)
	}
	if first.Index != 'A' {
		t.Errorf("first index = %d, want %d", first.Index, 'A')
	}

	second := l.glyphs.At(1)
	if second.X != 4 || second.Index != 'B' {
		t.Errorf("second glyph = (%d, index %d), want (4, index %d)", second.X, second.Index, 'B')
	}
}

func TestLabelSetTextRebuilds(t *testing.T) {
	l := NewLabel(0, 0, "LONG TEXT", ColorWhite, ColorBlack)
	l.SetText("OK")

	if l.Text() != "OK" {
		t.Errorf("Text = %q, want %q", l.Text(), "OK")
	}
	if l.glyphs.Len() != 2 {
		t.Errorf("glyph count = %d, want 2", l.glyphs.Len())
	}
	if got := l.glyphs.At(0).Index; got != 'O' {
		t.Errorf("first index = %d, want %d", got, 'O')
	}
}

func TestLabelSetColors(t *testing.T) {
	l := NewLabel(0, 0, "HI", ColorWhite, ColorBlack)
	l.SetColors(ColorRed, ColorDarkGrey)

	for i := 0; i < l.glyphs.Len(); i++ {
		g := l.glyphs.At(i)
		if g.Fg != ColorRed || g.Bg != ColorDarkGrey {
			t.Errorf("glyph %d colors = %v/%v, want red/darkgrey", i, g.Fg, g.Bg)
		}
	}
}
