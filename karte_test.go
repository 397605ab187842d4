package karte

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},  // top-left cell
		{5, 4, true},  // bottom-right cell
		{6, 3, false}, // one past the right edge
		{2, 5, false}, // one past the bottom edge
		{1, 3, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPaletteShape(t *testing.T) {
	if len(Palette) != 24 {
		t.Errorf("len(Palette) = %d, want 24", len(Palette))
	}

	seen := map[Color]bool{}
	for _, c := range Palette {
		if seen[c] {
			t.Errorf("duplicate palette entry %v", c)
		}
		seen[c] = true
	}

	if Palette[len(Palette)-1] != ColorBlank {
		t.Errorf("last palette entry = %v, want blank", Palette[len(Palette)-1])
	}
}
