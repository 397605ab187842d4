package karte

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/karte/container"
)

// Label is a fixed run of glyphs spelling a line of text. The glyph sheet
// is laid out in code page 437 order, so printable ASCII maps directly to
// sheet indices.
type Label struct {
	X, Y   int
	Fg, Bg Color

	text   string
	glyphs *container.Vector[*Glyph]
}

// NewLabel creates a label at the given cell.
func NewLabel(x, y int, text string, fg, bg Color) *Label {
	l := &Label{X: x, Y: y, Fg: fg, Bg: bg, glyphs: container.NewVector[*Glyph]()}
	l.SetText(text)
	return l
}

// Text returns the current text.
func (l *Label) Text() string {
	return l.text
}

// SetText rebuilds the glyph run. Bytes outside the sheet range render as
// the blank glyph.
func (l *Label) SetText(text string) {
	l.text = text

	for l.glyphs.Len() > 0 {
		l.glyphs.Delete(l.glyphs.Len() - 1)
	}
	for i := 0; i < len(text); i++ {
		g := NewGlyph(l.X+i, l.Y)
		index := int(text[i])
		if index >= sheetGrid*sheetGrid {
			index = glyphBlank
		}
		g.Index = index
		g.Fg = l.Fg
		g.Bg = l.Bg
		l.glyphs.Push(g)
	}
}

// SetColors recolors the run in place.
func (l *Label) SetColors(fg, bg Color) {
	l.Fg = fg
	l.Bg = bg
	for i := 0; i < l.glyphs.Len(); i++ {
		g := l.glyphs.At(i)
		g.Fg = fg
		g.Bg = bg
	}
}

// HandleInput is a no-op; labels are inert.
func (l *Label) HandleInput(*Input) {}

// Update is a no-op; labels are inert.
func (l *Label) Update(*Glyph, float64) {}

// Render draws the glyph run.
func (l *Label) Render(screen *ebiten.Image, tex *Texture) {
	for i := 0; i < l.glyphs.Len(); i++ {
		l.glyphs.At(i).Render(screen, tex)
	}
}
