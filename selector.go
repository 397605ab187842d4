package karte

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/karte/container"
)

// SelectorKind says which part of the current glyph a selector feeds.
type SelectorKind uint8

const (
	SelectorGlyph      SelectorKind = iota // picks the sheet index
	SelectorForeground                     // picks the foreground color
	SelectorBackground                     // picks the background color
)

// Selector is a grid of choices sampled with the left button. A glyph
// selector shows the full 16×16 sheet; color selectors show the palette as
// filled swatches.
type Selector struct {
	kind   SelectorKind
	rect   Rect
	glyphs *container.Vector[*Glyph]

	picked int // glyph list index chosen this frame, -1 otherwise
}

// NewGlyphSelector creates a selector showing the whole sheet, one cell
// per glyph index, starting at (x, y).
func NewGlyphSelector(x, y int, fg Color) *Selector {
	s := &Selector{
		kind:   SelectorGlyph,
		rect:   Rect{X: x, Y: y, W: sheetGrid, H: sheetGrid},
		glyphs: container.NewVector[*Glyph](),
		picked: -1,
	}
	for i := 0; i < sheetGrid*sheetGrid; i++ {
		g := NewGlyph(x+i%sheetGrid, y+i/sheetGrid)
		g.Index = i
		g.Fg = fg
		g.Bg = ColorBlack
		s.glyphs.Push(g)
	}
	return s
}

// NewColorSelector creates a palette strip of the given kind, width cells
// per row, starting at (x, y). Each swatch stores its color in the glyph
// background.
func NewColorSelector(x, y, width int, kind SelectorKind) *Selector {
	s := &Selector{
		kind:   kind,
		rect:   Rect{X: x, Y: y, W: width, H: (len(Palette) + width - 1) / width},
		glyphs: container.NewVector[*Glyph](),
		picked: -1,
	}
	for i, col := range Palette {
		g := NewGlyph(x+i%width, y+i/width)
		g.Index = glyphFilled
		g.Fg = col
		g.Bg = col
		s.glyphs.Push(g)
	}
	return s
}

// Rect returns the selector bounds.
func (s *Selector) Rect() Rect {
	return s.rect
}

// HandleInput resolves this frame's pick: the hovered cell while the left
// button is down or freshly pressed.
func (s *Selector) HandleInput(in *Input) {
	s.picked = -1

	if !in.MouseWithin(s.rect) {
		return
	}
	if !in.MouseDown(MouseButtonLeft) && !in.MousePressed(MouseButtonLeft) {
		return
	}

	for i := 0; i < s.glyphs.Len(); i++ {
		g := s.glyphs.At(i)
		if in.MouseWithin(Rect{X: g.X, Y: g.Y, W: 1, H: 1}) {
			s.picked = i
			return
		}
	}
}

// Update feeds the pick into the current glyph according to the selector
// kind.
func (s *Selector) Update(cur *Glyph, _ float64) {
	if cur == nil || s.picked < 0 {
		return
	}

	g := s.glyphs.At(s.picked)
	switch s.kind {
	case SelectorGlyph:
		cur.Index = g.Index
	case SelectorForeground:
		cur.Fg = g.Bg
	case SelectorBackground:
		cur.Bg = g.Bg
	}
}

// Render draws the choice grid.
func (s *Selector) Render(screen *ebiten.Image, tex *Texture) {
	for i := 0; i < s.glyphs.Len(); i++ {
		s.glyphs.At(i).Render(screen, tex)
	}
}
