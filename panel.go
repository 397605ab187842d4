package karte

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/karte/container"
)

// BorderStyle selects the line glyphs a panel is framed with.
type BorderStyle uint8

const (
	BorderSingle BorderStyle = iota // ┌─┐ style line glyphs
	BorderDouble                    // ╔═╗ style line glyphs
)

// borderSet holds the six sheet indices a frame needs, code page 437.
type borderSet struct {
	topLeft, topRight, bottomLeft, bottomRight, horizontal, vertical int
}

var borderSets = [2]borderSet{
	BorderSingle: {218, 191, 192, 217, 196, 179},
	BorderDouble: {201, 187, 200, 188, 205, 186},
}

// Panel is a rectangular frame of line glyphs. Panels only decorate; they
// take no input.
type Panel struct {
	rect   Rect
	style  BorderStyle
	fg     Color
	glyphs *container.Vector[*Glyph]
}

// NewPanel creates a frame around rect. Rectangles smaller than 2×2 cells
// have no interior and degenerate to their corner glyphs.
func NewPanel(rect Rect, style BorderStyle, fg Color) *Panel {
	p := &Panel{rect: rect, style: style, fg: fg, glyphs: container.NewVector[*Glyph]()}
	p.build()
	return p
}

// Rect returns the framed rectangle.
func (p *Panel) Rect() Rect {
	return p.rect
}

func (p *Panel) build() {
	set := borderSets[p.style]
	right := p.rect.X + p.rect.W - 1
	bottom := p.rect.Y + p.rect.H - 1

	add := func(x, y, index int) {
		g := NewGlyph(x, y)
		g.Index = index
		g.Fg = p.fg
		g.Bg = ColorBlack
		p.glyphs.Push(g)
	}

	add(p.rect.X, p.rect.Y, set.topLeft)
	add(right, p.rect.Y, set.topRight)
	add(p.rect.X, bottom, set.bottomLeft)
	add(right, bottom, set.bottomRight)
	for x := p.rect.X + 1; x < right; x++ {
		add(x, p.rect.Y, set.horizontal)
		add(x, bottom, set.horizontal)
	}
	for y := p.rect.Y + 1; y < bottom; y++ {
		add(p.rect.X, y, set.vertical)
		add(right, y, set.vertical)
	}
}

// SetColor recolors the frame in place.
func (p *Panel) SetColor(fg Color) {
	p.fg = fg
	for i := 0; i < p.glyphs.Len(); i++ {
		p.glyphs.At(i).Fg = fg
	}
}

// HandleInput is a no-op; panels only decorate.
func (p *Panel) HandleInput(*Input) {}

// Update is a no-op; panels only decorate.
func (p *Panel) Update(*Glyph, float64) {}

// Render draws the frame.
func (p *Panel) Render(screen *ebiten.Image, tex *Texture) {
	for i := 0; i < p.glyphs.Len(); i++ {
		p.glyphs.At(i).Render(screen, tex)
	}
}
