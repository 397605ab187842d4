package karte

import "github.com/hajimehoshi/ebiten/v2"

// glyphFilled is the sheet index of the solid block cell, used for glyph
// backgrounds and color swatches.
const glyphFilled = 219

// glyphBlank is the sheet index an erased cell returns to.
const glyphBlank = 0

// Glyph is a single character cell: a sheet index plus foreground and
// background colors. X and Y are glyph coordinates.
type Glyph struct {
	X, Y  int
	Index int
	Fg    Color
	Bg    Color
}

// NewGlyph returns a blank glyph at the given cell.
func NewGlyph(x, y int) *Glyph {
	return &Glyph{X: x, Y: y, Index: glyphBlank, Fg: ColorBlank, Bg: ColorBlack}
}

// CopyAppearance copies index and colors from src, leaving the position
// alone. Placement and sampling both go through this.
func (g *Glyph) CopyAppearance(src *Glyph) {
	g.Index = src.Index
	g.Fg = src.Fg
	g.Bg = src.Bg
}

// Erase resets the glyph to the blank appearance.
func (g *Glyph) Erase() {
	g.Index = glyphBlank
	g.Fg = ColorBlank
	g.Bg = ColorBlack
}

// Render draws the background as the filled cell, then the foreground
// glyph tinted on top. Both passes alpha blend.
func (g *Glyph) Render(screen *ebiten.Image, tex *Texture) {
	px := float64(g.X * tex.GlyphW)
	py := float64(g.Y * tex.GlyphH)

	if g.Bg.A > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(px, py)
		scaleColor(op, g.Bg)
		screen.DrawImage(tex.glyphImage(glyphFilled), op)
	}

	if g.Fg.A > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(px, py)
		scaleColor(op, g.Fg)
		screen.DrawImage(tex.glyphImage(g.Index), op)
	}
}

// scaleColor applies c to the draw options as a premultiplied color scale.
func scaleColor(op *ebiten.DrawImageOptions, c Color) {
	a := float32(c.A) / 255
	op.ColorScale.Scale(
		float32(c.R)/255*a,
		float32(c.G)/255*a,
		float32(c.B)/255*a,
		a,
	)
}
