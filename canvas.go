package karte

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/karte/container"
)

// CanvasOp is the operation a canvas resolved from this frame's input.
type CanvasOp uint8

const (
	CanvasNone   CanvasOp = iota
	CanvasPlace           // stamp the current glyph onto a cell
	CanvasErase           // reset a cell to blank
	CanvasSelect          // sample a cell into the current glyph
)

// Cursor blink range and period.
const (
	blinkLow    float32 = 0.15
	blinkHigh   float32 = 0.55
	blinkPeriod float32 = 0.4
)

// Canvas is a rectangular glyph grid. A writable canvas is the drawing
// surface: the left button places the current glyph, the right erases, and
// the middle samples the hovered cell. A non-writable canvas is
// display-only and the left button samples instead.
type Canvas struct {
	rect     Rect
	writable bool
	glyphs   *container.Vector[*Glyph]

	op    CanvasOp
	index int // target cell of op, as a glyph list index

	cursor      int // hovered cell, -1 when the mouse is outside
	blink       *gween.Tween
	blinkAlpha  float32
	blinkRising bool
}

// NewCanvas creates a canvas of blank glyphs filling rect.
func NewCanvas(rect Rect, writable bool) *Canvas {
	c := &Canvas{
		rect:        rect,
		writable:    writable,
		glyphs:      container.NewVector[*Glyph](),
		index:       -1,
		cursor:      -1,
		blink:       gween.New(blinkLow, blinkHigh, blinkPeriod, ease.InOutQuad),
		blinkAlpha:  blinkLow,
		blinkRising: true,
	}
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			c.glyphs.Push(NewGlyph(x, y))
		}
	}
	return c
}

// Rect returns the canvas bounds in glyph coordinates.
func (c *Canvas) Rect() Rect {
	return c.rect
}

// Glyph returns the cell at (x, y) in canvas-absolute glyph coordinates,
// or nil outside the bounds.
func (c *Canvas) Glyph(x, y int) *Glyph {
	if !c.rect.Contains(x, y) {
		return nil
	}
	return c.glyphs.At((y-c.rect.Y)*c.rect.W + (x - c.rect.X))
}

// Clear resets every cell to blank.
func (c *Canvas) Clear() {
	for i := 0; i < c.glyphs.Len(); i++ {
		c.glyphs.At(i).Erase()
	}
}

// HandleInput resolves this frame's operation. The mouse is snapped to
// glyph cells already, so each cell is a 1×1 rect hit test, the way every
// other widget does it.
func (c *Canvas) HandleInput(in *Input) {
	c.op = CanvasNone
	c.index = -1
	c.cursor = -1

	if !in.MouseWithin(c.rect) {
		return
	}

	for i := 0; i < c.glyphs.Len(); i++ {
		g := c.glyphs.At(i)
		cell := Rect{X: g.X, Y: g.Y, W: 1, H: 1}
		if !in.MouseWithin(cell) {
			continue
		}
		c.cursor = i

		if !c.writable {
			if in.MouseDown(MouseButtonLeft) || in.MousePressed(MouseButtonLeft) {
				c.op = CanvasSelect
				c.index = i
			}
			continue
		}

		if in.MouseDown(MouseButtonLeft) || in.MousePressed(MouseButtonLeft) {
			c.op = CanvasPlace
			c.index = i
		} else if in.MouseDown(MouseButtonRight) || in.MousePressed(MouseButtonRight) {
			c.op = CanvasErase
			c.index = i
		} else if in.MouseDown(MouseButtonMiddle) || in.MousePressed(MouseButtonMiddle) {
			c.op = CanvasSelect
			c.index = i
		}
	}
}

// Update applies the resolved operation against the current glyph and
// advances the cursor blink.
func (c *Canvas) Update(cur *Glyph, dt float64) {
	c.advanceBlink(dt)

	if cur == nil || c.index < 0 || c.index >= c.glyphs.Len() {
		return
	}

	switch c.op {
	case CanvasPlace:
		c.glyphs.At(c.index).CopyAppearance(cur)
	case CanvasErase:
		c.glyphs.At(c.index).Erase()
	case CanvasSelect:
		cur.CopyAppearance(c.glyphs.At(c.index))
	}
}

// advanceBlink drives the cursor pulse, reversing the tween at each end.
func (c *Canvas) advanceBlink(dt float64) {
	alpha, finished := c.blink.Update(float32(dt))
	c.blinkAlpha = alpha
	if finished {
		if c.blinkRising {
			c.blink = gween.New(blinkHigh, blinkLow, blinkPeriod, ease.InOutQuad)
		} else {
			c.blink = gween.New(blinkLow, blinkHigh, blinkPeriod, ease.InOutQuad)
		}
		c.blinkRising = !c.blinkRising
	}
}

// Render draws the grid, then the pulsing cursor highlight over the
// hovered cell of a writable canvas.
func (c *Canvas) Render(screen *ebiten.Image, tex *Texture) {
	for i := 0; i < c.glyphs.Len(); i++ {
		c.glyphs.At(i).Render(screen, tex)
	}

	if !c.writable || c.cursor < 0 {
		return
	}
	g := c.glyphs.At(c.cursor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.X*tex.GlyphW), float64(g.Y*tex.GlyphH))
	a := c.blinkAlpha
	op.ColorScale.Scale(a, a, a, a)
	screen.DrawImage(tex.glyphImage(glyphFilled), op)
}
