package karte

import "github.com/hajimehoshi/ebiten/v2"

// Button is a framed label that reports presses. The frame recolors with
// the hover and press states.
type Button struct {
	rect  Rect
	label *Label
	panel *Panel

	hovered bool
	pressed bool

	// OnPress fires once per click, on the press edge.
	OnPress func()
}

// NewButton creates a button whose frame wraps the text with one cell of
// padding on each side.
func NewButton(x, y int, text string, onPress func()) *Button {
	rect := Rect{X: x, Y: y, W: len(text) + 2, H: 3}
	return &Button{
		rect:    rect,
		label:   NewLabel(x+1, y+1, text, ColorLightGrey, ColorBlack),
		panel:   NewPanel(rect, BorderSingle, ColorGrey),
		OnPress: onPress,
	}
}

// Rect returns the button bounds.
func (b *Button) Rect() Rect {
	return b.rect
}

// Hovered reports whether the mouse is over the button.
func (b *Button) Hovered() bool {
	return b.hovered
}

// HandleInput tracks hover and fires OnPress on a left press edge inside
// the bounds.
func (b *Button) HandleInput(in *Input) {
	b.hovered = in.MouseWithin(b.rect)
	b.pressed = b.hovered && in.MouseDown(MouseButtonLeft)

	if b.hovered && in.MousePressed(MouseButtonLeft) && b.OnPress != nil {
		b.OnPress()
	}
}

// Update recolors the frame and text from the interaction state.
func (b *Button) Update(*Glyph, float64) {
	switch {
	case b.pressed:
		b.panel.SetColor(ColorGold)
		b.label.SetColors(ColorGold, ColorBlack)
	case b.hovered:
		b.panel.SetColor(ColorYellow)
		b.label.SetColors(ColorYellow, ColorBlack)
	default:
		b.panel.SetColor(ColorGrey)
		b.label.SetColors(ColorLightGrey, ColorBlack)
	}
}

// Render draws the frame and the text.
func (b *Button) Render(screen *ebiten.Image, tex *Texture) {
	b.panel.Render(screen, tex)
	b.label.Render(screen, tex)
}
