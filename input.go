package karte

import "github.com/hajimehoshi/ebiten/v2"

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // places / selects
	MouseButtonRight                     // erases
	MouseButtonMiddle                    // samples the hovered glyph
	mouseButtonCount
)

// watchedKeys is the set of keys polled each frame. The editor is almost
// entirely mouse driven.
var watchedKeys = []ebiten.Key{
	ebiten.KeyEscape,
	ebiten.KeyF1,
	ebiten.KeyC,
}

// deviceState is one raw poll of the devices, in pixel coordinates.
type deviceState struct {
	mouseX, mouseY int
	buttons        [mouseButtonCount]bool
	keys           map[ebiten.Key]bool
}

func pollDevices() deviceState {
	st := deviceState{keys: make(map[ebiten.Key]bool, len(watchedKeys))}
	st.mouseX, st.mouseY = ebiten.CursorPosition()
	st.buttons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	st.buttons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	st.buttons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	for _, k := range watchedKeys {
		if ebiten.IsKeyPressed(k) {
			st.keys[k] = true
		}
	}
	return st
}

// Input is the per-frame input snapshot. The mouse position is snapped to
// glyph cells, and press/release edges are derived by comparing successive
// polls. One Input instance is polled once per frame by the application
// loop and read by every widget.
type Input struct {
	MouseX, MouseY int // glyph coordinates
	PixelX, PixelY int

	glyphW, glyphH int
	cur, prev      deviceState
	poll           func() deviceState
}

// NewInput creates an input poller snapping to the given glyph cell size.
func NewInput(glyphW, glyphH int) *Input {
	return &Input{glyphW: glyphW, glyphH: glyphH, poll: pollDevices}
}

// Update takes a fresh device poll and recomputes the edge states against
// the previous frame.
func (in *Input) Update() {
	in.prev = in.cur
	in.cur = in.poll()

	in.PixelX = in.cur.mouseX
	in.PixelY = in.cur.mouseY
	if in.glyphW > 0 {
		in.MouseX = in.cur.mouseX / in.glyphW
	}
	if in.glyphH > 0 {
		in.MouseY = in.cur.mouseY / in.glyphH
	}
}

// MouseDown reports whether the button is currently held.
func (in *Input) MouseDown(b MouseButton) bool {
	return in.cur.buttons[b]
}

// MousePressed reports a press edge: held this frame, up the last.
func (in *Input) MousePressed(b MouseButton) bool {
	return in.cur.buttons[b] && !in.prev.buttons[b]
}

// MouseReleased reports a release edge: up this frame, held the last.
func (in *Input) MouseReleased(b MouseButton) bool {
	return !in.cur.buttons[b] && in.prev.buttons[b]
}

// MouseWithin reports whether the hovered cell lies inside r.
func (in *Input) MouseWithin(r Rect) bool {
	return r.Contains(in.MouseX, in.MouseY)
}

// KeyDown reports whether the key is currently held.
func (in *Input) KeyDown(k ebiten.Key) bool {
	return in.cur.keys[k]
}

// KeyPressed reports a press edge for the key.
func (in *Input) KeyPressed(k ebiten.Key) bool {
	return in.cur.keys[k] && !in.prev.keys[k]
}
