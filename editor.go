package karte

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// sidebarWidth is the right-hand tool column: the 16-wide glyph selector
// plus its frame.
const sidebarWidth = sheetGrid + 2

// Editor composes the widget tree and owns the glyph currently being
// painted with. Input routes to every widget, the widgets mutate the
// current glyph or the canvas, and the status line reflects the result.
type Editor struct {
	cfg Config
	res *Resourcer
	tex *Texture

	ui     *Interface
	canvas *Canvas
	status *Label
	cur    *Glyph

	quitRequested bool
}

// NewEditor loads the glyph sheet and builds the widget layout for the
// configured grid.
func NewEditor(cfg Config) (*Editor, error) {
	res := NewResourcer()
	tex, err := res.Texture(cfg.Sheet)
	if err != nil {
		res.Free()
		return nil, err
	}

	e := &Editor{
		cfg: cfg,
		res: res,
		tex: tex,
		ui:  NewInterface(),
		cur: &Glyph{Index: 1, Fg: ColorWhite, Bg: ColorBlack},
	}
	e.buildLayout()
	return e, nil
}

func (e *Editor) buildLayout() {
	sidebarX := e.cfg.Columns - sidebarWidth
	statusY := e.cfg.Rows - 1

	// Drawing surface, framed, left of the sidebar.
	e.ui.Add(NewPanel(Rect{X: 0, Y: 0, W: sidebarX, H: statusY}, BorderSingle, ColorDarkGrey))
	e.canvas = NewCanvas(Rect{X: 1, Y: 1, W: sidebarX - 2, H: statusY - 2}, true)
	e.ui.Add(e.canvas)

	// Glyph selector with a double frame.
	e.ui.Add(NewPanel(Rect{X: sidebarX, Y: 0, W: sidebarWidth, H: sheetGrid + 2}, BorderDouble, ColorGrey))
	e.ui.Add(NewGlyphSelector(sidebarX+1, 1, ColorWhite))

	// Palette strips for foreground and background.
	y := sheetGrid + 2
	e.ui.Add(NewLabel(sidebarX+1, y, "FG", ColorLightGrey, ColorBlack))
	fg := NewColorSelector(sidebarX+1, y+1, 8, SelectorForeground)
	e.ui.Add(fg)

	y += 1 + fg.Rect().H
	e.ui.Add(NewLabel(sidebarX+1, y, "BG", ColorLightGrey, ColorBlack))
	bg := NewColorSelector(sidebarX+1, y+1, 8, SelectorBackground)
	e.ui.Add(bg)

	y += 1 + bg.Rect().H
	e.ui.Add(NewButton(sidebarX+1, y, "CLEAR", e.canvas.Clear))

	e.status = NewLabel(1, statusY, "", ColorLightGrey, ColorBlack)
	e.ui.Add(e.status)
}

// Canvas returns the drawing surface.
func (e *Editor) Canvas() *Canvas {
	return e.canvas
}

// CurrentGlyph returns the glyph being painted with.
func (e *Editor) CurrentGlyph() *Glyph {
	return e.cur
}

// QuitRequested reports whether the editor wants to shut down.
func (e *Editor) QuitRequested() bool {
	return e.quitRequested
}

// HandleInput feeds the snapshot to the widgets and resolves the editor
// key bindings.
func (e *Editor) HandleInput(in *Input) {
	e.ui.HandleInput(in)

	if in.KeyPressed(ebiten.KeyEscape) {
		e.quitRequested = true
	}
	if in.KeyPressed(ebiten.KeyC) {
		e.canvas.Clear()
	}
}

// Update advances the widgets and refreshes the status line.
func (e *Editor) Update(dt float64) {
	e.ui.Update(e.cur, dt)
	e.status.SetText(fmt.Sprintf("IDX %3d  FG %3d,%3d,%3d  BG %3d,%3d,%3d",
		e.cur.Index,
		e.cur.Fg.R, e.cur.Fg.G, e.cur.Fg.B,
		e.cur.Bg.R, e.cur.Bg.G, e.cur.Bg.B))
}

// Render draws the widget tree.
func (e *Editor) Render(screen *ebiten.Image) {
	e.ui.Render(screen, e.tex)
}

// Free releases the widget list and every cached texture.
func (e *Editor) Free() {
	e.ui.Free()
	e.res.Free()
}
