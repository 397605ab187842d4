package karte

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// tickDelta is the fixed update step at ebiten's default 60 ticks per
// second.
const tickDelta = 1.0 / 60.0

// Application drives the frame loop: poll the input snapshot, let the
// editor react and advance, draw. It implements [ebiten.Game].
type Application struct {
	cfg     Config
	editor  *Editor
	input   *Input
	showFPS bool
}

// NewApplication builds the editor for cfg.
func NewApplication(cfg Config) (*Application, error) {
	editor, err := NewEditor(cfg)
	if err != nil {
		return nil, err
	}
	return &Application{
		cfg:     cfg,
		editor:  editor,
		input:   NewInput(editor.tex.GlyphW, editor.tex.GlyphH),
		showFPS: cfg.ShowFPS,
	}, nil
}

// Update implements ebiten.Game.
func (a *Application) Update() error {
	a.input.Update()

	if a.input.KeyPressed(ebiten.KeyF1) {
		a.showFPS = !a.showFPS
	}

	a.editor.HandleInput(a.input)
	a.editor.Update(tickDelta)

	if a.editor.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *Application) Draw(screen *ebiten.Image) {
	a.editor.Render(screen)

	if a.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game. The logical resolution is the glyph grid
// in sheet pixels; the window scale stretches it outside.
func (a *Application) Layout(int, int) (int, int) {
	return a.cfg.Columns * a.editor.tex.GlyphW, a.cfg.Rows * a.editor.tex.GlyphH
}

// Run opens the window and drives the editor until it quits or the window
// closes.
func Run(cfg Config) error {
	app, err := NewApplication(cfg)
	if err != nil {
		return err
	}
	defer app.editor.Free()

	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("karte: %w", err)
	}
	return nil
}
