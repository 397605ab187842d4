package karte

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/karte/container"
)

// Widget is anything the interface composes. Each frame a widget first
// reacts to the input snapshot, then advances its state against the glyph
// currently being painted with, then renders.
type Widget interface {
	HandleInput(in *Input)
	Update(cur *Glyph, dt float64)
	Render(screen *ebiten.Image, tex *Texture)
}

// Interface is the ordered widget collection. Widgets are processed in
// insertion order for input and update, and rendered in the same order, so
// later widgets draw on top.
//
// The interface borrows its widgets; removing or freeing never releases
// widget resources.
type Interface struct {
	widgets *container.Vector[Widget]
}

// NewInterface creates an empty widget collection.
func NewInterface() *Interface {
	return &Interface{widgets: container.NewVector[Widget]()}
}

// Add appends a widget.
func (ui *Interface) Add(w Widget) {
	ui.widgets.Push(w)
}

// Remove drops the first occurrence of w, preserving the order of the
// rest. Unknown widgets are ignored.
func (ui *Interface) Remove(w Widget) {
	for i := 0; i < ui.widgets.Len(); i++ {
		if ui.widgets.At(i) == w {
			ui.widgets.Delete(i)
			return
		}
	}
}

// Len returns the widget count.
func (ui *Interface) Len() int {
	return ui.widgets.Len()
}

// HandleInput feeds the snapshot to every widget in order.
func (ui *Interface) HandleInput(in *Input) {
	for i := 0; i < ui.widgets.Len(); i++ {
		ui.widgets.At(i).HandleInput(in)
	}
}

// Update advances every widget in order.
func (ui *Interface) Update(cur *Glyph, dt float64) {
	for i := 0; i < ui.widgets.Len(); i++ {
		ui.widgets.At(i).Update(cur, dt)
	}
}

// Render draws every widget in order.
func (ui *Interface) Render(screen *ebiten.Image, tex *Texture) {
	for i := 0; i < ui.widgets.Len(); i++ {
		ui.widgets.At(i).Render(screen, tex)
	}
}

// Free releases the widget list. The widgets themselves are borrowed and
// stay alive.
func (ui *Interface) Free() {
	ui.widgets.Free()
}
