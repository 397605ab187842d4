package karte

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubWidget records the calls the interface dispatches to it.
type stubWidget struct {
	name    string
	inputs  int
	updates int
	log     *[]string
}

func (w *stubWidget) HandleInput(*Input) {
	w.inputs++
	*w.log = append(*w.log, w.name)
}

func (w *stubWidget) Update(*Glyph, float64) {
	w.updates++
}

func (w *stubWidget) Render(*ebiten.Image, *Texture) {}

func TestInterfaceDispatchOrder(t *testing.T) {
	var order []string
	a := &stubWidget{name: "a", log: &order}
	b := &stubWidget{name: "b", log: &order}
	c := &stubWidget{name: "c", log: &order}

	ui := NewInterface()
	ui.Add(a)
	ui.Add(b)
	ui.Add(c)

	ui.HandleInput(nil)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("dispatch order = %v, want [a b c]", order)
	}

	ui.Update(nil, tickDelta)
	if a.updates != 1 || b.updates != 1 || c.updates != 1 {
		t.Errorf("updates = %d/%d/%d, want 1 each", a.updates, b.updates, c.updates)
	}
}

func TestInterfaceRemovePreservesOrder(t *testing.T) {
	var order []string
	a := &stubWidget{name: "a", log: &order}
	b := &stubWidget{name: "b", log: &order}
	c := &stubWidget{name: "c", log: &order}

	ui := NewInterface()
	ui.Add(a)
	ui.Add(b)
	ui.Add(c)

	ui.Remove(b)

	if ui.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ui.Len())
	}
	ui.HandleInput(nil)
	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("dispatch order = %v, want [a c]", order)
	}
}

func TestInterfaceRemoveUnknownIsNoOp(t *testing.T) {
	var order []string
	a := &stubWidget{name: "a", log: &order}

	ui := NewInterface()
	ui.Add(a)
	ui.Remove(&stubWidget{name: "ghost", log: &order})

	if ui.Len() != 1 {
		t.Errorf("Len = %d, want 1", ui.Len())
	}
}
