package karte

import "testing"

func TestButtonBoundsWrapText(t *testing.T) {
	b := NewButton(2, 2, "OK", nil)
	want := Rect{X: 2, Y: 2, W: 4, H: 3}
	if b.Rect() != want {
		t.Errorf("Rect = %+v, want %+v", b.Rect(), want)
	}
}

func TestButtonPressFiresOnce(t *testing.T) {
	fired := 0
	b := NewButton(0, 0, "OK", func() { fired++ })

	inside := deviceState{mouseX: 8, mouseY: 8} // cell (1, 1)
	held := inside
	held.buttons[MouseButtonLeft] = true

	in := scriptedInput(8, 8, inside, held, held, inside)

	in.Update() // hover only
	b.HandleInput(in)
	if fired != 0 {
		t.Errorf("fired = %d before the press, want 0", fired)
	}
	if !b.Hovered() {
		t.Error("button should be hovered")
	}

	in.Update() // press edge
	b.HandleInput(in)
	if fired != 1 {
		t.Errorf("fired = %d on the press edge, want 1", fired)
	}

	in.Update() // held
	b.HandleInput(in)
	if fired != 1 {
		t.Errorf("fired = %d while held, want 1", fired)
	}

	in.Update() // released
	b.HandleInput(in)
	if fired != 1 {
		t.Errorf("fired = %d after release, want 1", fired)
	}
}

func TestButtonPressOutsideDoesNothing(t *testing.T) {
	fired := 0
	b := NewButton(0, 0, "OK", func() { fired++ })

	outside := deviceState{mouseX: 80, mouseY: 80}
	pressed := outside
	pressed.buttons[MouseButtonLeft] = true

	in := scriptedInput(8, 8, outside, pressed)
	in.Update()
	b.HandleInput(in)
	in.Update()
	b.HandleInput(in)

	if fired != 0 {
		t.Errorf("fired = %d, want 0", fired)
	}
	if b.Hovered() {
		t.Error("button should not be hovered")
	}
}

func TestButtonUpdateRecolors(t *testing.T) {
	b := NewButton(0, 0, "OK", nil)

	b.hovered = true
	b.Update(nil, 0)
	if b.label.Fg != ColorYellow {
		t.Errorf("hovered label Fg = %v, want yellow", b.label.Fg)
	}

	b.pressed = true
	b.Update(nil, 0)
	if b.label.Fg != ColorGold {
		t.Errorf("pressed label Fg = %v, want gold", b.label.Fg)
	}

	b.hovered, b.pressed = false, false
	b.Update(nil, 0)
	if b.label.Fg != ColorLightGrey {
		t.Errorf("idle label Fg = %v, want light grey", b.label.Fg)
	}
}
