package reticle

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeInput drives a Controller without a window by swapping its poll
// functions.
type fakeInput struct {
	x, y    int
	pressed bool
	keys    map[ebiten.Key]bool
}

func newFakeController(w *Widget, vp Viewport) (*Controller, *fakeInput) {
	in := &fakeInput{keys: map[ebiten.Key]bool{}}
	c := NewController(w, vp)
	c.cursorPos = func() (int, int) { return in.x, in.y }
	c.buttonDown = func() bool { return in.pressed }
	c.keyDown = func(k ebiten.Key) bool { return in.keys[k] }
	return c, in
}

// With the test viewport, screen (sx, sy) maps to data (sx/10-0.5, sy/10-0.5):
// pixel 35 is data 3.

func TestControllerDragMovesWidget(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	c, in := newFakeController(w, newTestViewport())

	in.x, in.y, in.pressed = 35, 35, true // press at data (3, 3)
	c.Update()
	if !w.Dragging() {
		t.Fatal("press inside the patch should start a drag")
	}

	in.x, in.y = 55, 55 // move to data (5, 5)
	c.Update()
	assertVec(t, "position", w.Position(), Vec2{4, 4})

	in.pressed = false
	c.Update()
	if w.Dragging() {
		t.Error("release should end the drag")
	}
	assertVec(t, "position after release", w.Position(), Vec2{4, 4})
}

func TestControllerPressOutsideAxesDeselects(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.Selected = true
	c, in := newFakeController(w, newTestViewport())

	in.x, in.y, in.pressed = 300, 300, true
	c.Update()
	if w.Selected || w.Dragging() {
		t.Error("press outside the axes should deselect without dragging")
	}
}

func TestControllerKeyEdgeDetection(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.Selected = true
	c, in := newFakeController(w, newTestViewport())

	in.keys[ebiten.KeyX] = true
	c.Update()
	c.Update() // held, must not re-fire
	assertVec(t, "size after held key", w.Size(), Vec2{4, 3})

	in.keys[ebiten.KeyX] = false
	c.Update()
	in.keys[ebiten.KeyX] = true
	c.Update() // second press fires again
	assertVec(t, "size after second press", w.Size(), Vec2{5, 3})
}

func TestControllerKeyFallback(t *testing.T) {
	w := newTestWidget()
	w.Selected = true
	c, in := newFakeController(w, newTestViewport())

	var fell []ebiten.Key
	c.OnKeyFallback = func(k ebiten.Key) { fell = append(fell, k) }

	in.keys[ebiten.KeyU] = true // recognized: shrink height (no-op at floor)
	c.Update()
	if len(fell) != 0 {
		t.Fatalf("recognized key reached the fallback: %v", fell)
	}

	// An unselected widget rejects every key; the press falls through.
	w.Selected = false
	in.keys[ebiten.KeyU] = false
	c.Update()
	in.keys[ebiten.KeyU] = true
	c.Update()
	if len(fell) != 1 || fell[0] != ebiten.KeyU {
		t.Errorf("fallback keys = %v, want [KeyU]", fell)
	}
}

func TestControllerNavigationCursor(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 4, 4); err != nil {
		t.Fatal(err)
	}
	w.Navigating = true
	w.Selected = true
	c, in := newFakeController(w, newTestViewport())

	in.x, in.y = 65, 65 // hover at data (6, 6), past the position
	c.Update()

	in.keys[ebiten.KeyC] = true
	c.Update()
	// Cursor-anchored shrink: position shifts forward by the shrink amount.
	assertVec(t, "position", w.Position(), Vec2{3, 2})
	assertVec(t, "size", w.Size(), Vec2{3, 4})
}
