package reticle

import "testing"

// --- Whole-rectangle drags ---

func TestDragWholeFollowsMouse(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	if !w.Pick(3, 3) { // grab offset (1, 1) from the position
		t.Fatal("pick failed")
	}
	w.DragTo(5, 5, true)
	assertVec(t, "position", w.Position(), Vec2{4, 4})
	assertVec(t, "size", w.Size(), Vec2{3, 3})

	w.DragTo(2.5, 6, true)
	assertVec(t, "position", w.Position(), Vec2{1.5, 5})
}

func TestDragWholeClampsAtBounds(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.Pick(3, 3)
	w.DragTo(20, 20, true)
	// Position clamps to HighValue, then the far edge rule pulls it back to
	// 11-3 on both axes.
	assertVec(t, "position", w.Position(), Vec2{8, 8})
	assertVec(t, "size", w.Size(), Vec2{3, 3})
}

func TestDragIgnoredOutsideAxes(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.Pick(3, 3)
	w.DragTo(5, 5, false)
	assertVec(t, "position", w.Position(), Vec2{2, 2})
}

func TestDragWithoutPickIsNoop(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.DragTo(5, 5, true)
	assertVec(t, "position", w.Position(), Vec2{2, 2})
}

func TestReleaseEndsGestureWithoutMoving(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.Pick(3, 3)
	w.DragTo(5, 5, true)
	pos := w.Position()
	w.Release()
	if w.Dragging() {
		t.Error("still dragging after Release")
	}
	assertVec(t, "position after release", w.Position(), pos)
	w.DragTo(9, 9, true) // gesture over; must not move
	assertVec(t, "position after stray move", w.Position(), pos)
}

// A drag clamped back to its starting geometry must fire no notifications.
func TestDragFullyClampedFiresNothing(t *testing.T) {
	w := newTestWidget()
	w.Pick(0.2, 0.2) // widget at (0,0) size (1,1); patch [-0.5, 0.5]
	var c changeCounter
	c.attach(w)
	w.DragTo(-8, -8, true)
	if c.pos != 0 || c.size != 0 {
		t.Errorf("clamped drag fired %d/%d notifications, want 0/0", c.pos, c.size)
	}
}

// --- Corner drags ---

func TestDragCornerMovesEdges(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(5, 5, 3, 3); err != nil {
		t.Fatal(err)
	}
	// Patch spans [4.5, 7.5] on both axes.
	w.PickCorner(CornerBottomRight)
	w.DragTo(9, 8.5, true)
	// The left/top edges stay; only the size follows the mouse.
	assertVec(t, "position", w.Position(), Vec2{5, 5})
	assertVec(t, "size", w.Size(), Vec2{4.5, 4})

	c, _ := w.ActiveCorner()
	if c != CornerBottomRight {
		t.Errorf("corner changed to %v without a flip", c)
	}
}

func TestDragCornerTopLeftMovesPosition(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(5, 5, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.PickCorner(CornerTopLeft)
	w.DragTo(3.5, 2.5, true)
	// Dragged edges land on the mouse; far edges hold at 7.5, and the
	// position regains its half-cell offset.
	assertVec(t, "position", w.Position(), Vec2{4, 3})
	assertVec(t, "size", w.Size(), Vec2{4, 5})
}

func TestDragCornerFlipHorizontal(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(5, 5, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.PickCorner(CornerBottomRight)
	w.DragTo(2, 6, true) // crosses the left patch edge at 4.5

	c, _ := w.ActiveCorner()
	if c != CornerBottomLeft {
		t.Errorf("corner = %v, want bottom-left after horizontal flip", c)
	}
	// New width is oldLeft - mouseX = 4.5 - 2.
	assertVec(t, "size", w.Size(), Vec2{2.5, 1.5})
	assertVec(t, "position", w.Position(), Vec2{2.5, 5})
}

func TestDragCornerFlipVertical(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(5, 5, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.PickCorner(CornerTopLeft)
	w.DragTo(5.5, 9.5, true) // crosses the bottom patch edge at 7.5

	c, _ := w.ActiveCorner()
	if c != CornerBottomLeft {
		t.Errorf("corner = %v, want bottom-left after vertical flip", c)
	}
	// New top is the old bottom; height follows the mouse: 9.5 - 7.5.
	assertVec(t, "position", w.Position(), Vec2{6, 8})
	assertVec(t, "size", w.Size(), Vec2{2, 2})
}

func TestDragCornerPinsAtOneCell(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(5, 5, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.PickCorner(CornerTopLeft)
	w.DragTo(7.2, 7.2, true) // within one cell of the far edges: pin, no flip

	c, _ := w.ActiveCorner()
	if c != CornerTopLeft {
		t.Errorf("corner = %v, want top-left (no flip)", c)
	}
	assertVec(t, "position", w.Position(), Vec2{7, 7})
	assertVec(t, "size", w.Size(), Vec2{1, 1})
}

// Dragging the bottom-right corner to (1, 1) from a 3x3 widget at (2, 2):
// both axes flip, the size floors at one cell, and the active corner ends
// up top-left.
func TestDragCornerDoubleFlipToMinimum(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(2, 2, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.PickCorner(CornerBottomRight)
	w.DragTo(1, 1, true)

	c, _ := w.ActiveCorner()
	if c != CornerTopLeft {
		t.Errorf("corner = %v, want top-left after double flip", c)
	}
	assertVec(t, "position", w.Position(), Vec2{1, 1})
	assertVec(t, "size", w.Size(), Vec2{1, 1})
}

// With resizers on, the grab point is the handle center: the mouse is
// shifted half a handle toward the patch before edges are resolved.
func TestDragCornerHandleOffsetCorrection(t *testing.T) {
	w := newTestWidget()
	w.Resizers = true
	if err := w.SetBounds(5, 5, 3, 3); err != nil {
		t.Fatal(err)
	}
	if !w.Pick(8, 8) { // bottom-right handle spans [7.5, 8.5]
		t.Fatal("handle pick failed")
	}
	w.DragTo(9, 9, true) // corrected to (8.5, 8.5)
	assertVec(t, "size", w.Size(), Vec2{4, 4})
	assertVec(t, "position", w.Position(), Vec2{5, 5})
}

// Corner resize can never push the patch outside the axes.
func TestDragCornerClampedAtAxisEdge(t *testing.T) {
	w := newTestWidget()
	if err := w.SetBounds(5, 5, 3, 3); err != nil {
		t.Fatal(err)
	}
	w.PickCorner(CornerBottomRight)
	w.DragTo(13, 13, true)
	// Size follows the mouse (13 - 4.5), and the far-edge rule shifts the
	// position back instead of shrinking: 11 - 8.5.
	assertVec(t, "position", w.Position(), Vec2{2.5, 2.5})
	assertVec(t, "size", w.Size(), Vec2{8.5, 8.5})
	p := w.PatchBounds()
	if p.X+p.Width > 11+epsilon || p.Y+p.Height > 11+epsilon {
		t.Errorf("patch %v extends past the axes", p)
	}
}
