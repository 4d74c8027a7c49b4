package reticle

// dragSession is the transient state of one drag gesture, created by Pick
// and destroyed by Release.
type dragSession struct {
	resizing bool
	corner   Corner // active handle; updated on flips
	offset   Vec2   // grab point minus position (whole-rectangle drags)
}

// Dragging reports whether a drag gesture is in progress.
func (w *Widget) Dragging() bool { return w.drag != nil }

// ActiveCorner returns the corner currently being dragged, if any. The
// corner changes mid-drag when a flip occurs.
func (w *Widget) ActiveCorner() (Corner, bool) {
	if w.drag == nil || !w.drag.resizing {
		return 0, false
	}
	return w.drag.corner, true
}

// Release ends the current drag gesture. The geometry is left at its last
// committed state; releasing never changes it.
func (w *Widget) Release() {
	w.drag = nil
}

// DragTo processes one mouse-move of an active drag gesture at value-space
// (x, y). inAxes reports whether the pointer is over the axes area; moves
// outside are ignored so the rectangle holds its last valid geometry.
//
// This is a continuous-interaction path: every move validates, commits, and
// notifies immediately, and out-of-range geometry is clamped rather than
// rejected.
func (w *Widget) DragTo(x, y float64, inAxes bool) {
	if w.drag == nil || !inAxes {
		return
	}
	if !w.drag.resizing {
		pos, size := w.validateGeometry(Vec2{x - w.drag.offset.X, y - w.drag.offset.Y}, w.size)
		w.commit(pos, size)
		return
	}
	w.dragCorner(x, y)
}

// dragCorner resolves one move of a corner drag. Each axis is resolved
// independently against the patch extent from before the move:
//
//   - dragged edge crosses the opposite edge: the edge roles flip, the old
//     opposite edge becomes the new near edge, and the active corner flips
//     on that axis;
//   - dragged edge comes within one scale unit of the opposite edge: the
//     size pins at exactly one scale unit, position held against the
//     opposite edge;
//   - otherwise the dragged edge follows the mouse and the opposite edge
//     stays fixed by adjusting the size.
//
// Afterwards the size is floored to one scale unit per axis, the position
// shifted half a scale unit to restore the cell-center convention, and the
// result validated and committed.
func (w *Widget) dragCorner(x, y float64) {
	s := w.drag
	xaxis, yaxis := w.axes[0], w.axes[1]
	p := w.PatchBounds()
	left, top := p.X, p.Y
	right, bottom := p.X+p.Width, p.Y+p.Height

	// With handles visible the grab point is the handle center, not the
	// patch corner; shift the mouse by half a handle toward the patch.
	if w.Resizers {
		hs := w.handleSize()
		if s.corner.Left() {
			x += 0.5 * hs.X
		} else {
			x -= 0.5 * hs.X
		}
		if s.corner.Top() {
			y += 0.5 * hs.Y
		} else {
			y -= 0.5 * hs.Y
		}
	}

	size := w.size
	corner := s.corner
	var posX, posY float64
	havePosX, havePosY := false, false

	if corner.Left() {
		switch {
		case x > right: // crossed the right edge: flip
			posX = right
			size.X = x - posX
			havePosX = true
			corner = corner.flipHorizontal()
		case right-x < xaxis.Scale(): // width under one cell: pin
			posX = right - xaxis.Scale()
			size.X = right - posX
			havePosX = true
		default: // left edge follows the mouse
			posX = x
			size.X = right - x
			havePosX = true
		}
	} else {
		if x < left { // crossed the left edge: flip
			if left-x < xaxis.Scale() {
				posX = left - xaxis.Scale()
			} else {
				posX = x
			}
			size.X = left - posX
			havePosX = true
			corner = corner.flipHorizontal()
		} else { // right edge follows the mouse, left stays
			size.X = x - left
		}
	}

	if corner.Top() {
		switch {
		case y > bottom: // crossed the bottom edge: flip
			posY = bottom
			size.Y = y - posY
			havePosY = true
			corner = corner.flipVertical()
		case bottom-y < yaxis.Scale(): // height under one cell: pin
			posY = bottom - yaxis.Scale()
			size.Y = bottom - posY
			havePosY = true
		default: // top edge follows the mouse
			posY = y
			size.Y = bottom - y
			havePosY = true
		}
	} else {
		if y < top { // crossed the top edge: flip
			if top-y < yaxis.Scale() {
				posY = top - yaxis.Scale()
			} else {
				posY = y
			}
			size.Y = top - posY
			havePosY = true
			corner = corner.flipVertical()
		} else { // bottom edge follows the mouse, top stays
			size.Y = y - top
		}
	}

	if size.X < xaxis.Scale() {
		size.X = xaxis.Scale()
	}
	if size.Y < yaxis.Scale() {
		size.Y = yaxis.Scale()
	}

	pos := w.pos
	if havePosX {
		pos.X = posX + 0.5*xaxis.Scale()
	}
	if havePosY {
		pos.Y = posY + 0.5*yaxis.Scale()
	}

	s.corner = corner
	pos, size = w.validateGeometry(pos, size)
	w.commit(pos, size)
}
