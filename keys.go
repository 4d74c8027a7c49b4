package reticle

import "github.com/hajimehoshi/ebiten/v2"

// sizeStep returns the keyboard step for an axis: Scale * SizeStep.
func (w *Widget) sizeStep(axis int) float64 {
	mult := w.SizeStep
	if mult <= 0 {
		mult = 1
	}
	return w.axes[axis].Scale() * mult
}

// IncreaseWidth grows the widget one keyboard step along the x axis.
// Clamped to the axis extent by the validation step.
func (w *Widget) IncreaseWidth() {
	w.setAxisSize(0, w.size.X+w.sizeStep(0))
}

// DecreaseWidth shrinks the widget one keyboard step along the x axis,
// floored at one scale unit. Shrinking at the floor is a no-op.
func (w *Widget) DecreaseWidth() {
	ns := w.size.X - w.sizeStep(0)
	if ns < w.axes[0].Scale() {
		ns = w.axes[0].Scale()
	}
	w.setAxisSize(0, ns)
}

// IncreaseHeight grows the widget one keyboard step along the y axis.
func (w *Widget) IncreaseHeight() {
	w.setAxisSize(1, w.size.Y+w.sizeStep(1))
}

// DecreaseHeight shrinks the widget one keyboard step along the y axis,
// floored at one scale unit.
func (w *Widget) DecreaseHeight() {
	ns := w.size.Y - w.sizeStep(1)
	if ns < w.axes[1].Scale() {
		ns = w.axes[1].Scale()
	}
	w.setAxisSize(1, ns)
}

// HandleKey processes one key press while the widget is selected:
// X/C grow/shrink the width, Y/U grow/shrink the height. Returns false for
// unrecognized keys (or when not selected) so the caller can fall back to
// its own handling.
func (w *Widget) HandleKey(key ebiten.Key) bool {
	if !w.Selected {
		return false
	}
	switch key {
	case ebiten.KeyX:
		w.IncreaseWidth()
	case ebiten.KeyC:
		w.DecreaseWidth()
	case ebiten.KeyY:
		w.IncreaseHeight()
	case ebiten.KeyU:
		w.DecreaseHeight()
	default:
		return false
	}
	return true
}
