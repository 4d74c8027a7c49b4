package reticle

import "math"

// validateGeometry clamps a candidate (position, size) pair so the whole
// patch stays within the axes, then applies grid snapping if enabled.
//
// The rules, per axis:
//
//  1. Size is capped at the full axis extent (Size * Scale).
//  2. Position is clamped to [LowValue, HighValue].
//  3. If the far edge (position + size) would pass HighValue + Scale, the
//     position is pulled back so the far edge lands exactly on that ceiling.
//     Bounds violations move the rectangle; they never shrink it.
//
// The extra Scale of slack on the far edge exists because position is a
// pixel center while the far edge is a pixel edge.
//
// Pure computation: no commit, no notifications.
func (w *Widget) validateGeometry(pos, size Vec2) (Vec2, Vec2) {
	pos.X, size.X = validateAxis(w.axes[0], pos.X, size.X)
	pos.Y, size.Y = validateAxis(w.axes[1], pos.Y, size.Y)

	if w.SnapPosition {
		pos.X = snapValue(pos.X, w.axes[0].LowValue(), w.positionSnapStep(0))
		pos.Y = snapValue(pos.Y, w.axes[1].LowValue(), w.positionSnapStep(1))
	}
	if w.SnapSize {
		size.X = snapSize(size.X, w.sizeSnapStep(0))
		size.Y = snapSize(size.Y, w.sizeSnapStep(1))
	}
	return pos, size
}

func validateAxis(ax Axis, pos, size float64) (float64, float64) {
	if extent := float64(ax.Size()) * ax.Scale(); size > extent {
		size = extent
	}

	if pos < ax.LowValue() {
		pos = ax.LowValue()
	} else if pos > ax.HighValue() {
		pos = ax.HighValue()
	}

	if edge := pos + size; edge > ax.HighValue()+ax.Scale() {
		pos = ax.HighValue() + ax.Scale() - size
	}
	return pos, size
}

// snapValue rounds v to the nearest multiple of step on a grid anchored at
// origin.
func snapValue(v, origin, step float64) float64 {
	if step <= 0 {
		return v
	}
	return origin + math.Round((v-origin)/step)*step
}

// snapSize rounds v to the nearest positive multiple of step.
func snapSize(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	s := math.Round(v/step) * step
	if s < step {
		s = step
	}
	return s
}

// positionSnapStep returns the configured position snap step for an axis,
// defaulting to the axis scale.
func (w *Widget) positionSnapStep(axis int) float64 {
	step := w.PositionSnapStep.X
	if axis == 1 {
		step = w.PositionSnapStep.Y
	}
	if step <= 0 {
		step = w.axes[axis].Scale()
	}
	return step
}

// sizeSnapStep returns the configured size snap step for an axis, defaulting
// to the axis scale.
func (w *Widget) sizeSnapStep(axis int) float64 {
	step := w.SizeSnapStep.X
	if axis == 1 {
		step = w.SizeSnapStep.Y
	}
	if step <= 0 {
		step = w.axes[axis].Scale()
	}
	return step
}
