package reticle

import (
	"errors"
	"fmt"
)

// ErrBoundsConflict is returned when a bounds spec sets the same dimension
// twice (Width together with Right, or Height together with Bottom).
var ErrBoundsConflict = errors.New("bounds spec sets the same dimension twice")

// ErrOutOfRange is returned (wrapped with field detail) when an explicit
// bounds or size argument falls outside the axes' valid range.
var ErrOutOfRange = errors.New("value not in range")

// BoundsSpec describes widget bounds in value-space with optional fields.
// Nil fields keep the widget's current geometry: Left/Top default to the
// current position, Width/Height to the current size (never derived from
// Right/Bottom). Right and Bottom, when set, are converted to a width and
// height by subtracting the resolved left and top. Use [Float] to fill
// fields inline:
//
//	roi.SetBoundsSpec(reticle.BoundsSpec{Left: reticle.Float(2), Right: reticle.Float(5)})
type BoundsSpec struct {
	Left   *float64
	Top    *float64
	Width  *float64
	Height *float64
	Right  *float64
	Bottom *float64
}

// IndexBoundsSpec is the index-space counterpart of [BoundsSpec]. Nil fields
// keep the widget's current indices and index-space sizes. Use [Int] to fill
// fields inline.
type IndexBoundsSpec struct {
	Left   *int
	Top    *int
	Width  *int
	Height *int
	Right  *int
	Bottom *int
}

// resolveBounds expands a value-space spec into canonical (x, y, w, h),
// defaulting unset dimensions to the widget's current geometry.
func (w *Widget) resolveBounds(spec BoundsSpec) (x, y, wd, ht float64, err error) {
	if spec.Width != nil && spec.Right != nil {
		return 0, 0, 0, 0, fmt.Errorf("reticle: both Width and Right set: %w", ErrBoundsConflict)
	}
	if spec.Height != nil && spec.Bottom != nil {
		return 0, 0, 0, 0, fmt.Errorf("reticle: both Height and Bottom set: %w", ErrBoundsConflict)
	}

	x, y = w.pos.X, w.pos.Y
	if spec.Left != nil {
		x = *spec.Left
	}
	if spec.Top != nil {
		y = *spec.Top
	}

	switch {
	case spec.Right != nil:
		wd = *spec.Right - x
	case spec.Width != nil:
		wd = *spec.Width
	default:
		wd = w.size.X
	}
	switch {
	case spec.Bottom != nil:
		ht = *spec.Bottom - y
	case spec.Height != nil:
		ht = *spec.Height
	default:
		ht = w.size.Y
	}
	return x, y, wd, ht, nil
}

// resolveIndexBounds expands an index-space spec into canonical
// (ix, iy, iw, ih), defaulting unset dimensions to the widget's current
// indices and index-space sizes.
func (w *Widget) resolveIndexBounds(spec IndexBoundsSpec) (ix, iy, iw, ih int, err error) {
	if spec.Width != nil && spec.Right != nil {
		return 0, 0, 0, 0, fmt.Errorf("reticle: both Width and Right set: %w", ErrBoundsConflict)
	}
	if spec.Height != nil && spec.Bottom != nil {
		return 0, 0, 0, 0, fmt.Errorf("reticle: both Height and Bottom set: %w", ErrBoundsConflict)
	}

	ix, iy = w.Indices()
	if spec.Left != nil {
		ix = *spec.Left
	}
	if spec.Top != nil {
		iy = *spec.Top
	}

	switch {
	case spec.Right != nil:
		iw = *spec.Right - ix
	case spec.Width != nil:
		iw = *spec.Width
	default:
		iw = w.Width()
	}
	switch {
	case spec.Bottom != nil:
		ih = *spec.Bottom - iy
	case spec.Height != nil:
		ih = *spec.Height
	default:
		ih = w.Height()
	}
	return ix, iy, iw, ih, nil
}
