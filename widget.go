package reticle

import (
	"fmt"
	"math"
)

// GeometryContext carries geometry change data for the widget callbacks.
// Old and New hold the component that changed (position or size, in
// value-space); New always reflects the fully settled geometry.
type GeometryContext struct {
	Widget *Widget
	Old    Vec2
	New    Vec2
}

// Widget is a rectangular region-of-interest overlaid on two data axes.
// Position is the value-space center of the sample cell closest to the
// rectangle's top-left corner; size is the value-space extent. Both are
// mutated only through the validated commit pipeline, never directly.
//
// A widget is single-threaded: drive it from one goroutine (normally the
// game loop).
type Widget struct {
	axes [2]Axis
	pos  Vec2
	size Vec2

	// Selected gates keyboard handling. Pick sets it when the widget body
	// or a handle is grabbed and clears it on a miss.
	Selected bool

	// Navigating enables cursor-anchored shrinking: when the cursor set via
	// SetCursor lies past the widget's position on an axis, shrinking that
	// axis shifts the position forward so the cursor-side edge stays put.
	Navigating bool
	cursor     Vec2

	// SizeStep multiplies the axis scale for keyboard size steps.
	// Zero or negative means 1.
	SizeStep float64

	// SnapPosition and SnapSize enable grid snapping inside the validation
	// step. Snap steps default to the axis scale; set PositionSnapStep or
	// SizeSnapStep to override per axis.
	SnapPosition     bool
	SnapSize         bool
	PositionSnapStep Vec2
	SizeSnapStep     Vec2

	// Resizers enables the four corner handles for picking, rendering, and
	// the handle-center mouse correction during corner drags.
	Resizers bool

	// HandleSize is the value-space size of each corner handle. Zero
	// components default to one axis scale unit.
	HandleSize Vec2

	// OnPositionChanged fires after a commit whose position differs from
	// the previous one. Nil by default; zero cost when unused.
	OnPositionChanged func(GeometryContext)

	// OnSizeChanged fires after a commit whose size differs from the
	// previous one.
	OnSizeChanged func(GeometryContext)

	drag *dragSession
}

// New creates a widget on the given axes, positioned at the axes' low values
// with a default size of one sample cell. Panics if either axis is nil.
func New(xaxis, yaxis Axis) *Widget {
	if xaxis == nil || yaxis == nil {
		panic("reticle: nil axis")
	}
	return &Widget{
		axes: [2]Axis{xaxis, yaxis},
		pos:  Vec2{xaxis.LowValue(), yaxis.LowValue()},
		size: Vec2{xaxis.Scale(), yaxis.Scale()},
	}
}

// --- Accessors ---

// Position returns the value-space position (cell center closest to the
// top-left corner).
func (w *Widget) Position() Vec2 { return w.pos }

// Size returns the value-space size.
func (w *Widget) Size() Vec2 { return w.size }

// Indices returns the index-space position.
func (w *Widget) Indices() (ix, iy int) {
	return w.axes[0].ValueToIndex(w.pos.X), w.axes[1].ValueToIndex(w.pos.Y)
}

// Width returns the widget width in index units.
func (w *Widget) Width() int {
	return int(math.Round(w.size.X / w.axes[0].Scale()))
}

// Height returns the widget height in index units.
func (w *Widget) Height() int {
	return int(math.Round(w.size.Y / w.axes[1].Scale()))
}

// Axis returns the widget's axis for dimension 0 (x) or 1 (y).
func (w *Widget) Axis(dim int) Axis { return w.axes[dim] }

// PatchBounds returns the display rectangle for rendering: the top-left is
// offset half a cell up and left of the position so the outline encloses
// whole sample cells.
func (w *Widget) PatchBounds() Rect {
	return Rect{
		X:      w.pos.X - 0.5*w.axes[0].Scale(),
		Y:      w.pos.Y - 0.5*w.axes[1].Scale(),
		Width:  w.size.X,
		Height: w.size.Y,
	}
}

// SetCursor records the live cursor position used by navigation-mode
// shrinking. Has no effect unless Navigating is set.
func (w *Widget) SetCursor(x, y float64) {
	w.cursor = Vec2{x, y}
}

// --- Commit pipeline ---

// commit stores new geometry and fires change notifications for the
// components that differ. Callers are responsible for validation; commit is
// the only place pos and size are written.
func (w *Widget) commit(pos, size Vec2) {
	oldPos, oldSize := w.pos, w.size
	w.pos = pos
	w.size = size

	if pos != oldPos && w.OnPositionChanged != nil {
		w.OnPositionChanged(GeometryContext{Widget: w, Old: oldPos, New: pos})
	}
	if size != oldSize && w.OnSizeChanged != nil {
		w.OnSizeChanged(GeometryContext{Widget: w, Old: oldSize, New: size})
	}
}

// SetPosition moves the widget to (x, y), clamping to the axes. This is a
// continuous-interaction path: out-of-range positions are corrected
// silently, never rejected.
func (w *Widget) SetPosition(x, y float64) {
	pos, size := w.validateGeometry(Vec2{x, y}, w.size)
	w.commit(pos, size)
}

// setAxisSize changes the size along one axis through the full pipeline.
// Silent like SetPosition; non-positive or unchanged values are ignored.
func (w *Widget) setAxisSize(axis int, value float64) {
	size := w.size
	cur := size.X
	if axis == 1 {
		cur = size.Y
	}
	if value <= 0 || value == cur {
		return
	}

	pos := w.pos
	if w.Navigating && value < cur {
		// Cursor past the position: anchor the cursor-side edge by moving
		// the position forward by the shrink amount.
		if axis == 0 && w.cursor.X > pos.X {
			pos.X += cur - value
		} else if axis == 1 && w.cursor.Y > pos.Y {
			pos.Y += cur - value
		}
	}

	if axis == 0 {
		size.X = value
	} else {
		size.Y = value
	}
	pos, size = w.validateGeometry(pos, size)
	w.commit(pos, size)
}

// --- Bounds setters ---

// SetBounds sets the geometry from value-space (x, y, w, h). Each field is
// range-checked against the axes before anything is committed: x and y must
// lie in [LowValue, HighValue], while the far edges x+w and y+h may extend
// one extra Scale past HighValue (position is a cell center, the far edge a
// cell edge). On error the geometry is unchanged.
func (w *Widget) SetBounds(x, y, wd, ht float64) error {
	xaxis, yaxis := w.axes[0], w.axes[1]

	if x < xaxis.LowValue() || x > xaxis.HighValue() {
		return fmt.Errorf("reticle: left %v outside [%v, %v]: %w",
			x, xaxis.LowValue(), xaxis.HighValue(), ErrOutOfRange)
	}
	if y < yaxis.LowValue() || y > yaxis.HighValue() {
		return fmt.Errorf("reticle: top %v outside [%v, %v]: %w",
			y, yaxis.LowValue(), yaxis.HighValue(), ErrOutOfRange)
	}
	if e := x + wd; e < xaxis.LowValue() || e > xaxis.HighValue()+xaxis.Scale() {
		return fmt.Errorf("reticle: width or right %v outside [%v, %v]: %w",
			e, xaxis.LowValue(), xaxis.HighValue()+xaxis.Scale(), ErrOutOfRange)
	}
	if e := y + ht; e < yaxis.LowValue() || e > yaxis.HighValue()+yaxis.Scale() {
		return fmt.Errorf("reticle: height or bottom %v outside [%v, %v]: %w",
			e, yaxis.LowValue(), yaxis.HighValue()+yaxis.Scale(), ErrOutOfRange)
	}

	// Already validated; commit directly.
	w.commit(Vec2{x, y}, Vec2{wd, ht})
	return nil
}

// SetBoundsSpec sets the geometry from a partial value-space spec, keeping
// unset dimensions at their current values. Range checking as in SetBounds.
func (w *Widget) SetBoundsSpec(spec BoundsSpec) error {
	x, y, wd, ht, err := w.resolveBounds(spec)
	if err != nil {
		return err
	}
	return w.SetBounds(x, y, wd, ht)
}

// SetIndexBounds sets the geometry from index-space (ix, iy, iw, ih). The
// width and height are converted edge-to-edge (IndexToValue(start+extent) -
// IndexToValue(start)) so boundary rounding stays consistent on non-uniform
// mappings. Index values are expected pre-clamped by the caller; there is no
// range-failure path.
func (w *Widget) SetIndexBounds(ix, iy, iw, ih int) {
	x := w.axes[0].IndexToValue(float64(ix))
	y := w.axes[1].IndexToValue(float64(iy))
	wd := w.axes[0].IndexToValue(float64(ix+iw)) - x
	ht := w.axes[1].IndexToValue(float64(iy+ih)) - y
	w.commit(Vec2{x, y}, Vec2{wd, ht})
}

// SetIndexBoundsSpec sets the geometry from a partial index-space spec,
// keeping unset dimensions at their current values.
func (w *Widget) SetIndexBoundsSpec(spec IndexBoundsSpec) error {
	ix, iy, iw, ih, err := w.resolveIndexBounds(spec)
	if err != nil {
		return err
	}
	w.SetIndexBounds(ix, iy, iw, ih)
	return nil
}

// SetWidth sets the width in index units. The value must be positive and
// the resulting far index must stay within the axis; on error the geometry
// is unchanged.
func (w *Widget) SetWidth(v int) error {
	if v == w.Width() {
		return nil
	}
	ix, _ := w.Indices()
	if v <= 0 || ix+v < w.axes[0].LowIndex() || ix+v > w.axes[0].HighIndex() {
		return fmt.Errorf("reticle: width %d: %w", v, ErrOutOfRange)
	}
	w.setAxisSize(0, float64(v)*w.axes[0].Scale())
	return nil
}

// SetHeight sets the height in index units. Same range rules as SetWidth.
func (w *Widget) SetHeight(v int) error {
	if v == w.Height() {
		return nil
	}
	_, iy := w.Indices()
	if v <= 0 || iy+v < w.axes[1].LowIndex() || iy+v > w.axes[1].HighIndex() {
		return fmt.Errorf("reticle: height %d: %w", v, ErrOutOfRange)
	}
	w.setAxisSize(1, float64(v)*w.axes[1].Scale())
	return nil
}

// --- Resize handles & picking ---

// handleSize returns the effective handle extents, defaulting zero
// components to one axis scale unit.
func (w *Widget) handleSize() Vec2 {
	hs := w.HandleSize
	if hs.X <= 0 {
		hs.X = w.axes[0].Scale()
	}
	if hs.Y <= 0 {
		hs.Y = w.axes[1].Scale()
	}
	return hs
}

// HandleRect returns the value-space rectangle of a corner handle. Handles
// sit on the outer border of the patch, diagonally outward from each corner.
func (w *Widget) HandleRect(c Corner) Rect {
	p := w.PatchBounds()
	hs := w.handleSize()

	x := p.X - hs.X
	if !c.Left() {
		x = p.X + p.Width
	}
	y := p.Y - hs.Y
	if !c.Top() {
		y = p.Y + p.Height
	}
	return Rect{X: x, Y: y, Width: hs.X, Height: hs.Y}
}

// Pick starts an interaction at the value-space point (x, y). Corner handles
// are tested first (when Resizers is on), then the patch body. A handle hit
// begins a corner drag, a body hit begins a whole-rectangle drag with the
// grab offset recorded, and a miss clears the selection. Reports whether
// anything was grabbed.
func (w *Widget) Pick(x, y float64) bool {
	if w.Resizers {
		for c := CornerTopLeft; c < numCorners; c++ {
			if w.HandleRect(c).Contains(x, y) {
				w.drag = &dragSession{resizing: true, corner: c}
				w.Selected = true
				return true
			}
		}
	}
	if w.PatchBounds().Contains(x, y) {
		w.drag = &dragSession{offset: Vec2{x - w.pos.X, y - w.pos.Y}}
		w.Selected = true
		return true
	}
	w.Selected = false
	return false
}

// PickCorner begins a corner resize directly, for hosts whose event
// dispatch already knows which handle was grabbed. The handle-center mouse
// correction still only applies while Resizers is on.
func (w *Widget) PickCorner(c Corner) {
	w.drag = &dragSession{resizing: true, corner: c}
	w.Selected = true
}
