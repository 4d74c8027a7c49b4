package reticle

// Viewport maps axis value-space to a screen-pixel rectangle and back. The
// mapped data extent spans the full sample cells, from half a cell before
// the first sample to half a cell past the last, matching the patch
// convention.
//
// The Controller uses a viewport to convert the mouse into data coordinates
// and to decide whether the pointer is inside the axes; the Renderer uses it
// to place the patch on screen.
type Viewport struct {
	// Screen is the pixel rectangle the axes occupy.
	Screen Rect

	dataX, dataY     float64 // value at the left/top screen edge
	extentX, extentY float64 // value-space width/height of the axes area
}

// NewViewport creates a viewport projecting the given axes onto a screen
// rectangle. Panics if either axis is nil.
func NewViewport(xaxis, yaxis Axis, screen Rect) Viewport {
	if xaxis == nil || yaxis == nil {
		panic("reticle: nil axis")
	}
	return Viewport{
		Screen:  screen,
		dataX:   xaxis.LowValue() - 0.5*xaxis.Scale(),
		dataY:   yaxis.LowValue() - 0.5*yaxis.Scale(),
		extentX: float64(xaxis.Size()) * xaxis.Scale(),
		extentY: float64(yaxis.Size()) * yaxis.Scale(),
	}
}

// DataToScreen converts a value-space point to screen pixels.
func (v Viewport) DataToScreen(dx, dy float64) (sx, sy float64) {
	sx = v.Screen.X + (dx-v.dataX)/v.extentX*v.Screen.Width
	sy = v.Screen.Y + (dy-v.dataY)/v.extentY*v.Screen.Height
	return sx, sy
}

// ScreenToData converts a screen-pixel point to value-space.
func (v Viewport) ScreenToData(sx, sy float64) (dx, dy float64) {
	dx = v.dataX + (sx-v.Screen.X)/v.Screen.Width*v.extentX
	dy = v.dataY + (sy-v.Screen.Y)/v.Screen.Height*v.extentY
	return dx, dy
}

// ContainsScreen reports whether a screen-pixel point lies inside the axes
// area.
func (v Viewport) ContainsScreen(sx, sy float64) bool {
	return v.Screen.Contains(sx, sy)
}
