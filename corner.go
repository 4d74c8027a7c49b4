package reticle

// Corner identifies one of the four resize handles of a widget.
//
// During a corner drag the active corner can change when the dragged edge
// crosses the opposite edge of the rectangle. The transitions are:
//
//	flip horizontal: TopLeft <-> TopRight,   BottomLeft <-> BottomRight
//	flip vertical:   TopLeft <-> BottomLeft, TopRight   <-> BottomRight
type Corner uint8

const (
	CornerTopLeft     Corner = iota // left + top
	CornerTopRight                  // right + top
	CornerBottomLeft                // left + bottom
	CornerBottomRight               // right + bottom
	numCorners
)

// Left reports whether this corner sits on the left edge.
func (c Corner) Left() bool {
	return c == CornerTopLeft || c == CornerBottomLeft
}

// Top reports whether this corner sits on the top edge.
func (c Corner) Top() bool {
	return c == CornerTopLeft || c == CornerTopRight
}

// flipHorizontal swaps the corner across the vertical centerline.
func (c Corner) flipHorizontal() Corner {
	switch c {
	case CornerTopLeft:
		return CornerTopRight
	case CornerTopRight:
		return CornerTopLeft
	case CornerBottomLeft:
		return CornerBottomRight
	default:
		return CornerBottomLeft
	}
}

// flipVertical swaps the corner across the horizontal centerline.
func (c Corner) flipVertical() Corner {
	switch c {
	case CornerTopLeft:
		return CornerBottomLeft
	case CornerBottomLeft:
		return CornerTopLeft
	case CornerTopRight:
		return CornerBottomRight
	default:
		return CornerTopRight
	}
}

// String returns a human-readable corner name.
func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomLeft:
		return "bottom-left"
	case CornerBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}
