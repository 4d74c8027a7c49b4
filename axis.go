package reticle

import "math"

// Axis is the contract for one data axis of the widget. An axis covers a
// contiguous run of equally spaced samples: sample i sits at value
// LowValue() + i*Scale(), and HighValue() = LowValue() + (Size()-1)*Scale().
//
// The widget treats axes as read-only; any type satisfying this interface
// can back a widget. [LinearAxis] is a ready-made implementation.
type Axis interface {
	// LowValue returns the value of the first sample.
	LowValue() float64
	// HighValue returns the value of the last sample.
	HighValue() float64
	// Scale returns the value-space distance between adjacent samples.
	// Always positive.
	Scale() float64
	// LowIndex returns the first valid sample index.
	LowIndex() int
	// HighIndex returns the last valid sample index.
	HighIndex() int
	// Size returns the number of samples.
	Size() int
	// IndexToValue maps a (possibly fractional) index to value-space.
	IndexToValue(i float64) float64
	// ValueToIndex maps a value to the nearest valid sample index.
	ValueToIndex(v float64) int
}

// LinearAxis is a uniformly sampled axis: size samples starting at offset,
// spaced scale apart.
type LinearAxis struct {
	offset float64
	scale  float64
	size   int
}

// NewLinearAxis creates an axis of size samples at values
// offset, offset+scale, ..., offset+(size-1)*scale.
// Panics if scale <= 0 or size < 1.
func NewLinearAxis(offset, scale float64, size int) *LinearAxis {
	if scale <= 0 {
		panic("reticle: axis scale must be positive")
	}
	if size < 1 {
		panic("reticle: axis must have at least one sample")
	}
	return &LinearAxis{offset: offset, scale: scale, size: size}
}

// LowValue returns the value of the first sample.
func (a *LinearAxis) LowValue() float64 { return a.offset }

// HighValue returns the value of the last sample.
func (a *LinearAxis) HighValue() float64 {
	return a.offset + float64(a.size-1)*a.scale
}

// Scale returns the spacing between adjacent samples.
func (a *LinearAxis) Scale() float64 { return a.scale }

// LowIndex returns 0, the first valid index.
func (a *LinearAxis) LowIndex() int { return 0 }

// HighIndex returns the last valid index.
func (a *LinearAxis) HighIndex() int { return a.size - 1 }

// Size returns the number of samples.
func (a *LinearAxis) Size() int { return a.size }

// IndexToValue maps a (possibly fractional) index to value-space. Indices
// outside [LowIndex, HighIndex] extrapolate linearly.
func (a *LinearAxis) IndexToValue(i float64) float64 {
	return a.offset + i*a.scale
}

// ValueToIndex maps a value to the nearest sample index, clamped to the
// valid range.
func (a *LinearAxis) ValueToIndex(v float64) int {
	i := int(math.Round((v - a.offset) / a.scale))
	if i < 0 {
		return 0
	}
	if i > a.size-1 {
		return a.size - 1
	}
	return i
}
