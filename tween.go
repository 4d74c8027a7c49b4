package reticle

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BoundsTween animates a widget's geometry to target bounds over time. Each
// Update routes the interpolated geometry through the widget's validated
// commit pipeline, so the animation clamps, snaps, and notifies exactly like
// any other mutation.
//
// There is no global animation manager — call Update yourself each frame
// until Done.
type BoundsTween struct {
	tweens [4]*gween.Tween
	widget *Widget
	Done   bool
}

// TweenBounds creates a tween moving the widget from its current geometry to
// position (to.X, to.Y) and size (to.Width, to.Height), in value-space, over
// duration seconds using the easing function.
func TweenBounds(w *Widget, to Rect, duration float32, fn ease.TweenFunc) *BoundsTween {
	return &BoundsTween{
		widget: w,
		tweens: [4]*gween.Tween{
			gween.New(float32(w.pos.X), float32(to.X), duration, fn),
			gween.New(float32(w.pos.Y), float32(to.Y), duration, fn),
			gween.New(float32(w.size.X), float32(to.Width), duration, fn),
			gween.New(float32(w.size.Y), float32(to.Height), duration, fn),
		},
	}
}

// Update advances the tween by dt seconds and commits the interpolated
// geometry through validation. Done is set once all four components finish.
func (b *BoundsTween) Update(dt float32) {
	if b.Done {
		return
	}

	var vals [4]float64
	allDone := true
	for i, tw := range b.tweens {
		v, finished := tw.Update(dt)
		vals[i] = float64(v)
		if !finished {
			allDone = false
		}
	}
	b.Done = allDone

	pos, size := b.widget.validateGeometry(Vec2{vals[0], vals[1]}, Vec2{vals[2], vals[3]})
	b.widget.commit(pos, size)
}
