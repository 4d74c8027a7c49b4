// Package reticle is an interactive region-of-interest widget for [Ebitengine].
//
// A reticle [Widget] is a draggable, resizable rectangle overlaid on a pair of
// discretized data axes. The user moves it by dragging its body, resizes it by
// dragging any of the four corner handles (including "flipping" a handle past
// the opposite edge), and grows or shrinks it one sample at a time from the
// keyboard. All geometry is kept within the axes' bounds and optionally
// snapped to the sample grid.
//
// # Quick start
//
//	xaxis := reticle.NewLinearAxis(0, 1, 256)
//	yaxis := reticle.NewLinearAxis(0, 1, 256)
//	roi := reticle.New(xaxis, yaxis)
//	roi.Resizers = true
//
//	vp := reticle.NewViewport(xaxis, yaxis, reticle.Rect{X: 0, Y: 0, Width: 512, Height: 512})
//	ctrl := reticle.NewController(roi, vp)
//	rend := reticle.NewRenderer()
//
// then call ctrl.Update() from your game's Update and rend.Draw(screen, roi,
// vp) from Draw. See examples/basic for a runnable program.
//
// # Coordinate spaces
//
// The widget works in two coordinate spaces. Value-space is the continuous
// domain of the axes (physical units); index-space is the discrete sample
// grid, mapped to value-space by the [Axis] contract. The widget's position is
// the center of the sample cell closest to its top-left corner, so the drawn
// outline ([Widget.PatchBounds]) sits half a cell up and left of the
// position.
//
// # Geometry pipeline
//
// Every mutation, whether from a setter, a drag, a key step, or a tween,
// funnels through a single validate/commit/notify pipeline. Out-of-range
// geometry on the
// interactive paths is clamped silently so a drag is never interrupted;
// explicit setters like [Widget.SetBounds] instead return a descriptive
// error and leave the widget untouched. After a commit,
// [Widget.OnPositionChanged] and [Widget.OnSizeChanged] fire only for the
// components that actually changed.
//
// Reticle is single-threaded: drive it from your game loop.
//
// [Ebitengine]: https://ebitengine.org
package reticle
