package reticle

import "github.com/hajimehoshi/ebiten/v2"

// Renderer draws a widget's outline and corner handles onto an ebiten
// image. The widget core never draws on its own; call Draw from your game's
// Draw with the same viewport the controller uses.
type Renderer struct {
	// Color is the outline color.
	Color Color

	// HandleColor fills the corner handles when the widget has resizers
	// enabled and is selected.
	HandleColor Color

	// BorderThickness is the outline thickness in screen pixels.
	BorderThickness float64

	whitePixel *ebiten.Image
}

// NewRenderer creates a renderer with a green 2px outline and white handles.
func NewRenderer() *Renderer {
	return &Renderer{
		Color:           Color{0, 1, 0, 1},
		HandleColor:     ColorWhite,
		BorderThickness: 2,
	}
}

// Draw renders the widget's patch outline, and its corner handles when
// resizers are enabled and the widget is selected.
func (r *Renderer) Draw(dst *ebiten.Image, w *Widget, vp Viewport) {
	if r.whitePixel == nil {
		r.whitePixel = ebiten.NewImage(1, 1)
		r.whitePixel.Fill(ColorWhite.toRGBA())
	}

	p := w.PatchBounds()
	x0, y0 := vp.DataToScreen(p.X, p.Y)
	x1, y1 := vp.DataToScreen(p.X+p.Width, p.Y+p.Height)
	bt := r.BorderThickness
	if bt <= 0 {
		bt = 1
	}

	// Four border strips.
	r.fillRect(dst, Rect{x0, y0, x1 - x0, bt}, r.Color)
	r.fillRect(dst, Rect{x0, y1 - bt, x1 - x0, bt}, r.Color)
	r.fillRect(dst, Rect{x0, y0, bt, y1 - y0}, r.Color)
	r.fillRect(dst, Rect{x1 - bt, y0, bt, y1 - y0}, r.Color)

	if w.Resizers && w.Selected {
		for c := CornerTopLeft; c < numCorners; c++ {
			h := w.HandleRect(c)
			hx0, hy0 := vp.DataToScreen(h.X, h.Y)
			hx1, hy1 := vp.DataToScreen(h.X+h.Width, h.Y+h.Height)
			r.fillRect(dst, Rect{hx0, hy0, hx1 - hx0, hy1 - hy0}, r.HandleColor)
		}
	}
}

// fillRect draws a solid screen-space rectangle by scaling the shared 1x1
// white pixel.
func (r *Renderer) fillRect(dst *ebiten.Image, rect Rect, c Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(rect.Width, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	a := float32(c.A)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	dst.DrawImage(r.whitePixel, &op)
}
