package reticle

import "github.com/hajimehoshi/ebiten/v2"

// widgetKeys are the keys routed to Widget.HandleKey, with edge detection.
var widgetKeys = [...]ebiten.Key{ebiten.KeyX, ebiten.KeyC, ebiten.KeyY, ebiten.KeyU}

// Controller polls ebiten mouse and keyboard state each frame and drives a
// widget: press picks, movement while pressed drags, release ends the
// gesture, and key presses step the size. Create one per widget and call
// Update from your game's Update.
type Controller struct {
	Widget   *Widget
	Viewport Viewport

	// OnKeyFallback, if set, receives selected-widget key presses the
	// widget did not recognize.
	OnKeyFallback func(key ebiten.Key)

	// Poll functions, swappable for windowless tests.
	cursorPos  func() (int, int)
	buttonDown func() bool
	keyDown    func(ebiten.Key) bool

	mouseDown bool
	keyHeld   [len(widgetKeys)]bool
}

// NewController creates a controller reading real ebiten input.
func NewController(w *Widget, vp Viewport) *Controller {
	if w == nil {
		panic("reticle: nil widget")
	}
	return &Controller{
		Widget:     w,
		Viewport:   vp,
		cursorPos:  ebiten.CursorPosition,
		buttonDown: func() bool { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) },
		keyDown:    ebiten.IsKeyPressed,
	}
}

// Update polls input once and feeds it to the widget. Call every frame.
func (c *Controller) Update() {
	mx, my := c.cursorPos()
	sx, sy := float64(mx), float64(my)
	dx, dy := c.Viewport.ScreenToData(sx, sy)
	inAxes := c.Viewport.ContainsScreen(sx, sy)

	pressed := c.buttonDown()
	switch {
	case pressed && !c.mouseDown:
		if inAxes {
			c.Widget.Pick(dx, dy)
		} else {
			c.Widget.Selected = false
		}
	case pressed && c.mouseDown:
		c.Widget.DragTo(dx, dy, inAxes)
	case !pressed && c.mouseDown:
		c.Widget.Release()
	}
	c.mouseDown = pressed

	if c.Widget.Navigating && inAxes {
		c.Widget.SetCursor(dx, dy)
	}

	// Key edge detection: fire once per press.
	for i, key := range widgetKeys {
		down := c.keyDown(key)
		if down && !c.keyHeld[i] {
			if !c.Widget.HandleKey(key) && c.OnKeyFallback != nil {
				c.OnKeyFallback(key)
			}
		}
		c.keyHeld[i] = down
	}
}
