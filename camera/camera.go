package camera

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera maps world space to screen space with a zoom factor. X/Y is the
// top-left of the visible viewport in world pixels; it is recomputed from
// the follow target every tick, so the camera carries no motion state of
// its own.
type Camera struct {
	X, Y float64

	screenW int
	screenH int
	zoom    float64
	worldW  float64
	worldH  float64
}

// New creates a camera for the given logical screen size and zoom.
// A zoom of 2 shows half the world through the same screen.
func New(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{screenW: screenW, screenH: screenH, zoom: zoom}
}

// SetZoom updates the camera zoom. Non-positive values are ignored.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetWorldBounds sets the world pixel extent used for clamping.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// ViewSize returns the viewport extent in world pixels.
func (c *Camera) ViewSize() (float64, float64) {
	return float64(c.screenW) / c.zoom, float64(c.screenH) / c.zoom
}

// Update centers the viewport on the target world coordinate and clamps it
// to the world bounds. When the world is smaller than the viewport the
// clamp range is empty; the position collapses to 0 so the map stays pinned
// to the top-left corner.
func (c *Camera) Update(targetX, targetY float64) {
	viewW, viewH := c.ViewSize()

	c.X = clampAxis(targetX-viewW/2, c.worldW-viewW)
	c.Y = clampAxis(targetY-viewH/2, c.worldH-viewH)
}

func clampAxis(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.X, c.Y
}

// Apply writes the world-to-screen transform into op: scale by zoom, then
// translate by the negated camera position in screen units.
func (c *Camera) Apply(op *ebiten.DrawImageOptions) {
	op.GeoM.Scale(c.zoom, c.zoom)
	op.GeoM.Translate(-c.X*c.zoom, -c.Y*c.zoom)
}
