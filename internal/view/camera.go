package view

// Zoom clamp range.
const (
	MinScale = 0.5
	MaxScale = 3.0
)

// Camera is the viewport transform: a translation plus a uniform scale
// mapping world coordinates to screen coordinates.
type Camera struct {
	OffsetX, OffsetY float64
	Scale            float64
}

// NewCamera returns the identity transform.
func NewCamera() Camera {
	return Camera{Scale: 1}
}

// ZoomBy adjusts the scale by delta, clamped to [MinScale, MaxScale].
func (c *Camera) ZoomBy(delta float64) {
	c.Scale += delta
	if c.Scale < MinScale {
		c.Scale = MinScale
	}
	if c.Scale > MaxScale {
		c.Scale = MaxScale
	}
}

// Reset restores the identity transform.
func (c *Camera) Reset() {
	c.OffsetX, c.OffsetY, c.Scale = 0, 0, 1
}

// ToScreen maps a world point to screen space.
func (c Camera) ToScreen(x, y float64) (sx, sy float64) {
	return x*c.Scale + c.OffsetX, y*c.Scale + c.OffsetY
}

// ToWorld maps a screen point to world space, the inverse of ToScreen.
func (c Camera) ToWorld(sx, sy float64) (x, y float64) {
	return (sx - c.OffsetX) / c.Scale, (sy - c.OffsetY) / c.Scale
}
