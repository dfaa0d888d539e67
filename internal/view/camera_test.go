package view

import (
	"math"
	"testing"
)

func TestZoomRoundTrip(t *testing.T) {
	c := NewCamera()
	c.ZoomBy(0.4)
	c.ZoomBy(-0.4)
	if math.Abs(c.Scale-1) > 1e-12 {
		t.Errorf("expected scale 1 after round trip, got %v", c.Scale)
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewCamera()
	c.ZoomBy(100)
	if c.Scale != MaxScale {
		t.Errorf("expected clamp to %v, got %v", MaxScale, c.Scale)
	}
	c.ZoomBy(-100)
	if c.Scale != MinScale {
		t.Errorf("expected clamp to %v, got %v", MinScale, c.Scale)
	}
}

func TestReset(t *testing.T) {
	c := NewCamera()
	c.OffsetX, c.OffsetY = 40, -12
	c.ZoomBy(0.7)
	c.Reset()
	if c.OffsetX != 0 || c.OffsetY != 0 || c.Scale != 1 {
		t.Errorf("reset left camera at (%v,%v,%v)", c.OffsetX, c.OffsetY, c.Scale)
	}
}

func TestWorldScreenInverse(t *testing.T) {
	c := Camera{OffsetX: 33, OffsetY: -7, Scale: 1.8}

	x, y := 120.5, 77.25
	sx, sy := c.ToScreen(x, y)
	bx, by := c.ToWorld(sx, sy)
	if math.Abs(bx-x) > 1e-9 || math.Abs(by-y) > 1e-9 {
		t.Errorf("round trip (%v,%v) -> (%v,%v)", x, y, bx, by)
	}
}

func TestStrokeWeightScalesWithStrength(t *testing.T) {
	if StrokeWeight(0) >= StrokeWeight(1) {
		t.Error("stroke weight not increasing with strength")
	}
	if StrokeWeight(0) <= 0 {
		t.Error("zero-strength link has no visible stroke")
	}
}
