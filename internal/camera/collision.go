package camera

import (
	"solar-raster/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

// CheckCollision reports whether the camera is closer to center than radius plus the margin.
func (c *Camera) CheckCollision(center mgl32.Vec3, radius float32) bool {
	return c.Position.Sub(center).Len() < radius+c.cfg.Margin
}

// ResolveCollision moves the camera along the center-to-camera direction so it sits radius plus
// the margin away from center. A camera exactly at center is pushed along +Y.
// Afterwards CheckCollision with the same sphere is false.
func (c *Camera) ResolveCollision(center mgl32.Vec3, radius float32) {
	dir := render.SafeNormalize(c.Position.Sub(center), worldUp)
	want := radius + c.cfg.Margin
	dist := want
	eps := float32(1e-6)
	for i := 0; i < 32; i++ {
		c.Position = center.Add(dir.Mul(dist))
		if !c.CheckCollision(center, radius) {
			return
		}
		// Rounding left us a hair inside; step out a little further.
		dist = want * (1 + eps)
		eps *= 2
	}
}
