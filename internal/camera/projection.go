package camera

import (
	"solar-raster/internal/render"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FocalLength is the distance in pixels from the eye to the image plane for a viewport width
// pixels wide, scaled by Zoom. One world unit at depth z spans FocalLength/z pixels on both axes.
func (c *Camera) FocalLength(width float32) float32 {
	half := mgl32.DegToRad(c.cfg.FOV) / 2
	return c.Zoom * (width / 2) / math32.Tan(half)
}

// Basis returns the camera's orthonormal right, up and forward axes.
func (c *Camera) Basis() (right, up, forward mgl32.Vec3) {
	forward = render.SafeNormalize(c.Target, defaultFront)
	right = render.SafeNormalize(forward.Cross(c.Up), defaultRight)
	up = render.SafeNormalize(right.Cross(forward), worldUp)
	return right, up, forward
}

// ScreenPosition projects a world point to pixel coordinates in a width x height viewport.
// The result is (x, y, z) where z is the distance along the look direction. Points with z at or
// below the near plane return Offscreen.
func (c *Camera) ScreenPosition(world mgl32.Vec3, width, height float32) mgl32.Vec3 {
	rel := world.Sub(c.Position)
	right, up, forward := c.Basis()
	x, y, z := rel.Dot(right), rel.Dot(up), rel.Dot(forward)
	if !(z > c.cfg.NearPlane) || math32.IsInf(z, 0) {
		return Offscreen
	}
	f := c.FocalLength(width)
	return mgl32.Vec3{
		width/2 + x/z*f,
		height/2 - y/z*f,
		z,
	}
}

// Visible reports whether a ScreenPosition result is in front of the camera.
func Visible(screen mgl32.Vec3) bool {
	return screen.Z() >= 0
}
