package physics

import (
	"solar-raster/internal/mesh"
	"solar-raster/internal/shader"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Body is a celestial body on a circular orbit in the XZ plane around its parent (or the origin
// when Parent is nil). Angles are radians; speeds are radians per second.
type Body struct {
	Name        string
	Shader      shader.Type
	Radius      float32
	OrbitRadius float32
	OrbitSpeed  float32
	Angle       float32
	SpinSpeed   float32
	Spin        mgl32.Vec3 // current rotation about X, Y, Z
	Mesh        mesh.Def
	Ring        *mesh.Def // ring annulus around the body, nil for none
	Parent      *Body
}

// NewBody returns a body of the given radius at the origin, not orbiting and not spinning.
func NewBody(name string, t shader.Type, radius float32) *Body {
	return &Body{
		Name:   name,
		Shader: t,
		Radius: radius,
	}
}

// Position returns the world position of the body's centre.
func (b *Body) Position() mgl32.Vec3 {
	var origin mgl32.Vec3
	if b.Parent != nil {
		origin = b.Parent.Position()
	}
	return origin.Add(mgl32.Vec3{
		b.OrbitRadius * math32.Cos(b.Angle),
		0,
		b.OrbitRadius * math32.Sin(b.Angle),
	})
}

// OrbitCenter returns the point the body orbits around.
func (b *Body) OrbitCenter() mgl32.Vec3 {
	if b.Parent == nil {
		return mgl32.Vec3{}
	}
	return b.Parent.Position()
}

// CollisionRadius is the radius the camera must stay outside of. Ringed bodies include the ring.
func (b *Body) CollisionRadius() float32 {
	switch {
	case b.Ring == nil:
		return b.Radius
	case b.Ring.Outer > 0:
		return b.Radius * b.Ring.Outer
	default:
		return b.Radius * mesh.DefaultRingOuter
	}
}
