package physics

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const twoPi = 2 * math32.Pi

// Collider is something that must be kept outside of bodies, e.g. the camera.
type Collider interface {
	CheckCollision(center mgl32.Vec3, radius float32) bool
	ResolveCollision(center mgl32.Vec3, radius float32)
}

// World holds the bodies of a system and advances their orbits and spin.
type World struct {
	Bodies    []*Body
	Paused    bool
	TimeScale float32
}

// NewWorld returns an empty world running at normal speed.
func NewWorld() *World {
	return &World{TimeScale: 1}
}

// AddBody appends a body. Order is preserved; it is also the draw and hotkey order.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Find returns the first body whose name matches case-insensitively.
func (w *World) Find(name string) (*Body, bool) {
	for _, b := range w.Bodies {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return nil, false
}

// Step advances every orbit angle and spin by dt seconds scaled by TimeScale. Angles are kept in
// [0, 2π) so long sessions don't lose precision. Does nothing while paused.
func (w *World) Step(dt float32) {
	if w.Paused {
		return
	}
	dt *= w.TimeScale
	for _, b := range w.Bodies {
		b.Angle = wrapAngle(b.Angle + b.OrbitSpeed*dt)
		b.Spin[1] = wrapAngle(b.Spin[1] + b.SpinSpeed*dt)
	}
}

// Collide pushes c out of every body it is inside (radius from CollisionRadius) and returns how
// many bodies it had to be pushed out of. Bodies are visited once, in order.
func (w *World) Collide(c Collider) int {
	n := 0
	for _, b := range w.Bodies {
		center, radius := b.Position(), b.CollisionRadius()
		if c.CheckCollision(center, radius) {
			c.ResolveCollision(center, radius)
			n++
		}
	}
	return n
}

// OrbitPath returns segments+1 points on the body's orbit circle; the last equals the first.
// A body with no orbit radius returns nil.
func OrbitPath(b *Body, segments int) []mgl32.Vec3 {
	if b.OrbitRadius <= 0 || segments < 3 {
		return nil
	}
	center := b.OrbitCenter()
	pts := make([]mgl32.Vec3, segments+1)
	for i := 0; i < segments; i++ {
		a := float32(i) / float32(segments) * twoPi
		pts[i] = center.Add(mgl32.Vec3{b.OrbitRadius * math32.Cos(a), 0, b.OrbitRadius * math32.Sin(a)})
	}
	pts[segments] = pts[0]
	return pts
}

func wrapAngle(a float32) float32 {
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
