package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default tessellation for generated meshes.
const (
	DefaultSphereRings  = 24
	DefaultSphereSlices = 32
	DefaultRingSegments = 64
	DefaultRingInner    = 1.3
	DefaultRingOuter    = 2.1
	minSphereRings      = 2
	minSphereSlices     = 3
	minRingSegments     = 3
)

// Sphere returns a unit UV sphere as a flat triangle list. The poles lie on ±Y; normals equal
// positions. rings and slices below their minimum are raised to it.
func Sphere(rings, slices int) []Vertex {
	rings = max(rings, minSphereRings)
	slices = max(slices, minSphereSlices)

	point := func(ring, slice int) Vertex {
		v := float32(ring) / float32(rings)
		u := float32(slice) / float32(slices)
		phi := v * math32.Pi
		theta := u * 2 * math32.Pi
		p := mgl32.Vec3{
			math32.Sin(phi) * math32.Cos(theta),
			math32.Cos(phi),
			math32.Sin(phi) * math32.Sin(theta),
		}
		return NewVertex(p, p, mgl32.Vec2{u, v})
	}

	out := make([]Vertex, 0, rings*slices*6)
	for r := 0; r < rings; r++ {
		for s := 0; s < slices; s++ {
			a := point(r, s)
			b := point(r+1, s)
			c := point(r+1, s+1)
			d := point(r, s+1)
			// The pole rows collapse one triangle of each quad; skip it.
			if r != 0 {
				out = append(out, a, c, d)
			}
			if r != rings-1 {
				out = append(out, a, b, c)
			}
		}
	}
	return out
}

// Ring returns a flat annulus in the XZ plane between inner and outer radius, facing +Y.
func Ring(inner, outer float32, segments int) []Vertex {
	segments = max(segments, minRingSegments)
	if inner > outer {
		inner, outer = outer, inner
	}
	up := mgl32.Vec3{0, 1, 0}
	at := func(radius float32, i int) Vertex {
		theta := float32(i) / float32(segments) * 2 * math32.Pi
		p := mgl32.Vec3{radius * math32.Cos(theta), 0, radius * math32.Sin(theta)}
		var u float32
		if outer > inner {
			u = (radius - inner) / (outer - inner)
		}
		return NewVertex(p, up, mgl32.Vec2{u, float32(i) / float32(segments)})
	}

	out := make([]Vertex, 0, segments*6)
	for i := 0; i < segments; i++ {
		i0, o0 := at(inner, i), at(outer, i)
		i1, o1 := at(inner, i+1), at(outer, i+1)
		out = append(out, i0, o0, o1, i0, o1, i1)
	}
	return out
}

// Ship returns a small dart-shaped hull pointing along -Z (away from the viewer in screen space),
// about one unit long, with flat per-face normals.
func Ship() []Vertex {
	nose := mgl32.Vec3{0, 0, -1}
	left := mgl32.Vec3{-0.6, 0, 0.5}
	right := mgl32.Vec3{0.6, 0, 0.5}
	top := mgl32.Vec3{0, 0.25, 0.4}
	bottom := mgl32.Vec3{0, -0.15, 0.4}

	faces := [][3]mgl32.Vec3{
		{nose, top, left},
		{nose, right, top},
		{nose, left, bottom},
		{nose, bottom, right},
		{left, top, right},
		{left, right, bottom},
	}
	out := make([]Vertex, 0, len(faces)*3)
	for _, f := range faces {
		n := faceNormal(f[0], f[1], f[2])
		for _, p := range f {
			out = append(out, NewVertex(p, n, mgl32.Vec2{}))
		}
	}
	return out
}

// faceNormal returns the unit normal of a triangle, or +Y for a degenerate one.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Len()
	if l < 1e-8 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Mul(1 / l)
}
