package render

import (
	"image"
	"iter"

	"solar-raster/internal/color"
	"solar-raster/internal/mesh"
	"solar-raster/internal/shader"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightDir is the fixed directional light in screen space, pointing at the viewer.
var LightDir = mgl32.Vec3{0, 0, -1}

// maxCoord bounds screen coordinates before they are converted to int.
const maxCoord = 1 << 24

// Fragment is one shaded pixel produced by the rasterizer.
type Fragment struct {
	X, Y  int
	Color color.Color
	Depth float32
}

// Box is an inclusive integer pixel rectangle.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

// Empty reports whether the box covers no pixel.
func (b Box) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Intersect clips b to the half-open rectangle r.
func (b Box) Intersect(r image.Rectangle) Box {
	return Box{
		MinX: max(b.MinX, r.Min.X),
		MinY: max(b.MinY, r.Min.Y),
		MaxX: min(b.MaxX, r.Max.X-1),
		MaxY: min(b.MaxY, r.Max.Y-1),
	}
}

// BoundingBox returns floor(min)..ceil(max) of the screen-space positions, and false when a
// coordinate is not finite.
func BoundingBox(a, b, c mgl32.Vec3) (Box, bool) {
	for _, v := range [...]float32{a.X(), a.Y(), b.X(), b.Y(), c.X(), c.Y()} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return Box{}, false
		}
	}
	return Box{
		MinX: clampCoord(math32.Floor(min(a.X(), b.X(), c.X()))),
		MinY: clampCoord(math32.Floor(min(a.Y(), b.Y(), c.Y()))),
		MaxX: clampCoord(math32.Ceil(max(a.X(), b.X(), c.X()))),
		MaxY: clampCoord(math32.Ceil(max(a.Y(), b.Y(), c.Y()))),
	}, true
}

// Edge is the edge function (c.x-a.x)(b.y-a.y) - (c.y-a.y)(b.x-a.x): twice the signed area of
// triangle abc.
func Edge(a, b, c mgl32.Vec3) float32 {
	return (c.X()-a.X())*(b.Y()-a.Y()) - (c.Y()-a.Y())*(b.X()-a.X())
}

// Barycentric returns the weights of p in triangle abc whose Edge(a, b, c) is area.
// area must be non-zero.
func Barycentric(p, a, b, c mgl32.Vec3, area float32) (w1, w2, w3 float32) {
	w1 = Edge(b, c, p) / area
	w2 = Edge(c, a, p) / area
	w3 = Edge(a, b, p) / area
	return w1, w2, w3
}

// Inside reports whether all weights lie in [0,1]. Edge pixels (a weight of exactly 0) are inside.
func Inside(w1, w2, w3 float32) bool {
	return w1 >= 0 && w1 <= 1 && w2 >= 0 && w2 <= 1 && w3 >= 0 && w3 <= 1
}

// Rasterize returns the fragments covered by the triangle v1 v2 v3, shaded with the given surface.
// Pixels are sampled at their centres (x+0.5, y+0.5) in row-major order over the bounding box.
// The sequence is lazy; degenerate or non-finite triangles produce nothing.
func Rasterize(v1, v2, v3 mesh.Vertex, t shader.Type, time float32) iter.Seq[Fragment] {
	box, ok := BoundingBox(v1.TransformedPosition, v2.TransformedPosition, v3.TransformedPosition)
	if !ok {
		return emptyFragments
	}
	return rasterizeBox(v1, v2, v3, t, time, box)
}

// RasterizeWithin is Rasterize with the bounding box clipped to the viewport. It yields exactly the
// fragments of Rasterize that lie inside viewport.
func RasterizeWithin(v1, v2, v3 mesh.Vertex, t shader.Type, time float32, viewport image.Rectangle) iter.Seq[Fragment] {
	box, ok := BoundingBox(v1.TransformedPosition, v2.TransformedPosition, v3.TransformedPosition)
	if !ok {
		return emptyFragments
	}
	return rasterizeBox(v1, v2, v3, t, time, box.Intersect(viewport))
}

func emptyFragments(func(Fragment) bool) {}

func rasterizeBox(v1, v2, v3 mesh.Vertex, t shader.Type, time float32, box Box) iter.Seq[Fragment] {
	a, b, c := v1.TransformedPosition, v2.TransformedPosition, v3.TransformedPosition
	area := Edge(a, b, c)
	if area == 0 || math32.IsNaN(area) || box.Empty() {
		return emptyFragments
	}
	return func(yield func(Fragment) bool) {
		for y := box.MinY; y <= box.MaxY; y++ {
			for x := box.MinX; x <= box.MaxX; x++ {
				p := mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, 0}
				w1, w2, w3 := Barycentric(p, a, b, c, area)
				if !Inside(w1, w2, w3) {
					continue
				}
				frag := shadeFragment(v1, v2, v3, w1, w2, w3, t, time)
				frag.X, frag.Y = x, y
				if !yield(frag) {
					return
				}
			}
		}
	}
}

// shadeFragment interpolates normal, object position and depth at the given weights and runs
// the surface shader.
func shadeFragment(v1, v2, v3 mesh.Vertex, w1, w2, w3 float32, t shader.Type, time float32) Fragment {
	n := v1.TransformedNormal.Mul(w1).
		Add(v2.TransformedNormal.Mul(w2)).
		Add(v3.TransformedNormal.Mul(w3))
	n = SafeNormalize(n, LightDir)

	pos := v1.Position.Mul(w1).
		Add(v2.Position.Mul(w2)).
		Add(v3.Position.Mul(w3))

	intensity := max(0, n.Dot(LightDir))
	depth := v1.TransformedPosition.Z()*w1 + v2.TransformedPosition.Z()*w2 + v3.TransformedPosition.Z()*w3

	return Fragment{
		Color: shader.Shade(t, pos, intensity, time),
		Depth: depth,
	}
}

func clampCoord(v float32) int {
	if v > maxCoord {
		return maxCoord
	}
	if v < -maxCoord {
		return -maxCoord
	}
	return int(v)
}
