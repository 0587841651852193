package mesh

import (
	"solar-raster/internal/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one corner of a triangle. Position, Normal, TexCoords and Color are object-space
// inputs from the mesh source; TransformedPosition and TransformedNormal are filled in by the
// vertex stage on a copy, never on the mesh's own vertices.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
	Color     color.Color

	TransformedPosition mgl32.Vec3
	TransformedNormal   mgl32.Vec3
}

// NewVertex returns a vertex with the given object-space attributes. The transformed fields
// start as copies of position and normal so an untransformed vertex is still drawable.
func NewVertex(position, normal mgl32.Vec3, tex mgl32.Vec2) Vertex {
	return Vertex{
		Position:            position,
		Normal:              normal,
		TexCoords:           tex,
		Color:               color.New(255, 255, 255),
		TransformedPosition: position,
		TransformedNormal:   normal,
	}
}

// Triangles returns the number of complete triangles in a flat triangle list.
// A trailing partial triple is ignored.
func Triangles(vertices []Vertex) int {
	return len(vertices) / 3
}
