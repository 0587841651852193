package render

import (
	"solar-raster/internal/mesh"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// singularEpsilon is the determinant magnitude below which the model's 3x3 block is treated as
// non-invertible and normals are passed through unchanged.
const singularEpsilon = 1e-12

// Uniforms are the per-draw-call constants of the vertex stage.
type Uniforms struct {
	Model mgl32.Mat4
}

// ModelMatrix builds T · S · Rz · Ry · Rx: rotate about X, then Y, then Z (radians),
// scale per axis, then translate.
func ModelMatrix(translation, scale, rotation mgl32.Vec3) mgl32.Mat4 {
	r := mgl32.HomogRotate3DZ(rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(rotation.X()))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	t := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())
	return t.Mul4(s).Mul4(r)
}

// NormalMatrix returns the inverse-transpose of the upper-left 3x3 block of model.
// A singular block yields the identity so the draw call never fails.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	m := model.Mat3()
	if math32.Abs(m.Det()) < singularEpsilon {
		return mgl32.Ident3()
	}
	return m.Inv().Transpose()
}

// TransformVertex runs the vertex stage on a copy of v: the position is homogenised, multiplied
// by the model matrix and divided by w; the normal is multiplied by the normal matrix and left
// unnormalised. Object-space fields pass through unchanged.
func TransformVertex(v mesh.Vertex, u Uniforms) mesh.Vertex {
	return transformWith(v, u.Model, NormalMatrix(u.Model))
}

// TransformVertices applies the vertex stage to every vertex, computing the normal matrix once.
func TransformVertices(vertices []mesh.Vertex, u Uniforms) []mesh.Vertex {
	normal := NormalMatrix(u.Model)
	out := make([]mesh.Vertex, len(vertices))
	for i, v := range vertices {
		out[i] = transformWith(v, u.Model, normal)
	}
	return out
}

func transformWith(v mesh.Vertex, model mgl32.Mat4, normal mgl32.Mat3) mesh.Vertex {
	p := model.Mul4x1(v.Position.Vec4(1))
	if w := p.W(); w != 0 {
		v.TransformedPosition = mgl32.Vec3{p.X() / w, p.Y() / w, p.Z() / w}
	} else {
		v.TransformedPosition = p.Vec3()
	}
	v.TransformedNormal = normal.Mul3x1(v.Normal)
	return v
}

// SafeNormalize returns v scaled to unit length, or fallback when v is too short (or not finite)
// to have a direction.
func SafeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-8 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return fallback
	}
	return v.Mul(1 / l)
}
