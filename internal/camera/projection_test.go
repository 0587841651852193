package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestScreenPositionCentre(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 100}, DefaultConfig())
	p := c.ScreenPosition(mgl32.Vec3{}, 800, 600)
	assert.InDelta(t, 400, p.X(), tol)
	assert.InDelta(t, 300, p.Y(), tol)
	assert.InDelta(t, 100, p.Z(), tol)
	assert.True(t, Visible(p))
}

func TestScreenPositionAxes(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 100}, DefaultConfig())
	f := c.FocalLength(800)
	assert.InDelta(t, 400/math32.Tan(math32.Pi/6), f, 1e-2)

	right := c.ScreenPosition(mgl32.Vec3{10, 0, 0}, 800, 600)
	assert.InDelta(t, 400+f*0.1, right.X(), 1e-2)
	assert.InDelta(t, 300, right.Y(), 1e-2)

	// World up is screen up, which is decreasing y.
	up := c.ScreenPosition(mgl32.Vec3{0, 10, 0}, 800, 600)
	assert.InDelta(t, 400, up.X(), 1e-2)
	assert.InDelta(t, 300-f*0.1, up.Y(), 1e-2)
}

func TestScreenPositionSentinel(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 100}, DefaultConfig())
	tests := []struct {
		name  string
		point mgl32.Vec3
	}{
		{"behind", mgl32.Vec3{0, 0, 200}},
		{"beside", mgl32.Vec3{50, 0, 100}},
		{"at near plane", mgl32.Vec3{0, 0, 99.9}},
		{"camera position", mgl32.Vec3{0, 0, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := c.ScreenPosition(tt.point, 800, 600)
			assert.Equal(t, Offscreen, p)
			assert.False(t, Visible(p))
		})
	}
}

func TestZoomScalesProjection(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 100}, DefaultConfig())
	base := c.ScreenPosition(mgl32.Vec3{10, 0, 0}, 800, 600)
	c.ZoomBy(1)
	zoomed := c.ScreenPosition(mgl32.Vec3{10, 0, 0}, 800, 600)
	assert.InDelta(t, 2*(base.X()-400), zoomed.X()-400, 1e-2)
}

func TestBasisLookingStraightDown(t *testing.T) {
	c := New(mgl32.Vec3{0, 100, 0}, DefaultConfig())
	c.LookAt(mgl32.Vec3{})
	right, up, forward := c.Basis()
	for _, v := range []mgl32.Vec3{right, up, forward} {
		assert.InDelta(t, 1, v.Len(), tol)
	}
	p := c.ScreenPosition(mgl32.Vec3{}, 800, 600)
	assert.InDelta(t, 400, p.X(), tol)
	assert.InDelta(t, 300, p.Y(), tol)
}

func TestCollision(t *testing.T) {
	center := mgl32.Vec3{10, 0, 0}
	tests := []struct {
		name   string
		start  mgl32.Vec3
		radius float32
	}{
		{"inside margin", mgl32.Vec3{30, 0, 0}, 5},
		{"inside body", mgl32.Vec3{10, 1, 1}, 40},
		{"at center", mgl32.Vec3{10, 0, 0}, 20},
		{"far from origin", mgl32.Vec3{1e5 + 3, 7, -2}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.start, DefaultConfig())
			ctr := center
			if tt.name == "far from origin" {
				ctr = mgl32.Vec3{1e5, 0, 0}
			}
			assert.True(t, c.CheckCollision(ctr, tt.radius))
			c.ResolveCollision(ctr, tt.radius)
			assert.False(t, c.CheckCollision(ctr, tt.radius))
			assert.InDelta(t, tt.radius+50, c.Position.Sub(ctr).Len(), 1e-1)
		})
	}
}

func TestResolveKeepsDirection(t *testing.T) {
	c := New(mgl32.Vec3{0, 3, 4}, DefaultConfig())
	c.ResolveCollision(mgl32.Vec3{}, 0)
	vecInDelta(t, mgl32.Vec3{0, 30, 40}, c.Position)
}

func TestResolveAtCenterUsesUp(t *testing.T) {
	c := New(mgl32.Vec3{5, 5, 5}, DefaultConfig())
	c.ResolveCollision(mgl32.Vec3{5, 5, 5}, 10)
	vecInDelta(t, mgl32.Vec3{5, 65, 5}, c.Position)
}

func TestNoCollisionOutsideMargin(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 100}, DefaultConfig())
	assert.False(t, c.CheckCollision(mgl32.Vec3{}, 49))
	assert.True(t, c.CheckCollision(mgl32.Vec3{}, 51))
}
