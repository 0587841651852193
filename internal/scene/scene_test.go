package scene

import (
	"testing"

	"solar-raster/internal/camera"
	"solar-raster/internal/framebuffer"
	"solar-raster/internal/physics"
	"solar-raster/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testW = 160
	testH = 120
)

func newTestScene(t *testing.T, workers int) *Scene {
	t.Helper()
	s, err := New(DefaultSystem(), Options{
		Width:      testW,
		Height:     testH,
		Workers:    workers,
		StarCount:  50,
		ShowOrbits: true,
		Camera:     camera.DefaultConfig(),
	})
	require.NoError(t, err)
	return s
}

func TestDefaultSystem(t *testing.T) {
	sys := DefaultSystem()
	require.Len(t, sys.Bodies, 7)
	assert.Equal(t, shader.Star, sys.Bodies[0].Shader)
	assert.Equal(t, mgl32.Vec3{0, 160, 1100}, sys.CameraStart())

	w, err := sys.Build()
	require.NoError(t, err)
	moon, ok := w.Find("moon")
	require.True(t, ok)
	require.NotNil(t, moon.Parent)
	assert.Equal(t, "Rocky", moon.Parent.Name)

	gas, _ := w.Find("gas giant")
	require.NotNil(t, gas.Ring)
	assert.Equal(t, "ring", gas.Ring.Type)
}

func TestParseSystemErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "name: x\n"},
		{"bad yaml", "bodies: [\n"},
		{"unknown shader", "bodies:\n  - {name: a, shader: plasma, radius: 1}\n"},
		{"no name", "bodies:\n  - {shader: star, radius: 1}\n"},
		{"zero radius", "bodies:\n  - {name: a, shader: star, radius: 0}\n"},
		{"duplicate", "bodies:\n  - {name: a, shader: star, radius: 1}\n  - {name: A, shader: moon, radius: 1}\n"},
		{"late parent", "bodies:\n  - {name: m, shader: moon, radius: 1, parent: p}\n  - {name: p, shader: rocky, radius: 1}\n"},
		{"negative orbit", "bodies:\n  - {name: a, shader: star, radius: 1, orbit_radius: -3}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSystem([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestSpreadOrbits(t *testing.T) {
	sun := physics.NewBody("sun", shader.Star, 50)
	a := physics.NewBody("a", shader.RockyPlanet, 10)
	a.OrbitRadius = 100
	b := physics.NewBody("b", shader.IcePlanet, 20)
	b.OrbitRadius = 120
	moon := physics.NewBody("m", shader.Moon, 2)
	moon.Parent = a
	moon.OrbitRadius = 5

	n := SpreadOrbits([]*physics.Body{sun, a, moon, b}, 40)
	assert.Equal(t, 1, n)
	assert.Equal(t, float32(170), b.OrbitRadius)
	assert.Equal(t, float32(100), a.OrbitRadius)
	assert.Equal(t, float32(5), moon.OrbitRadius)
}

func TestDrawShowsSun(t *testing.T) {
	s := newTestScene(t, 1)
	fb := framebuffer.New(testW, testH)
	stats := s.Draw(fb)

	assert.GreaterOrEqual(t, stats.Bodies, 1)
	assert.Greater(t, stats.Fragments, 0)

	sunScreen := s.Camera.ScreenPosition(mgl32.Vec3{}, testW, testH)
	x, y := int(sunScreen.X()), int(sunScreen.Y())
	assert.NotEqual(t, s.Background, fb.At(x, y))
	assert.Less(t, fb.DepthAt(x, y), float32(1100))
}

func TestOrbitsToggle(t *testing.T) {
	count := func(s *Scene) int {
		fb := framebuffer.New(testW, testH)
		s.Draw(fb)
		n := 0
		for y := 0; y < testH; y++ {
			for x := 0; x < testW; x++ {
				if fb.At(x, y) == orbitColor {
					n++
				}
			}
		}
		return n
	}
	s := newTestScene(t, 1)
	assert.Greater(t, count(s), 0)
	s.Update(0, Input{ToggleOrbits: true})
	assert.False(t, s.ShowOrbits)
	assert.Equal(t, 0, count(s))
}

func TestParallelDrawMatchesSerial(t *testing.T) {
	serial, parallel := newTestScene(t, 1), newTestScene(t, 4)
	a, b := framebuffer.New(testW, testH), framebuffer.New(testW, testH)
	sa, sb := serial.Draw(a), parallel.Draw(b)
	assert.Equal(t, sa, sb)
	assert.Equal(t, a.Image(nil).Pix, b.Image(nil).Pix)
}

func TestUpdateMovesCamera(t *testing.T) {
	s := newTestScene(t, 1)
	start := s.Camera.Position
	s.Update(1, Input{Forward: true})
	assert.InDelta(t, start.Z()-15, s.Camera.Position.Z(), 1e-3)
	assert.InDelta(t, float32(1), s.Time, 1e-6)
}

func TestWarpIgnoresMovement(t *testing.T) {
	s := newTestScene(t, 1)
	s.Update(0.1, Input{WarpTo: 1})
	require.True(t, s.Camera.IsWarping())
	before := s.Camera.WarpProgress()
	s.Update(0.1, Input{Forward: true, MouseDX: 500})
	assert.Equal(t, float32(camera.DefaultYaw), s.Camera.Yaw)
	assert.Greater(t, s.Camera.WarpProgress(), before)
}

func TestWarpLandsOutsideSun(t *testing.T) {
	s := newTestScene(t, 1)
	s.Update(2, Input{WarpTo: 1})
	assert.False(t, s.Camera.IsWarping())

	sun := s.World.Bodies[0]
	assert.Equal(t, WarpTarget(sun, 50), s.Camera.Position)
	assert.False(t, s.Camera.CheckCollision(sun.Position(), sun.CollisionRadius()))

	// Aimed back at the origin.
	p := s.Camera.ScreenPosition(mgl32.Vec3{}, testW, testH)
	assert.InDelta(t, testW/2, p.X(), 1e-2)
	assert.InDelta(t, testH/2, p.Y(), 1e-2)
}

func TestWarpErrors(t *testing.T) {
	s := newTestScene(t, 1)
	assert.Error(t, s.WarpTo(99))
	assert.Error(t, s.WarpTo(-1))
	assert.Error(t, s.WarpToName("pluto"))
	require.NoError(t, s.WarpToName("GAS GIANT"))
	assert.True(t, s.Camera.IsWarping())

	s.Update(0.1, Input{WarpTo: 42}) // logged, not fatal
}

func TestPauseFreezesTimeAndOrbits(t *testing.T) {
	s := newTestScene(t, 1)
	rocky, _ := s.World.Find("rocky")
	angle := rocky.Angle

	s.Update(0.5, Input{TogglePause: true})
	assert.True(t, s.Paused())
	assert.Equal(t, float32(0), s.Time)
	assert.Equal(t, angle, rocky.Angle)

	s.Update(0.5, Input{TogglePause: true})
	assert.False(t, s.Paused())
	assert.Greater(t, rocky.Angle, angle)
}

func TestUpdateResolvesCollisions(t *testing.T) {
	s := newTestScene(t, 1)
	s.Camera.Position = mgl32.Vec3{0, 0, 10}
	s.Update(0, Input{})
	assert.InDelta(t, 120, s.Camera.Position.Len(), 1e-2)
}

func TestResetCamera(t *testing.T) {
	s := newTestScene(t, 1)
	s.Update(1, Input{Left: true})
	s.Update(0, Input{ResetCamera: true})
	assert.Equal(t, s.System().CameraStart(), s.Camera.Position)
}

func TestBodyModel(t *testing.T) {
	s := newTestScene(t, 1)
	sun := s.World.Bodies[0]
	screen := s.Camera.ScreenPosition(sun.Position(), testW, testH)
	m := s.BodyModel(sun, screen, 10)

	c := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, screen.X(), c.X(), 1e-3)
	assert.InDelta(t, screen.Y(), c.Y(), 1e-3)
	assert.InDelta(t, screen.Z(), c.Z(), 1e-3)

	// The point of the unit sphere facing the camera is nearer by one radius.
	_, _, forward := s.Camera.Basis()
	near := m.Mul4x1(forward.Mul(-1).Vec4(1))
	assert.InDelta(t, screen.Z()-sun.Radius, near.Z(), 1e-2)
	assert.InDelta(t, screen.X(), near.X(), 1e-2)
}

func TestSetTimeScale(t *testing.T) {
	s := newTestScene(t, 1)
	require.NoError(t, s.SetTimeScale(2))
	s.Update(0.5, Input{})
	assert.InDelta(t, 1, s.Time, 1e-6)

	assert.Error(t, s.SetTimeScale(-1))
	assert.Equal(t, float32(2), s.World.TimeScale)
}
