package scene

import (
	"fmt"
	"log/slog"
	"strings"

	"solar-raster/internal/camera"
	"solar-raster/internal/color"
	"solar-raster/internal/framebuffer"
	"solar-raster/internal/mesh"
	"solar-raster/internal/physics"
	"solar-raster/internal/render"
	"solar-raster/internal/shader"
	"solar-raster/internal/skybox"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	orbitSegments = 96
	// orbitDepth keeps orbit lines in front of the stars and behind every body.
	orbitDepth = skybox.Depth / 2
	// warpDistance is how many collision radii past a body's surface a warp lands.
	warpDistance = 3
	// warpLift raises the landing point above the orbit plane.
	warpLift = 0.35
	zoomStep = 0.01
)

var orbitColor = color.FromHex(0x3a3a4a)

// Input is one frame of user intent, filled by the window layer (or a test).
type Input struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	MouseDX, MouseDY  float32
	ZoomIn, ZoomOut   bool
	WarpTo            int // 1-based body index, 0 for none
	TogglePause       bool
	ToggleOrbits      bool
	ResetCamera       bool
}

// Options configure a Scene.
type Options struct {
	Width      int
	Height     int
	Workers    int
	StarCount  int
	ShowOrbits bool
	Camera     camera.Config
	Log        *slog.Logger // nil discards
}

// Stats describe the last drawn frame.
type Stats struct {
	Bodies    int // bodies that reached the pipeline
	Fragments int
}

// Scene is the frame driver: it owns the camera, the orbital world and the star field, advances
// them from Input every frame and draws them through the software pipeline.
type Scene struct {
	Camera     *camera.Camera
	World      *physics.World
	Skybox     *skybox.Skybox
	Pipeline   *render.Pipeline
	Background color.Color
	ShowOrbits bool
	Time       float32
	Stats      Stats

	system *System
	meshes map[*physics.Body][]mesh.Vertex
	rings  map[*physics.Body][]mesh.Vertex
	log    *slog.Logger
}

// New builds a scene for sys. Meshes are generated (or loaded) once here.
func New(sys *System, opts Options) (*Scene, error) {
	world, err := sys.Build()
	if err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	pipe := render.NewPipeline(opts.Width, opts.Height)
	pipe.Workers = max(opts.Workers, 1)

	s := &Scene{
		Camera:     camera.New(sys.CameraStart(), opts.Camera),
		World:      world,
		Skybox:     skybox.New(opts.StarCount, opts.Width, opts.Height),
		Pipeline:   pipe,
		Background: sys.BackgroundColor(),
		ShowOrbits: opts.ShowOrbits,
		system:     sys,
		meshes:     make(map[*physics.Body][]mesh.Vertex),
		rings:      make(map[*physics.Body][]mesh.Vertex),
		log:        log,
	}
	cache := mesh.NewCache()
	for _, b := range world.Bodies {
		v, err := cache.Get(b.Mesh)
		if err != nil {
			return nil, fmt.Errorf("scene: body %q: %w", b.Name, err)
		}
		s.meshes[b] = v
		if b.Ring != nil {
			r, err := cache.Get(*b.Ring)
			if err != nil {
				return nil, fmt.Errorf("scene: ring of %q: %w", b.Name, err)
			}
			s.rings[b] = r
		}
	}
	log.Info("scene loaded", "system", sys.Name, "bodies", len(world.Bodies))
	return s, nil
}

// System returns the description the scene was built from.
func (s *Scene) System() *System {
	return s.system
}

// Paused reports whether orbital motion and shader time are frozen.
func (s *Scene) Paused() bool {
	return s.World.Paused
}

// SetPaused freezes or resumes orbital motion and shader time.
func (s *Scene) SetPaused(paused bool) {
	s.World.Paused = paused
	if paused {
		s.log.Info("paused")
	} else {
		s.log.Info("resumed")
	}
}

// OrbitsVisible reports whether orbit paths are drawn.
func (s *Scene) OrbitsVisible() bool {
	return s.ShowOrbits
}

// SetOrbitsVisible sets whether orbit paths are drawn.
func (s *Scene) SetOrbitsVisible(visible bool) {
	s.ShowOrbits = visible
}

// SetTimeScale sets the multiplier applied to dt for orbits and shader time.
func (s *Scene) SetTimeScale(scale float32) error {
	if !(scale >= 0) || math32.IsInf(scale, 1) {
		return fmt.Errorf("scene: invalid time scale %v", scale)
	}
	s.World.TimeScale = scale
	s.log.Info("time scale", "scale", scale)
	return nil
}

// Update advances the scene by dt seconds. While the camera is warping, movement and rotation
// input is ignored; otherwise the camera moves, then the world steps and the camera is pushed out
// of any body it entered.
func (s *Scene) Update(dt float32, in Input) {
	if in.TogglePause {
		s.SetPaused(!s.Paused())
	}
	if in.ToggleOrbits {
		s.SetOrbitsVisible(!s.ShowOrbits)
	}
	if in.ResetCamera {
		s.Camera.Reset()
		s.log.Info("camera reset")
	}
	if in.WarpTo > 0 {
		if err := s.WarpTo(in.WarpTo - 1); err != nil {
			s.log.Warn("warp", "err", err)
		}
	}

	if s.Camera.IsWarping() {
		if s.Camera.UpdateWarp(dt) {
			s.log.Info("warp complete", "position", s.Camera.Position)
		}
	} else {
		s.move(dt, in)
	}

	s.World.Step(dt)
	if !s.World.Paused {
		s.Time += dt * s.World.TimeScale
	}
	if !s.Camera.IsWarping() {
		s.World.Collide(s.Camera)
	}
}

func (s *Scene) move(dt float32, in Input) {
	c := s.Camera
	if in.Forward {
		c.MoveForward(dt)
	}
	if in.Backward {
		c.MoveBackward(dt)
	}
	if in.Left {
		c.MoveLeft(dt)
	}
	if in.Right {
		c.MoveRight(dt)
	}
	if in.Up {
		c.MoveUp(dt)
	}
	if in.Down {
		c.MoveDown(dt)
	}
	if in.MouseDX != 0 || in.MouseDY != 0 {
		c.Rotate(in.MouseDX, -in.MouseDY)
	}
	if in.ZoomIn {
		c.ZoomBy(zoomStep)
	}
	if in.ZoomOut {
		c.ZoomBy(-zoomStep)
	}
}

// WarpTo starts a warp to the body at index i (0-based, file order).
func (s *Scene) WarpTo(i int) error {
	if i < 0 || i >= len(s.World.Bodies) {
		return fmt.Errorf("scene: no body %d (have %d)", i+1, len(s.World.Bodies))
	}
	b := s.World.Bodies[i]
	s.Camera.StartWarp(WarpTarget(b, s.Camera.Config().Margin))
	s.log.Info("warp", "target", b.Name)
	return nil
}

// WarpToName starts a warp to the named body (case-insensitive).
func (s *Scene) WarpToName(name string) error {
	for i, b := range s.World.Bodies {
		if strings.EqualFold(b.Name, name) {
			return s.WarpTo(i)
		}
	}
	return fmt.Errorf("scene: no body named %q", name)
}

// WarpTarget is where a warp to b lands: outward from the origin past b, raised above the orbit
// plane, well outside the collision margin so the camera can look back at the origin over b.
func WarpTarget(b *physics.Body, margin float32) mgl32.Vec3 {
	center := b.Position()
	out := render.SafeNormalize(center, mgl32.Vec3{0, 0, 1})
	dir := render.SafeNormalize(out.Add(mgl32.Vec3{0, warpLift, 0}), out)
	dist := b.CollisionRadius()*warpDistance + margin
	return center.Add(dir.Mul(dist))
}

// Draw renders the current frame into fb: background, stars, orbit paths, then bodies and rings.
func (s *Scene) Draw(fb *framebuffer.Framebuffer) Stats {
	s.Pipeline.Width, s.Pipeline.Height = fb.Width, fb.Height
	fb.SetBackground(s.Background)
	fb.Clear()
	s.Skybox.Draw(fb, s.Time)
	if s.ShowOrbits {
		s.drawOrbits(fb)
	}

	s.Stats = Stats{}
	for _, b := range s.World.Bodies {
		s.drawBody(fb, b)
	}
	return s.Stats
}

func (s *Scene) drawOrbits(fb *framebuffer.Framebuffer) {
	w, h := float32(fb.Width), float32(fb.Height)
	fb.SetColor(orbitColor)
	for _, b := range s.World.Bodies {
		pts := physics.OrbitPath(b, orbitSegments)
		for i := 1; i < len(pts); i++ {
			p0 := s.Camera.ScreenPosition(pts[i-1], w, h)
			p1 := s.Camera.ScreenPosition(pts[i], w, h)
			if !camera.Visible(p0) || !camera.Visible(p1) || !segmentNear(p0, p1, w, h) {
				continue
			}
			fb.Line(int(p0.X()), int(p0.Y()), int(p1.X()), int(p1.Y()), orbitDepth)
		}
	}
}

// segmentNear rejects segments entirely off one side of the viewport, which also keeps Bresenham
// from walking huge lines for points just in front of the near plane.
func segmentNear(a, b mgl32.Vec3, w, h float32) bool {
	switch {
	case a.X() < 0 && b.X() < 0, a.Y() < 0 && b.Y() < 0:
		return false
	case a.X() >= w && b.X() >= w, a.Y() >= h && b.Y() >= h:
		return false
	}
	return max(a.X(), b.X())-min(a.X(), b.X()) < 4*w && max(a.Y(), b.Y())-min(a.Y(), b.Y()) < 4*h
}

func (s *Scene) drawBody(fb *framebuffer.Framebuffer, b *physics.Body) {
	w, h := float32(fb.Width), float32(fb.Height)
	center := s.Camera.ScreenPosition(b.Position(), w, h)
	if !camera.Visible(center) {
		return
	}
	scale := s.Camera.FocalLength(w) / center.Z()
	extent := b.CollisionRadius() * scale
	if center.X()+extent < 0 || center.X()-extent > w || center.Y()+extent < 0 || center.Y()-extent > h {
		return
	}

	u := render.Uniforms{Model: s.BodyModel(b, center, b.Radius*scale)}
	s.Stats.Bodies++
	s.Stats.Fragments += s.Pipeline.Draw(fb, u, s.meshes[b], b.Shader, s.Time)
	if ring, ok := s.rings[b]; ok {
		s.Stats.Fragments += s.Pipeline.Draw(fb, u, ring, shader.Ring, s.Time)
	}
}

// BodyModel maps a body's unit mesh to screen space: spin and tilt in object space, the camera
// orientation, then x/y scaled to the projected pixel radius (y flipped to grow downward) and z to
// world units, translated to the projected centre. Depth of a fragment is its distance along the
// look direction.
func (s *Scene) BodyModel(b *physics.Body, screen mgl32.Vec3, radiusPx float32) mgl32.Mat4 {
	right, up, forward := s.Camera.Basis()
	view := mgl32.Mat3FromRows(right, up, forward).Mat4()
	orient := mgl32.HomogRotate3DX(b.Spin.X()).
		Mul4(render.ModelMatrix(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, b.Spin.Y(), b.Spin.Z()}))
	return mgl32.Translate3D(screen.X(), screen.Y(), screen.Z()).
		Mul4(mgl32.Scale3D(radiusPx, -radiusPx, b.Radius)).
		Mul4(view).
		Mul4(orient)
}
