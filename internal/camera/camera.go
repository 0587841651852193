package camera

import (
	"solar-raster/internal/render"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in degrees.
const (
	MaxPitch = 89.0
	MinPitch = -89.0
)

// Zoom limits for ZoomBy.
const (
	MinZoom = 0.3
	MaxZoom = 2.0
)

// DefaultYaw looks down -Z.
const DefaultYaw = -90.0

// Offscreen is returned by ScreenPosition for points at or behind the near plane.
// Callers must check Z < 0 before drawing.
var Offscreen = mgl32.Vec3{-1000, -1000, -1}

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	defaultFront = mgl32.Vec3{0, 0, -1}
	defaultRight = mgl32.Vec3{1, 0, 0}
)

// Config holds the tunables that were fixed constants in earlier versions of the viewer.
type Config struct {
	FOV          float32 // vertical field of view, degrees
	NearPlane    float32 // points with local z at or below this are not projected
	Margin       float32 // extra distance kept from every body surface
	WarpDuration float32 // seconds
	Speed        float32 // world units per second
	Sensitivity  float32 // degrees per unit of mouse delta
}

// DefaultConfig returns the stock camera settings.
func DefaultConfig() Config {
	return Config{
		FOV:          60,
		NearPlane:    0.1,
		Margin:       50,
		WarpDuration: 1.5,
		Speed:        15,
		Sensitivity:  0.1,
	}
}

// Camera is a free-flying camera with an eased warp transition. It is either free (moved by the
// caller through the Move*/Rotate methods) or warping (moved by UpdateWarp). It does not block
// input while warping; the frame driver is expected to stop calling Move*/Rotate.
type Camera struct {
	Position    mgl32.Vec3
	Target      mgl32.Vec3 // unit look direction
	Up          mgl32.Vec3
	Yaw         float32 // degrees
	Pitch       float32 // degrees
	Speed       float32
	Sensitivity float32
	Zoom        float32

	cfg       Config
	home      mgl32.Vec3
	warping   bool
	progress  float32
	warpStart mgl32.Vec3
	warpEnd   mgl32.Vec3
}

// New returns a camera at position looking down -Z. position is also where Reset returns to.
func New(position mgl32.Vec3, cfg Config) *Camera {
	c := &Camera{cfg: cfg, home: position}
	c.Reset()
	return c
}

// Config returns the settings the camera was built with.
func (c *Camera) Config() Config {
	return c.cfg
}

// Reset returns the camera to its starting position and orientation and cancels any warp.
func (c *Camera) Reset() {
	c.Position = c.home
	c.Up = worldUp
	c.Yaw = DefaultYaw
	c.Pitch = 0
	c.Speed = c.cfg.Speed
	c.Sensitivity = c.cfg.Sensitivity
	c.Zoom = 1
	c.warping = false
	c.progress = 0
	c.updateVectors()
}

// updateVectors recomputes the look direction from yaw and pitch.
func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Target = render.SafeNormalize(front, defaultFront)
	c.Up = worldUp
}

// horizontalFront is the look direction with y dropped. Looking straight up or down gives zero,
// so forward/backward movement does nothing.
func (c *Camera) horizontalFront() mgl32.Vec3 {
	return render.SafeNormalize(mgl32.Vec3{c.Target.X(), 0, c.Target.Z()}, mgl32.Vec3{})
}

func (c *Camera) right() mgl32.Vec3 {
	return render.SafeNormalize(c.Target.Cross(c.Up), defaultRight)
}

func (c *Camera) step(dt float32) float32 {
	return c.Speed * dt
}

// MoveForward moves along the horizontal look direction.
func (c *Camera) MoveForward(dt float32) {
	c.Position = c.Position.Add(c.horizontalFront().Mul(c.step(dt)))
}

// MoveBackward moves against the horizontal look direction.
func (c *Camera) MoveBackward(dt float32) {
	c.Position = c.Position.Sub(c.horizontalFront().Mul(c.step(dt)))
}

// MoveLeft strafes left.
func (c *Camera) MoveLeft(dt float32) {
	c.Position = c.Position.Sub(c.right().Mul(c.step(dt)))
}

// MoveRight strafes right.
func (c *Camera) MoveRight(dt float32) {
	c.Position = c.Position.Add(c.right().Mul(c.step(dt)))
}

// MoveUp moves along world +Y.
func (c *Camera) MoveUp(dt float32) {
	c.Position[1] += c.step(dt)
}

// MoveDown moves along world -Y.
func (c *Camera) MoveDown(dt float32) {
	c.Position[1] -= c.step(dt)
}

// Rotate adds the scaled offsets to yaw and pitch, clamps pitch to [MinPitch, MaxPitch] and
// recomputes the look direction.
func (c *Camera) Rotate(yawOffset, pitchOffset float32) {
	c.Yaw += yawOffset * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+pitchOffset*c.Sensitivity, MinPitch, MaxPitch)
	c.updateVectors()
}

// ZoomBy changes the zoom factor, clamped to [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(delta float32) {
	c.Zoom = mgl32.Clamp(c.Zoom+delta, MinZoom, MaxZoom)
}

// LookAt aims the camera at point and updates yaw and pitch to match. Pointing at the camera's own
// position keeps the current direction.
func (c *Camera) LookAt(point mgl32.Vec3) {
	dir := render.SafeNormalize(point.Sub(c.Position), c.Target)
	c.Target = dir
	c.Yaw = mgl32.RadToDeg(math32.Atan2(dir.Z(), dir.X()))
	c.Pitch = mgl32.Clamp(mgl32.RadToDeg(math32.Asin(mgl32.Clamp(dir.Y(), -1, 1))), MinPitch, MaxPitch)
	c.Up = worldUp
}

// StartWarp begins a transition from the current position to target. A warp in progress is
// replaced.
func (c *Camera) StartWarp(target mgl32.Vec3) {
	c.warping = true
	c.progress = 0
	c.warpStart = c.Position
	c.warpEnd = target
}

// UpdateWarp advances the warp by dt seconds. It returns true on the tick the warp completes: the
// camera is then exactly at the target and aimed at the world origin. Returns false otherwise,
// including when no warp is running.
func (c *Camera) UpdateWarp(dt float32) bool {
	if !c.warping {
		return false
	}
	if c.cfg.WarpDuration > 0 {
		c.progress += dt / c.cfg.WarpDuration
	} else {
		c.progress = 1
	}
	if c.progress >= 1 {
		c.Position = c.warpEnd
		c.warping = false
		c.progress = 0
		c.LookAt(mgl32.Vec3{})
		return true
	}
	t := EaseInOutCubic(c.progress)
	c.Position = c.warpStart.Mul(1 - t).Add(c.warpEnd.Mul(t))
	return false
}

// IsWarping reports whether a warp is in progress.
func (c *Camera) IsWarping() bool {
	return c.warping
}

// WarpProgress is the un-eased warp progress in [0,1); zero when not warping.
func (c *Camera) WarpProgress() float32 {
	return c.progress
}

// WarpTarget returns where the current (or last) warp ends.
func (c *Camera) WarpTarget() mgl32.Vec3 {
	return c.warpEnd
}

// EaseInOutCubic maps t in [0,1] to [0,1], slow at both ends.
func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
