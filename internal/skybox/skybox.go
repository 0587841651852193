package skybox

import (
	"solar-raster/internal/color"
	"solar-raster/internal/render"

	"github.com/chewxy/math32"
)

// Depth is where stars are written: behind every body, in front of a cleared framebuffer.
const Depth = 1e6

const (
	minBrightness = 100
	brightRange   = 155
	bigStarChance = 0.95 // hash above this gives a 2x2 star
)

// Star is one screen-space star.
type Star struct {
	X, Y       float32
	Brightness uint8
	Size       int
}

// Skybox is a fixed, deterministic star field covering the viewport.
type Skybox struct {
	Stars []Star
}

// New places count stars over a width x height viewport. The same arguments always give the same
// field.
func New(count, width, height int) *Skybox {
	count = max(count, 0)
	stars := make([]Star, count)
	for i := range stars {
		seed := float32(i) * 12.9898
		size := 1
		if hash(seed, 67.890) > bigStarChance {
			size = 2
		}
		stars[i] = Star{
			X:          hash(seed, 78.233) * float32(width),
			Y:          hash(seed, 45.164) * float32(height),
			Brightness: uint8(hash(seed, 12.345)*brightRange + minBrightness),
			Size:       size,
		}
	}
	return &Skybox{Stars: stars}
}

// hash is the fractional part of a scaled sine, in [0,1).
func hash(seed, k float32) float32 {
	v := math32.Sin(seed*k) * 43758.5453
	f := v - math32.Floor(v)
	if f >= 1 || f < 0 || math32.IsNaN(f) {
		return 0
	}
	return f
}

// Twinkle returns the brightness multiplier of star i at time t, in [0.7, 1].
func Twinkle(i int, t float32) float32 {
	s := math32.Sin(t*2+float32(i)*0.1)*0.5 + 0.5
	return 0.7 + 0.3*s
}

// Draw writes every star at Depth, with twinkle applied.
func (s *Skybox) Draw(sink render.Sink, t float32) {
	for i, star := range s.Stars {
		b := float32(star.Brightness) * Twinkle(i, t)
		sink.SetColor(color.New(int(b), int(b), int(b)))
		x, y := int(star.X), int(star.Y)
		for dy := 0; dy < star.Size; dy++ {
			for dx := 0; dx < star.Size; dx++ {
				sink.WritePixel(x+dx, y+dy, Depth)
			}
		}
	}
}
