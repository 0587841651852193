package color

import (
	stdcolor "image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Color is an opaque RGB value with 8-bit integer channels. Arithmetic saturates,
// so every result is already a valid colour when it reaches the framebuffer.
type Color struct {
	R, G, B uint8
}

// Black is the zero colour.
var Black = Color{}

// New returns a colour from channel values, clamping each one to [0,255].
func New(r, g, b int) Color {
	return Color{R: clampChannel(float32(r)), G: clampChannel(float32(g)), B: clampChannel(float32(b))}
}

// FromHex builds a colour from a 0xRRGGBB value.
func FromHex(hex uint32) Color {
	return Color{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex)}
}

// Hex packs the colour as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Add returns the channel-wise sum, saturating at 255.
func (c Color) Add(o Color) Color {
	return Color{
		R: clampChannel(float32(c.R) + float32(o.R)),
		G: clampChannel(float32(c.G) + float32(o.G)),
		B: clampChannel(float32(c.B) + float32(o.B)),
	}
}

// Scale multiplies every channel by f. Negative factors give black, large ones saturate.
func (c Color) Scale(f float32) Color {
	return Color{
		R: clampChannel(float32(c.R) * f),
		G: clampChannel(float32(c.G) * f),
		B: clampChannel(float32(c.B) * f),
	}
}

// Lerp blends from c (t=0) to o (t=1).
func (c Color) Lerp(o Color, t float32) Color {
	return c.Scale(1 - t).Add(o.Scale(t))
}

// RGBA implements image/color.Color. The colour is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// NRGBA returns the colour as an opaque stdlib colour.
func (c Color) NRGBA() stdcolor.RGBA {
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ToRaylib converts to raylib's colour type (opaque).
func (c Color) ToRaylib() rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func clampChannel(v float32) uint8 {
	if v != v || v <= 0 { // NaN counts as black
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
