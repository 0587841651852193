package hud

import (
	"image"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
)

// Glow blurs img and screen-blends the blur over it, so bright surfaces bleed into the dark
// around them. radius <= 0 returns img unchanged.
func Glow(img *image.RGBA, radius float64) *image.RGBA {
	if radius <= 0 {
		return img
	}
	return blend.Screen(img, blur.Gaussian(img, radius))
}
