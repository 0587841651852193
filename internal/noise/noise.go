package noise

import (
	"math"

	"github.com/chewxy/math32"
)

// Default octave layout of FractalSum: the first layer has amplitude 0.5 at frequency 1,
// each further layer halves the amplitude and doubles the frequency.
const (
	startAmplitude = 0.5
	startFrequency = 1.0
	gain           = 0.5
	lacunarity     = 2.0
)

// belowOne is the largest float32 strictly less than 1.
var belowOne = math.Nextafter32(1, 0)

// Hash maps a 2D point to a deterministic pseudo-random value in [0,1) using the classic
// sine hash fract(sin(x*12.9898 + y*78.233) * 43758.5453). There is no seed and no state.
func Hash(x, y float32) float32 {
	a := x*12.9898 + y*78.233
	b := math32.Sin(a) * 43758.5453
	return fract(b)
}

// ValueNoise is smooth value noise in [0,1): the four lattice corners around (x, y) are hashed
// and blended bilinearly with Hermite easing 3t^2 - 2t^3.
func ValueNoise(x, y float32) float32 {
	ix := math32.Floor(x)
	iy := math32.Floor(y)
	fx := x - ix
	fy := y - iy

	// Lattice values at cell corners.
	a := Hash(ix, iy)
	b := Hash(ix+1, iy)
	c := Hash(ix, iy+1)
	d := Hash(ix+1, iy+1)

	u := smoothStep(fx)
	v := smoothStep(fy)

	n := lerp(lerp(a, b, u), lerp(c, d, u), v)
	if n >= 1 {
		n = belowOne
	}
	if n < 0 || !isFinite(n) {
		n = 0
	}
	return n
}

// FractalSum is fractal Brownian motion over ValueNoise: octaves layers of
// amplitude*ValueNoise(x*frequency, y*frequency), amplitude starting at 0.5 and halving,
// frequency starting at 1 and doubling. The result lies in [0, 1 - 0.5^octaves).
// octaves <= 0 yields 0.
func FractalSum(x, y float32, octaves int) float32 {
	var sum float32
	amplitude := float32(startAmplitude)
	frequency := float32(startFrequency)
	for i := 0; i < octaves; i++ {
		sum += amplitude * ValueNoise(x*frequency, y*frequency)
		amplitude *= gain
		frequency *= lacunarity
	}
	return sum
}

// MaxFractalSum returns the sum of the octave amplitudes, the exclusive upper bound of FractalSum.
func MaxFractalSum(octaves int) float32 {
	var total float32
	amplitude := float32(startAmplitude)
	for i := 0; i < octaves; i++ {
		total += amplitude
		amplitude *= gain
	}
	return total
}

func fract(v float32) float32 {
	if !isFinite(v) {
		return 0
	}
	f := v - math32.Floor(v)
	// v slightly below an integer can round up to exactly 1 in float32.
	if f >= 1 {
		return 0
	}
	return f
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Hermite easing: 3t^2 - 2t^3 over [0,1].
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
