package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePoints = [][2]float32{
	{0, 0}, {0.5, 0.5}, {1, 1}, {-1.25, 3.75}, {12.3, -45.6},
	{1000.1, 2000.2}, {-7.999, -0.001}, {3.14159, 2.71828}, {0.999999, 0.000001},
}

func TestValueNoiseDeterministic(t *testing.T) {
	for _, p := range samplePoints {
		a := ValueNoise(p[0], p[1])
		b := ValueNoise(p[0], p[1])
		assert.Equal(t, math.Float32bits(a), math.Float32bits(b), "point %v", p)
	}
}

func TestValueNoiseRange(t *testing.T) {
	for x := float32(-20); x < 20; x += 0.37 {
		for y := float32(-20); y < 20; y += 0.53 {
			n := ValueNoise(x, y)
			require.GreaterOrEqual(t, n, float32(0))
			require.Less(t, n, float32(1))
		}
	}
}

func TestValueNoiseMatchesLatticeAtIntegers(t *testing.T) {
	for _, p := range [][2]float32{{0, 0}, {3, -2}, {-5, 7}} {
		assert.Equal(t, Hash(p[0], p[1]), ValueNoise(p[0], p[1]))
	}
}

func TestFractalSumBounds(t *testing.T) {
	for octaves := 1; octaves <= 6; octaves++ {
		bound := MaxFractalSum(octaves)
		for _, p := range samplePoints {
			v := FractalSum(p[0], p[1], octaves)
			assert.GreaterOrEqual(t, v, -bound)
			assert.LessOrEqual(t, v, bound)
		}
	}
}

func TestFractalSumSingleOctaveIsHalfNoise(t *testing.T) {
	for _, p := range samplePoints {
		assert.InDelta(t, 0.5*ValueNoise(p[0], p[1]), FractalSum(p[0], p[1], 1), 1e-7)
	}
	assert.Zero(t, FractalSum(1, 2, 0))
}

func TestMaxFractalSum(t *testing.T) {
	assert.InDelta(t, 0.5, MaxFractalSum(1), 1e-7)
	assert.InDelta(t, 0.9375, MaxFractalSum(4), 1e-7)
}

func TestSmoothStep(t *testing.T) {
	assert.Equal(t, float32(0), smoothStep(-1))
	assert.Equal(t, float32(1), smoothStep(2))
	assert.InDelta(t, 0.5, smoothStep(0.5), 1e-7)
	assert.InDelta(t, 0.104, smoothStep(0.2), 1e-6)
}
