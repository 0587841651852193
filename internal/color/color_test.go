package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticSaturates(t *testing.T) {
	c := New(200, 100, 10)
	assert.Equal(t, Color{255, 200, 20}, c.Add(New(100, 100, 10)))
	assert.Equal(t, Color{255, 200, 20}, c.Scale(2))
	assert.Equal(t, Black, c.Scale(-1))
	assert.Equal(t, Color{100, 50, 5}, c.Scale(0.5))
	assert.Equal(t, Color{255, 0, 0}, New(300, -4, 0))
}

func TestHexRoundTrip(t *testing.T) {
	c := FromHex(0x1a2b3c)
	assert.Equal(t, Color{0x1a, 0x2b, 0x3c}, c)
	assert.Equal(t, uint32(0x1a2b3c), c.Hex())
}

func TestLerpEndpoints(t *testing.T) {
	a := New(10, 20, 30)
	b := New(200, 100, 0)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}

func TestRGBAIsOpaque(t *testing.T) {
	_, _, _, alpha := New(1, 2, 3).RGBA()
	assert.Equal(t, uint32(0xffff), alpha)
}
