package framebuffer

import (
	"image"
	"math"

	"solar-raster/internal/color"
)

// FarDepth is the depth a cleared pixel holds. Anything drawn at a smaller depth replaces it.
const FarDepth = float32(math.MaxFloat32)

// Framebuffer is a software colour + depth buffer. It implements render.Sink: SetColor selects the
// active colour and WritePixel stores it when the new depth is strictly nearer than the stored one.
// Writes outside the buffer are ignored.
type Framebuffer struct {
	Width      int
	Height     int
	color      []color.Color
	depth      []float32
	background color.Color
	current    color.Color
}

// New returns a cleared framebuffer of width x height pixels with a black background.
func New(width, height int) *Framebuffer {
	width = max(width, 0)
	height = max(height, 0)
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		color:  make([]color.Color, width*height),
		depth:  make([]float32, width*height),
	}
	fb.Clear()
	return fb
}

// SetBackground sets the colour used by Clear.
func (fb *Framebuffer) SetBackground(c color.Color) {
	fb.background = c
}

// Clear fills the colour buffer with the background and resets every depth to FarDepth.
func (fb *Framebuffer) Clear() {
	n := len(fb.color)
	if n == 0 {
		return
	}
	// Copy-doubling fill.
	fb.color[0] = fb.background
	fb.depth[0] = FarDepth
	for i := 1; i < n; i *= 2 {
		copy(fb.color[i:], fb.color[:i])
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// SetColor sets the colour used by subsequent WritePixel and Line calls.
func (fb *Framebuffer) SetColor(c color.Color) {
	fb.current = c
}

// WritePixel stores the active colour at (x, y) if depth is nearer than what is there.
func (fb *Framebuffer) WritePixel(x, y int, depth float32) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if depth < fb.depth[i] {
		fb.depth[i] = depth
		fb.color[i] = fb.current
	}
}

// At returns the colour at (x, y), or black outside the buffer.
func (fb *Framebuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return color.Black
	}
	return fb.color[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), or FarDepth outside the buffer.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return FarDepth
	}
	return fb.depth[y*fb.Width+x]
}

// Line draws a Bresenham line from (x0, y0) to (x1, y1) at the given depth with the active colour.
// Pixels outside the buffer are skipped.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, depth float32) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		fb.WritePixel(x, y, depth)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Image copies the colour buffer into dst, allocating a new image when dst is nil or the wrong size.
func (fb *Framebuffer) Image(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Rect.Dx() != fb.Width || dst.Rect.Dy() != fb.Height {
		dst = image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	}
	for y := 0; y < fb.Height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+fb.Width*4]
		for x, c := range fb.color[y*fb.Width : (y+1)*fb.Width] {
			row[4*x] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = 255
		}
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
