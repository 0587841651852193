package render

import (
	"image"
	"iter"

	"solar-raster/internal/color"
	"solar-raster/internal/mesh"
	"solar-raster/internal/shader"

	"golang.org/x/sync/errgroup"
)

// trianglesPerTask is the batch size handed to one worker when drawing in parallel.
const trianglesPerTask = 64

// Sink receives shaded pixels. The sink owns depth testing: fragments of different triangles
// arrive in no particular order.
type Sink interface {
	SetColor(c color.Color)
	WritePixel(x, y int, depth float32)
}

// Pipeline runs vertex stage, primitive assembly and rasterization for a viewport of
// Width x Height pixels and writes the fragments that fall inside it to a Sink.
// Workers > 1 rasterizes batches of triangles concurrently; writes to the sink stay on the
// calling goroutine and keep triangle order.
type Pipeline struct {
	Width   int
	Height  int
	Workers int
}

// NewPipeline returns a single-threaded pipeline for the given viewport.
func NewPipeline(width, height int) *Pipeline {
	return &Pipeline{Width: width, Height: height, Workers: 1}
}

// Viewport returns the pixel rectangle fragments must fall in.
func (p *Pipeline) Viewport() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// Draw transforms vertices with u, assembles consecutive triples into triangles (a trailing
// partial triple is ignored), rasterizes them with the given surface and writes every fragment
// inside the viewport to sink. Returns the number of fragments written.
func (p *Pipeline) Draw(sink Sink, u Uniforms, vertices []mesh.Vertex, t shader.Type, time float32) int {
	transformed := TransformVertices(vertices, u)
	count := mesh.Triangles(transformed)
	if count == 0 || p.Width <= 0 || p.Height <= 0 {
		return 0
	}
	if p.Workers <= 1 || count <= trianglesPerTask {
		written := 0
		for i := 0; i < count; i++ {
			written += p.emit(sink, p.triangle(transformed, i, t, time))
		}
		return written
	}

	tasks := (count + trianglesPerTask - 1) / trianglesPerTask
	batches := make([][]Fragment, tasks)
	var g errgroup.Group
	g.SetLimit(p.Workers)
	for task := 0; task < tasks; task++ {
		g.Go(func() error {
			first := task * trianglesPerTask
			last := min(first+trianglesPerTask, count)
			var frags []Fragment
			for i := first; i < last; i++ {
				for f := range p.triangle(transformed, i, t, time) {
					frags = append(frags, f)
				}
			}
			batches[task] = frags
			return nil
		})
	}
	_ = g.Wait() // tasks never fail

	written := 0
	for _, frags := range batches {
		for _, f := range frags {
			sink.SetColor(f.Color)
			sink.WritePixel(f.X, f.Y, f.Depth)
		}
		written += len(frags)
	}
	return written
}

func (p *Pipeline) triangle(v []mesh.Vertex, i int, t shader.Type, time float32) iter.Seq[Fragment] {
	return RasterizeWithin(v[3*i], v[3*i+1], v[3*i+2], t, time, p.Viewport())
}

func (p *Pipeline) emit(sink Sink, frags iter.Seq[Fragment]) int {
	n := 0
	for f := range frags {
		sink.SetColor(f.Color)
		sink.WritePixel(f.X, f.Y, f.Depth)
		n++
	}
	return n
}
