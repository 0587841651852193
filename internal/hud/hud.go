package hud

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"runtime"

	"solar-raster/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	padding    = 8
	lineHeight = 15
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var (
	statusColor = stdcolor.RGBA{R: 220, G: 220, B: 220, A: 255}
	fpsColor    = stdcolor.RGBA{G: 228, B: 48, A: 255}
	warpColor   = stdcolor.RGBA{R: 255, G: 200, B: 60, A: 255}
)

// HelpLines list the controls.
var HelpLines = []string{
	"WASD move  Space/Shift up/down  mouse look  Z/X zoom",
	"1-9 warp to body  P pause  O orbits  R reset  F12 screenshot  ESC console",
}

// Status is what the overlay shows about the current frame.
type Status struct {
	Position     mgl32.Vec3
	Yaw          float32
	Pitch        float32
	Zoom         float32
	IsWarping    bool
	WarpProgress float32
	Paused       bool
	FPS          int
	Bodies       int
	Fragments    int
}

// Snapshot copies the camera's public state (fields and the IsWarping/WarpProgress getters) into a
// Status.
func Snapshot(c *camera.Camera) (Status, error) {
	var st Status
	if err := copier.Copy(&st, c); err != nil {
		return Status{}, fmt.Errorf("hud: %w", err)
	}
	return st, nil
}

// HUD draws text overlays onto a rendered frame. FPS and memory are off by default; status and
// help are on.
type HUD struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStatus   bool
	ShowHelp     bool
	face         font.Face
	frameCount   uint32
	lastFPSText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a HUD using the 7x13 bitmap face.
func New() *HUD {
	return &HUD{ShowStatus: true, ShowHelp: true, face: basicfont.Face7x13}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (h *HUD) SetShowFPS(show bool) {
	h.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap counter is drawn (top-right, under FPS).
func (h *HUD) SetShowMemAlloc(show bool) {
	h.ShowMemAlloc = show
}

// StatusLines returns the camera and simulation lines for st.
func StatusLines(st Status) []string {
	lines := []string{
		fmt.Sprintf("Pos %.1f %.1f %.1f  Yaw %.1f  Pitch %.1f  Zoom %.2f",
			st.Position.X(), st.Position.Y(), st.Position.Z(), st.Yaw, st.Pitch, st.Zoom),
		fmt.Sprintf("Bodies %d  Fragments %d", st.Bodies, st.Fragments),
	}
	if st.IsWarping {
		lines = append(lines, fmt.Sprintf("WARP %3.0f%%", st.WarpProgress*100))
	}
	if st.Paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}

// Draw renders the enabled overlays onto img. FPS and memory text are only recomputed every
// updateInterval frames.
func (h *HUD) Draw(img *image.RGBA, st Status) {
	h.frameCount++
	update := h.frameCount%updateInterval == 0
	if h.ShowFPS && h.lastFPSText == "" {
		update = true
	}
	if h.ShowMemAlloc && h.lastMemText == "" {
		update = true
	}

	w := img.Bounds().Dx()
	y := padding + lineHeight
	if h.ShowFPS {
		if update {
			h.lastFPSText = fmt.Sprintf("FPS: %d", st.FPS)
		}
		h.drawRight(img, w, y, h.lastFPSText, fpsColor)
		y += lineHeight
	}
	if h.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&h.lastMemStats)
			h.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(h.lastMemStats.Alloc)/(1024*1024))
		}
		h.drawRight(img, w, y, h.lastMemText, fpsColor)
	}

	if h.ShowStatus {
		y := padding + lineHeight
		for _, line := range StatusLines(st) {
			c := statusColor
			if line == "PAUSED" || st.IsWarping && line[0] == 'W' {
				c = warpColor
			}
			h.drawText(img, padding, y, line, c)
			y += lineHeight
		}
	}
	if h.ShowHelp {
		y := img.Bounds().Dy() - padding - lineHeight*(len(HelpLines)-1)
		for _, line := range HelpLines {
			h.drawText(img, padding, y, line, statusColor)
			y += lineHeight
		}
	}
}

func (h *HUD) drawRight(img *image.RGBA, w, y int, s string, c stdcolor.Color) {
	adv := font.MeasureString(h.face, s).Ceil()
	h.drawText(img, w-adv-padding, y, s, c)
}

// drawText draws s with its baseline at y.
func (h *HUD) drawText(img *image.RGBA, x, y int, s string, c stdcolor.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: h.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
