package graphics

import (
	"image"

	"solar-raster/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config describes the window.
type Config struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int
}

// Window shows software-rendered frames through a single streaming texture.
type Window struct {
	tex    rl.Texture2D
	pixels []rl.Color
	width  int
	height int
}

// Run opens the window and runs the main loop until it is closed. Each frame it calls update with
// the frame time, uploads the returned image and then calls overlay for anything raylib draws on
// top (the console). ESC is left to the console; close the window to quit.
func Run(cfg Config, update func(dt float32) *image.RGBA, overlay func()) {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	rl.DisableCursor()

	w := &Window{width: cfg.Width, height: cfg.Height}
	defer w.unload()

	for !rl.WindowShouldClose() {
		frame := update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if frame != nil {
			w.present(frame)
			rl.DrawTexture(w.tex, 0, 0, rl.White)
		}
		overlay()
		rl.EndDrawing()
	}
}

func (w *Window) present(img *image.RGBA) {
	b := img.Bounds()
	if w.tex.ID == 0 || b.Dx() != w.width || b.Dy() != w.height {
		w.unload()
		w.width, w.height = b.Dx(), b.Dy()
		w.tex = rl.LoadTextureFromImage(rl.NewImageFromImage(img))
		w.pixels = make([]rl.Color, w.width*w.height)
		return
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < w.width; x++ {
			w.pixels[i] = rl.NewColor(row[4*x], row[4*x+1], row[4*x+2], 255)
			i++
		}
	}
	rl.UpdateTexture(w.tex, w.pixels)
}

func (w *Window) unload() {
	if w.tex.ID != 0 {
		rl.UnloadTexture(w.tex)
		w.tex = rl.Texture2D{}
	}
}

// PollInput reads the keyboard and mouse into a scene.Input. Nothing is read while the console is
// open.
func PollInput(consoleOpen bool) scene.Input {
	if consoleOpen {
		return scene.Input{}
	}
	mouse := rl.GetMouseDelta()
	in := scene.Input{
		Forward:      rl.IsKeyDown(rl.KeyW),
		Backward:     rl.IsKeyDown(rl.KeyS),
		Left:         rl.IsKeyDown(rl.KeyA),
		Right:        rl.IsKeyDown(rl.KeyD),
		Up:           rl.IsKeyDown(rl.KeySpace),
		Down:         rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		MouseDX:      mouse.X,
		MouseDY:      mouse.Y,
		ZoomIn:       rl.IsKeyDown(rl.KeyZ),
		ZoomOut:      rl.IsKeyDown(rl.KeyX),
		TogglePause:  rl.IsKeyPressed(rl.KeyP),
		ToggleOrbits: rl.IsKeyPressed(rl.KeyO),
		ResetCamera:  rl.IsKeyPressed(rl.KeyR),
	}
	for k := int32(0); k < 9; k++ {
		if rl.IsKeyPressed(rl.KeyOne + k) {
			in.WarpTo = int(k) + 1
			break
		}
	}
	return in
}

// ScreenshotRequested reports whether F12 was pressed this frame.
func ScreenshotRequested() bool {
	return rl.IsKeyPressed(rl.KeyF12)
}
