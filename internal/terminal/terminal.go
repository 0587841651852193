package terminal

import (
	"unicode/utf8"

	"solar-raster/internal/commands"
	"solar-raster/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 32
	prompt    = "> "
	fontSize  = 16
	padding   = 8
	// Log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineLen       = 160
)

var (
	barColor    = rl.NewColor(30, 30, 36, 255)
	borderColor = rl.NewColor(80, 80, 96, 255)
	logBgColor  = rl.NewColor(16, 16, 20, 230)
)

// Terminal is the console at the bottom of the window, shown and hidden with ESC. While open it
// captures the keyboard and the camera does not move. Lines starting with "cmd " run through the
// command registry; anything else is only logged.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed Terminal that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Toggle opens or closes the console. The mouse cursor is shown while open.
func (t *Terminal) Toggle() {
	t.open = !t.open
	if !rl.IsWindowReady() {
		return
	}
	if t.open {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

// Input returns the line being typed.
func (t *Terminal) Input() string {
	return t.inputBuf
}

// Submit logs line and, if it is a command, executes it. Command errors are logged.
func (t *Terminal) Submit(line string) {
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Backspace removes the last rune of the input line.
func (t *Terminal) Backspace() {
	if len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
}

// Type appends s to the input line.
func (t *Terminal) Type(s string) {
	t.inputBuf += s
}

// Update handles ESC and, while open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.Toggle()
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if rl.IsKeyPressed(rl.KeyV) && ctrl {
		t.Type(rl.GetClipboardText())
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.Type(string(rune(c)))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		t.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Draw draws the input bar and the most recent log lines above it. Nothing is drawn when closed.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := rl.GetScreenWidth()
	barY := rl.GetScreenHeight() - BarHeight

	logHeight := min(maxLinesOnScreen*lineHeight, int(barY))
	logY := int(barY) - logHeight
	if logHeight > 0 {
		rl.DrawRectangle(0, int32(logY), int32(screenW), int32(logHeight), logBgColor)
	}
	for i, line := range t.log.Tail(maxLinesOnScreen) {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		rl.DrawText(line, padding, int32(logY+i*lineHeight+padding/2), fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), BarHeight, barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, borderColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, int32(barY)+padding, fontSize, rl.White)
}
