package hud

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

// ScreenshotDir is where screenshots are written, relative to the working directory.
const ScreenshotDir = "screenshots"

// SavePNG writes img to path as PNG, creating the directory if needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("hud: %w", err)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("hud: %w", err)
	}
	return nil
}

// ScreenshotPath returns a timestamped PNG path under dir.
func ScreenshotPath(dir string, now time.Time) string {
	return filepath.Join(dir, "frame-"+now.Format("20060102-150405.000")+".png")
}
