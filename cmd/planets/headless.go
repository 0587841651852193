package main

import (
	"fmt"
	"path/filepath"

	"solar-raster/internal/hud"
	"solar-raster/internal/scene"
)

// headlessDT is the fixed frame time used without a window.
const headlessDT = float32(1) / 60

// renderFrames renders n frames at a fixed step and writes every one of them to outDir as
// frame-0000.png, frame-0001.png and so on. A non-empty warp starts a warp to that body first.
func renderFrames(a *app, n int, outDir, warp string) ([]string, error) {
	if warp != "" {
		if err := a.WarpToName(warp); err != nil {
			return nil, err
		}
	}
	paths := make([]string, 0, n)
	for i := range n {
		img := a.frame(headlessDT, scene.Input{})
		path := filepath.Join(outDir, fmt.Sprintf("frame-%04d.png", i))
		if err := hud.SavePNG(path, img); err != nil {
			return paths, fmt.Errorf("frame %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	a.log.Info("headless render done", "frames", n, "dir", outDir)
	return paths, nil
}
