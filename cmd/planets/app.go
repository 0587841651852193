package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"solar-raster/internal/engineconfig"
	"solar-raster/internal/framebuffer"
	"solar-raster/internal/hud"
	"solar-raster/internal/scene"
)

// glowRadius is the blur radius used when glow is enabled.
const glowRadius = 3

// app ties the scene, the framebuffer and the overlay together and is what console commands act on.
type app struct {
	*scene.Scene
	*hud.HUD

	fb   *framebuffer.Framebuffer
	img  *image.RGBA
	last *image.RGBA
	glow float64
	fps  int
	now  func() time.Time
	log  *slog.Logger
}

func newApp(sys *scene.System, prefs engineconfig.EnginePrefs, log *slog.Logger) (*app, error) {
	scn, err := scene.New(sys, scene.Options{
		Width:      prefs.Width,
		Height:     prefs.Height,
		Workers:    prefs.Workers,
		StarCount:  prefs.StarCount,
		ShowOrbits: prefs.ShowOrbits,
		Camera:     prefs.Camera(),
		Log:        log,
	})
	if err != nil {
		return nil, err
	}
	fb := framebuffer.New(prefs.Width, prefs.Height)
	fb.SetBackground(scn.Background)

	h := hud.New()
	h.SetShowFPS(prefs.ShowFPS)
	h.SetShowMemAlloc(prefs.ShowMemAlloc)

	a := &app{Scene: scn, HUD: h, fb: fb, now: time.Now, log: log}
	if prefs.Glow {
		a.glow = glowRadius
	}
	return a, nil
}

// frame advances the scene by dt, renders it and returns the finished image with the overlay.
func (a *app) frame(dt float32, in scene.Input) *image.RGBA {
	a.Update(dt, in)
	stats := a.Scene.Draw(a.fb)
	a.img = a.fb.Image(a.img)
	out := hud.Glow(a.img, a.glow)

	st, err := hud.Snapshot(a.Camera)
	if err != nil {
		a.log.Warn("hud snapshot", "err", err)
	}
	st.Paused = a.Paused()
	st.FPS = a.fps
	st.Bodies = stats.Bodies
	st.Fragments = stats.Fragments
	a.HUD.Draw(out, st)

	a.last = out
	return out
}

// Screenshot saves the last rendered frame under dir and returns its path.
func (a *app) Screenshot(dir string) (string, error) {
	if a.last == nil {
		return "", errors.New("screenshot: no frame rendered yet")
	}
	path := hud.ScreenshotPath(dir, a.now())
	if err := hud.SavePNG(path, a.last); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	a.log.Info("screenshot saved", "path", path)
	return path, nil
}
