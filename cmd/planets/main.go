package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"solar-raster/internal/commands"
	"solar-raster/internal/engineconfig"
	"solar-raster/internal/graphics"
	"solar-raster/internal/hud"
	"solar-raster/internal/logger"
	"solar-raster/internal/scene"
	"solar-raster/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "planets:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("planets", flag.ContinueOnError)
	configPath := fs.String("config", engineconfig.EngineConfigPath, "engine preferences (JSON)")
	saveConfig := fs.Bool("save-config", false, "write the effective preferences back to -config")
	scenePath := fs.String("scene", "", "solar system description (YAML); empty uses the built-in system")
	logPath := fs.String("log", logger.LogFilePath, "log file; empty keeps the log in memory")
	width := fs.Int("width", 0, "frame width (overrides config)")
	height := fs.Int("height", 0, "frame height (overrides config)")
	workers := fs.Int("workers", 0, "rasterizer workers (overrides config)")
	glow := fs.Bool("glow", false, "enable the glow post-process")
	headless := fs.Bool("headless", false, "render without a window")
	frames := fs.Int("frames", 1, "frames to render in headless mode")
	outDir := fs.String("out", "frames", "output directory in headless mode")
	warp := fs.String("warp", "", "body to warp to before rendering in headless mode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	prefs, err := engineconfig.LoadFile(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		prefs.Width = *width
	}
	if *height > 0 {
		prefs.Height = *height
	}
	if *workers > 0 {
		prefs.Workers = *workers
	}
	if *glow {
		prefs.Glow = true
	}
	if *scenePath != "" {
		prefs.SceneFile = *scenePath
	}
	prefs = prefs.Sanitize()
	if *saveConfig {
		if err := engineconfig.SaveFile(*configPath, prefs); err != nil {
			return err
		}
	}

	logs := logger.NewAt(*logPath)
	log := logs.Slog()

	sys := scene.DefaultSystem()
	if prefs.SceneFile != "" {
		if sys, err = scene.LoadSystem(prefs.SceneFile); err != nil {
			return err
		}
	}
	a, err := newApp(sys, prefs, log)
	if err != nil {
		return err
	}

	if *headless {
		paths, err := renderFrames(a, *frames, *outDir, *warp)
		for _, p := range paths {
			fmt.Println(p)
		}
		return err
	}

	reg := commands.NewRegistry()
	commands.RegisterViewer(reg, a, logs.Logf)
	term := terminal.New(logs, reg)

	update := func(dt float32) *image.RGBA {
		term.Update()
		a.fps = int(rl.GetFPS())
		img := a.frame(dt, graphics.PollInput(term.IsOpen()))
		if !term.IsOpen() && graphics.ScreenshotRequested() {
			if path, err := a.Screenshot(hud.ScreenshotDir); err == nil {
				logs.Logf("screenshot: %s", path)
			} else {
				logs.Log(err.Error())
			}
		}
		return img
	}
	graphics.Run(graphics.Config{
		Title:     "planets: " + sys.Name,
		Width:     prefs.Width,
		Height:    prefs.Height,
		TargetFPS: prefs.TargetFPS,
	}, update, term.Draw)
	return nil
}
