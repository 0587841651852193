package commands

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Viewer is what the console commands act on.
type Viewer interface {
	WarpTo(index int) error
	WarpToName(name string) error
	Paused() bool
	SetPaused(paused bool)
	OrbitsVisible() bool
	SetOrbitsVisible(visible bool)
	SetShowFPS(show bool)
	SetShowMemAlloc(show bool)
	SetTimeScale(scale float32) error
	Screenshot(dir string) (path string, err error)
}

// Logf receives command output lines.
type Logf func(format string, args ...any)

// RegisterViewer adds the viewer commands to r:
//
//	cmd warp <name|number>
//	cmd pause [-on=true|false]
//	cmd orbits [-show=true|false]
//	cmd fps [-show=true|false] [-mem=true|false]
//	cmd speed -scale 2
//	cmd screenshot [-dir screenshots]
//	cmd help
func RegisterViewer(r *Registry, v Viewer, logf Logf) {
	warp := flag.NewFlagSet("warp", flag.ContinueOnError)
	r.Register("warp", "warp <name|number> flies the camera to a body", warp, func() error {
		target := strings.Join(warp.Args(), " ")
		if target == "" {
			return fmt.Errorf("warp: missing body name or number")
		}
		if n, err := strconv.Atoi(target); err == nil {
			return v.WarpTo(n - 1)
		}
		return v.WarpToName(target)
	})

	pause := flag.NewFlagSet("pause", flag.ContinueOnError)
	pauseOn := pause.Bool("on", false, "pause (true) or resume (false); toggles when omitted")
	r.Register("pause", "pause [-on=bool] freezes orbits and time", pause, func() error {
		if isSet(pause, "on") {
			v.SetPaused(*pauseOn)
		} else {
			v.SetPaused(!v.Paused())
		}
		return nil
	})

	orbits := flag.NewFlagSet("orbits", flag.ContinueOnError)
	orbitsShow := orbits.Bool("show", false, "show (true) or hide (false); toggles when omitted")
	r.Register("orbits", "orbits [-show=bool] draws orbit paths", orbits, func() error {
		if isSet(orbits, "show") {
			v.SetOrbitsVisible(*orbitsShow)
		} else {
			v.SetOrbitsVisible(!v.OrbitsVisible())
		}
		return nil
	})

	fps := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsShow := fps.Bool("show", true, "show the FPS counter")
	fpsMem := fps.Bool("mem", false, "show heap usage")
	r.Register("fps", "fps [-show=bool] [-mem=bool] toggles debug counters", fps, func() error {
		v.SetShowFPS(*fpsShow)
		v.SetShowMemAlloc(*fpsMem)
		return nil
	})

	speed := flag.NewFlagSet("speed", flag.ContinueOnError)
	speedScale := speed.Float64("scale", 1, "orbital time multiplier")
	r.Register("speed", "speed -scale <x> sets the orbital time multiplier", speed, func() error {
		return v.SetTimeScale(float32(*speedScale))
	})

	shot := flag.NewFlagSet("screenshot", flag.ContinueOnError)
	shotDir := shot.String("dir", "screenshots", "output directory")
	r.Register("screenshot", "screenshot [-dir path] saves the current frame as PNG", shot, func() error {
		path, err := v.Screenshot(*shotDir)
		if err != nil {
			return err
		}
		logf("screenshot: %s", path)
		return nil
	})

	help := flag.NewFlagSet("help", flag.ContinueOnError)
	r.Register("help", "help lists commands", help, func() error {
		for _, line := range r.Usage() {
			logf("%s", line)
		}
		return nil
	})
}
