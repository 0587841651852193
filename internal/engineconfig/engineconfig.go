package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"solar-raster/internal/camera"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds viewer preferences: window, pipeline, camera tunables and overlays.
// Persisted across runs.
type EnginePrefs struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TargetFPS        int     `json:"target_fps"`
	FOVDegrees       float32 `json:"fov_degrees"`
	NearPlane        float32 `json:"near_plane"`
	CollisionMargin  float32 `json:"collision_margin"`
	WarpDuration     float32 `json:"warp_duration"`
	CameraSpeed      float32 `json:"camera_speed"`
	MouseSensitivity float32 `json:"mouse_sensitivity"`
	Workers          int     `json:"workers"`
	ShowFPS          bool    `json:"show_fps"`
	ShowMemAlloc     bool    `json:"show_memalloc"`
	ShowOrbits       bool    `json:"show_orbits"`
	Glow             bool    `json:"glow"`
	SceneFile        string  `json:"scene_file,omitempty"`
	StarCount        int     `json:"star_count"`
}

// Default returns the stock preferences: a 1200x800 window at 60 FPS, the stock camera, orbits
// shown and debug overlays off.
func Default() EnginePrefs {
	cam := camera.DefaultConfig()
	return EnginePrefs{
		Width:            1200,
		Height:           800,
		TargetFPS:        60,
		FOVDegrees:       cam.FOV,
		NearPlane:        cam.NearPlane,
		CollisionMargin:  cam.Margin,
		WarpDuration:     cam.WarpDuration,
		CameraSpeed:      cam.Speed,
		MouseSensitivity: cam.Sensitivity,
		Workers:          1,
		ShowFPS:          false,
		ShowMemAlloc:     false,
		ShowOrbits:       true,
		Glow:             false,
		StarCount:        400,
	}
}

// Load reads preferences from config/engine.json. See LoadFile.
func Load() (EnginePrefs, error) {
	return LoadFile(EngineConfigPath)
}

// LoadFile reads preferences from path. Keys missing from the file keep their default value.
// If the file is missing or invalid, returns Default() and does not create a file.
func LoadFile(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.Sanitize(), nil
}

// Save writes preferences to config/engine.json, creating the config directory if needed.
func Save(p EnginePrefs) error {
	return SaveFile(EngineConfigPath, p)
}

// SaveFile writes preferences to path, creating its directory if needed.
func SaveFile(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	return nil
}

// Sanitize replaces values that cannot work (non-positive sizes, FOV outside (0, 180)) with
// their defaults.
func (p EnginePrefs) Sanitize() EnginePrefs {
	d := Default()
	if p.Width <= 0 {
		p.Width = d.Width
	}
	if p.Height <= 0 {
		p.Height = d.Height
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.FOVDegrees <= 0 || p.FOVDegrees >= 180 {
		p.FOVDegrees = d.FOVDegrees
	}
	if p.NearPlane < 0 {
		p.NearPlane = d.NearPlane
	}
	if p.CollisionMargin < 0 {
		p.CollisionMargin = d.CollisionMargin
	}
	if p.WarpDuration < 0 {
		p.WarpDuration = d.WarpDuration
	}
	if p.Workers <= 0 {
		p.Workers = d.Workers
	}
	if p.StarCount < 0 {
		p.StarCount = 0
	}
	return p
}

// Camera returns the camera settings held in p.
func (p EnginePrefs) Camera() camera.Config {
	return camera.Config{
		FOV:          p.FOVDegrees,
		NearPlane:    p.NearPlane,
		Margin:       p.CollisionMargin,
		WarpDuration: p.WarpDuration,
		Speed:        p.CameraSpeed,
		Sensitivity:  p.MouseSensitivity,
	}
}
