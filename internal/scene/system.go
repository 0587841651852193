package scene

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"solar-raster/internal/color"
	"solar-raster/internal/mesh"
	"solar-raster/internal/physics"
	"solar-raster/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// orbitGap is the minimum free space kept between neighbouring orbits of top-level bodies.
const orbitGap = 40

//go:embed default_system.yaml
var defaultSystemYAML []byte

// BodyDef is one body in a system file. Angles are radians, speeds radians per second.
type BodyDef struct {
	Name        string      `yaml:"name"`
	Shader      shader.Type `yaml:"shader"`
	Radius      float32     `yaml:"radius"`
	Parent      string      `yaml:"parent,omitempty"`
	OrbitRadius float32     `yaml:"orbit_radius,omitempty"`
	OrbitSpeed  float32     `yaml:"orbit_speed,omitempty"`
	Angle       float32     `yaml:"angle,omitempty"`
	SpinSpeed   float32     `yaml:"spin_speed,omitempty"`
	Tilt        float32     `yaml:"tilt,omitempty"`
	Mesh        mesh.Def    `yaml:"mesh,omitempty"`
	Ring        *mesh.Def   `yaml:"ring,omitempty"`
}

// System is a solar system description loaded from YAML.
type System struct {
	Name       string     `yaml:"name"`
	Background uint32     `yaml:"background"`
	Camera     [3]float32 `yaml:"camera"`
	Bodies     []BodyDef  `yaml:"bodies"`
}

// DefaultSystem returns the built-in system: a star, four planets (one ringed), a moon and a ship.
func DefaultSystem() *System {
	s, err := ParseSystem(defaultSystemYAML)
	if err != nil {
		panic(fmt.Sprintf("scene: built-in system: %v", err))
	}
	return s
}

// LoadSystem reads a system file from disk.
func LoadSystem(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return ParseSystem(data)
}

// ParseSystem decodes and validates a system description.
func ParseSystem(data []byte) (*System, error) {
	var s System
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every body has a unique name and a positive radius, and that parents are
// declared before their children.
func (s *System) Validate() error {
	if len(s.Bodies) == 0 {
		return fmt.Errorf("scene: system has no bodies")
	}
	seen := make(map[string]bool, len(s.Bodies))
	for i, b := range s.Bodies {
		key := strings.ToLower(b.Name)
		switch {
		case b.Name == "":
			return fmt.Errorf("scene: body %d has no name", i+1)
		case seen[key]:
			return fmt.Errorf("scene: duplicate body %q", b.Name)
		case !b.Shader.Valid():
			return fmt.Errorf("scene: body %q: invalid shader", b.Name)
		case b.Radius <= 0:
			return fmt.Errorf("scene: body %q: radius must be positive", b.Name)
		case b.OrbitRadius < 0:
			return fmt.Errorf("scene: body %q: negative orbit radius", b.Name)
		case b.Parent != "" && !seen[strings.ToLower(b.Parent)]:
			return fmt.Errorf("scene: body %q: parent %q must be declared before it", b.Name, b.Parent)
		}
		seen[key] = true
	}
	return nil
}

// CameraStart returns the initial camera position.
func (s *System) CameraStart() mgl32.Vec3 {
	return mgl32.Vec3(s.Camera)
}

// BackgroundColor returns the clear colour.
func (s *System) BackgroundColor() color.Color {
	return color.FromHex(s.Background)
}

// Build creates the physics world for the system. Top-level orbits that would overlap their inner
// neighbour are pushed outward.
func (s *System) Build() (*physics.World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	w := physics.NewWorld()
	for _, d := range s.Bodies {
		b := physics.NewBody(d.Name, d.Shader, d.Radius)
		b.OrbitRadius = d.OrbitRadius
		b.OrbitSpeed = d.OrbitSpeed
		b.Angle = d.Angle
		b.SpinSpeed = d.SpinSpeed
		b.Spin = mgl32.Vec3{d.Tilt, 0, 0}
		b.Mesh = d.Mesh
		if d.Ring != nil {
			ring := *d.Ring
			if ring.Type == "" {
				ring.Type = "ring"
			}
			b.Ring = &ring
		}
		if d.Parent != "" {
			parent, _ := w.Find(d.Parent)
			b.Parent = parent
		}
		w.AddBody(b)
	}
	SpreadOrbits(w.Bodies, orbitGap)
	return w, nil
}

// SpreadOrbits walks the top-level orbiting bodies in order and moves each one out until there
// is at least gap between its collision sphere and the previous one's. Returns how many orbits
// were changed.
func SpreadOrbits(bodies []*physics.Body, gap float32) int {
	var prev *physics.Body
	changed := 0
	for _, b := range bodies {
		if b.Parent != nil || b.OrbitRadius <= 0 {
			continue
		}
		if prev != nil {
			need := prev.OrbitRadius + prev.CollisionRadius() + b.CollisionRadius() + gap
			if b.OrbitRadius < need {
				b.OrbitRadius = need
				changed++
			}
		}
		prev = b
	}
	return changed
}
