package shader

import (
	"fmt"
	"strings"

	"solar-raster/internal/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Type selects the procedural colour function used for one draw call.
type Type int

const (
	Star Type = iota
	RockyPlanet
	GasGiant
	IcePlanet
	VolcanicPlanet
	Moon
	Ring
	Spaceship
)

var typeNames = [...]string{
	Star:           "star",
	RockyPlanet:    "rocky",
	GasGiant:       "gas_giant",
	IcePlanet:      "ice",
	VolcanicPlanet: "volcanic",
	Moon:           "moon",
	Ring:           "ring",
	Spaceship:      "spaceship",
}

// lightFloor is the minimum diffuse intensity per surface so the unlit side stays visible.
// A negative floor marks a self-luminous surface that ignores lighting.
var lightFloor = [...]float32{
	Star:           -1,
	RockyPlanet:    0.2,
	GasGiant:       0.2,
	IcePlanet:      0.3,
	VolcanicPlanet: 0.4,
	Moon:           0.15,
	Ring:           0.35,
	Spaceship:      0.4,
}

// String returns the scene-file name of the type.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("shader.Type(%d)", int(t))
	}
	return typeNames[t]
}

// Valid reports whether t is one of the defined surface types.
func (t Type) Valid() bool {
	return t >= 0 && int(t) < len(typeNames)
}

// Parse returns the Type with the given scene-file name (case-insensitive, "-" and "_" interchangeable).
func Parse(name string) (Type, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	switch n {
	case "sun":
		return Star, nil
	case "gas", "gasgiant":
		return GasGiant, nil
	case "ship":
		return Spaceship, nil
	}
	for i, s := range typeNames {
		if s == n {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("shader: unknown surface type %q", name)
}

// UnmarshalText lets scene files name the type ("rocky", "gas_giant", ...).
func (t *Type) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText writes the scene-file name.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("shader: invalid surface type %d", int(t))
	}
	return []byte(t.String()), nil
}

// LightFloor returns the minimum intensity applied to the type, and false for self-luminous surfaces.
func (t Type) LightFloor() (float32, bool) {
	if !t.Valid() || lightFloor[t] < 0 {
		return 0, false
	}
	return lightFloor[t], true
}

// Surface returns the unlit colour of the surface at an object-space position and time.
// Static surfaces ignore time.
func Surface(t Type, p mgl32.Vec3, time float32) color.Color {
	switch t {
	case Star:
		return StarColor(p, time)
	case RockyPlanet:
		return RockyPlanetColor(p, time)
	case GasGiant:
		return GasGiantColor(p, time)
	case IcePlanet:
		return IcePlanetColor(p, time)
	case VolcanicPlanet:
		return VolcanicPlanetColor(p, time)
	case Moon:
		return MoonColor(p)
	case Ring:
		return RingColor(p)
	case Spaceship:
		return SpaceshipColor(p)
	default:
		return color.Black
	}
}

// Shade is the per-pixel dispatch: the surface colour scaled by the diffuse intensity,
// raised to the surface's light floor. Self-luminous surfaces are returned unscaled.
func Shade(t Type, p mgl32.Vec3, intensity, time float32) color.Color {
	c := Surface(t, p, time)
	floor, lit := t.LightFloor()
	if !lit {
		return c
	}
	return c.Scale(max(intensity, floor))
}
