package mesh

import (
	"fmt"
	"strings"
)

// Def is the YAML definition of a mesh in a scene file, e.g.
//
//	mesh: {type: sphere, rings: 24, slices: 32}
//	mesh: {type: ring, inner: 1.3, outer: 2.1}
//	mesh: {type: obj, path: assets/models/sphere.obj}
//
// Zero-valued fields fall back to the generator defaults.
type Def struct {
	Type     string  `yaml:"type"`
	Rings    int     `yaml:"rings,omitempty"`
	Slices   int     `yaml:"slices,omitempty"`
	Inner    float32 `yaml:"inner,omitempty"`
	Outer    float32 `yaml:"outer,omitempty"`
	Segments int     `yaml:"segments,omitempty"`
	Path     string  `yaml:"path,omitempty"`
}

// Key identifies definitions that build the same vertex list, so scenes can share meshes.
func (d Def) Key() string {
	return fmt.Sprintf("%s|%d|%d|%g|%g|%d|%s", strings.ToLower(d.Type), d.Rings, d.Slices, d.Inner, d.Outer, d.Segments, d.Path)
}

// Build generates or loads the vertex list described by d.
func Build(d Def) ([]Vertex, error) {
	switch strings.ToLower(d.Type) {
	case "", "sphere":
		rings, slices := d.Rings, d.Slices
		if rings <= 0 {
			rings = DefaultSphereRings
		}
		if slices <= 0 {
			slices = DefaultSphereSlices
		}
		return Sphere(rings, slices), nil
	case "ring":
		inner, outer, segments := d.Inner, d.Outer, d.Segments
		if inner <= 0 {
			inner = DefaultRingInner
		}
		if outer <= 0 {
			outer = DefaultRingOuter
		}
		if segments <= 0 {
			segments = DefaultRingSegments
		}
		return Ring(inner, outer, segments), nil
	case "ship":
		return Ship(), nil
	case "obj":
		if d.Path == "" {
			return nil, fmt.Errorf("mesh: obj definition needs a path")
		}
		return LoadOBJ(d.Path)
	default:
		return nil, fmt.Errorf("mesh: unknown mesh type %q", d.Type)
	}
}

// Cache builds each distinct definition once.
type Cache struct {
	meshes map[string][]Vertex
}

// NewCache returns an empty mesh cache.
func NewCache() *Cache {
	return &Cache{meshes: make(map[string][]Vertex)}
}

// Get returns the vertices for d, building them on first use.
func (c *Cache) Get(d Def) ([]Vertex, error) {
	key := d.Key()
	if v, ok := c.meshes[key]; ok {
		return v, nil
	}
	v, err := Build(d)
	if err != nil {
		return nil, err
	}
	c.meshes[key] = v
	return v, nil
}
