package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadOBJ reads a Wavefront OBJ file and returns its faces as a flat triangle list.
func LoadOBJ(path string) ([]Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	defer f.Close()
	return ParseOBJ(f)
}

// ParseOBJ reads v, vt, vn and f records. Polygons are fan-triangulated; negative (relative)
// indices are supported. Faces without normals get their flat face normal. Other records
// (groups, materials, smoothing) are ignored.
func ParseOBJ(r io.Reader) ([]Vertex, error) {
	var (
		positions []mgl32.Vec3
		texCoords []mgl32.Vec2
		normals   []mgl32.Vec3
		out       []Vertex
	)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			texCoords = append(texCoords, mgl32.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: line %d: face needs at least 3 vertices", lineNo)
			}
			corners := make([]Vertex, 0, len(fields)-1)
			hasNormals := true
			for _, ref := range fields[1:] {
				v, withNormal, err := resolveCorner(ref, positions, texCoords, normals)
				if err != nil {
					return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
				}
				hasNormals = hasNormals && withNormal
				corners = append(corners, v)
			}
			for i := 1; i+1 < len(corners); i++ {
				tri := [3]Vertex{corners[0], corners[i], corners[i+1]}
				if !hasNormals {
					n := faceNormal(tri[0].Position, tri[1].Position, tri[2].Position)
					for k := range tri {
						tri[k].Normal = n
						tri[k].TransformedNormal = n
					}
				}
				out = append(out, tri[:]...)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	return out, nil
}

// resolveCorner turns a face reference "v", "v/vt", "v//vn" or "v/vt/vn" into a vertex.
func resolveCorner(ref string, positions []mgl32.Vec3, texCoords []mgl32.Vec2, normals []mgl32.Vec3) (Vertex, bool, error) {
	parts := strings.Split(ref, "/")
	pi, err := objIndex(parts[0], len(positions))
	if err != nil {
		return Vertex{}, false, fmt.Errorf("position %q: %w", ref, err)
	}
	var tex mgl32.Vec2
	if len(parts) > 1 && parts[1] != "" {
		ti, err := objIndex(parts[1], len(texCoords))
		if err != nil {
			return Vertex{}, false, fmt.Errorf("texcoord %q: %w", ref, err)
		}
		tex = texCoords[ti]
	}
	var normal mgl32.Vec3
	withNormal := false
	if len(parts) > 2 && parts[2] != "" {
		ni, err := objIndex(parts[2], len(normals))
		if err != nil {
			return Vertex{}, false, fmt.Errorf("normal %q: %w", ref, err)
		}
		normal = normals[ni]
		withNormal = true
	}
	return NewVertex(positions[pi], normal, tex), withNormal, nil
}

// objIndex converts a 1-based (or negative, relative) OBJ index into a slice index.
func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
}

func parseFloats(fields []string, want int) ([]float32, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("expected %d values, got %d", want, len(fields))
	}
	out := make([]float32, want)
	for i := 0; i < want; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
