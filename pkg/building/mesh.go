package building

import (
	"github.com/Faultbox/towergen/pkg/math"
)

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is a generated building with one flat normal per face.
type Mesh struct {
	Sides    int
	Levels   []LevelSpec
	Vertices []math.Vec3
	Faces    []Face
	Normals  []math.Vec3
	Bounds   Bounds
}

// Options controls mesh generation.
type Options struct {
	Winding Winding
}

// Build validates the description and generates the complete mesh.
func Build(sides int, levels []LevelSpec, opts Options) (*Mesh, error) {
	if err := Validate(sides, levels); err != nil {
		return nil, err
	}

	vertices := GenerateVertices(sides, levels)
	faces := GenerateFaces(sides, len(levels), opts.Winding)

	normals, err := ComputeNormals(vertices, faces)
	if err != nil {
		return nil, err
	}

	return &Mesh{
		Sides:    sides,
		Levels:   append([]LevelSpec(nil), levels...),
		Vertices: vertices,
		Faces:    faces,
		Normals:  normals,
		Bounds:   ComputeBounds(vertices),
	}, nil
}

// TotalHeight returns the summed height of all levels.
func (m *Mesh) TotalHeight() float64 {
	var h float64
	for _, l := range m.Levels {
		h += l.Height
	}
	return h
}

// ComputeBounds returns the bounding box of the given points.
func ComputeBounds(vertices []math.Vec3) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}
