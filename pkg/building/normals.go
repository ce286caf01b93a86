package building

import (
	"fmt"

	"github.com/Faultbox/towergen/pkg/math"
)

// FaceNormal returns the unit normal of the triangle (v1, v2, v3) using
// the right-handed cross product (v2-v1) × (v3-v1).
func FaceNormal(v1, v2, v3 math.Vec3) (math.Vec3, error) {
	cross := v2.Sub(v1).Cross(v3.Sub(v1))
	if cross.Length() == 0 {
		return math.Vec3{}, ErrDegenerateFace
	}
	return cross.Normalize(), nil
}

// ComputeNormals returns one flat normal per face, index-aligned with
// faces. Any zero-area triangle aborts the computation.
func ComputeNormals(vertices []math.Vec3, faces []Face) ([]math.Vec3, error) {
	normals := make([]math.Vec3, len(faces))

	for i, f := range faces {
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0, %d)", i, idx, len(vertices))
			}
		}

		n, err := FaceNormal(vertices[f.Indices[0]], vertices[f.Indices[1]], vertices[f.Indices[2]])
		if err != nil {
			return nil, fmt.Errorf("face %d (%s) %v: %w", i, f.Kind, f.Indices, err)
		}
		normals[i] = n
	}
	return normals, nil
}
