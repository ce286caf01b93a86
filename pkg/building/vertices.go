package building

import (
	gomath "math"

	"github.com/Faultbox/towergen/pkg/math"
)

// GenerateVertices emits the vertices of every level in order: bottom
// center, bottom ring, top center, top ring. Ring vertex j sits at angle
// j*2π/sides. Levels share no vertices; the top ring of one level and
// the bottom ring of the next are separate even when they coincide.
//
// The input is assumed valid (see Validate).
func GenerateVertices(sides int, levels []LevelSpec) []math.Vec3 {
	vertices := make([]math.Vec3, 0, VertexCount(sides, len(levels)))
	step := 2 * gomath.Pi / float64(sides)

	offset := 0.0
	for _, level := range levels {
		top := offset + level.Height

		vertices = append(vertices, math.Vec3{X: 0, Y: offset, Z: 0})
		vertices = appendRing(vertices, sides, step, level.RadiusBottom, offset)

		vertices = append(vertices, math.Vec3{X: 0, Y: top, Z: 0})
		vertices = appendRing(vertices, sides, step, level.RadiusTop, top)

		offset = top
	}
	return vertices
}

func appendRing(vertices []math.Vec3, sides int, step, radius, y float64) []math.Vec3 {
	for j := 0; j < sides; j++ {
		p := math.Polar(radius, float64(j)*step)
		vertices = append(vertices, math.Vec3{X: p.X, Y: y, Z: p.Y})
	}
	return vertices
}
