package building

// IndexRange is an inclusive range of vertex indices.
type IndexRange struct {
	First, Last int
}

// Len returns the number of indices in the range.
func (r IndexRange) Len() int {
	return r.Last - r.First + 1
}

// At returns the j-th index of the range, wrapping around so that the
// ring closes back on its first vertex.
func (r IndexRange) At(j int) int {
	n := r.Len()
	return r.First + ((j%n)+n)%n
}

// LevelLayout locates the vertices of one level inside the flat vertex
// slice produced by GenerateVertices.
type LevelLayout struct {
	CenterBottom int
	BottomRing   IndexRange
	CenterTop    int
	TopRing      IndexRange
}

// VerticesPerLevel returns the size of one level's vertex block:
// two centers plus two rings.
func VerticesPerLevel(sides int) int {
	return 2 + 2*sides
}

// Layouts computes the index layout of every level.
func Layouts(sides, levelCount int) []LevelLayout {
	layouts := make([]LevelLayout, levelCount)
	block := VerticesPerLevel(sides)

	for i := range layouts {
		base := i * block
		layouts[i] = LevelLayout{
			CenterBottom: base,
			BottomRing:   IndexRange{First: base + 1, Last: base + sides},
			CenterTop:    base + sides + 1,
			TopRing:      IndexRange{First: base + sides + 2, Last: base + 2*sides + 1},
		}
	}
	return layouts
}

// VertexCount returns the number of vertices of a building.
func VertexCount(sides, levelCount int) int {
	return levelCount * VerticesPerLevel(sides)
}

// FaceCount returns the number of triangles of a building: the bottom
// cap, two triangles per side on every level and the top cap.
func FaceCount(sides, levelCount int) int {
	if levelCount == 0 {
		return 0
	}
	return sides + 2*sides*levelCount + sides
}
