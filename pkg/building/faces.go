package building

// GenerateFaces builds the triangle list for a building of levelCount
// levels. Faces are ordered: bottom cap, then per level the side wall,
// then the top cap after the last level's wall.
func GenerateFaces(sides, levelCount int, winding Winding) []Face {
	faces := make([]Face, 0, FaceCount(sides, levelCount))
	layouts := Layouts(sides, levelCount)

	for i, l := range layouts {
		if i == 0 {
			faces = appendBottomCap(faces, sides, l, winding)
		}
		faces = appendSideWall(faces, sides, l)
		if i == levelCount-1 {
			faces = appendTopCap(faces, sides, l, winding)
		}
	}
	return faces
}

func appendBottomCap(faces []Face, sides int, l LevelLayout, winding Winding) []Face {
	for j := 0; j < sides; j++ {
		current := l.BottomRing.At(j)
		next := l.BottomRing.At(j + 1)

		tri := [3]int{l.CenterBottom, next, current}
		if winding == WindingOutward {
			tri = [3]int{l.CenterBottom, current, next}
		}
		faces = append(faces, Face{Indices: tri, Kind: FaceBottom})
	}
	return faces
}

// appendSideWall splits each side quad along the bottom-next/top-current
// diagonal.
func appendSideWall(faces []Face, sides int, l LevelLayout) []Face {
	for j := 0; j < sides; j++ {
		bc := l.BottomRing.At(j)
		bn := l.BottomRing.At(j + 1)
		tc := l.TopRing.At(j)
		tn := l.TopRing.At(j + 1)

		faces = append(faces,
			Face{Indices: [3]int{bc, tc, bn}, Kind: FaceSide},
			Face{Indices: [3]int{bn, tc, tn}, Kind: FaceSide},
		)
	}
	return faces
}

func appendTopCap(faces []Face, sides int, l LevelLayout, winding Winding) []Face {
	for j := 0; j < sides; j++ {
		current := l.TopRing.At(j)
		next := l.TopRing.At(j + 1)

		tri := [3]int{l.CenterTop, current, next}
		if winding == WindingOutward {
			tri = [3]int{l.CenterTop, next, current}
		}
		faces = append(faces, Face{Indices: tri, Kind: FaceTop})
	}
	return faces
}
