// Package building generates stacked-frustum "building" meshes.
//
// A building is an ordered list of levels. Each level is a frustum
// between a bottom ring and a top ring of the same side count; levels
// are stacked on top of each other without gaps. The ground level gets
// a bottom cap and the last level gets a top cap.
package building

import (
	"errors"
	"fmt"
)

// Side count limits.
const (
	MinSides = 3
	MaxSides = 36
)

// Building errors.
var (
	ErrInvalidSideCount  = errors.New("side count must be between 3 and 36")
	ErrInvalidDimension  = errors.New("height and radii must be positive")
	ErrNoLevels          = errors.New("building has no levels")
	ErrDegenerateFace    = errors.New("degenerate face")
	ErrUnsupportedPreset = errors.New("unsupported preset format")
)

// LevelSpec describes one level of the building.
type LevelSpec struct {
	Height       float64 `yaml:"height" toml:"height"`
	RadiusBottom float64 `yaml:"radius_bottom" toml:"radius_bottom"`
	RadiusTop    float64 `yaml:"radius_top" toml:"radius_top"`
}

// Validate checks that every dimension of the level is positive.
// NaN is rejected as well.
func (l LevelSpec) Validate() error {
	if !(l.Height > 0) || !(l.RadiusBottom > 0) || !(l.RadiusTop > 0) {
		return fmt.Errorf("%w: height=%v radius_bottom=%v radius_top=%v",
			ErrInvalidDimension, l.Height, l.RadiusBottom, l.RadiusTop)
	}
	return nil
}

// ValidateSides checks the polygon side count.
func ValidateSides(sides int) error {
	if sides < MinSides || sides > MaxSides {
		return fmt.Errorf("%w: got %d", ErrInvalidSideCount, sides)
	}
	return nil
}

// Validate checks a complete building description.
func Validate(sides int, levels []LevelSpec) error {
	if err := ValidateSides(sides); err != nil {
		return err
	}
	if len(levels) == 0 {
		return ErrNoLevels
	}
	for i, l := range levels {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
	}
	return nil
}

// FaceKind tells which part of the building a face belongs to.
type FaceKind uint8

// Face kinds.
const (
	FaceBottom FaceKind = iota
	FaceSide
	FaceTop
)

// String returns the face kind name.
func (k FaceKind) String() string {
	switch k {
	case FaceBottom:
		return "bottom"
	case FaceSide:
		return "side"
	case FaceTop:
		return "top"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Face is a triangle referencing three vertices by index.
type Face struct {
	Indices [3]int
	Kind    FaceKind
}

// Winding selects the vertex order of cap triangles.
type Winding uint8

const (
	// WindingCompat emits cap triangles in the original tool's order.
	// Rings run from +X toward +Z, so those caps face into the solid.
	WindingCompat Winding = iota
	// WindingOutward swaps cap triangles so every normal faces outward.
	WindingOutward
)

// String returns the winding name.
func (w Winding) String() string {
	switch w {
	case WindingCompat:
		return "compat"
	case WindingOutward:
		return "outward"
	default:
		return fmt.Sprintf("Unknown(%d)", w)
	}
}
