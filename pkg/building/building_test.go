package building

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	ok := LevelSpec{Height: 1, RadiusBottom: 1, RadiusTop: 1}

	tests := []struct {
		name   string
		sides  int
		levels []LevelSpec
		want   error
	}{
		{"valid", 8, []LevelSpec{ok}, nil},
		{"min sides", 3, []LevelSpec{ok}, nil},
		{"max sides", 36, []LevelSpec{ok}, nil},
		{"two sides", 2, []LevelSpec{ok}, ErrInvalidSideCount},
		{"too many sides", 37, []LevelSpec{ok}, ErrInvalidSideCount},
		{"no levels", 8, nil, ErrNoLevels},
		{"zero height", 8, []LevelSpec{{Height: 0, RadiusBottom: 1, RadiusTop: 1}}, ErrInvalidDimension},
		{"zero bottom radius", 8, []LevelSpec{{Height: 1, RadiusBottom: 0, RadiusTop: 1}}, ErrInvalidDimension},
		{"negative top radius", 8, []LevelSpec{{Height: 1, RadiusBottom: 1, RadiusTop: -0.5}}, ErrInvalidDimension},
		{"NaN height", 8, []LevelSpec{{Height: gomath.NaN(), RadiusBottom: 1, RadiusTop: 1}}, ErrInvalidDimension},
		{"bad upper level", 8, []LevelSpec{ok, {Height: 2, RadiusBottom: 0, RadiusTop: 1}}, ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sides, tt.levels)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildRejectsBeforeGenerating(t *testing.T) {
	m, err := Build(2, []LevelSpec{{Height: 1, RadiusBottom: 1, RadiusTop: 1}}, Options{})
	assert.ErrorIs(t, err, ErrInvalidSideCount)
	assert.Nil(t, m)

	m, err = Build(4, []LevelSpec{{Height: 0, RadiusBottom: 1, RadiusTop: 1}}, Options{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
	assert.Nil(t, m)
}

func TestIndexRangeAt(t *testing.T) {
	r := IndexRange{First: 11, Last: 14}

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 11, r.At(0))
	assert.Equal(t, 14, r.At(3))
	assert.Equal(t, 11, r.At(4))
	assert.Equal(t, 14, r.At(-1))
}

func TestLayouts(t *testing.T) {
	layouts := Layouts(4, 2)
	require.Len(t, layouts, 2)

	assert.Equal(t, LevelLayout{
		CenterBottom: 0,
		BottomRing:   IndexRange{First: 1, Last: 4},
		CenterTop:    5,
		TopRing:      IndexRange{First: 6, Last: 9},
	}, layouts[0])

	assert.Equal(t, LevelLayout{
		CenterBottom: 10,
		BottomRing:   IndexRange{First: 11, Last: 14},
		CenterTop:    15,
		TopRing:      IndexRange{First: 16, Last: 19},
	}, layouts[1])
}

func TestFaceKindString(t *testing.T) {
	assert.Equal(t, "bottom", FaceBottom.String())
	assert.Equal(t, "side", FaceSide.String())
	assert.Equal(t, "top", FaceTop.String())
	assert.Equal(t, "Unknown(9)", FaceKind(9).String())
}
