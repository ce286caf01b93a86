// Package cli turns towergen's positional arguments into a building
// description.
package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Faultbox/towergen/pkg/building"
)

// Argument errors.
var (
	ErrArgumentCountMismatch = errors.New("argument count does not match level count")
	ErrMissingLevelArgument  = errors.New("missing level argument")
	ErrInvalidArgument       = errors.New("invalid argument")
)

// Positional argument layout: sides, height, radiusBottom, radiusTop,
// levelCount, then three values per extra level.
const (
	baseArgs     = 5
	argsPerLevel = 3
)

// Defaults holds the values used for absent positional arguments.
type Defaults struct {
	Sides int
	Base  building.LevelSpec
}

// DefaultValues returns the generator's built-in defaults.
func DefaultValues() Defaults {
	return Defaults{
		Sides: 8,
		Base:  building.LevelSpec{Height: 6.0, RadiusBottom: 1.0, RadiusTop: 0.8},
	}
}

// Request is a validated building description.
type Request struct {
	Sides  int
	Levels []building.LevelSpec
}

// Base returns the ground level.
func (r *Request) Base() building.LevelSpec {
	return r.Levels[0]
}

// FileName returns the output file name derived from the ground level,
// e.g. "building_8_6_1_0.8.obj".
func (r *Request) FileName() string {
	b := r.Base()
	return fmt.Sprintf("building_%d_%s_%s_%s.obj",
		r.Sides, formatNumber(b.Height), formatNumber(b.RadiusBottom), formatNumber(b.RadiusTop))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseArgs parses and validates positional arguments. Missing or empty
// base arguments take their default. Nothing is generated here; every
// input problem is reported before any geometry work starts.
func ParseArgs(args []string, defaults Defaults) (*Request, error) {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	sides := defaults.Sides
	if s := arg(0); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: sides %q", ErrInvalidArgument, s)
		}
		sides = n
	}

	base := defaults.Base
	for i, dst := range []*float64{&base.Height, &base.RadiusBottom, &base.RadiusTop} {
		s := arg(1 + i)
		if s == "" {
			continue
		}
		v, err := parseFloat(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		*dst = v
	}

	levelCount := 0
	if s := arg(4); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: level count %q", ErrInvalidArgument, s)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative level count %d", ErrArgumentCountMismatch, n)
		}
		levelCount = n
	}

	if err := building.ValidateSides(sides); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	levels := []building.LevelSpec{base}
	if levelCount == 0 {
		return &Request{Sides: sides, Levels: levels}, nil
	}

	expected := baseArgs + levelCount*argsPerLevel
	switch {
	case len(args) < expected:
		return nil, fmt.Errorf("%w: %d levels need %d arguments, got %d (too few)",
			ErrArgumentCountMismatch, levelCount, expected, len(args))
	case len(args) > expected:
		return nil, fmt.Errorf("%w: %d levels need %d arguments, got %d (too many)",
			ErrArgumentCountMismatch, levelCount, expected, len(args))
	}

	for i := 0; i < levelCount; i++ {
		first := baseArgs + i*argsPerLevel
		var vals [argsPerLevel]float64
		for k := range vals {
			s := args[first+k]
			if s == "" {
				return nil, fmt.Errorf("%w: level %d", ErrMissingLevelArgument, i+1)
			}
			v, err := parseFloat(s)
			if err != nil {
				return nil, fmt.Errorf("%w: level %d: %v", ErrMissingLevelArgument, i+1, err)
			}
			vals[k] = v
		}

		level := building.LevelSpec{Height: vals[0], RadiusBottom: vals[1], RadiusTop: vals[2]}
		if err := level.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		levels = append(levels, level)
	}

	return &Request{Sides: sides, Levels: levels}, nil
}

// parseFloat accepts finite decimal numbers only.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
