package core

import (
	"fmt"
	"math"
	"strings"
)

// AngleMode is the unit trigonometric functions work in.
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
	Gradians
)

var angleNames = map[AngleMode]string{
	Degrees:  "DEG",
	Radians:  "RAD",
	Gradians: "GRA",
}

func (a AngleMode) String() string {
	if s, ok := angleNames[a]; ok {
		return s
	}
	return "DEG"
}

// Unit is the size of one angle unit in radians.
func (a AngleMode) Unit() float64 {
	switch a {
	case Degrees:
		return math.Pi / 180
	case Gradians:
		return math.Pi / 200
	}
	return 1
}

// ParseAngleMode accepts "deg", "rad" or "gra" in any case.
func ParseAngleMode(s string) (AngleMode, error) {
	for a, name := range angleNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return Degrees, fmt.Errorf("unknown angle mode %q", s)
}
