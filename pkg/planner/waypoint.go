package planner

import (
	"strings"

	"github.com/golang/geo/r2"
	"github.com/roverlab/waypointx/pkg/util"
)

// Waypoint is a rover position on the planar course field, in meters.
type Waypoint struct {
	pos r2.Point
}

func NewWaypoint(x, y float64) Waypoint {
	return Waypoint{pos: r2.Point{X: x, Y: y}}
}

func (w Waypoint) GetX() float64 {
	return w.pos.X
}

func (w Waypoint) GetY() float64 {
	return w.pos.Y
}

// DistanceTo is the straight-line travel distance between two positions.
func (w Waypoint) DistanceTo(other Waypoint) float64 {
	return w.pos.Sub(other.pos).Norm()
}

// ParsePosition parses an "x,y" command line argument into a Waypoint.
func ParsePosition(s string) (Waypoint, error) {
	tokens := strings.Split(s, ",")
	if len(tokens) != 2 {
		return Waypoint{}, util.WrapErrorf(ErrInvalidConfiguration, util.ErrBadParamInput,
			"position %q must have the form x,y", s)
	}

	x, err := util.StringToFloat64(strings.TrimSpace(tokens[0]))
	if err != nil {
		return Waypoint{}, util.WrapErrorf(ErrInvalidConfiguration, util.ErrBadParamInput,
			"position %q has a non-numeric x", s)
	}
	y, err := util.StringToFloat64(strings.TrimSpace(tokens[1]))
	if err != nil {
		return Waypoint{}, util.WrapErrorf(ErrInvalidConfiguration, util.ErrBadParamInput,
			"position %q has a non-numeric y", s)
	}

	return NewWaypoint(x, y), nil
}
