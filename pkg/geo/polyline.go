package geo

import (
	"github.com/roverlab/waypointx/pkg/planner"
	"github.com/twpayne/go-polyline"
)

// PoylineFromWaypoints encodes a traversal as a google polyline string so
// clients can draw it without shipping a float array. Pairs are encoded in
// x,y order since course coordinates are planar meters, not lat/lon.
func PoylineFromWaypoints(waypoints []planner.Waypoint) string {
	coords := make([][]float64, len(waypoints))
	for i, waypoint := range waypoints {
		coords[i] = []float64{waypoint.GetX(), waypoint.GetY()}
	}

	return string(polyline.EncodeCoords(coords))
}
