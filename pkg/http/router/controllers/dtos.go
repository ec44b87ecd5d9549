package controllers

import (
	"github.com/roverlab/waypointx/pkg/datastructure"
)

type positionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type courseWaypointRequest struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Penalty float64 `json:"penalty" validate:"gte=0"`
}

// start and goal are pointers so that "required" still accepts the origin
// (0,0), which is a legal rover position.
type planRequest struct {
	Start     *positionRequest        `json:"start" validate:"required"`
	Goal      *positionRequest        `json:"goal" validate:"required"`
	Velocity  float64                 `json:"velocity" validate:"required,gt=0"`
	DwellTime float64                 `json:"dwell_time" validate:"gte=0"`
	Waypoints []courseWaypointRequest `json:"waypoints" validate:"dive"`
}

type planResponse struct {
	MinCost    float64               `json:"min_cost"`
	VisitOrder []datastructure.Index `json:"visit_order"`
	Path       string                `json:"path"`
	NumVisited int                   `json:"num_visited"`
}

func NewPlanResponse(minCost float64, visitOrder []datastructure.Index, path string) planResponse {
	return planResponse{
		MinCost:    minCost,
		VisitOrder: visitOrder,
		Path:       path,
		NumVisited: len(visitOrder) - 2,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
