package planner

import "errors"

var (
	// ErrInputMismatch means a course body disagrees with its declared shape,
	// e.g. fewer waypoint lines than the count header announced.
	ErrInputMismatch = errors.New("course input mismatch")

	// ErrInvalidConfiguration means the traversal parameters make edge costs
	// undefined (non-positive velocity, negative dwell time).
	ErrInvalidConfiguration = errors.New("invalid traversal configuration")

	// ErrUnreachableGoal means no finite-cost node sequence reaches the goal.
	ErrUnreachableGoal = errors.New("goal unreachable from start")
)
