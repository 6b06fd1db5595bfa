package dstarlite

import "errors"

var (
	// ErrNoPath means the start has no finite cost to the goal.
	ErrNoPath = errors.New("no path to goal")

	// ErrStepBudgetExceeded means the search gave up before converging,
	// usually because the start is boxed in.
	ErrStepBudgetExceeded = errors.New("search step budget exceeded")

	// ErrEnclosedCell means path extraction reached a cell with no usable
	// successor.
	ErrEnclosedCell = errors.New("cell has no traversable successor")

	// ErrGoalRelocation is the panic value of UpdateGoal. The key modifier
	// only compensates for a moving start, so the goal is fixed for the
	// life of a Planner.
	ErrGoalRelocation = errors.New("goal relocation is not supported")
)
