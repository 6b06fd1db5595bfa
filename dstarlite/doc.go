// Package dstarlite implements incremental replanning on an 8-connected
// grid using D* Lite [S. Koenig, 2002].
//
// A Planner is built for a fixed goal. The agent reports cost changes with
// UpdateCell and its own movement with UpdateStart, then calls Replan to
// re-converge the search and refresh Path. Only cells that are referenced
// are stored; every other cell is free space with the default cost.
//
// Two modifications to the published algorithm:
//
//   - Planning stops after a step budget, because the search can run
//     forever when the start is surrounded by obstacles.
//   - States are removed from the open list lazily, so the list is never
//     searched for an entry to delete.
//
// A Planner is not safe for concurrent use.
package dstarlite
