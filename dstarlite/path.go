package dstarlite

import (
	"fmt"
	"math"
)

// Replan re-converges the search and extracts a path from the start to
// the goal. It returns false if no path could be produced; Err then tells
// why and Path is empty.
func (p *Planner) Replan() bool {
	p.path = p.path[:0]
	p.err = nil

	p.status = p.computeShortestPath()
	if p.status == StatusStepBudgetExceeded {
		return p.fail(fmt.Errorf("%w: %d steps from %v", ErrStepBudgetExceeded, p.maxSteps, p.start))
	}
	if math.IsInf(p.cells.g(p.start), 1) {
		return p.fail(fmt.Errorf("%w: from %v", ErrNoPath, p.start))
	}

	visited := make(map[Coord]bool)
	cur := p.start
	for cur != p.goal {
		if visited[cur] {
			return p.fail(fmt.Errorf("%w: walk revisited %v", ErrNoPath, cur))
		}
		visited[cur] = true
		p.path = append(p.path, cur)

		next, ok := p.bestSuccessor(cur)
		if !ok {
			return p.fail(fmt.Errorf("%w: %v", ErrEnclosedCell, cur))
		}
		cur = next
	}
	p.path = append(p.path, p.goal)
	return true
}

// bestSuccessor picks the successor of cur with the lowest cost-to-goal.
// Near ties go to the candidate closest to the straight line between
// start and goal.
func (p *Planner) bestSuccessor(cur Coord) (Coord, bool) {
	var best Coord
	var bestTie float64
	bestCost := math.Inf(1)
	found := false
	for _, s := range p.successors(cur) {
		if p.cells.occupied(s) {
			continue
		}
		v := p.cost(cur, s) + p.cells.g(s)
		if math.IsInf(v, 1) {
			continue
		}
		tie := trueDistance(s, p.goal) + trueDistance(p.start, s)
		if found && approxEqual(v, bestCost) {
			if tie < bestTie {
				best, bestCost, bestTie = s, v, tie
			}
		} else if v < bestCost {
			best, bestCost, bestTie, found = s, v, tie, true
		}
	}
	return best, found
}

func (p *Planner) fail(err error) bool {
	p.path = p.path[:0]
	p.err = err
	p.logf("dstarlite: replan failed: %v", err)
	return false
}

// Path returns the most recent plan from start to goal, both included.
// It is only current until the next UpdateCell or UpdateStart.
func (p *Planner) Path() []Coord {
	out := make([]Coord, len(p.path))
	copy(out, p.path)
	return out
}

// PathCost returns the sum of movement costs along Path.
func (p *Planner) PathCost() float64 {
	total := 0.0
	for i := 1; i < len(p.path); i++ {
		total += p.cost(p.path[i-1], p.path[i])
	}
	return total
}
