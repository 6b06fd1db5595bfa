package dstarlite

import "math"

// computeShortestPath drives the cells the start depends on to
// consistency, following [S. Koenig, 2002] with a step budget and lazy
// open list removal.
func (p *Planner) computeShortestPath() SearchStatus {
	p.steps = 0
	if p.open.empty() {
		return StatusQueueEmpty
	}

	for !p.open.empty() {
		startKey := p.calculateKey(p.start)
		startInconsistent := p.cells.rhs(p.start) != p.cells.g(p.start)
		if !p.open.peek().Key.Less(startKey) && !startInconsistent {
			break
		}

		p.steps++
		if p.steps > p.maxSteps {
			return StatusStepBudgetExceeded
		}

		u, ok := p.open.pop()
		if !ok {
			return StatusQueueEmpty
		}
		if !u.Key.Less(startKey) && !startInconsistent {
			return StatusEarlyExit
		}

		fresh := p.calculateKey(u.Coord)
		g, rhs := p.cells.g(u.Coord), p.cells.rhs(u.Coord)
		switch {
		case u.Key.Less(fresh):
			// queued under an outdated key
			p.open.push(State{Coord: u.Coord, Key: fresh})
		case g > rhs:
			p.cells.setG(u.Coord, rhs)
			for _, pred := range p.predecessors(u.Coord) {
				p.updateVertex(pred)
			}
		default:
			p.cells.setG(u.Coord, math.Inf(1))
			for _, pred := range p.predecessors(u.Coord) {
				p.updateVertex(pred)
			}
			p.updateVertex(u.Coord)
		}
	}
	return StatusConverged
}

// updateVertex recomputes rhs for c from its successors and queues c if
// it became inconsistent. A consistent cell is left wherever it is in the
// open list; pop discards its stale entry later.
func (p *Planner) updateVertex(c Coord) {
	if c != p.goal {
		best := math.Inf(1)
		for _, s := range p.successors(c) {
			if v := p.cells.g(s) + p.cost(c, s); v < best {
				best = v
			}
		}
		if !approxEqual(p.cells.rhs(c), best) {
			p.cells.setRHS(c, best)
		}
	}
	if !approxEqual(p.cells.g(c), p.cells.rhs(c)) {
		p.insert(c)
	}
}
