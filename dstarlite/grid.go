package dstarlite

import "math"

// neighborOffsets lists the 8 neighbours of a cell clockwise (y grows
// downwards) from the immediate right. The order is fixed because path
// extraction keeps the first of several equally good successors.
var neighborOffsets = [8]Coord{
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// neighbors returns the 8 cells around c.
func neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		out = append(out, Coord{X: c.X + d.X, Y: c.Y + d.Y})
	}
	return out
}

// octileDistance is the 8-way distance between a and b with unit
// orthogonal and sqrt(2) diagonal steps.
func octileDistance(a, b Coord) float64 {
	lo := math.Abs(float64(a.X - b.X))
	hi := math.Abs(float64(a.Y - b.Y))
	if lo > hi {
		lo, hi = hi, lo
	}
	return (math.Sqrt2-1)*lo + hi
}

// heuristic scales the octile distance by scale, which must not exceed
// the smallest traversal cost on the grid.
func heuristic(a, b Coord, scale float64) float64 {
	return octileDistance(a, b) * scale
}

// trueDistance is the Euclidean distance between a and b.
func trueDistance(a, b Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// successors returns the cells reachable from c. An occupied cell has none.
func (p *Planner) successors(c Coord) []Coord {
	if p.cells.occupied(c) {
		return nil
	}
	return neighbors(c)
}

// predecessors returns the cells that can move onto c, skipping occupied
// ones.
func (p *Planner) predecessors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, n := range neighbors(c) {
		if !p.cells.occupied(n) {
			out = append(out, n)
		}
	}
	return out
}

// cost is the cost of moving from a to an adjacent b. It is the cost of
// leaving a, scaled by sqrt(2) for diagonal moves.
func (p *Planner) cost(a, b Coord) float64 {
	scale := 1.0
	if absInt(a.X-b.X)+absInt(a.Y-b.Y) > 1 {
		scale = math.Sqrt2
	}
	c, _ := p.cells.cost(a)
	return scale * c
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
