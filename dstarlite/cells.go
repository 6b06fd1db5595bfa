package dstarlite

// cellInfo holds the search values of one cell.
type cellInfo struct {
	g    float64
	rhs  float64
	cost float64 // cost of leaving the cell; negative means occupied
}

// cellStore maps coordinates to cellInfo. Cells are created on first
// write and never removed. A missing cell is free space whose g and rhs
// both equal the heuristic distance to the goal.
type cellStore struct {
	cells       map[Coord]*cellInfo
	goal        Coord
	defaultCost float64
}

func newCellStore(goal Coord, defaultCost float64) *cellStore {
	return &cellStore{
		cells:       make(map[Coord]*cellInfo),
		goal:        goal,
		defaultCost: defaultCost,
	}
}

// fresh returns the values a cell takes before anything touched it.
func (s *cellStore) fresh(c Coord) cellInfo {
	h := heuristic(c, s.goal, s.defaultCost)
	return cellInfo{g: h, rhs: h, cost: s.defaultCost}
}

// ensure returns the entry for c, creating it if needed.
func (s *cellStore) ensure(c Coord) *cellInfo {
	if info, ok := s.cells[c]; ok {
		return info
	}
	info := s.fresh(c)
	s.cells[c] = &info
	return &info
}

// set stores an explicit entry, overwriting anything already present.
func (s *cellStore) set(c Coord, info cellInfo) {
	s.cells[c] = &info
}

func (s *cellStore) g(c Coord) float64 {
	if info, ok := s.cells[c]; ok {
		return info.g
	}
	return heuristic(c, s.goal, s.defaultCost)
}

func (s *cellStore) rhs(c Coord) float64 {
	if c == s.goal {
		return 0
	}
	if info, ok := s.cells[c]; ok {
		return info.rhs
	}
	return heuristic(c, s.goal, s.defaultCost)
}

func (s *cellStore) setG(c Coord, g float64) {
	s.ensure(c).g = g
}

func (s *cellStore) setRHS(c Coord, rhs float64) {
	s.ensure(c).rhs = rhs
}

func (s *cellStore) setCost(c Coord, cost float64) {
	s.ensure(c).cost = cost
}

// cost returns the traversal cost stored for c and whether c has an entry.
func (s *cellStore) cost(c Coord) (float64, bool) {
	if info, ok := s.cells[c]; ok {
		return info.cost, true
	}
	return s.defaultCost, false
}

// occupied reports whether c is non-traversable.
func (s *cellStore) occupied(c Coord) bool {
	if info, ok := s.cells[c]; ok {
		return info.cost < 0
	}
	return false
}

func (s *cellStore) len() int {
	return len(s.cells)
}
