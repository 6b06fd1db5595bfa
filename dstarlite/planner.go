package dstarlite

import (
	"fmt"
	"log"
	"math"
)

const (
	// DefaultCost is the traversal cost of a cell nobody reported on. It
	// also scales the heuristic.
	DefaultCost = 1.0

	// DefaultMaxSteps bounds the iterations of one search.
	DefaultMaxSteps = 80000
)

// Logger receives planner diagnostics.
type Logger func(format string, v ...interface{})

// Options defines parameters for a Planner.
type Options struct {
	MaxSteps int
	Logf     Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxSteps sets how many iterations one search may run before Replan
// gives up.
func WithMaxSteps(maxSteps int) Option {
	return func(options *Options) { options.MaxSteps = maxSteps }
}

// WithLogger replaces the diagnostic logger. Passing nil silences it.
func WithLogger(logf Logger) Option {
	return func(options *Options) { options.Logf = logf }
}

// SearchStatus is the outcome of one run of the search loop.
type SearchStatus int

const (
	// StatusConverged means the loop condition stopped holding.
	StatusConverged SearchStatus = iota
	// StatusQueueEmpty means the open list had nothing valid left.
	StatusQueueEmpty
	// StatusEarlyExit means the smallest valid entry was not ahead of the
	// start while the start was already consistent.
	StatusEarlyExit
	// StatusStepBudgetExceeded means the search hit its step budget.
	StatusStepBudgetExceeded
)

func (s SearchStatus) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusQueueEmpty:
		return "queue empty"
	case StatusEarlyExit:
		return "early exit"
	case StatusStepBudgetExceeded:
		return "step budget exceeded"
	}
	return fmt.Sprintf("SearchStatus(%d)", int(s))
}

var searchStatusNames = map[string]SearchStatus{
	StatusConverged.String():          StatusConverged,
	StatusQueueEmpty.String():         StatusQueueEmpty,
	StatusEarlyExit.String():          StatusEarlyExit,
	StatusStepBudgetExceeded.String(): StatusStepBudgetExceeded,
}

// MarshalText encodes the status by name.
func (s SearchStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name written by MarshalText.
func (s *SearchStatus) UnmarshalText(text []byte) error {
	status, ok := searchStatusNames[string(text)]
	if !ok {
		return fmt.Errorf("dstarlite: unknown search status %q", text)
	}
	*s = status
	return nil
}

// Stats describes the planner after the last search.
type Stats struct {
	Steps       int          `json:"steps"`
	Status      SearchStatus `json:"status"`
	OpenEntries int          `json:"openEntries"`
	Queued      int          `json:"queued"`
	Cells       int          `json:"cells"`
	KeyModifier float64      `json:"keyModifier"`
}

// Planner is a D* Lite planner over an unbounded 8-connected grid.
type Planner struct {
	start Coord
	goal  Coord
	last  Coord   // start at the previous UpdateStart
	km    float64 // key modifier

	cells *cellStore
	open  *openList
	path  []Coord

	maxSteps int
	logf     Logger

	steps  int
	status SearchStatus
	err    error
}

// New creates a planner from start to goal.
func New(start, goal Coord, options ...Option) *Planner {
	plannerOptions := Options{
		MaxSteps: DefaultMaxSteps,
		Logf:     log.Printf,
	}
	for _, option := range options {
		option(&plannerOptions)
	}
	if plannerOptions.Logf == nil {
		plannerOptions.Logf = func(string, ...interface{}) {}
	}

	p := &Planner{
		start:    start,
		goal:     goal,
		last:     start,
		cells:    newCellStore(goal, DefaultCost),
		open:     newOpenList(),
		maxSteps: plannerOptions.MaxSteps,
		logf:     plannerOptions.Logf,
	}

	p.cells.set(goal, cellInfo{g: 0, rhs: 0, cost: DefaultCost})
	h := heuristic(start, goal, DefaultCost)
	p.cells.set(start, cellInfo{g: h, rhs: h, cost: DefaultCost})
	return p
}

// Start returns the current agent position.
func (p *Planner) Start() Coord { return p.start }

// Goal returns the fixed goal.
func (p *Planner) Goal() Coord { return p.goal }

// Err returns why the last Replan failed, or nil if it succeeded.
func (p *Planner) Err() error { return p.err }

// Stats returns counters from the last search.
func (p *Planner) Stats() Stats {
	return Stats{
		Steps:       p.steps,
		Status:      p.status,
		OpenEntries: p.open.len(),
		Queued:      p.open.queued(),
		Cells:       p.cells.len(),
		KeyModifier: p.km,
	}
}

// CellCost returns the traversal cost recorded for c. ok is false when c
// was never referenced, in which case cost is DefaultCost.
func (p *Planner) CellCost(c Coord) (cost float64, ok bool) {
	return p.cells.cost(c)
}

// calculateKey computes the key of c against the current start.
func (p *Planner) calculateKey(c Coord) Key {
	v := math.Min(p.cells.g(c), p.cells.rhs(c))
	return Key{
		K1: v + heuristic(c, p.start, DefaultCost) + p.km,
		K2: v,
	}
}

// insert queues c under a freshly computed key, replacing any older entry.
func (p *Planner) insert(c Coord) {
	p.open.push(State{Coord: c, Key: p.calculateKey(c)})
}

// UpdateCell reports a new traversal cost for the cell at (x, y). A
// negative cost marks the cell as permanently non-traversable. The start
// and goal cells are never changed. Call Replan afterwards.
func (p *Planner) UpdateCell(x, y int, cost float64) {
	c := Coord{X: x, Y: y}
	if c == p.start || c == p.goal {
		return
	}
	p.cells.setCost(c, cost)
	p.updateVertex(c)
}

// UpdateStart moves the agent to (x, y). It does not replan.
func (p *Planner) UpdateStart(x, y int) {
	p.start = Coord{X: x, Y: y}
	p.km += heuristic(p.last, p.start, DefaultCost)
	p.last = p.start
}

// UpdateGoal always panics with ErrGoalRelocation.
func (p *Planner) UpdateGoal(x, y int) {
	p.logf("dstarlite: refusing to move goal %v to %v", p.goal, Coord{X: x, Y: y})
	panic(ErrGoalRelocation)
}
