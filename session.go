package main

import (
	"errors"
	"log"
	"sync"
	"time"

	"dstar-motion-planner/dstarlite"

	"github.com/google/uuid"
)

var (
	errSessionNotFound = errors.New("planner session not found")
	errTooManySessions = errors.New("too many planner sessions")
)

// session is one planner together with the world it discovers.
// Every planner call goes through mu.
type session struct {
	mu          sync.Mutex
	id          string
	planner     *dstarlite.Planner
	world       *SpatialIndex
	senseRadius int
	maxReveal   int64 // cells one obstacle may cover in revealAll
	revealed    map[dstarlite.Coord]bool
	created     time.Time
}

func newSession(start, goal dstarlite.Coord, world *SpatialIndex, cfg *ServerConfig) *session {
	id := uuid.NewString()
	s := &session{
		id:          id,
		world:       world,
		senseRadius: cfg.GetSenseRadius(),
		maxReveal:   int64(cfg.GetMaxRevealCells()),
		revealed:    make(map[dstarlite.Coord]bool),
		created:     time.Now(),
	}
	s.planner = dstarlite.New(start, goal,
		dstarlite.WithMaxSteps(cfg.GetMaxSteps()),
		dstarlite.WithLogger(func(format string, v ...interface{}) {
			log.Printf("[%s] "+format, append([]interface{}{id}, v...)...)
		}),
	)
	return s
}

// revealAll reports every obstacle cell of the world to the planner.
// Obstacles covering more than maxReveal cells are left to sensing.
// Callers hold s.mu.
func (s *session) revealAll() int {
	n := 0
	for _, o := range s.world.All() {
		window := WindowOf(o)
		if cells := window.Cells(); cells > s.maxReveal {
			log.Printf("⚠️  [%s] obstacle over %d cells too large to reveal at once, left to sensing\n", s.id, cells)
			continue
		}
		n += s.reveal(RasterizeObstacles([]Obstacle{o}, window))
	}
	return n
}

// sense reports the obstacle cells within the sensing radius of the
// current start. Callers hold s.mu.
func (s *session) sense() int {
	window := WindowAround(s.planner.Start(), s.senseRadius)
	return s.reveal(RasterizeObstacles(s.world.QueryRegion(window.Bound()), window))
}

func (s *session) reveal(cells map[dstarlite.Coord]float64) int {
	n := 0
	for c, cost := range cells {
		if s.revealed[c] {
			continue
		}
		s.revealed[c] = true
		s.planner.UpdateCell(c.X, c.Y, cost)
		n++
	}
	return n
}

// sessionRegistry holds the live sessions
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	max      int
}

func newSessionRegistry(limit int) *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*session),
		max:      limit,
	}
}

func (r *sessionRegistry) add(s *session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sessions) >= r.max {
		return errTooManySessions
	}
	r.sessions[s.id] = s
	return nil
}

func (r *sessionRegistry) get(id string) (*session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	return s, nil
}

func (r *sessionRegistry) remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return errSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *sessionRegistry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
