package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"dstar-motion-planner/dstarlite"
)

var (
	configPath = flag.String("config", "", "Path to a JSON server config")
	listen     = flag.String("listen", "", "Listen address (overrides config)")
)

type CreatePlannerRequest struct {
	Start     dstarlite.Coord `json:"start"`
	Goal      dstarlite.Coord `json:"goal"`
	Obstacles []Polygon       `json:"obstacles,omitempty"` // Optional: hidden world obstacles for this session
	RevealAll bool            `json:"revealAll,omitempty"` // Report every obstacle up front instead of sensing
}

type CreatePlannerResponse struct {
	ID        string          `json:"id"`
	Start     dstarlite.Coord `json:"start"`
	Goal      dstarlite.Coord `json:"goal"`
	Revealed  int             `json:"revealed"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CellUpdate struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Cost float64 `json:"cost"`
}

type UpdateCellsRequest struct {
	Cells []CellUpdate `json:"cells"`
}

type UpdateStartResponse struct {
	Start    dstarlite.Coord `json:"start"`
	Revealed int             `json:"revealed"`
}

type ReplanResponse struct {
	Path    []dstarlite.Coord `json:"path"`
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Cost    float64           `json:"cost,omitempty"`
	Stats   dstarlite.Stats   `json:"stats"`
}

type plannerServer struct {
	cfg       *ServerConfig
	obstacles []Obstacle // loaded at startup, shared by every session
	sessions  *sessionRegistry
}

func newPlannerServer(cfg *ServerConfig, obstacles []Obstacle) *plannerServer {
	return &plannerServer{
		cfg:       cfg,
		obstacles: obstacles,
		sessions:  newSessionRegistry(cfg.GetMaxSessions()),
	}
}

func (s *plannerServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /planners", s.createPlannerHandler)
	mux.HandleFunc("DELETE /planners/{id}", s.deletePlannerHandler)
	mux.HandleFunc("POST /planners/{id}/cells", s.updateCellsHandler)
	mux.HandleFunc("POST /planners/{id}/start", s.updateStartHandler)
	mux.HandleFunc("POST /planners/{id}/goal", s.updateGoalHandler)
	mux.HandleFunc("POST /planners/{id}/replan", s.replanHandler)
	mux.HandleFunc("GET /planners/{id}/path", s.pathHandler)
	mux.HandleFunc("GET /health", s.healthHandler)
	return corsMiddleware(mux)
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  Failed to encode response: %v\n", err)
	}
}

// lookup resolves the session named in the request path or writes a 404
func (s *plannerServer) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	sess, err := s.sessions.get(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// POST /planners - Create a planner session
func (s *plannerServer) createPlannerHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Create planner request received")

	var req CreatePlannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("   Start: %v\n", req.Start)
	log.Printf("   Goal:  %v\n", req.Goal)
	log.Printf("   Obstacles: %d request, %d shared\n", len(req.Obstacles), len(s.obstacles))

	world := make([]Obstacle, 0, len(s.obstacles)+len(req.Obstacles))
	world = append(world, s.obstacles...)
	for i, poly := range req.Obstacles {
		if err := poly.Validate(s.cfg.GetMaxRevealCells()); err != nil {
			log.Printf("❌ Obstacle %d rejected: %v\n", i, err)
			http.Error(w, fmt.Sprintf("obstacle %d: %v", i, err), http.StatusBadRequest)
			return
		}
		world = append(world, poly.ToObstacle())
	}

	sess := newSession(req.Start, req.Goal, NewSpatialIndex(world), s.cfg)
	if err := s.sessions.add(sess); err != nil {
		log.Printf("❌ %v\n", err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	sess.mu.Lock()
	var revealed int
	if req.RevealAll {
		revealed = sess.revealAll()
	} else {
		revealed = sess.sense()
	}
	sess.mu.Unlock()

	log.Printf("✅ Session %s created, %d obstacle cells revealed\n", sess.id, revealed)
	log.Println("========================================")

	writeJSON(w, http.StatusCreated, CreatePlannerResponse{
		ID:        sess.id,
		Start:     req.Start,
		Goal:      req.Goal,
		Revealed:  revealed,
		CreatedAt: sess.created,
	})
}

// DELETE /planners/{id} - Drop a planner session
func (s *plannerServer) deletePlannerHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.sessions.remove(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Printf("🗑️  Session %s deleted\n", id)
	w.WriteHeader(http.StatusNoContent)
}

// POST /planners/{id}/cells - Report cell cost changes
func (s *plannerServer) updateCellsHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req UpdateCellsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess.mu.Lock()
	for _, c := range req.Cells {
		sess.planner.UpdateCell(c.X, c.Y, c.Cost)
	}
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"updated": len(req.Cells),
	})
}

// POST /planners/{id}/start - Move the agent and sense around it
func (s *plannerServer) updateStartHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req dstarlite.Coord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess.mu.Lock()
	sess.planner.UpdateStart(req.X, req.Y)
	revealed := sess.sense()
	sess.mu.Unlock()

	if revealed > 0 {
		log.Printf("👀 Session %s at %v revealed %d obstacle cells\n", sess.id, req, revealed)
	}

	writeJSON(w, http.StatusOK, UpdateStartResponse{Start: req, Revealed: revealed})
}

// POST /planners/{id}/goal - Goal relocation is not supported
func (s *plannerServer) updateGoalHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.lookup(w, r); !ok {
		return
	}
	http.Error(w, dstarlite.ErrGoalRelocation.Error()+"; create a new planner", http.StatusNotImplemented)
}

// POST /planners/{id}/replan - Re-converge and return the path
func (s *plannerServer) replanHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	success := sess.planner.Replan()
	response := ReplanResponse{
		Path:    sess.planner.Path(),
		Success: success,
		Cost:    sess.planner.PathCost(),
		Stats:   sess.planner.Stats(),
	}
	err := sess.planner.Err()
	sess.mu.Unlock()

	switch {
	case success:
		log.Printf("✅ Session %s: path with %d cells, cost %.3f\n", sess.id, len(response.Path), response.Cost)
	case errors.Is(err, dstarlite.ErrStepBudgetExceeded):
		response.Message = "Search step budget exceeded (start may be enclosed)"
	case err != nil:
		response.Message = err.Error()
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /planners/{id}/path - Most recent path
func (s *plannerServer) pathHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	path := sess.planner.Path()
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"path":   path,
		"length": len(path),
	})
}

// GET /health - Health check endpoint
func (s *plannerServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ready",
		"numSessions":  s.sessions.len(),
		"maxSessions":  s.cfg.GetMaxSessions(),
		"numObstacles": len(s.obstacles),
	})
}

func main() {
	flag.Parse()

	log.Println("========================================")
	log.Println("🚀 D* Lite Grid Planner Server")
	log.Println("========================================")

	cfg := EmptyServerConfig()
	if *configPath != "" {
		loaded, err := LoadServerConfig(*configPath)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		cfg = loaded
	}
	if *listen != "" {
		cfg.Listen = listen
	}

	log.Printf("Checking %s for obstacle files...\n", cfg.GetObstacleDir())
	obstacles, err := loadObstaclesFromFiles(cfg.GetObstacleDir())
	if err != nil {
		log.Printf("⚠️  %v\n", err)
	}
	if len(obstacles) == 0 {
		log.Println("ℹ️  No shared obstacles loaded (sessions may supply their own)")
	}
	obstacles = MergeOverlappingObstacles(obstacles)

	server := newPlannerServer(cfg, obstacles)

	log.Printf("Server starting on %s\n", cfg.GetListen())
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST   /planners              - Create a planner session")
	log.Println("  POST   /planners/{id}/cells   - Report cell cost changes")
	log.Println("  POST   /planners/{id}/start   - Move the agent")
	log.Println("  POST   /planners/{id}/replan  - Replan and return the path")
	log.Println("  GET    /planners/{id}/path    - Most recent path")
	log.Println("  DELETE /planners/{id}         - Drop a session")
	log.Println("  GET    /health                - Check server status")
	log.Println("")
	log.Printf("Sense radius: %d cells, step budget: %d\n", cfg.GetSenseRadius(), cfg.GetMaxSteps())
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(cfg.GetListen(), server.routes()); err != nil {
		log.Fatal(err)
	}
}
