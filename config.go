package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dstar-motion-planner/dstarlite"
)

// Defaults for ServerConfig fields left out of the config file.
const (
	DefaultListen      = ":8080"
	DefaultObstacleDir = "obstacles"
	DefaultSenseRadius = 3
	DefaultMaxSessions = 64

	// DefaultMaxRevealCells bounds the cells one obstacle or one sensing
	// window may turn into.
	DefaultMaxRevealCells = 250000
)

// ServerConfig is the planning service configuration. Every field is
// optional; the Get* methods fall back to defaults.
type ServerConfig struct {
	Listen      *string `json:"listen,omitempty"`
	ObstacleDir *string `json:"obstacle_dir,omitempty"`
	MaxSteps    *int    `json:"max_steps,omitempty"`
	SenseRadius *int    `json:"sense_radius,omitempty"`
	MaxSessions *int    `json:"max_sessions,omitempty"`

	MaxRevealCells *int `json:"max_reveal_cells,omitempty"`
}

// EmptyServerConfig returns a ServerConfig with all fields set to nil.
func EmptyServerConfig() *ServerConfig {
	return &ServerConfig{}
}

// LoadServerConfig loads a ServerConfig from a JSON file.
// Fields omitted from the file keep their defaults.
func LoadServerConfig(path string) (*ServerConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyServerConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *ServerConfig) Validate() error {
	if c.Listen != nil && *c.Listen == "" {
		return fmt.Errorf("listen must not be empty")
	}
	if c.MaxSteps != nil && *c.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive, got %d", *c.MaxSteps)
	}
	if c.SenseRadius != nil && *c.SenseRadius < 0 {
		return fmt.Errorf("sense_radius must be non-negative, got %d", *c.SenseRadius)
	}
	if c.MaxSessions != nil && *c.MaxSessions <= 0 {
		return fmt.Errorf("max_sessions must be positive, got %d", *c.MaxSessions)
	}
	if c.MaxRevealCells != nil && *c.MaxRevealCells <= 0 {
		return fmt.Errorf("max_reveal_cells must be positive, got %d", *c.MaxRevealCells)
	}
	if window := WindowAround(dstarlite.Coord{}, c.GetSenseRadius()); window.Cells() > int64(c.GetMaxRevealCells()) {
		return fmt.Errorf("sense_radius %d covers %d cells, more than max_reveal_cells %d",
			c.GetSenseRadius(), window.Cells(), c.GetMaxRevealCells())
	}
	return nil
}

// GetListen returns the listen address
func (c *ServerConfig) GetListen() string {
	if c.Listen == nil {
		return DefaultListen
	}
	return *c.Listen
}

// GetObstacleDir returns the directory scanned for obstacle files
func (c *ServerConfig) GetObstacleDir() string {
	if c.ObstacleDir == nil {
		return DefaultObstacleDir
	}
	return *c.ObstacleDir
}

// GetMaxSteps returns the search step budget per replan
func (c *ServerConfig) GetMaxSteps() int {
	if c.MaxSteps == nil {
		return dstarlite.DefaultMaxSteps
	}
	return *c.MaxSteps
}

// GetSenseRadius returns how far, in cells, the agent observes obstacles
func (c *ServerConfig) GetSenseRadius() int {
	if c.SenseRadius == nil {
		return DefaultSenseRadius
	}
	return *c.SenseRadius
}

// GetMaxSessions returns the maximum number of live planner sessions
func (c *ServerConfig) GetMaxSessions() int {
	if c.MaxSessions == nil {
		return DefaultMaxSessions
	}
	return *c.MaxSessions
}

// GetMaxRevealCells returns how many cells a single obstacle or sensing
// window may cover
func (c *ServerConfig) GetMaxRevealCells() int {
	if c.MaxRevealCells == nil {
		return DefaultMaxRevealCells
	}
	return *c.MaxRevealCells
}
