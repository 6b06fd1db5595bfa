package main

import (
	"os"
	"path/filepath"
	"testing"

	"dstar-motion-planner/dstarlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfigDefaults(t *testing.T) {
	cfg := EmptyServerConfig()

	assert.Equal(t, DefaultListen, cfg.GetListen())
	assert.Equal(t, DefaultObstacleDir, cfg.GetObstacleDir())
	assert.Equal(t, dstarlite.DefaultMaxSteps, cfg.GetMaxSteps())
	assert.Equal(t, DefaultSenseRadius, cfg.GetSenseRadius())
	assert.Equal(t, DefaultMaxSessions, cfg.GetMaxSessions())
	assert.Equal(t, DefaultMaxRevealCells, cfg.GetMaxRevealCells())
	assert.NoError(t, cfg.Validate())
}

func TestLoadServerConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "server.json")

	testJSON := `{
  "listen": ":9090",
  "max_steps": 1000,
  "sense_radius": 5
}`
	require.NoError(t, os.WriteFile(configPath, []byte(testJSON), 0644))

	cfg, err := LoadServerConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.GetListen())
	assert.Equal(t, 1000, cfg.GetMaxSteps())
	assert.Equal(t, 5, cfg.GetSenseRadius())
	// omitted fields keep their defaults
	assert.Equal(t, DefaultObstacleDir, cfg.GetObstacleDir())
	assert.Equal(t, DefaultMaxSessions, cfg.GetMaxSessions())
}

func TestLoadServerConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0644))
		return p
	}

	tests := []struct {
		name string
		path string
	}{
		{"wrong extension", write("server.yaml", "listen: x")},
		{"missing file", filepath.Join(tmpDir, "absent.json")},
		{"bad json", write("bad.json", "{")},
		{"negative radius", write("radius.json", `{"sense_radius": -1}`)},
		{"zero steps", write("steps.json", `{"max_steps": 0}`)},
		{"zero sessions", write("sessions.json", `{"max_sessions": 0}`)},
		{"empty listen", write("listen.json", `{"listen": ""}`)},
		{"zero reveal cells", write("reveal.json", `{"max_reveal_cells": 0}`)},
		{"sensing beyond reveal limit", write("window.json", `{"sense_radius": 10, "max_reveal_cells": 400}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadServerConfig(tt.path)
			assert.Error(t, err)
		})
	}
}
