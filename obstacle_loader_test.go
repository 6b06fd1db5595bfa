package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testObstacleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Polygon", "coordinates": [[[0.5, 0.5], [2.5, 0.5], [2.5, 2.5], [0.5, 2.5], [0.5, 0.5]]]}
    },
    {
      "type": "Feature",
      "properties": {"cost": 4},
      "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[10.5, 10.5], [11.5, 10.5], [11.5, 11.5], [10.5, 11.5], [10.5, 10.5]]],
        [[[20.5, 20.5], [21.5, 20.5], [21.5, 21.5], [20.5, 21.5], [20.5, 20.5]]]
      ]}
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Point", "coordinates": [1, 1]}
    }
  ]
}`

func TestParseObstacleCollection(t *testing.T) {
	obstacles, err := parseObstacleCollection([]byte(testObstacleCollection))
	require.NoError(t, err)
	require.Len(t, obstacles, 3)

	assert.True(t, obstacles[0].Blocked())
	assert.Equal(t, 4.0, obstacles[1].Cost)
	assert.Equal(t, 4.0, obstacles[2].Cost)

	cells := RasterizeObstacles(obstacles[:1], WindowOf(obstacles[0]))
	assert.Len(t, cells, 4)
}

func TestParseObstacleCollectionInvalid(t *testing.T) {
	_, err := parseObstacleCollection([]byte(`{"type": "FeatureCollection", "features": [`))
	assert.Error(t, err)
}

func TestLoadObstaclesFromFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zones.geojson"), []byte(testObstacleCollection), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.geojson"), []byte("not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	obstacles, err := loadObstaclesFromFiles(dir)
	require.NoError(t, err)
	assert.Len(t, obstacles, 3)
}

func TestLoadObstaclesFromMissingDir(t *testing.T) {
	obstacles, err := loadObstaclesFromFiles(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, err)
	assert.Empty(t, obstacles)
}
