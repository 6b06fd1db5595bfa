package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// costProperty is the optional feature property holding a traversal cost.
// Features without it are blocked.
const costProperty = "cost"

// loadObstaclesFromFiles loads all GeoJSON files from dir. A missing
// directory yields no obstacles.
func loadObstaclesFromFiles(dir string) ([]Obstacle, error) {
	var allObstacles []Obstacle

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return nil, fmt.Errorf("failed to list obstacle files: %w", err)
	}

	log.Printf("Loading obstacles from %d GeoJSON files...\n", len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Printf("⚠️  Failed to read %s: %v\n", file, err)
			continue
		}

		obstacles, err := parseObstacleCollection(data)
		if err != nil {
			log.Printf("⚠️  Failed to parse %s: %v\n", file, err)
			continue
		}
		allObstacles = append(allObstacles, obstacles...)

		log.Printf("   ✅ Loaded %d obstacles from %s\n", len(obstacles), filepath.Base(file))
	}

	log.Printf("Total obstacles loaded: %d\n", len(allObstacles))
	return allObstacles, nil
}

// parseObstacleCollection converts a GeoJSON feature collection to obstacles
func parseObstacleCollection(data []byte) ([]Obstacle, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal feature collection: %w", err)
	}

	var obstacles []Obstacle
	for _, feature := range fc.Features {
		cost := feature.Properties.MustFloat64(costProperty, BlockedCost)
		if cost <= 0 {
			cost = BlockedCost
		}

		switch g := feature.Geometry.(type) {
		case nil:
			continue
		case orb.Polygon:
			obstacles = append(obstacles, Obstacle{Shape: g, Cost: cost})
		case orb.MultiPolygon:
			for _, poly := range g {
				obstacles = append(obstacles, Obstacle{Shape: poly, Cost: cost})
			}
		default:
			log.Printf("⚠️  Skipping %s geometry\n", feature.Geometry.GeoJSONType())
		}
	}
	return obstacles, nil
}
