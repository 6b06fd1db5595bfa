package main

import (
	"log"
	"math"
	"sort"

	"github.com/paulmach/orb/planar"
)

// MergeOverlappingObstacles drops obstacles that are fully contained
// within another obstacle of the same cost. This keeps the spatial index
// small when obstacle files overlap.
func MergeOverlappingObstacles(obstacles []Obstacle) []Obstacle {
	if len(obstacles) <= 1 {
		return obstacles
	}

	filtered := dropContainedObstacles(obstacles)

	log.Printf("   Obstacles after removing contained: %d (removed %d)\n",
		len(filtered), len(obstacles)-len(filtered))

	return filtered
}

// dropContainedObstacles keeps input order. Larger obstacles are visited
// first, so a container is always kept before anything it contains.
func dropContainedObstacles(obstacles []Obstacle) []Obstacle {
	bySize := make([]int, len(obstacles))
	for i := range bySize {
		bySize[i] = i
	}
	sort.SliceStable(bySize, func(a, b int) bool {
		return math.Abs(planar.Area(obstacles[bySize[a]].Shape)) > math.Abs(planar.Area(obstacles[bySize[b]].Shape))
	})

	keep := make([]bool, len(obstacles))
	var kept []Obstacle
	for _, i := range bySize {
		if !containedInAny(obstacles[i], kept) {
			keep[i] = true
			kept = append(kept, obstacles[i])
		}
	}

	result := make([]Obstacle, 0, len(kept))
	for i, o := range obstacles {
		if keep[i] {
			result = append(result, o)
		}
	}
	return result
}

func containedInAny(o Obstacle, others []Obstacle) bool {
	for _, other := range others {
		if other.Cost == o.Cost && other.Contains(o) {
			return true
		}
	}
	return false
}

// Contains reports whether every vertex of other's outer ring lies inside
// or on the boundary of o
func (o Obstacle) Contains(other Obstacle) bool {
	if len(o.Shape) == 0 || len(other.Shape) == 0 || len(other.Shape[0]) == 0 {
		return false
	}

	bound := o.Shape.Bound()
	if !bound.Union(other.Shape.Bound()).Equal(bound) {
		return false
	}
	for _, v := range other.Shape[0] {
		if !planar.PolygonContains(o.Shape, v) {
			return false
		}
	}
	return true
}
