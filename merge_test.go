package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeOverlappingObstacles(t *testing.T) {
	outer := square(0, 0, 10, 10, 0).ToObstacle()
	inner := square(2, 2, 4, 4, 0).ToObstacle()
	costedInner := square(5, 5, 6, 6, 3).ToObstacle()
	apart := square(20, 20, 22, 22, 0).ToObstacle()

	merged := MergeOverlappingObstacles([]Obstacle{inner, outer, costedInner, apart})

	assert.Len(t, merged, 3)
	assert.Contains(t, merged, outer)
	assert.Contains(t, merged, costedInner, "obstacles with different costs are kept")
	assert.Contains(t, merged, apart)
	assert.NotContains(t, merged, inner)
}

func TestMergeOverlappingObstaclesTrivial(t *testing.T) {
	assert.Empty(t, MergeOverlappingObstacles(nil))
	one := []Obstacle{square(0, 0, 1, 1, 0).ToObstacle()}
	assert.Equal(t, one, MergeOverlappingObstacles(one))
}

func TestMergeDropsDuplicatesAndNested(t *testing.T) {
	big := square(0, 0, 10, 10, 0).ToObstacle()
	copyOfBig := square(0, 0, 10, 10, 0).ToObstacle()
	nested := square(1, 1, 8, 8, 0).ToObstacle()
	deeper := square(2, 2, 3, 3, 0).ToObstacle()
	overlapping := square(5, 5, 15, 15, 0).ToObstacle()

	merged := MergeOverlappingObstacles([]Obstacle{deeper, nested, big, copyOfBig, overlapping})
	assert.Equal(t, []Obstacle{big, overlapping}, merged)
}

func TestObstacleContains(t *testing.T) {
	outer := square(0, 0, 10, 10, 0).ToObstacle()

	assert.True(t, outer.Contains(square(0, 0, 10, 5, 0).ToObstacle()), "shared edges count as inside")
	assert.False(t, outer.Contains(square(9, 9, 11, 11, 0).ToObstacle()))
	assert.False(t, outer.Contains(Obstacle{}))
	assert.False(t, Obstacle{}.Contains(outer))

	// bounds fit but the L-shape leaves out a corner
	ell := Polygon{Vertices: []Point{{0, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 10}, {0, 10}}}.ToObstacle()
	assert.False(t, ell.Contains(square(5, 5, 9, 9, 0).ToObstacle()))
	assert.True(t, ell.Contains(square(1, 1, 3, 9, 0).ToObstacle()))
}
