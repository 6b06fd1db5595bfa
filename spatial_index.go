package main

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// minRectSide keeps degenerate bounds valid for rtreego, which rejects
// zero-length sides.
const minRectSide = 1e-9

// ObstacleEntry wraps an obstacle for R-tree storage
type ObstacleEntry struct {
	Obstacle Obstacle
	BBox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (o *ObstacleEntry) Bounds() rtreego.Rect {
	return o.BBox
}

// SpatialIndex manages obstacle spatial queries
type SpatialIndex struct {
	tree  *rtreego.Rtree
	count int
}

// NewSpatialIndex creates a new spatial index
func NewSpatialIndex(obstacles []Obstacle) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	count := 0
	for _, obstacle := range obstacles {
		if len(obstacle.Shape) == 0 || len(obstacle.Shape[0]) == 0 {
			continue
		}
		bbox, err := boundToRect(obstacle.Shape.Bound())
		if err != nil {
			continue
		}
		tree.Insert(&ObstacleEntry{Obstacle: obstacle, BBox: bbox})
		count++
	}

	return &SpatialIndex{tree: tree, count: count}
}

// Len returns the number of indexed obstacles
func (si *SpatialIndex) Len() int {
	return si.count
}

// QueryRegion returns obstacles whose bounds intersect the given bound
func (si *SpatialIndex) QueryRegion(bound orb.Bound) []Obstacle {
	bbox, err := boundToRect(bound)
	if err != nil {
		return []Obstacle{}
	}

	results := si.tree.SearchIntersect(bbox)
	obstacles := make([]Obstacle, 0, len(results))

	for _, item := range results {
		entry := item.(*ObstacleEntry)
		obstacles = append(obstacles, entry.Obstacle)
	}

	return obstacles
}

// All returns every indexed obstacle
func (si *SpatialIndex) All() []Obstacle {
	obstacles := make([]Obstacle, 0, si.count)
	for _, item := range si.tree.SearchIntersect(everywhere()) {
		obstacles = append(obstacles, item.(*ObstacleEntry).Obstacle)
	}
	return obstacles
}

// boundToRect converts an orb bound into an rtreego rectangle
func boundToRect(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		[]float64{
			max(b.Max.X()-b.Min.X(), minRectSide),
			max(b.Max.Y()-b.Min.Y(), minRectSide),
		},
	)
}

func everywhere() rtreego.Rect {
	const far = 1e15
	rect, _ := rtreego.NewRect(rtreego.Point{-far, -far}, []float64{2 * far, 2 * far})
	return rect
}
