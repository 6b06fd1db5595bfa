package main

import (
	"errors"
	"fmt"
	"math"

	"dstar-motion-planner/dstarlite"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a position in grid units
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon represents an obstacle outline as a list of vertices
type Polygon struct {
	Vertices []Point `json:"vertices"`
	Cost     float64 `json:"cost,omitempty"` // 0 or negative means blocked
}

// Obstacle is an area of the world with a traversal cost. A negative cost
// marks the area as non-traversable.
type Obstacle struct {
	Shape orb.Polygon
	Cost  float64
}

// BlockedCost is the cell cost reported for non-traversable cells.
const BlockedCost = -1.0

// MaxCellCoord bounds obstacle coordinates in both axes.
const MaxCellCoord = 1 << 30

var (
	errObstacleOutOfRange = errors.New("obstacle vertex out of range")
	errObstacleTooLarge   = errors.New("obstacle covers too many cells")
)

// Validate checks that p has finite vertices within MaxCellCoord and that
// its bounds span at most maxCells cells
func (p Polygon) Validate(maxCells int) error {
	for i, v := range p.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.Abs(v.X) > MaxCellCoord || math.Abs(v.Y) > MaxCellCoord {
			return fmt.Errorf("%w: vertex %d at (%g, %g)", errObstacleOutOfRange, i, v.X, v.Y)
		}
	}
	if n := WindowOf(p.ToObstacle()).Cells(); n > int64(maxCells) {
		return fmt.Errorf("%w: %d cells (max %d)", errObstacleTooLarge, n, maxCells)
	}
	return nil
}

// ToObstacle converts a request polygon into an obstacle, closing its ring
func (p Polygon) ToObstacle() Obstacle {
	ring := make(orb.Ring, 0, len(p.Vertices)+1)
	for _, v := range p.Vertices {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	cost := p.Cost
	if cost <= 0 {
		cost = BlockedCost
	}
	return Obstacle{Shape: orb.Polygon{ring}, Cost: cost}
}

// Blocked reports whether the obstacle is non-traversable
func (o Obstacle) Blocked() bool {
	return o.Cost < 0
}

// Covers reports whether the centre of cell c lies inside the obstacle.
// Cells on the boundary are covered.
func (o Obstacle) Covers(c dstarlite.Coord) bool {
	if len(o.Shape) == 0 || len(o.Shape[0]) < 3 {
		return false
	}
	return planar.PolygonContains(o.Shape, orb.Point{float64(c.X), float64(c.Y)})
}

// CellWindow is an inclusive rectangle of grid cells
type CellWindow struct {
	Min, Max dstarlite.Coord
}

// WindowAround returns the cells within radius steps of c in both axes
func WindowAround(c dstarlite.Coord, radius int) CellWindow {
	return CellWindow{
		Min: dstarlite.Coord{X: c.X - radius, Y: c.Y - radius},
		Max: dstarlite.Coord{X: c.X + radius, Y: c.Y + radius},
	}
}

// WindowOf returns the cells whose centres fall in the obstacle's bounds,
// clipped to MaxCellCoord
func WindowOf(o Obstacle) CellWindow {
	b := o.Shape.Bound()
	return CellWindow{
		Min: dstarlite.Coord{X: clampCell(math.Ceil(b.Min.X())), Y: clampCell(math.Ceil(b.Min.Y()))},
		Max: dstarlite.Coord{X: clampCell(math.Floor(b.Max.X())), Y: clampCell(math.Floor(b.Max.Y()))},
	}
}

func clampCell(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > MaxCellCoord:
		return MaxCellCoord
	case v < -MaxCellCoord:
		return -MaxCellCoord
	}
	return int(v)
}

// Bound returns the window as an orb bound over cell centres
func (w CellWindow) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(w.Min.X), float64(w.Min.Y)},
		Max: orb.Point{float64(w.Max.X), float64(w.Max.Y)},
	}
}

// Empty reports whether the window holds no cells
func (w CellWindow) Empty() bool {
	return w.Max.X < w.Min.X || w.Max.Y < w.Min.Y
}

// Cells returns the number of cells in the window, saturating at
// math.MaxInt64
func (w CellWindow) Cells() int64 {
	if w.Empty() {
		return 0
	}
	width := int64(w.Max.X) - int64(w.Min.X) + 1
	height := int64(w.Max.Y) - int64(w.Min.Y) + 1
	if width > math.MaxInt64/height {
		return math.MaxInt64
	}
	return width * height
}

// RasterizeObstacles returns the cost of every cell in window covered by
// at least one obstacle. Blocked obstacles win over costed ones; among
// costed obstacles the highest cost wins.
func RasterizeObstacles(obstacles []Obstacle, window CellWindow) map[dstarlite.Coord]float64 {
	cells := make(map[dstarlite.Coord]float64)
	if window.Empty() {
		return cells
	}

	for _, o := range obstacles {
		ow := WindowOf(o)
		minX, maxX := max(ow.Min.X, window.Min.X), min(ow.Max.X, window.Max.X)
		minY, maxY := max(ow.Min.Y, window.Min.Y), min(ow.Max.Y, window.Max.Y)

		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				c := dstarlite.Coord{X: x, Y: y}
				if !o.Covers(c) {
					continue
				}
				prev, seen := cells[c]
				switch {
				case !seen:
					cells[c] = o.Cost
				case prev < 0:
					// already blocked
				case o.Blocked() || o.Cost > prev:
					cells[c] = o.Cost
				}
			}
		}
	}
	return cells
}
