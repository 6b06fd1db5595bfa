package dstarlite

import (
	"fmt"
	"math"
)

// keyEpsilon is the tolerance applied to the first key component.
const keyEpsilon = 1e-6

// valueEpsilon is the tolerance used when comparing g and rhs values.
const valueEpsilon = 1e-5

// fingerprintWeight mixes both key components into one float for the
// open list freshness index.
const fingerprintWeight = 1193

// Coord identifies a grid cell.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String provides a string representation of Coord
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Key is the priority of a state in the open list.
type Key struct {
	K1 float64
	K2 float64
}

// Less orders keys lexicographically. K1 is compared within keyEpsilon,
// K2 exactly.
func (k Key) Less(other Key) bool {
	if k.K1+keyEpsilon < other.K1 {
		return true
	} else if k.K1-keyEpsilon > other.K1 {
		return false
	}
	return k.K2 < other.K2
}

// fingerprint collapses the key into the value recorded by the freshness
// index at insertion time.
func (k Key) fingerprint() float64 {
	return k.K1 + fingerprintWeight*k.K2
}

// State is a cell together with the key it was queued under.
//
// Two states are the same state when their Coord fields match; use Same
// for that. Less orders by key only. The two must not be mixed: a state
// keeps its identity while its key changes.
type State struct {
	Coord
	Key Key
}

// Same reports whether s and other refer to the same cell.
func (s State) Same(other State) bool {
	return s.Coord == other.Coord
}

// Less reports whether s has a strictly smaller key than other.
func (s State) Less(other State) bool {
	return s.Key.Less(other.Key)
}

// approxEqual reports whether x and y are within valueEpsilon. Two
// infinities are equal.
func approxEqual(x, y float64) bool {
	if math.IsInf(x, 1) && math.IsInf(y, 1) {
		return true
	}
	return math.Abs(x-y) < valueEpsilon
}
