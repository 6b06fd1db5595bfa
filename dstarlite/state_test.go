package dstarlite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"smaller first component", Key{1, 5}, Key{2, 0}, true},
		{"larger first component", Key{3, 0}, Key{2, 5}, false},
		{"first within epsilon falls to second", Key{1, 1}, Key{1 + 5e-7, 2}, true},
		{"first within epsilon, second larger", Key{1 + 5e-7, 3}, Key{1, 2}, false},
		{"equal keys", Key{1, 1}, Key{1, 1}, false},
		{"second compared exactly", Key{1, 1}, Key{1, 1 + 1e-9}, true},
		{"finite before infinite", Key{10, 10}, Key{math.Inf(1), math.Inf(1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}

func TestStateIdentityIsSeparateFromOrder(t *testing.T) {
	a := State{Coord: Coord{X: 2, Y: 3}, Key: Key{1, 1}}
	b := State{Coord: Coord{X: 2, Y: 3}, Key: Key{9, 9}}
	c := State{Coord: Coord{X: 4, Y: 3}, Key: Key{1, 1}}

	assert.True(t, a.Same(b), "same cell with different keys is the same state")
	assert.True(t, a.Less(b))
	assert.False(t, a.Same(c), "different cells with equal keys are different states")
	assert.False(t, a.Less(c))
	assert.False(t, c.Less(a))

	seen := map[Coord]bool{a.Coord: true}
	assert.True(t, seen[b.Coord])
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, approxEqual(1, 1+1e-6))
	assert.False(t, approxEqual(1, 1+1e-4))
	assert.True(t, approxEqual(math.Inf(1), math.Inf(1)))
	assert.False(t, approxEqual(math.Inf(1), 1e9))
}

func TestCoordString(t *testing.T) {
	assert.Equal(t, "(-1,4)", Coord{X: -1, Y: 4}.String())
}
