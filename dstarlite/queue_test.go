package dstarlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenListPopsInKeyOrder(t *testing.T) {
	q := newOpenList()
	q.push(State{Coord: Coord{X: 0}, Key: Key{3, 0}})
	q.push(State{Coord: Coord{X: 1}, Key: Key{1, 2}})
	q.push(State{Coord: Coord{X: 2}, Key: Key{1, 1}})
	q.push(State{Coord: Coord{X: 3}, Key: Key{2, 0}})

	assert.Equal(t, Coord{X: 2}, q.peek().Coord)

	var order []int
	for {
		s, ok := q.pop()
		if !ok {
			break
		}
		order = append(order, s.X)
	}
	assert.Equal(t, []int{2, 1, 3, 0}, order)
	assert.True(t, q.empty())
}

func TestOpenListDiscardsStaleEntries(t *testing.T) {
	q := newOpenList()
	c := Coord{X: 5, Y: 5}
	q.push(State{Coord: c, Key: Key{1, 1}})
	q.push(State{Coord: Coord{X: 1}, Key: Key{2, 2}})
	// reinserting c makes the first entry stale
	q.push(State{Coord: c, Key: Key{3, 3}})

	assert.Equal(t, 3, q.len())
	assert.Equal(t, 2, q.queued())

	s, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, Coord{X: 1}, s.Coord)

	s, ok = q.pop()
	require.True(t, ok)
	assert.Equal(t, c, s.Coord)
	assert.Equal(t, Key{3, 3}, s.Key)

	_, ok = q.pop()
	assert.False(t, ok)
}

func TestOpenListPoppedCellIsNoLongerQueued(t *testing.T) {
	q := newOpenList()
	c := Coord{X: 1, Y: 1}
	q.push(State{Coord: c, Key: Key{1, 1}})
	q.push(State{Coord: c, Key: Key{1, 1}})

	_, ok := q.pop()
	require.True(t, ok)
	assert.False(t, q.valid(State{Coord: c, Key: Key{1, 1}}))

	// the duplicate is discarded and the list runs out
	_, ok = q.pop()
	assert.False(t, ok)
	assert.True(t, q.empty())
	assert.Zero(t, q.queued())
}
