package dstarlite

import "container/heap"

// stateHeap implements heap.Interface ordered by State.Less.
type stateHeap []State

func (h stateHeap) Len() int           { return len(h) }
func (h stateHeap) Less(i, j int) bool { return h[i].Less(h[j]) }
func (h stateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x interface{}) {
	*h = append(*h, x.(State))
}

func (h *stateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// openList is a min-priority queue of states with lazy deletion.
//
// Re-inserting a cell does not remove its older entries. Instead the
// freshness index remembers the fingerprint of the newest key per cell,
// and pop discards any entry whose key no longer matches.
type openList struct {
	heap  stateHeap
	fresh map[Coord]float64
}

func newOpenList() *openList {
	return &openList{
		heap:  make(stateHeap, 0),
		fresh: make(map[Coord]float64),
	}
}

// push queues s and makes it the only valid entry for its cell.
func (q *openList) push(s State) {
	q.fresh[s.Coord] = s.Key.fingerprint()
	heap.Push(&q.heap, s)
}

// empty reports whether no entries, stale or not, remain.
func (q *openList) empty() bool {
	return q.heap.Len() == 0
}

// peek returns the smallest entry without validating it. The list must
// not be empty.
func (q *openList) peek() State {
	return q.heap[0]
}

// valid reports whether s is the newest entry queued for its cell.
func (q *openList) valid(s State) bool {
	fp, ok := q.fresh[s.Coord]
	if !ok {
		return false
	}
	return approxEqual(s.Key.fingerprint(), fp)
}

// pop removes and returns the smallest valid entry, discarding stale
// entries on the way. The cell is no longer considered queued afterwards.
// ok is false if the list ran out.
func (q *openList) pop() (s State, ok bool) {
	for q.heap.Len() > 0 {
		s = heap.Pop(&q.heap).(State)
		if !q.valid(s) {
			continue
		}
		delete(q.fresh, s.Coord)
		return s, true
	}
	return State{}, false
}

// len returns the number of entries including stale ones.
func (q *openList) len() int {
	return q.heap.Len()
}

// queued returns the number of cells with a valid entry.
func (q *openList) queued() int {
	return len(q.fresh)
}
