package dijkstra

import "container/heap"

// frontier is the priority queue the runner pops vertices from, keyed by
// tentative distance.
type frontier interface {
	// push offers v with tentative distance d.
	push(v int, d int64)
	// pop removes and returns the entry with the smallest distance.
	pop() (v int, d int64)
	// len returns the number of queued entries.
	len() int
}

// newFrontier returns the queue selected by kind, sized for n vertices.
func newFrontier(kind QueueKind, n int) frontier {
	if kind == QueueIndexed {
		pos := make([]int, n)
		for v := range pos {
			pos[v] = absent
		}

		return &indexedQueue{pq: indexedPQ{items: make([]nodeItem, 0, n), pos: pos}}
	}
	q := &lazyQueue{pq: make(nodePQ, 0, n)}
	heap.Init(&q.pq)

	return q
}

// lazyQueue is a container/heap binary heap that keeps outdated entries:
// a vertex may be queued several times with decreasing distances.
type lazyQueue struct {
	pq nodePQ
}

func (q *lazyQueue) push(v int, d int64) { heap.Push(&q.pq, nodeItem{id: v, dist: d}) }

func (q *lazyQueue) pop() (int, int64) {
	item := heap.Pop(&q.pq).(nodeItem)

	return item.id, item.dist
}

func (q *lazyQueue) len() int { return q.pq.Len() }

// indexedQueue holds at most one entry per vertex; pushing a queued vertex
// again updates its key in place.
type indexedQueue struct {
	pq indexedPQ
}

func (q *indexedQueue) push(v int, d int64) {
	if i := q.pq.pos[v]; i != absent {
		q.pq.items[i].dist = d
		heap.Fix(&q.pq, i)
		return
	}
	heap.Push(&q.pq, nodeItem{id: v, dist: d})
}

func (q *indexedQueue) pop() (int, int64) {
	item := heap.Pop(&q.pq).(nodeItem)

	return item.id, item.dist
}

func (q *indexedQueue) len() int { return q.pq.Len() }

// absent marks a vertex that is not in an indexedPQ.
const absent = -1

// indexedPQ is a min-heap of nodeItem that tracks where each vertex sits,
// so a queued vertex can be found and re-keyed in O(log N).
type indexedPQ struct {
	items []nodeItem
	pos   []int // pos[v] = index of v in items, or absent
}

// Len returns the number of items in the heap.
func (pq indexedPQ) Len() int { return len(pq.items) }

// Less defines the comparison: smaller dist → higher priority.
func (pq indexedPQ) Less(i, j int) bool { return pq.items[i].dist < pq.items[j].dist }

// Swap swaps two elements and keeps pos in step.
func (pq indexedPQ) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.pos[pq.items[i].id] = i
	pq.pos[pq.items[j].id] = j
}

// Push appends x and records its position.
// Called by heap.Push; x must be of type nodeItem.
func (pq *indexedPQ) Push(x interface{}) {
	item := x.(nodeItem)
	pq.pos[item.id] = len(pq.items)
	pq.items = append(pq.items, item)
}

// Pop removes the last element and marks its vertex absent.
// Called by heap.Pop after moving the minimum there.
func (pq *indexedPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]
	pq.pos[item.id] = absent

	return item
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element of the backing slice.
// Called by heap.Pop after moving the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
