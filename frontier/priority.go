package frontier

import "container/heap"

// PriorityQueue is a min-heap of items ordered by a float64 key.
//
// Ties are broken by insertion order: of two entries with the same key, the
// one pushed first pops first. Superseded entries are never removed; callers
// that need decrease-key push a fresh entry and skip the stale one on Pop
// (lazy deletion).
type PriorityQueue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// Keyed pairs an item with its priority key, for seeding a PriorityQueue.
type Keyed[T any] struct {
	Key  float64
	Item T
}

// NewPriorityQueue returns a queue holding the given keyed items.
func NewPriorityQueue[T any](items ...Keyed[T]) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{h: make(entryHeap[T], 0, len(items))}
	for _, it := range items {
		pq.h = append(pq.h, &entry[T]{key: it.Key, seq: pq.seq, item: it.Item})
		pq.seq++
	}
	heap.Init(&pq.h)

	return pq
}

// Push adds item with the given key.
// Complexity: O(log n).
func (pq *PriorityQueue[T]) Push(key float64, item T) {
	heap.Push(&pq.h, &entry[T]{key: key, seq: pq.seq, item: item})
	pq.seq++
}

// Pop removes and returns the lowest-keyed item. ok is false when the queue is empty.
// Complexity: O(log n).
func (pq *PriorityQueue[T]) Pop() (key float64, item T, ok bool) {
	if len(pq.h) == 0 {
		return 0, item, false
	}
	e := heap.Pop(&pq.h).(*entry[T])

	return e.key, e.item, true
}

// Peek returns the lowest-keyed item without removing it.
func (pq *PriorityQueue[T]) Peek() (key float64, item T, ok bool) {
	if len(pq.h) == 0 {
		return 0, item, false
	}

	return pq.h[0].key, pq.h[0].item, true
}

// Len returns the number of entries, stale ones included.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h) }

// entry is one heap slot. seq is the insertion counter used for tie-breaking.
type entry[T any] struct {
	key  float64
	seq  uint64
	item T
}

// entryHeap implements heap.Interface ordered by (key, seq).
type entryHeap[T any] []*entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be *entry[T].
func (h *entryHeap[T]) Push(x interface{}) { *h = append(*h, x.(*entry[T])) }

// Pop is called by heap.Pop and returns the last slot.
func (h *entryHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}
