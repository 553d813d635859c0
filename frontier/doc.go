// Package frontier provides the generic pending-work containers used by the
// search strategies: a key-ordered priority queue, a FIFO queue, a LIFO stack
// and a list that pops a uniformly random element.
//
// What
//
//   - PriorityQueue[T]: Push(key, item); Pop returns the item with the lowest key.
//     Equal keys pop in insertion order, so runs are reproducible.
//   - Queue[T]:         Push appends; Pop removes from the front.
//   - Stack[T]:         Push appends; Pop and Peek operate on the back.
//   - RandomList[T]:    Push appends; Pop removes a uniformly random element
//     in O(1) by swapping it with the last one.
//
// None of the containers is safe for concurrent use. A search run owns its
// frontier exclusively.
//
// Complexity
//
//   - PriorityQueue: Push/Pop O(log n), Peek O(1).
//   - Queue, Stack, RandomList: amortized O(1) for every operation.
//
// Determinism
//
//	RandomList draws from a *rand.Rand. NewRandomList(nil) uses a fixed
//	default seed, so two runs built the same way pop in the same order.
package frontier
