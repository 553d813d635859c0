package frontier

import "math/rand"

// DefaultSeed is the seed used when a caller supplies no generator or a zero seed.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// The result is not goroutine-safe; give every run its own generator.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomList pops a uniformly random element of its current contents.
type RandomList[T any] struct {
	items []T
	rng   *rand.Rand
}

// NewRandomList returns a list drawing from rng and holding items.
// A nil rng is replaced by NewRand(0).
func NewRandomList[T any](rng *rand.Rand, items ...T) *RandomList[T] {
	if rng == nil {
		rng = NewRand(0)
	}
	l := &RandomList[T]{items: make([]T, 0, len(items)), rng: rng}
	l.items = append(l.items, items...)

	return l
}

// Push appends item.
func (l *RandomList[T]) Push(item T) { l.items = append(l.items, item) }

// Pop removes and returns an element chosen uniformly at random.
// The chosen slot is swapped with the last one and the list shrinks by one.
// Complexity: O(1).
func (l *RandomList[T]) Pop() (item T, ok bool) {
	n := len(l.items)
	if n == 0 {
		return item, false
	}
	i := l.rng.Intn(n)
	l.items[i], l.items[n-1] = l.items[n-1], l.items[i]
	item = l.items[n-1]

	var zero T
	l.items[n-1] = zero
	l.items = l.items[:n-1]

	return item, true
}

// Len returns the number of held elements.
func (l *RandomList[T]) Len() int { return len(l.items) }
