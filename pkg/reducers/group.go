package reducers

// GroupCount tallies elements by a caller supplied key.
type GroupCount[E any, K comparable] struct {
	Key func(E) K
}

func (g GroupCount[E, K]) Init() map[K]int {
	return make(map[K]int)
}

func (g GroupCount[E, K]) Fold(acc map[K]int, item E) map[K]int {
	acc[g.Key(item)]++
	return acc
}
