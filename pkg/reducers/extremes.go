package reducers

// Number matches the built in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ordered matches the types with a total order under <.
type Ordered interface {
	Number | ~string
}

// Sum totals the elements of a numeric sequence.
type Sum[E Number] struct{}

func (Sum[E]) Init() E {
	var zero E
	return zero
}

func (Sum[E]) Fold(acc E, item E) E {
	return acc + item
}

// Min tracks the smallest element seen.
type Min[E Ordered] struct{}

func (Min[E]) Init() Latest[E] {
	return Latest[E]{}
}

func (Min[E]) Fold(acc Latest[E], item E) Latest[E] {
	if !acc.Seen || item < acc.Item {
		return Latest[E]{Item: item, Seen: true}
	}
	return acc
}

// Max tracks the largest element seen.
type Max[E Ordered] struct{}

func (Max[E]) Init() Latest[E] {
	return Latest[E]{}
}

func (Max[E]) Fold(acc Latest[E], item E) Latest[E] {
	if !acc.Seen || item > acc.Item {
		return Latest[E]{Item: item, Seen: true}
	}
	return acc
}
