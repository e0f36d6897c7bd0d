package reduce

// A Control carries the outcome of a single reduction step: either
// carry on with an updated accumulator, or stop with a final payload.
// Once a step signals stop, no further elements reach the reducer,
// although the rest of the sequence is still decoded (see [Drive]).
type Control[B, A any] struct {
	brk  B
	acc  A
	stop bool
}

// Continue returns a signal carrying the accumulator for the next
// step. The stop payload type cannot be inferred from the argument, so
// it is usually named explicitly:
//
//	Continue[string](acc)
func Continue[B, A any](acc A) Control[B, A] {
	return Control[B, A]{acc: acc}
}

// Stop returns a signal which ends the reduction with the given
// payload. The accumulator type cannot be inferred from the argument,
// so it is usually named explicitly:
//
//	Stop[int]("over budget")
//
// Note the resulting type is Control[B, A] even though Stop names A
// first: the inferred argument always comes last.
func Stop[A, B any](brk B) Control[B, A] {
	return Control[B, A]{brk: brk, stop: true}
}

// IsStop reports whether the signal ends the reduction early.
func (c Control[B, A]) IsStop() bool {
	return c.stop
}

// Acc returns the accumulator carried by a continue signal. It is only
// meaningful when IsStop reports false.
func (c Control[B, A]) Acc() A {
	return c.acc
}

// Brk returns the payload carried by a stop signal. It is only
// meaningful when IsStop reports true.
func (c Control[B, A]) Brk() B {
	return c.brk
}

// Never is the stop payload type for reductions which have no early
// exit. A stop signal carrying Never indicates a defect in a reducer,
// not bad input, and is reported by panicking.
type Never struct{}
