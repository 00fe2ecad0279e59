package fakegen

// Mutator maps one generator into another. Unless its name and doc say
// otherwise, a mutator draws nothing beyond what the wrapped generator draws.
type Mutator[A, B any] func(Generator[A]) Generator[B]

// Mutate applies m to g
func Mutate[A, B any](g Generator[A], m Mutator[A, B]) Generator[B] {
	return m(g)
}

// Chain composes first and then second, so that
// Mutate(g, Chain(m1, m2)) behaves as Mutate(Mutate(g, m1), m2).
func Chain[A, B, C any](first Mutator[A, B], second Mutator[B, C]) Mutator[A, C] {
	return func(g Generator[A]) Generator[C] {
		return second(first(g))
	}
}

// Transform lifts a pure function into a Mutator.
func Transform[A, B any](f func(A) B) Mutator[A, B] {
	return func(g Generator[A]) Generator[B] {
		return Map(g, f)
	}
}
