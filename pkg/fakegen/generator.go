// Package fakegen is the generation engine: a Generator lazily produces a
// value from a caller-supplied Source, and a Mutator turns one Generator
// into another. Nothing here holds global randomness, so a fixed seed
// always yields the same output.
package fakegen

import (
	"strings"
)

// Generator produces a value of type T from r. Building a Generator does no
// work; only calling it consumes randomness. Composite generators must
// invoke their parts in a fixed order so a given seed is reproducible.
type Generator[T any] func(r Source) (T, error)

// Generate invokes the generator
func (g Generator[T]) Generate(r Source) (T, error) {
	return g(r)
}

// Must invokes the generator and panics on error.
func (g Generator[T]) Must(r Source) T {
	v, err := g(r)
	if err != nil {
		panic(err)
	}
	return v
}

// Const always yields v and draws nothing.
func Const[T any](v T) Generator[T] {
	return func(Source) (T, error) {
		return v, nil
	}
}

// OneOf picks uniformly from items on every call.
func OneOf[T any](items ...T) Generator[T] {
	return func(r Source) (T, error) {
		return Pick(items, r)
	}
}

// Weights picks from items proportionally to their weights on every call.
func Weights[T any](items ...Weighted[T]) Generator[T] {
	return func(r Source) (T, error) {
		return PickWeighted(items, r)
	}
}

// Numerified numerifies pattern on every call
func Numerified(pattern string) Generator[string] {
	return func(r Source) (string, error) {
		return Numerify(pattern, r), nil
	}
}

// Letterified letterifies pattern on every call
func Letterified(pattern string, upper bool) Generator[string] {
	return func(r Source) (string, error) {
		return Letterify(pattern, r, upper), nil
	}
}

// Bothified bothifies pattern on every call
func Bothified(pattern string) Generator[string] {
	return func(r Source) (string, error) {
		return Bothify(pattern, r), nil
	}
}

// Map derives a generator whose value is f applied to g's value.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return func(r Source) (B, error) {
		a, err := g(r)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// Join runs gens in argument order and joins their values with sep.
func Join(sep string, gens ...Generator[string]) Generator[string] {
	return func(r Source) (string, error) {
		parts := make([]string, 0, len(gens))
		for _, g := range gens {
			v, err := g(r)
			if err != nil {
				return "", err
			}
			parts = append(parts, v)
		}
		return strings.Join(parts, sep), nil
	}
}

// Repeat collects n values of g in draw order.
func Repeat[T any](g Generator[T], n int) Generator[[]T] {
	return func(r Source) ([]T, error) {
		out := make([]T, 0, n)
		for range n {
			v, err := g(r)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}
