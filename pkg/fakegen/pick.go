package fakegen

import (
	"fmt"
	"math"
)

// Pick returns a uniformly chosen element of items.
func Pick[T any](items []T, r Source) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pick from empty collection", ErrInvalidInput)
	}
	return items[r.IntN(len(items))], nil
}

// MustPick is Pick for collections validated up front. It panics on an
// empty collection.
func MustPick[T any](items []T, r Source) T {
	v, err := Pick(items, r)
	if err != nil {
		panic(err)
	}
	return v
}

// Weighted pairs a value with a selection weight
type Weighted[T any] struct {
	Value  T
	Weight int
}

// PickWeighted chooses a value with probability proportional to its weight,
// using a single IntN draw over the total weight.
func PickWeighted[T any](items []Weighted[T], r Source) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: weighted pick from empty collection", ErrInvalidInput)
	}

	total := 0
	for i, item := range items {
		if item.Weight <= 0 {
			return zero, fmt.Errorf("%w: weight at index %d is %d, must be positive", ErrInvalidInput, i, item.Weight)
		}
		if total > math.MaxInt-item.Weight {
			return zero, fmt.Errorf("%w: total weight overflows at index %d", ErrInvalidInput, i)
		}
		total += item.Weight
	}

	n := r.IntN(total)
	for _, item := range items {
		if n < item.Weight {
			return item.Value, nil
		}
		n -= item.Weight
	}
	panic("unreachable")
}
