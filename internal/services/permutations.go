package services

import "iter"

// Permutations yields every ordering of items exactly once using the
// iterative form of Heap's algorithm. An empty input yields one empty
// ordering.
//
// The yielded slice is reused between iterations; callers that keep an
// ordering must copy it. items itself is not modified.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		perm := append([]T(nil), items...)
		if !yield(perm) {
			return
		}

		n := len(perm)
		c := make([]int, n)
		for i := 1; i < n; {
			if c[i] < i {
				if i%2 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[c[i]], perm[i] = perm[i], perm[c[i]]
				}
				if !yield(perm) {
					return
				}
				c[i]++
				i = 1
				continue
			}
			c[i] = 0
			i++
		}
	}
}
