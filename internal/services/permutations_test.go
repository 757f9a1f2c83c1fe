package services

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(items []string) [][]string {
	var out [][]string
	for p := range Permutations(items) {
		out = append(out, slices.Clone(p))
	}
	return out
}

func TestPermutationsCountAndUniqueness(t *testing.T) {
	factorial := []int{1, 1, 2, 6, 24, 120, 720}

	for n := 0; n <= 6; n++ {
		items := make([]string, n)
		for i := range items {
			items[i] = string(rune('a' + i))
		}

		perms := collect(items)
		require.Len(t, perms, factorial[n], "n=%d", n)

		seen := make(map[string]struct{}, len(perms))
		for _, p := range perms {
			require.Len(t, p, n)
			require.ElementsMatch(t, items, p, "ordering %v is not a permutation", p)

			key := strings.Join(p, "")
			_, dup := seen[key]
			require.False(t, dup, "duplicate ordering %q", key)
			seen[key] = struct{}{}
		}
	}
}

func TestPermutationsFirstIsInputOrderAndInputUntouched(t *testing.T) {
	items := []string{"x", "y", "z"}
	perms := collect(items)

	require.Equal(t, []string{"x", "y", "z"}, perms[0])
	require.Equal(t, []string{"x", "y", "z"}, items)
}

func TestPermutationsStopEarly(t *testing.T) {
	count := 0
	for range Permutations([]int{1, 2, 3, 4}) {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}
