package reconcile

import "sort"

// Pair is the i-th smallest left value matched with the i-th smallest right
// value. It is a match by rank, not by original row.
type Pair struct {
	Left  int
	Right int
}

// SortedPairs sorts copies of both columns ascending and zips them by index.
// Indices with no right value are skipped, as are zero values unless
// opts.KeepZero is set. c is not modified.
func SortedPairs(c Columns, opts ParseOptions) []Pair {
	left := sortedCopy(c.Left)
	right := sortedCopy(c.Right)

	pairs := make([]Pair, 0, min(len(left), len(right)))
	for i, l := range left {
		if i >= len(right) {
			break
		}
		r := right[i]
		if !opts.present(l) || !opts.present(r) {
			continue
		}
		pairs = append(pairs, Pair{Left: l, Right: r})
	}
	return pairs
}

func sortedCopy(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	sort.Ints(out)
	return out
}
