package reconcile

// Diff returns the absolute difference between the two sides of p.
func (p Pair) Diff() int {
	return max(p.Left, p.Right) - min(p.Left, p.Right)
}

// TotalDiff sums Diff over pairs.
func TotalDiff(pairs []Pair) int {
	total := 0
	for _, p := range pairs {
		total += p.Diff()
	}
	return total
}
