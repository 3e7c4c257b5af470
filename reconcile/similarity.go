package reconcile

// SimilarityScore adds, for every left value v, v times the number of
// occurrences of v in the right column. Zero never contributes.
func SimilarityScore(c Columns) int {
	freq := make(map[int]int, len(c.Right))
	for _, v := range c.Right {
		freq[v]++
	}

	score := 0
	for _, v := range c.Left {
		score += v * freq[v]
	}
	return score
}
