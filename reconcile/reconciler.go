package reconcile

// ListReconciler walks a pair of lists through the reconciliation steps.
type ListReconciler interface {
	SetInputs(c Columns)
	ValidateInputs() error
	SortLists()
	ComputeDifferences()
	ComputeSimilarity()
}

type ListReconcilerImpl struct {
	Options ParseOptions

	Inputs          Columns
	Pairs           []Pair
	Diffs           []int
	TotalDiff       int
	SimilarityScore int
}

func NewListReconciler(opts ParseOptions) *ListReconcilerImpl {
	return &ListReconcilerImpl{Options: opts}
}

func (lr *ListReconcilerImpl) SetInputs(c Columns) {
	lr.Inputs = c
	lr.Pairs = nil
	lr.Diffs = nil
	lr.TotalDiff = 0
	lr.SimilarityScore = 0
}

func (lr *ListReconcilerImpl) ValidateInputs() error {
	if len(lr.Inputs.Left) != len(lr.Inputs.Right) {
		return ErrLengthMismatch
	}
	if len(lr.Inputs.Left) == 0 {
		return ErrNoRows
	}
	return nil
}

// SortLists pairs the lists by rank. Inputs keep their file order.
func (lr *ListReconcilerImpl) SortLists() {
	lr.Pairs = SortedPairs(lr.Inputs, lr.Options)
}

func (lr *ListReconcilerImpl) ComputeDifferences() {
	lr.Diffs = make([]int, len(lr.Pairs))
	for i, p := range lr.Pairs {
		lr.Diffs[i] = p.Diff()
	}
	lr.TotalDiff = TotalDiff(lr.Pairs)
}

func (lr *ListReconcilerImpl) ComputeSimilarity() {
	lr.SimilarityScore = SimilarityScore(lr.Inputs)
}
