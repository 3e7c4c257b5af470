package reconcile

import (
	"errors"
	"fmt"
	"io"

	"github.com/dkooll/gophx/pairup/config"
)

// Result carries the two values a run writes out.
type Result struct {
	TotalDiff       int
	SimilarityScore int
}

// Run computes the total diff and the similarity score for cfg.Input and
// writes each to its output file, reporting on w. The input is read once per
// metric.
func Run(w io.Writer, cfg *config.Config) (Result, error) {
	opts := ParseOptions{
		Separator: cfg.Separator,
		KeepZero:  cfg.KeepZero,
	}

	var res Result

	lr := NewListReconciler(opts)
	if err := load(lr, cfg.Input, opts); err != nil {
		return res, err
	}
	lr.SortLists()
	lr.ComputeDifferences()
	res.TotalDiff = lr.TotalDiff
	if err := WriteValue(w, cfg.TotalDiffOutput, res.TotalDiff); err != nil {
		return res, err
	}

	lr = NewListReconciler(opts)
	if err := load(lr, cfg.Input, opts); err != nil {
		return res, err
	}
	lr.ComputeSimilarity()
	res.SimilarityScore = lr.SimilarityScore
	if err := WriteValue(w, cfg.SimilarityOutput, res.SimilarityScore); err != nil {
		return res, err
	}

	return res, nil
}

// load reads path into lr. An input with no usable rows still reconciles to 0.
func load(lr ListReconciler, path string, opts ParseOptions) error {
	c, err := ReadColumns(path, opts)
	if err != nil {
		return err
	}
	lr.SetInputs(c)
	if err := lr.ValidateInputs(); err != nil && !errors.Is(err, ErrNoRows) {
		return fmt.Errorf("invalid input %s: %w", path, err)
	}
	return nil
}
