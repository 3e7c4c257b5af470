package reconcile

import "errors"

var (
	// ErrNoRows indicates no line survived parsing
	ErrNoRows = errors.New("no rows to reconcile")

	// ErrLengthMismatch indicates the left and right lists differ in length
	ErrLengthMismatch = errors.New("left and right lists must have the same length")
)
