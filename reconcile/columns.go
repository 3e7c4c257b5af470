package reconcile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseOptions controls how a line is split and which values count as present.
type ParseOptions struct {
	// Separator between the two fields. Empty splits on any whitespace.
	Separator string

	// KeepZero treats 0 as a valid value. When false a zero field is
	// indistinguishable from a missing one and drops the whole line.
	KeepZero bool
}

// Columns holds the left and right lists in file order.
type Columns struct {
	Left  []int
	Right []int
}

// present reports whether v counts as a value under opts.
func (o ParseOptions) present(v int) bool {
	return o.KeepZero || v != 0
}

// ReadColumns reads path and parses it with ParseColumns.
func ReadColumns(path string, opts ParseOptions) (Columns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Columns{}, fmt.Errorf("cannot read input %s: %w", path, err)
	}
	return ParseColumns(string(data), opts), nil
}

// ParseColumns splits raw into lines and each line into two integers. A line
// with a missing or non-numeric field is dropped from both columns, as is one
// holding a zero unless opts.KeepZero is set.
func ParseColumns(raw string, opts ParseOptions) Columns {
	var c Columns
	for _, line := range strings.Split(raw, "\n") {
		var fields []string
		if opts.Separator == "" {
			fields = strings.Fields(line)
		} else {
			fields = strings.Split(line, opts.Separator)
		}
		if len(fields) < 2 {
			continue
		}

		left, ok := parseField(fields[0])
		if !ok || !opts.present(left) {
			continue
		}
		right, ok := parseField(fields[1])
		if !ok || !opts.present(right) {
			continue
		}
		c.Left = append(c.Left, left)
		c.Right = append(c.Right, right)
	}
	return c
}

func parseField(s string) (int, bool) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return d, true
}
