package reconcile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sample = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3"

var reference = ParseOptions{Separator: "   "}

func TestParseColumns(t *testing.T) {
	t.Run("Sample", func(t *testing.T) {
		c := ParseColumns(sample, reference)
		if !reflect.DeepEqual(c.Left, []int{3, 4, 2, 1, 3, 3}) {
			t.Errorf("Unexpected left column %v", c.Left)
		}
		if !reflect.DeepEqual(c.Right, []int{4, 3, 5, 3, 9, 3}) {
			t.Errorf("Unexpected right column %v", c.Right)
		}
	})

	tests := []struct {
		name  string
		raw   string
		opts  ParseOptions
		left  []int
		right []int
	}{
		{"ZeroLeftDropsLine", "0   5\n2   7", reference, []int{2}, []int{7}},
		{"ZeroRightDropsLine", "5   0\n2   7", reference, []int{2}, []int{7}},
		{"KeepZero", "0   5\n5   0", ParseOptions{Separator: "   ", KeepZero: true}, []int{0, 5}, []int{5, 0}},
		{"NonNumeric", "a   5\n2   b\n2   7", reference, []int{2}, []int{7}},
		{"MissingField", "5\n\n2   7\n", reference, []int{2}, []int{7}},
		{"SingleSpaceNotSplit", "5 6\n2   7", reference, []int{2}, []int{7}},
		{"ExtraFieldsIgnored", "1   2   3", reference, []int{1}, []int{2}},
		{"FourSpacesTrimmed", "1    2", reference, []int{1}, []int{2}},
		{"SixSpacesEmptyField", "1      2", reference, nil, nil},
		{"CRLF", "1   2\r\n3   4\r\n", reference, []int{1, 3}, []int{2, 4}},
		{"Negative", "-1   2", reference, []int{-1}, []int{2}},
		{"AnyWhitespace", "1 2\n3\t\t4\n  5    6  ", ParseOptions{}, []int{1, 3, 5}, []int{2, 4, 6}},
		{"AnyWhitespaceStillDropsZero", "0 2\n3 4", ParseOptions{}, []int{3}, []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseColumns(tt.raw, tt.opts)
			if !reflect.DeepEqual(c.Left, tt.left) {
				t.Errorf("Expected left %v, got %v", tt.left, c.Left)
			}
			if !reflect.DeepEqual(c.Right, tt.right) {
				t.Errorf("Expected right %v, got %v", tt.right, c.Right)
			}
		})
	}
}

func TestReadColumns(t *testing.T) {
	t.Run("Testdata", func(t *testing.T) {
		c, err := ReadColumns(filepath.Join("testdata", "numbers-2.txt"), reference)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(c.Left) != 6 || len(c.Right) != 6 {
			t.Errorf("Expected 6 rows, got %d and %d", len(c.Left), len(c.Right))
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := ReadColumns(filepath.Join(t.TempDir(), "nope.txt"), reference)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected not-exist error, got %v", err)
		}
	})
}
