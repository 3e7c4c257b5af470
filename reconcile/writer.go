package reconcile

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteValue overwrites path with the decimal form of val and reports it on w.
func WriteValue(w io.Writer, path string, val int) error {
	if err := os.WriteFile(path, []byte(strconv.Itoa(val)), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	fmt.Fprintf(w, "The file has been saved with the number %d!\n", val)
	return nil
}
