// Package flip rotates text and digests the rotated result.
package flip

import (
	"fmt"
	"io"
	"strings"

	"github.com/alvarorichard/fliphash/internal/digest"
)

// Placeholder fills cells whose source index falls outside the text.
const Placeholder = "$"

// Rotate shifts the characters of data right by n. Shifts larger than the
// length wrap around; a source index below zero wraps once from the end,
// and one past the end (negative shifts) becomes Placeholder.
func Rotate(data string, n int) []string {
	chars := []rune(data)
	length := len(chars)
	if length == 0 {
		return nil
	}
	for n > length {
		n -= length
	}

	cells := make([]string, length)
	for i := range cells {
		j := i - n
		if j < 0 {
			j += length
		}
		if j < 0 || j >= length {
			cells[i] = Placeholder
			continue
		}
		cells[i] = string(chars[j])
	}
	return cells
}

// Flip writes the rotated cells of data space separated to w and returns
// the MD5 hex of the cells joined together.
func Flip(w io.Writer, data string, n int) string {
	cells := Rotate(data, n)
	_, _ = fmt.Fprintln(w, strings.Join(cells, " "))
	return digest.MD5Hex(strings.Join(cells, ""))
}
