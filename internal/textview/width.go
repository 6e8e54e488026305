package textview

import (
	"strings"

	"golang.org/x/text/width"
)

const ellipsis = "…"

// runeCells returns how many terminal cells r occupies.
func runeCells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// CellWidth returns the display width of s in terminal cells.
func CellWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeCells(r)
	}
	return n
}

// Truncate shortens s to at most cells terminal cells, ending with an
// ellipsis when anything was cut. cells <= 0 means no limit.
func Truncate(s string, cells int) string {
	if cells <= 0 || CellWidth(s) <= cells {
		return s
	}
	if cells == 1 {
		return ellipsis
	}

	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runeCells(r)
		if used+w > cells-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString(ellipsis)
	return b.String()
}
