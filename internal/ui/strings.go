package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// clipBlock truncates every line of s to width cells and keeps at most
// height lines. A non-positive height keeps every line.
func clipBlock(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}

// cutBlock returns the columns [left, left+width) of every line in s.
func cutBlock(s string, left, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, left+width)
	}
	return strings.Join(lines, "\n")
}

// blockWidth returns the widest line of s in cells.
func blockWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

// pluralize picks the singular or plural noun for n.
func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
