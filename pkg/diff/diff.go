// Package diff summarises line changes between two revisions of a deck file.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 200
	truncateMessage = "... (diff truncated) ..."
)

// Summary counts changed lines and carries a unified-style rendering of them.
type Summary struct {
	Added   int
	Removed int
	Text    string
}

// Changed reports whether the two revisions differ.
func (s Summary) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Lines diffs before and after line by line. Unchanged lines are kept as context.
func Lines(before, after []byte, label string) Summary {
	if bytes.Equal(before, after) {
		return Summary{}
	}

	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	var (
		sum   Summary
		buf   strings.Builder
		lines int
	)
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", label, label)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				sum.Added++
			case diffmatchpatch.DiffDelete:
				sum.Removed++
			}
			if lines < maxDiffLines {
				buf.WriteString(prefix)
				buf.WriteString(line)
				buf.WriteString("\n")
			} else if lines == maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteString("\n")
			}
			lines++
		}
	}

	sum.Text = buf.String()
	return sum
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
