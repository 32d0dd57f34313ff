// Package diff renders line-oriented differences between two text documents.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Result holds a rendered diff and its change counts.
type Result struct {
	Text    string
	Added   int
	Removed int
}

// Empty reports whether the documents were identical.
func (r Result) Empty() bool {
	return r.Added == 0 && r.Removed == 0
}

// Lines compares before and after line by line. Unchanged lines are kept as
// context and prefixed with a space; removed lines get "-" and added lines "+".
func Lines(before, after []byte, beforeLabel, afterLabel string) Result {
	if bytes.Equal(before, after) {
		return Result{}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var (
		buf    bytes.Buffer
		result Result
		count  int
	)
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeLabel, afterLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				result.Removed++
			case diffmatchpatch.DiffInsert:
				result.Added++
			}
			if count == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
			}
			count++
			if count > maxDiffLines {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}

	result.Text = buf.String()
	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
