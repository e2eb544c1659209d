// Package libdiff computes line diffs between texts.
package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Strings gives a line diff from one text to another, each line prefixed
// with "-", "+" or " ".  It is empty when the texts are equal.
func Strings(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range splitLines(diff.Text) {
			buf.WriteString(prefix)
			buf.WriteString(ln)
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// Colored colors the deleted and inserted lines of a diff made by Strings.
func Colored(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	for i, ln := range lines {
		switch {
		case strings.HasPrefix(ln, "-"):
			lines[i] = color.RedString("%s", strings.TrimSuffix(ln, "\n")) + "\n"
		case strings.HasPrefix(ln, "+"):
			lines[i] = color.GreenString("%s", strings.TrimSuffix(ln, "\n")) + "\n"
		}
	}
	return strings.Join(lines, "")
}
