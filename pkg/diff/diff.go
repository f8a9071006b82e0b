// Package diff renders line diffs between expected and actual file content.
package diff

import (
	"strings"

	"github.com/kylelemons/godebug/diff"
)

// Text returns the lines that turn got into want, or "" when they match.
// Unchanged lines are dropped.
func Text(want, got string) string {
	if want == got {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("to convert ACTUAL ⏩️ EXPECTED:\n")
	for _, line := range strings.Split(diff.Diff(got, want), "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			sb.WriteString("➖" + line[1:] + "\n")
		case strings.HasPrefix(line, "+"):
			sb.WriteString("➕" + line[1:] + "\n")
		}
	}
	return sb.String()
}
