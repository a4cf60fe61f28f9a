package latex

import "strings"

// StripComments removes LaTeX line comments from text. Each line is
// truncated at the first '%' that is not preceded by a backslash; the
// rest of the line is discarded. Line structure is otherwise preserved,
// so stripping is idempotent.
func StripComments(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	return strings.Join(lines, "\n")
}

// stripLineComment truncates a single line at its comment marker.
// An escaped marker (\%) is literal text and does not start a comment.
func stripLineComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '%' && (i == 0 || line[i-1] != '\\') {
			return line[:i]
		}
	}
	return line
}
