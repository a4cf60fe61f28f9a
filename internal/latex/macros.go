package latex

import (
	"regexp"
	"strconv"
)

// Table maps a macro name to its declared argument count.
type Table map[string]int

// defPattern matches \newcommand and \renewcommand definition headers:
// the command name in braces, then an optional bracketed argument count.
// Names follow the LaTeX convention of letters plus '@' for internal
// style-file macros.
var defPattern = regexp.MustCompile(`\\(?:re)?newcommand\s*\{\s*\\([A-Za-z@]+)\s*\}\s*(?:\[\s*(\d+)\s*\])?`)

// ExtractMacros scans LaTeX source for macro definition headers and
// returns a table of name to argument count. Comments are stripped
// first. A definition without a bracketed count takes zero arguments.
// If a name is defined more than once, the last definition in source
// order wins; collisions are not reported.
func ExtractMacros(src string) Table {
	cleaned := StripComments(src)

	table := make(Table)
	for _, m := range defPattern.FindAllStringSubmatch(cleaned, -1) {
		name := m[1]
		count := 0
		if m[2] != "" {
			// \d+ already guarantees a valid non-negative integer.
			count, _ = strconv.Atoi(m[2])
		}
		table[name] = count
	}
	return table
}

// Arity returns the declared argument count for name and whether the
// macro is defined.
func (t Table) Arity(name string) (int, bool) {
	n, ok := t[name]
	return n, ok
}

// Has reports whether name is defined in the table.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}
