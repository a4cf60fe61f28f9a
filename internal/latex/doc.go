// Package latex extracts macro definitions from LaTeX source.
//
// The package deliberately does not parse LaTeX. It performs a single
// linear scan over the text looking for \newcommand and \renewcommand
// definition headers, after removing line comments. Macro bodies are
// never inspected, nested braces are not tracked, and anything that
// does not look like a definition header is ignored.
//
// This is enough for its one job: reading a style file and reporting
// which custom commands it defines and how many arguments each takes.
package latex
