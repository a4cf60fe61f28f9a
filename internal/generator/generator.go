// Package generator runs the full pipeline: read a LaTeX style file,
// extract its macro definitions, synthesize VS Code keybindings and
// snippets, write both JSON documents, and print a summary.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dshills/musegen/internal/keymap"
	"github.com/dshills/musegen/internal/latex"
	"github.com/dshills/musegen/internal/vscode"
)

// Output file names inside the output directory.
const (
	BindingsFile = "keybindings.json"
	SnippetsFile = "latex.json"
)

// Options configure a generation run.
type Options struct {
	// StylePath is the LaTeX style file to scan.
	StylePath string

	// OutDir is the directory the JSON documents are written to.
	OutDir string

	// Keymap is the command-to-key assignment table.
	Keymap keymap.Table

	// Stdout receives the run summary. Defaults to os.Stdout.
	Stdout io.Writer
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

// Run executes the pipeline once. Each run recomputes everything from
// the style file and fully overwrites both output files.
func Run(opts Options) error {
	src, err := os.ReadFile(opts.StylePath)
	if err != nil {
		return fmt.Errorf("reading style file %s: %w", opts.StylePath, err)
	}

	macros := latex.ExtractMacros(string(src))
	bindings, snippets := vscode.Generate(macros, opts.Keymap)

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", opts.OutDir, err)
	}

	bindingsPath := filepath.Join(opts.OutDir, BindingsFile)
	data, err := vscode.EncodeBindings(bindings)
	if err != nil {
		return fmt.Errorf("encoding bindings: %w", err)
	}
	if err := os.WriteFile(bindingsPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", bindingsPath, err)
	}

	snippetsPath := filepath.Join(opts.OutDir, SnippetsFile)
	data, err = snippets.Encode()
	if err != nil {
		return fmt.Errorf("encoding snippets: %w", err)
	}
	if err := os.WriteFile(snippetsPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", snippetsPath, err)
	}

	printSummary(opts.stdout(), bindingsPath, snippetsPath, macros, opts.Keymap)
	return nil
}

// printSummary lists the generated files and every table command found
// in the style file with its argument count.
func printSummary(w io.Writer, bindingsPath, snippetsPath string, macros latex.Table, table keymap.Table) {
	fmt.Fprintln(w, "Generated files:")
	fmt.Fprintf(w, "  - %s\n", bindingsPath)
	fmt.Fprintf(w, "  - %s\n", snippetsPath)

	fmt.Fprintln(w, "\nIncluded commands:")
	for _, a := range table {
		if arity, ok := macros.Arity(a.Command); ok {
			fmt.Fprintf(w, "  \\%s [%d args]\n", a.Command, arity)
		}
	}

	fmt.Fprintln(w, "\nNote:")
	fmt.Fprintln(w, "  If a primary key conflicts, use its ctrl+shift fallback.")
}
