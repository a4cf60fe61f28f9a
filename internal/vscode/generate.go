package vscode

import (
	"github.com/dshills/musegen/internal/key"
	"github.com/dshills/musegen/internal/keymap"
	"github.com/dshills/musegen/internal/latex"
	"github.com/dshills/musegen/internal/snippet"
)

// Generate produces the binding list and snippet set for every command
// in the key table that is defined in the macro table, in table order.
// Commands absent from the macro table are skipped silently.
//
// Each qualifying command yields two bindings with identical snippet
// bodies: a primary chord (ctrl+key) and a fallback chord
// (ctrl+shift+key). Commands flagged alt-primary get alt added to both
// chords so they do not collide with the command owning the base key.
func Generate(macros latex.Table, table keymap.Table) ([]Binding, *SnippetSet) {
	bindings := make([]Binding, 0, 2*len(table))
	snippets := NewSnippetSet()

	for _, a := range table {
		arity, ok := macros.Arity(a.Command)
		if !ok {
			continue
		}
		body := snippet.Build(a.Command, arity)

		primary := key.NewChord(key.ModCtrl, a.Key)
		fallback := key.NewChord(key.ModCtrl|key.ModShift, a.Key)
		if a.AltPrimary {
			primary = primary.With(key.ModAlt)
			fallback = fallback.With(key.ModAlt)
		}

		bindings = append(bindings, NewBinding(primary, body), NewBinding(fallback, body))
		snippets.Add(SnippetName(a.Command), NewSnippetEntry(a.Command, body))
	}

	return bindings, snippets
}
