package vscode

import (
	"bytes"
	"encoding/json"

	"github.com/dshills/musegen/internal/key"
)

// InsertSnippetCommand is the VS Code command every generated binding
// invokes.
const InsertSnippetCommand = "editor.action.insertSnippet"

// WhenLaTeXEditor restricts bindings to text editing focus in a
// LaTeX-typed document.
const WhenLaTeXEditor = "editorTextFocus && editorLangId == latex"

// Args carries the snippet payload for editor.action.insertSnippet.
type Args struct {
	Snippet string `json:"snippet"`
}

// Binding is one entry in a VS Code keybindings.json array.
type Binding struct {
	Key     string `json:"key"`
	Command string `json:"command"`
	When    string `json:"when"`
	Args    Args   `json:"args"`
}

// NewBinding creates a snippet-insertion binding for a chord.
func NewBinding(chord key.Chord, body string) Binding {
	return Binding{
		Key:     chord.String(),
		Command: InsertSnippetCommand,
		When:    WhenLaTeXEditor,
		Args:    Args{Snippet: body},
	}
}

// EncodeBindings renders bindings as an indented JSON array. HTML
// escaping is disabled so the when-clause keeps its literal "&&".
func EncodeBindings(bindings []Binding) ([]byte, error) {
	if bindings == nil {
		bindings = []Binding{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bindings); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
