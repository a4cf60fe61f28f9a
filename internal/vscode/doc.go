// Package vscode models the two generated VS Code configuration
// documents: the keybindings.json array and the snippets object.
//
// Bindings invoke editor.action.insertSnippet with the synthesized
// snippet body, guarded by a when-clause that restricts them to text
// editing in LaTeX documents. The snippets object preserves key table
// order, so its JSON encoding is built key by key instead of through a
// Go map.
package vscode
