package vscode

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// SnippetEntry is one record in a VS Code snippets file.
type SnippetEntry struct {
	Prefix      string   `json:"prefix"`
	Body        []string `json:"body"`
	Description string   `json:"description"`
}

// NewSnippetEntry builds the snippets-file record for a command with
// the given snippet body.
func NewSnippetEntry(command, body string) SnippetEntry {
	return SnippetEntry{
		Prefix:      "muse-" + command,
		Body:        []string{body},
		Description: fmt.Sprintf("muselab-correction: \\%s (auto-generated)", command),
	}
}

// SnippetName returns the display label for a command in the snippets
// file.
func SnippetName(command string) string {
	return "muse: " + command
}

// SnippetSet is an insertion-ordered collection of snippet entries.
// JSON objects have no order, but editors show snippets in file order,
// so the set remembers the order entries were added.
type SnippetSet struct {
	names   []string
	entries map[string]SnippetEntry
}

// NewSnippetSet creates an empty snippet set.
func NewSnippetSet() *SnippetSet {
	return &SnippetSet{entries: make(map[string]SnippetEntry)}
}

// Add inserts an entry under name. Adding an existing name replaces
// the entry but keeps its original position.
func (s *SnippetSet) Add(name string, entry SnippetEntry) {
	if _, exists := s.entries[name]; !exists {
		s.names = append(s.names, name)
	}
	s.entries[name] = entry
}

// Len returns the number of entries.
func (s *SnippetSet) Len() int {
	return len(s.names)
}

// Names returns the entry names in insertion order.
func (s *SnippetSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Encode renders the set as an indented JSON object whose keys appear
// in insertion order. The document is assembled key by key with sjson
// (a Go map would sort the keys) and indented with pretty.
func (s *SnippetSet) Encode() ([]byte, error) {
	doc := []byte("{}")
	for _, name := range s.names {
		val, err := json.Marshal(s.entries[name])
		if err != nil {
			return nil, fmt.Errorf("encoding snippet %s: %w", name, err)
		}
		doc, err = sjson.SetRawBytes(doc, escapePath(name), val)
		if err != nil {
			return nil, fmt.Errorf("encoding snippet %s: %w", name, err)
		}
	}

	return pretty.PrettyOptions(doc, &pretty.Options{Indent: "  "}), nil
}

// escapePath escapes sjson path metacharacters so an entry name is
// treated as a literal object key.
func escapePath(name string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`.`, `\.`,
		`*`, `\*`,
		`?`, `\?`,
		`|`, `\|`,
	)
	return r.Replace(name)
}
