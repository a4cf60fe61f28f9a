package vscode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/dshills/musegen/internal/keymap"
	"github.com/dshills/musegen/internal/latex"
)

func TestGenerateBindings(t *testing.T) {
	macros := latex.Table{"deleted": 1, "modified": 2}

	bindings, snippets := Generate(macros, keymap.Default())

	want := []Binding{
		{
			Key:     "ctrl+d",
			Command: InsertSnippetCommand,
			When:    WhenLaTeXEditor,
			Args:    Args{Snippet: "\\deleted{${TM_SELECTED_TEXT:$1}}"},
		},
		{
			Key:     "ctrl+shift+d",
			Command: InsertSnippetCommand,
			When:    WhenLaTeXEditor,
			Args:    Args{Snippet: "\\deleted{${TM_SELECTED_TEXT:$1}}"},
		},
		{
			Key:     "ctrl+m",
			Command: InsertSnippetCommand,
			When:    WhenLaTeXEditor,
			Args:    Args{Snippet: "\\modified{${TM_SELECTED_TEXT:$1}}{${2:修正後}}"},
		},
		{
			Key:     "ctrl+shift+m",
			Command: InsertSnippetCommand,
			When:    WhenLaTeXEditor,
			Args:    Args{Snippet: "\\modified{${TM_SELECTED_TEXT:$1}}{${2:修正後}}"},
		},
	}
	if diff := cmp.Diff(want, bindings); diff != "" {
		t.Errorf("Generate() bindings mismatch (-want +got):\n%s", diff)
	}

	wantNames := []string{"muse: deleted", "muse: modified"}
	if diff := cmp.Diff(wantNames, snippets.Names()); diff != "" {
		t.Errorf("Generate() snippet names mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateAltChords(t *testing.T) {
	macros := latex.Table{"highlight": 1, "highlightComment": 2}

	bindings, _ := Generate(macros, keymap.Default())

	gotKeys := make([]string, len(bindings))
	for i, b := range bindings {
		gotKeys[i] = b.Key
	}
	wantKeys := []string{"ctrl+h", "ctrl+shift+h", "ctrl+alt+h", "ctrl+shift+alt+h"}
	if diff := cmp.Diff(wantKeys, gotKeys); diff != "" {
		t.Errorf("chord keys mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateSkipsUndefinedCommands(t *testing.T) {
	bindings, snippets := Generate(latex.Table{}, keymap.Default())

	if len(bindings) != 0 {
		t.Errorf("got %d bindings for empty macro table, want 0", len(bindings))
	}
	if snippets.Len() != 0 {
		t.Errorf("got %d snippets for empty macro table, want 0", snippets.Len())
	}
}

func TestEncodeBindings(t *testing.T) {
	macros := latex.Table{"deleted": 1}
	bindings, _ := Generate(macros, keymap.Default())

	data, err := EncodeBindings(bindings)
	if err != nil {
		t.Fatalf("EncodeBindings() error = %v", err)
	}

	if !gjson.ValidBytes(data) {
		t.Fatalf("EncodeBindings() produced invalid JSON: %s", data)
	}
	doc := gjson.ParseBytes(data)
	if n := len(doc.Array()); n != 2 {
		t.Errorf("bindings array length = %d, want 2", n)
	}
	if got := doc.Get("0.command").String(); got != InsertSnippetCommand {
		t.Errorf("command = %q, want %q", got, InsertSnippetCommand)
	}
	// The when-clause must keep literal ampersands, not \u0026 escapes.
	if !strings.Contains(string(data), "editorTextFocus && editorLangId == latex") {
		t.Errorf("when-clause HTML-escaped in output:\n%s", data)
	}
}

func TestEncodeBindingsEmpty(t *testing.T) {
	data, err := EncodeBindings(nil)
	if err != nil {
		t.Fatalf("EncodeBindings(nil) error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("EncodeBindings(nil) = %q, want empty array", data)
	}
}

func TestSnippetSetEncodeOrder(t *testing.T) {
	set := NewSnippetSet()
	set.Add("muse: modified", NewSnippetEntry("modified", "body-m"))
	set.Add("muse: deleted", NewSnippetEntry("deleted", "body-d"))

	data, err := set.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("Encode() produced invalid JSON: %s", data)
	}

	// Insertion order is preserved, not sorted.
	var order []string
	gjson.ParseBytes(data).ForEach(func(k, _ gjson.Result) bool {
		order = append(order, k.String())
		return true
	})
	want := []string{"muse: modified", "muse: deleted"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestSnippetSetEncodeEntry(t *testing.T) {
	set := NewSnippetSet()
	set.Add("muse: deleted", NewSnippetEntry("deleted", "\\deleted{${TM_SELECTED_TEXT:$1}}"))

	data, err := set.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	doc := gjson.ParseBytes(data)
	entry := doc.Get("muse: deleted")
	if !entry.Exists() {
		t.Fatalf("entry missing from output:\n%s", data)
	}
	if got := entry.Get("prefix").String(); got != "muse-deleted" {
		t.Errorf("prefix = %q, want %q", got, "muse-deleted")
	}
	if got := entry.Get("body.0").String(); got != "\\deleted{${TM_SELECTED_TEXT:$1}}" {
		t.Errorf("body[0] = %q", got)
	}
	if got := entry.Get("description").String(); got != "muselab-correction: \\deleted (auto-generated)" {
		t.Errorf("description = %q", got)
	}
}

func TestSnippetSetReplaceKeepsPosition(t *testing.T) {
	set := NewSnippetSet()
	set.Add("a", NewSnippetEntry("a", "one"))
	set.Add("b", NewSnippetEntry("b", "two"))
	set.Add("a", NewSnippetEntry("a", "three"))

	if diff := cmp.Diff([]string{"a", "b"}, set.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}
