package keymap

// Default returns the built-in key table for the muselab correction
// macros.
func Default() Table {
	return Table{
		{Command: "deleted", Key: 'd'},
		{Command: "added", Key: 'a'},
		{Command: "commented", Key: 'c'},
		{Command: "highlight", Key: 'h'},
		{Command: "needRef", Key: 'r'},
		{Command: "modified", Key: 'm'},
		// Shares h with highlight, so its chords carry alt.
		{Command: "highlightComment", Key: 'h', AltPrimary: true},
	}
}
