package keymap

// Assignment pairs a macro command with its preferred base key.
type Assignment struct {
	// Command is the macro name without the leading backslash.
	Command string

	// Key is the base key for the command's chords.
	Key rune

	// AltPrimary marks commands whose base key is shared with another
	// command; their chords carry the alt modifier to avoid the
	// collision.
	AltPrimary bool
}

// Table is an ordered list of assignments. Order determines the order
// of bindings and snippet entries in the generated files.
type Table []Assignment

// Find returns the assignment for command and whether it exists.
func (t Table) Find(command string) (Assignment, bool) {
	for _, a := range t {
		if a.Command == command {
			return a, true
		}
	}
	return Assignment{}, false
}

// Commands returns the command names in table order.
func (t Table) Commands() []string {
	names := make([]string, len(t))
	for i, a := range t {
		names[i] = a.Command
	}
	return names
}
