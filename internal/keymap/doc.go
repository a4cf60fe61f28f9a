// Package keymap holds the curated command-to-key assignment table.
//
// The table is configuration, not derived data: it lists the macro
// commands worth binding, the preferred base key for each, and whether
// the command's chords need the alt modifier because its base key is
// shared with another command. Table order is emission order in the
// generated files.
//
// The built-in table covers the muselab correction macros. A user can
// replace it with a TOML file:
//
//	[[command]]
//	name = "deleted"
//	key  = "d"
//	alt  = false
package keymap
