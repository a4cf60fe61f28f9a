// Package key provides the chord model for generated keybindings.
//
// A Chord is a set of modifier keys plus a single base key, rendered in
// VS Code keybinding notation ("ctrl+shift+alt+h"). Modifiers always
// render in the fixed order ctrl, shift, alt, cmd so that equal chords
// always produce equal strings.
package key
