package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Errors returned by chord parsing.
var (
	// ErrEmptyChord indicates an empty chord specification.
	ErrEmptyChord = errors.New("empty chord")

	// ErrUnknownModifier indicates an unrecognized modifier name.
	ErrUnknownModifier = errors.New("unknown modifier")

	// ErrInvalidBaseKey indicates a missing or multi-character base key.
	ErrInvalidBaseKey = errors.New("invalid base key")
)

// Chord is a single keystroke: a set of modifiers plus a base key.
type Chord struct {
	Mods Modifier
	Base rune
}

// NewChord creates a chord from modifiers and a base key. The base key
// is lowercased, matching VS Code keybinding notation where shift is
// expressed as a modifier rather than an uppercase key.
func NewChord(mods Modifier, base rune) Chord {
	return Chord{Mods: mods, Base: unicode.ToLower(base)}
}

// With returns a copy of the chord with the specified modifier added.
func (c Chord) With(mod Modifier) Chord {
	c.Mods = c.Mods.With(mod)
	return c
}

// String renders the chord in VS Code notation, e.g. "ctrl+shift+h".
func (c Chord) String() string {
	if c.Mods.IsEmpty() {
		return string(c.Base)
	}
	return c.Mods.String() + "+" + string(c.Base)
}

// ParseChord parses a chord in VS Code notation ("ctrl+alt+h"). The
// last '+'-separated part is the base key and must be a single
// character; every other part must be a known modifier name.
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptyChord
	}

	parts := strings.Split(spec, "+")
	basePart := parts[len(parts)-1]
	if utf8.RuneCountInString(basePart) != 1 {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidBaseKey, basePart)
	}

	var mods Modifier
	for _, part := range parts[:len(parts)-1] {
		mod := ModifierFromName(part)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: %q", ErrUnknownModifier, part)
		}
		mods = mods.With(mod)
	}

	base, _ := utf8.DecodeRuneInString(basePart)
	return NewChord(mods, base), nil
}
