package keymap

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// tomlKeymap is the on-disk shape of a keymap override file.
type tomlKeymap struct {
	Commands []tomlCommand `toml:"command"`
}

type tomlCommand struct {
	Name string `toml:"name"`
	Key  string `toml:"key"`
	Alt  bool   `toml:"alt"`
}

// Load reads a key table from a TOML file. Unlike the built-in table,
// a requested file that is missing or malformed is an error. Entry
// order in the file becomes emission order.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}

	var raw tomlKeymap
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if len(raw.Commands) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCommands)
	}

	table := make(Table, 0, len(raw.Commands))
	seen := make(map[string]bool, len(raw.Commands))
	for _, c := range raw.Commands {
		if c.Name == "" {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingName)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%s: %w: %s", path, ErrDuplicateCommand, c.Name)
		}
		seen[c.Name] = true

		if utf8.RuneCountInString(c.Key) != 1 {
			return nil, fmt.Errorf("%s: command %s: %w (got %q)", path, c.Name, ErrInvalidKey, c.Key)
		}
		base, _ := utf8.DecodeRuneInString(c.Key)

		table = append(table, Assignment{
			Command:    c.Name,
			Key:        base,
			AltPrimary: c.Alt,
		})
	}

	return table, nil
}
