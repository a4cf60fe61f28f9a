// Package main is the entry point for musegen.
//
// musegen scans a LaTeX style file for \newcommand and \renewcommand
// definitions and generates VS Code keybindings and snippets for the
// muselab correction macros.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/musegen/internal/generator"
	"github.com/dshills/musegen/internal/keymap"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes. Usage and input-path problems exit 2 so scripts can tell
// them apart from generation failures.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		outDir      string
		keymapPath  string
		watch       bool
		showVersion bool
	)

	flag.StringVar(&outDir, "out", ".vscode", "Output directory for the generated JSON files")
	flag.StringVar(&outDir, "o", ".vscode", "Output directory (shorthand)")
	flag.StringVar(&keymapPath, "keymap", "", "TOML file replacing the built-in key table")
	flag.StringVar(&keymapPath, "k", "", "TOML keymap file (shorthand)")
	flag.BoolVar(&watch, "watch", false, "Regenerate whenever the style file changes")
	flag.BoolVar(&watch, "w", false, "Watch mode (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "musegen - generate VS Code bindings from a LaTeX style file\n\n")
		fmt.Fprintf(os.Stderr, "Usage: musegen [options] <path-to-sty>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  musegen muselab-correction.sty          Generate into .vscode/\n")
		fmt.Fprintf(os.Stderr, "  musegen -o out muselab-correction.sty   Generate into out/\n")
		fmt.Fprintf(os.Stderr, "  musegen -w muselab-correction.sty       Regenerate on change\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("musegen %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return exitOK
	}

	if flag.NArg() != 1 {
		fmt.Println("Usage: musegen [options] <path-to-sty>")
		return exitUsage
	}
	stylePath := flag.Arg(0)
	if _, err := os.Stat(stylePath); err != nil {
		fmt.Printf("ERROR: file not found: %s\n", stylePath)
		return exitUsage
	}

	table := keymap.Default()
	if keymapPath != "" {
		var err error
		table, err = keymap.Load(keymapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	}

	opts := generator.Options{
		StylePath: stylePath,
		OutDir:    outDir,
		Keymap:    table,
	}
	if err := generator.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	if watch {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("\nWatching %s (Ctrl-C to stop)\n", stylePath)
		if err := generator.Watch(ctx, opts, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
	}

	return exitOK
}
