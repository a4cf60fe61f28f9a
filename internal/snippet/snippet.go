// Package snippet synthesizes VS Code snippet bodies for LaTeX macros.
//
// Every body wraps the editor's current selection in the macro's first
// argument via the ${TM_SELECTED_TEXT:$1} placeholder; remaining
// arguments become numbered tab stops with Japanese placeholder labels
// matching the muselab correction workflow.
package snippet

import (
	"fmt"
	"strings"
)

// selection captures the current editor selection as the first tab stop.
const selection = "${TM_SELECTED_TEXT:$1}"

// Placeholder labels for second arguments. The correction macros take
// the replacement text or reviewer comment there; everything else gets
// a generic "argument N" label.
const (
	labelCorrected = "修正後"
	labelComment   = "コメント"
	labelArgument  = "引数"
)

// Build returns the snippet body for invoking command with the given
// argument count. The mapping is a pure function of (command, arity):
//
//	0 args:  \cmd ${TM_SELECTED_TEXT:$1}
//	1 arg:   \cmd{${TM_SELECTED_TEXT:$1}}
//	2 args:  \cmd{${TM_SELECTED_TEXT:$1}}{${2:label}}
//	n args:  first group as above, then {${i:引数i}} for i in 2..n
func Build(command string, arity int) string {
	if arity <= 0 {
		return fmt.Sprintf("\\%s %s", command, selection)
	}
	if arity == 1 {
		return fmt.Sprintf("\\%s{%s}", command, selection)
	}
	if arity == 2 {
		return fmt.Sprintf("\\%s{%s}{${2:%s}}", command, selection, secondArgLabel(command))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\%s{%s}", command, selection)
	for i := 2; i <= arity; i++ {
		fmt.Fprintf(&b, "{${%d:%s%d}}", i, labelArgument, i)
	}
	return b.String()
}

// secondArgLabel returns the placeholder label for a two-argument
// macro's second group.
func secondArgLabel(command string) string {
	switch command {
	case "modified":
		return labelCorrected
	case "commented", "highlightComment":
		return labelComment
	default:
		return labelArgument + "2"
	}
}
