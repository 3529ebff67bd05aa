// Package controller renders the results of transform runs for the CLI.
package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"goxform.dev/pkg/goxform/internal/domain/transforms"
)

// Outcome is the result of transforming one input file.
type Outcome struct {
	// Input is the path the file was read from.
	Input string
	// Output is the emitted text; empty when Err is set.
	Output string
	// Written is where Output was saved, if it was saved.
	Written string
	// ShowDiff selects diff output; Diff is empty when nothing changed.
	ShowDiff bool
	Diff     string
	Err      error
}

// UI displays transform results.
type UI interface {
	DisplayOutcome(outcome Outcome)
	DisplaySummary(outcomes []Outcome)
	DisplayTransforms(entries []transforms.Entry)
}

// NewUI returns a UI writing through cmd. Diffs are colored when color is
// set.
func NewUI(cmd *cobra.Command, color bool) UI {
	return NewSimpleUI(cmd, color)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
