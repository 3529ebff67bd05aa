package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"goxform.dev/pkg/goxform/internal/domain/transforms"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// SimpleUI implements UI using cobra Command's Print functions.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: color}
}

// DisplayOutcome prints the diff, the save location or the emitted text of
// one run, or its error.
func (s *SimpleUI) DisplayOutcome(outcome Outcome) {
	if outcome.Err != nil {
		s.cmd.PrintErrln(s.style(failureStyle, "FAIL "+outcome.Input))
		s.cmd.PrintErrln(outcome.Err.Error())

		return
	}

	switch {
	case outcome.ShowDiff && outcome.Diff == "":
		s.cmd.Printf("%s: no changes\n", outcome.Input)
	case outcome.ShowDiff:
		s.cmd.Print(s.colorDiff(outcome.Diff))
	case outcome.Written != "":
		s.cmd.Printf("%s -> %s\n", outcome.Input, outcome.Written)
	default:
		s.cmd.Print(outcome.Output)
	}
}

// DisplaySummary prints how many runs failed, when more than one file was
// transformed or any run failed.
func (s *SimpleUI) DisplaySummary(outcomes []Outcome) {
	failed := 0

	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}

	if len(outcomes) <= 1 && failed == 0 {
		return
	}

	s.cmd.Printf("%d file(s) transformed, %d failed\n", len(outcomes)-failed, failed)
}

// DisplayTransforms prints the transform table.
func (s *SimpleUI) DisplayTransforms(entries []transforms.Entry) {
	s.cmd.Print(renderTransformTable(entries))
}

func renderTransformTable(entries []transforms.Entry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Transform", "Argument", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, e := range entries {
		table.Append([]string{e.Name, e.Argument, e.Description})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(entries)), "", ""})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) colorDiff(diff string) string {
	if !s.color {
		return diff
	}

	lines := strings.SplitAfter(diff, "\n")
	for i, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			continue
		case strings.HasPrefix(body, "@@"):
			lines[i] = hunkStyle.Render(body) + nl
		case strings.HasPrefix(body, "+"):
			lines[i] = addedStyle.Render(body) + nl
		case strings.HasPrefix(body, "-"):
			lines[i] = removedStyle.Render(body) + nl
		}
	}

	return strings.Join(lines, "")
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}

	return style.Render(text)
}
