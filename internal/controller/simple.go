package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/dataobj/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

var _ UI = (*SimpleUI)(nil)

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRendered prints each rendered line as is.
func (s *SimpleUI) DisplayRendered(objects []RenderedObject) error {
	for _, obj := range objects {
		s.printf("%s\n", obj.Line)
	}

	return nil
}

// DisplayTally prints the per-kind counts as a table.
func (s *SimpleUI) DisplayTally(tally m.Tally) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Objects"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, kind := range m.Kinds {
		table.Append([]string{string(kind), fmt.Sprintf("%d", tally.Count(kind))})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", tally.Total())})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayFindings prints one line per finding, or a confirmation when there
// are none.
func (s *SimpleUI) DisplayFindings(total int, findings []m.Finding) error {
	if len(findings) == 0 {
		s.printf("All %d data objects are valid\n", total)
		return nil
	}

	for _, f := range findings {
		s.printf("#%d %s: %s\n", f.Index, f.Kind, f.Message)
	}

	s.printf("%d finding(s) in %d data objects\n", len(findings), total)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
