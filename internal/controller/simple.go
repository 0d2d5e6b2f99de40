package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/subsume/internal/model"
)

// SimpleUI implements UI with plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunDir prints the run directory.
func (s *SimpleUI) DisplayRunDir(ctx context.Context, dir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Reports written to %s\n", dir)
}

// DisplayReports prints one table per analysis followed by a summary line.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports m.Reports) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\nDominator mutants\n%s", renderDominatorTable(reports.Dominators))
	s.printf("\nLowest layer mutants\n%s", renderLowestLayerTable(reports.LowestLayer))

	if reports.Summary.TCAPEnabled {
		s.printf("\nTCAP scores\n%s", renderTCAPTable(reports.TCAP))
	}

	s.printf("\n%s\n", summaryLine(reports))

	return nil
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func renderDominatorTable(rows []m.DominatorRow) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Node", "Mutants", "Tests"})
	for _, row := range rows {
		table.Append([]string{row.Node, m.JoinMutants(row.Mutants), m.JoinTests(row.Tests)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(rows)), "", ""})
	table.Render()

	return buf.String()
}

func renderLowestLayerTable(rows []m.LowestLayerRow) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Node", "Mutants", "Unique Tests", "Tests"})
	for _, row := range rows {
		table.Append([]string{
			row.Node,
			m.JoinMutants(row.Mutants),
			m.JoinTests(row.UniqueTests),
			m.JoinTests(row.Tests),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(rows)), "", "", ""})
	table.Render()

	return buf.String()
}

func renderTCAPTable(rows []m.TCAPRow) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Mutant", "TCAP"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, row := range rows {
		table.Append([]string{string(row.Mutant), formatScore(row.Score)})
	}

	table.Render()

	return buf.String()
}

func summaryLine(reports m.Reports) string {
	s := reports.Summary
	line := fmt.Sprintf("Mutants: %d | Nodes: %d | Edges: %d | Dominators: %d | Lowest layer: %d | Undetected: %d",
		s.Mutants, s.Nodes, s.Edges, s.Dominators, s.LowestLayer, s.Undetected)

	if s.TCAPEnabled {
		line += fmt.Sprintf(" | Mean TCAP: %s", formatScore(m.MeanTCAP(reports.TCAP)))
	}

	return line
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
