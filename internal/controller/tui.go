package controller

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	m "gooze.dev/pkg/subsume/internal/model"
	"golang.org/x/term"
)

// staticRowLimit is the node count up to which results are printed instead
// of opening the interactive browser.
const staticRowLimit = 20

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	run    func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.run = t.runProgram

	return t
}

// DisplayRunDir prints the run directory.
func (t *TUI) DisplayRunDir(ctx context.Context, dir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(t.output, "%s %s\n", mutedStyle.Render("Reports written to"), accentStyle.Render(string(dir)))
}

// DisplayReports shows the merged nodes with their role in the hierarchy.
// Small results are printed directly; larger ones open a filterable list.
func (t *TUI) DisplayReports(ctx context.Context, reports m.Reports) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newReportModel(reports)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if len(model.items) <= staticRowLimit {
		_, err := fmt.Fprintln(t.output, model.staticView())
		return err
	}

	return t.run(model)
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
