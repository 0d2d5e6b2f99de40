// Package controller provides output adapters for displaying subsumption analysis results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	m "gooze.dev/pkg/subsume/internal/model"
)

// UI defines how analysis results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayRunDir tells the user where the reports of this run were written.
	DisplayRunDir(ctx context.Context, dir m.Path)
	// DisplayReports presents the dominator, lowest-layer and TCAP tables.
	DisplayReports(ctx context.Context, reports m.Reports) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
