package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gooze.dev/pkg/subsume/internal/adapter"
	"gooze.dev/pkg/subsume/internal/controller"
	m "gooze.dev/pkg/subsume/internal/model"
)

// AnalyzeArgs contains the arguments for one analysis run.
type AnalyzeArgs struct {
	Mutants    m.MutantListSource
	KillMatrix m.KillMatrixSource
	Load       m.LoadOptions
	Output     m.Path
	Prefix     string
	WithTCAP   bool
}

// ViewArgs contains the arguments for displaying a previous run.
type ViewArgs struct {
	RunDir m.Path
	Prefix string
}

// Workflow defines the user-facing operations of subsume.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.TableSource
	adapter.ReportStore
	controller.UI
	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	tableSource adapter.TableSource,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		TableSource: tableSource,
		ReportStore: reportStore,
		UI:          ui,
		now:         time.Now,
	}
}

// Analyze loads the inputs, builds the subsumption hierarchy, writes every
// report into a fresh run directory and displays the results.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	data, err := w.loadKillData(ctx, args)
	if err != nil {
		return err
	}

	analysis, err := Analyze(data)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	createdAt := w.now()
	runID := uuid.NewString()
	reports := analysis.Reports(runID, createdAt, args.WithTCAP)

	dir, err := w.CreateRunDir(args.Output, createdAt)
	if err != nil {
		return err
	}

	if err := w.SaveReports(ctx, dir, args.Prefix, reports); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	slog.Info("run finished", "run_id", runID, "dir", dir)

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.DisplayRunDir(ctx, dir)

	return nil
}

// View displays the reports of a previous run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.RunDir, args.Prefix)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) loadKillData(ctx context.Context, args AnalyzeArgs) (m.KillData, error) {
	mutants, err := w.LoadMutants(ctx, args.Mutants, args.Load)
	if err != nil {
		return m.KillData{}, fmt.Errorf("load mutants: %w", err)
	}

	kills, err := w.LoadKills(ctx, args.KillMatrix, args.Load)
	if err != nil {
		return m.KillData{}, fmt.Errorf("load kill matrix: %w", err)
	}

	return m.KillData{Mutants: mutants, Kills: kills}, nil
}
