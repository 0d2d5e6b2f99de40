package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "gooze.dev/pkg/subsume/internal/adapter/mocks"
	controllermocks "gooze.dev/pkg/subsume/internal/controller/mocks"
	"gooze.dev/pkg/subsume/internal/domain"
	m "gooze.dev/pkg/subsume/internal/model"
)

func analyzeArgs() domain.AnalyzeArgs {
	return domain.AnalyzeArgs{
		Mutants:    m.MutantListSource{Path: "mutants.csv", MutantColumn: 0},
		KillMatrix: m.KillMatrixSource{Path: "kills.csv", MutantColumn: 0, TestColumn: 1, StatusColumn: 2},
		Load:       m.LoadOptions{Sanitize: true, UseCache: true, CacheDir: "cache"},
		Output:     "results",
		Prefix:     "demo",
		WithTCAP:   true,
	}
}

func TestWorkflow_Analyze_Success(t *testing.T) {
	tables := adaptermocks.NewMockTableSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	args := analyzeArgs()

	tables.EXPECT().LoadMutants(mock.Anything, args.Mutants, args.Load).
		Return([]m.MutantID{"m1", "m2", "m3", "m4"}, nil).Once()
	tables.EXPECT().LoadKills(mock.Anything, args.KillMatrix, args.Load).
		Return(map[m.MutantID]m.TestSet{
			"m1": m.NewTestSet("t1"),
			"m2": m.NewTestSet("t1"),
			"m3": m.NewTestSet("t1", "t3"),
		}, nil).Once()

	store.EXPECT().CreateRunDir(m.Path("results"), mock.AnythingOfType("time.Time")).
		Return(m.Path("results/2026-10-18_09-30-00"), nil).Once()

	var saved m.Reports

	store.EXPECT().SaveReports(mock.Anything, m.Path("results/2026-10-18_09-30-00"), "demo", mock.Anything).
		Run(func(_ context.Context, _ m.Path, _ string, reports m.Reports) { saved = reports }).
		Return(nil).Once()
	ui.EXPECT().DisplayReports(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplayRunDir(mock.Anything, m.Path("results/2026-10-18_09-30-00")).Return().Once()

	wf := domain.NewWorkflow(tables, store, ui)

	err := wf.Analyze(context.Background(), args)
	require.NoError(t, err)

	assert.NotEmpty(t, saved.Summary.RunID)
	assert.Equal(t, 4, saved.Summary.Mutants)
	assert.Equal(t, 3, saved.Summary.Nodes)
	assert.Equal(t, 1, saved.Summary.Edges)
	assert.Equal(t, 1, saved.Summary.Undetected)
	assert.True(t, saved.Summary.TCAPEnabled)
	assert.Len(t, saved.TCAP, 4)
	require.Len(t, saved.Dominators, 1)
	assert.Equal(t, []m.MutantID{"m1", "m2"}, saved.Dominators[0].Mutants)
}

func TestWorkflow_Analyze_UnknownMutantWritesNothing(t *testing.T) {
	tables := adaptermocks.NewMockTableSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	args := analyzeArgs()

	tables.EXPECT().LoadMutants(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.MutantID{"m1"}, nil).Once()
	tables.EXPECT().LoadKills(mock.Anything, mock.Anything, mock.Anything).
		Return(map[m.MutantID]m.TestSet{"m9": m.NewTestSet("t1")}, nil).Once()

	wf := domain.NewWorkflow(tables, store, ui)

	err := wf.Analyze(context.Background(), args)
	require.ErrorIs(t, err, domain.ErrUnknownMutant)

	store.AssertNotCalled(t, "CreateRunDir", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SaveReports", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Analyze_LoadError(t *testing.T) {
	tables := adaptermocks.NewMockTableSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	tables.EXPECT().LoadMutants(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("no such file")).Once()

	wf := domain.NewWorkflow(tables, store, ui)

	err := wf.Analyze(context.Background(), analyzeArgs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load mutants")
}

func TestWorkflow_Analyze_SaveError(t *testing.T) {
	tables := adaptermocks.NewMockTableSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	tables.EXPECT().LoadMutants(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.MutantID{"m1"}, nil).Once()
	tables.EXPECT().LoadKills(mock.Anything, mock.Anything, mock.Anything).
		Return(map[m.MutantID]m.TestSet{}, nil).Once()
	store.EXPECT().CreateRunDir(mock.Anything, mock.Anything).Return(m.Path("out"), nil).Once()
	store.EXPECT().SaveReports(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("disk full")).Once()

	wf := domain.NewWorkflow(tables, store, ui)

	err := wf.Analyze(context.Background(), analyzeArgs())
	require.ErrorContains(t, err, "save reports")
	ui.AssertNotCalled(t, "DisplayReports", mock.Anything, mock.Anything)
}

func TestWorkflow_View(t *testing.T) {
	tables := adaptermocks.NewMockTableSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	reports := m.Reports{Summary: m.Summary{RunID: "abc", CreatedAt: time.Now()}}

	store.EXPECT().LoadReports(mock.Anything, m.Path("run"), "demo").Return(reports, nil).Once()
	ui.EXPECT().DisplayReports(mock.Anything, reports).Return(nil).Once()

	wf := domain.NewWorkflow(tables, store, ui)

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{RunDir: "run", Prefix: "demo"}))
}

func TestWorkflow_View_LoadError(t *testing.T) {
	tables := adaptermocks.NewMockTableSource(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	store.EXPECT().LoadReports(mock.Anything, mock.Anything, mock.Anything).
		Return(m.Reports{}, errors.New("missing summary")).Once()

	wf := domain.NewWorkflow(tables, store, ui)

	err := wf.View(context.Background(), domain.ViewArgs{RunDir: "run"})
	require.ErrorContains(t, err, "load reports")
}
