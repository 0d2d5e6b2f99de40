package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/subsume/internal/domain"
	domainmocks "gooze.dev/pkg/subsume/internal/domain/mocks"
	m "gooze.dev/pkg/subsume/internal/model"
)

func newTestRootCmd(t *testing.T, sub *cobra.Command) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func useWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func logFileArgs(t *testing.T) []string {
	t.Helper()

	return []string{"--log-file", filepath.Join(t.TempDir(), "subsume.log")}
}

func TestViewCmd_PassesRunDir(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd := newTestRootCmd(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.RunDir == m.Path("results/2026-10-18_09-30-00")
	})).Return(nil).Once()

	cmd.SetArgs(append([]string{"view", "results/2026-10-18_09-30-00"}, logFileArgs(t)...))
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PrefixFlag(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd := newTestRootCmd(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Prefix == "nightly" && args.RunDir == m.Path("run")
	})).Return(nil).Once()

	cmd.SetArgs(append([]string{"view", "run", "--prefix", "nightly"}, logFileArgs(t)...))
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RequiresRunDir(t *testing.T) {
	useWorkflow(t)
	cmd := newTestRootCmd(t, newViewCmd())

	cmd.SetArgs(append([]string{"view"}, logFileArgs(t)...))
	require.Error(t, cmd.Execute())
}

func TestViewCmd_PropagatesError(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd := newTestRootCmd(t, newViewCmd())

	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(errors.New("no summary")).Once()

	cmd.SetArgs(append([]string{"view", "missing"}, logFileArgs(t)...))
	require.ErrorContains(t, cmd.Execute(), "no summary")
}
