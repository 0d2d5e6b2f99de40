package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// inTempDir switches the working directory to a fresh temp dir for the test.
func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return dir
}

func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newInitCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init", "--log-file", filepath.Join(t.TempDir(), "subsume.log")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func readConfigFile(t *testing.T, path string) map[string]any {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var config map[string]any
	require.NoError(t, yaml.Unmarshal(contents, &config))

	return config
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("SUBSUME_REPORT_PREFIX", "from-env")

	out, err := runInit(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default configuration to subsume.yaml")

	config := readConfigFile(t, filepath.Join(dir, configFileName))

	assert.Equal(t, currentConfigVersion, config[configVersionKey])
	assert.Equal(t, defaultOutputDir, config[outputFlagName])
	assert.Equal(t, map[string]any{"tcap": defaultTCAP, "sanitize": defaultSanitize}, config["analyze"])
	assert.Equal(t, map[string]any{"dir": defaultCacheDir}, config["cache"])
	assert.Equal(t, map[string]any{"prefix": defaultPrefix}, config["report"])

	logging, ok := config["log"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, defaultLogFilename, logging["filename"])
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	dir := inTempDir(t)

	targetPath := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := runInit(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), configFileName)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	dir := inTempDir(t)

	targetPath := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := runInit(t, "--force")
	require.NoError(t, err)

	config := readConfigFile(t, targetPath)
	assert.NotContains(t, config, "existing")
	assert.Equal(t, map[string]any{"dir": defaultCacheDir}, config["cache"])
}
