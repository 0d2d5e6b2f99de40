package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "subsume", configBaseName)
	assert.Equal(t, "subsume.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "no-cache", noCacheFlagName)
	assert.Equal(t, "cache.dir", cacheDirKey)
	assert.Equal(t, "report.prefix", reportPrefixKey)
	assert.Equal(t, "analyze.tcap", analyzeTCAPKey)
	assert.Equal(t, "analyze.sanitize", analyzeSanitizeKey)
	assert.Equal(t, "results", defaultOutputDir)
	assert.Equal(t, "cache", defaultCacheDir)
	assert.True(t, defaultSanitize)
	assert.False(t, defaultNoCache)
	assert.Equal(t, "SUBSUME", envPrefix)
	assert.Equal(t, ".subsume.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	setConfigDefaults(viper.GetViper())

	assert.Equal(t, defaultCacheDir, viper.GetString(cacheDirKey))
	assert.Equal(t, defaultSanitize, viper.GetBool(analyzeSanitizeKey))
	assert.Equal(t, defaultLogMaxSize, viper.GetInt(logMaxSizeKey))
	assert.Equal(t, defaultLogMaxBackups, viper.GetInt(logMaxBackupsKey))
}

func TestDefaultConfig_IgnoresEnv(t *testing.T) {
	t.Setenv("SUBSUME_CACHE_DIR", "/tmp/subsume-cache")

	v := defaultConfig()

	assert.Equal(t, defaultCacheDir, v.GetString(cacheDirKey))
	assert.Equal(t, currentConfigVersion, v.GetInt(configVersionKey))
	assert.Equal(t, defaultLogFilename, v.GetString(logFilenameKey))
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("SUBSUME_CACHE_DIR", "/tmp/subsume-cache")

	assert.Equal(t, "/tmp/subsume-cache", viper.GetString(cacheDirKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"upper case", "WARN", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "chatty", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "subsume.log")

	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	configureLogger(logPath, false)

	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}
