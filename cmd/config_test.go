package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "fixpass", configBaseName)
	assert.Equal(t, "fixpass.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "project", projectFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "fix.error_codes", fixErrorCodesKey)
	assert.Equal(t, "fix.max_passes", fixMaxPassesKey)
	assert.Equal(t, ".fixpass", defaultReportsDir)
	assert.Equal(t, 5, defaultMaxPasses)
	assert.Equal(t, "builtin", defaultOracleKind)
	assert.Equal(t, "FIXPASS", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultMaxPasses, viper.GetInt(fixMaxPassesKey))
	assert.Equal(t, defaultOracleKind, viper.GetString(oracleKindKey))
	assert.Equal(t, defaultListFormat, viper.GetString(listFormatKey))
	assert.False(t, viper.GetBool(fixWriteKey))
	assert.Empty(t, viper.GetIntSlice(fixErrorCodesKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper case", "INFO", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", " warning ", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"info level drops debug", false, false},
		{"verbose keeps debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "fixpass.log")

			configureLogger(logPath, tt.verbose)
			slog.Debug("debug line")
			slog.Info("info line")

			require.NotNil(t, globalLogger)

			content, err := os.ReadFile(logPath)
			require.NoError(t, err)
			assert.Contains(t, string(content), "info line")

			if tt.wantDebug {
				assert.Contains(t, string(content), "debug line")
			} else {
				assert.NotContains(t, string(content), "debug line")
			}
		})
	}
}
