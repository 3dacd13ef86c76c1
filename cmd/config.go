package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "fixpass"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	projectFlagName         = "project"
	excludeFlagName         = "exclude"
	oracleFlagName          = "oracle"
	oracleCommandFlagName   = "oracle-cmd"
	extensionsFlagName      = "ext"
	reportsFlagName         = "reports"
	verboseFlagName         = "verbose"
	logFileFlagName         = "log-file"
	toolTimeoutFlagName     = "tool-timeout"
	errorCodeFlagName       = "error-code"
	fixNameFlagName         = "fix-name"
	interactiveFlagName     = "interactive"
	showMultipleFlagName    = "show-multiple"
	writeFlagName           = "write"
	outputFolderFlagName    = "output-folder"
	ignoreGitStatusFlagName = "ignore-git-status"
	maxPassesFlagName       = "max-passes"
	diffFlagName            = "diff"
	formatFlagName          = "format"

	projectConfigKey         = "project"
	excludeConfigKey         = "paths.exclude"
	oracleKindKey            = "oracle.kind"
	oracleCommandKey         = "oracle.command"
	oracleExtensionsKey      = "oracle.extensions"
	oracleTimeoutKey         = "oracle.timeout"
	reportsConfigKey         = "reports"
	fixErrorCodesKey         = "fix.error_codes"
	fixNamesKey              = "fix.fix_names"
	fixInteractiveKey        = "fix.interactive"
	fixShowMultipleKey       = "fix.show_multiple"
	fixWriteKey              = "fix.write"
	fixOutputFolderKey       = "fix.output_folder"
	fixIgnoreGitStatusKey    = "fix.ignore_git_status"
	fixMaxPassesKey          = "fix.max_passes"
	fixDiffKey               = "fix.diff"
	listFormatKey            = "list.format"
	defaultProject           = "."
	defaultOracleKind        = "builtin"
	defaultOracleTimeout     = 2 * time.Minute
	defaultReportsDir        = ".fixpass"
	defaultMaxPasses         = 5
	defaultListFormat        = "table"
	defaultIgnoreGitStatus   = false
	defaultInteractive       = false
	defaultShowMultiple      = false
	defaultWrite             = false
	defaultDiff              = false

	envPrefix = "FIXPASS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".fixpass.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	// values from .env behave like exported FIXPASS_* variables
	_ = godotenv.Load()

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(projectConfigKey, defaultProject)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(oracleKindKey, defaultOracleKind)
	viper.SetDefault(oracleCommandKey, []string{})
	viper.SetDefault(oracleExtensionsKey, []string{})
	viper.SetDefault(oracleTimeoutKey, int64(defaultOracleTimeout.Seconds()))
	viper.SetDefault(reportsConfigKey, defaultReportsDir)

	viper.SetDefault(fixErrorCodesKey, []int{})
	viper.SetDefault(fixNamesKey, []string{})
	viper.SetDefault(fixInteractiveKey, defaultInteractive)
	viper.SetDefault(fixShowMultipleKey, defaultShowMultiple)
	viper.SetDefault(fixWriteKey, defaultWrite)
	viper.SetDefault(fixOutputFolderKey, "")
	viper.SetDefault(fixIgnoreGitStatusKey, defaultIgnoreGitStatus)
	viper.SetDefault(fixMaxPassesKey, defaultMaxPasses)
	viper.SetDefault(fixDiffKey, defaultDiff)
	viper.SetDefault(listFormatKey, defaultListFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the rotating file logger as the slog default.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
