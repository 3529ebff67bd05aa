package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "goxform.dev/pkg/goxform/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "goxform"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	verboseFlagName     = "verbose"
	sourceFlagName      = "source"
	mockFlagName        = "mock"
	transformFlagName   = "transform"
	outDirFlagName      = "out-dir"
	diffFlagName        = "diff"
	runParallelFlagName = "parallel"

	compilerOptionsKey   = "compiler_options"
	runParallelConfigKey = "run.parallel"
	runDiffConfigKey     = "run.diff"
	runTransformsKey     = "run.transforms"
	runOutDirKey         = "run.out_dir"

	defaultRunParallel = 1
	defaultRunDiff     = false

	envPrefix = "GOXFORM"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".goxform.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(compilerOptionsKey, defaultCompilerOptions())
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runDiffConfigKey, defaultRunDiff)
	viper.SetDefault(runTransformsKey, []string{})
	viper.SetDefault(runOutDirKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := readConfigFile(); err != nil {
		slog.Warn("failed to read config file", "path", viper.ConfigFileUsed(), "error", err)
	}
}

// readConfigFile loads goxform.yaml when present. A missing file is not an
// error.
func readConfigFile() error {
	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
		return nil
	}

	return err
}

// defaultCompilerOptions is what goxform init writes under compiler_options.
// out_dir and lib are fixed locations inside the virtual store and are left
// out so the file only lists settings worth editing.
func defaultCompilerOptions() map[string]any {
	options := m.DefaultOptions()
	delete(options, m.OptOutDir)
	delete(options, m.OptLib)

	return options
}

// compilerOptions returns the compiler_options overrides from config and
// environment.
func compilerOptions() m.Options {
	raw := cast.ToStringMap(viper.Get(compilerOptionsKey))

	options := make(m.Options, len(raw))
	for key, value := range raw {
		options[key] = value
	}

	return options
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

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at
// Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
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
