package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "tokfuzz"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName     = "output"
	corpusFlagName     = "corpus"
	dialectFlagName    = "dialect"
	verboseFlagName    = "verbose"
	iterationsFlagName = "iterations"
	stackFlagName      = "stack"
	parallelFlagName   = "parallel"
	seedFlagName       = "seed"
	maxSizeFlagName    = "max-size"
	reinsertFlagName   = "reinsert"
	mutatorFlagName    = "mutator"
	diffFlagName       = "diff"

	outputConfigKey     = "output"
	corpusConfigKey     = "corpus"
	dialectConfigKey    = "dialect"
	iterationsConfigKey = "mutate.iterations"
	stackConfigKey      = "mutate.stack"
	parallelConfigKey   = "mutate.parallel"
	seedConfigKey       = "mutate.seed"
	maxSizeConfigKey    = "mutate.max_size"
	reinsertConfigKey   = "mutate.reinsert"
	mutatorsConfigKey   = "mutate.mutators"
	showDiffConfigKey   = "mutate.show_diff"

	defaultOutputDir  = ".tokfuzz-out"
	defaultCorpusDir  = "corpus"
	defaultDialect    = ""
	defaultIterations = 100
	defaultStack      = 4
	defaultParallel   = 1
	defaultSeed       = 0
	defaultMaxSize    = 4096
	defaultReinsert   = false
	defaultShowDiff   = false

	envPrefix = "TOKFUZZ"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".tokfuzz.log"
	defaultLogLevel      = int(slog.LevelInfo)
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
	viper.SetDefault(outputConfigKey, defaultOutputDir)
	viper.SetDefault(corpusConfigKey, defaultCorpusDir)
	viper.SetDefault(dialectConfigKey, defaultDialect)
	viper.SetDefault(iterationsConfigKey, defaultIterations)
	viper.SetDefault(stackConfigKey, defaultStack)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(seedConfigKey, defaultSeed)
	viper.SetDefault(maxSizeConfigKey, defaultMaxSize)
	viper.SetDefault(reinsertConfigKey, defaultReinsert)
	viper.SetDefault(mutatorsConfigKey, []string{})
	viper.SetDefault(showDiffConfigKey, defaultShowDiff)

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

		slog.Warn("Ignoring unreadable config file", "path", configFileName, "error", err)
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

	// Numeric slog levels are accepted too (-4 is debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the global slog logger writing to a rotated log
// file. It logs at the configured level, or at Debug when verbose is set.
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
