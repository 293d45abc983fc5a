package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"classidx.dev/pkg/classidx/internal/adapter"
	m "classidx.dev/pkg/classidx/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "classidx"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName        = "output"
	formatFlagName        = "format"
	verboseFlagName       = "verbose"
	noCacheFlagName       = "no-cache"
	diffFlagName          = "diff"
	excludeFlagName       = "exclude"
	parallelFlagName      = "parallel"
	batchSizeFlagName     = "batch-size"
	maxPassesFlagName     = "max-passes"
	workerTimeoutFlagName = "worker-timeout"
	bootstrapFlagName     = "bootstrap"
	phpFlagName           = "php"

	rootsConfigKey         = "roots"
	excludeConfigKey       = "exclude"
	cacheFileKey           = "cache.file"
	workerBinaryKey        = "worker.binary"
	workerArgsKey          = "worker.args"
	workerBootstrapKey     = "worker.bootstrap"
	workerTimeoutKey       = "worker.timeout"
	validateParallelKey    = "validate.parallel"
	validateBatchSizeKey   = "validate.batch_size"
	validateMaxPassesKey   = "validate.max_passes"
	classIndexBaseName     = "classmap"
	hierarchyBaseName      = "hierarchy"
	defaultCacheFile       = "scan.cache"
	defaultOutputDir       = ".classidx"
	defaultFormat          = string(adapter.FormatJSON)
	defaultNoCache         = false
	defaultDiff            = false
	defaultWorkerTimeout   = time.Minute
	defaultValidateWorkers = 1
	defaultBatchSize       = 0
	defaultMaxPasses       = 0

	envPrefix = "CLASSIDX"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".classidx.log"
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
	viper.SetDefault(rootsConfigKey, []any{})
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(formatFlagName, defaultFormat)
	viper.SetDefault(noCacheFlagName, defaultNoCache)
	viper.SetDefault(diffFlagName, defaultDiff)
	viper.SetDefault(excludeConfigKey, []string{adapter.DefaultExcludePattern})
	viper.SetDefault(cacheFileKey, defaultCacheFile)

	viper.SetDefault(workerBinaryKey, adapter.DefaultPHPBinary)
	viper.SetDefault(workerArgsKey, adapter.DefaultPHPArgs())
	viper.SetDefault(workerBootstrapKey, "")
	viper.SetDefault(workerTimeoutKey, defaultWorkerTimeout.String())

	viper.SetDefault(validateParallelKey, defaultValidateWorkers)
	viper.SetDefault(validateBatchSizeKey, defaultBatchSize)
	viper.SetDefault(validateMaxPassesKey, defaultMaxPasses)

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

// configuredRoots reads the `roots` config key. Entries may be plain
// directory strings or {dir, prefix, include, exclude} maps.
func configuredRoots() ([]m.SourceRoot, error) {
	raw, ok := viper.Get(rootsConfigKey).([]any)
	if !ok {
		var roots []m.SourceRoot
		if err := viper.UnmarshalKey(rootsConfigKey, &roots); err != nil {
			return nil, fmt.Errorf("invalid %s config: %w", rootsConfigKey, err)
		}

		return roots, nil
	}

	roots := make([]m.SourceRoot, 0, len(raw))

	for i, entry := range raw {
		switch value := entry.(type) {
		case string:
			roots = append(roots, m.SourceRoot{Dir: m.Path(value)})
		case map[string]any:
			root := m.SourceRoot{
				Dir:     m.Path(stringValue(value["dir"])),
				Prefix:  stringValue(value["prefix"]),
				Include: stringValue(value["include"]),
				Exclude: stringValue(value["exclude"]),
			}
			if root.Dir == "" {
				return nil, fmt.Errorf("invalid %s config: entry %d has no dir", rootsConfigKey, i)
			}

			roots = append(roots, root)
		default:
			return nil, fmt.Errorf("invalid %s config: entry %d has type %T", rootsConfigKey, i, entry)
		}
	}

	return roots, nil
}

func stringValue(value any) string {
	if value == nil {
		return ""
	}

	return fmt.Sprint(value)
}

// joinPatterns merges exclusion patterns into one alternation.
func joinPatterns(patterns []string) string {
	var parts []string

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		parts = append(parts, "(?:"+pattern+")")
	}

	return strings.Join(parts, "|")
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
// By default it logs at Info; if verbose is true it logs at Debug.
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
