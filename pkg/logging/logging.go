package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const appDirName = "printbreak"

var (
	mu sync.RWMutex
	// The panel owns stderr, so nothing is logged until a logger is set up.
	base       = zerolog.Nop()
	configured string
	logFile    *os.File
)

// install swaps the package logger and closes the log file it replaces.
// Callers hold mu.
func install(logger zerolog.Logger, level string, file *os.File) {
	if logFile != nil && logFile != file {
		_ = logFile.Close()
	}
	base = logger
	configured = level
	logFile = file
}

// SetupLogger configures the package logger based on verbosity level.
// It writes to the log file and, when console is non-nil, to a pretty
// console writer as well. Used by the command line tool.
func SetupLogger(verbosity int, console io.Writer) {
	var level zerolog.Level
	switch verbosity {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.Kitchen,
		})
	}

	logPath := getLogFilePath()
	logFileHandle, err := setupLogFile(logPath)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	mu.Lock()
	install(logger, level.String(), logFileHandle)
	mu.Unlock()

	if err != nil {
		logger.Warn().Err(err).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}
	logger.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// Configure sets up file-only logging at the named level. An empty value,
// "off" or "disabled" turns logging off. Calling it again with the same
// level is a no-op, so it is safe to call on every checkpoint.
func Configure(levelName string) {
	levelName = strings.ToLower(strings.TrimSpace(levelName))

	mu.RLock()
	same := levelName == configured
	mu.RUnlock()
	if same {
		return
	}

	level, ok := ParseLevel(levelName)
	if !ok || level == zerolog.Disabled {
		mu.Lock()
		install(zerolog.Nop(), levelName, nil)
		mu.Unlock()
		return
	}

	handle, err := setupLogFile(getLogFilePath())
	if err != nil {
		// Nowhere to write without touching stderr.
		mu.Lock()
		install(zerolog.Nop(), levelName, nil)
		mu.Unlock()
		return
	}

	mu.Lock()
	install(zerolog.New(handle).Level(level).With().Timestamp().Logger(), levelName, handle)
	mu.Unlock()
}

// SetOutput routes all logging to w at the given level. Intended for tests.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	install(zerolog.New(w).Level(level), level.String(), nil)
	mu.Unlock()
}

// ParseLevel maps a level name to a zerolog level. Empty, "off" and
// "disabled" map to zerolog.Disabled.
func ParseLevel(s string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "disabled", "none":
		return zerolog.Disabled, true
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.Disabled, false
	}
	return level, true
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	mu.RLock()
	logger := base
	mu.RUnlock()
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}

// getLogFilePath returns the path to the log file
// It respects XDG_STATE_HOME if set, otherwise uses the xdg default
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return appDirName + ".log"
	}
	return filepath.Join(stateHome, appDirName, appDirName+".log")
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
