package debug

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	enabled   bool
	enabledMu sync.RWMutex
	noColor   bool
	logger    *zap.SugaredLogger
	loggerMu  sync.RWMutex
)

// SetDebug enables or disables debug mode.
// The stderr logger is built on first enable unless one was installed with SetLogger.
func SetDebug(enable bool) {
	enabledMu.Lock()
	enabled = enable
	enabledMu.Unlock()

	if !enable {
		return
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = newStderrLogger()
	}
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored level names.
// Takes effect for loggers built after the call.
func SetNoColor(disable bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if noColor != disable {
		noColor = disable
		logger = nil
	}
}

// SetLogger replaces the logger used for debug output.
// Passing nil restores the default stderr logger.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		logger = nil
		return
	}
	logger = l.Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger != nil {
		_ = logger.Sync()
	}
}

func newStderrLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.TimeKey = "T"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	if noColor {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func current() *zap.SugaredLogger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = newStderrLogger()
	}
	return logger
}

// Debug logs a formatted debug message
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debug(fmt.Sprintf(format, args...))
}

// DebugSection logs a section header
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	current().Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue logs a single key/value pair as a structured field
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debugw(key, "value", value)
}

// DebugFields logs a message with structured key/value pairs
func DebugFields(msg string, keysAndValues ...interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debugw(msg, keysAndValues...)
}
