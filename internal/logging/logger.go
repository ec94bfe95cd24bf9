// Package logging provides categorized file-based logging for surveydash.
// Logs are written to .surveydash/logs/ with one file per category; when
// debug mode is off the whole package is a silent no-op so the TUI never
// fights log writes for the terminal.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category names one logging subsystem.
type Category string

const (
	CategoryBoot     Category = "boot"     // startup, config, session
	CategoryData     Category = "data"     // loader, table construction
	CategoryAnalysis Category = "analysis" // aggregation, memoization
	CategoryUI       Category = "ui"       // page transitions, renders
)

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Options controls logger behavior. Values come from internal/config;
// the mirror struct keeps this package free of a config import.
type Options struct {
	DebugMode bool
	Level     string // debug, info, warn, error
	SessionID string // tagged onto every line when set
}

// Logger writes to one category's log file.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	mu        sync.RWMutex
	loggers   = make(map[Category]*Logger)
	logsDir   string
	opts      Options
	logLevel  = LevelInfo
	sessionID string
)

// Initialize sets up the logging directory under the workspace.
// A no-op (and nil error) when debug mode is disabled.
func Initialize(workspace string, o Options) error {
	mu.Lock()
	defer mu.Unlock()

	opts = o
	sessionID = o.SessionID
	switch o.Level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}

	if !o.DebugMode {
		return nil
	}

	logsDir = filepath.Join(workspace, ".surveydash", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("create logs directory: %w", err)
	}
	return nil
}

// Get returns (or creates) the logger for a category. Returns a no-op
// logger when debug mode is off or the log file cannot be opened.
func Get(category Category) *Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	enabled := opts.DebugMode && logsDir != ""
	mu.RUnlock()

	if !enabled {
		return &Logger{category: category}
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

func (l *Logger) printf(tag, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if sessionID != "" {
		l.logger.Printf("[%s] [session:%s] %s", tag, sessionID, msg)
		return
	}
	l.logger.Printf("[%s] %s", tag, msg)
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.printf("DEBUG", format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.printf("INFO", format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.printf("WARN", format, args...)
}

// Error logs unconditionally (when the logger exists at all).
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.printf("ERROR", format, args...)
}

// CloseAll closes all open log files. Call at shutdown.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Convenience functions per category; no-ops when disabled.

// Boot logs to the boot category.
func Boot(format string, args ...interface{}) { Get(CategoryBoot).Info(format, args...) }

// BootError logs an error to the boot category.
func BootError(format string, args ...interface{}) { Get(CategoryBoot).Error(format, args...) }

// Data logs to the data category.
func Data(format string, args ...interface{}) { Get(CategoryData).Info(format, args...) }

// DataDebug logs debug to the data category.
func DataDebug(format string, args ...interface{}) { Get(CategoryData).Debug(format, args...) }

// DataError logs an error to the data category.
func DataError(format string, args ...interface{}) { Get(CategoryData).Error(format, args...) }

// Analysis logs to the analysis category.
func Analysis(format string, args ...interface{}) { Get(CategoryAnalysis).Info(format, args...) }

// AnalysisDebug logs debug to the analysis category.
func AnalysisDebug(format string, args ...interface{}) { Get(CategoryAnalysis).Debug(format, args...) }

// AnalysisWarn logs a warning to the analysis category.
func AnalysisWarn(format string, args ...interface{}) { Get(CategoryAnalysis).Warn(format, args...) }

// UI logs to the ui category.
func UI(format string, args ...interface{}) { Get(CategoryUI).Info(format, args...) }

// UIDebug logs debug to the ui category.
func UIDebug(format string, args ...interface{}) { Get(CategoryUI).Debug(format, args...) }

// Timer measures an operation's duration.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}
