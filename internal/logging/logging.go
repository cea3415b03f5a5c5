// Package logging wraps leveled, file-backed logging behind the same call
// shape as fmt.Sprintf:
//
//	logging.Debug("Relocating %d files", n)
//
// Log entries go to a per-invocation log file; with verbose enabled they are
// also tapped to stderr.
//
// This package may NOT depend on config or output (directly or indirectly),
// both of those log.
package logging

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	// DEBUG is only emitted to the log file, and only with verbose enabled
	DEBUG = "DEBUG"
	// INFO is for tracking normal operation
	INFO = "INFO"
	// WARNING marks recoverable oddities
	WARNING = "WARNING"
	// ERROR marks failures worth investigating
	ERROR = "ERROR"
	// CRITICAL marks failures that abort the invocation
	CRITICAL = "CRITICAL"
)

// MessageContext is the debugging context attached to every log entry
type MessageContext struct {
	Level     string
	TimeStamp time.Time
	File      string
	Line      int
}

// Handler receives every log entry and is responsible for persisting it
type Handler interface {
	SetFormatter(Formatter)
	SetVerbose(bool)
	Emit(ctx *MessageContext, message string, args ...interface{}) error
	Close()
}

var (
	mu             sync.Mutex
	currentHandler Handler
)

// CurrentHandler returns the active log handler
func CurrentHandler() Handler {
	mu.Lock()
	defer mu.Unlock()
	if currentHandler == nil {
		currentHandler = newFileHandler()
	}
	return currentHandler
}

// SetHandler replaces the active log handler, mainly for tests
func SetHandler(h Handler) {
	mu.Lock()
	defer mu.Unlock()
	if currentHandler != nil {
		currentHandler.Close()
	}
	currentHandler = h
}

// Close flushes and closes the active handler, it must be called before exit
// or trailing entries are lost.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if currentHandler != nil {
		currentHandler.Close()
		currentHandler = nil
	}
}

func getContext(level string, skipDepth int) *MessageContext {
	_, file, line, ok := runtime.Caller(skipDepth)
	if !ok {
		file, line = "<unknown>", -1
	}
	if idx := strings.LastIndexByte(file, '/'); idx != -1 {
		file = file[idx+1:]
	}
	return &MessageContext{
		Level:     level,
		TimeStamp: time.Now(),
		File:      file,
		Line:      line,
	}
}

func emit(level string, message string, args ...interface{}) {
	defer handlePanics(recover())
	ctx := getContext(level, 3)
	if err := CurrentHandler().Emit(ctx, message, args...); err != nil {
		fmt.Printf("Failed to emit log message: %v\n", err)
	}
}

// Debug logs a message at the DEBUG level
func Debug(message string, args ...interface{}) {
	emit(DEBUG, message, args...)
}

// Info logs a message at the INFO level
func Info(message string, args ...interface{}) {
	emit(INFO, message, args...)
}

// Warning logs a message at the WARNING level
func Warning(message string, args ...interface{}) {
	emit(WARNING, message, args...)
}

// Error logs a message at the ERROR level
func Error(message string, args ...interface{}) {
	emit(ERROR, message, args...)
}

// Errorf is an alias for Error, for drop-in compatibility with stdlib style loggers
func Errorf(message string, args ...interface{}) {
	emit(ERROR, message, args...)
}

// Critical logs a message at the CRITICAL level
func Critical(message string, args ...interface{}) {
	emit(CRITICAL, message, args...)
}

func handlePanics(err interface{}) {
	if err != nil {
		fmt.Printf("Panic during logging: %v", err)
	}
}
