// Package dlog provides the leveled logger used by cookiegen. All log output
// goes to stderr: stdout belongs to the cookie stream and must never carry
// anything else. The default logger is "none", matching the silent contract
// the parent process expects.
package dlog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Cycloctane/xzspider2/internal/config"
)

// Log levels, in increasing verbosity.
const (
	LevelNone Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

// Level is a log verbosity level.
type Level int

// ParseLevel maps a level name from the configuration to a Level. Unknown
// names are treated as "none"; config.Setup rejects them before this runs.
func ParseLevel(name string) Level {
	switch name {
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	}
	return LevelNone
}

// Logger is a leveled line logger. Safe for concurrent use.
type Logger struct {
	mutex  sync.Mutex
	writer io.Writer
	level  Level
}

// Client is the process wide logger. It discards everything until Start has
// applied the configuration.
var Client = &Logger{writer: io.Discard}

// Start configures the global logger from the initialized configuration and
// ties its lifetime to the given context. The WaitGroup is released once the
// context is done and the logger has been flushed.
func Start(ctx context.Context, wg *sync.WaitGroup) {
	Client.mutex.Lock()
	if config.Common.Logger == "stderr" {
		Client.writer = os.Stderr
	} else {
		Client.writer = io.Discard
	}
	Client.level = ParseLevel(config.Common.LogLevel)
	Client.mutex.Unlock()

	go func() {
		<-ctx.Done()
		Client.flush()
		wg.Done()
	}()
}

// Error logs at error level and returns the formatted message.
func (l *Logger) Error(args ...interface{}) string {
	return l.log(LevelError, "ERROR", args)
}

// Warn logs at warn level and returns the formatted message.
func (l *Logger) Warn(args ...interface{}) string {
	return l.log(LevelWarn, "WARN", args)
}

// Info logs at info level and returns the formatted message.
func (l *Logger) Info(args ...interface{}) string {
	return l.log(LevelInfo, "INFO", args)
}

// Debug logs at debug level and returns the formatted message.
func (l *Logger) Debug(args ...interface{}) string {
	return l.log(LevelDebug, "DEBUG", args)
}

func (l *Logger) log(level Level, tag string, args []interface{}) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}
	message := strings.Join(parts, "|")

	l.mutex.Lock()
	defer l.mutex.Unlock()
	if level > l.level {
		return message
	}
	fmt.Fprintf(l.writer, "%s|%s|%s\n",
		time.Now().Format("20060102-150405"), tag, message)
	return message
}

// flush makes sure buffered output reaches the sink. Stderr is unbuffered,
// so this only syncs when the sink supports it.
func (l *Logger) flush() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if f, ok := l.writer.(*os.File); ok {
		f.Sync()
	}
}
