package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message
type Level int

// The zero Level is unset; New resolves it to LevelInfo
const (
	LevelDebug Level = iota + 1
	LevelInfo
	LevelWarning
	LevelError
	// LevelSuccess filters like LevelInfo but prints in bright green
	LevelSuccess
)

// ANSI color codes per level
const (
	colorReset       = "\033[0m"
	colorCyan        = "\033[36m"
	colorGreen       = "\033[32m"
	colorYellow      = "\033[33m"
	colorRed         = "\033[31m"
	colorBrightGreen = "\033[92m"
)

// TimestampFormat is the layout used for the timestamp of every line
const TimestampFormat = "2006-01-02 15:04:05"

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// Color returns the ANSI escape sequence used for the level
func (l Level) Color() string {
	switch l {
	case LevelDebug:
		return colorCyan
	case LevelInfo:
		return colorGreen
	case LevelWarning:
		return colorYellow
	case LevelError:
		return colorRed
	case LevelSuccess:
		return colorBrightGreen
	default:
		return colorReset
	}
}

// severity maps a level onto the filter ordering
func (l Level) severity() Level {
	if l == LevelSuccess {
		return LevelInfo
	}
	return l
}

// Enabled reports whether a message at l passes threshold
func (l Level) Enabled(threshold Level) bool {
	return l.severity() >= threshold.severity()
}

// ParseLevel converts a level name (case-insensitive) into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "SUCCESS":
		return LevelSuccess, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ErrLogWrite matches every *WriteError
var ErrLogWrite = errors.New("log write failed")

// WriteError reports a failure to open or append to the log file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write log file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrLogWrite) match any WriteError
func (e *WriteError) Is(target error) bool { return target == ErrLogWrite }

// Options configures a Logger
type Options struct {
	// MinLevel is the lowest level written, LevelInfo when unset
	MinLevel Level
	// FilePath duplicates every emitted line (without colors) to a file
	FilePath string
	// Output is the console writer, os.Stdout when nil
	Output io.Writer
}

// DefaultOptions returns INFO level, console only
func DefaultOptions() Options {
	return Options{MinLevel: LevelInfo}
}

// Logger writes leveled, colored lines to the console and optionally a file.
// A Logger is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	output   io.Writer
	level    Level
	filePath string
	file     *os.File
	err      error
	now      func() time.Time
}

// New creates a logger. The log file, if any, is opened once in append
// mode and kept until Close.
func New(opts Options) (*Logger, error) {
	l := &Logger{
		output:   opts.Output,
		level:    opts.MinLevel,
		filePath: opts.FilePath,
		now:      time.Now,
	}
	if l.output == nil {
		l.output = os.Stdout
	}
	if l.level == 0 {
		l.level = LevelInfo
	}

	if opts.FilePath != "" {
		f, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, &WriteError{Path: opts.FilePath, Err: err}
		}
		l.file = f
	}

	return l, nil
}

// Default returns a console-only logger at INFO level
func Default() *Logger {
	l, _ := New(DefaultOptions())
	return l
}

// SetOutput sets the console destination
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the minimum log level
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// FilePath returns the configured log file, empty when console only
func (l *Logger) FilePath() string {
	return l.filePath
}

// Err returns the first file write error seen by the logger
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close releases the log file. Later file writes fail with a WriteError.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	if err != nil {
		return &WriteError{Path: l.filePath, Err: err}
	}
	return nil
}

// Log writes message at level. Messages below the minimum level are
// dropped from both console and file.
func (l *Logger) Log(level Level, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !level.Enabled(l.level) {
		return nil
	}

	line := fmt.Sprintf("[%s] [%s] %s", l.now().Format(TimestampFormat), level, message)
	_, _ = fmt.Fprintf(l.output, "%s%s%s\n", level.Color(), line, colorReset)

	if l.filePath == "" {
		return nil
	}

	var err error
	if l.file == nil {
		err = &WriteError{Path: l.filePath, Err: os.ErrClosed}
	} else if _, werr := io.WriteString(l.file, line+"\n"); werr != nil {
		err = &WriteError{Path: l.filePath, Err: werr}
	}
	if err != nil && l.err == nil {
		l.err = err
	}
	return err
}

// Logf formats and writes a message at level
func (l *Logger) Logf(level Level, format string, args ...interface{}) error {
	return l.Log(level, fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) error {
	return l.Logf(LevelDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) error {
	return l.Logf(LevelInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) error {
	return l.Logf(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) error {
	return l.Logf(LevelError, format, args...)
}

// Success logs a success message
func (l *Logger) Success(format string, args ...interface{}) error {
	return l.Logf(LevelSuccess, format, args...)
}
