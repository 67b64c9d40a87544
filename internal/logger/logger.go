package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents log severity
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel converts a string to a Level, defaulting to INFO
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F is a shorthand for creating a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func toZap(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

// Config holds logger configuration
type Config struct {
	Level      Level  // Minimum log level
	FilePath   string // Path to log file
	MaxSize    int    // Max size in megabytes before rotation (default: 10)
	MaxAge     int    // Days to keep rotated files (default: 7)
	MaxBackups int    // Max number of backup files (default: 5)
	Console    bool   // Enable console logging
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	logPath := filepath.Join(home, ".tutordesk", "logs", "tutordesk.log")

	return Config{
		Level:      INFO,
		FilePath:   logPath,
		MaxSize:    10,
		MaxAge:     7,
		MaxBackups: 5,
		Console:    false, // stderr would draw over the TUI
	}
}

// Logger writes leveled, structured entries through zap
type Logger struct {
	config Config
	file   *lumberjack.Logger
	zl     *zap.Logger
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Init initializes the global logger. Every entry it writes carries a
// session id unique to this process.
func Init(config Config) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(config)
		if err != nil {
			return
		}
		globalLogger = l.WithFields(F("session", uuid.NewString()))
	})
	if err != nil {
		// Let the next Init try again.
		once = sync.Once{}
	}
	return err
}

// New creates a new logger instance
func New(config Config) (*Logger, error) {
	l := &Logger{config: config}

	var sinks []zapcore.WriteSyncer
	if config.FilePath != "" {
		f, err := newFileSink(config)
		if err != nil {
			return nil, err
		}
		l.file = f
		sinks = append(sinks, zapcore.AddSync(f))
	}
	if config.Console {
		sinks = append(sinks, zapcore.Lock(os.Stderr))
	}

	if len(sinks) == 0 {
		l.zl = zap.NewNop()
		return l, nil
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		zap.NewAtomicLevelAt(config.Level.zapLevel()),
	)
	// Skip log() and the exported wrapper that called it.
	l.zl = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))
	return l, nil
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	zf := toZap(fields)
	switch level {
	case DEBUG:
		l.zl.Debug(msg, zf...)
	case INFO:
		l.zl.Info(msg, zf...)
	case WARN:
		l.zl.Warn(msg, zf...)
	default:
		l.zl.Error(msg, zf...)
	}
}

// WithFields creates a new logger with preset fields
func (l *Logger) WithFields(fields ...Field) *Logger {
	return &Logger{
		config: l.config,
		file:   l.file,
		zl:     l.zl.With(toZap(fields)...),
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(DEBUG, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(INFO, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(WARN, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(ERROR, msg, fields)
}

// Close flushes buffered entries and closes the log file
func (l *Logger) Close() error {
	_ = l.zl.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger functions

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.log(DEBUG, msg, fields)
	}
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.log(INFO, msg, fields)
	}
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.log(WARN, msg, fields)
	}
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.log(ERROR, msg, fields)
	}
}

// WithFields creates a new logger with preset fields using the global
// logger. Before Init it returns a logger that discards everything.
func WithFields(fields ...Field) *Logger {
	if globalLogger != nil {
		return globalLogger.WithFields(fields...)
	}
	return &Logger{zl: zap.NewNop()}
}

// Close closes the global logger. A later Init starts a new one.
func Close() error {
	if globalLogger == nil {
		return nil
	}
	err := globalLogger.Close()
	globalLogger = nil
	once = sync.Once{}
	return err
}

// GetConfig returns the current logger configuration
func GetConfig() Config {
	if globalLogger != nil {
		return globalLogger.config
	}
	return DefaultConfig()
}

// String describes where the logger writes
func (c Config) String() string {
	return fmt.Sprintf("level=%s file=%q console=%t", c.Level, c.FilePath, c.Console)
}
