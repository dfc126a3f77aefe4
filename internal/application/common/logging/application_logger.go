// Package logging provides structured application logging with correlation
// ID propagation through context.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ApplicationLogger defines the interface for structured application logging.
type ApplicationLogger interface {
	Debug(ctx context.Context, message string, fields Fields)
	Info(ctx context.Context, message string, fields Fields)
	Warn(ctx context.Context, message string, fields Fields)
	Error(ctx context.Context, message string, fields Fields)
	ErrorWithError(ctx context.Context, err error, message string, fields Fields)
	WithComponent(component string) ApplicationLogger
}

// Fields represents structured logging fields.
type Fields map[string]interface{}

// Config represents logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output string // stdout, stderr, buffer (buffer is for testing)
}

// LogEntry represents the structure of emitted log entries.
type LogEntry struct {
	Timestamp     string                 `json:"timestamp"`
	Level         string                 `json:"level"`
	Message       string                 `json:"message"`
	CorrelationID string                 `json:"correlation_id,omitempty"`
	Component     string                 `json:"component,omitempty"`
	Error         string                 `json:"error,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// Log level ordering for threshold filtering.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

//nolint:gochecknoglobals // Fixed level name table.
var levelOrder = map[string]int{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

type applicationLoggerImpl struct {
	config    Config
	component string
	threshold int
	writer    io.Writer
	buffer    *bytes.Buffer
	mu        *sync.Mutex
}

// NewApplicationLogger creates a structured logger from the given config.
// Unknown levels and formats are rejected so misconfiguration surfaces at
// startup rather than as silently dropped logs.
func NewApplicationLogger(config Config) (ApplicationLogger, error) {
	threshold, ok := levelOrder[strings.ToLower(config.Level)]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", config.Level)
	}

	if config.Format != "json" && config.Format != "text" {
		return nil, fmt.Errorf("unknown log format %q", config.Format)
	}

	logger := &applicationLoggerImpl{
		config:    config,
		threshold: threshold,
		mu:        &sync.Mutex{},
	}

	switch config.Output {
	case "", "stdout":
		logger.writer = os.Stdout
	case "stderr":
		logger.writer = os.Stderr
	case "buffer":
		logger.buffer = &bytes.Buffer{}
		logger.writer = logger.buffer
	default:
		return nil, fmt.Errorf("unknown log output %q", config.Output)
	}

	return logger, nil
}

func (l *applicationLoggerImpl) Debug(ctx context.Context, message string, fields Fields) {
	l.logEntry(ctx, "DEBUG", levelDebug, message, "", fields)
}

func (l *applicationLoggerImpl) Info(ctx context.Context, message string, fields Fields) {
	l.logEntry(ctx, "INFO", levelInfo, message, "", fields)
}

func (l *applicationLoggerImpl) Warn(ctx context.Context, message string, fields Fields) {
	l.logEntry(ctx, "WARN", levelWarn, message, "", fields)
}

func (l *applicationLoggerImpl) Error(ctx context.Context, message string, fields Fields) {
	l.logEntry(ctx, "ERROR", levelError, message, "", fields)
}

func (l *applicationLoggerImpl) ErrorWithError(ctx context.Context, err error, message string, fields Fields) {
	errorStr := ""
	if err != nil {
		errorStr = err.Error()
	}
	l.logEntry(ctx, "ERROR", levelError, message, errorStr, fields)
}

// WithComponent returns a logger that stamps every entry with the component.
func (l *applicationLoggerImpl) WithComponent(component string) ApplicationLogger {
	clone := *l
	clone.component = component
	return &clone
}

// Buffer returns the captured output when the logger was configured with the
// buffer output, or nil otherwise. Intended for tests.
func (l *applicationLoggerImpl) Buffer() *bytes.Buffer {
	return l.buffer
}

func (l *applicationLoggerImpl) logEntry(
	ctx context.Context,
	levelName string,
	level int,
	message, errorStr string,
	fields Fields,
) {
	if level < l.threshold {
		return
	}

	entry := LogEntry{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Level:         levelName,
		Message:       message,
		CorrelationID: CorrelationIDFromContext(ctx),
		Component:     l.component,
		Error:         errorStr,
	}
	if len(fields) > 0 {
		entry.Metadata = make(map[string]interface{}, len(fields))
		for key, value := range fields {
			entry.Metadata[key] = value
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.Format == "json" {
		data, err := json.Marshal(entry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode log entry: %v\n", err)
			return
		}
		_, _ = l.writer.Write(append(data, '\n'))
		return
	}

	var b strings.Builder
	b.WriteString(entry.Timestamp)
	b.WriteString(" [")
	b.WriteString(entry.Level)
	b.WriteString("] ")
	if entry.Component != "" {
		b.WriteString(entry.Component)
		b.WriteString(": ")
	}
	b.WriteString(entry.Message)
	if entry.Error != "" {
		b.WriteString(" error=")
		b.WriteString(entry.Error)
	}
	for key, value := range entry.Metadata {
		fmt.Fprintf(&b, " %s=%v", key, value)
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(l.writer, b.String())
}
