package logging

import (
	"context"
	"io"
	"sync"
	"time"
)

// StreamLogger writes log lines to an io.Writer such as stderr
type StreamLogger struct {
	out    *lockedWriter
	format Format
	level  Level
	fields Fields
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) write(p []byte) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, _ = lw.w.Write(p)
}

// NewStreamLogger creates a logger writing to w at or above level
func NewStreamLogger(w io.Writer, format Format, level Level) *StreamLogger {
	return &StreamLogger{
		out:    &lockedWriter{w: w},
		format: format,
		level:  level,
	}
}

func (l *StreamLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

func (l *StreamLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

func (l *StreamLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

func (l *StreamLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger sharing the same writer
func (l *StreamLogger) WithFields(fields Fields) Logger {
	return &StreamLogger{
		out:    l.out,
		format: l.format,
		level:  l.level,
		fields: merge(l.fields, fields),
	}
}

// Close is a no-op; the writer belongs to the caller
func (l *StreamLogger) Close() error {
	return nil
}

func (l *StreamLogger) log(level Level, msg string, err error, fields Fields) {
	if level < l.level {
		return
	}
	line, encErr := encode(l.format, record{
		time:   time.Now(),
		level:  level,
		msg:    msg,
		err:    err,
		fields: merge(l.fields, fields),
	})
	if encErr != nil {
		return
	}
	l.out.write(line)
}
