package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestFileLogger(t *testing.T, format Format, level Level) (*FileLogger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "namediff.log")
	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: format, Level: level})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "namediff.log")

	logger, err := NewFileLogger(FileLoggerConfig{Path: logPath, Format: FormatText, Level: InfoLevel})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file was not created: %v", err)
	}
}

func TestFileLogger_LevelFilter(t *testing.T) {
	logger, logPath := newTestFileLogger(t, FormatText, WarnLevel)
	ctx := context.Background()

	logger.Debug(ctx, "walking directory", nil)
	logger.Info(ctx, "listing written", nil)
	logger.Warn(ctx, "preview truncated", nil)
	logger.Error(ctx, "write failed", nil, nil)
	logger.Close()

	content := readLog(t, logPath)
	for _, filtered := range []string{"walking directory", "listing written"} {
		if strings.Contains(content, filtered) {
			t.Errorf("%q should be filtered at WARN level", filtered)
		}
	}
	for _, kept := range []string{"preview truncated", "write failed"} {
		if !strings.Contains(content, kept) {
			t.Errorf("%q should be present", kept)
		}
	}
}

func TestFileLogger_TextFormat(t *testing.T) {
	logger, logPath := newTestFileLogger(t, FormatText, InfoLevel)

	logger.Info(context.Background(), "listing written", Fields{"root": "/srv", "count": 42})
	logger.Close()

	content := readLog(t, logPath)
	if !strings.Contains(content, "[INFO] listing written") {
		t.Errorf("missing level and message in %q", content)
	}
	// fields are written in key order
	if !strings.Contains(content, "count=42 root=/srv") {
		t.Errorf("fields not sorted in %q", content)
	}
}

func TestFileLogger_JSONFormat(t *testing.T) {
	logger, logPath := newTestFileLogger(t, FormatJSON, InfoLevel)

	logger.Error(context.Background(), "write failed", os.ErrPermission, Fields{"path": "only_in_a.txt"})
	logger.Close()

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(readLog(t, logPath)), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	want := map[string]interface{}{
		"level":   "ERROR",
		"message": "write failed",
		"path":    "only_in_a.txt",
		"error":   os.ErrPermission.Error(),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if entry["timestamp"] == nil {
		t.Error("timestamp should be present")
	}
}

func TestFileLogger_WithFields(t *testing.T) {
	logger, logPath := newTestFileLogger(t, FormatJSON, InfoLevel)

	scoped := logger.WithFields(Fields{"command": "compare"})
	scoped.Info(context.Background(), "compared", Fields{"only_a": 3})
	// closing the parent closes the shared file
	logger.Close()

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(readLog(t, logPath)), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["command"] != "compare" {
		t.Errorf("command = %v, want compare", entry["command"])
	}
	if entry["only_a"] != float64(3) {
		t.Errorf("only_a = %v, want 3", entry["only_a"])
	}

	// writes after close are dropped, not panics
	scoped.Info(context.Background(), "late", nil)
}

func TestFileLogger_Rotation(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "namediff.log")
	logger, err := NewFileLogger(FileLoggerConfig{
		Path:       logPath,
		Format:     FormatText,
		Level:      InfoLevel,
		MaxSize:    100,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	for i := 0; i < 20; i++ {
		logger.Info(context.Background(), "a message long enough to push the file over its size limit", nil)
	}
	logger.Close()

	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("backup .1 should exist: %v", err)
	}
	if _, err := os.Stat(logPath + ".3"); !os.IsNotExist(err) {
		t.Error("backups beyond MaxBackups should be removed")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("main log file should still exist: %v", err)
	}
}

func TestFileLogger_ConcurrentWrites(t *testing.T) {
	logger, logPath := newTestFileLogger(t, FormatText, InfoLevel)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			scoped := logger.WithFields(Fields{"worker": id})
			for j := 0; j < 50; j++ {
				scoped.Info(context.Background(), "concurrent message", Fields{"iteration": j})
			}
		}(i)
	}
	wg.Wait()
	logger.Close()

	lines := strings.Split(strings.TrimSpace(readLog(t, logPath)), "\n")
	if len(lines) != 500 {
		t.Errorf("got %d lines, want 500", len(lines))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"Warning", WarnLevel},
		{"error", ErrorLevel},
		{"unknown", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		DebugLevel: "DEBUG",
		InfoLevel:  "INFO",
		WarnLevel:  "WARN",
		ErrorLevel: "ERROR",
		Level(99):  "UNKNOWN",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}
