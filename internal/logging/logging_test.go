package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "bgcheck.log")
	logger, closeFn, err := New(Options{Path: path, Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("reading updated", zap.Float64("value", 5.5))
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, data)
	}
	if rec["msg"] != "reading updated" || rec["value"] != 5.5 {
		t.Fatalf("unexpected record: %v", rec)
	}
	if _, ok := rec["timestamp"]; !ok {
		t.Fatalf("record has no timestamp: %v", rec)
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bgcheck.log")
	logger, closeFn, err := New(Options{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	_ = closeFn()

	data, _ := os.ReadFile(path)
	out := string(data)
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Fatalf("level filtering wrong, log:\n%s", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Fatalf("console format should use capital levels, log:\n%s", out)
	}
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, closeFn, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("dropped")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewOrNop_FallsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// A regular file in the directory position makes MkdirAll fail.
	logger, closeFn, err := NewOrNop(Options{Path: filepath.Join(blocker, "bgcheck.log")})
	if err == nil {
		t.Fatal("expected an error for an unusable path")
	}
	if logger == nil || closeFn == nil {
		t.Fatal("NewOrNop must always return a usable logger")
	}
	logger.Info("still fine")
	_ = closeFn()
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
