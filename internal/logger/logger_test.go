package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLevelFiltering(t *testing.T) {
	defer ResetRegistry()

	var buf bytes.Buffer
	l := NewWithWriter("test", &buf, INFO)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Error("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug line written at INFO level: %s", out)
	}
	if !strings.Contains(out, "INFO: shown 2") || !strings.Contains(out, "ERROR: shown 3") {
		t.Errorf("Missing expected lines: %s", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("Expected the caller's file in the line: %s", out)
	}
}

func TestGetUnknownDiscards(t *testing.T) {
	defer ResetRegistry()

	l := Get("nobody")
	if l == nil {
		t.Fatalf("Expected a discarding logger, got nil")
	}
	l.Error("dropped")
	if l.Enabled(ERROR) {
		t.Errorf("Expected the discarding logger to be disabled")
	}
}

func TestNewWritesDatedFile(t *testing.T) {
	defer ResetRegistry()

	dir := t.TempDir()
	l, err := New("file", dir, DEBUG)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	l.Info("hello")

	again, err := New("file", dir, ERROR)
	if err != nil || again != l {
		t.Errorf("Expected the registered logger back, got %v, %v", again, err)
	}
	if Get("file") != l {
		t.Errorf("Get did not return the registered logger")
	}

	name := filepath.Join(dir, "RelAlg-"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "INFO: hello") {
		t.Errorf("Log file missing line: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]LogLevel{"debug": DEBUG, "INFO": INFO, " error ": ERROR} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("Expected an error for an unknown level")
	}
}
