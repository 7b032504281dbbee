package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "loud")

	l.Debug("debug line")
	l.Info("info line")

	if strings.Contains(buf.String(), "debug line") {
		t.Error("debug should be filtered at the fallback level")
	}
	if !strings.Contains(buf.String(), "info line") {
		t.Error("info should be written at the fallback level")
	}
}

func TestInitWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, "debug", false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer func() {
		Close()
		Logger = nil
	}()

	Info("catalog loaded", "workLogs", 3)

	matches, err := filepath.Glob(filepath.Join(dir, "archive-browser-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one log file, got %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "catalog loaded") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestHelpersAreSafeBeforeInit(t *testing.T) {
	Logger = nil
	Info("x")
	Debug("x")
	Warn("x")
	Error("x")
	l := WithPrefix("p")
	if l == nil {
		t.Fatal("WithPrefix should return a logger before Init")
	}
	l.Info("x")
}

func TestWithPrefixTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	Logger = New(&buf, "info")
	defer func() { Logger = nil }()

	WithPrefix("indexer").Info("Catalog built")

	if !strings.Contains(buf.String(), "indexer") || !strings.Contains(buf.String(), "Catalog built") {
		t.Errorf("prefixed record missing: %q", buf.String())
	}
}
