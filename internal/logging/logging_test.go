package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "faultnote.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := withLog(t)
	SetTraceEnabled(false)
	Trace("app.start", map[string]interface{}{"k": "v"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err = %v", err)
	}
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := withLog(t)
	SetTraceEnabled(true)
	Trace("submit.start", map[string]interface{}{"target": "page-1"})
	Trace("submit.success", nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 trace lines, got %d", len(lines))
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry.Event != "submit.start" || entry.Payload["target"] != "page-1" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestErrorAppends(t *testing.T) {
	path := withLog(t)
	Error(nil)
	Error(errors.New("first"))
	Error(errors.New("second"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("expected both errors in log, got %q", data)
	}
}

func TestConfigureEmptyRestoresDefault(t *testing.T) {
	withLog(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
