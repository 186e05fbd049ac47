package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "typelog.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("input.changed", map[string]interface{}{"text": "ab"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("expected one trace line")
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON entry: %v", err)
	}
	if entry.Event != "input.changed" || entry.Payload["text"] != "ab" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err = %v", err)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := useTempLog(t)
	Error(errors.New("boom"))
	Error(nil)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Count(string(data), "boom") != 1 {
		t.Fatalf("expected a single error line, got %q", string(data))
	}
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
}
