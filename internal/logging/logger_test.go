package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Info("loaded env file", map[string]any{"file": ".env", "applied": 2})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry["level"] != "info" {
		t.Errorf("level: got %v, want info", entry["level"])
	}
	if entry["message"] != "loaded env file" {
		t.Errorf("message: got %v", entry["message"])
	}
	if entry["file"] != ".env" {
		t.Errorf("file: got %v", entry["file"])
	}
	if entry["applied"] != float64(2) {
		t.Errorf("applied: got %v", entry["applied"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestJSONLogger_DebugRequiresVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	New(&buf, true).Debug("shown", nil)
	if !strings.Contains(buf.String(), `"shown"`) {
		t.Errorf("expected debug entry, got %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("x", nil)
	l.Warn("x", nil)
	l.Error("x", nil)
	l.Debug("x", nil)
}
