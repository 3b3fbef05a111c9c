package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerFormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: "info", Output: &buf})

	log.Info("saved %d matches to %s", 3, "matches.txt")

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("not a JSON record: %q", buf.String())
	}
	if rec["msg"] != "saved 3 matches to matches.txt" || rec["level"] != "INFO" {
		t.Errorf("record = %v", rec)
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: "WARN", Output: &buf})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("shown too")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("below-level records written: %s", buf.String())
	}
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("got %d records, want 2", n)
	}
}

func TestUnknownLevelDefaultsToWarn(t *testing.T) {
	if got := getLoggerLevel("verbose"); got.String() != "WARN" {
		t.Errorf("getLoggerLevel(verbose) = %v", got)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cricstats.log")
	w, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	NewLogger(&Config{Level: "debug", Output: w}).Debug("to file")
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	w, err = OpenFile("")
	if err != nil || w == nil {
		t.Fatalf("OpenFile(\"\") = %v, %v", w, err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("closing stderr wrapper: %v", err)
	}
}
