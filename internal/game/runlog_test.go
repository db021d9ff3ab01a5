package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	if err != nil {
		t.Fatalf("runLogDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "pirate-platformer")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := runLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "pirate-platformer")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	if err := saveRunLog(RunLog{Level: "harbor", Frames: 600, Falls: 1}); err != nil {
		t.Fatalf("saveRunLog: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "pirate-platformer", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Errorf("log entry should end with newline; got: %q", data)
	}
	var got RunLog
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Level != "harbor" || got.Frames != 600 || got.Falls != 1 {
		t.Errorf("decoded %+v; want level harbor, 600 frames, 1 fall", got)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	for i := range 3 {
		if err := saveRunLog(RunLog{Level: "harbor", Restarts: i}); err != nil {
			t.Fatalf("saveRunLog: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmp, "pirate-platformer", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}
