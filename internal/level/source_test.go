package level

import (
	"os"
	"path/filepath"
	"testing"

	"pirate-platformer/internal/tilemap"
)

func TestSourceOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cove.txt")
	if err := os.WriteFile(path, []byte("@..\n\"\"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name  string
		src   Source
		want  string
		width int
	}{
		{"default", Source{}, "harbor", Default().Width},
		{"generated", Source{Generate: true, Seed: 7}, "generated-7", DefaultParams(7).Width},
		{"file wins", Source{Path: path, Generate: true}, "cove", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, m, err := tc.src.Open()
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if name != tc.want || m.Width != tc.width {
				t.Errorf("Open = (%q, width %d); want (%q, width %d)", name, m.Width, tc.want, tc.width)
			}
			if m.Count(tilemap.TileCaptainSpawn) != 1 {
				t.Errorf("level %q should have one captain", name)
			}
		})
	}
}

func TestSourceOpenMissingFile(t *testing.T) {
	if _, _, err := (Source{Path: filepath.Join(t.TempDir(), "nope.txt")}).Open(); err == nil {
		t.Fatal("Open should fail on a missing file")
	}
}
