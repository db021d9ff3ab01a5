package system

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"pirate-platformer/internal/camera"
	"pirate-platformer/internal/tilemap"
)

const frame = 1.0 / 60

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// floorMap returns a w×h map with a grass floor along row floorY.
func floorMap(w, h, floorY int) *tilemap.Map {
	m := tilemap.New(w, h)
	for x := 0; x < w; x++ {
		m.Set(x, floorY, tilemap.TileGrass)
	}
	return m
}

func newTestWorld(m *tilemap.Map) *World {
	return NewWorld(m, DefaultTuning(), camera.Rect{W: 10, H: 6}, quietLogger())
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func mustEntity(t *testing.T, e *Entity) *Entity {
	t.Helper()
	if e == nil {
		t.Fatal("entity is nil")
	}
	return e
}
