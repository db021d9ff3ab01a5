package gui

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"pirate-platformer/internal/camera"
	"pirate-platformer/internal/config"
	"pirate-platformer/internal/input"
	"pirate-platformer/internal/session"
	"pirate-platformer/internal/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	m := tilemap.New(40, 14)
	for x := 0; x < 40; x++ {
		m.Set(x, 13, tilemap.TileGrass)
	}
	m.Set(3, 12, tilemap.TileCaptainSpawn)
	s, err := session.New(m, config.Default(), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return New(s, 60)
}

func TestSizeFollowsCamera(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	cfg := config.Default()
	if w != int(cfg.Camera.Width*TilePx) || h != int(cfg.Camera.Height*TilePx) {
		t.Fatalf("Layout = %dx%d; want %vx%v tiles of %d px", w, h, cfg.Camera.Width, cfg.Camera.Height, TilePx)
	}
}

func TestPollKeysMapsBindings(t *testing.T) {
	g := newTestGame(t)
	held := map[ebiten.Key]bool{ebiten.KeyArrowRight: true, ebiten.KeySpace: true}
	g.pollKeys(func(k ebiten.Key) bool { return held[k] })
	if !g.keys.Down(input.KeyRight) || !g.keys.Down(input.KeyUp) {
		t.Fatal("arrow right and space should hold D and W")
	}
	if g.keys.Down(input.KeyLeft) {
		t.Fatal("A should not be held")
	}

	g.pollKeys(func(ebiten.Key) bool { return false })
	if g.keys.Down(input.KeyRight) {
		t.Fatal("releasing a key should clear it on the next poll")
	}
}

func TestStepMovesCaptain(t *testing.T) {
	g := newTestGame(t)
	_, p := g.session.World.Player()
	startX := p.Pos.X
	g.pollKeys(func(k ebiten.Key) bool { return k == ebiten.KeyD })
	for i := 0; i < 30; i++ {
		if err := g.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if p.Pos.X <= startX {
		t.Fatalf("captain x = %v; want > %v", p.Pos.X, startX)
	}
}

func TestQuitTerminates(t *testing.T) {
	g := newTestGame(t)
	g.pollKeys(func(k ebiten.Key) bool { return k == ebiten.KeyEscape })
	if err := g.step(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("step error = %v; want ebiten.Termination", err)
	}
}

func TestToScreen(t *testing.T) {
	cam := camera.Rect{X: 2.5, Y: 1}
	x, y := toScreen(cam, 3, 2)
	if x != TilePx/2 || y != TilePx {
		t.Fatalf("toScreen = (%v,%v); want (%d,%d)", x, y, TilePx/2, TilePx)
	}
}

func TestTileColor(t *testing.T) {
	if _, ok := tileColor(tilemap.TileEmpty); ok {
		t.Error("empty tiles should draw as sky")
	}
	if c, ok := tileColor(tilemap.TileGrass); !ok || c != grassColor {
		t.Error("grass should draw green")
	}
	if _, ok := tileColor(tilemap.TileSolid); !ok {
		t.Error("solid tiles should draw")
	}
}
