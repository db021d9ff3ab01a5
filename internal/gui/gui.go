// Package gui runs a session in a desktop window with ebiten.
package gui

import (
	"fmt"
	"image/color"

	"pirate-platformer/internal/camera"
	"pirate-platformer/internal/component"
	"pirate-platformer/internal/ecs"
	"pirate-platformer/internal/input"
	"pirate-platformer/internal/session"
	"pirate-platformer/internal/system"
	"pirate-platformer/internal/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TilePx is the on-screen size of one tile.
const TilePx = 32

var (
	skyColor     = color.RGBA{0x3d, 0x7e, 0xc9, 0xff}
	solidColor   = color.RGBA{0x6b, 0x4a, 0x2b, 0xff}
	grassColor   = color.RGBA{0x4c, 0xa8, 0x3a, 0xff}
	captainColor = color.RGBA{0xf2, 0xc9, 0x4c, 0xff}
	crabbyColor  = color.RGBA{0xd9, 0x4a, 0x3d, 0xff}
)

// binding maps one physical key to a simulation key code.
type binding struct {
	key  ebiten.Key
	code byte
}

var bindings = []binding{
	{ebiten.KeyW, input.KeyUp},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeySpace, input.KeyUp},
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyS, input.KeyDown},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyR, input.KeyRestart},
	{ebiten.KeyQ, input.KeyQuit},
	{ebiten.KeyEscape, input.KeyQuit},
}

// Game adapts a Session to ebiten.Game.
type Game struct {
	session *session.Session
	keys    input.Keys
	dt      float64
	width   int
	height  int
}

// New creates a Game stepping s at tps updates per second. The window shows
// the session's camera at TilePx per tile.
func New(s *session.Session, tps int) *Game {
	cam := s.World.Camera
	return &Game{
		session: s,
		dt:      1 / float64(tps),
		width:   int(cam.W * TilePx),
		height:  int(cam.H * TilePx),
	}
}

// Size returns the logical screen size in pixels.
func (g *Game) Size() (int, int) { return g.width, g.height }

// pollKeys refreshes the key state from pressed. ebiten reports releases,
// so no latch is needed here.
func (g *Game) pollKeys(pressed func(ebiten.Key) bool) {
	g.keys.Reset()
	for _, b := range bindings {
		if pressed(b.key) {
			g.keys[b.code] = true
		}
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.pollKeys(ebiten.IsKeyPressed)
	return g.step()
}

func (g *Game) step() error {
	if g.keys.Down(input.KeyQuit) {
		return ebiten.Termination
	}
	if err := g.session.Step(g.dt, &g.keys); err != nil {
		return fmt.Errorf("step: %w", err)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	w := g.session.World
	cam := w.Camera

	x0, y0 := int(cam.X), int(cam.Y)
	for y := y0; y <= y0+int(cam.H)+1; y++ {
		for x := x0; x <= x0+int(cam.W)+1; x++ {
			clr, ok := tileColor(w.Map.At(x, y))
			if !ok {
				continue
			}
			sx, sy := toScreen(cam, float64(x), float64(y))
			vector.FillRect(screen, sx, sy, TilePx, TilePx, clr, false)
		}
	}

	w.Each(func(_ ecs.Handle, e *system.Entity) {
		b := e.Box()
		sx, sy := toScreen(cam, b.TL.X, b.TL.Y)
		size := b.Size()
		vector.FillRect(screen, sx, sy, float32(size.X*TilePx), float32(size.Y*TilePx), kindColor(e), false)
	})

	hp := "HP ?"
	if _, p := w.Player(); p != nil {
		hp = fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth)
	}
	st := g.session.Stats
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  falls %d  restarts %d  TPS %.0f\nWASD move  R restart  Esc quit",
		hp, st.Falls, st.Restarts, ebiten.ActualTPS()))
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// toScreen converts world tiles to pixels relative to cam.
func toScreen(cam camera.Rect, wx, wy float64) (float32, float32) {
	return float32((wx - cam.X) * TilePx), float32((wy - cam.Y) * TilePx)
}

// tileColor returns the fill for t; ok is false for tiles drawn as sky.
func tileColor(t tilemap.TileID) (clr color.Color, ok bool) {
	switch t {
	case tilemap.TileSolid:
		return solidColor, true
	case tilemap.TileGrass:
		return grassColor, true
	}
	return nil, false
}

func kindColor(e *system.Entity) color.Color {
	if e.Kind == component.KindCaptain {
		return captainColor
	}
	return crabbyColor
}
