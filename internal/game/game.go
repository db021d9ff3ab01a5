// Package game runs a session in a terminal with tcell.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pirate-platformer/internal/config"
	"pirate-platformer/internal/input"
	"pirate-platformer/internal/metrics"
	"pirate-platformer/internal/render"
	"pirate-platformer/internal/session"
	"pirate-platformer/internal/tilemap"

	"github.com/gdamore/tcell/v2"
)

// Game is the top-level orchestrator for one terminal.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *session.Session
	latch    *input.Latch
	keys     input.Keys
	tick     time.Duration
	log      *slog.Logger
	messages []string
	runLog   RunLog

	// SaveRuns appends a RunLog line when the game ends.
	SaveRuns bool
}

// New creates a Game on an initialised screen and starts the level m.
// The caller owns the screen and finalises it after Run returns.
func New(screen tcell.Screen, cfg config.Config, levelName string, m *tilemap.Map, mx *metrics.Metrics, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s, err := session.New(m, cfg, mx, logger)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		session:  s,
		latch:    input.NewLatch(cfg.Loop.KeyHold),
		tick:     time.Second / time.Duration(cfg.Loop.TickHz),
		log:      logger,
		runLog:   RunLog{Level: levelName},
	}
	g.session.Resize(g.renderer.ViewTiles())
	g.addMessage(fmt.Sprintf("Welcome aboard! Level: %s", levelName))
	return g, nil
}

// Run is the main game loop. It returns when the player quits, the screen
// closes or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.finish()

	done := make(chan struct{})
	defer close(done)
	eventCh := make(chan tcell.Event, 32)
	go func() {
		defer close(eventCh)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()
	last := time.Now()
	g.draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-eventCh:
			if !ok {
				return nil // screen closed / disconnected
			}
			if g.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := g.frame(dt); err != nil {
				return err
			}
		}
	}
}

// handleEvent applies one terminal event and reports whether to quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.session.Resize(g.renderer.ViewTiles())
	case *tcell.EventKey:
		action, code := keyToAction(ev)
		switch action {
		case ActionQuit:
			return true
		case ActionHold:
			g.latch.Press(code)
		}
	}
	return false
}

// frame advances the simulation by dt and redraws.
func (g *Game) frame(dt float64) error {
	g.latch.Advance(dt)
	g.latch.Fill(&g.keys)

	before := g.session.Stats
	if err := g.session.Step(dt, &g.keys); err != nil {
		return fmt.Errorf("step: %w", err)
	}
	switch after := g.session.Stats; {
	case after.Falls > before.Falls:
		g.addMessage("Man overboard! Back to the start.")
	case after.Restarts > before.Restarts:
		g.addMessage("Level restarted.")
	}
	g.draw()
	return nil
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.session.World)
	g.renderer.DrawHUD(g.session, g.messages)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

// finish records the run and ends the level.
func (g *Game) finish() {
	st := g.session.Stats
	g.runLog.Frames = st.Frames
	g.runLog.Seconds = st.Elapsed
	g.runLog.Falls = st.Falls
	g.runLog.Restarts = st.Restarts
	if _, p := g.session.World.Player(); p != nil {
		g.runLog.FinalHealth = p.Health
	}
	g.runLog.EndedAt = time.Now()
	g.session.Close()
	g.log.Info("game over", "level", g.runLog.Level, "frames", st.Frames, "falls", st.Falls, "restarts", st.Restarts)

	if !g.SaveRuns {
		return
	}
	if err := saveRunLog(g.runLog); err != nil {
		g.log.Warn("save run log", "error", err)
	}
}
