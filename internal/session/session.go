// Package session drives one level for a host: it owns the World, clamps
// frame time, handles restart and falling out of the level, and records
// metrics.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"pirate-platformer/internal/camera"
	"pirate-platformer/internal/config"
	"pirate-platformer/internal/input"
	"pirate-platformer/internal/metrics"
	"pirate-platformer/internal/system"
	"pirate-platformer/internal/tilemap"
)

// Stats counts what happened in a session.
type Stats struct {
	Frames   int
	Elapsed  float64
	Falls    int
	Restarts int
}

// Session is one player's run through a level.
type Session struct {
	World *system.World
	Stats Stats

	maxDt       float64
	metrics     *metrics.Metrics
	log         *slog.Logger
	restartHeld bool
}

// New starts a session on m. The map is owned by the session from here on.
func New(m *tilemap.Map, cfg config.Config, mx *metrics.Metrics, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	view := camera.Rect{W: cfg.Camera.Width, H: cfg.Camera.Height}
	w := system.NewWorld(m, system.TuningFrom(cfg), view, logger)
	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Session{
		World:   w,
		maxDt:   cfg.Loop.MaxDt,
		metrics: mx,
		log:     logger,
	}, nil
}

// Resize changes the viewport, keeping the camera inside the map.
func (s *Session) Resize(w, h float64) {
	s.World.Camera.W = w
	s.World.Camera.H = h
	s.World.Camera.Bound(s.World.Map.Width, s.World.Map.Height)
}

// Step advances the session by dt seconds of wall time.
func (s *Session) Step(dt float64, keys *input.Keys) error {
	if dt > s.maxDt {
		dt = s.maxDt
	}
	if dt < 0 {
		dt = 0
	}

	restart := keys != nil && keys.Down(input.KeyRestart)
	if restart && !s.restartHeld {
		s.restartHeld = true
		return s.restart("key")
	}
	s.restartHeld = restart

	start := time.Now()
	s.World.Update(dt, keys)
	s.metrics.ObserveFrame(time.Since(start), s.World.Len())
	s.Stats.Frames++
	s.Stats.Elapsed += dt

	if _, p := s.World.Player(); p != nil && p.Pos.Y > float64(s.World.Map.Height)+1 {
		s.Stats.Falls++
		return s.restart("fell")
	}
	return nil
}

func (s *Session) restart(reason string) error {
	s.Stats.Restarts++
	s.metrics.Restarted(reason)
	s.log.Info("level restart", "reason", reason, "frames", s.Stats.Frames)
	if err := s.World.Restart(); err != nil {
		return fmt.Errorf("restart level: %w", err)
	}
	return nil
}

// Close ends the level and restores its spawn markers.
func (s *Session) Close() { s.World.End() }
