// Package system runs the entity simulation: the live entity store,
// per-kind behavior, animation timing, integration and the camera follow
// that tracks the captain.
package system

import (
	"errors"
	"log/slog"

	"pirate-platformer/internal/anim"
	"pirate-platformer/internal/camera"
	"pirate-platformer/internal/component"
	"pirate-platformer/internal/config"
	"pirate-platformer/internal/ecs"
	"pirate-platformer/internal/geom"
	"pirate-platformer/internal/input"
	"pirate-platformer/internal/tilemap"
)

// ErrNoPlayer is returned by Start when the level has no captain spawn.
var ErrNoPlayer = errors.New("level has no captain spawn")

// Tuning holds the movement constants, in tiles and seconds.
type Tuning struct {
	Gravity      float64
	CaptainSpeed float64
	CrabbySpeed  float64
	RunThreshold float64
	CameraBound  float64
	CatchUpSpeed float64
}

// TuningFrom extracts the simulation constants from a config.
func TuningFrom(cfg config.Config) Tuning {
	return Tuning{
		Gravity:      cfg.Physics.Gravity,
		CaptainSpeed: cfg.Physics.CaptainSpeed,
		CrabbySpeed:  cfg.Physics.CrabbySpeed,
		RunThreshold: cfg.Physics.RunThreshold,
		CameraBound:  cfg.Camera.Bound,
		CatchUpSpeed: cfg.Camera.CatchUpSpeed,
	}
}

// DefaultTuning returns TuningFrom(config.Default()).
func DefaultTuning() Tuning { return TuningFrom(config.Default()) }

// World is the simulation context for one level. It owns the entities and
// the camera and borrows the tile map. A World is not safe for concurrent
// use; each host goroutine drives its own.
type World struct {
	Map    *tilemap.Map
	Camera camera.Rect
	Follow *camera.Follower
	Tuning Tuning

	store  *ecs.Store[Entity]
	player ecs.Handle
	log    *slog.Logger

	// Per-frame inputs, valid during Update.
	dt     float64
	keys   *input.Keys
	noKeys input.Keys
}

// NewWorld creates an empty World over m with the given viewport size.
// A nil logger uses slog.Default.
func NewWorld(m *tilemap.Map, t Tuning, view camera.Rect, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	w := &World{
		Map:    m,
		Camera: view,
		Follow: camera.NewFollower(t.CameraBound, t.CatchUpSpeed),
		Tuning: t,
		store:  ecs.NewStore[Entity](64),
		log:    logger,
	}
	w.keys = &w.noKeys
	return w
}

// Create spawns an entity of kind k at cell (x, y) with full health.
// It panics on an invalid kind.
func (w *World) Create(x, y int, k component.Kind) ecs.Handle {
	meta := component.MetaOf(k)
	return w.CreateWithHealth(x, y, k, meta.MaxHealth, meta.MaxHealth)
}

// CreateWithHealth spawns an entity with explicit health values. Health is
// capped at maxHealth.
func (w *World) CreateWithHealth(x, y int, k component.Kind, health, maxHealth int) ecs.Handle {
	meta := component.MetaOf(k)
	if health > maxHealth {
		health = maxHealth
	}
	e := Entity{
		Kind:      k,
		Spawn:     geom.V2i{X: x, Y: y},
		Pos:       geom.V2{X: float64(x), Y: float64(y)},
		Health:    health,
		MaxHealth: maxHealth,
		behavior:  behaviorFor(k),
	}
	e.Anim.Set(anim.Get(meta.IdleAnim))
	e.behavior.spawn(w, &e)

	h := w.store.Create(e)
	if k == component.KindCaptain && !w.store.Alive(w.player) {
		w.player = h
	}
	return h
}

// Destroy removes the entity. It is safe to call from inside Each or Update.
// Destroying the player hands the role to another live captain, if any.
func (w *World) Destroy(h ecs.Handle) bool {
	if !w.store.Destroy(h) {
		return false
	}
	if h == w.player {
		w.player = ecs.Nil
		w.store.Each(func(other ecs.Handle, e *Entity) {
			if w.player.IsNil() && e.Kind == component.KindCaptain {
				w.player = other
			}
		})
	}
	return true
}

// Entity returns the live entity for h, or nil.
func (w *World) Entity(h ecs.Handle) *Entity { return w.store.Get(h) }

// Each calls fn for every live entity.
func (w *World) Each(fn func(ecs.Handle, *Entity)) { w.store.Each(fn) }

// Len returns the number of live entities.
func (w *World) Len() int { return w.store.Len() }

// Player returns the captain, or a nil entity when there is none.
func (w *World) Player() (ecs.Handle, *Entity) {
	e := w.store.Get(w.player)
	if e == nil {
		return ecs.Nil, nil
	}
	return w.player, e
}

// ClearAll destroys every entity and writes each one's spawn marker back
// into the map.
func (w *World) ClearAll() {
	n := 0
	w.store.Each(func(h ecs.Handle, e *Entity) {
		w.Map.Set(e.Spawn.X, e.Spawn.Y, component.RevertTile(e.Kind))
		w.store.Destroy(h)
		n++
	})
	w.player = ecs.Nil
	w.Follow.Seek = camera.SeekIdle
	w.log.Debug("entities cleared", "count", n)
}

// Update advances the simulation by dt seconds. For each entity it runs
// the kind's behavior, ticks the animation and integrates position.
// keys may be nil when no input is available.
func (w *World) Update(dt float64, keys *input.Keys) {
	w.dt = dt
	if keys == nil {
		keys = &w.noKeys
	}
	w.keys = keys
	w.store.Each(func(h ecs.Handle, e *Entity) {
		e.behavior.step(w, e)
		if !w.store.Alive(h) {
			return
		}
		e.Anim.Tick(dt)
		integrate(e, dt)
	})
	w.keys = &w.noKeys
}
