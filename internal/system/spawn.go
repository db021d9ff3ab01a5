package system

import (
	"fmt"

	"pirate-platformer/internal/component"
	"pirate-platformer/internal/tilemap"
)

// Start scans the map row by row, spawning an entity on every spawn marker
// and clearing the marker. A level without a captain cannot be played: the
// spawned entities are cleared again and ErrNoPlayer is returned.
func (w *World) Start() error {
	spawned := 0
	for y := 0; y < w.Map.Height; y++ {
		for x := 0; x < w.Map.Width; x++ {
			k := component.KindForTile(w.Map.At(x, y))
			if !k.Valid() {
				continue
			}
			w.Create(x, y, k)
			w.Map.Set(x, y, tilemap.TileEmpty)
			spawned++
		}
	}

	_, p := w.Player()
	if p == nil {
		w.ClearAll()
		w.log.Warn("level start failed", "error", ErrNoPlayer, "spawned", spawned)
		return fmt.Errorf("start level: %w", ErrNoPlayer)
	}

	w.Camera.X = p.Pos.X + p.Meta().Mask.TL.X - w.Camera.W/2
	w.Camera.Y = p.Pos.Y - w.Camera.H/2
	w.Camera.Bound(w.Map.Width, w.Map.Height)
	w.log.Info("level started", "entities", spawned, "map_w", w.Map.Width, "map_h", w.Map.Height)
	return nil
}

// End tears the level down, restoring every spawn marker.
func (w *World) End() { w.ClearAll() }

// Restart ends the level and starts it again from its spawn markers.
func (w *World) Restart() error {
	w.End()
	return w.Start()
}
