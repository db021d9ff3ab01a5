package component

import (
	"pirate-platformer/internal/anim"
	"pirate-platformer/internal/geom"
	"pirate-platformer/internal/tilemap"
)

// TileLen is the sprite tile size in pixels. Masks are authored in pixels
// and stored in tile units.
const TileLen = 32.0

// Kind selects an entity's metadata and behavior.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindCaptain
	KindCrabby
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindCaptain:
		return "captain"
	case KindCrabby:
		return "crabby"
	}
	return "invalid"
}

// Valid reports whether k names a defined kind.
func (k Kind) Valid() bool { return k > KindInvalid && k < kindCount }

// Meta is the constant data shared by every entity of a kind.
type Meta struct {
	Mask      geom.Box
	IdleAnim  anim.ID
	RunAnim   anim.ID
	MaxHealth int
	// SpawnTile marks where the kind spawns and is written back when an
	// entity of this kind is cleared.
	SpawnTile tilemap.TileID
}

func px(x, y float64) geom.V2 { return geom.V2{X: x / TileLen, Y: y / TileLen} }

var metas = [kindCount]Meta{
	KindCaptain: {
		Mask:      geom.Box{TL: px(20, 0), BR: px(52, 32)},
		IdleAnim:  anim.CaptainIdle,
		RunAnim:   anim.CaptainRun,
		MaxHealth: 5,
		SpawnTile: tilemap.TileCaptainSpawn,
	},
	KindCrabby: {
		Mask:      geom.Box{TL: px(17, 6), BR: px(58, 28)},
		IdleAnim:  anim.CrabbyIdle,
		RunAnim:   anim.CrabbyRun,
		MaxHealth: 2,
		SpawnTile: tilemap.TileCrabbySpawn,
	},
}

// MetaOf returns the metadata for k. It panics on an invalid kind.
func MetaOf(k Kind) *Meta {
	if !k.Valid() {
		panic("component: invalid kind " + k.String())
	}
	return &metas[k]
}

// KindForTile maps a spawn marker to its kind, or KindInvalid.
func KindForTile(t tilemap.TileID) Kind {
	for k := KindInvalid + 1; k < kindCount; k++ {
		if metas[k].SpawnTile == t {
			return k
		}
	}
	return KindInvalid
}

// RevertTile is the tile written back into a cleared entity's spawn cell.
func RevertTile(k Kind) tilemap.TileID { return MetaOf(k).SpawnTile }
