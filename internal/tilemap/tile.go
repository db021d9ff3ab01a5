package tilemap

// TileID identifies the type of a map cell.
type TileID uint8

const (
	TileEmpty TileID = iota
	TileSolid
	TileGrass
	TileCaptainSpawn
	TileCrabbySpawn
)

// Occupied reports whether the tile blocks movement. Every non-empty tile,
// spawn markers included, counts as a surface.
func (t TileID) Occupied() bool { return t != TileEmpty }

func (t TileID) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileSolid:
		return "solid"
	case TileGrass:
		return "grass"
	case TileCaptainSpawn:
		return "captain-spawn"
	case TileCrabbySpawn:
		return "crabby-spawn"
	}
	return "unknown"
}
