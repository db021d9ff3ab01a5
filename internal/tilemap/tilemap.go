package tilemap

import "math"

// Map holds the tile grid for one level, indexed Rows[y][x].
type Map struct {
	Width, Height int
	Rows          [][]TileID
}

// New creates a Map filled with empty tiles.
func New(width, height int) *Map {
	rows := make([][]TileID, height)
	for y := range rows {
		rows[y] = make([]TileID, width)
	}
	return &Map{Width: width, Height: height, Rows: rows}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at cell (x, y), or TileEmpty when out of bounds.
func (m *Map) At(x, y int) TileID {
	if !m.InBounds(x, y) {
		return TileEmpty
	}
	return m.Rows[y][x]
}

// Set replaces the tile at cell (x, y). Out-of-bounds writes are dropped.
func (m *Map) Set(x, y int, t TileID) {
	if !m.InBounds(x, y) {
		return
	}
	m.Rows[y][x] = t
}

// Tile returns the tile covering world position (wx, wy), given in tile
// units. Positions outside the map read as TileEmpty.
func (m *Map) Tile(wx, wy float64) TileID {
	return m.At(int(math.Floor(wx)), int(math.Floor(wy)))
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := New(m.Width, m.Height)
	for y := range m.Rows {
		copy(c.Rows[y], m.Rows[y])
	}
	return c
}

// Count returns how many cells hold tile t.
func (m *Map) Count(t TileID) int {
	n := 0
	for _, row := range m.Rows {
		for _, c := range row {
			if c == t {
				n++
			}
		}
	}
	return n
}
