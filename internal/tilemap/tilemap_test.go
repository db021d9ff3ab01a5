package tilemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewIsEmpty(t *testing.T) {
	m := New(4, 3)
	if n := m.Count(TileEmpty); n != 12 {
		t.Fatalf("empty cells = %d; want 12", n)
	}
}

func TestSetAndAt(t *testing.T) {
	m := New(5, 5)
	m.Set(2, 3, TileGrass)
	if got := m.At(2, 3); got != TileGrass {
		t.Fatalf("At(2,3) = %v; want grass", got)
	}
	// Out-of-bounds write must not panic.
	m.Set(-1, 9, TileSolid)
}

func TestTileWorldQuery(t *testing.T) {
	m := New(5, 5)
	m.Set(1, 2, TileSolid)
	cases := []struct {
		name   string
		wx, wy float64
		want   TileID
	}{
		{"cell origin", 1, 2, TileSolid},
		{"inside cell", 1.99, 2.5, TileSolid},
		{"next cell", 2.0, 2.5, TileEmpty},
		{"negative fraction floors outward", -0.2, 2, TileEmpty},
		{"beyond width", 7.5, 1, TileEmpty},
		{"beyond height", 1, 99, TileEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Tile(tc.wx, tc.wy); got != tc.want {
				t.Errorf("Tile(%v,%v) = %v; want %v", tc.wx, tc.wy, got, tc.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := New(3, 3)
	m.Set(1, 1, TileGrass)
	c := m.Clone()
	c.Set(1, 1, TileSolid)
	if m.At(1, 1) != TileGrass {
		t.Fatal("mutating clone changed the original")
	}
}

func TestOccupied(t *testing.T) {
	if TileEmpty.Occupied() {
		t.Error("empty tile should not be occupied")
	}
	for _, id := range []TileID{TileSolid, TileGrass, TileCaptainSpawn, TileCrabbySpawn} {
		if !id.Occupied() {
			t.Errorf("%v should be occupied", id)
		}
	}
}
