package component

import (
	"testing"

	"pirate-platformer/internal/tilemap"
)

func TestKindForTile(t *testing.T) {
	cases := []struct {
		tile tilemap.TileID
		want Kind
	}{
		{tilemap.TileCaptainSpawn, KindCaptain},
		{tilemap.TileCrabbySpawn, KindCrabby},
		{tilemap.TileEmpty, KindInvalid},
		{tilemap.TileSolid, KindInvalid},
		{tilemap.TileGrass, KindInvalid},
	}
	for _, c := range cases {
		if got := KindForTile(c.tile); got != c.want {
			t.Errorf("KindForTile(%v) = %v; want %v", c.tile, got, c.want)
		}
	}
}

func TestRevertTileRoundTrips(t *testing.T) {
	for _, k := range []Kind{KindCaptain, KindCrabby} {
		if got := KindForTile(RevertTile(k)); got != k {
			t.Errorf("KindForTile(RevertTile(%v)) = %v", k, got)
		}
	}
}

func TestMetaMasksAreOrdered(t *testing.T) {
	for _, k := range []Kind{KindCaptain, KindCrabby} {
		m := MetaOf(k)
		if m.Mask.TL.X >= m.Mask.BR.X || m.Mask.TL.Y >= m.Mask.BR.Y {
			t.Errorf("%v mask %+v is not top-left/bottom-right ordered", k, m.Mask)
		}
		if m.MaxHealth <= 0 {
			t.Errorf("%v max health = %d; want > 0", k, m.MaxHealth)
		}
	}
}

func TestMetaOfInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MetaOf(KindInvalid) should panic")
		}
	}()
	MetaOf(KindInvalid)
}
