package level

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"pirate-platformer/internal/tilemap"
)

// Params controls procedural level generation.
type Params struct {
	Width, Height int
	Seed          int64
	// Crabbies is the most crabbies to place; fewer are placed when the
	// terrain has too few flat stretches.
	Crabbies int
}

// DefaultParams returns a medium sized level.
func DefaultParams(seed int64) Params {
	return Params{Width: 96, Height: 14, Seed: seed, Crabbies: 6}
}

const (
	startRun   = 5 // flat columns under the captain
	minFlatRun = 4 // flat columns a crabby needs
)

// Generate builds rolling terrain from a perlin height field: grass on the
// surface, solid underneath, the captain on the left and crabbies on flat
// stretches.
func Generate(p Params) *tilemap.Map {
	if p.Width < startRun+2 {
		p.Width = startRun + 2
	}
	if p.Height < 6 {
		p.Height = 6
	}
	m := tilemap.New(p.Width, p.Height)
	noise := perlin.NewPerlin(2, 2, 3, p.Seed)
	rng := rand.New(rand.NewSource(p.Seed))

	top := 3               // highest surface row
	bottom := p.Height - 2 // lowest surface row
	mid := float64(top+bottom) / 2
	amp := float64(bottom-top) / 2

	surface := make([]int, p.Width)
	for x := range surface {
		n := noise.Noise2D(float64(x)*0.06+0.5, 0.37)
		// Quantise in steps of two columns so flat runs occur.
		y := int(math.Round(mid + n*amp*1.6))
		if x > 0 && x%2 == 1 {
			y = surface[x-1]
		}
		surface[x] = clampInt(y, top, bottom)
	}
	for x := 1; x < startRun; x++ {
		surface[x] = surface[0]
	}

	for x, sy := range surface {
		m.Set(x, sy, tilemap.TileGrass)
		for y := sy + 1; y < p.Height; y++ {
			m.Set(x, y, tilemap.TileSolid)
		}
	}
	m.Set(1, surface[0]-1, tilemap.TileCaptainSpawn)

	placed := 0
	for x := startRun + 2; x+minFlatRun <= p.Width && placed < p.Crabbies; {
		run := flatRun(surface, x)
		if run >= minFlatRun && rng.Intn(3) > 0 {
			m.Set(x, surface[x]-1, tilemap.TileCrabbySpawn)
			placed++
			x += run
			continue
		}
		x++
	}
	return m
}

func flatRun(surface []int, x int) int {
	n := 1
	for x+n < len(surface) && surface[x+n] == surface[x] {
		n++
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
