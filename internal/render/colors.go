package render

import (
	"pirate-platformer/internal/anim"
	"pirate-platformer/internal/component"
	"pirate-platformer/internal/tilemap"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the emoji glyphs used to draw terrain.
// Emoji are rendered by the terminal with their own colors, so the theme
// varies glyphs rather than tinting them.
type Theme struct {
	Empty string
	Solid string
	Grass string
	Sky   tcell.Color
}

// Harbor is the default theme.
var Harbor = Theme{
	Empty: "  ",
	Solid: "🟫",
	Grass: "🟩",
	Sky:   tcell.ColorNavy,
}

// Glyph returns the terrain glyph for t. Spawn markers are never drawn;
// the running level has already cleared them.
func (th Theme) Glyph(t tilemap.TileID) string {
	switch t {
	case tilemap.TileSolid:
		return th.Solid
	case tilemap.TileGrass:
		return th.Grass
	}
	return th.Empty
}

// frameGlyphs maps every sprite frame to a glyph. Run cycles alternate so
// movement reads on a terminal.
var frameGlyphs = func() [anim.SpriteCount]string {
	var g [anim.SpriteCount]string
	fill := func(id anim.ID, glyphs ...string) {
		d := anim.Get(id)
		for f := int(d.First); f <= int(d.Last); f++ {
			g[f] = glyphs[(f-int(d.First))%len(glyphs)]
		}
	}
	fill(anim.CaptainIdle, "🧔")
	fill(anim.CaptainRun, "🏃", "🧔")
	fill(anim.CrabbyIdle, "🦀")
	fill(anim.CrabbyRun, "🦀", "🦞")
	return g
}()

// FrameGlyph returns the glyph for sprite frame f.
func FrameGlyph(f uint8) string {
	if int(f) >= len(frameGlyphs) {
		return "?"
	}
	return frameGlyphs[f]
}

// kindColors tints the cell behind each kind so small glyphs stay visible.
var kindColors = map[component.Kind]tcell.Color{
	component.KindCaptain: tcell.ColorGold,
	component.KindCrabby:  tcell.ColorIndianRed,
}
