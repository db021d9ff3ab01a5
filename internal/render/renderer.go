package render

import (
	"sort"

	"pirate-platformer/internal/ecs"
	"pirate-platformer/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom of the screen.
const hudRows = 4

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	view   Viewport
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, theme: Harbor}
	r.Resize()
	return r
}

// Resize re-reads the screen size. Call it after a resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	rows := h - hudRows
	if rows < 0 {
		rows = 0
	}
	r.view = Viewport{Cols: w, Rows: rows}
}

// ViewTiles returns the viewport size in tiles, for sizing the camera.
func (r *Renderer) ViewTiles() (w, h float64) { return r.view.Tiles() }

// DrawFrame renders tiles and entities. DrawHUD finishes the frame.
func (r *Renderer) DrawFrame(w *system.World) {
	r.screen.Clear()
	r.drawMap(w)
	r.drawEntities(w)
}

// drawMap renders every tile under the camera.
func (r *Renderer) drawMap(w *system.World) {
	sky := tcell.StyleDefault.Background(r.theme.Sky)
	cam := w.Camera
	for y := 0; y < w.Map.Height; y++ {
		for x := 0; x < w.Map.Width; x++ {
			sx, sy, onScreen := r.view.WorldToScreen(cam, float64(x), float64(y))
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, r.theme.Glyph(w.Map.At(x, y)), sky)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	e     *system.Entity
}

// drawEntities renders live entities; the captain is drawn last so it stays
// on top.
func (r *Renderer) drawEntities(w *system.World) {
	player, _ := w.Player()
	var list []renderableEntity
	w.Each(func(h ecs.Handle, e *system.Entity) {
		order := 0
		if h == player {
			order = 1
		}
		list = append(list, renderableEntity{order: order, e: e})
	})
	sort.SliceStable(list, func(i, j int) bool { return list[i].order < list[j].order })

	for _, re := range list {
		e := re.e
		mask := e.Meta().Mask
		cx := e.Pos.X + (mask.TL.X+mask.BR.X)/2
		cy := e.Pos.Y + (mask.TL.Y+mask.BR.Y)/2
		sx, sy, onScreen := r.view.WorldToScreen(w.Camera, cx, cy)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Background(kindColors[e.Kind])
		r.putGlyph(sx, sy, FrameGlyph(e.Anim.Frame()), style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	if runewidth.RuneWidth(runes[0]) == 1 {
		// Narrow text such as the blank sky tile: one rune per column.
		for i, ch := range runes {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
