package render

import (
	"fmt"

	"pirate-platformer/internal/session"

	"github.com/gdamore/tcell/v2"
)

// DrawHUD renders the status bar and the latest message below the world,
// then shows the frame.
func (r *Renderer) DrawHUD(s *session.Session, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	hpText := "HP: ?"
	if _, p := s.World.Player(); p != nil {
		hpText = fmt.Sprintf("HP: %d/%d", p.Health, p.MaxHealth)
	}
	statusLine := fmt.Sprintf("%s  Entities: %d  Falls: %d  Restarts: %d  Time: %.1fs",
		hpText, s.World.Len(), s.Stats.Falls, s.Stats.Restarts, s.Stats.Elapsed)
	r.drawText(0, hudY+1, statusLine, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, "WASD/arrows move  R restart  Q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	if n := len(messages); n > 0 {
		r.drawText(0, hudY+3, messages[n-1], tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
