package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Renderer draws frames to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame: discovered walls, visible potions and enemies,
// the player, the HUD line, and the message log tail.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for _, w := range f.Walls {
		r.screen.SetContent(w.X, w.Y, '#', wallStyle)
	}

	for _, pot := range f.Potions {
		r.screen.SetContent(pot.Pos.X, pot.Pos.Y, pot.Glyph,
			tcell.StyleDefault.Foreground(pot.Color))
	}

	for _, e := range f.Enemies {
		r.screen.SetContent(e.Pos.X, e.Pos.Y, e.Glyph,
			tcell.StyleDefault.Foreground(e.Color))
	}

	playerStyle := tcell.StyleDefault.Foreground(f.Player.Color).Bold(true)
	r.screen.SetContent(f.Player.Pos.X, f.Player.Pos.Y, f.Player.Glyph, playerStyle)

	hud := fmt.Sprintf("HP %d/%d  ATK %s  DEF %s  Kills %d",
		f.HUD.HP, f.HUD.MaxHP, f.HUD.AttackLabel, f.HUD.DefenceLabel, f.HUD.Kills)
	r.drawText(0, f.Height+1, hud, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, msg := range f.Messages {
		r.drawText(0, f.Height+3+i, msg, msgStyle)
	}

	r.screen.Show()
}

// RenderEnd draws the win or loss screen over the last frame.
func (r *Renderer) RenderEnd(victory bool, kills int) {
	r.screen.Clear()

	var headline string
	style := tcell.StyleDefault.Bold(true)
	if victory {
		headline = "The warrens are cleared!"
		style = style.Foreground(tcell.ColorGreen)
	} else {
		headline = "You have died."
		style = style.Foreground(tcell.ColorRed)
	}

	width, height := r.screen.Size()
	centerY := height / 2
	r.drawText((width-len(headline))/2, centerY, headline, style)

	score := fmt.Sprintf("Enemies slain: %d", kills)
	r.drawText((width-len(score))/2, centerY+2, score,
		tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hint := "Press any key to exit"
	r.drawText((width-len(hint))/2, centerY+4, hint,
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
