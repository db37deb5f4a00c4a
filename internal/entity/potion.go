package entity

import "github.com/gdamore/tcell/v2"

// PotionHeal is the fixed amount a health potion restores.
const PotionHeal = 10

// Potion is a stationary health pickup, consumed exactly once when the
// player steps onto its tile.
type Potion struct {
	Pos   Position
	Glyph rune
	Color tcell.Color
	Heal  int
}

// NewPotion creates a health potion at the given position.
func NewPotion(pos Position) *Potion {
	return &Potion{
		Pos:   pos,
		Glyph: 'K',
		Color: tcell.ColorRed,
		Heal:  PotionHeal,
	}
}
