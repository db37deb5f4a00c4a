package gamedata

import (
	"github.com/gdamore/tcell/v2"
)

// ActorDef defines a combat actor type loaded from JSON. Dice fields carry
// expression strings ("1d6+3") parsed when the actor is instantiated.
type ActorDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "rat")
	Name        string `json:"name"`        // Display name (e.g., "Rat")
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code (e.g., "#B08968")
	HP          int    `json:"hp"`          // Starting hit points
	AttackDice  string `json:"attackDice"`  // Attack roll expression
	DefenceDice string `json:"defenceDice"` // Defence roll expression
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ActorDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *ActorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []ActorDef `json:"enemies"`
}

// PlayerFile represents the structure of player.json.
type PlayerFile struct {
	Player ActorDef `json:"player"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]ActorDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// LoadPlayer loads the player definition from the embedded player.json file.
func LoadPlayer() (ActorDef, error) {
	file, err := Load[PlayerFile]("player.json")
	if err != nil {
		return ActorDef{}, err
	}
	return file.Player, nil
}
