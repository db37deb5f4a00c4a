package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/gamedata"
)

// Actor holds the fields shared by every combat-capable entity. Dice
// configurations are fixed at construction; HP only changes through combat
// and healing.
type Actor struct {
	Name    string
	Glyph   rune        // Display symbol
	Color   tcell.Color // Display attribute, carried for the renderer
	Pos     Position
	HP      int // No storage floor: combat math may drive it negative
	MaxHP   int
	Attack  dice.Dice
	Defence dice.Dice
}

// newActor builds an Actor from a definition, parsing its dice expressions
// against src.
func newActor(def *gamedata.ActorDef, pos Position, src dice.Source) (Actor, error) {
	attack, err := dice.Parse(def.AttackDice, src)
	if err != nil {
		return Actor{}, err
	}
	defence, err := dice.Parse(def.DefenceDice, src)
	if err != nil {
		return Actor{}, err
	}
	hp := def.HP
	if hp < 0 {
		hp = 0
	}
	return Actor{
		Name:    def.Name,
		Glyph:   def.GlyphRune(),
		Color:   def.TCellColor(),
		Pos:     pos,
		HP:      hp,
		MaxHP:   hp,
		Attack:  attack,
		Defence: defence,
	}, nil
}

// Alive reports whether the actor has HP remaining. HP <= 0 is dead
// everywhere, including negative values.
func (a *Actor) Alive() bool {
	return a.HP > 0
}

// AttackRoll throws the attack dice, clamped to >= 0.
func (a *Actor) AttackRoll() int {
	if v := a.Attack.Throw(); v > 0 {
		return v
	}
	return 0
}

// DefenceRoll throws the defence dice, clamped to >= 0.
func (a *Actor) DefenceRoll() int {
	if v := a.Defence.Throw(); v > 0 {
		return v
	}
	return 0
}

// Wound subtracts damage from HP without flooring it.
func (a *Actor) Wound(damage int) {
	a.HP -= damage
}

// Heal restores HP capped at MaxHP and returns the amount actually healed.
func (a *Actor) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if a.HP+actual > a.MaxHP {
		actual = a.MaxHP - a.HP
	}
	a.HP += actual
	return actual
}

// DisplayHP returns HP floored at 0 for rendering and status lines.
func (a *Actor) DisplayHP() int {
	if a.HP < 0 {
		return 0
	}
	return a.HP
}
