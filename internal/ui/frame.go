package ui

import "github.com/samdwyer/warrens/internal/entity"

// HUD carries the scalar readouts drawn under the map.
type HUD struct {
	HP           int
	MaxHP        int
	AttackLabel  string
	DefenceLabel string
	Kills        int
}

// Frame is one renderable snapshot of the simulation. The engine decides
// what is visible: Walls holds every wall discovered so far, while Enemies
// and Potions hold only what is currently in sight.
type Frame struct {
	Width, Height int
	Walls         []entity.Position
	Enemies       []*entity.Enemy
	Potions       []*entity.Potion
	Player        *entity.Player
	HUD           HUD
	Messages      []string
}
