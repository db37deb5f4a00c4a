// Package level provides loading and querying of text-grid levels.
package level

import "github.com/samdwyer/warrens/internal/entity"

// Level owns the static and live contents of one map: walls, enemies,
// potions, the player start, and the grid bounds. It is built once per run
// by Parse; enemies and potions are only ever removed afterwards.
type Level struct {
	Width  int // Longest row length
	Height int // Row count
	Start  entity.Position

	walls   map[entity.Position]struct{}
	Enemies []*entity.Enemy
	Potions []*entity.Potion
}

// InBounds reports whether p lies inside the grid rectangle. Rows shorter
// than Width are in bounds; their missing cells are empty floor, not walls.
func (l *Level) InBounds(p entity.Position) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// WallAt reports whether a wall occupies p.
func (l *Level) WallAt(p entity.Position) bool {
	_, ok := l.walls[p]
	return ok
}

// Walls returns the positions of all walls.
func (l *Level) Walls() []entity.Position {
	positions := make([]entity.Position, 0, len(l.walls))
	for p := range l.walls {
		positions = append(positions, p)
	}
	return positions
}

// WallCount returns the number of wall tiles.
func (l *Level) WallCount() int {
	return len(l.walls)
}

// EnemyAt returns the enemy occupying p, or nil.
func (l *Level) EnemyAt(p entity.Position) *entity.Enemy {
	for _, e := range l.Enemies {
		if e.Pos == p {
			return e
		}
	}
	return nil
}

// PotionAt returns the potion at p, or nil.
func (l *Level) PotionAt(p entity.Position) *entity.Potion {
	for _, pot := range l.Potions {
		if pot.Pos == p {
			return pot
		}
	}
	return nil
}

// RemoveEnemy drops e from the enemy collection. Called in the same turn an
// enemy's HP reaches <= 0; a removed enemy is never updated again.
func (l *Level) RemoveEnemy(e *entity.Enemy) {
	for i, other := range l.Enemies {
		if other == e {
			l.Enemies = append(l.Enemies[:i], l.Enemies[i+1:]...)
			return
		}
	}
}

// RemovePotion drops pot from the potion collection.
func (l *Level) RemovePotion(pot *entity.Potion) {
	for i, other := range l.Potions {
		if other == pot {
			l.Potions = append(l.Potions[:i], l.Potions[i+1:]...)
			return
		}
	}
}
