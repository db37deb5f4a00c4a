// Package entity provides game entities: the player, enemies, and potions.
package entity

// Position is a grid coordinate, origin top-left.
type Position struct {
	X, Y int
}

// Step returns the position offset by (dx, dy).
func (p Position) Step(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistSq returns the squared Euclidean distance to other. Radius checks use
// squared distances throughout to stay in integer math.
func (p Position) DistSq(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// CardinalSteps holds the four cardinal movement deltas: up, down, left,
// right.
var CardinalSteps = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
