package game

import (
	"github.com/samdwyer/warrens/internal/entity"
)

const (
	// snakeSkipPercent is the chance a snake does nothing at all this turn.
	snakeSkipPercent = 15
	// snakeAwareSq is the squared distance beyond which a snake ignores the
	// player (player farther than 2 tiles).
	snakeAwareSq = 4
)

// ratTurn steps the rat in a uniformly random cardinal direction.
func (s *Sim) ratTurn(e *entity.Enemy) {
	step := entity.CardinalSteps[s.src.Intn(len(entity.CardinalSteps))]
	s.enemyMove(e, e.Pos.Step(step[0], step[1]))
}

// snakeTurn moves the snake only when the player is close. It greedily
// picks the unblocked cardinal neighbor that maximizes squared distance to
// the player, staying put unless a neighbor strictly improves on the
// current distance. Walls and other enemies block a candidate; the player's
// tile does not, since arriving there is an attack, not a move.
func (s *Sim) snakeTurn(e *entity.Enemy) {
	if s.src.Intn(100) < snakeSkipPercent {
		return
	}
	if e.Pos.DistSq(s.player.Pos) > snakeAwareSq {
		return
	}

	best := e.Pos
	bestDist := e.Pos.DistSq(s.player.Pos)
	for _, step := range entity.CardinalSteps {
		n := e.Pos.Step(step[0], step[1])
		if s.lvl.WallAt(n) {
			continue
		}
		if other := s.lvl.EnemyAt(n); other != nil {
			continue
		}
		if d := n.DistSq(s.player.Pos); d > bestDist {
			best, bestDist = n, d
		}
	}
	if best == e.Pos {
		return
	}
	s.enemyMove(e, best)
}

// enemyMove is the shared enemy movement rule. Out-of-bounds and blocked
// destinations fail silently. Arriving on the player's tile resolves combat
// with the enemy striking first; the enemy never occupies the tile.
func (s *Sim) enemyMove(e *entity.Enemy, dest entity.Position) {
	if !s.lvl.InBounds(dest) {
		return
	}
	if dest == s.player.Pos {
		s.fight(&e.Actor, &s.player.Actor)
		if !e.Alive() {
			s.slay(e)
		}
		return
	}
	if s.lvl.WallAt(dest) {
		return
	}
	if other := s.lvl.EnemyAt(dest); other != nil && other != e {
		return
	}
	e.Pos = dest
}
