package entity

import (
	"fmt"

	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/gamedata"
)

// Player is the single player-controlled actor. Exactly one exists per run.
type Player struct {
	Actor
}

// NewPlayer creates the player from its definition at the given start
// position.
func NewPlayer(def *gamedata.ActorDef, pos Position, src dice.Source) (*Player, error) {
	actor, err := newActor(def, pos, src)
	if err != nil {
		return nil, fmt.Errorf("building player: %w", err)
	}
	return &Player{Actor: actor}, nil
}
