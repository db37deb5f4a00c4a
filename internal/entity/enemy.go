package entity

import (
	"fmt"

	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/gamedata"
)

// Kind identifies an enemy variant. The set is closed; per-kind movement
// policies live in the game package, keyed by this tag.
type Kind int

const (
	KindRat Kind = iota
	KindSnake
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRat:
		return "rat"
	case KindSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// KindForID maps an actor definition id to its Kind.
func KindForID(id string) (Kind, error) {
	switch id {
	case "rat":
		return KindRat, nil
	case "snake":
		return KindSnake, nil
	default:
		return 0, fmt.Errorf("no enemy kind for id %q", id)
	}
}

// Enemy is a hostile actor on the map.
type Enemy struct {
	Actor
	Kind Kind
}

// NewEnemy creates an enemy from its definition at the given position. Each
// enemy shares the run's dice source; its stats come from the definition.
func NewEnemy(def *gamedata.ActorDef, pos Position, src dice.Source) (*Enemy, error) {
	kind, err := KindForID(def.ID)
	if err != nil {
		return nil, err
	}
	actor, err := newActor(def, pos, src)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", def.ID, err)
	}
	return &Enemy{Actor: actor, Kind: kind}, nil
}
