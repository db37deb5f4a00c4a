package gamedata

import (
	"errors"
	"fmt"
)

// Registry holds loaded actor definitions and provides lookup by id and by
// level glyph.
type Registry struct {
	player  ActorDef
	enemies []ActorDef
	byID    map[string]*ActorDef
	byGlyph map[rune]*ActorDef
}

// NewRegistry creates a registry from loaded definitions.
func NewRegistry(player ActorDef, enemies []ActorDef) *Registry {
	r := &Registry{
		player:  player,
		enemies: enemies,
		byID:    make(map[string]*ActorDef, len(enemies)),
		byGlyph: make(map[rune]*ActorDef, len(enemies)),
	}
	for i := range enemies {
		r.byID[enemies[i].ID] = &r.enemies[i]
		r.byGlyph[enemies[i].GlyphRune()] = &r.enemies[i]
	}
	return r
}

// LoadRegistry loads and creates a registry from the embedded JSON files.
func LoadRegistry() (*Registry, error) {
	player, err := LoadPlayer()
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewRegistry(player, enemies), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Player returns the player definition.
func (r *Registry) Player() *ActorDef {
	return &r.player
}

// EnemyByID returns the enemy definition with the given ID, or an error if
// not found.
func (r *Registry) EnemyByID(id string) (*ActorDef, error) {
	def, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown enemy id %q", id)
	}
	return def, nil
}

// EnemyByGlyph returns the enemy definition whose glyph matches the given
// level character, or nil if no enemy uses it.
func (r *Registry) EnemyByGlyph(glyph rune) *ActorDef {
	return r.byGlyph[glyph]
}

// Enemies returns all enemy definitions.
func (r *Registry) Enemies() []ActorDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *Registry) Count() int {
	return len(r.enemies)
}
