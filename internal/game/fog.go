package game

import (
	"github.com/samdwyer/warrens/internal/entity"
	"github.com/samdwyer/warrens/internal/level"
)

// SightRadiusSq is the squared sight radius (radius 5).
const SightRadiusSq = 25

// Fog tracks discovered terrain across a run. Walls accumulate: once seen
// they stay rendered forever. Enemies and potions are not tracked here;
// their visibility is transient and recomputed each frame, so movable
// entities vanish when the player looks away while map structure does not.
type Fog struct {
	discovered map[entity.Position]struct{}
}

// NewFog creates an empty fog-of-war tracker.
func NewFog() *Fog {
	return &Fog{discovered: make(map[entity.Position]struct{})}
}

// Observe adds every wall within sight of from to the discovered set.
// Called once per render pass.
func (f *Fog) Observe(lvl *level.Level, from entity.Position) {
	for _, w := range lvl.Walls() {
		if InSight(from, w) {
			f.discovered[w] = struct{}{}
		}
	}
}

// Discovered returns all wall positions seen so far.
func (f *Fog) Discovered() []entity.Position {
	walls := make([]entity.Position, 0, len(f.discovered))
	for p := range f.discovered {
		walls = append(walls, p)
	}
	return walls
}

// Contains reports whether p has been discovered.
func (f *Fog) Contains(p entity.Position) bool {
	_, ok := f.discovered[p]
	return ok
}

// InSight reports whether p lies within the sight radius of from.
func InSight(from, p entity.Position) bool {
	return from.DistSq(p) <= SightRadiusSq
}
