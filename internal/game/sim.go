package game

import (
	"go.uber.org/zap"

	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/entity"
	"github.com/samdwyer/warrens/internal/gamedata"
	"github.com/samdwyer/warrens/internal/level"
	"github.com/samdwyer/warrens/internal/ui"
)

// messageLogDepth is how many status lines the renderer shows.
const messageLogDepth = 5

// Sim is the simulation core: one level, one player, strictly
// turn-synchronous. All state mutation flows through Step; nothing here is
// safe for concurrent use and nothing needs to be.
type Sim struct {
	lvl    *level.Level
	player *entity.Player
	src    dice.Source
	logger *zap.Logger

	state State
	fog   *Fog
	log   *MessageLog
	kills int
	turn  int
}

// NewSim builds a simulation from a loaded level. The player is constructed
// at the parsed start coordinate.
func NewSim(lvl *level.Level, reg *gamedata.Registry, src dice.Source, logger *zap.Logger) (*Sim, error) {
	player, err := entity.NewPlayer(reg.Player(), lvl.Start, src)
	if err != nil {
		return nil, err
	}
	return &Sim{
		lvl:    lvl,
		player: player,
		src:    src,
		logger: logger,
		state:  StatePlaying,
		fog:    NewFog(),
		log:    NewMessageLog(messageLogDepth),
	}, nil
}

// State returns the current simulation state.
func (s *Sim) State() State { return s.state }

// Kills returns the number of enemies eliminated so far.
func (s *Sim) Kills() int { return s.kills }

// Player returns the player actor.
func (s *Sim) Player() *entity.Player { return s.player }

// Level returns the level.
func (s *Sim) Level() *level.Level { return s.lvl }

// Observe runs the render-pass visibility update, growing the discovered
// wall set around the player's current position.
func (s *Sim) Observe() {
	s.fog.Observe(s.lvl, s.player.Pos)
}

// CheckEnd evaluates the terminal conditions, death before victory, and
// returns the resulting state. Once terminal the state never changes back.
func (s *Sim) CheckEnd() State {
	if s.state != StatePlaying {
		return s.state
	}
	if s.player.HP <= 0 {
		s.state = StatePlayerDead
		s.logger.Info("player died", zap.Int("turn", s.turn), zap.Int("kills", s.kills))
	} else if len(s.lvl.Enemies) == 0 {
		s.state = StateAllCleared
		s.logger.Info("all enemies cleared", zap.Int("turn", s.turn), zap.Int("kills", s.kills))
	}
	return s.state
}

// Step runs one full turn: the player action for cmd, then the enemy phase.
// CommandQuit and terminal states are no-ops.
func (s *Sim) Step(cmd Command) {
	if s.state != StatePlaying || cmd == CommandQuit {
		return
	}
	s.turn++
	s.logger.Debug("turn",
		zap.Int("n", s.turn),
		zap.String("command", cmd.String()),
		zap.Int("player_hp", s.player.HP),
		zap.Int("enemies", len(s.lvl.Enemies)),
	)

	dx, dy := cmd.Delta()
	s.playerTurn(dx, dy)
	s.enemyPhase()
}

// playerTurn resolves the player's action against the target tile. An
// out-of-bounds or wall target is a no-op turn; the enemy phase still runs.
func (s *Sim) playerTurn(dx, dy int) {
	target := s.player.Pos.Step(dx, dy)
	if !s.lvl.InBounds(target) {
		return
	}

	if e := s.lvl.EnemyAt(target); e != nil {
		// Player strikes first; the enemy retaliates if it survives. The
		// player never moves onto the enemy's tile.
		s.fight(&s.player.Actor, &e.Actor)
		if !e.Alive() {
			s.slay(e)
		}
		return
	}

	if s.lvl.WallAt(target) {
		return
	}

	s.player.Pos = target
	if pot := s.lvl.PotionAt(target); pot != nil {
		healed := s.player.Heal(pot.Heal)
		s.lvl.RemovePotion(pot)
		s.log.Push("You drink a potion and recover %d HP (%d HP)", healed, s.player.DisplayHP())
		s.logger.Debug("potion consumed",
			zap.Int("healed", healed),
			zap.Int("player_hp", s.player.HP),
		)
	}
}

// enemyPhase gives each live enemy one action. It iterates a snapshot of
// the collection: enemies killed by a retaliation this phase no longer act,
// and removals never disturb the iteration.
func (s *Sim) enemyPhase() {
	snapshot := make([]*entity.Enemy, len(s.lvl.Enemies))
	copy(snapshot, s.lvl.Enemies)

	for _, e := range snapshot {
		if !e.Alive() {
			continue
		}
		switch e.Kind {
		case entity.KindRat:
			s.ratTurn(e)
		case entity.KindSnake:
			s.snakeTurn(e)
		}
	}
}

// slay removes a dead enemy and scores the kill.
func (s *Sim) slay(e *entity.Enemy) {
	s.lvl.RemoveEnemy(e)
	s.kills++
	s.log.Push("The %s dies", e.Name)
	s.logger.Info("enemy killed",
		zap.String("kind", e.Kind.String()),
		zap.Int("kills", s.kills),
	)
}

// Frame snapshots the renderable state: discovered walls, entities currently
// in sight, the player, HUD scalars, and the status line tail.
func (s *Sim) Frame() ui.Frame {
	f := ui.Frame{
		Width:    s.lvl.Width,
		Height:   s.lvl.Height,
		Walls:    s.fog.Discovered(),
		Player:   s.player,
		Messages: s.log.Lines(),
		HUD: ui.HUD{
			HP:           s.player.DisplayHP(),
			MaxHP:        s.player.MaxHP,
			AttackLabel:  s.player.Attack.String(),
			DefenceLabel: s.player.Defence.String(),
			Kills:        s.kills,
		},
	}
	for _, e := range s.lvl.Enemies {
		if InSight(s.player.Pos, e.Pos) {
			f.Enemies = append(f.Enemies, e)
		}
	}
	for _, pot := range s.lvl.Potions {
		if InSight(s.player.Pos, pot.Pos) {
			f.Potions = append(f.Potions, pot)
		}
	}
	return f
}
