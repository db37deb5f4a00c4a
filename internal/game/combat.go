package game

import (
	"go.uber.org/zap"

	"github.com/samdwyer/warrens/internal/entity"
)

// strike resolves a single attack: attack roll minus defence roll, applied
// only when positive. Both rolls are already clamped to >= 0 by the actors.
func (s *Sim) strike(attacker, defender *entity.Actor) {
	atk := attacker.AttackRoll()
	def := defender.DefenceRoll()
	damage := atk - def

	if damage > 0 {
		defender.Wound(damage)
		s.log.Push("%s attacks %s: %d vs %d, hits for %d (%s at %d HP)",
			attacker.Name, defender.Name, atk, def, damage, defender.Name, defender.DisplayHP())
	} else {
		s.log.Push("%s attacks %s: %d vs %d, blocked (%s at %d HP)",
			attacker.Name, defender.Name, atk, def, defender.Name, defender.DisplayHP())
	}

	s.logger.Debug("strike",
		zap.String("attacker", attacker.Name),
		zap.String("defender", defender.Name),
		zap.Int("attack_roll", atk),
		zap.Int("defence_roll", def),
		zap.Int("damage", damage),
		zap.Int("defender_hp", defender.HP),
	)
}

// fight resolves one combat exchange: the attacker strikes, then the
// defender retaliates if still alive.
func (s *Sim) fight(attacker, defender *entity.Actor) {
	s.strike(attacker, defender)
	if defender.Alive() {
		s.strike(defender, attacker)
	}
}
