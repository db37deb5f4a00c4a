package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/gamedata"
)

func testRegistry(t *testing.T) *gamedata.Registry {
	t.Helper()
	reg, err := gamedata.LoadRegistry()
	require.NoError(t, err)
	return reg
}

func TestNewPlayer(t *testing.T) {
	reg := testRegistry(t)
	src := dice.NewSeededSource(1)

	p, err := NewPlayer(reg.Player(), Position{X: 3, Y: 4}, src)
	require.NoError(t, err)

	assert.Equal(t, 100, p.HP)
	assert.Equal(t, 100, p.MaxHP)
	assert.Equal(t, Position{X: 3, Y: 4}, p.Pos)
	assert.Equal(t, '@', p.Glyph)
	assert.True(t, p.Alive())
}

func TestNewEnemy_Kinds(t *testing.T) {
	reg := testRegistry(t)
	src := dice.NewSeededSource(1)

	ratDef, err := reg.EnemyByID("rat")
	require.NoError(t, err)
	rat, err := NewEnemy(ratDef, Position{}, src)
	require.NoError(t, err)
	assert.Equal(t, KindRat, rat.Kind)
	assert.Equal(t, 5, rat.HP)
	assert.Equal(t, "1d6+3", rat.Attack.String())

	snakeDef, err := reg.EnemyByID("snake")
	require.NoError(t, err)
	snake, err := NewEnemy(snakeDef, Position{}, src)
	require.NoError(t, err)
	assert.Equal(t, KindSnake, snake.Kind)
	assert.Equal(t, 10, snake.HP)
	assert.Equal(t, "1d8+5", snake.Defence.String())
}

func TestWound_NoFloorInStorage(t *testing.T) {
	a := Actor{HP: 5, MaxHP: 5}

	a.Wound(8)
	assert.Equal(t, -3, a.HP, "combat math may drive HP negative")
	assert.False(t, a.Alive())
	assert.Equal(t, 0, a.DisplayHP(), "display floors at 0")
}

func TestHeal_CapsAtMax(t *testing.T) {
	a := Actor{HP: 95, MaxHP: 100}

	assert.Equal(t, 5, a.Heal(10))
	assert.Equal(t, 100, a.HP)

	assert.Equal(t, 0, a.Heal(10), "healing at full HP does nothing")
	assert.Equal(t, 100, a.HP)

	assert.Equal(t, 0, a.Heal(-3))
}

func TestRolls_ClampedNonNegative(t *testing.T) {
	src := dice.NewSeededSource(7)
	// 1d2-10 always rolls negative before clamping.
	a := Actor{
		Attack:  dice.New(1, 2, -10, src),
		Defence: dice.New(1, 2, -10, src),
	}

	for i := 0; i < 50; i++ {
		assert.Equal(t, 0, a.AttackRoll())
		assert.Equal(t, 0, a.DefenceRoll())
	}
}

func TestPositionDistSq(t *testing.T) {
	assert.Equal(t, 0, Position{1, 1}.DistSq(Position{1, 1}))
	assert.Equal(t, 9, Position{0, 0}.DistSq(Position{3, 0}))
	assert.Equal(t, 8, Position{0, 0}.DistSq(Position{2, 2}))
	assert.Equal(t, Position{2, 3}, Position{2, 4}.Step(0, -1))
}
