package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/warrens/internal/dice"
)

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry()
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Count())

	rat, err := reg.EnemyByID("rat")
	require.NoError(t, err)
	assert.Equal(t, "Rat", rat.Name)
	assert.Equal(t, 5, rat.HP)
	assert.Equal(t, 'r', rat.GlyphRune())

	snake, err := reg.EnemyByID("snake")
	require.NoError(t, err)
	assert.Equal(t, 10, snake.HP)
	assert.Equal(t, "3d4+2", snake.AttackDice)

	_, err = reg.EnemyByID("dragon")
	assert.Error(t, err)

	player := reg.Player()
	assert.Equal(t, 100, player.HP)
	assert.Equal(t, '@', player.GlyphRune())
}

func TestEnemyByGlyph(t *testing.T) {
	reg := MustLoadRegistry()

	require.NotNil(t, reg.EnemyByGlyph('r'))
	assert.Equal(t, "rat", reg.EnemyByGlyph('r').ID)
	require.NotNil(t, reg.EnemyByGlyph('s'))
	assert.Equal(t, "snake", reg.EnemyByGlyph('s').ID)
	assert.Nil(t, reg.EnemyByGlyph('#'))
	assert.Nil(t, reg.EnemyByGlyph('@'))
}

func TestDiceExpressionsParse(t *testing.T) {
	reg := MustLoadRegistry()
	src := dice.NewSeededSource(1)

	defs := append([]ActorDef{*reg.Player()}, reg.Enemies()...)
	for _, def := range defs {
		_, err := dice.Parse(def.AttackDice, src)
		assert.NoError(t, err, "%s attack dice", def.ID)
		_, err = dice.Parse(def.DefenceDice, src)
		assert.NoError(t, err, "%s defence dice", def.ID)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), c)

	c, err = ParseHexColor("00FF80")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0, 255, 128), c)

	_, err = ParseHexColor("#FFF")
	assert.Error(t, err)

	_, err = ParseHexColor("#GGGGGG")
	assert.Error(t, err)
}
