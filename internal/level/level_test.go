package level

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/entity"
	"github.com/samdwyer/warrens/internal/gamedata"
)

func parse(t *testing.T, text string) *Level {
	t.Helper()
	reg, err := gamedata.LoadRegistry()
	require.NoError(t, err)
	lvl, err := Parse(strings.NewReader(text), reg, dice.NewSeededSource(1))
	require.NoError(t, err)
	return lvl
}

func TestParse_GlyphTable(t *testing.T) {
	lvl := parse(t, ""+
		"#####\n"+
		"#@rK#\n"+
		"# s.#\n"+
		"#####\n")

	assert.Equal(t, 5, lvl.Width)
	assert.Equal(t, 4, lvl.Height)
	assert.Equal(t, entity.Position{X: 1, Y: 1}, lvl.Start)

	require.Len(t, lvl.Enemies, 2)
	rat := lvl.EnemyAt(entity.Position{X: 2, Y: 1})
	require.NotNil(t, rat)
	assert.Equal(t, entity.KindRat, rat.Kind)
	snake := lvl.EnemyAt(entity.Position{X: 2, Y: 2})
	require.NotNil(t, snake)
	assert.Equal(t, entity.KindSnake, snake.Kind)

	require.Len(t, lvl.Potions, 1)
	assert.Equal(t, entity.Position{X: 3, Y: 1}, lvl.Potions[0].Pos)

	assert.True(t, lvl.WallAt(entity.Position{X: 0, Y: 0}))
	assert.False(t, lvl.WallAt(entity.Position{X: 3, Y: 2}), "unrecognized glyphs are empty floor")
	assert.Equal(t, 14, lvl.WallCount())
}

func TestParse_RaggedRows(t *testing.T) {
	lvl := parse(t, ""+
		"##\n"+
		"#######\n"+
		"#\n")

	assert.Equal(t, 7, lvl.Width, "width is the longest row")
	assert.Equal(t, 3, lvl.Height)

	// Missing cells on short rows are absent, not walls, but still in bounds.
	p := entity.Position{X: 5, Y: 0}
	assert.True(t, lvl.InBounds(p))
	assert.False(t, lvl.WallAt(p))
}

func TestParse_MissingStartDefaultsToOrigin(t *testing.T) {
	lvl := parse(t, "###\n###\n")
	assert.Equal(t, entity.Position{}, lvl.Start)
}

func TestParse_ReloadYieldsEquivalentState(t *testing.T) {
	text := "#####\n#@r s\n# K #\n"

	a := parse(t, text)
	b := parse(t, text)

	assert.Equal(t, a.Width, b.Width)
	assert.Equal(t, a.Height, b.Height)
	assert.Equal(t, a.Start, b.Start)

	wallsA, wallsB := a.Walls(), b.Walls()
	sortPositions(wallsA)
	sortPositions(wallsB)
	assert.Equal(t, wallsA, wallsB)

	require.Equal(t, len(a.Enemies), len(b.Enemies))
	for i := range a.Enemies {
		assert.Equal(t, a.Enemies[i].Pos, b.Enemies[i].Pos)
		assert.Equal(t, a.Enemies[i].Kind, b.Enemies[i].Kind)
		assert.NotSame(t, a.Enemies[i], b.Enemies[i], "re-load builds fresh enemy instances")
	}

	require.Equal(t, len(a.Potions), len(b.Potions))
	for i := range a.Potions {
		assert.Equal(t, a.Potions[i].Pos, b.Potions[i].Pos)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	reg, err := gamedata.LoadRegistry()
	require.NoError(t, err)

	_, err = LoadFile("testdata/does-not-exist.txt", reg, dice.NewSeededSource(1))
	assert.Error(t, err)
}

func TestLoadDefault(t *testing.T) {
	reg, err := gamedata.LoadRegistry()
	require.NoError(t, err)

	lvl, err := LoadDefault(reg, dice.NewSeededSource(1))
	require.NoError(t, err)

	assert.NotZero(t, lvl.Width)
	assert.NotZero(t, lvl.Height)
	assert.NotEmpty(t, lvl.Enemies, "default level must have enemies to clear")
	assert.NotEmpty(t, lvl.Potions)
	assert.False(t, lvl.WallAt(lvl.Start), "player must not start inside a wall")
	assert.Nil(t, lvl.EnemyAt(lvl.Start))

	// No two actors share a tile at load.
	seen := map[entity.Position]bool{}
	for _, e := range lvl.Enemies {
		assert.False(t, seen[e.Pos], "duplicate enemy position %v", e.Pos)
		seen[e.Pos] = true
	}
}

func TestRemoveEnemyAndPotion(t *testing.T) {
	lvl := parse(t, "@rK\n")

	e := lvl.Enemies[0]
	lvl.RemoveEnemy(e)
	assert.Empty(t, lvl.Enemies)
	assert.Nil(t, lvl.EnemyAt(e.Pos))
	lvl.RemoveEnemy(e) // second removal is a no-op

	pot := lvl.Potions[0]
	lvl.RemovePotion(pot)
	assert.Empty(t, lvl.Potions)
	assert.Nil(t, lvl.PotionAt(pot.Pos))
}

func sortPositions(ps []entity.Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}
