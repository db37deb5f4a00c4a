package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/warrens/internal/dice"
)

func TestThrow_InRange(t *testing.T) {
	src := dice.NewSeededSource(1)
	d := dice.New(2, 6, 3, src)

	for i := 0; i < 1000; i++ {
		v := d.Throw()
		assert.GreaterOrEqual(t, v, 2*1+3)
		assert.LessOrEqual(t, v, 2*6+3)
	}
}

func TestThrow_ZeroCountReturnsModifier(t *testing.T) {
	src := dice.NewSeededSource(1)
	d := dice.New(0, 6, -4, src)

	for i := 0; i < 100; i++ {
		assert.Equal(t, -4, d.Throw())
	}
}

func TestNew_ClampsInputs(t *testing.T) {
	src := dice.NewSeededSource(1)

	d := dice.New(-3, 0, 2, src)
	assert.Equal(t, 0, d.Count, "negative count floors at 0")
	assert.Equal(t, 1, d.Sides, "zero sides floors at 1")
	assert.Equal(t, 2, d.Throw(), "clamped zero-count dice throw the modifier")

	// One-sided dice are degenerate but legal: every draw is 1.
	d = dice.New(3, -5, 0, src)
	assert.Equal(t, 3, d.Throw())
}

// Throw() ∈ [count·1 + modifier, count·sides + modifier] for arbitrary
// configurations, including clamped ones.
func TestThrow_RangeProperty(t *testing.T) {
	src := dice.NewSeededSource(99)
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(-2, 8).Draw(rt, "count")
		sides := rapid.IntRange(-2, 20).Draw(rt, "sides")
		modifier := rapid.IntRange(-10, 10).Draw(rt, "modifier")

		d := dice.New(count, sides, modifier, src)
		v := d.Throw()

		assert.GreaterOrEqual(rt, v, d.Count+modifier)
		assert.LessOrEqual(rt, v, d.Count*d.Sides+modifier)
	})
}

func TestString(t *testing.T) {
	src := dice.NewSeededSource(1)

	tests := []struct {
		count, sides, modifier int
		want                   string
	}{
		{1, 6, 3, "1d6+3"},
		{3, 4, 2, "3d4+2"},
		{1, 8, 5, "1d8+5"},
		{2, 6, 0, "2d6"},
		{1, 6, -1, "1d6-1"},
		{0, 1, 7, "0d1+7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dice.New(tt.count, tt.sides, tt.modifier, src).String())
	}
}

func TestParse(t *testing.T) {
	src := dice.NewSeededSource(1)

	d, err := dice.Parse("3d4+2", src)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Count)
	assert.Equal(t, 4, d.Sides)
	assert.Equal(t, 2, d.Modifier)

	d, err = dice.Parse("d6", src)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Count)
	assert.Equal(t, 6, d.Sides)
	assert.Equal(t, 0, d.Modifier)

	d, err = dice.Parse("1d8-2", src)
	require.NoError(t, err)
	assert.Equal(t, -2, d.Modifier)
}

func TestParse_Errors(t *testing.T) {
	src := dice.NewSeededSource(1)

	for _, expr := range []string{"", "6", "xd6", "2dy", "2d6+z"} {
		_, err := dice.Parse(expr, src)
		assert.Error(t, err, "expression %q must not parse", expr)
	}
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(20), b.Intn(20))
	}
}
