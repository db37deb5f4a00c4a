package dice

import "fmt"

// Dice is an immutable dice configuration bound to a Source: Count dice of
// Sides faces each, plus a flat Modifier.
//
// Out-of-range inputs are clamped at construction rather than rejected:
// Count is floored at 0 and Sides at 1. A zero-count Dice always throws
// exactly its Modifier.
type Dice struct {
	Count    int
	Sides    int
	Modifier int

	src Source
}

// New builds a Dice, clamping count to >= 0 and sides to >= 1.
func New(count, sides, modifier int, src Source) Dice {
	if count < 0 {
		count = 0
	}
	if sides < 1 {
		sides = 1
	}
	return Dice{Count: count, Sides: sides, Modifier: modifier, src: src}
}

// Throw returns the sum of Count independent uniform draws in [1, Sides]
// plus Modifier.
func (d Dice) Throw() int {
	total := d.Modifier
	for i := 0; i < d.Count; i++ {
		total += d.src.Intn(d.Sides) + 1
	}
	return total
}

// String formats the configuration as a roll label, e.g. "3d4+2", "1d6-1",
// or "2d6" when the modifier is zero.
func (d Dice) String() string {
	if d.Modifier == 0 {
		return fmt.Sprintf("%dd%d", d.Count, d.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", d.Count, d.Sides, d.Modifier)
}
