package level

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/entity"
	"github.com/samdwyer/warrens/internal/gamedata"
)

// Level glyphs. Any other character, including space, is empty floor.
const (
	glyphWall   = '#'
	glyphStart  = '@'
	glyphPotion = 'K'
)

// Parse reads a text grid line by line, column by column. '#' places a wall,
// 'K' a potion, '@' records the player start, and any glyph registered for
// an enemy places that enemy. Ragged rows are legal: Width is the longest
// row, and out-of-range columns on shorter rows are absent, not walls.
//
// A source with no '@' leaves Start at the origin.
func Parse(r io.Reader, reg *gamedata.Registry, src dice.Source) (*Level, error) {
	lvl := &Level{
		walls: make(map[entity.Position]struct{}),
	}

	scanner := bufio.NewScanner(r)
	y := 0
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > lvl.Width {
			lvl.Width = len(line)
		}
		for x, glyph := range line {
			pos := entity.Position{X: x, Y: y}
			switch glyph {
			case glyphWall:
				lvl.walls[pos] = struct{}{}
			case glyphStart:
				lvl.Start = pos
			case glyphPotion:
				lvl.Potions = append(lvl.Potions, entity.NewPotion(pos))
			default:
				def := reg.EnemyByGlyph(glyph)
				if def == nil {
					continue // empty floor
				}
				enemy, err := entity.NewEnemy(def, pos, src)
				if err != nil {
					return nil, fmt.Errorf("level row %d col %d: %w", y, x, err)
				}
				lvl.Enemies = append(lvl.Enemies, enemy)
			}
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	lvl.Height = y

	return lvl, nil
}

// LoadFile parses the level at path. A missing or unreadable file is a
// startup failure: the engine must not run without a valid level.
func LoadFile(path string, reg *gamedata.Registry, src dice.Source) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Parse(f, reg, src)
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return lvl, nil
}
