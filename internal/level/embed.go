package level

import (
	"bytes"
	"embed"

	"github.com/samdwyer/warrens/internal/dice"
	"github.com/samdwyer/warrens/internal/gamedata"
)

// levelFS embeds the bundled levels so the binary runs with no arguments.
//
//go:embed *.txt
var levelFS embed.FS

// LoadDefault parses the embedded default level.
func LoadDefault(reg *gamedata.Registry, src dice.Source) (*Level, error) {
	content, err := levelFS.ReadFile("default.txt")
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(content), reg, src)
}
