package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a dice expression string into a Dice bound to src.
// Supported forms: "d6", "2d6", "2d6+3", "1d8-2". Used for the dice
// expressions carried in the embedded actor definitions.
func Parse(expr string, src Source) (Dice, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Dice{}, fmt.Errorf("dice: empty expression")
	}

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Dice{}, fmt.Errorf("dice: missing 'd' in expression %q", expr)
	}

	// Count defaults to 1 when omitted ("d6").
	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Dice{}, fmt.Errorf("dice: invalid die count in %q: %w", expr, err)
		}
	}

	rest := s[dIdx+1:]

	// Find the first '+' or '-' past position 0 so "d6-1" parses and a
	// leading sign on the sides is still rejected by Atoi.
	modOffset := -1
	for i := 1; i < len(rest); i++ {
		if rest[i] == '+' || rest[i] == '-' {
			modOffset = i
			break
		}
	}

	sidesStr, modStr := rest, ""
	if modOffset >= 0 {
		sidesStr, modStr = rest[:modOffset], rest[modOffset:]
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return Dice{}, fmt.Errorf("dice: invalid die sides in %q: %w", expr, err)
	}

	modifier := 0
	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return Dice{}, fmt.Errorf("dice: invalid modifier in %q: %w", expr, err)
		}
	}

	return New(count, sides, modifier, src), nil
}

// MustParse parses expr and panics on error. Useful for fixed configurations
// known valid at compile time.
func MustParse(expr string, src Source) Dice {
	d, err := Parse(expr, src)
	if err != nil {
		panic(err)
	}
	return d
}
