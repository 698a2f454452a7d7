// Package engine provides the core game logic for the Floodlock daily puzzle:
// a 5x5 grid of colored cells where each move flood-recolors a region, the
// largest connected region locks in place, and the goal is to unify the whole
// board into the target color. This package is UI-agnostic and deterministic.
package engine

import "strings"

// Color represents a cell color in the puzzle palette.
type Color uint8

const (
	ColorRed Color = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorCount // Sentinel value for iteration
)

// NumColors is the palette size used by the action codec.
const NumColors = int(ColorCount)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color.
// Used by the puzzle file format and ASCII output.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorOrange:
		return 'O'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	default:
		return '?'
	}
}

// Valid returns true if the color is a member of the palette.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a string to a Color.
// Accepts full names and single letters. Returns ColorRed and false if the
// string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "orange", "o":
		return ColorOrange, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	default:
		return ColorRed, false
	}
}

// AllColors returns the palette in canonical index order.
// This order is the one the action codec encodes against.
func AllColors() []Color {
	return []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}
}
