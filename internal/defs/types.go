// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnitID — идентификатор юнита из таблицы определений.
type UnitID string

// BasicCategory is the loot category that stands for "any unit of the basic pool".
const BasicCategory UnitID = "BASIC"

// HexColor is a color.RGBA written as "#rrggbb" in data files.
type HexColor struct {
	color.RGBA
}

// UnmarshalYAML parses "#rrggbb" or "rrggbb".
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseHexColor(raw)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

// ParseHexColor parses a 6-digit hex colour, alpha is always opaque.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
