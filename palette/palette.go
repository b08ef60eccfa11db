// Package palette resolves a category/palette selection into an ordered,
// never empty list of hex colors.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/genvec/rng"
)

// Selector values with special meaning.
const (
	RandomPalette    = "random_palette"
	RandomInCategory = "random_in_category"
	RandomCategory   = "random_category"
	FallbackName     = "fallback"
)

// Palette is an ordered sequence of hex colors. Palettes handed to a
// generator are treated as read-only.
type Palette []string

// Fallback is used when a selection cannot be resolved.
var Fallback = Palette{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#00FFFF", "#FF00FF"}

// Safety is used when a resolution produced no colors at all.
var Safety = Palette{"#333333", "#666666", "#999999", "#CCCCCC"}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p) }

// At returns the color at index i. It panics when i is out of range, the
// same as indexing the slice directly.
func (p Palette) At(i int) string { return p[i] }

// Pick returns a uniformly chosen color. An empty palette yields the first
// safety grey.
func (p Palette) Pick(r *rng.Rand) string {
	if len(p) == 0 {
		return Safety[0]
	}
	return rng.Pick(r, p)
}

// Clone returns an independent copy.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Valid reports whether every entry parses as a hex color.
func (p Palette) Valid() bool {
	for _, c := range p {
		if !IsHex(c) {
			return false
		}
	}
	return true
}

// IsHex reports whether s is a #rgb or #rrggbb color.
func IsHex(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Parse decodes a #rgb or #rrggbb color.
func Parse(s string) (colorful.Color, error) {
	if !strings.HasPrefix(s, "#") {
		return colorful.Color{}, fmt.Errorf("palette: %q is not a hex color", s)
	}
	if len(s) == 4 {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("palette: %q is not a hex color: %w", s, err)
	}
	return c, nil
}
