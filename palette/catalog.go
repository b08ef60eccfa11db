package palette

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/genvec/rng"
)

// Color is one named catalog entry.
type Color struct {
	Name string `yaml:"name" json:"name"`
	Hex  string `yaml:"hex" json:"hex"`
}

// Catalog maps category names to their colors. Category lookup is
// case-insensitive.
type Catalog struct {
	names      []string           // original spelling, sorted
	categories map[string][]Color // keyed by folded name
}

// NewCatalog builds a catalog from a category map. Entries without a valid
// hex value are dropped.
func NewCatalog(categories map[string][]Color) *Catalog {
	c := &Catalog{categories: make(map[string][]Color, len(categories))}
	for name, colors := range categories {
		valid := make([]Color, 0, len(colors))
		for _, col := range colors {
			if IsHex(col.Hex) {
				valid = append(valid, col)
			}
		}
		key := fold(name)
		if _, dup := c.categories[key]; !dup {
			c.names = append(c.names, name)
		}
		c.categories[key] = valid
	}
	sort.Strings(c.names)
	return c
}

// LoadCatalog decodes a catalog document shaped {category: [{name, hex}]}.
// YAML and JSON are both accepted.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var raw map[string][]Color
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("palette: empty catalog")
		}
		return nil, fmt.Errorf("palette: decode catalog: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("palette: empty catalog")
	}
	return NewCatalog(raw), nil
}

// Categories returns the category names in sorted order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Colors returns the colors of a category.
func (c *Catalog) Colors(category string) ([]Color, bool) {
	cols, ok := c.categories[fold(category)]
	if !ok {
		return nil, false
	}
	out := make([]Color, len(cols))
	copy(out, cols)
	return out, true
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Resolve turns a category and palette selector into a palette.
//
// Rules, first match wins:
//   - selector RandomPalette: a uniformly chosen category, all of its colors
//   - selector RandomInCategory (with a concrete category): the category's
//     colors shuffled and cut to a random length in [5, min(10, len)]
//   - a known category: all of its colors
//   - anything else: Fallback
//
// An empty result is replaced by Safety, so the returned palette is never
// empty.
func (c *Catalog) Resolve(category, selector string, r *rng.Rand) Palette {
	var out Palette
	switch {
	case c == nil || len(c.names) == 0:
		out = Fallback.Clone()
	case selector == RandomPalette:
		name := rng.Pick(r, c.names)
		out = hexes(c.categories[fold(name)])
	case selector == RandomInCategory && fold(category) != RandomCategory:
		if cols, ok := c.categories[fold(category)]; ok {
			out = hexes(cols)
			rng.Shuffle(r, out)
			hi := min(10, len(out))
			lo := min(5, hi)
			out = out[:r.IntRange(lo, hi)]
		} else {
			out = Fallback.Clone()
		}
	default:
		if cols, ok := c.categories[fold(category)]; ok {
			out = hexes(cols)
		} else {
			out = Fallback.Clone()
		}
	}
	if len(out) == 0 {
		return Safety.Clone()
	}
	return out
}

// Selectors returns the palette selectors offered for a category.
// RandomCategory only offers RandomPalette.
func (c *Catalog) Selectors(category string) []string {
	if fold(category) == RandomCategory {
		return []string{RandomPalette}
	}
	return []string{RandomInCategory, RandomPalette, FallbackName}
}

// DisplayName renders a category key for people: camelCase and snake_case
// words are split and title-cased ("warmSunset" becomes "Warm Sunset").
func DisplayName(key string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range key {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return cases.Title(language.English).String(b.String())
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func hexes(cols []Color) Palette {
	out := make(Palette, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Hex)
	}
	return out
}
