package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/genvec/rng"
)

func seeded(seed float64) *rng.Rand {
	return rng.New(rng.NewParkMiller(seed))
}

func TestResolveNeverEmpty(t *testing.T) {
	cat := DefaultCatalog()
	selectors := []string{"", RandomPalette, RandomInCategory, FallbackName, "whatever"}
	categories := append(cat.Categories(), "", "unknown", RandomCategory)
	for _, category := range categories {
		for _, sel := range selectors {
			for seed := 1.0; seed <= 5; seed++ {
				p := cat.Resolve(category, sel, seeded(seed))
				require.NotEmpty(t, p, "category=%q selector=%q", category, sel)
				require.True(t, p.Valid(), "category=%q selector=%q: %v", category, sel, p)
			}
		}
	}
}

func TestResolveUnknownCategoryFallsBack(t *testing.T) {
	p := DefaultCatalog().Resolve("no-such-category", "x", seeded(1))
	assert.Equal(t, Fallback, p)
}

func TestResolveEmptyCategoryUsesSafety(t *testing.T) {
	cat := NewCatalog(map[string][]Color{"empty": {}})
	p := cat.Resolve("empty", "", seeded(1))
	assert.Equal(t, Safety, p)
	assert.Len(t, p, 4)
}

func TestResolveInvalidEntriesDropped(t *testing.T) {
	cat := NewCatalog(map[string][]Color{"broken": {{"nope", "not-a-color"}, {"", "#12"}}})
	assert.Equal(t, Safety, cat.Resolve("broken", "", seeded(1)))
}

func TestResolveDirectLookupCaseInsensitive(t *testing.T) {
	cat := DefaultCatalog()
	want, ok := cat.Colors("oceanDepths")
	require.True(t, ok)
	p := cat.Resolve("OCEANDEPTHS", "", seeded(1))
	require.Len(t, p, len(want))
	for i, c := range want {
		assert.Equal(t, c.Hex, p[i])
	}
}

func TestResolveRandomInCategorySize(t *testing.T) {
	cat := DefaultCatalog()
	colors, _ := cat.Colors("oceanDepths")
	all := hexes(colors)
	for seed := 1.0; seed <= 50; seed++ {
		p := cat.Resolve("oceanDepths", RandomInCategory, seeded(seed))
		require.GreaterOrEqual(t, len(p), 5)
		require.LessOrEqual(t, len(p), 10)
		for _, c := range p {
			require.Contains(t, all, c)
		}
	}
}

func TestResolveRandomInCategorySmallCategory(t *testing.T) {
	cat := NewCatalog(map[string][]Color{"tiny": {{"a", "#111111"}, {"b", "#222222"}, {"c", "#333333"}}})
	p := cat.Resolve("tiny", RandomInCategory, seeded(3))
	assert.Len(t, p, 3)
}

func TestResolveRandomPaletteIsSomeCategory(t *testing.T) {
	cat := DefaultCatalog()
	p := cat.Resolve(RandomCategory, RandomPalette, seeded(11))
	found := false
	for _, name := range cat.Categories() {
		cols, _ := cat.Colors(name)
		if len(cols) == len(p) && cols[0].Hex == p[0] {
			found = true
		}
	}
	assert.True(t, found, "palette %v does not match any category", p)
}

func TestResolveRandomInCategoryWithRandomCategory(t *testing.T) {
	// random_in_category is meaningless without a concrete category.
	p := DefaultCatalog().Resolve(RandomCategory, RandomInCategory, seeded(1))
	assert.Equal(t, Fallback, p)
}

func TestResolveNilCatalog(t *testing.T) {
	var cat *Catalog
	assert.Equal(t, Fallback, cat.Resolve("x", "y", seeded(1)))
}

func TestResolveReturnsCopy(t *testing.T) {
	p := DefaultCatalog().Resolve("nothing", "", seeded(1))
	p[0] = "#000000"
	assert.Equal(t, "#FF0000", Fallback[0])
}

func TestLoadCatalog(t *testing.T) {
	doc := `
sunrise:
  - name: Rose
    hex: "#ff007f"
  - name: Gold
    hex: "#ffd700"
  - name: Broken
    hex: "zzz"
`
	cat, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"sunrise"}, cat.Categories())
	assert.Equal(t, Palette{"#ff007f", "#ffd700"}, cat.Resolve("Sunrise", "", seeded(1)))
}

func TestLoadCatalogJSON(t *testing.T) {
	doc := `{"mono": [{"name": "Black", "hex": "#000"}, {"name": "White", "hex": "#fff"}]}`
	cat, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, Palette{"#000", "#fff"}, cat.Resolve("mono", "", seeded(1)))
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not a map", "- a\n- b\n"},
		{"empty map", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestSelectors(t *testing.T) {
	cat := DefaultCatalog()
	assert.Equal(t, []string{RandomPalette}, cat.Selectors(RandomCategory))
	assert.Contains(t, cat.Selectors("warmSunset"), RandomInCategory)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"warmSunset", "Warm Sunset"},
		{"random_category", "Random Category"},
		{"neon", "Neon"},
		{"pastelDreams2", "Pastel Dreams2"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.in))
		})
	}
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("#abc"))
	assert.True(t, IsHex("#A0B1C2"))
	assert.False(t, IsHex("abc"))
	assert.False(t, IsHex("#ggg"))
	assert.False(t, IsHex(""))
}
