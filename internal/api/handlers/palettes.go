package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/genvec/palette"
)

// PaletteCategory describes one catalog category.
type PaletteCategory struct {
	Category  string          `json:"category"`
	Name      string          `json:"name"`
	Selectors []string        `json:"selectors"`
	Colors    []palette.Color `json:"colors"`
}

// PaletteHandler serves the palette catalog.
type PaletteHandler struct {
	catalog *palette.Catalog
}

// NewPaletteHandler returns a handler for catalog.
func NewPaletteHandler(catalog *palette.Catalog) *PaletteHandler {
	return &PaletteHandler{catalog: catalog}
}

// List returns every category with its display name, selectors and
// colors, followed by the random category.
func (h *PaletteHandler) List(c *gin.Context) {
	names := h.catalog.Categories()
	out := make([]PaletteCategory, 0, len(names)+1)
	for _, name := range names {
		colors, _ := h.catalog.Colors(name)
		out = append(out, PaletteCategory{
			Category:  name,
			Name:      palette.DisplayName(name),
			Selectors: h.catalog.Selectors(name),
			Colors:    colors,
		})
	}
	out = append(out, PaletteCategory{
		Category:  palette.RandomCategory,
		Name:      palette.DisplayName(palette.RandomCategory),
		Selectors: h.catalog.Selectors(palette.RandomCategory),
		Colors:    []palette.Color{},
	})
	c.JSON(http.StatusOK, gin.H{"categories": out})
}
