// Package catalog serves the curated thematic bundles and the deterministic
// fallback bundle used when dynamic generation fails. Themes ship embedded in
// the binary and can be overridden from a local JSON file or S3.
package catalog

import (
	"context"

	"travelkart/internal/model"
)

// Loader reads a theme catalog from some backing source.
type Loader interface {
	// Load reads and decodes the theme catalog.
	Load(ctx context.Context, path string) ([]model.Theme, error)
}

// Catalog holds the loaded themes, read-only after construction.
type Catalog struct {
	themes []model.Theme
	byID   map[string]int
}

// NewCatalog indexes the given themes.
func NewCatalog(themes []model.Theme) *Catalog {
	byID := make(map[string]int, len(themes))
	for i, theme := range themes {
		byID[theme.ID] = i
	}
	return &Catalog{themes: themes, byID: byID}
}

// Themes returns all themes in catalog order.
func (c *Catalog) Themes() []model.Theme {
	out := make([]model.Theme, len(c.themes))
	for i, theme := range c.themes {
		out[i] = theme
		out[i].Products = model.CloneProducts(theme.Products)
	}
	return out
}

// Theme returns the theme with the given ID.
func (c *Catalog) Theme(id string) (*model.Theme, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, model.ErrThemeNotFound
	}
	theme := c.themes[i]
	theme.Products = model.CloneProducts(theme.Products)
	return &theme, nil
}
