package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"travelkart/internal/model"

	"github.com/rs/zerolog"
)

//go:embed themes.json
var embeddedThemes []byte

// EmbeddedThemes decodes the catalog compiled into the binary.
func EmbeddedThemes() ([]model.Theme, error) {
	var themes []model.Theme
	if err := json.Unmarshal(embeddedThemes, &themes); err != nil {
		return nil, fmt.Errorf("failed to decode embedded theme catalog: %w", err)
	}
	return themes, nil
}

// fileLoader implements Loader for reading a theme catalog JSON file from the
// local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a theme catalog JSON file. An empty path falls back to the
// embedded catalog.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.Theme, error) {
	if path == "" {
		l.logger.Info().Msg("no catalog file configured, using embedded themes")
		return EmbeddedThemes()
	}

	l.logger.Info().Str("file", path).Msg("loading theme catalog file")

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read catalog file")
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	themes, err := decodeThemes(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalog file")
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("themes_loaded", len(themes)).
		Msg("theme catalog loaded successfully")

	return themes, nil
}

// decodeThemes parses the catalog JSON and rejects structurally unusable
// entries. Every theme needs an ID and at least one product, and every
// product needs an ID and a resolvable price.
func decodeThemes(data []byte) ([]model.Theme, error) {
	var themes []model.Theme
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, err
	}

	for _, theme := range themes {
		if theme.ID == "" {
			return nil, fmt.Errorf("theme %q has no id", theme.Title)
		}
		if len(theme.Products) == 0 {
			return nil, fmt.Errorf("theme %s has no products", theme.ID)
		}
		for _, p := range theme.Products {
			if p.ID == "" {
				return nil, fmt.Errorf("theme %s: product %q has no id", theme.ID, p.Title)
			}
			if p.BasePrice <= 0 && len(p.Options) == 0 {
				return nil, fmt.Errorf("theme %s: product %s has no resolvable price", theme.ID, p.ID)
			}
		}
	}

	return themes, nil
}
