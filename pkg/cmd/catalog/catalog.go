// Package catalog dumps the reference tables.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/igolaizola/songstudio/pkg/catalog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output io.Writer
	Format string
}

// sections maps a table name to its value in a snapshot.
func sections(s catalog.Snapshot) map[string]any {
	return map[string]any{
		"genres":      s.Genres,
		"moods":       s.Moods,
		"instruments": s.Instruments,
		"keys":        s.Keys,
		"vocals":      s.VocalTypes,
		"sections":    s.SectionTypes,
		"intros":      s.IntroStyles,
		"templates":   s.StructureTemplates,
		"presets":     s.GenrePresets,
		"defaults":    s.GenreDefaults,
		"samples":     s.BlockSamples,
		"art-styles":  s.ArtStyles,
		"characters":  s.CharacterSamples,
		"image-sizes": s.ImageSizePresets,
		"fonts":       s.FontOptions,
		"effects":     s.TextEffects,
		"languages":   s.LyricLanguages,
		"lengths":     s.LyricLengths,
		"dance":       s.DanceGuides,
	}
}

// Run writes the whole catalog, or a single table, as yaml or json.
func Run(cfg *Config, table string) error {
	var v any = catalog.All()
	if table != "" {
		t, ok := sections(catalog.All())[table]
		if !ok {
			return fmt.Errorf("catalog: unknown table %q", table)
		}
		v = t
	}
	switch cfg.Format {
	case "", "yaml":
		enc := yaml.NewEncoder(cfg.Output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("catalog: couldn't encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(cfg.Output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("catalog: couldn't encode json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("catalog: unknown format %q", cfg.Format)
}
