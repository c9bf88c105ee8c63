// Package preset applies catalog and library presets to a project.
package preset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/igolaizola/songstudio/pkg/library"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/studio"
	"go.uber.org/zap"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string

	Output io.Writer

	// Theme pack fields, used by the "theme" kind.
	Topic string
	Style string
	// Artist is used by the "reference" kind.
	Artist string
}

// Run applies a preset of kind to a project. Kinds are "genre",
// "instruments" (a saved instrument preset), "template", "intro",
// "toggle", "title", "theme" and "reference".
func Run(ctx context.Context, cfg *Config, id, kind string, args []string) error {
	value := strings.TrimSpace(strings.Join(args, " "))

	s, store, err := studio.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	defer func() { _ = store.Stop() }()

	var fn func(p *project.Project) error
	switch kind {
	case "genre":
		fn = func(p *project.Project) error { return p.ApplyGenrePreset(value) }
	case "instruments":
		saved, err := library.New(store).InstrumentPreset(ctx, value)
		if err != nil {
			return fmt.Errorf("preset: %w", err)
		}
		fn = func(p *project.Project) error {
			p.ApplyInstrumentPreset(saved.Instruments)
			return nil
		}
	case "template":
		fn = func(p *project.Project) error { return p.ApplyStructureTemplate(value) }
	case "intro":
		fn = func(p *project.Project) error { return p.ApplyIntroStyle(value) }
	case "toggle":
		if value == "" {
			return fmt.Errorf("preset: toggle needs an instrument: %w", project.ErrValidation)
		}
		fn = func(p *project.Project) error {
			if p.ToggleInstrument(value) {
				zap.S().Infof("preset: added %s", value)
			} else {
				zap.S().Infof("preset: removed %s", value)
			}
			return nil
		}
	case "title":
		if value == "" {
			return fmt.Errorf("preset: empty title: %w", project.ErrValidation)
		}
		fn = func(p *project.Project) error {
			p.ApplySuggestedTitle(value)
			return nil
		}
	case "theme":
		pack := project.ThemePack{Title: value, Topic: cfg.Topic, Style: cfg.Style}
		fn = func(p *project.Project) error {
			p.ApplyThemePack(pack)
			return nil
		}
	case "reference":
		ref := project.Reference{Song: value, Artist: cfg.Artist}
		fn = func(p *project.Project) error {
			p.ApplyReference(ref)
			return nil
		}
	default:
		return fmt.Errorf("preset: unknown kind %q: %w", kind, project.ErrValidation)
	}

	p, err := s.Update(ctx, id, fn)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	b, err := project.Marshal(p)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	fmt.Fprintln(cfg.Output, string(b))
	return nil
}
