package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/igolaizola/songstudio/pkg/compose"
	"github.com/igolaizola/songstudio/pkg/project"
	"go.uber.org/zap"
)

// Affordance names a kind of generation request.
type Affordance string

const (
	Lyrics     Affordance = "lyrics"
	Variations Affordance = "variations"
	Sound      Affordance = "sound"
	Advice     Affordance = "advice"
	Cover      Affordance = "cover"
	Themes     Affordance = "themes"
	Titles     Affordance = "titles"
	References Affordance = "references"
)

// Affordances lists every generation kind.
var Affordances = []Affordance{Lyrics, Variations, Sound, Advice, Cover, Themes, Titles, References}

// acquire marks a generation as running and returns a snapshot of the
// project to compose from.
func (s *Studio) acquire(id string, a Affordance) (*project.Project, func(), error) {
	if s.generator == nil {
		return nil, nil, errors.New("studio: no generator configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return nil, nil, notFound(id)
	}
	key := id + "/" + string(a)
	if _, ok := s.inflight[key]; ok {
		return nil, nil, fmt.Errorf("studio: %s for %s: %w", a, id, ErrBusy)
	}
	s.inflight[key] = struct{}{}
	release := func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}
	return s.projects[i].Clone(), release, nil
}

// Running reports whether a generation is in flight.
func (s *Studio) Running(id string, a Affordance) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[id+"/"+string(a)]
	return ok
}

// text runs a text generation outside the lock. Empty results are
// failures.
func (s *Studio) text(ctx context.Context, id string, a Affordance, prompt string) (string, error) {
	zap.S().Debugf("studio: %s prompt for %s:\n%s", a, id, prompt)
	out, err := s.generator.Text(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("studio: %s for %s: %w: %w", a, id, project.ErrGeneration, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("studio: %s for %s: empty response: %w", a, id, project.ErrGeneration)
	}
	return out, nil
}

// apply writes a result back. A project removed while the request was
// running drops the result.
func (s *Studio) apply(ctx context.Context, id string, a Affordance, fn func(*project.Project) error) (*project.Project, error) {
	p, err := s.Update(ctx, id, fn)
	if errors.Is(err, project.ErrNotFound) {
		zap.S().Warnf("studio: %s for %s dropped, project is gone", a, id)
	}
	return p, err
}

// exists re-resolves the project after a request that writes nothing back.
func (s *Studio) exists(id string, a Affordance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(id) < 0 {
		zap.S().Warnf("studio: %s for %s dropped, project is gone", a, id)
		return notFound(id)
	}
	return nil
}

// GenerateLyrics writes new lyrics into the project.
func (s *Studio) GenerateLyrics(ctx context.Context, id string, settings compose.LyricSettings) (*project.Project, error) {
	snap, release, err := s.acquire(id, Lyrics)
	if err != nil {
		return nil, err
	}
	defer release()
	out, err := s.text(ctx, id, Lyrics, compose.Lyrics(snap, settings))
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, id, Lyrics, func(p *project.Project) error {
		p.Lyrics = out
		return nil
	})
}

// GenerateVariations replaces the lyric variations of the project.
func (s *Studio) GenerateVariations(ctx context.Context, id string) (*project.Project, error) {
	snap, release, err := s.acquire(id, Variations)
	if err != nil {
		return nil, err
	}
	defer release()
	out, err := s.text(ctx, id, Variations, compose.Variations(snap))
	if err != nil {
		return nil, err
	}
	vs, err := compose.ParseVariations(out)
	if err != nil {
		return nil, fmt.Errorf("studio: variations for %s: %w", id, err)
	}
	return s.apply(ctx, id, Variations, func(p *project.Project) error {
		p.SetVariations(vs)
		return nil
	})
}

// GenerateSound writes a clamped single line sound prompt into the project.
func (s *Studio) GenerateSound(ctx context.Context, id string, settings compose.SoundSettings) (*project.Project, error) {
	snap, release, err := s.acquire(id, Sound)
	if err != nil {
		return nil, err
	}
	defer release()
	out, err := s.text(ctx, id, Sound, compose.Sound(snap, settings))
	if err != nil {
		return nil, err
	}
	out = compose.ClampSoundPrompt(out)
	if out == "" {
		return nil, fmt.Errorf("studio: sound for %s: empty prompt: %w", id, project.ErrGeneration)
	}
	return s.apply(ctx, id, Sound, func(p *project.Project) error {
		p.SoundPrompt = out
		return nil
	})
}

// GenerateAdvice writes composition advice into the project.
func (s *Studio) GenerateAdvice(ctx context.Context, id string) (*project.Project, error) {
	snap, release, err := s.acquire(id, Advice)
	if err != nil {
		return nil, err
	}
	defer release()
	out, err := s.text(ctx, id, Advice, compose.Advice(snap))
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, id, Advice, func(p *project.Project) error {
		p.CompositionAdvice = out
		return nil
	})
}

// GenerateCover writes a generated cover image into the project. Size is an
// optional size class passed to the backend.
func (s *Studio) GenerateCover(ctx context.Context, id string, settings compose.ArtSettings, size string) (*project.Project, error) {
	snap, release, err := s.acquire(id, Cover)
	if err != nil {
		return nil, err
	}
	defer release()
	prompt := compose.CoverArt(snap, settings)
	ratio := compose.AspectRatio(catalog.LookupImageSize(settings.SizePreset).Ratio)
	zap.S().Debugf("studio: cover prompt for %s (%s):\n%s", id, ratio, prompt)
	img, err := s.generator.Image(ctx, prompt, ratio, size)
	if err != nil {
		return nil, fmt.Errorf("studio: cover for %s: %w: %w", id, project.ErrGeneration, err)
	}
	if !strings.HasPrefix(img, "data:image/") {
		return nil, fmt.Errorf("studio: cover for %s: no image: %w", id, project.ErrGeneration)
	}
	return s.apply(ctx, id, Cover, func(p *project.Project) error {
		p.CoverImage = img
		return nil
	})
}

// GenerateThemePacks suggests title, topic and style bundles. The project
// is not modified.
func (s *Studio) GenerateThemePacks(ctx context.Context, id, keywords string) ([]project.ThemePack, error) {
	snap, release, err := s.acquire(id, Themes)
	if err != nil {
		return nil, err
	}
	defer release()
	out, err := s.text(ctx, id, Themes, compose.ThemePacks(snap, keywords))
	if err != nil {
		return nil, err
	}
	packs, err := compose.ParseThemePacks(out)
	if err != nil {
		return nil, fmt.Errorf("studio: themes for %s: %w", id, err)
	}
	if err := s.exists(id, Themes); err != nil {
		return nil, err
	}
	return packs, nil
}

// GenerateTitles stores title suggestions in the project. A concept is
// required.
func (s *Studio) GenerateTitles(ctx context.Context, id string) (*project.Project, error) {
	snap, release, err := s.acquire(id, Titles)
	if err != nil {
		return nil, err
	}
	defer release()
	if strings.TrimSpace(snap.Concept) == "" {
		return nil, fmt.Errorf("studio: titles for %s: concept is empty: %w", id, project.ErrValidation)
	}
	out, err := s.text(ctx, id, Titles, compose.Titles(snap))
	if err != nil {
		return nil, err
	}
	titles, err := compose.ParseTitles(out)
	if err != nil {
		return nil, fmt.Errorf("studio: titles for %s: %w", id, err)
	}
	return s.apply(ctx, id, Titles, func(p *project.Project) error {
		p.GeneratedTitles = titles
		return nil
	})
}

// GenerateReferences suggests reference songs. The project is not
// modified.
func (s *Studio) GenerateReferences(ctx context.Context, id string) ([]project.Reference, error) {
	snap, release, err := s.acquire(id, References)
	if err != nil {
		return nil, err
	}
	defer release()
	out, err := s.text(ctx, id, References, compose.References(snap))
	if err != nil {
		return nil, err
	}
	refs, err := compose.ParseReferences(out)
	if err != nil {
		return nil, fmt.Errorf("studio: references for %s: %w", id, err)
	}
	if err := s.exists(id, References); err != nil {
		return nil, err
	}
	return refs, nil
}
