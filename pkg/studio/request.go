package studio

import (
	"context"
	"fmt"

	"github.com/igolaizola/songstudio/pkg/compose"
	"github.com/igolaizola/songstudio/pkg/project"
)

// Request carries the ephemeral settings of a composition or generation.
type Request struct {
	Lyrics compose.LyricSettings `json:"lyrics"`
	Sound  compose.SoundSettings `json:"sound"`
	Art    compose.ArtSettings   `json:"art"`
	// ImageSize is the size class passed to the image backend.
	ImageSize string `json:"imageSize,omitempty"`
	Keywords  string `json:"keywords,omitempty"`
	Artist    string `json:"artist,omitempty"`
}

// Prompt kinds that are not generation affordances.
const Metadata Affordance = "metadata"

// Result is the outcome of a generation. Project is set when the result
// was written back, Themes and References for suggestions.
type Result struct {
	Project    *project.Project    `json:"project,omitempty"`
	Themes     []project.ThemePack `json:"themes,omitempty"`
	References []project.Reference `json:"references,omitempty"`
}

// Compose returns the prompt text of kind for a project without calling
// the generator.
func (s *Studio) Compose(ctx context.Context, id string, kind Affordance, req Request) (string, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	switch kind {
	case Lyrics:
		return compose.Lyrics(p, req.Lyrics), nil
	case Variations:
		return compose.Variations(p), nil
	case Sound:
		return compose.Sound(p, req.Sound), nil
	case Advice:
		return compose.Advice(p), nil
	case Cover:
		return compose.CoverArt(p, req.Art), nil
	case Themes:
		return compose.ThemePacks(p, req.Keywords), nil
	case Titles:
		return compose.Titles(p), nil
	case References:
		return compose.References(p), nil
	case Metadata:
		return compose.Metadata(p, req.Artist), nil
	}
	return "", fmt.Errorf("studio: unknown prompt %q: %w", kind, project.ErrNotFound)
}

// Generate runs the generation of kind for a project.
func (s *Studio) Generate(ctx context.Context, id string, kind Affordance, req Request) (*Result, error) {
	var (
		p   *project.Project
		err error
	)
	switch kind {
	case Lyrics:
		p, err = s.GenerateLyrics(ctx, id, req.Lyrics)
	case Variations:
		p, err = s.GenerateVariations(ctx, id)
	case Sound:
		p, err = s.GenerateSound(ctx, id, req.Sound)
	case Advice:
		p, err = s.GenerateAdvice(ctx, id)
	case Cover:
		p, err = s.GenerateCover(ctx, id, req.Art, req.ImageSize)
	case Titles:
		p, err = s.GenerateTitles(ctx, id)
	case Themes:
		themes, err := s.GenerateThemePacks(ctx, id, req.Keywords)
		if err != nil {
			return nil, err
		}
		return &Result{Themes: themes}, nil
	case References:
		refs, err := s.GenerateReferences(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Result{References: refs}, nil
	default:
		return nil, fmt.Errorf("studio: unknown generation %q: %w", kind, project.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &Result{Project: p}, nil
}
