// Package library keeps the installation wide user lists that live outside
// any project: instrument presets, sample prompts and artist names.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/storage"
)

const (
	InstrumentPresetsKey = "instrument_presets"
	SamplePromptsKey     = "sample_prompts"
	ArtArtistsKey        = "art_artists"
	ExportArtistsKey     = "export_artists"
)

// Store reads and writes JSON documents by key.
type Store interface {
	GetDocument(ctx context.Context, key string, v any) error
	SetDocument(ctx context.Context, key string, v any) error
}

type InstrumentPreset struct {
	Name        string   `json:"name" yaml:"name"`
	Instruments []string `json:"instruments" yaml:"instruments"`
}

type SamplePrompt = catalog.SamplePrompt

// ArtistList selects one of the artist lists.
type ArtistList string

const (
	ArtArtists    ArtistList = ArtArtistsKey
	ExportArtists ArtistList = ExportArtistsKey
)

func (l ArtistList) defaults() ([]string, error) {
	switch l {
	case ArtArtists:
		return catalog.DefaultArtists, nil
	case ExportArtists:
		return catalog.DefaultExportArtists, nil
	}
	return nil, fmt.Errorf("library: unknown artist list %q: %w", l, project.ErrNotFound)
}

// ParseArtistList maps "art" and "export" to a list.
func ParseArtistList(s string) (ArtistList, error) {
	switch s {
	case "art", ArtArtistsKey:
		return ArtArtists, nil
	case "export", ExportArtistsKey:
		return ExportArtists, nil
	}
	return "", fmt.Errorf("library: unknown artist list %q: %w", s, project.ErrNotFound)
}

type Library struct {
	mu    sync.Mutex
	store Store
}

func New(store Store) *Library {
	return &Library{store: store}
}

// load decodes key into v. A missing key leaves v untouched.
func (l *Library) load(ctx context.Context, key string, v any) (bool, error) {
	err := l.store.GetDocument(ctx, key, v)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("library: couldn't load %s: %w", key, err)
	}
	return true, nil
}

func (l *Library) save(ctx context.Context, key string, v any) error {
	if err := l.store.SetDocument(ctx, key, v); err != nil {
		return fmt.Errorf("library: couldn't save %s: %w", key, err)
	}
	return nil
}

func (l *Library) InstrumentPresets(ctx context.Context) ([]InstrumentPreset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.instrumentPresets(ctx)
}

func (l *Library) instrumentPresets(ctx context.Context) ([]InstrumentPreset, error) {
	ps := []InstrumentPreset{}
	if _, err := l.load(ctx, InstrumentPresetsKey, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// InstrumentPreset returns the preset with the given name.
func (l *Library) InstrumentPreset(ctx context.Context, name string) (InstrumentPreset, error) {
	ps, err := l.InstrumentPresets(ctx)
	if err != nil {
		return InstrumentPreset{}, err
	}
	for _, p := range ps {
		if p.Name == name {
			return p, nil
		}
	}
	return InstrumentPreset{}, fmt.Errorf("library: instrument preset %q: %w", name, project.ErrNotFound)
}

// AddInstrumentPreset appends a preset. It needs a unique name and at least
// one instrument.
func (l *Library) AddInstrumentPreset(ctx context.Context, p InstrumentPreset) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("library: instrument preset without name: %w", project.ErrValidation)
	}
	if len(p.Instruments) == 0 {
		return fmt.Errorf("library: instrument preset %q without instruments: %w", p.Name, project.ErrValidation)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ps, err := l.instrumentPresets(ctx)
	if err != nil {
		return err
	}
	for _, v := range ps {
		if v.Name == p.Name {
			return fmt.Errorf("library: instrument preset %q already exists: %w", p.Name, project.ErrValidation)
		}
	}
	return l.save(ctx, InstrumentPresetsKey, append(ps, p))
}

func (l *Library) RemoveInstrumentPreset(ctx context.Context, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	ps, err := l.instrumentPresets(ctx)
	if err != nil {
		return err
	}
	out := make([]InstrumentPreset, 0, len(ps))
	for _, p := range ps {
		if p.Name != name {
			out = append(out, p)
		}
	}
	if len(out) == len(ps) {
		return fmt.Errorf("library: instrument preset %q: %w", name, project.ErrNotFound)
	}
	return l.save(ctx, InstrumentPresetsKey, out)
}

// SamplePrompts returns the stored prompts, or the defaults when none has
// been saved yet.
func (l *Library) SamplePrompts(ctx context.Context) ([]SamplePrompt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.samplePrompts(ctx)
}

func (l *Library) samplePrompts(ctx context.Context) ([]SamplePrompt, error) {
	var ps []SamplePrompt
	ok, err := l.load(ctx, SamplePromptsKey, &ps)
	if err != nil {
		return nil, err
	}
	if !ok {
		ps = append([]SamplePrompt{}, catalog.DefaultSamplePrompts...)
	}
	if ps == nil {
		ps = []SamplePrompt{}
	}
	return ps, nil
}

func (l *Library) AddSamplePrompt(ctx context.Context, p SamplePrompt) error {
	if strings.TrimSpace(p.Label) == "" || strings.TrimSpace(p.Text) == "" {
		return fmt.Errorf("library: sample prompt needs label and text: %w", project.ErrValidation)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ps, err := l.samplePrompts(ctx)
	if err != nil {
		return err
	}
	return l.save(ctx, SamplePromptsKey, append(ps, p))
}

// RemoveSamplePrompt removes every prompt with the given label.
func (l *Library) RemoveSamplePrompt(ctx context.Context, label string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	ps, err := l.samplePrompts(ctx)
	if err != nil {
		return err
	}
	out := make([]SamplePrompt, 0, len(ps))
	for _, p := range ps {
		if p.Label != label {
			out = append(out, p)
		}
	}
	if len(out) == len(ps) {
		return fmt.Errorf("library: sample prompt %q: %w", label, project.ErrNotFound)
	}
	return l.save(ctx, SamplePromptsKey, out)
}

// Artists returns an artist list, or its defaults when it has never been
// saved.
func (l *Library) Artists(ctx context.Context, list ArtistList) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.artists(ctx, list)
}

func (l *Library) artists(ctx context.Context, list ArtistList) ([]string, error) {
	defaults, err := list.defaults()
	if err != nil {
		return nil, err
	}
	var names []string
	ok, err := l.load(ctx, string(list), &names)
	if err != nil {
		return nil, err
	}
	if !ok {
		names = append([]string{}, defaults...)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (l *Library) AddArtist(ctx context.Context, list ArtistList, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("library: empty artist name: %w", project.ErrValidation)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	names, err := l.artists(ctx, list)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return fmt.Errorf("library: artist %q already in %s: %w", name, list, project.ErrValidation)
		}
	}
	return l.save(ctx, string(list), append(names, name))
}

func (l *Library) RemoveArtist(ctx context.Context, list ArtistList, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	names, err := l.artists(ctx, list)
	if err != nil {
		return err
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	if len(out) == len(names) {
		return fmt.Errorf("library: artist %q not in %s: %w", name, list, project.ErrNotFound)
	}
	return l.save(ctx, string(list), out)
}
