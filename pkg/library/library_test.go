package library

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/storage"
)

type memStore map[string][]byte

func (m memStore) GetDocument(ctx context.Context, key string, v any) error {
	b, ok := m[key]
	if !ok {
		return storage.ErrNotFound
	}
	return json.Unmarshal(b, v)
}

func (m memStore) SetDocument(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m[key] = b
	return nil
}

func TestInstrumentPresets(t *testing.T) {
	ctx := context.Background()
	l := New(memStore{})
	ps, err := l.InstrumentPresets(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ps == nil || len(ps) != 0 {
		t.Fatalf("InstrumentPresets() = %v; want empty", ps)
	}

	tests := []struct {
		name   string
		preset InstrumentPreset
		want   error
	}{
		{"ok", InstrumentPreset{Name: "Brass", Instruments: []string{"Trumpet", "Trombone"}}, nil},
		{"no name", InstrumentPreset{Name: " ", Instruments: []string{"Trumpet"}}, project.ErrValidation},
		{"no instruments", InstrumentPreset{Name: "Empty"}, project.ErrValidation},
		{"duplicate", InstrumentPreset{Name: "Brass", Instruments: []string{"Tuba"}}, project.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.AddInstrumentPreset(ctx, tt.preset)
			if !errors.Is(err, tt.want) {
				t.Fatalf("AddInstrumentPreset(%v) err = %v; want %v", tt.preset, err, tt.want)
			}
		})
	}
	got, err := l.InstrumentPreset(ctx, "Brass")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Trumpet", "Trombone"}; !reflect.DeepEqual(got.Instruments, want) {
		t.Fatalf("InstrumentPreset(Brass) = %v; want %v", got.Instruments, want)
	}
	if err := l.RemoveInstrumentPreset(ctx, "Brass"); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveInstrumentPreset(ctx, "Brass"); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("RemoveInstrumentPreset() twice err = %v; want %v", err, project.ErrNotFound)
	}
}

func TestSamplePrompts(t *testing.T) {
	ctx := context.Background()
	l := New(memStore{})
	ps, err := l.SamplePrompts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ps, catalog.DefaultSamplePrompts) {
		t.Fatalf("SamplePrompts() = %v; want defaults", ps)
	}
	if err := l.AddSamplePrompt(ctx, SamplePrompt{Label: "x"}); !errors.Is(err, project.ErrValidation) {
		t.Fatalf("AddSamplePrompt(no text) err = %v; want %v", err, project.ErrValidation)
	}
	if err := l.AddSamplePrompt(ctx, SamplePrompt{Label: "Mine", Text: "[Salsa]"}); err != nil {
		t.Fatal(err)
	}
	ps, err = l.SamplePrompts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != len(catalog.DefaultSamplePrompts)+1 || ps[len(ps)-1].Label != "Mine" {
		t.Fatalf("SamplePrompts() after add = %v", ps)
	}
	for _, p := range catalog.DefaultSamplePrompts {
		if err := l.RemoveSamplePrompt(ctx, p.Label); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.RemoveSamplePrompt(ctx, "Mine"); err != nil {
		t.Fatal(err)
	}
	// An emptied list stays empty instead of falling back to the defaults.
	ps, err = l.SamplePrompts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 0 {
		t.Fatalf("SamplePrompts() after removing all = %v; want empty", ps)
	}
	if catalog.DefaultSamplePrompts[0].Label == "" {
		t.Fatal("defaults were modified")
	}
}

func TestArtists(t *testing.T) {
	ctx := context.Background()
	l := New(memStore{})
	tests := []struct {
		list ArtistList
		want []string
	}{
		{ArtArtists, []string{"DJ Doberman", "MC Sola", "Luna"}},
		{ExportArtists, []string{"DJ Doberman"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.list), func(t *testing.T) {
			got, err := l.Artists(ctx, tt.list)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Artists(%s) = %v; want %v", tt.list, got, tt.want)
			}
		})
	}

	if err := l.AddArtist(ctx, ExportArtists, "DJ Loco"); err != nil {
		t.Fatal(err)
	}
	if err := l.AddArtist(ctx, ExportArtists, "DJ Loco"); !errors.Is(err, project.ErrValidation) {
		t.Fatalf("AddArtist() duplicate err = %v; want %v", err, project.ErrValidation)
	}
	if err := l.AddArtist(ctx, ExportArtists, ""); !errors.Is(err, project.ErrValidation) {
		t.Fatalf("AddArtist(\"\") err = %v; want %v", err, project.ErrValidation)
	}
	if err := l.RemoveArtist(ctx, ExportArtists, "DJ Doberman"); err != nil {
		t.Fatal(err)
	}
	got, err := l.Artists(ctx, ExportArtists)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"DJ Loco"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Artists(export) = %v; want %v", got, want)
	}
	art, err := l.Artists(ctx, ArtArtists)
	if err != nil {
		t.Fatal(err)
	}
	if len(art) != 3 {
		t.Fatalf("Artists(art) = %v; lists are not independent", art)
	}
	if _, err := ParseArtistList("radio"); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("ParseArtistList(radio) err = %v; want %v", err, project.ErrNotFound)
	}
}
