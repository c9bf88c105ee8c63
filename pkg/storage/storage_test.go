package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/igolaizola/songstudio/pkg/project"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := New("sqlite", filepath.Join(t.TempDir(), "test.db"), false)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Stop() })
	if err := s.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("oracle", "", false); err == nil {
		t.Fatal("New(oracle) err = nil; want error")
	}
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	if _, err := s.GetSetting(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetSetting(missing) err = %v; want %v", err, ErrNotFound)
	}
	if err := s.SetSetting(ctx, &Setting{ID: "a", Value: "1"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting(ctx, &Setting{ID: "a", Value: "2"}); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetSetting(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != "2" {
		t.Fatalf("GetSetting(a) = %q; want 2", got.Value)
	}
	if err := s.SetSetting(ctx, &Setting{ID: "b", Value: "3"}); err != nil {
		t.Fatal(err)
	}
	list, err := s.ListSettings(ctx, 1, 10, Where("id LIKE ?", "b%"))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != "b" {
		t.Fatalf("ListSettings(b%%) = %v", list)
	}
	if err := s.DeleteSetting(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetSetting(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetSetting(a) after delete err = %v; want %v", err, ErrNotFound)
	}
}

func TestProjectsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	got, err := s.LoadProjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("LoadProjects() on empty store = %v; want empty", got)
	}

	a := project.New("First", "Salsa", "Salsa Dura", "Passionate", time.UnixMilli(1700000000000))
	if err := a.ApplyTemplate("Salsa Dura (Heavy Brass)"); err != nil {
		t.Fatal(err)
	}
	a.SetVariations([]project.Variation{{Title: "t", Lyrics: "l", Rationale: "r"}})
	if err := a.ApplyVariation(0); err != nil {
		t.Fatal(err)
	}
	b := project.New("Second", "Polka", "", "Happy & Energetic", time.UnixMilli(1700000001000))
	b.AddBlock(catalog.Intro)
	want := []*project.Project{b, a}

	if err := s.SaveProjects(ctx, want); err != nil {
		t.Fatal(err)
	}
	got, err = s.LoadProjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadProjects() = %+v; want %+v", got, want)
	}
}

func TestDocument(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	var v []string
	if err := s.GetDocument(ctx, "names", &v); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetDocument(names) err = %v; want %v", err, ErrNotFound)
	}
	if err := s.SetDocument(ctx, "names", []string{"Luna", "MC Sola"}); err != nil {
		t.Fatal(err)
	}
	if err := s.GetDocument(ctx, "names", &v); err != nil {
		t.Fatal(err)
	}
	if want := []string{"Luna", "MC Sola"}; !reflect.DeepEqual(v, want) {
		t.Fatalf("GetDocument(names) = %v; want %v", v, want)
	}
}

func TestLegacyKeys(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	if err := s.SetSetting(ctx, &Setting{ID: "suno_art_artists", Value: `["Luna"]`}); err != nil {
		t.Fatal(err)
	}
	if err := s.renameSetting(ctx, "suno_art_artists", "art_artists"); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetSetting(ctx, "art_artists")
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != `["Luna"]` {
		t.Fatalf("renamed value = %q", got.Value)
	}
	if _, err := s.GetSetting(ctx, "suno_art_artists"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("legacy key still present: %v", err)
	}
	// A missing legacy key is not an error.
	if err := s.renameSetting(ctx, "suno_projects", ProjectsKey); err != nil {
		t.Fatal(err)
	}
}

func TestProjectsUntitled(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	want := []*project.Project{project.New("", "Salsa", "", "Happy", time.UnixMilli(1700000000000))}
	if err := s.SaveProjects(ctx, want); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadProjects(ctx)
	if err != nil {
		t.Fatalf("LoadProjects() err = %v; want nil", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadProjects() = %+v; want %+v", got, want)
	}
}
