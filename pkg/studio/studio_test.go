package studio

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/igolaizola/songstudio/pkg/catalog"
	"github.com/igolaizola/songstudio/pkg/project"
)

type memBackend struct {
	saved []*project.Project
	saves int
	fail  error
}

func (m *memBackend) LoadProjects(ctx context.Context) ([]*project.Project, error) {
	out := make([]*project.Project, 0, len(m.saved))
	for _, p := range m.saved {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (m *memBackend) SaveProjects(ctx context.Context, ps []*project.Project) error {
	if m.fail != nil {
		return m.fail
	}
	m.saves++
	m.saved = make([]*project.Project, 0, len(ps))
	for _, p := range ps {
		m.saved = append(m.saved, p.Clone())
	}
	return nil
}

func newStudio(t *testing.T, opts ...Option) (*Studio, *memBackend) {
	t.Helper()
	b := &memBackend{}
	s, err := New(context.Background(), b, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s, b
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1700000000000)
	s, b := newStudio(t, WithClock(func() time.Time { return now }))

	first, err := s.Create(ctx, Form{Title: "One", Genre: "Bachata", Mood: "Romantic"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Create(ctx, Form{Title: "Two", Genre: "Unknown", Mood: "Groovy"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Instruments, catalog.GenreDefaults["Bachata"]) {
		t.Fatalf("Create(Bachata).Instruments = %v", first.Instruments)
	}
	if len(second.Instruments) != 0 {
		t.Fatalf("Create(Unknown).Instruments = %v; want empty", second.Instruments)
	}
	if first.CreatedAt != now.UnixMilli() {
		t.Fatalf("Create().CreatedAt = %d; want %d", first.CreatedAt, now.UnixMilli())
	}
	list := s.List(ctx)
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("List() = %v; want most recent first", list)
	}
	if b.saves != 2 || len(b.saved) != 2 {
		t.Fatalf("backend saves = %d, len = %d; want 2, 2", b.saves, len(b.saved))
	}
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	s, b := newStudio(t)
	p, err := s.Create(ctx, Form{Title: "One", Genre: "Salsa"})
	if err != nil {
		t.Fatal(err)
	}
	s2, err := New(ctx, b)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s2.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("reloaded = %+v; want %+v", got, p)
	}
}

func TestPatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newStudio(t)
	p, err := s.Create(ctx, Form{Title: "One", Genre: "Salsa", Mood: "Groovy"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Patch(ctx, p.ID, project.Patch{Concept: project.String("Night"), BPM: project.Int(190)})
	if err != nil {
		t.Fatal(err)
	}
	if got.Concept != "Night" || got.BPM != 190 || got.Mood != "Groovy" || got.Title != "One" {
		t.Fatalf("Patch() = %+v", got)
	}
	if _, err := s.Patch(ctx, "missing", project.Patch{}); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("Patch(missing) err = %v; want %v", err, project.ErrNotFound)
	}
}

func TestUpdateAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s, b := newStudio(t)
	p, err := s.Create(ctx, Form{Title: "One", Genre: "Salsa"})
	if err != nil {
		t.Fatal(err)
	}
	saves := b.saves
	_, err = s.Update(ctx, p.ID, func(p *project.Project) error {
		p.Title = "changed"
		p.AddBlock(catalog.Verse)
		return p.UpdateDescription(5, "x")
	})
	if !errors.Is(err, project.ErrInvalidIndex) {
		t.Fatalf("Update() err = %v; want %v", err, project.ErrInvalidIndex)
	}
	got, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("failed Update() changed the project: %+v", got)
	}
	if b.saves != saves {
		t.Fatal("failed Update() persisted")
	}

	// Identity cannot be changed from a mutation.
	got, err = s.Update(ctx, p.ID, func(p *project.Project) error {
		p.ID = "other"
		p.CreatedAt = 1
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != p.ID || got.CreatedAt != p.CreatedAt {
		t.Fatalf("Update() changed identity to %s/%d", got.ID, got.CreatedAt)
	}
}

func TestSaveFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	s, b := newStudio(t)
	p, err := s.Create(ctx, Form{Title: "One", Genre: "Salsa"})
	if err != nil {
		t.Fatal(err)
	}
	b.fail = errors.New("disk full")
	if _, err := s.Patch(ctx, p.ID, project.Patch{Title: project.String("Two")}); err == nil {
		t.Fatal("Patch() err = nil; want save error")
	}
	if _, err := s.Create(ctx, Form{Title: "Three"}); err == nil {
		t.Fatal("Create() err = nil; want save error")
	}
	if err := s.Delete(ctx, p.ID); err == nil {
		t.Fatal("Delete() err = nil; want save error")
	}
	list := s.List(ctx)
	if len(list) != 1 || list[0].Title != "One" {
		t.Fatalf("List() after failed saves = %v", list)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s, b := newStudio(t)
	p, err := s.Create(ctx, Form{Title: "One"})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, p.ID); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("Get() after delete err = %v; want %v", err, project.ErrNotFound)
	}
	if err := s.Delete(ctx, p.ID); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("Delete() twice err = %v; want %v", err, project.ErrNotFound)
	}
	if len(b.saved) != 0 {
		t.Fatalf("backend has %d projects; want 0", len(b.saved))
	}
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	s, _ := newStudio(t)
	p, err := s.Create(ctx, Form{Title: "One", Genre: "Salsa", SubGenre: "Salsa Dura", Mood: "Passionate"})
	if err != nil {
		t.Fatal(err)
	}
	p, err = s.Update(ctx, p.ID, func(p *project.Project) error {
		if err := p.ApplyTemplate("Salsa Dura (Heavy Brass)"); err != nil {
			return err
		}
		p.SetVariations([]project.Variation{{Title: "a", Lyrics: "b"}})
		p.DJName = "DJ Loco"
		return p.ApplyVariation(0)
	})
	if err != nil {
		t.Fatal(err)
	}
	raw, err := s.Export(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	imported, err := s.Import(ctx, raw)
	if err != nil {
		t.Fatal(err)
	}
	if imported.ID == p.ID {
		t.Fatal("Import() kept the exported id")
	}
	imported.ID = p.ID
	if !reflect.DeepEqual(imported, p) {
		t.Fatalf("Import(Export(p)) = %+v; want %+v", imported, p)
	}
	source, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(source, p) {
		t.Fatal("Export() modified the source")
	}
	if list := s.List(ctx); len(list) != 2 {
		t.Fatalf("List() len = %d; want 2", len(list))
	}

	if _, err := s.Import(ctx, []byte(`{"genre":"Salsa"}`)); !errors.Is(err, project.ErrValidation) {
		t.Fatalf("Import(no id, no title) err = %v; want %v", err, project.ErrValidation)
	}
}

func TestRemix(t *testing.T) {
	ctx := context.Background()
	s, _ := newStudio(t)
	p, err := s.Create(ctx, Form{Title: "One", Genre: "Salsa"})
	if err != nil {
		t.Fatal(err)
	}
	p, err = s.Update(ctx, p.ID, func(p *project.Project) error {
		p.AddBlock(catalog.Intro)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	r, err := s.Remix(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if r.ID == p.ID || r.Title != "One (Remix)" {
		t.Fatalf("Remix() = %s %q", r.ID, r.Title)
	}
	if _, err := s.Update(ctx, r.ID, func(p *project.Project) error {
		p.RemoveBlock(0)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	src, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(src.Structure) != 1 {
		t.Fatal("editing the remix changed the source")
	}
	if list := s.List(ctx); list[0].ID != r.ID {
		t.Fatal("Remix() not inserted at the head")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newStudio(t)
	p, err := s.Create(ctx, Form{Title: "One", Genre: "Salsa"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Title = "changed"
	got.Instruments[0] = "Kazoo"
	again, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.Title != "One" || again.Instruments[0] == "Kazoo" {
		t.Fatal("Get() exposes internal state")
	}
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	s, b := newStudio(t)
	if _, err := s.Create(ctx, Form{Title: " ", Genre: "Salsa"}); !errors.Is(err, project.ErrValidation) {
		t.Fatalf("Create(blank title) err = %v; want %v", err, project.ErrValidation)
	}
	if b.saves != 0 || len(s.List(ctx)) != 0 {
		t.Fatal("Create(blank title) stored a project")
	}
	p, err := s.Create(ctx, Form{Title: "One", Genre: "Salsa"})
	if err != nil {
		t.Fatal(err)
	}
	saves := b.saves
	bad := []project.Patch{
		{Title: project.String("")},
		{BPM: project.Int(-40)},
		{Key: project.String("H#")},
		{VocalType: project.String("Robot")},
		{Concept: project.String("night"), BPM: project.Int(-1)},
	}
	for _, u := range bad {
		if _, err := s.Patch(ctx, p.ID, u); !errors.Is(err, project.ErrValidation) {
			t.Fatalf("Patch(%+v) err = %v; want %v", u, err, project.ErrValidation)
		}
	}
	got, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if b.saves != saves || !reflect.DeepEqual(got, p) {
		t.Fatalf("rejected patches changed the project: %+v", got)
	}
}
